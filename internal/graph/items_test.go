package graph

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChildren_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/drives/drive-1/items/folder-1/children", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"value": [
				{
					"id": "item-file",
					"name": "Q1.xlsx",
					"size": 4096,
					"lastModifiedDateTime": "2024-03-31T12:00:00Z",
					"file": {"mimeType": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
					"@microsoft.graph.downloadUrl": "https://download.example/abc"
				},
				{
					"id": "item-folder",
					"name": "Archive",
					"size": 0,
					"folder": {"childCount": 2}
				}
			]
		}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	items, err := client.ListChildren(context.Background(), "drive-1", "folder-1")
	require.NoError(t, err)

	require.Len(t, items, 2)

	file := items[0]
	assert.Equal(t, "item-file", file.ID)
	assert.Equal(t, "Q1.xlsx", file.Name)
	assert.Equal(t, int64(4096), file.Size)
	assert.False(t, file.IsFolder)
	assert.Equal(t, "https://download.example/abc", file.DownloadURL)
	assert.Equal(t, time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC), file.ModifiedAt)

	folder := items[1]
	assert.Equal(t, "item-folder", folder.ID)
	assert.Equal(t, "Archive", folder.Name)
	assert.True(t, folder.IsFolder)
	assert.Empty(t, folder.DownloadURL)
}

func TestListChildren_RootFolder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drives/drive-1/items/root/children", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value": []}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	items, err := client.ListChildren(context.Background(), "drive-1", RootFolderID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListChildren_InvalidTimestampTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value": [
			{"id": "i1", "name": "f.txt", "lastModifiedDateTime": "not-a-time", "@microsoft.graph.downloadUrl": "https://d/x"}
		]}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	items, err := client.ListChildren(context.Background(), "drive-1", "folder-1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.True(t, items[0].ModifiedAt.IsZero())
}

func TestListChildren_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.ListChildren(context.Background(), "drive-1", "folder-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerError)
}

func TestListChildren_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value": [{]}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.ListChildren(context.Background(), "drive-1", "folder-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding children response")
}

func TestGetItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drives/drive-1/items/item-42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "item-42",
			"name": "report.csv",
			"size": 128,
			"file": {"mimeType": "text/csv"},
			"@microsoft.graph.downloadUrl": "https://download.example/fresh"
		}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	item, err := client.GetItem(context.Background(), "drive-1", "item-42")
	require.NoError(t, err)

	assert.Equal(t, "item-42", item.ID)
	assert.Equal(t, "report.csv", item.Name)
	assert.Equal(t, "text/csv", item.MimeType)
	assert.Equal(t, "https://download.example/fresh", item.DownloadURL)
}

func TestGetItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":"itemNotFound"}}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.GetItem(context.Background(), "drive-1", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
