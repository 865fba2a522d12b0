package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fake SharePoint environment for pipeline tests: one httptest server playing
// the identity provider (POST /token) and the Graph API (everything else),
// backed by an in-memory folder tree. Listing calls are counted per folder so
// tests can assert traversal behavior (early exit, no duplicate visits).

type fakeNode struct {
	id       string
	name     string
	folder   bool
	content  string
	children []*fakeNode

	// noDownloadURL marks a file entry whose metadata lacks the
	// pre-authorized URL (e.g. some zero-byte files).
	noDownloadURL bool
}

func folder(name string, children ...*fakeNode) *fakeNode {
	return &fakeNode{name: name, folder: true, children: children}
}

func file(name, content string) *fakeNode {
	return &fakeNode{name: name, content: content}
}

type fakeSharePoint struct {
	t   *testing.T
	srv *httptest.Server

	siteID  string
	driveID string

	// drives listed at the site; name "Documents" is resolvable by default.
	driveNames []string

	root  []*fakeNode
	nodes map[string]*fakeNode

	tokenGrants atomic.Int32
	failTokens  atomic.Bool

	listCalls map[string]int

	// failListFolder, when set, makes listing that folder ID return 503.
	failListFolder string
}

func newFakeSharePoint(t *testing.T, root ...*fakeNode) *fakeSharePoint {
	t.Helper()

	f := &fakeSharePoint{
		t:          t,
		siteID:     "contoso.sharepoint.com,site-guid,web-guid",
		driveID:    "drive-docs",
		driveNames: []string{"Documents", "Site Assets"},
		root:       root,
		nodes:      make(map[string]*fakeNode),
		listCalls:  make(map[string]int),
	}

	var n int

	var register func(nodes []*fakeNode)

	register = func(nodes []*fakeNode) {
		for _, node := range nodes {
			n++
			node.id = fmt.Sprintf("id-%d-%s", n, node.name)
			f.nodes[node.id] = node
			register(node.children)
		}
	}

	register(root)

	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)

	return f
}

func (f *fakeSharePoint) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/token":
		f.handleToken(w)
	case strings.HasPrefix(path, "/sites/contoso.sharepoint.com:"):
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": %q, "name": "Analytics"}`, f.siteID)
	case path == "/sites/"+f.siteID+"/drives":
		f.handleDrives(w)
	case strings.HasSuffix(path, "/children"):
		f.handleChildren(w, path)
	case strings.HasPrefix(path, "/content/"):
		f.handleContent(w, strings.TrimPrefix(path, "/content/"))
	case strings.HasPrefix(path, "/drives/"+f.driveID+"/items/"):
		f.handleItem(w, strings.TrimPrefix(path, "/drives/"+f.driveID+"/items/"))
	default:
		f.t.Errorf("unexpected request: %s %s", r.Method, path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeSharePoint) handleToken(w http.ResponseWriter) {
	if f.failTokens.Load() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_client","error_description":"bad secret"}`)

		return
	}

	grant := f.tokenGrants.Add(1)

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"Bearer","expires_in":3599}`, grant)
}

func (f *fakeSharePoint) handleDrives(w http.ResponseWriter) {
	entries := make([]string, 0, len(f.driveNames))

	for i, name := range f.driveNames {
		id := f.driveID
		if name != "Documents" {
			id = fmt.Sprintf("drive-other-%d", i)
		}

		entries = append(entries, fmt.Sprintf(`{"id": %q, "name": %q, "driveType": "documentLibrary"}`, id, name))
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"value": [%s]}`, strings.Join(entries, ","))
}

func (f *fakeSharePoint) handleChildren(w http.ResponseWriter, path string) {
	folderID := strings.TrimSuffix(strings.TrimPrefix(path, "/drives/"+f.driveID+"/items/"), "/children")

	f.listCalls[folderID]++

	if folderID == f.failListFolder {
		w.WriteHeader(http.StatusServiceUnavailable)

		return
	}

	var children []*fakeNode

	if folderID == "root" {
		children = f.root
	} else {
		node, ok := f.nodes[folderID]
		if !ok || !node.folder {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		children = node.children
	}

	entries := make([]string, 0, len(children))
	for _, c := range children {
		entries = append(entries, f.itemJSON(c))
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"value": [%s]}`, strings.Join(entries, ","))
}

func (f *fakeSharePoint) handleItem(w http.ResponseWriter, itemID string) {
	node, ok := f.nodes[itemID]
	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, f.itemJSON(node))
}

func (f *fakeSharePoint) handleContent(w http.ResponseWriter, itemID string) {
	node, ok := f.nodes[itemID]
	if !ok || node.folder {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	fmt.Fprint(w, node.content)
}

func (f *fakeSharePoint) itemJSON(node *fakeNode) string {
	if node.folder {
		return fmt.Sprintf(`{"id": %q, "name": %q, "folder": {"childCount": %d}}`,
			node.id, node.name, len(node.children))
	}

	if node.noDownloadURL {
		return fmt.Sprintf(`{"id": %q, "name": %q, "size": %d, "file": {"mimeType": "application/octet-stream"}}`,
			node.id, node.name, len(node.content))
	}

	return fmt.Sprintf(`{"id": %q, "name": %q, "size": %d, "file": {"mimeType": "application/octet-stream"}, "@microsoft.graph.downloadUrl": %q}`,
		node.id, node.name, len(node.content), f.srv.URL+"/content/"+node.id)
}

// findID returns the registered ID for the first node with the given name.
func (f *fakeSharePoint) findID(name string) string {
	for id, node := range f.nodes {
		if node.name == name {
			return id
		}
	}

	f.t.Fatalf("no fake node named %q", name)

	return ""
}

func testCredentials() Credentials {
	return Credentials{
		TenantID:      "tenant-1",
		ClientID:      "app-id",
		ClientSecret:  "app-secret",
		CompanyTenant: "contoso",
		SiteName:      "Analytics",
	}
}

// downloader constructs a Downloader wired to the fake environment.
func (f *fakeSharePoint) downloader(t *testing.T) *Downloader {
	t.Helper()

	d, err := newDownloader(
		context.Background(),
		testCredentials(),
		f.srv.Client(),
		slog.Default(),
		f.srv.URL+"/token",
		f.srv.URL,
	)
	require.NoError(t, err)

	return d
}
