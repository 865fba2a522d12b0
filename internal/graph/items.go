package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RootFolderID addresses a drive's root folder in item endpoints.
const RootFolderID = "root"

// driveItemResponse mirrors the Graph API driveItem JSON exactly.
// Unexported — callers use Item via toItem() normalization.
type driveItemResponse struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Size                 int64        `json:"size"`
	LastModifiedDateTime string       `json:"lastModifiedDateTime"`
	File                 *fileFacet   `json:"file"`
	Folder               *folderFacet `json:"folder"`
	DownloadURL          string       `json:"@microsoft.graph.downloadUrl"` //nolint:tagliatelle // Graph API annotation key
}

type fileFacet struct {
	MimeType string `json:"mimeType"`
}

type folderFacet struct {
	ChildCount int `json:"childCount"`
}

type listChildrenResponse struct {
	Value []driveItemResponse `json:"value"`
}

// toItem normalizes a Graph API driveItem response into our Item type.
func (d *driveItemResponse) toItem() Item {
	item := Item{
		ID:          d.ID,
		Name:        d.Name,
		Size:        d.Size,
		IsFolder:    d.Folder != nil,
		DownloadURL: d.DownloadURL,
	}

	if d.File != nil {
		item.MimeType = d.File.MimeType
	}

	// Lenient timestamp handling: a bad timestamp never fails a listing.
	if t, err := time.Parse(time.RFC3339, d.LastModifiedDateTime); err == nil {
		item.ModifiedAt = t
	}

	return item
}

// GetItem retrieves a single drive item by ID. The response carries a fresh
// pre-authorized download URL for file items.
func (c *Client) GetItem(ctx context.Context, driveID, itemID string) (*Item, error) {
	c.logger.Info("getting item",
		slog.String("drive_id", driveID),
		slog.String("item_id", itemID),
	)

	path := fmt.Sprintf("/drives/%s/items/%s", driveID, itemID)

	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var dir driveItemResponse
	if err := json.NewDecoder(resp.Body).Decode(&dir); err != nil {
		return nil, fmt.Errorf("graph: decoding item response: %w", err)
	}

	item := dir.toItem()

	return &item, nil
}

// ListChildren returns the immediate children of a folder, in listing order.
// Use RootFolderID for the drive root. A single request is issued — folders
// larger than the API's default page are an accepted limitation here.
func (c *Client) ListChildren(ctx context.Context, driveID, folderID string) ([]Item, error) {
	c.logger.Info("listing children",
		slog.String("drive_id", driveID),
		slog.String("folder_id", folderID),
	)

	path := fmt.Sprintf("/drives/%s/items/%s/children", driveID, folderID)

	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var lcr listChildrenResponse
	if err := json.NewDecoder(resp.Body).Decode(&lcr); err != nil {
		return nil, fmt.Errorf("graph: decoding children response: %w", err)
	}

	items := make([]Item, 0, len(lcr.Value))
	for i := range lcr.Value {
		items = append(items, lcr.Value[i].toItem())
	}

	c.logger.Debug("listed children",
		slog.String("folder_id", folderID),
		slog.Int("count", len(items)),
	)

	return items, nil
}
