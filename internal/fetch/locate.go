package fetch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/datapipe/spfetch/internal/graph"
)

// documentsLibrary is the fixed name of the document library holding the
// files. Not configurable: SharePoint provisions a library under this
// literal name for every site.
const documentsLibrary = "Documents"

// documentsDrive resolves the Documents library among the site's drives.
// Its absence is fatal (ErrDriveNotFound), not a not-found outcome.
func (d *Downloader) documentsDrive(ctx context.Context, c *graph.Client) (string, error) {
	drives, err := c.SiteDrives(ctx, d.site.ID)
	if err != nil {
		return "", fmt.Errorf("fetch: listing site drives: %w", err)
	}

	driveID, ok := resolveID(driveRefs(drives), documentsLibrary)
	if !ok {
		return "", ErrDriveNotFound
	}

	return driveID, nil
}

// locate resolves the Documents drive ID and the ID of the root folder named
// folderMatch among the drive root's immediate children. A missing root
// folder yields ErrNotFound — the caller maps it to a user-facing outcome.
func (d *Downloader) locate(ctx context.Context, c *graph.Client, folderMatch string) (driveID, folderID string, err error) {
	driveID, err = d.documentsDrive(ctx, c)
	if err != nil {
		return "", "", err
	}

	children, err := c.ListChildren(ctx, driveID, graph.RootFolderID)
	if err != nil {
		return "", "", fmt.Errorf("fetch: listing drive root: %w", err)
	}

	folderID, ok := resolveID(itemRefs(children), folderMatch)
	if !ok {
		d.logger.Info("root folder not found",
			slog.String("folder_match", folderMatch),
		)

		return "", "", ErrNotFound
	}

	d.logger.Debug("located root folder",
		slog.String("folder_match", folderMatch),
		slog.String("drive_id", driveID),
		slog.String("folder_id", folderID),
	)

	return driveID, folderID, nil
}
