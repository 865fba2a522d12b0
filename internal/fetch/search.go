package fetch

import (
	"context"
	"errors"

	"github.com/datapipe/spfetch/internal/graph"
)

// search walks the folder tree under folderID depth-first, in listing order,
// for a file named exactly target. File entries are recognized by a non-empty
// download URL; a name match returns immediately without visiting further
// siblings or subtrees. Folder entries are descended into, and a hit anywhere
// below propagates up without continuing at any level. Entries that are
// neither a matching file nor a folder are skipped.
//
// Returns ErrNotFound after every folder in the subtree has been visited
// exactly once without a match. A listing failure in any folder aborts the
// whole search — there is no partial result.
func search(ctx context.Context, c *graph.Client, driveID, folderID, target string) (*graph.Item, error) {
	items, err := c.ListChildren(ctx, driveID, folderID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		it := items[i]

		if it.DownloadURL != "" {
			if it.Name == target {
				return &it, nil
			}

			continue
		}

		if !it.IsFolder {
			continue
		}

		found, err := search(ctx, c, driveID, it.ID, target)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}

			return nil, err
		}

		return found, nil
	}

	return nil, ErrNotFound
}
