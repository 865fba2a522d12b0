// Package fetch implements the single-file download pipeline: resolve the
// site's Documents library, locate a named root folder, search the folder
// tree depth-first for an exact file name, and stream the file to local
// storage.
package fetch

import "errors"

// ErrNotFound is the expected, non-fatal outcome when the root folder or the
// target file does not exist under the given match criteria. Callers branch
// on it with errors.Is; it is never wrapped around transport failures.
var ErrNotFound = errors.New("fetch: not found")

// ErrDriveNotFound indicates the site has no document library named
// "Documents". The library is assumed to always exist under that literal
// name, so its absence points at a misconfigured site or missing
// permissions. Fatal.
var ErrDriveNotFound = errors.New(`fetch: site has no "Documents" library`)
