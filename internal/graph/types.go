package graph

import "time"

// Site is a SharePoint site resolved from a hostname and site name.
type Site struct {
	ID     string
	Name   string
	WebURL string
}

// Drive is a document library within a site.
type Drive struct {
	ID        string
	Name      string
	DriveType string
}

// Item represents one entry of a folder listing (file or folder).
// Fields are normalized from the Graph API response — callers never see raw
// API data.
type Item struct {
	ID         string
	Name       string
	Size       int64
	IsFolder   bool
	MimeType   string
	ModifiedAt time.Time

	// DownloadURL is the pre-authorized, short-lived content URL. Present
	// only on file entries. NEVER log it — it embeds auth material.
	DownloadURL string
}
