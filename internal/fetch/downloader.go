package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/datapipe/spfetch/internal/graph"
)

// Credentials holds the application registration and site coordinates.
// Values are supplied once at construction and never mutated. They must stay
// confidential: nothing here is ever logged or embedded in URLs beyond what
// the OAuth2 protocol requires.
type Credentials struct {
	TenantID      string // Azure AD tenant of the application registration
	ClientID      string
	ClientSecret  string
	CompanyTenant string // first label of the SharePoint hostname, e.g. "contoso"
	SiteName      string
}

// Hostname returns the SharePoint hostname for the company tenant.
func (c Credentials) Hostname() string {
	return c.CompanyTenant + ".sharepoint.com"
}

// Downloader fetches single files from a SharePoint site's Documents library.
// The site ID is resolved once at construction; every top-level operation
// acquires a fresh token and performs a fresh traversal — no listings or
// tokens are cached across calls.
//
// A Downloader is not safe for concurrent operations unless the injected
// http.Client is; operations share no mutable state but the transport is
// shared.
type Downloader struct {
	creds      Credentials
	tokens     *graph.CredentialsSource
	httpClient *http.Client
	baseURL    string
	site       *graph.Site
	logger     *slog.Logger
}

// New creates a Downloader and resolves the site context. A token is
// acquired and the site name-resolution call is issued immediately;
// either failing is fatal for the instance.
func New(ctx context.Context, creds Credentials, httpClient *http.Client, logger *slog.Logger) (*Downloader, error) {
	return newDownloader(ctx, creds, httpClient, logger, graph.TokenURL(creds.TenantID), graph.DefaultBaseURL)
}

// newDownloader is New with injectable endpoints. Tests point both at
// httptest servers.
func newDownloader(
	ctx context.Context,
	creds Credentials,
	httpClient *http.Client,
	logger *slog.Logger,
	tokenURL, baseURL string,
) (*Downloader, error) {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Downloader{
		creds:      creds,
		tokens:     graph.NewCredentialsSource(tokenURL, creds.ClientID, creds.ClientSecret, logger),
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}

	tok, err := d.tokens.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	site, err := d.client(tok).Site(ctx, creds.Hostname(), creds.SiteName)
	if err != nil {
		return nil, fmt.Errorf("fetch: resolving site %q: %w", creds.SiteName, err)
	}

	d.site = site

	logger.Info("site context resolved",
		slog.String("site_name", creds.SiteName),
		slog.String("site_id", site.ID),
	)

	return d, nil
}

// client builds a Graph client pinned to one freshly acquired token, reused
// for every request of a single top-level operation.
func (d *Downloader) client(token string) *graph.Client {
	return graph.NewClient(d.baseURL, d.httpClient, graph.StaticToken(token), d.logger)
}

// Site returns the resolved site context.
func (d *Downloader) Site() graph.Site {
	return *d.site
}

// Drives lists the site's document libraries.
func (d *Downloader) Drives(ctx context.Context) ([]graph.Drive, error) {
	tok, err := d.tokens.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	return d.client(tok).SiteDrives(ctx, d.site.ID)
}

// List returns the immediate children of the named root folder in the
// Documents library, or of the drive root when folderMatch is empty.
// Returns ErrNotFound when folderMatch does not exist.
func (d *Downloader) List(ctx context.Context, folderMatch string) ([]graph.Item, error) {
	tok, err := d.tokens.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	c := d.client(tok)

	if folderMatch == "" {
		driveID, err := d.documentsDrive(ctx, c)
		if err != nil {
			return nil, err
		}

		return c.ListChildren(ctx, driveID, graph.RootFolderID)
	}

	driveID, folderID, err := d.locate(ctx, c, folderMatch)
	if err != nil {
		return nil, err
	}

	return c.ListChildren(ctx, driveID, folderID)
}

// Download locates targetFileName under the root folder named folderMatch
// and saves it into outputDir under the name reported by the remote
// metadata. It returns the local path of the written file.
//
// ErrNotFound (folder or file absent) is the expected negative outcome;
// everything else — auth failure, missing Documents library, transport or
// parse failures — is fatal and carries its cause.
func (d *Downloader) Download(ctx context.Context, targetFileName, folderMatch, outputDir string) (string, error) {
	tok, err := d.tokens.Acquire(ctx)
	if err != nil {
		return "", err
	}

	c := d.client(tok)

	driveID, folderID, err := d.locate(ctx, c, folderMatch)
	if err != nil {
		return "", err
	}

	found, err := search(ctx, c, driveID, folderID, targetFileName)
	if err != nil {
		return "", err
	}

	return d.save(ctx, c, driveID, found, outputDir)
}

// save streams the item's content to outputDir. The file name always comes
// from the remote metadata; filepath.Base guards against a hostile name
// escaping the output directory.
func (d *Downloader) save(ctx context.Context, c *graph.Client, driveID string, item *graph.Item, outputDir string) (string, error) {
	localPath := filepath.Join(outputDir, filepath.Base(item.Name))

	f, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("fetch: creating %s: %w", localPath, err)
	}

	n, err := c.Download(ctx, driveID, item.ID, f)
	if err != nil {
		f.Close()
		os.Remove(localPath)

		return "", fmt.Errorf("fetch: downloading %s: %w", item.Name, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(localPath)

		return "", fmt.Errorf("fetch: closing %s: %w", localPath, err)
	}

	d.logger.Info("file downloaded",
		slog.String("name", item.Name),
		slog.String("path", localPath),
		slog.Int64("bytes", n),
	)

	return localPath, nil
}

// IsNotFound reports whether err is the expected not-found outcome as
// opposed to a fatal failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
