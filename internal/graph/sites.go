package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// siteResponse mirrors the Graph API site JSON response.
// Unexported — callers use Site via toSite() normalization.
type siteResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	WebURL      string `json:"webUrl"`
}

// toSite normalizes a Graph API site response into our Site type.
func (s *siteResponse) toSite() Site {
	name := s.DisplayName
	if name == "" {
		name = s.Name
	}

	return Site{
		ID:     s.ID,
		Name:   name,
		WebURL: s.WebURL,
	}
}

// Site resolves a SharePoint site by hostname and site name, e.g.
// ("contoso.sharepoint.com", "DataPipeline"). The returned ID is the
// composite site identifier used by all site-scoped endpoints.
func (c *Client) Site(ctx context.Context, hostname, siteName string) (*Site, error) {
	c.logger.Info("resolving site",
		slog.String("hostname", hostname),
		slog.String("site_name", siteName),
	)

	path := fmt.Sprintf("/sites/%s:/sites/%s", hostname, url.PathEscape(siteName))

	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var sr siteResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("graph: decoding site response: %w", err)
	}

	site := sr.toSite()

	c.logger.Debug("resolved site",
		slog.String("id", site.ID),
		slog.String("name", site.Name),
	)

	return &site, nil
}
