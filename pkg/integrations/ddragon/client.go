package ddragon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/runegrid/pkg/dataset"
	rgerrors "github.com/matzehuels/runegrid/pkg/errors"
	"github.com/matzehuels/runegrid/pkg/integrations"
)

const (
	// DefaultDataURL is the runesReforged document for patch 12.12.1.
	DefaultDataURL = "https://ddragon.canisback.com/12.12.1/data/en_US/runesReforged.json"

	// DefaultCDNBase is the host that serves rune icons under /img/.
	DefaultCDNBase = "https://ddragon.canisback.com"
)

// Client fetches the rune dataset and its icons from a Data Dragon mirror.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	dataURL string
	cdnBase string
}

// NewClient creates a client for the given dataset URL and CDN base.
// Empty arguments fall back to [DefaultDataURL] and [DefaultCDNBase].
func NewClient(dataURL, cdnBase string) *Client {
	if dataURL == "" {
		dataURL = DefaultDataURL
	}
	if cdnBase == "" {
		cdnBase = DefaultCDNBase
	}
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/json, image/*"}),
		dataURL: dataURL,
		cdnBase: strings.TrimRight(cdnBase, "/"),
	}
}

// DataURL returns the dataset URL this client reads.
func (c *Client) DataURL() string { return c.dataURL }

// FetchRunes downloads and parses the runes dataset.
//
// Returns:
//   - the parsed paths in document order
//   - [integrations.ErrNotFound] if the document doesn't exist
//   - [integrations.ErrNetwork] for transport failures and non-2xx responses
//   - an [rgerrors.ErrCodeInvalidDataset] error for malformed JSON
func (c *Client) FetchRunes(ctx context.Context) ([]dataset.RunePath, error) {
	body, err := c.GetBytes(ctx, c.dataURL)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: runes dataset %s", err, c.dataURL)
		}
		return nil, err
	}
	return dataset.Parse(body)
}

// IconURL joins an icon reference onto the CDN: <cdn-base>/img/<icon>.
// The reference is validated with [rgerrors.ValidateIconPath] first.
func (c *Client) IconURL(icon string) (string, error) {
	if err := rgerrors.ValidateIconPath(icon); err != nil {
		return "", err
	}
	return c.cdnBase + "/img/" + icon, nil
}

// FetchIcon downloads the raw bytes of an icon.
func (c *Client) FetchIcon(ctx context.Context, icon string) ([]byte, error) {
	u, err := c.IconURL(icon)
	if err != nil {
		return nil, err
	}
	return c.GetBytes(ctx, u)
}
