package ddragon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	rgerrors "github.com/matzehuels/runegrid/pkg/errors"
	"github.com/matzehuels/runegrid/pkg/integrations"
)

const runesJSON = `[
  {"key": "Precision", "icon": "perk-images/Styles/7201_Precision.png", "slots": [
    {"runes": [{"key": "PressTheAttack", "icon": "perk-images/Styles/Precision/PressTheAttack/PressTheAttack.png"}]}
  ]}
]`

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient(server.URL+"/data/runesReforged.json", server.URL)
	c.WithHTTPClient(server.Client())
	return c
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "")
	if c.DataURL() != DefaultDataURL {
		t.Errorf("DataURL() = %q, want %q", c.DataURL(), DefaultDataURL)
	}
	if c.cdnBase != DefaultCDNBase {
		t.Errorf("cdnBase = %q, want %q", c.cdnBase, DefaultCDNBase)
	}
}

func TestClient_FetchRunes(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/runesReforged.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(runesJSON))
	}))

	paths, err := c.FetchRunes(context.Background())
	if err != nil {
		t.Fatalf("FetchRunes() error: %v", err)
	}
	if len(paths) != 1 || paths[0].Key != "Precision" {
		t.Fatalf("FetchRunes() = %v, want [Precision]", paths)
	}
	if paths[0].RuneCount() != 1 {
		t.Errorf("RuneCount() = %d, want 1", paths[0].RuneCount())
	}
}

func TestClient_FetchRunes_NotFound(t *testing.T) {
	c := testClient(t, http.NotFoundHandler())

	_, err := c.FetchRunes(context.Background())
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("FetchRunes() error = %v, want ErrNotFound", err)
	}
}

func TestClient_FetchRunes_Malformed(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))

	_, err := c.FetchRunes(context.Background())
	if !rgerrors.Is(err, rgerrors.ErrCodeInvalidDataset) {
		t.Errorf("FetchRunes() error = %v, want INVALID_DATASET", err)
	}
}

func TestClient_IconURL(t *testing.T) {
	c := NewClient("", "https://cdn.example.com/")

	tests := []struct {
		icon    string
		want    string
		wantErr bool
	}{
		{"perk-images/Styles/7201_Precision.png", "https://cdn.example.com/img/perk-images/Styles/7201_Precision.png", false},
		{"", "", true},
		{"../secret.png", "", true},
		{"/etc/passwd", "", true},
		{"https://evil.example.com/x.png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			got, err := c.IconURL(tt.icon)
			if tt.wantErr {
				if !rgerrors.Is(err, rgerrors.ErrCodeInvalidPath) {
					t.Errorf("IconURL(%q) error = %v, want INVALID_PATH", tt.icon, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("IconURL(%q) error: %v", tt.icon, err)
			}
			if got != tt.want {
				t.Errorf("IconURL(%q) = %q, want %q", tt.icon, got, tt.want)
			}
		})
	}
}

func TestClient_FetchIcon(t *testing.T) {
	var gotPath string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("icon-bytes"))
	}))

	body, err := c.FetchIcon(context.Background(), "perk-images/x.png")
	if err != nil {
		t.Fatalf("FetchIcon() error: %v", err)
	}
	if string(body) != "icon-bytes" {
		t.Errorf("FetchIcon() = %q, want %q", body, "icon-bytes")
	}
	if gotPath != "/img/perk-images/x.png" {
		t.Errorf("request path = %q, want /img/perk-images/x.png", gotPath)
	}
}
