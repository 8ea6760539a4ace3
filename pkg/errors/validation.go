package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateIconPath validates an icon reference from the rune dataset before it
// is joined onto the CDN base URL.
//
// Icon references are relative paths such as
// "perk-images/Styles/Domination/Electrocute/Electrocute.png". The rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths or absolute URLs
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateIconPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "icon path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "icon path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "icon path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "icon path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "://") {
		return New(ErrCodeInvalidPath, "icon path cannot be an absolute URL")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "icon path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "icon path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL parses, has a safe scheme (http or https) and a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "malformed URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL has no host: %q", rawURL)
	}

	return nil
}
