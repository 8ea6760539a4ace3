package errors

import (
	"strings"
	"testing"
)

func TestValidateIconPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rune icon", "perk-images/Styles/Domination/Electrocute/Electrocute.png", false},
		{"path icon", "perk-images/Styles/7200_Domination.png", false},
		{"single file", "6361.png", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"absolute", "/etc/passwd", true},
		{"absolute url", "https://evil.example/x.png", true},
		{"traversal", "perk-images/../../secret.png", true},
		{"backslash", "perk-images\\x.png", true},
		{"null byte", "x\x00.png", true},
		{"newline", "x\n.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIconPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIconPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateIconPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://ddragon.canisback.com/12.12.1/data/en_US/runesReforged.json", false},
		{"http with port", "http://127.0.0.1:8080/runes.json", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com/runes.json", true},
		{"no scheme", "ddragon.canisback.com", true},
		{"no host", "https:///runes.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
