package assets

// Notes:
// - The starter template must carry every box placeholder exactly once and the
//   starter content must split into five sections; both are checked here so
//   that `md2flyer init` always produces a buildable project.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestValidateAssetName - Name safety
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "flyer", nil},
		{"hyphen", "my-flyer", nil},
		{"underscore", "my_flyer", nil},
		{"digits and case", "Flyer2", nil},
		{"empty", "", ErrInvalidAssetName},
		{"forward slash", "a/b", ErrInvalidAssetName},
		{"backslash", `a\b`, ErrInvalidAssetName},
		{"dot", "flyer.html", ErrInvalidAssetName},
		{"traversal", "..", ErrInvalidAssetName},
		{"space", "my flyer", ErrInvalidAssetName},
		{"null byte", "fly\x00er", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Starter assets
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	tmpl, err := LoadTemplate(DefaultStarterName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"HEADER", "GOLD", "DARK_TEAL", "ORANGE", "TEAL"} {
		for _, suffix := range []string{"_TITLE", "_CONTENT"} {
			token := "{{" + key + suffix + "}}"
			if n := strings.Count(tmpl, token); n != 1 {
				t.Errorf("starter template has %d occurrences of %s, want 1", n, token)
			}
		}
	}
}

func TestEmbeddedLoader_LoadContent(t *testing.T) {
	t.Parallel()

	content, err := LoadContent(DefaultStarterName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	separators := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "---" {
			separators++
		}
	}
	if separators != 4 {
		t.Errorf("starter content has %d separators, want 4", separators)
	}
}

func TestEmbeddedLoader_NotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadContent("nonexistent"); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("LoadContent() error = %v, want ErrContentNotFound", err)
	}
	if _, err := loader.LoadTemplate("../flyer"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
	}
	if _, err := loader.LoadContent(""); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadContent() error = %v, want ErrInvalidAssetName", err)
	}
}
