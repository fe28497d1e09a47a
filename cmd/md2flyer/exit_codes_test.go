package main

// Notes:
// - exitCodeFor: we test sentinel errors from the root, config, assets,
//   fileutil, and watch packages, plus wrapped errors to verify the
//   errors.Is() chain works correctly.
// - hintFor: we test which errors carry a hint; hint wording is covered in
//   internal/hints.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	md2flyer "github.com/alnah/go-md2flyer"
	"github.com/alnah/go-md2flyer/internal/assets"
	"github.com/alnah/go-md2flyer/internal/config"
	"github.com/alnah/go-md2flyer/internal/fileutil"
	"github.com/alnah/go-md2flyer/internal/watch"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", md2flyer.ErrBrowserConnect, ExitBrowser},
		{"page create", md2flyer.ErrPageCreate, ExitBrowser},
		{"page load", md2flyer.ErrPageLoad, ExitBrowser},
		{"pdf generation", md2flyer.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("exporting PDF: %w", md2flyer.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"content not found", md2flyer.ErrContentNotFound, ExitIO},
		{"template not found", md2flyer.ErrTemplateNotFound, ExitIO},
		{"write output", md2flyer.ErrWriteOutput, ExitIO},
		{"file exists", fileutil.ErrFileExists, ExitIO},
		{"watch", watch.ErrWatch, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"empty content", md2flyer.ErrEmptyContent, ExitUsage},
		{"section count", md2flyer.ErrSectionCount, ExitUsage},
		{"section count error", &md2flyer.SectionCountError{Found: 3, Want: 5}, ExitUsage},
		{"placeholder missing", md2flyer.ErrPlaceholderMissing, ExitUsage},
		{"placeholder duplicate", md2flyer.ErrPlaceholderDuplicate, ExitUsage},
		{"joined placeholder errors", errors.Join(md2flyer.ErrPlaceholderMissing, md2flyer.ErrPlaceholderDuplicate), ExitUsage},
		{"invalid page size", md2flyer.ErrInvalidPageSize, ExitUsage},
		{"invalid asset name", assets.ErrInvalidAssetName, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("custom exit code %d should be below 126", code)
		}
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints per error
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string // "" = no hint expected
	}{
		{"section count", fmt.Errorf("compile: %w", &md2flyer.SectionCountError{Found: 6, Want: 5}), "remove 1 section(s)"},
		{"content not found", md2flyer.ErrContentNotFound, "md2flyer init"},
		{"template not found", md2flyer.ErrTemplateNotFound, "md2flyer init"},
		{"placeholder missing", md2flyer.ErrPlaceholderMissing, "{{TEAL_CONTENT}}"},
		{"page load", md2flyer.ErrPageLoad, "--timeout"},
		{"deadline", context.DeadlineExceeded, "--timeout"},
		{"write output", md2flyer.ErrWriteOutput, "directory"},
		{"unknown", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("hintFor(%v) = %q, want empty", tt.err, got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor(%v) = %q, want to contain %q", tt.err, got, tt.contains)
			}
		})
	}
}
