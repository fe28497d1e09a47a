package content

// Notes:
// - SplitSections: we test separator detection, whitespace tolerance, empty
//   section removal, and line ending normalization.
// - ParseSection: we test the "=" separator, the first-line fallback, blank
//   line removal, and title-only sections.
// - Decode: we test BOM removal and UTF-16 transcoding. Invalid UTF-8 is
//   replaced by the decoder rather than rejected, so there is no error case.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSplitSections - Section separator handling
// ---------------------------------------------------------------------------

func TestSplitSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "single section",
			text: "Title\n=====\nline",
			want: []string{"Title\n=====\nline"},
		},
		{
			name: "two sections",
			text: "A\n---\nB",
			want: []string{"A", "B"},
		},
		{
			name: "separator with surrounding whitespace",
			text: "A\n  ---  \nB",
			want: []string{"A", "B"},
		},
		{
			name: "sections are trimmed",
			text: "\n\nA\n\n---\n\n  B  \n\n",
			want: []string{"A", "B"},
		},
		{
			name: "empty sections are dropped",
			text: "---\nA\n---\n\n---\n---\nB\n---",
			want: []string{"A", "B"},
		},
		{
			name: "dashes inside a line are not separators",
			text: "A --- B\n----\n- item",
			want: []string{"A --- B\n----\n- item"},
		},
		{
			name: "CRLF line endings",
			text: "A\r\n---\r\nB\r\n",
			want: []string{"A", "B"},
		},
		{
			name: "five sections",
			text: "H\n---\nG\n---\nD\n---\nO\n---\nT",
			want: []string{"H", "G", "D", "O", "T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitSections(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSections(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseSection - Title and content extraction
// ---------------------------------------------------------------------------

func TestParseSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantTitle []string
		wantLines []string
	}{
		{
			name:      "title and content",
			text:      "Gold Box\n========\nline one\nline two",
			wantTitle: []string{"Gold Box"},
			wantLines: []string{"line one", "line two"},
		},
		{
			name:      "multi-line title",
			text:      "Help Brie\nGet Surgery\n===\nTL;DR: test",
			wantTitle: []string{"Help Brie", "Get Surgery"},
			wantLines: []string{"TL;DR: test"},
		},
		{
			name:      "separator with whitespace",
			text:      "Title\n   ====   \nline",
			wantTitle: []string{"Title"},
			wantLines: []string{"line"},
		},
		{
			name:      "single equals sign is a separator",
			text:      "Title\n=\nline",
			wantTitle: []string{"Title"},
			wantLines: []string{"line"},
		},
		{
			name:      "blank lines are dropped",
			text:      "Title\n\n===\n\nfirst\n\n\nsecond\n",
			wantTitle: []string{"Title"},
			wantLines: []string{"first", "second"},
		},
		{
			name:      "lines are trimmed",
			text:      "  Title  \n===\n   indented   ",
			wantTitle: []string{"Title"},
			wantLines: []string{"indented"},
		},
		{
			name:      "no separator uses first line as title",
			text:      "Title\nfirst\nsecond",
			wantTitle: []string{"Title"},
			wantLines: []string{"first", "second"},
		},
		{
			name:      "no separator single line",
			text:      "Only a title",
			wantTitle: []string{"Only a title"},
			wantLines: nil,
		},
		{
			name:      "title only with separator",
			text:      "Title\n=====",
			wantTitle: []string{"Title"},
			wantLines: nil,
		},
		{
			name:      "mixed equals line is content",
			text:      "Title\n===\na == b\n=x=",
			wantTitle: []string{"Title"},
			wantLines: []string{"a == b", "=x="},
		},
		{
			name:      "later separators are consumed",
			text:      "Title\n===\nfirst\n===\nsecond",
			wantTitle: []string{"Title"},
			wantLines: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseSection(tt.text)
			if !reflect.DeepEqual(got.TitleLines, tt.wantTitle) {
				t.Errorf("TitleLines = %q, want %q", got.TitleLines, tt.wantTitle)
			}
			if len(got.Lines) != len(tt.wantLines) {
				t.Fatalf("Lines = %q, want %q", got.Lines, tt.wantLines)
			}
			for i := range tt.wantLines {
				if got.Lines[i] != tt.wantLines[i] {
					t.Errorf("Lines[%d] = %q, want %q", i, got.Lines[i], tt.wantLines[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParsedSection_Titles - Title rendering with line-break markers
// ---------------------------------------------------------------------------

func TestParsedSection_Titles(t *testing.T) {
	t.Parallel()

	s := ParsedSection{TitleLines: []string{"Help Brie", "Get Surgery"}}

	if got, want := s.Title(), "Help Brie<br>Get Surgery"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if got, want := s.DisplayTitle(), "Help Brie / Get Surgery"; got != want {
		t.Errorf("DisplayTitle() = %q, want %q", got, want)
	}

	var empty ParsedSection
	if empty.Title() != "" {
		t.Errorf("empty Title() = %q, want empty", empty.Title())
	}
}

// ---------------------------------------------------------------------------
// TestParseAll - Split then parse, order preserved
// ---------------------------------------------------------------------------

func TestParseAll(t *testing.T) {
	t.Parallel()

	text := "Header\n===\nTL;DR: x\n---\nGold\n===\ng1\n---\nDark\n===\n---\nOrange\n===\no1\n---\nTeal\n===\n- t1"
	got := ParseAll(text)

	if len(got) != 5 {
		t.Fatalf("len(ParseAll) = %d, want 5", len(got))
	}

	wantTitles := []string{"Header", "Gold", "Dark", "Orange", "Teal"}
	for i, want := range wantTitles {
		if got[i].Title() != want {
			t.Errorf("section %d title = %q, want %q", i, got[i].Title(), want)
		}
	}
	if len(got[2].Lines) != 0 {
		t.Errorf("title-only section Lines = %q, want empty", got[2].Lines)
	}
}

// ---------------------------------------------------------------------------
// TestDecode - BOM handling
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "plain UTF-8",
			data: []byte("Title\n===\n🤎"),
			want: "Title\n===\n🤎",
		},
		{
			name: "UTF-8 BOM is removed",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("Title")...),
			want: "Title",
		},
		{
			name: "UTF-16LE with BOM",
			data: []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00},
			want: "Hi",
		},
		{
			name: "empty input",
			data: []byte{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}
