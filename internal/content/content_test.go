package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"gxportfolio/internal/logger"
)

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"content/projects.en.md": {Data: []byte("---\ntitle: Our Projects\norder: 1\n---\n\n## GXBot\n\nA **Discord** bot.\n")},
		"content/projects.ar.md": {Data: []byte("---\ntitle: مشاريعنا\norder: 1\n---\n\n## GXBot\n\nبوت Discord.\n")},
		"content/tech.en.md":     {Data: []byte("---\ntitle: Our Tech Stack\norder: 2\n---\n\n- Go\n- JavaScript\n")},
		"content/about.en.md":    {Data: []byte("No frontmatter here.\n")},
		"content/README.md":      {Data: []byte("not a section\n")},
	}
}

func TestService_Load(t *testing.T) {
	s := NewService(logger.Discard())
	if err := s.Load(testFiles(), "content"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name      string
		lang      string
		section   string
		wantOK    bool
		wantTitle string
		contains  string
	}{
		{
			name:      "english section with frontmatter",
			lang:      "en",
			section:   "projects",
			wantOK:    true,
			wantTitle: "Our Projects",
			contains:  "<strong>Discord</strong>",
		},
		{
			name:      "arabic section",
			lang:      "ar",
			section:   "projects",
			wantOK:    true,
			wantTitle: "مشاريعنا",
			contains:  "بوت Discord.",
		},
		{
			name:      "title defaults to section name",
			lang:      "en",
			section:   "about",
			wantOK:    true,
			wantTitle: "about",
			contains:  "<p>No frontmatter here.</p>",
		},
		{
			name:    "section missing in language",
			lang:    "ar",
			section: "tech",
			wantOK:  false,
		},
		{
			name:    "file without language suffix is skipped",
			lang:    "en",
			section: "README",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, ok := s.Section(tt.lang, tt.section)
			if ok != tt.wantOK {
				t.Fatalf("Section(%q, %q) ok = %v, want %v", tt.lang, tt.section, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if section.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", section.Title, tt.wantTitle)
			}
			if !strings.Contains(string(section.HTML), tt.contains) {
				t.Errorf("HTML should contain %q, got %q", tt.contains, section.HTML)
			}
			if strings.Contains(string(section.HTML), "title:") {
				t.Errorf("frontmatter leaked into HTML: %q", section.HTML)
			}
		})
	}
}

func TestService_Sections(t *testing.T) {
	s := NewService(logger.Discard())
	if err := s.Load(testFiles(), "content"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	en := s.Sections("en")
	var names []string
	for _, section := range en {
		names = append(names, section.Name)
	}

	// about has no order and sorts first
	if got := strings.Join(names, ","); got != "about,projects,tech" {
		t.Errorf("Sections(en) = %s, want about,projects,tech", got)
	}

	if got := s.Sections("fr"); len(got) != 0 {
		t.Errorf("Sections(fr) = %v, want none", got)
	}
}

func TestSplitSectionFilename(t *testing.T) {
	tests := []struct {
		filename string
		name     string
		lang     string
		ok       bool
	}{
		{"projects.en.md", "projects", "en", true},
		{"tech-stack.AR.md", "tech-stack", "ar", true},
		{"README.md", "", "", false},
		{".en.md", "", "", false},
		{"projects..md", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			name, lang, ok := splitSectionFilename(tt.filename)
			if name != tt.name || lang != tt.lang || ok != tt.ok {
				t.Errorf("splitSectionFilename(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.filename, name, lang, ok, tt.name, tt.lang, tt.ok)
			}
		})
	}
}

func TestGetStringFromMeta(t *testing.T) {
	m := map[string]interface{}{"title": "GXBot", "order": 3}

	if got := getStringFromMeta(m, "title", "x"); got != "GXBot" {
		t.Errorf("getStringFromMeta(title) = %q", got)
	}
	if got := getStringFromMeta(m, "order", "x"); got != "x" {
		t.Errorf("non-string value should use default, got %q", got)
	}
	if got := getIntFromMeta(m, "order", 0); got != 3 {
		t.Errorf("getIntFromMeta(order) = %d", got)
	}
	if got := getIntFromMeta(m, "missing", 7); got != 7 {
		t.Errorf("getIntFromMeta(missing) = %d", got)
	}
}
