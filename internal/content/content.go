package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gxportfolio/internal/logger"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Section is one rendered block of page copy
type Section struct {
	Name  string        `json:"name"`
	Lang  string        `json:"lang"`
	Title string        `json:"title"`
	Order int           `json:"order"`
	HTML  template.HTML `json:"html"`
}

// Service holds the page sections, rendered once from markdown
type Service struct {
	markdown goldmark.Markdown
	sections map[string]map[string]Section // lang -> name -> section
	logger   *logger.Logger
}

// NewService creates a content service with goldmark configured for page copy
func NewService(log *logger.Logger) *Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // GitHub Flavored Markdown
			meta.Meta,     // Frontmatter support
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	log.Info("Content service initialized")

	return &Service{
		markdown: md,
		sections: make(map[string]map[string]Section),
		logger:   log,
	}
}

// Load renders every <name>.<lang>.md file in dir of fsys
func (s *Service) Load(fsys fs.FS, dir string) error {
	files, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return fmt.Errorf("failed to list content files: %w", err)
	}

	for _, file := range files {
		name, lang, ok := splitSectionFilename(path.Base(file))
		if !ok {
			s.logger.Warn("Skipping content file without language suffix: %s", file)
			continue
		}

		source, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read content file %s: %w", file, err)
		}

		section, err := s.render(name, lang, source)
		if err != nil {
			return fmt.Errorf("failed to render content file %s: %w", file, err)
		}

		if s.sections[lang] == nil {
			s.sections[lang] = make(map[string]Section)
		}
		s.sections[lang][name] = section
		s.logger.Debug("Rendered section '%s' (%s): %d bytes", name, lang, len(section.HTML))
	}

	s.logger.Info("Loaded %d content files from %s", len(files), dir)
	return nil
}

// render converts one markdown document and reads its frontmatter
func (s *Service) render(name, lang string, source []byte) (Section, error) {
	var buf bytes.Buffer
	context := parser.NewContext()

	if err := s.markdown.Convert(source, &buf, parser.WithContext(context)); err != nil {
		return Section{}, fmt.Errorf("failed to render markdown: %w", err)
	}

	metaData := meta.Get(context)
	if metaData == nil {
		metaData = make(map[string]interface{})
	}

	return Section{
		Name:  name,
		Lang:  lang,
		Title: getStringFromMeta(metaData, "title", name),
		Order: getIntFromMeta(metaData, "order", 0),
		HTML:  template.HTML(buf.String()),
	}, nil
}

// Section returns the named section in lang
func (s *Service) Section(lang, name string) (Section, bool) {
	section, ok := s.sections[lang][name]
	return section, ok
}

// Sections returns every section in lang ordered by their "order" field
func (s *Service) Sections(lang string) []Section {
	out := make([]Section, 0, len(s.sections[lang]))
	for _, section := range s.sections[lang] {
		out = append(out, section)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// splitSectionFilename splits "projects.ar.md" into ("projects", "ar")
func splitSectionFilename(filename string) (string, string, bool) {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	dot := strings.LastIndex(base, ".")
	if dot <= 0 || dot == len(base)-1 {
		return "", "", false
	}
	return base[:dot], strings.ToLower(base[dot+1:]), true
}

// Helper function to safely get string values from metadata
func getStringFromMeta(meta map[string]interface{}, key, defaultValue string) string {
	if value, ok := meta[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

// Helper function to safely get int values from metadata
func getIntFromMeta(meta map[string]interface{}, key string, defaultValue int) int {
	if value, ok := meta[key]; ok {
		if n, ok := value.(int); ok {
			return n
		}
	}
	return defaultValue
}
