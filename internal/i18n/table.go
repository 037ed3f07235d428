package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Supported language codes
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// SourceLanguage is the language the page markup is authored in
const SourceLanguage = LangEnglish

//go:embed locales/*.yaml
var localeFS embed.FS

// Table maps a language code to its key -> string dictionary.
// It is read-only after construction.
type Table struct {
	dicts     map[string]map[string]string
	languages []string
}

// NewTable creates a table from the given dictionaries. The maps are copied.
func NewTable(dicts map[string]map[string]string) *Table {
	t := &Table{dicts: make(map[string]map[string]string, len(dicts))}
	for lang, dict := range dicts {
		lang = strings.ToLower(lang)
		copied := make(map[string]string, len(dict))
		for k, v := range dict {
			copied[k] = v
		}
		t.dicts[lang] = copied
		t.languages = append(t.languages, lang)
	}
	sort.Strings(t.languages)
	return t
}

// LoadTable reads every <lang>.yaml file in dir of fsys
func LoadTable(fsys fs.FS, dir string) (*Table, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	dicts := make(map[string]map[string]string, len(files))
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		dict := make(map[string]string)
		if err := yaml.Unmarshal(content, &dict); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		lang := strings.TrimSuffix(path.Base(file), path.Ext(file))
		dicts[lang] = dict
	}

	return NewTable(dicts), nil
}

// DefaultTable loads the embedded English and Arabic dictionaries
func DefaultTable() (*Table, error) {
	return LoadTable(localeFS, "locales")
}

// Languages returns the supported language codes, sorted
func (t *Table) Languages() []string {
	out := make([]string, len(t.languages))
	copy(out, t.languages)
	return out
}

// Supports reports whether lang has a dictionary
func (t *Table) Supports(lang string) bool {
	_, ok := t.dicts[lang]
	return ok
}

// Lookup returns the string for key in lang
func (t *Table) Lookup(lang, key string) (string, bool) {
	dict, ok := t.dicts[lang]
	if !ok {
		return "", false
	}
	value, ok := dict[key]
	return value, ok
}

// Dictionary returns a copy of the dictionary for lang
func (t *Table) Dictionary(lang string) (map[string]string, bool) {
	dict, ok := t.dicts[lang]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out, true
}

// Normalize maps a language tag such as "AR", "ar-EG" or "en_US" onto a
// supported code
func (t *Table) Normalize(code string) (string, bool) {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return "", false
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}

	lang := base.String()
	if !t.Supports(lang) {
		return "", false
	}
	return lang, true
}

// CoverageError lists keys that exist in some language but not in others
type CoverageError struct {
	Missing map[string][]string // language -> missing keys
}

func (e *CoverageError) Error() string {
	langs := make([]string, 0, len(e.Missing))
	for lang := range e.Missing {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	parts := make([]string, 0, len(langs))
	for _, lang := range langs {
		parts = append(parts, fmt.Sprintf("%s: %s", lang, strings.Join(e.Missing[lang], ", ")))
	}
	return "incomplete translations (" + strings.Join(parts, "; ") + ")"
}

// Validate checks that every key is present in every language
func (t *Table) Validate() error {
	all := make(map[string]struct{})
	for _, dict := range t.dicts {
		for key := range dict {
			all[key] = struct{}{}
		}
	}

	missing := make(map[string][]string)
	for _, lang := range t.languages {
		dict := t.dicts[lang]
		for key := range all {
			if _, ok := dict[key]; !ok {
				missing[lang] = append(missing[lang], key)
			}
		}
		sort.Strings(missing[lang])
	}

	for lang, keys := range missing {
		if len(keys) == 0 {
			delete(missing, lang)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &CoverageError{Missing: missing}
}
