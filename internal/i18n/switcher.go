package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gxportfolio/internal/logger"
)

// ErrUnsupportedLanguage is returned when switching to a language without a dictionary
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Direction is the text direction of a document
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// DirectionFor returns RTL for Arabic and LTR for everything else
func DirectionFor(lang string) Direction {
	if lang == LangArabic {
		return RTL
	}
	return LTR
}

// LookupFunc returns the translation for a key, or false when there is none
type LookupFunc func(key string) (string, bool)

// Document is anything carrying translation-tagged text. Implementations
// replace the text or placeholder of an element only when lookup succeeds
// and must not reorder or duplicate elements.
type Document interface {
	SetLanguage(lang string, dir Direction)
	TranslateText(lookup LookupFunc)
	TranslatePlaceholders(lookup LookupFunc)
}

// MissingKeysError is returned in strict mode when the document references
// keys the active language does not define
type MissingKeysError struct {
	Lang string
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing %s translations: %s", e.Lang, strings.Join(e.Keys, ", "))
}

// Options configures a Switcher
type Options struct {
	// Initial is the language the document currently shows
	Initial string
	// Strict turns missing keys into a MissingKeysError
	Strict bool
}

// Switcher holds the current language and rewrites documents on change.
// It is not safe for concurrent use.
type Switcher struct {
	table   *Table
	current string
	strict  bool
	logger  *logger.Logger
}

// NewSwitcher creates a switcher. An unsupported initial language falls back
// to the source language.
func NewSwitcher(table *Table, opts Options, log *logger.Logger) *Switcher {
	current := opts.Initial
	if !table.Supports(current) {
		current = SourceLanguage
	}

	return &Switcher{
		table:   table,
		current: current,
		strict:  opts.Strict,
		logger:  log,
	}
}

// Current returns the active language
func (s *Switcher) Current() string {
	return s.current
}

// Direction returns the text direction of the active language
func (s *Switcher) Direction() Direction {
	return DirectionFor(s.current)
}

// Switch changes the active language and rewrites doc. It reports whether
// anything changed. Switching to the active language or to an unsupported
// one leaves both the switcher and doc untouched.
func (s *Switcher) Switch(lang string, doc Document) (bool, error) {
	if !s.table.Supports(lang) {
		s.logger.Warn("Ignoring switch to unsupported language '%s'", lang)
		return false, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	if lang == s.current {
		s.logger.Debug("Language '%s' already active, nothing to do", lang)
		return false, nil
	}

	s.logger.Debug("Switching language '%s' -> '%s'", s.current, lang)
	s.current = lang

	missing := make(map[string]struct{})
	lookup := func(key string) (string, bool) {
		value, ok := s.table.Lookup(lang, key)
		if !ok {
			missing[key] = struct{}{}
		}
		return value, ok
	}

	doc.SetLanguage(lang, DirectionFor(lang))
	doc.TranslateText(lookup)
	doc.TranslatePlaceholders(lookup)

	if len(missing) == 0 {
		return true, nil
	}

	keys := make([]string, 0, len(missing))
	for key := range missing {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if s.strict {
		s.logger.Error("Missing %d '%s' translations: %s", len(keys), lang, strings.Join(keys, ", "))
		return true, &MissingKeysError{Lang: lang, Keys: keys}
	}

	s.logger.Debug("Left %d elements untranslated for '%s': %s", len(keys), lang, strings.Join(keys, ", "))
	return true, nil
}
