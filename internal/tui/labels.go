package tui

import "gxportfolio/internal/i18n"

// labels is the terminal's translatable text, addressed by translation key
type labels struct {
	lang         string
	dir          i18n.Direction
	keys         []string
	text         map[string]string
	placeholders map[string]string
}

// newLabels seeds every key with its source-language text
func newLabels(table *i18n.Table, keys, placeholderKeys []string) *labels {
	l := &labels{
		lang:         i18n.SourceLanguage,
		dir:          i18n.DirectionFor(i18n.SourceLanguage),
		text:         make(map[string]string, len(keys)),
		placeholders: make(map[string]string, len(placeholderKeys)),
	}

	for _, key := range keys {
		l.keys = append(l.keys, key)
		text, ok := table.Lookup(i18n.SourceLanguage, key)
		if !ok {
			text = key
		}
		l.text[key] = text
	}
	for _, key := range placeholderKeys {
		text, _ := table.Lookup(i18n.SourceLanguage, key)
		l.placeholders[key] = text
	}

	return l
}

func (l *labels) SetLanguage(lang string, dir i18n.Direction) {
	l.lang = lang
	l.dir = dir
}

func (l *labels) TranslateText(lookup i18n.LookupFunc) {
	for _, key := range l.keys {
		if text, ok := lookup(key); ok {
			l.text[key] = text
		}
	}
}

func (l *labels) TranslatePlaceholders(lookup i18n.LookupFunc) {
	for key := range l.placeholders {
		if text, ok := lookup(key); ok {
			l.placeholders[key] = text
		}
	}
}

// get returns the current text for key
func (l *labels) get(key string) string {
	if text, ok := l.text[key]; ok {
		return text
	}
	return key
}

func (l *labels) placeholder(key string) string {
	return l.placeholders[key]
}
