package view

import (
	"fmt"
	"io"

	"gxportfolio/internal/i18n"

	"github.com/PuerkitoBio/goquery"
)

// Attributes the page uses to tag translatable elements
const (
	TranslateAttr            = "data-translate"
	TranslatePlaceholderAttr = "data-translate-placeholder"
	LanguageOptionAttr       = "data-lang"
)

// HTMLDocument is an i18n.Document over a parsed HTML page
type HTMLDocument struct {
	doc *goquery.Document
}

var _ i18n.Document = (*HTMLDocument)(nil)

// NewHTMLDocument parses an HTML page
func NewHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &HTMLDocument{doc: doc}, nil
}

// SetLanguage sets lang and dir on the root element, toggles the body "rtl"
// class and marks the matching language option active
func (d *HTMLDocument) SetLanguage(lang string, dir i18n.Direction) {
	root := d.doc.Find("html")
	root.SetAttr("lang", lang)
	root.SetAttr("dir", string(dir))

	body := d.doc.Find("body")
	if dir == i18n.RTL {
		body.AddClass("rtl")
	} else {
		body.RemoveClass("rtl")
	}

	d.doc.Find(".lang-option").Each(func(_ int, s *goquery.Selection) {
		if code, _ := s.Attr(LanguageOptionAttr); code == lang {
			s.AddClass("active")
		} else {
			s.RemoveClass("active")
		}
	})
}

// TranslateText replaces the text of every data-translate element whose key
// resolves
func (d *HTMLDocument) TranslateText(lookup i18n.LookupFunc) {
	d.doc.Find("[" + TranslateAttr + "]").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr(TranslateAttr)
		if value, ok := lookup(key); ok {
			s.SetText(value)
		}
	})
}

// TranslatePlaceholders replaces the placeholder of every
// data-translate-placeholder element whose key resolves
func (d *HTMLDocument) TranslatePlaceholders(lookup i18n.LookupFunc) {
	d.doc.Find("[" + TranslatePlaceholderAttr + "]").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr(TranslatePlaceholderAttr)
		if value, ok := lookup(key); ok {
			s.SetAttr("placeholder", value)
		}
	})
}

// Selection exposes the underlying document for inspection
func (d *HTMLDocument) Selection() *goquery.Selection {
	return d.doc.Selection
}

// HTML serializes the document
func (d *HTMLDocument) HTML() (string, error) {
	out, err := d.doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize page: %w", err)
	}
	return out, nil
}
