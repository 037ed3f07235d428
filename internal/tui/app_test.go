package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gxportfolio/internal/catalog"
	"gxportfolio/internal/domain"
	"gxportfolio/internal/i18n"
	"gxportfolio/internal/logger"
	"gxportfolio/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, initial string) *App {
	t.Helper()

	table, err := i18n.DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable() error = %v", err)
	}

	commands := service.NewCommandService(catalog.Default(), logger.Discard())
	app, err := NewApp(commands, table, i18n.Options{Initial: initial}, logger.Discard())
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

func typeText(app *App, text string) {
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestApp_SearchAsYouType(t *testing.T) {
	app := newTestApp(t, "en")

	if !app.result.Cleared {
		t.Fatal("initial result should be cleared")
	}
	if !strings.Contains(app.View(), "Type to search") {
		t.Errorf("cleared view should show the hint, got %q", app.View())
	}

	typeText(app, "ban")
	if app.searchInput.Value() != "ban" {
		t.Fatalf("input = %q, want ban", app.searchInput.Value())
	}
	if len(app.result.Records) == 0 {
		t.Fatal("search for ban should match commands")
	}
	for _, r := range app.result.Records {
		text := strings.ToLower(r.Name + " " + string(r.Category) + " " + r.Description)
		if !strings.Contains(text, "ban") {
			t.Errorf("record %q does not contain ban", r.Name)
		}
	}
	if !strings.Contains(app.View(), "/ban") {
		t.Errorf("view should list /ban, got %q", app.View())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.searchInput.Value() != "" || !app.result.Cleared {
		t.Errorf("esc should clear the query, got %q (cleared = %v)", app.searchInput.Value(), app.result.Cleared)
	}

	typeText(app, "xyz123")
	if !app.result.NoResults() {
		t.Fatalf("xyz123 should match nothing, got %d records", len(app.result.Records))
	}
	view := app.View()
	if !strings.Contains(view, "No commands found") || !strings.Contains(view, "Try searching with different keywords") {
		t.Errorf("view should show the empty state, got %q", view)
	}
}

func TestApp_ToggleLanguage(t *testing.T) {
	app := newTestApp(t, "en")
	table, _ := i18n.DefaultTable()

	arTitle, _ := table.Lookup("ar", "search-title")
	arPlaceholder, _ := table.Lookup("ar", "search-placeholder")
	enTitle, _ := table.Lookup("en", "search-title")
	enPlaceholder, _ := table.Lookup("en", "search-placeholder")

	if app.searchInput.Placeholder != enPlaceholder {
		t.Errorf("placeholder = %q, want %q", app.searchInput.Placeholder, enPlaceholder)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	if app.switcher.Current() != "ar" {
		t.Fatalf("language = %q, want ar", app.switcher.Current())
	}
	if app.switcher.Direction() != i18n.RTL {
		t.Errorf("direction = %q, want rtl", app.switcher.Direction())
	}
	if got := app.labels.get("search-title"); got != arTitle {
		t.Errorf("search-title = %q, want %q", got, arTitle)
	}
	if app.searchInput.Placeholder != arPlaceholder {
		t.Errorf("placeholder = %q, want %q", app.searchInput.Placeholder, arPlaceholder)
	}
	if !strings.Contains(app.View(), arTitle) {
		t.Errorf("view should show the Arabic title")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	if app.switcher.Current() != "en" {
		t.Fatalf("language = %q, want en", app.switcher.Current())
	}
	if got := app.labels.get("search-title"); got != enTitle {
		t.Errorf("search-title after toggling back = %q, want %q", got, enTitle)
	}
	if app.searchInput.Placeholder != enPlaceholder {
		t.Errorf("placeholder after toggling back = %q", app.searchInput.Placeholder)
	}
}

func TestApp_InitialArabic(t *testing.T) {
	app := newTestApp(t, "ar")

	if app.switcher.Current() != "ar" {
		t.Errorf("language = %q, want ar", app.switcher.Current())
	}
	if app.labels.lang != "ar" || app.labels.dir != i18n.RTL {
		t.Errorf("labels = (%q, %q), want (ar, rtl)", app.labels.lang, app.labels.dir)
	}
}

func TestApp_UnsupportedInitialLanguage(t *testing.T) {
	app := newTestApp(t, "fr")

	if app.switcher.Current() != "en" {
		t.Errorf("language = %q, want en", app.switcher.Current())
	}
}

func TestApp_CountersAnimate(t *testing.T) {
	app := newTestApp(t, "en")

	if got := app.total.Value(app.elapsed); got != 0 {
		t.Errorf("total before the first frame = %d, want 0", got)
	}

	_, cmd := app.Update(tickMsg{})
	if cmd == nil {
		t.Fatal("counters should keep ticking after one frame")
	}
	if got := app.total.Value(app.elapsed); got >= app.stats.Total {
		t.Errorf("total after one frame = %d, want less than %d", got, app.stats.Total)
	}

	frames := 1
	for cmd != nil && frames < 1000 {
		_, cmd = app.Update(tickMsg{})
		frames++
	}

	if want := int(countDuration / frameInterval); frames != want {
		t.Errorf("animation took %d frames, want %d", frames, want)
	}
	if got := app.total.Value(app.elapsed); got != app.stats.Total {
		t.Errorf("total after animation = %d, want %d", got, app.stats.Total)
	}
	for _, f := range app.figures {
		if got := f.counter.Value(app.elapsed); got != f.counter.To {
			t.Errorf("%s = %d, want %d", f.key, got, f.counter.To)
		}
	}
	if !strings.Contains(app.View(), "68") {
		t.Errorf("view should show the final total, got %q", app.View())
	}
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, "en")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestApp_ViewBeforeResize(t *testing.T) {
	table, _ := i18n.DefaultTable()
	commands := service.NewCommandService(catalog.Default(), logger.Discard())
	app, err := NewApp(commands, table, i18n.Options{}, logger.Discard())
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	if got := app.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

type failingService struct{}

func (failingService) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	return domain.SearchResult{}, errors.New("search unavailable")
}

func (failingService) Statistics(ctx context.Context) (domain.CategoryStatistics, error) {
	return domain.CategoryStatistics{}, errors.New("stats unavailable")
}

func TestNewApp_StatisticsError(t *testing.T) {
	table, _ := i18n.DefaultTable()

	if _, err := NewApp(failingService{}, table, i18n.Options{}, logger.Discard()); err == nil {
		t.Error("NewApp() should fail when statistics are unavailable")
	}
}

func TestLabels(t *testing.T) {
	table := i18n.NewTable(map[string]map[string]string{
		"en": {"a": "Alpha", "p": "Type here"},
		"ar": {"a": "ألفا"},
	})

	l := newLabels(table, []string{"a", "unknown"}, []string{"p"})
	if l.get("a") != "Alpha" || l.get("unknown") != "unknown" || l.placeholder("p") != "Type here" {
		t.Fatalf("initial labels = %v / %v", l.text, l.placeholders)
	}

	switcher := i18n.NewSwitcher(table, i18n.Options{Initial: "en"}, logger.Discard())
	if _, err := switcher.Switch("ar", l); err != nil {
		t.Fatalf("Switch(ar) error = %v", err)
	}

	if l.get("a") != "ألفا" {
		t.Errorf("a = %q", l.get("a"))
	}
	if l.placeholder("p") != "Type here" {
		t.Errorf("untranslated placeholder changed to %q", l.placeholder("p"))
	}
	if l.lang != "ar" || l.dir != i18n.RTL {
		t.Errorf("labels = (%q, %q), want (ar, rtl)", l.lang, l.dir)
	}
}

func TestApp_ArabicScreenHasNoEnglishLabels(t *testing.T) {
	app := newTestApp(t, "en")
	table, _ := i18n.DefaultTable()

	for _, key := range app.labels.keys {
		if _, ok := table.Lookup("ar", key); !ok {
			t.Errorf("label %q has no ar translation", key)
		}
	}

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	tests := []struct {
		name    string
		query   string
		keys    []string
		english []string
	}{
		{
			name:    "cleared",
			query:   "",
			keys:    []string{"terminal-hint", "terminal-total", "help-language", "help-clear", "help-quit"},
			english: []string{"Type to search", "total", "language", "quit"},
		},
		{
			name:    "no results",
			query:   "xyz123",
			keys:    []string{"results-empty", "results-empty-hint"},
			english: []string{"No commands found", "Try searching with different keywords"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app.Update(tea.KeyMsg{Type: tea.KeyEsc})
			if tt.query != "" {
				typeText(app, tt.query)
			}

			view := app.View()
			for _, key := range tt.keys {
				want, _ := table.Lookup("ar", key)
				if !strings.Contains(view, want) {
					t.Errorf("view should contain ar %s %q", key, want)
				}
			}
			for _, s := range tt.english {
				if strings.Contains(view, s) {
					t.Errorf("view should not contain English %q after switching to ar", s)
				}
			}
		})
	}
}
