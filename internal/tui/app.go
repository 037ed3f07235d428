// Package tui is a terminal browser for the command catalog with
// search-as-you-type and an English/Arabic toggle.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gxportfolio/internal/animation"
	"gxportfolio/internal/domain"
	"gxportfolio/internal/i18n"
	"gxportfolio/internal/logger"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	frameInterval = 50 * time.Millisecond
	countDuration = 1500 * time.Millisecond

	searchTitleKey       = "search-title"
	searchSubtitleKey    = "search-subtitle"
	searchPlaceholderKey = "search-placeholder"
	hintKey              = "terminal-hint"
	totalKey             = "terminal-total"
	emptyKey             = "results-empty"
	emptyHintKey         = "results-empty-hint"
	suggestKey           = "results-suggest"
	moreKey              = "results-more"
)

// helpKeys maps each key binding to the label describing it
var helpKeys = []struct{ key, label string }{
	{"ctrl+l", "help-language"},
	{"esc", "help-clear"},
	{"ctrl+c", "help-quit"},
}

// CommandService interface for catalog operations
type CommandService interface {
	Search(ctx context.Context, query string) (domain.SearchResult, error)
	Statistics(ctx context.Context) (domain.CategoryStatistics, error)
}

// tickMsg advances the header counters by one frame
type tickMsg time.Time

// statFigure is one animated figure in the header
type statFigure struct {
	key     string
	counter animation.Counter
}

type App struct {
	commands CommandService
	switcher *i18n.Switcher
	labels   *labels
	logger   *logger.Logger

	// UI state
	width  int
	height int
	err    string

	// Search
	searchInput textinput.Model
	result      domain.SearchResult

	// Header
	stats   domain.CategoryStatistics
	figures []statFigure
	total   animation.Counter
	elapsed time.Duration
}

// NewApp creates the terminal browser. opts.Initial is the language shown
// first; unsupported values fall back to English.
func NewApp(commands CommandService, table *i18n.Table, opts i18n.Options, log *logger.Logger) (*App, error) {
	stats, err := commands.Statistics(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load command statistics: %w", err)
	}

	keys := []string{searchTitleKey, searchSubtitleKey, hintKey, totalKey, emptyKey, emptyHintKey, suggestKey, moreKey}
	for _, h := range helpKeys {
		keys = append(keys, h.label)
	}
	figures := make([]statFigure, 0, len(domain.CategoryGroups))
	for _, g := range domain.CategoryGroups {
		keys = append(keys, g.Key)
		figures = append(figures, statFigure{
			key:     g.Key,
			counter: animation.Counter{From: 0, To: stats.GroupCount(g), Duration: countDuration},
		})
	}

	l := newLabels(table, keys, []string{searchPlaceholderKey})

	// the labels start in the source language and are switched like a page
	initial := opts.Initial
	opts.Initial = i18n.SourceLanguage
	switcher := i18n.NewSwitcher(table, opts, log)
	if table.Supports(initial) {
		if _, err := switcher.Switch(initial, l); err != nil {
			return nil, fmt.Errorf("failed to switch to %s: %w", initial, err)
		}
	}

	search := textinput.New()
	search.Placeholder = l.placeholder(searchPlaceholderKey)
	search.Focus()

	log.Info("Terminal browser initialized (%d commands, language: %s)", stats.Total, switcher.Current())

	return &App{
		commands:    commands,
		switcher:    switcher,
		labels:      l,
		logger:      log,
		searchInput: search,
		result:      domain.SearchResult{Cleared: true},
		stats:       stats,
		figures:     figures,
		total:       animation.Counter{From: 0, To: stats.Total, Duration: countDuration},
	}, nil
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width - 4   // account for app padding
		a.height = msg.Height - 2 // account for app padding
		a.searchInput.Width = a.width - 6
		return a, nil

	case tickMsg:
		a.elapsed += frameInterval
		if a.total.Done(a.elapsed) {
			return a, nil
		}
		return a, tick()

	case tea.KeyMsg:
		a.err = ""

		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit

		case "ctrl+l":
			a.toggleLanguage()
			return a, nil

		case "esc":
			a.searchInput.SetValue("")
			a.search()
			return a, nil

		default:
			var cmd tea.Cmd
			a.searchInput, cmd = a.searchInput.Update(msg)
			a.search()
			return a, cmd
		}
	}

	return a, nil
}

// search recomputes the results for the current input
func (a *App) search() {
	result, err := a.commands.Search(context.Background(), a.searchInput.Value())
	if err != nil {
		a.logger.Error("Search failed: %v", err)
		a.err = err.Error()
		return
	}
	a.result = result
}

// toggleLanguage flips between English and Arabic
func (a *App) toggleLanguage() {
	next := i18n.LangArabic
	if a.switcher.Current() == i18n.LangArabic {
		next = i18n.LangEnglish
	}

	if _, err := a.switcher.Switch(next, a.labels); err != nil {
		a.err = err.Error()
		// strict mode still switched; only an unsupported language did not
		var missing *i18n.MissingKeysError
		if !errors.As(err, &missing) {
			return
		}
	}

	a.searchInput.Placeholder = a.labels.placeholder(searchPlaceholderKey)
	a.logger.Debug("Terminal language switched to '%s'", a.switcher.Current())
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Header
	header := []string{
		titleStyle.Render("GXBot") + " " + subtitleStyle.Render(a.labels.get(searchTitleKey)),
		mutedStyle.Render(a.labels.get(searchSubtitleKey)),
		"",
		a.renderStats(),
	}
	for _, line := range header {
		b.WriteString(a.align(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Search bar
	b.WriteString(a.searchInput.View())
	b.WriteString("\n\n")

	// Results
	listHeight := a.height - 12
	if listHeight < 3 {
		listHeight = 3
	}
	b.WriteString(a.renderResults(listHeight))

	// Status/error
	if a.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + a.err))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(a.renderHelp())

	return appStyle.Render(b.String())
}

// align right-aligns a line when the active language reads right to left
func (a *App) align(line string) string {
	if a.switcher.Direction() != i18n.RTL {
		return line
	}
	return lipgloss.NewStyle().Width(a.width - 4).Align(lipgloss.Right).Render(line)
}

func (a *App) renderStats() string {
	parts := make([]string, 0, len(a.figures)+1)
	for _, f := range a.figures {
		parts = append(parts, statStyle.Render(fmt.Sprintf("%d", f.counter.Value(a.elapsed)))+" "+statLabelStyle.Render(a.labels.get(f.key)))
	}
	parts = append(parts, statStyle.Render(fmt.Sprintf("%d", a.total.Value(a.elapsed)))+" "+statLabelStyle.Render(a.labels.get(totalKey)))
	return strings.Join(parts, "  ")
}

func (a *App) renderResults(height int) string {
	if a.result.Cleared {
		return mutedStyle.Render(fmt.Sprintf("%s (%d)", a.labels.get(hintKey), a.stats.Total)) + "\n"
	}

	if a.result.NoResults() {
		var b strings.Builder
		b.WriteString(errorStyle.Render(a.labels.get(emptyKey)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(a.labels.get(emptyHintKey)))
		b.WriteString("\n")
		if len(a.result.Suggestions) > 0 {
			names := make([]string, len(a.result.Suggestions))
			for i, s := range a.result.Suggestions {
				names[i] = "/" + s
			}
			b.WriteString(mutedStyle.Render(a.labels.get(suggestKey)+" ") + nameStyle.Render(strings.Join(names, ", ")) + "?\n")
		}
		return b.String()
	}

	var lines []string
	for i, r := range a.result.Records {
		if i >= height {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("... +%d %s", len(a.result.Records)-height, a.labels.get(moreKey))))
			break
		}
		lines = append(lines, nameStyle.Render("/"+r.Name)+" "+categoryStyle.Render(string(r.Category))+" "+descriptionStyle.Render(r.Description))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (a *App) renderHelp() string {
	var parts []string
	for _, h := range helpKeys {
		parts = append(parts, helpKeyStyle.Render(h.key)+" "+helpStyle.Render(a.labels.get(h.label)))
	}

	return strings.Join(parts, "  ")
}
