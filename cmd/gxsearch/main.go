package main

import (
	"fmt"
	"io"
	"os"

	"gxportfolio/internal/catalog"
	"gxportfolio/internal/config"
	"gxportfolio/internal/i18n"
	"gxportfolio/internal/logger"
	"gxportfolio/internal/service"
	"gxportfolio/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// bubbletea owns the terminal, so logs go to a file when DEBUG is set
	var logOut io.Writer = io.Discard
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("gxsearch.log", "gxsearch")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.NewWithWriter(cfg.Logging, logOut)

	translations, err := i18n.DefaultTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading translations: %v\n", err)
		os.Exit(1)
	}

	lang, ok := translations.Normalize(cfg.DefaultLanguage)
	if !ok {
		lang = i18n.SourceLanguage
	}
	if len(os.Args) > 1 {
		if normalized, ok := translations.Normalize(os.Args[1]); ok {
			lang = normalized
		}
	}

	commands := service.NewCommandService(catalog.Default(), log)

	app, err := tui.NewApp(commands, translations, i18n.Options{Initial: lang, Strict: cfg.I18NStrict}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating app: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
