package handlers

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"gxportfolio/internal/config"
	"gxportfolio/internal/content"
	"gxportfolio/internal/domain"
	"gxportfolio/internal/i18n"
	"gxportfolio/internal/logger"
	"gxportfolio/internal/service"
	"gxportfolio/internal/view"
	"gxportfolio/web"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
)

// CommandService interface for catalog operations
type CommandService interface {
	Search(ctx context.Context, query string) (domain.SearchResult, error)
	Statistics(ctx context.Context) (domain.CategoryStatistics, error)
	DiscordCommands(ctx context.Context) ([]*discordgo.ApplicationCommand, error)
}

// ContactService interface for contact form submissions
type ContactService interface {
	Submit(ctx context.Context, req domain.ContactRequest) (string, error)
}

// ContentProvider interface for rendered page sections
type ContentProvider interface {
	Sections(lang string) []content.Section
}

// ResultsRenderer interface for the search results fragment
type ResultsRenderer interface {
	Render(w io.Writer, result domain.SearchResult) error
}

// Handler holds the HTTP handlers
type Handler struct {
	commandService CommandService
	contactService ContactService
	content        ContentProvider
	translations   *i18n.Table
	config         *config.Config
	templates      *template.Template
	results        ResultsRenderer
	static         fs.FS
	logger         *logger.Logger
}

// NewHandler creates a new handler
func NewHandler(commandService CommandService, contactService ContactService, contentProvider ContentProvider, translations *i18n.Table, cfg *config.Config, log *logger.Logger) *Handler {
	log.Info("Loading HTML templates from embedded web/templates/*.html")

	templates := template.Must(template.New("").Funcs(templateFuncs(translations)).ParseFS(web.Templates(), "*.html"))

	log.Info("Handler initialized successfully")

	return &Handler{
		commandService: commandService,
		contactService: contactService,
		content:        contentProvider,
		translations:   translations,
		config:         cfg,
		templates:      templates,
		results:        view.NewResultsRenderer(),
		static:         web.Static(),
		logger:         log,
	}
}

// templateFuncs renders source-language text; the page switch rewrites it afterwards
func templateFuncs(translations *i18n.Table) template.FuncMap {
	return template.FuncMap{
		"t": func(key string) string {
			if text, ok := translations.Lookup(i18n.SourceLanguage, key); ok {
				return text
			}
			return key
		},
		"upper": strings.ToUpper,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Static files
	if h.static != nil {
		router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(h.static))))
	}

	// API routes
	router.HandleFunc("/api/search", h.SearchAPIHandler).Methods("GET")
	router.HandleFunc("/api/stats", h.StatsAPIHandler).Methods("GET")
	router.HandleFunc("/api/translations/{lang}", h.TranslationsAPIHandler).Methods("GET")
	router.HandleFunc("/api/commands/discord", h.DiscordCommandsAPIHandler).Methods("GET")

	router.HandleFunc("/search", h.SearchFragmentHandler).Methods("GET")
	router.HandleFunc("/contact", h.ContactHandler).Methods("POST")
	router.HandleFunc("/", h.PageHandler).Methods("GET")

	// 404 handler for all other routes
	router.NotFoundHandler = http.HandlerFunc(h.NotFoundHandler)
}

// growthItem is one progress bar in the growth section
type growthItem struct {
	Key     string
	Percent int
}

// powerItem is one command-count card in the power section
type powerItem struct {
	Key   string
	Count int
}

var growthItems = []growthItem{
	{Key: "growth-moderation", Percent: 85},
	{Key: "growth-engagement", Percent: 70},
	{Key: "growth-activity", Percent: 60},
}

// powerItems maps category counts onto the power cards
func powerItems(stats domain.CategoryStatistics) []powerItem {
	items := make([]powerItem, 0, len(domain.CategoryGroups))
	for _, g := range domain.CategoryGroups {
		items = append(items, powerItem{Key: g.Key, Count: stats.GroupCount(g)})
	}
	return items
}

// resolveLanguage maps the ?lang= value onto a supported language, falling
// back to the configured default
func (h *Handler) resolveLanguage(requested string) string {
	if requested != "" {
		if lang, ok := h.translations.Normalize(requested); ok {
			return lang
		}
		h.logger.Warn("Unsupported language '%s' requested, using '%s'", requested, h.config.DefaultLanguage)
	}
	if lang, ok := h.translations.Normalize(h.config.DefaultLanguage); ok {
		return lang
	}
	return i18n.SourceLanguage
}

// PageHandler renders the portfolio page in the requested language
func (h *Handler) PageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lang := h.resolveLanguage(r.URL.Query().Get("lang"))
	h.logger.Info("Rendering page in '%s'", lang)

	stats, err := h.commandService.Statistics(ctx)
	if err != nil {
		h.logger.Error("Failed to get command statistics: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := struct {
		Languages []string
		Growth    []growthItem
		Power     []powerItem
		Stats     domain.CategoryStatistics
		Sections  []content.Section
		BaseURL   string
	}{
		Languages: h.translations.Languages(),
		Growth:    growthItems,
		Power:     powerItems(stats),
		Stats:     stats,
		Sections:  h.content.Sections(lang),
		BaseURL:   h.config.BaseURL,
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("Failed to execute index template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	doc, err := view.NewHTMLDocument(&buf)
	if err != nil {
		h.logger.Error("Failed to parse rendered page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	switcher := i18n.NewSwitcher(h.translations, i18n.Options{
		Initial: i18n.SourceLanguage,
		Strict:  h.config.I18NStrict,
	}, h.logger)

	if _, err := switcher.Switch(lang, doc); err != nil {
		h.logger.Error("Failed to switch page to '%s': %v", lang, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	page, err := doc.HTML()
	if err != nil {
		h.logger.Error("Failed to serialize page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, page); err != nil {
		h.logger.Error("Failed to write response: %v", err)
		return
	}

	h.logger.Debug("Page rendered successfully (%s, %d bytes)", lang, len(page))
}

// SearchFragmentHandler renders the results block for ?q=
func (h *Handler) SearchFragmentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	result, err := h.commandService.Search(ctx, query)
	if err != nil {
		h.logger.Error("Failed to search commands for '%s': %v", query, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.results.Render(&buf, result); err != nil {
		h.logger.Error("Failed to render search results: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Failed to write response: %v", err)
	}
}

// ContactHandler handles contact form submissions
func (h *Handler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("Invalid form data in contact request: %v", err)
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := domain.ContactRequest{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}

	reply, err := h.contactService.Submit(ctx, req)
	if err != nil {
		var validationErr service.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("Invalid contact submission: %v", err)
			http.Error(w, validationErr.Message, http.StatusBadRequest)
			return
		}

		h.logger.Error("Failed to submit contact form: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, reply); err != nil {
		h.logger.Error("Failed to write response: %v", err)
	}
}

// NotFoundHandler handles 404 errors
func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("404 page requested for path '%s'", r.URL.Path)

	data := struct {
		BaseURL string
		Path    string
	}{
		BaseURL: h.config.BaseURL,
		Path:    r.URL.Path,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.templates.ExecuteTemplate(w, "404.html", data); err != nil {
		h.logger.Error("Failed to execute 404 template: %v", err)
		return
	}

	h.logger.Debug("404 page rendered successfully")
}
