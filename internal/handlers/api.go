package handlers

import (
	"encoding/json"
	"net/http"

	"gxportfolio/internal/i18n"

	"github.com/gorilla/mux"
)

// writeJSON encodes v as the response body
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode JSON response: %v", err)
	}
}

// SearchAPIHandler returns the search result for ?q= as JSON
func (h *Handler) SearchAPIHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.commandService.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to search commands for '%s': %v", query, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// StatsAPIHandler returns per-category command counts
func (h *Handler) StatsAPIHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.commandService.Statistics(r.Context())
	if err != nil {
		h.logger.Error("Failed to get command statistics: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// TranslationsAPIHandler returns the dictionary for one language
func (h *Handler) TranslationsAPIHandler(w http.ResponseWriter, r *http.Request) {
	requested := mux.Vars(r)["lang"]

	lang, ok := h.translations.Normalize(requested)
	if !ok {
		h.logger.Warn("Translations requested for unsupported language '%s'", requested)
		http.Error(w, "Unsupported language", http.StatusNotFound)
		return
	}

	dict, _ := h.translations.Dictionary(lang)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"lang":         lang,
		"dir":          string(i18n.DirectionFor(lang)),
		"translations": dict,
	})
}

// DiscordCommandsAPIHandler returns the catalog as Discord application commands
func (h *Handler) DiscordCommandsAPIHandler(w http.ResponseWriter, r *http.Request) {
	commands, err := h.commandService.DiscordCommands(r.Context())
	if err != nil {
		h.logger.Error("Failed to export application commands: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, commands)
}
