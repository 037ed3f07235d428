package service

import (
	"context"

	"gxportfolio/internal/domain"
	"gxportfolio/internal/logger"

	"github.com/bwmarrin/discordgo"
)

// suggestionLimit caps the "did you mean" list on an empty search
const suggestionLimit = 3

// CommandCatalog interface for catalog operations
type CommandCatalog interface {
	Search(query string) domain.SearchResult
	Suggest(query string, limit int) []string
	Statistics() domain.CategoryStatistics
	ApplicationCommands() []*discordgo.ApplicationCommand
}

// CommandService handles business logic for the command catalog
type CommandService struct {
	catalog CommandCatalog
	logger  *logger.Logger
}

// NewCommandService creates a new command service
func NewCommandService(catalog CommandCatalog, log *logger.Logger) *CommandService {
	log.Info("Command service initialized")
	return &CommandService{
		catalog: catalog,
		logger:  log,
	}
}

// Search runs a catalog search and attaches suggestions when nothing matched
func (s *CommandService) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, err
	}

	result := s.catalog.Search(query)
	if result.Cleared {
		s.logger.Debug("Search cleared (query was blank)")
		return result, nil
	}

	if result.NoResults() {
		result.Suggestions = s.catalog.Suggest(result.Query, suggestionLimit)
		s.logger.Info("No commands found for '%s' (%d suggestions)", result.Query, len(result.Suggestions))
		return result, nil
	}

	s.logger.Debug("Search '%s' matched %d commands", result.Query, len(result.Records))
	return result, nil
}

// Statistics returns per-category command counts
func (s *CommandService) Statistics(ctx context.Context) (domain.CategoryStatistics, error) {
	if err := ctx.Err(); err != nil {
		return domain.CategoryStatistics{}, err
	}

	stats := s.catalog.Statistics()
	s.logger.Debug("Statistics computed: %d categories, %d commands", len(stats.Categories), stats.Total)
	return stats, nil
}

// DiscordCommands returns the catalog as Discord application command payloads
func (s *CommandService) DiscordCommands(ctx context.Context) ([]*discordgo.ApplicationCommand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	commands := s.catalog.ApplicationCommands()
	s.logger.Debug("Exported %d application commands", len(commands))
	return commands, nil
}
