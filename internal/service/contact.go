package service

import (
	"context"
	"fmt"
	"strings"

	"gxportfolio/internal/domain"
	"gxportfolio/internal/logger"
)

// ValidationError represents a request that cannot be accepted as given
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ContactService accepts contact form submissions. Nothing is stored.
type ContactService struct {
	logger *logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(log *logger.Logger) *ContactService {
	log.Info("Contact service initialized")
	return &ContactService{logger: log}
}

// Submit validates a submission and returns the acknowledgement shown to the sender
func (s *ContactService) Submit(ctx context.Context, req domain.ContactRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !req.Complete() {
		s.logger.Warn("Contact submission rejected: missing fields")
		return "", ValidationError{Message: "Please fill in all fields."}
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	s.logger.Info("Contact submission received from '%s' <%s> (%d chars)", name, email, len(req.Message))
	return fmt.Sprintf("Thank you, %s! Your message has been received. We'll get back to you at %s soon.", name, email), nil
}
