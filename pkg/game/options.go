package game

import (
	"log/slog"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/aretw0/hangman/pkg/ports"
)

// Option defines a functional option for configuring the Session.
type Option func(*Session)

// WithSettings sets the feature flags of the session.
func WithSettings(settings domain.Settings) Option {
	return func(s *Session) {
		s.settings = settings
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// WithAdminPrompter sets the collaborator of the mode menu and the admin flow.
// If not provided, the display is used when it implements ports.AdminPrompter.
func WithAdminPrompter(p ports.AdminPrompter) Option {
	return func(s *Session) {
		s.admin = p
	}
}

// WithSessionID sets the identifier attached to events and logs.
func WithSessionID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}
