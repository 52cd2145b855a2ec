package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"schooladmin/internal/pkg/apperrors"
)

// ClassWriter updates a class's display name, matched by code.
type ClassWriter interface {
	UpdateName(ctx context.Context, code, name string) error
}

// ClassService handles class-related operations
type ClassService struct {
	classes ClassWriter
	logger  zerolog.Logger
}

// NewClassService creates a new class service instance
func NewClassService(classes ClassWriter, logger zerolog.Logger) *ClassService {
	return &ClassService{
		classes: classes,
		logger:  logger,
	}
}

// UpdateClassName renames the class with the given code. The name is
// trimmed before storing; empty or whitespace-only names are rejected
// before any store access.
func (s *ClassService) UpdateClassName(ctx context.Context, code, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperrors.NewValidationError("className is required and must be a non-empty string")
	}

	if err := s.classes.UpdateName(ctx, code, trimmed); err != nil {
		return err
	}

	s.logger.Info().Str("classCode", code).Msg("Class name updated")
	return nil
}
