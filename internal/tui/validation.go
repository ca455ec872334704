package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/repoextract/internal/config"
)

// Validation error messages
var (
	ErrRequired      = errors.New("this field is required")
	ErrInvalidNumber = errors.New("must be a valid number")
	ErrNegativeInt   = errors.New("must be zero or a positive integer")
)

// ValidateRequired ensures a string value is not empty
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ValidateDuration validates that a string can be parsed as a time.Duration
func ValidateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // Empty is valid (will use default)
	}
	_, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration format (use: 30s, 5m, 1h): %w", err)
	}
	return nil
}

// ValidateNonNegativeInt validates that a string represents an integer >= 0
func ValidateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // Empty is valid (will use default)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return ErrInvalidNumber
	}
	if n < 0 {
		return ErrNegativeInt
	}
	return nil
}

// ValidateGitBackend validates clone backend values
func ValidateGitBackend(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case config.BackendExec, config.BackendGoGit, config.BackendAuto:
		return nil
	}
	return fmt.Errorf("invalid git backend: must be %s, %s or %s",
		config.BackendExec, config.BackendGoGit, config.BackendAuto)
}

// ValidateLogLevel accepts the levels the logger understands
func ValidateLogLevel(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level %q: must be trace, debug, info, warn or error", s)
}

// ValidateLogFormat accepts pretty and json
func ValidateLogFormat(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pretty", "json":
		return nil
	}
	return fmt.Errorf("invalid log format %q: must be pretty or json", s)
}
