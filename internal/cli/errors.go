// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for carscout CLI commands.
//
// Every command handler returns its error; the dispatcher decides how
// to display it and which exit code to use.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/carscout-tui/internal/agent"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNetworkError indicates the agent is unreachable
	ExitNetworkError = 5
	// ExitTimeoutError indicates an operation timed out
	ExitTimeoutError = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError represents invalid command usage.
type UsageError struct {
	Field  string // Argument that failed validation
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrMissingQuery is returned when a search command got no query text.
var ErrMissingQuery = &UsageError{Field: "query", Reason: "no search text given"}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode determines the appropriate exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	switch {
	case errors.Is(err, agent.ErrUnavailable):
		return ExitNetworkError
	case errors.Is(err, agent.ErrTimeout):
		return ExitTimeoutError
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "config") {
		return ExitConfigError
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "dial") ||
		strings.Contains(errMsg, "unreachable") {
		return ExitNetworkError
	}

	return ExitGeneralError
}
