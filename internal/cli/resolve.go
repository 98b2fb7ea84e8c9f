package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/repository"
)

// resolveSessionID expands the short IDs shown by "session list" to a full
// session ID. Full IDs pass through unchanged.
func resolveSessionID(ctx context.Context, a *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("session ID is required")
	}
	if len(input) >= 36 {
		return input, nil
	}
	sessions, err := a.Sessions.List(ctx, a.user)
	if err != nil {
		return "", err
	}
	var match string
	for _, s := range sessions {
		if !strings.HasPrefix(s.ID, input) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("session ID %q is ambiguous", input)
		}
		match = s.ID
	}
	if match == "" {
		return "", fmt.Errorf("session %s: %w", input, repository.ErrNotFound)
	}
	return match, nil
}

// resolveExerciseID does the same for exercises inside one session, and also
// accepts an exercise name.
func resolveExerciseID(ctx context.Context, a *App, sessionID, input string) (string, error) {
	s, err := a.Sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	input = strings.TrimSpace(input)
	var match string
	for _, e := range s.Exercises {
		if e.ID == input {
			return e.ID, nil
		}
		if strings.EqualFold(e.Name, input) || (len(input) >= 4 && strings.HasPrefix(e.ID, input)) {
			if match != "" && match != e.ID {
				return "", fmt.Errorf("exercise %q is ambiguous", input)
			}
			match = e.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("exercise %s: %w", input, repository.ErrNotFound)
	}
	return match, nil
}
