package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/chronos/internal/domain"
)

// resolveProjectID accepts a full id, an id prefix, or a project name
// (case-insensitive) and returns the matching project id.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input || strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveWorkItemID resolves a work item within a project by id, id
// prefix, or name (case-insensitive).
func resolveWorkItemID(ctx context.Context, app *App, projectID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("work item is required")
	}

	items, err := app.WorkItems.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}

	for _, w := range items {
		if w.ID == input || strings.EqualFold(w.Name, input) {
			return w.ID, nil
		}
	}

	var matches []*domain.WorkItem
	for _, w := range items {
		if strings.HasPrefix(w.ID, input) {
			matches = append(matches, w)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("work item not found: %q", input)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("work item %q is ambiguous (%d matches)", input, len(matches))
	}
}
