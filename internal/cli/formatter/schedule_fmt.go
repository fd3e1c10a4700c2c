package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/service"
)

func orDash(s string) string {
	if s == "" {
		return Dim("-")
	}
	return s
}

// FormatScheduleResponse renders the changeset table plus any cycle and
// predecessor warnings.
func FormatScheduleResponse(resp *service.ScheduleResponse) string {
	var b strings.Builder

	if len(resp.Changes) == 0 {
		b.WriteString("No date changes needed.\n")
	} else {
		headers := []string{"ITEM", "OLD START", "OLD END", "NEW START", "NEW END"}
		rows := make([][]string, 0, len(resp.Changes))
		for _, c := range resp.Changes {
			rows = append(rows, []string{
				c.Name,
				orDash(c.OldStart),
				orDash(c.OldEnd),
				StyleGreen.Render(c.NewStart),
				StyleGreen.Render(c.NewEnd),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
		if resp.DryRun {
			b.WriteString(Dim(fmt.Sprintf("%d change(s), not applied (dry run)", len(resp.Changes))))
		} else {
			b.WriteString(fmt.Sprintf("%d change(s) applied", len(resp.Changes)))
		}
		b.WriteString("\n")
	}

	if len(resp.CycleIDs) > 0 {
		b.WriteString(Warn(fmt.Sprintf("dependency cycle, %d item(s) left unscheduled: %s",
			len(resp.CycleIDs), strings.Join(resp.CycleIDs, ", "))))
		b.WriteString("\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString(Warn(w))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatProjectList renders projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "START"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		start := ""
		if p.StartDate != nil {
			start = p.StartDate.Format("2006-01-02")
		}
		rows = append(rows, []string{Dim(shortID(p.ID)), p.Name, orDash(start)})
	}
	return RenderTable(headers, rows)
}

// FormatWorkItemList renders a project's work items as a table.
func FormatWorkItemList(items []*domain.WorkItem) string {
	headers := []string{"ID", "NAME", "START", "END", "DEPS"}
	rows := make([][]string, 0, len(items))
	for _, w := range items {
		rows = append(rows, []string{
			Dim(shortID(w.ID)),
			w.Name,
			orDash(formatDate(w.StartDate)),
			orDash(formatDate(w.EndDate)),
			fmt.Sprintf("%d", len(w.Predecessors)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatDiagnostics renders the predecessor check findings, one block
// per affected work item.
func FormatDiagnostics(findings map[string][]string, items []*domain.WorkItem) string {
	if len(findings) == 0 {
		return StyleGreen.Render("All dependencies are resolvable.")
	}

	var b strings.Builder
	for _, w := range items {
		warnings, ok := findings[w.ID]
		if !ok {
			continue
		}
		b.WriteString(Bold(w.Name))
		b.WriteString(Dim(" (" + shortID(w.ID) + ")"))
		b.WriteString("\n")
		for _, warning := range warnings {
			b.WriteString("  ")
			b.WriteString(Warn(warning))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}
