package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/google/uuid"
)

// ConvertedPlan holds the domain objects produced from one plan file.
type ConvertedPlan struct {
	Project   *domain.Project
	WorkItems []*domain.WorkItem
}

// Convert transforms a validated plan into domain objects ready for
// persistence. Call ValidatePlanFile first; Convert assumes the plan is
// valid. Dependencies are attached to their successor's Predecessors in
// file order.
func Convert(plan *PlanFile) (*ConvertedPlan, error) {
	now := time.Now().UTC()

	project := &domain.Project{
		ID:        uuid.New().String(),
		Name:      plan.Project.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if plan.Project.StartDate != "" {
		start, err := time.Parse(dateLayout, plan.Project.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing project start_date: %w", err)
		}
		project.StartDate = &start
	}

	refMap := make(map[string]string, len(plan.WorkItems))
	byID := make(map[string]*domain.WorkItem, len(plan.WorkItems))

	workItems := make([]*domain.WorkItem, 0, len(plan.WorkItems))
	for _, wi := range plan.WorkItems {
		realID := uuid.New().String()
		refMap[wi.Ref] = realID

		item := &domain.WorkItem{
			ID:        realID,
			ProjectID: project.ID,
			Name:      wi.Name,
			StartDate: parseOptionalDate(wi.StartDate),
			EndDate:   parseOptionalDate(wi.EndDate),
			CreatedAt: now,
			UpdatedAt: now,
		}
		byID[realID] = item
		workItems = append(workItems, item)
	}

	for _, d := range plan.Dependencies {
		succID, ok := refMap[d.SuccessorRef]
		if !ok {
			return nil, fmt.Errorf("successor_ref %q not found", d.SuccessorRef)
		}
		predID, ok := refMap[d.PredecessorRef]
		if !ok {
			return nil, fmt.Errorf("predecessor_ref %q not found", d.PredecessorRef)
		}
		depType, err := domain.ParseDependencyType(d.Type)
		if err != nil {
			return nil, err
		}
		succ := byID[succID]
		succ.Predecessors = append(succ.Predecessors, domain.Dependency{
			PredecessorID: predID,
			Type:          depType,
			LagDays:       d.LagDays,
		})
	}

	return &ConvertedPlan{Project: project, WorkItems: workItems}, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
