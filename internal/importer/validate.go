package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidatePlanFile checks the plan for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanFile(plan *PlanFile) []error {
	var errs []error

	if plan.Project.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if plan.Project.StartDate != "" {
		if _, err := time.Parse(dateLayout, plan.Project.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("project.start_date: invalid date format %q (expected YYYY-MM-DD)", plan.Project.StartDate))
		}
	}

	refs := make(map[string]bool)
	for i, wi := range plan.WorkItems {
		prefix := fmt.Sprintf("work_items[%d]", i)
		if wi.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[wi.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, wi.Ref))
		} else {
			refs[wi.Ref] = true
		}
		if wi.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		start := validateOptionalDate(&errs, prefix+".start_date", wi.StartDate)
		end := validateOptionalDate(&errs, prefix+".end_date", wi.EndDate)
		if start != nil && end != nil && end.Before(*start) {
			errs = append(errs, fmt.Errorf("%s: end_date %q is before start_date %q", prefix, *wi.EndDate, *wi.StartDate))
		}
	}

	seen := make(map[string]bool)
	for i, d := range plan.Dependencies {
		prefix := fmt.Sprintf("dependencies[%d]", i)
		if d.PredecessorRef == "" || !refs[d.PredecessorRef] {
			errs = append(errs, fmt.Errorf("%s.predecessor_ref: unknown ref %q", prefix, d.PredecessorRef))
		}
		if d.SuccessorRef == "" || !refs[d.SuccessorRef] {
			errs = append(errs, fmt.Errorf("%s.successor_ref: unknown ref %q", prefix, d.SuccessorRef))
		}
		if d.PredecessorRef != "" && d.PredecessorRef == d.SuccessorRef {
			errs = append(errs, fmt.Errorf("%s: work item %q cannot depend on itself", prefix, d.SuccessorRef))
		}
		if _, err := domain.ParseDependencyType(d.Type); err != nil {
			errs = append(errs, fmt.Errorf("%s.type: %v", prefix, err))
		}
		key := d.SuccessorRef + "\x00" + d.PredecessorRef
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate edge %s -> %s", prefix, d.PredecessorRef, d.SuccessorRef))
		}
		seen[key] = true
	}

	return errs
}

func validateOptionalDate(errs *[]error, field string, value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *value))
		return nil
	}
	return &t
}
