package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanFile is the top-level JSON structure for plan import.
type PlanFile struct {
	Project      ProjectImport      `json:"project"`
	WorkItems    []WorkItemImport   `json:"work_items"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"`
}

// WorkItemImport defines a work item in the import file. Refs are
// file-local handles; real ids are minted during conversion.
type WorkItemImport struct {
	Ref       string  `json:"ref"`
	Name      string  `json:"name"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// DependencyImport defines a precedence edge between two work items.
type DependencyImport struct {
	PredecessorRef string `json:"predecessor_ref"`
	SuccessorRef   string `json:"successor_ref"`
	Type           string `json:"type,omitempty"`
	LagDays        int    `json:"lag_days,omitempty"`
}

// LoadPlanFile reads and parses a plan import JSON file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan PlanFile
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &plan, nil
}
