package domain

import "fmt"

// DependencyType is one of the four classical precedence relationships.
type DependencyType string

const (
	FinishToStart  DependencyType = "FS"
	StartToStart   DependencyType = "SS"
	FinishToFinish DependencyType = "FF"
	StartToFinish  DependencyType = "SF"
)

// ParseDependencyType maps a stored or user-supplied string to a
// DependencyType. The empty string defaults to finish-to-start.
func ParseDependencyType(s string) (DependencyType, error) {
	switch DependencyType(s) {
	case "":
		return FinishToStart, nil
	case FinishToStart, StartToStart, FinishToFinish, StartToFinish:
		return DependencyType(s), nil
	default:
		return "", fmt.Errorf("unknown dependency type %q (want FS, SS, FF or SF)", s)
	}
}

// Dependency is one precedence edge: the owning work item may not
// violate the constraint the edge places on it relative to the
// predecessor. LagDays is signed; a negative lag is a lead.
type Dependency struct {
	PredecessorID string
	Type          DependencyType
	LagDays       int
}

// NeedsPredecessorEnd reports whether the edge type constrains against
// the predecessor's end date (FS, FF) rather than its start (SS, SF).
func (d Dependency) NeedsPredecessorEnd() bool {
	return d.Type == FinishToStart || d.Type == FinishToFinish
}
