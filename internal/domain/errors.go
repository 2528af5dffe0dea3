package domain

import "fmt"

// InvalidTableError reports a bracket table that breaks the progressive table invariants
type InvalidTableError struct {
	Table  string
	Index  int
	Reason string
}

func (e *InvalidTableError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid bracket table %s: bracket %d: %s", e.Table, e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid bracket table %s: %s", e.Table, e.Reason)
}

// UnknownJurisdictionError reports a state id absent from the rule tables
type UnknownJurisdictionError struct {
	StateID string
}

func (e *UnknownJurisdictionError) Error() string {
	return fmt.Sprintf("unknown jurisdiction %q", e.StateID)
}

// InvalidScenarioError reports an income scenario the engine refuses to evaluate
type InvalidScenarioError struct {
	Field  string
	Reason string
}

func (e *InvalidScenarioError) Error() string {
	return fmt.Sprintf("invalid scenario: %s: %s", e.Field, e.Reason)
}
