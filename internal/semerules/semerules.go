// Package semerules defines the SEM-series codes of diagnostics emitted by the region analyzer.
//
// Code numbering scheme:
//
//	000–019  Regions
//	020–099  Anchors and directives
//	100–199  Internal consistency
package semerules

import "fmt"

// Rule represents a SEM-series diagnostic code.
type Rule int

const (
	ruleInvalid Rule = iota

	SEM000RegionFormed
	SEM010RegionsMerged
	SEM020AnchorInRecover
	SEM030DirectiveUnattached
	SEM040DirectiveMalformed
	SEM100InvariantBroken
)

// String returns the canonical code and short name of the rule.
// Example: "SEM000: RegionFormed"
func (r Rule) String() string {
	switch r {
	case SEM000RegionFormed:
		return "SEM000: RegionFormed"
	case SEM010RegionsMerged:
		return "SEM010: RegionsMerged"
	case SEM020AnchorInRecover:
		return "SEM020: AnchorInRecover"
	case SEM030DirectiveUnattached:
		return "SEM030: DirectiveUnattached"
	case SEM040DirectiveMalformed:
		return "SEM040: DirectiveMalformed"
	case SEM100InvariantBroken:
		return "SEM100: InvariantBroken"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Code returns the code alone, like "SEM000".
func (r Rule) Code() string {
	if r <= ruleInvalid || r > SEM100InvariantBroken {
		return "SEM???"
	}

	s := r.String()
	return s[:6]
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case SEM000RegionFormed:
		return "Anchors of a group are covered by a single entry multiple exit region."
	case SEM010RegionsMerged:
		return "Regions of all groups in a function merged into one."
	case SEM020AnchorInRecover:
		return "Anchor in the recover block cannot be covered by a region."
	case SEM030DirectiveUnattached:
		return "Anchor directive does not mark any instruction."
	case SEM040DirectiveMalformed:
		return "Anchor directive must name exactly one valid group."
	case SEM100InvariantBroken:
		return "Region does not keep its invariants."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors.

func RegionFormed() Rule        { return SEM000RegionFormed }
func RegionsMerged() Rule       { return SEM010RegionsMerged }
func AnchorInRecover() Rule     { return SEM020AnchorInRecover }
func DirectiveUnattached() Rule { return SEM030DirectiveUnattached }
func DirectiveMalformed() Rule  { return SEM040DirectiveMalformed }
func InvariantBroken() Rule     { return SEM100InvariantBroken }
