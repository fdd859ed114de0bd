// internal/segment/segment.go
package segment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Combinator joins the rules of a group
type Combinator string

const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// Fields a rule can filter on. Matches the customer columns exposed to the
// dashboard; values are never coerced to the field's underlying type.
var Fields = []string{
	"firstName",
	"lastName",
	"email",
	"location",
	"lastPurchaseDate",
	"totalSpent",
	"tags",
}

var Operators = []string{
	"equals",
	"notEquals",
	"contains",
	"notContains",
	"greaterThan",
	"lessThan",
	"between",
	"in",
	"exists",
}

type Rule struct {
	ID       string `json:"id"`
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// RuleGroup is a flat list of rules joined by one combinator. Groups never
// nest; between groups the relation is an implicit AND.
type RuleGroup struct {
	ID         string     `json:"id"`
	Combinator Combinator `json:"combinator"`
	Rules      []Rule     `json:"rules"`
}

var (
	ErrGroupNotFound = errors.New("rule group not found")
	ErrRuleNotFound  = errors.New("rule not found")
	ErrLastRule      = errors.New("a group must keep at least one rule")
	ErrUnknownField  = errors.New("unknown rule field")
	ErrUnknownOp     = errors.New("unknown rule operator")
)

// Builder holds and mutates a set of rule groups. The groups are only ever a
// filter description; nothing evaluates them against customer rows.
type Builder struct {
	Groups []RuleGroup
}

// NewBuilder starts with one group holding one default rule, mirroring the
// initial state of the dashboard form.
func NewBuilder() *Builder {
	return &Builder{
		Groups: []RuleGroup{newGroup()},
	}
}

func newGroup() RuleGroup {
	return RuleGroup{
		ID:         uuid.NewString(),
		Combinator: CombinatorAnd,
		Rules:      []Rule{defaultRule()},
	}
}

func defaultRule() Rule {
	return Rule{
		ID:       uuid.NewString(),
		Field:    "firstName",
		Operator: "contains",
		Value:    "",
	}
}

// AddGroup appends a new group with one default rule and returns its ID.
func (b *Builder) AddGroup() string {
	g := newGroup()
	b.Groups = append(b.Groups, g)
	return g.ID
}

// RemoveGroup drops a group. Any group may be removed, including the last.
func (b *Builder) RemoveGroup(groupID string) error {
	for i, g := range b.Groups {
		if g.ID == groupID {
			b.Groups = append(b.Groups[:i], b.Groups[i+1:]...)
			return nil
		}
	}
	return ErrGroupNotFound
}

// AddRule appends a default rule to the group and returns its ID.
func (b *Builder) AddRule(groupID string) (string, error) {
	g := b.group(groupID)
	if g == nil {
		return "", ErrGroupNotFound
	}
	r := defaultRule()
	g.Rules = append(g.Rules, r)
	return r.ID, nil
}

// RemoveRule drops a rule from its group. Removal is rejected while the
// group holds exactly one rule, so a group never reaches zero rules.
func (b *Builder) RemoveRule(groupID, ruleID string) error {
	g := b.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	if len(g.Rules) == 1 {
		return ErrLastRule
	}
	for i, r := range g.Rules {
		if r.ID == ruleID {
			g.Rules = append(g.Rules[:i], g.Rules[i+1:]...)
			return nil
		}
	}
	return ErrRuleNotFound
}

// UpdateRule replaces a rule's field, operator and value. The value is free
// text and passes through unvalidated.
func (b *Builder) UpdateRule(groupID, ruleID, field, operator, value string) error {
	if !contains(Fields, field) {
		return ErrUnknownField
	}
	if !contains(Operators, operator) {
		return ErrUnknownOp
	}
	g := b.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	for i := range g.Rules {
		if g.Rules[i].ID == ruleID {
			g.Rules[i].Field = field
			g.Rules[i].Operator = operator
			g.Rules[i].Value = value
			return nil
		}
	}
	return ErrRuleNotFound
}

// ToggleCombinator flips a group between AND and OR.
func (b *Builder) ToggleCombinator(groupID string) error {
	g := b.group(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	if g.Combinator == CombinatorAnd {
		g.Combinator = CombinatorOr
	} else {
		g.Combinator = CombinatorAnd
	}
	return nil
}

// HasValidRules reports whether any rule carries a non-empty value, the
// minimum the form requires before estimating an audience.
func (b *Builder) HasValidRules() bool {
	for _, g := range b.Groups {
		for _, r := range g.Rules {
			if strings.TrimSpace(r.Value) != "" {
				return true
			}
		}
	}
	return false
}

func (b *Builder) group(id string) *RuleGroup {
	for i := range b.Groups {
		if b.Groups[i].ID == id {
			return &b.Groups[i]
		}
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
