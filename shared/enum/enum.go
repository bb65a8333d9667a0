// Package enum maps the codes of closed enumerations to their display labels.
package enum

import "strings"

type Member[E ~string] struct {
	Code  E
	Label string
}

// Table holds the members of one enumeration in declaration order.
type Table[E ~string] struct {
	members []Member[E]
	labels  map[E]string
}

func NewTable[E ~string](members ...Member[E]) Table[E] {
	labels := make(map[E]string, len(members))
	for _, member := range members {
		labels[member.Code] = member.Label
	}

	return Table[E]{members: members, labels: labels}
}

func (t Table[E]) Contains(code E) bool {
	_, ok := t.labels[code]

	return ok
}

// Label returns the display label of code, or code itself when it is not a member.
func (t Table[E]) Label(code E) string {
	if label, ok := t.labels[code]; ok {
		return label
	}

	return string(code)
}

// Parse resolves either a code or a display label, ignoring case and surrounding space.
func (t Table[E]) Parse(value string) (E, bool) {
	value = strings.TrimSpace(value)

	for _, member := range t.members {
		if strings.EqualFold(string(member.Code), value) || strings.EqualFold(member.Label, value) {
			return member.Code, true
		}
	}

	return E(value), false
}

func (t Table[E]) Codes() []E {
	codes := make([]E, len(t.members))
	for i, member := range t.members {
		codes[i] = member.Code
	}

	return codes
}

func (t Table[E]) Labels() []string {
	labels := make([]string, len(t.members))
	for i, member := range t.members {
		labels[i] = member.Label
	}

	return labels
}
