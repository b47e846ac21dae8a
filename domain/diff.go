package domain

import "github.com/samber/lo"

// Compare splits two rosters into the participants signed up for both
// events and those signed up for exactly one.
//
// Name and class attribution for the both-set is anchored to the first
// roster, matching the externally observable behavior of the bot. The
// only-one-set resolves names and classes through a merged view where the
// second roster overrides the first. In both groupings an entry whose name
// or class cannot be resolved is dropped silently, never bucketed as
// UnknownClass. Output order is deterministic: first-encounter order,
// first roster before second.
func Compare(first, second Roster) (both, onlyOne GroupedRoster) {
	bothIDs := lo.Intersect(first.IDs(), second.IDs())
	onlyFirst, onlySecond := lo.Difference(first.IDs(), second.IDs())

	both = make(GroupedRoster)
	for _, id := range bothIDs {
		if p, ok := first.Get(id); ok {
			appendResolved(both, p)
		}
	}

	onlyOne = make(GroupedRoster)
	for _, id := range append(onlyFirst, onlySecond...) {
		p, ok := second.Get(id)
		if !ok {
			p, ok = first.Get(id)
		}
		if !ok {
			continue
		}
		appendResolved(onlyOne, p)
	}
	return both, onlyOne
}

func appendResolved(grouped GroupedRoster, p Participant) {
	if p.Name == "" || p.ClassName == "" {
		return
	}
	grouped[p.ClassName] = append(grouped[p.ClassName], p.Name)
}
