package domain

import (
	"sort"

	"github.com/samber/lo"
)

// UnknownClass is the bucket used when a roster entry has no class
// association left. Only the single-roster grouping path falls back to it;
// the diff path drops such entries instead.
const UnknownClass = "Unknown"

// Attendance states that do not count as committed sign-ups.
var excludedClasses = []string{"Tentative", "Bench", "Absence"}

// Roster is the filtered set of committed participants of one event, keyed
// by user id and iterable in first-encounter order. A user appears at most
// once, under a single class.
type Roster struct {
	order        []string
	participants map[string]Participant
}

func NewRoster() Roster {
	return Roster{participants: make(map[string]Participant)}
}

// Add inserts p unless its user id is already present. On a duplicate id
// the first entry wins, so class attribution stays consistent with
// first-encounter order. User ids are unique within a real event, so this
// only matters for hand-built input.
func (r *Roster) Add(p Participant) {
	if _, ok := r.participants[p.UserID]; ok {
		return
	}
	r.order = append(r.order, p.UserID)
	r.participants[p.UserID] = p
}

func (r Roster) Len() int { return len(r.order) }

// IDs returns the user ids in first-encounter order.
func (r Roster) IDs() []string { return r.order }

func (r Roster) Get(userID string) (Participant, bool) {
	p, ok := r.participants[userID]
	return p, ok
}

// ActiveSignups filters an event down to its committed participants.
// Entries in an excluded attendance state, or missing a user id or name,
// are skipped.
func ActiveSignups(event Event) Roster {
	roster := NewRoster()
	for _, signUp := range event.SignUps {
		if lo.Contains(excludedClasses, signUp.ClassName) {
			continue
		}
		if signUp.UserID == "" || signUp.Name == "" {
			continue
		}
		roster.Add(Participant{
			UserID:    signUp.UserID,
			Name:      signUp.Name,
			ClassName: signUp.ClassName,
		})
	}
	return roster
}

// GroupedRoster maps a class name to display names in roster order.
type GroupedRoster map[string][]string

// Grouped reorganizes the roster by class, preserving first-encounter
// order within each class. Entries without a class land in UnknownClass.
func (r Roster) Grouped() GroupedRoster {
	grouped := make(GroupedRoster)
	for _, id := range r.order {
		p := r.participants[id]
		class := p.ClassName
		if class == "" {
			class = UnknownClass
		}
		grouped[class] = append(grouped[class], p.Name)
	}
	return grouped
}

// Classes returns the class names in lexicographic order.
func (g GroupedRoster) Classes() []string {
	classes := lo.Keys(g)
	sort.Strings(classes)
	return classes
}
