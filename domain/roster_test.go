package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActiveSignups_FiltersNonCommittedStates(t *testing.T) {
	req := require.New(t)

	event := Event{SignUps: []SignUp{
		{UserID: "a", Name: "Alice", ClassName: "Healer"},
		{UserID: "b", Name: "Bob", ClassName: "Tentative"},
		{UserID: "c", Name: "Clara", ClassName: "Bench"},
		{UserID: "d", Name: "Dan", ClassName: "Absence"},
	}}

	roster := ActiveSignups(event)
	req.Equal(1, roster.Len())

	p, ok := roster.Get("a")
	req.True(ok)
	req.Equal("Alice", p.Name)

	req.Equal(GroupedRoster{"Healer": {"Alice"}}, roster.Grouped())
}

func TestActiveSignups_SkipsEntriesMissingIDOrName(t *testing.T) {
	event := Event{SignUps: []SignUp{
		{UserID: "", Name: "Ghost", ClassName: "Tank"},
		{UserID: "x", Name: "", ClassName: "Tank"},
		{UserID: "y", Name: "Yara", ClassName: "Tank"},
	}}

	roster := ActiveSignups(event)
	require.Equal(t, []string{"y"}, roster.IDs())
}

func TestActiveSignups_KeepsFirstEncounterPerUser(t *testing.T) {
	event := Event{SignUps: []SignUp{
		{UserID: "a", Name: "Alice", ClassName: "Healer"},
		{UserID: "a", Name: "Alice Alt", ClassName: "Tank"},
	}}

	roster := ActiveSignups(event)
	require.Equal(t, 1, roster.Len())

	p, _ := roster.Get("a")
	require.Equal(t, "Healer", p.ClassName)
}

func TestGrouped_PreservesSourceOrderWithinClass(t *testing.T) {
	event := Event{SignUps: []SignUp{
		{UserID: "a", Name: "Alice", ClassName: "Healer"},
		{UserID: "b", Name: "Bob", ClassName: "Tank"},
		{UserID: "c", Name: "Clara", ClassName: "Healer"},
	}}

	grouped := ActiveSignups(event).Grouped()
	require.Equal(t, []string{"Alice", "Clara"}, grouped["Healer"])
	require.Equal(t, []string{"Bob"}, grouped["Tank"])
}

func TestGrouped_UnknownBucketForMissingClass(t *testing.T) {
	event := Event{SignUps: []SignUp{
		{UserID: "a", Name: "Alice", ClassName: ""},
	}}

	grouped := ActiveSignups(event).Grouped()
	require.Equal(t, GroupedRoster{UnknownClass: {"Alice"}}, grouped)
}

func TestActiveSignups_Idempotent(t *testing.T) {
	event := Event{SignUps: []SignUp{
		{UserID: "a", Name: "Alice", ClassName: "Healer"},
		{UserID: "b", Name: "Bob", ClassName: "Tank"},
		{UserID: "c", Name: "Clara", ClassName: "Melee"},
		{UserID: "d", Name: "Dan", ClassName: "Tentative"},
	}}

	first := ActiveSignups(event)
	second := ActiveSignups(event)

	require.Equal(t, first.IDs(), second.IDs())
	require.Equal(t, first.Grouped(), second.Grouped())
}

func TestGroupedRoster_ClassesSorted(t *testing.T) {
	grouped := GroupedRoster{
		"Tank":   {"Bob"},
		"Healer": {"Alice"},
		"Melee":  {"Clara"},
	}
	require.Equal(t, []string{"Healer", "Melee", "Tank"}, grouped.Classes())
}
