package domain

import "regexp"

// Event ids are at least 10 digits, optionally preceded by the event/ path
// segment of a full Raid-Helper URL.
var eventIDPattern = regexp.MustCompile(`(?:event/)?(\d{10,})$`)

// ExtractEventID returns the numeric event id from a raw id or a full
// Raid-Helper event URL. Unrecognized input is returned unchanged and left
// for the fetch step to reject.
func ExtractEventID(arg string) string {
	if m := eventIDPattern.FindStringSubmatch(arg); m != nil {
		return m[1]
	}
	return arg
}
