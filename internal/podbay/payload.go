package podbay

import (
	"slices"
	"strings"
	"time"

	"github.com/jask/discovery/core/display"
)

// Outcome of a door request as seen on the console.
const (
	OutcomeIdle     = "idle"
	OutcomeOpened   = "opened"
	OutcomeRefused  = "refused"
	OutcomeConfused = "confused"
)

// DoorPayload is what the pod bay console shows.
type DoorPayload struct {
	Title   string
	Message string
	Outcome string
	Attempt int
	At      time.Time
}

func (p DoorPayload) Refused() bool { return p.Outcome == OutcomeRefused }

// Caption describes the request, e.g. "3rd request · 2001-04-03 22:15:09".
// Idle payloads have no caption.
func (p DoorPayload) Caption(f display.Formatter) string {
	if p.Attempt == 0 || p.At.IsZero() {
		return ""
	}
	return f.Ordinal(int64(p.Attempt)) + " request · " + f.Stamp(p.At)
}

// CrewMember is one roster line.
type CrewMember struct {
	Name   string
	Role   string
	Status string
}

// CrewPayload is what the crew screen shows. The member list is copied on
// construction and on read so the payload stays immutable.
type CrewPayload struct {
	Title   string
	Problem string
	members []CrewMember
}

func NewCrewPayload(title string, members []CrewMember) CrewPayload {
	return CrewPayload{Title: title, members: slices.Clone(members)}
}

func (p CrewPayload) Members() []CrewMember { return slices.Clone(p.members) }

func (p CrewPayload) Len() int { return len(p.members) }

func (p CrewPayload) Equal(o CrewPayload) bool {
	return p.Title == o.Title && p.Problem == o.Problem && slices.Equal(p.members, o.members)
}

// Headcount reads e.g. "2 of 5 awake".
func (p CrewPayload) Headcount(f display.Formatter) string {
	awake := 0
	for _, m := range p.members {
		if m.Status == "awake" {
			awake++
		}
	}
	return f.Number(int64(awake)) + " of " + f.Number(int64(len(p.members))) + " awake"
}

// LogEntry is one door request in the log.
type LogEntry struct {
	RequestedBy string
	Outcome     string
	Message     string
	At          time.Time
}

// Line renders the entry for a single-row listing.
func (e LogEntry) Line(f display.Formatter) string {
	return strings.Join([]string{f.Stamp(e.At), e.RequestedBy, e.Outcome}, "  ")
}

// LogPayload is what the door log screen shows.
type LogPayload struct {
	Title   string
	Empty   string
	Problem string
	Opened  int
	Refused int
	entries []LogEntry
}

func NewLogPayload(title, empty string, opened, refused int, entries []LogEntry) LogPayload {
	return LogPayload{Title: title, Empty: empty, Opened: opened, Refused: refused, entries: slices.Clone(entries)}
}

func (p LogPayload) Entries() []LogEntry { return slices.Clone(p.entries) }

func (p LogPayload) Len() int { return len(p.entries) }

func (p LogPayload) Equal(o LogPayload) bool {
	return p.Title == o.Title && p.Empty == o.Empty && p.Problem == o.Problem &&
		p.Opened == o.Opened && p.Refused == o.Refused && slices.EqualFunc(p.entries, o.entries, func(a, b LogEntry) bool {
		return a.RequestedBy == b.RequestedBy && a.Outcome == b.Outcome && a.Message == b.Message && a.At.Equal(b.At)
	})
}

// RefusalRate is the share of requests refused, as a percentage string.
func (p LogPayload) RefusalRate(f display.Formatter) string {
	total := p.Opened + p.Refused
	if total == 0 {
		return f.Percent(0)
	}
	return f.Percent(float64(p.Refused) / float64(total))
}

// Displays for each payload.
type (
	DoorDisplay = display.Display[DoorPayload]
	CrewDisplay = display.Display[CrewPayload]
	LogDisplay  = display.Display[LogPayload]
)
