package podbay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/discovery/core/display"
)

func TestDoorPayloadCaption(t *testing.T) {
	f := display.NewFormatter("en")
	require.Empty(t, DoorPayload{Outcome: OutcomeIdle}.Caption(f))
	p := DoorPayload{Attempt: 3, At: time.Date(2001, time.April, 3, 22, 15, 9, 0, time.UTC)}
	require.Equal(t, "3rd request · 2001-04-03 22:15:09", p.Caption(f))
}

func TestCrewPayloadIsImmutable(t *testing.T) {
	members := []CrewMember{{Name: "Dave Bowman", Status: "awake"}, {Name: "Jack Kimball", Status: "hibernating"}}
	p := NewCrewPayload("Crew", members)
	members[0].Name = "HAL"
	got := p.Members()
	got[1].Name = "HAL"

	require.Equal(t, "Dave Bowman", p.Members()[0].Name)
	require.Equal(t, "Jack Kimball", p.Members()[1].Name)
	require.True(t, p.Equal(NewCrewPayload("Crew", []CrewMember{{Name: "Dave Bowman", Status: "awake"}, {Name: "Jack Kimball", Status: "hibernating"}})))
	require.Equal(t, "1 of 2 awake", p.Headcount(display.NewFormatter("en")))
}

func TestLogPayloadRefusalRate(t *testing.T) {
	f := display.NewFormatter("en")
	require.Equal(t, "0%", NewLogPayload("Log", "", 0, 0, nil).RefusalRate(f))
	require.Equal(t, "75%", NewLogPayload("Log", "", 1, 3, nil).RefusalRate(f))

	at := time.Date(2001, time.April, 3, 22, 15, 9, 0, time.UTC)
	a := NewLogPayload("Log", "", 0, 1, []LogEntry{{RequestedBy: "Dave", Outcome: OutcomeRefused, At: at}})
	b := NewLogPayload("Log", "", 0, 1, []LogEntry{{RequestedBy: "Dave", Outcome: OutcomeRefused, At: at.In(time.FixedZone("x", 3600))}})
	require.True(t, a.Equal(b))
	require.Equal(t, "2001-04-03 22:15:09  Dave  refused", a.Entries()[0].Line(f))
}
