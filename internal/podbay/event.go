package podbay

// Kind identifies what the operator asked for.
type Kind int

const (
	OpenDoors Kind = iota + 1
	ShowCrew
	ShowLog
	Refresh
	Dismiss
	Unrecognized
)

func (k Kind) String() string {
	switch k {
	case OpenDoors:
		return "open-doors"
	case ShowCrew:
		return "show-crew"
	case ShowLog:
		return "show-log"
	case Refresh:
		return "refresh"
	case Dismiss:
		return "dismiss"
	case Unrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Event is delivered by the console to a handler. Input carries the raw text
// for typed commands.
type Event struct {
	Kind  Kind
	Input string
}

func (e Event) String() string {
	return e.Kind.String()
}

// Tap is the event a console key press produces.
func Tap(k Kind) Event {
	return Event{Kind: k}
}
