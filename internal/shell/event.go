package shell

import "fmt"

// EventKind enumerates the input events the controller understands.
type EventKind int

const (
	// EventSubmit carries the input line in Text.
	EventSubmit EventKind = iota
	// EventInterrupt asks the most recent job to stop.
	EventInterrupt
	// EventQuit ends the session, like the exit builtin.
	EventQuit
	// EventNavigate is a cursor or deletion key the input line could not use.
	EventNavigate
	// EventPointer is any mouse event.
	EventPointer
	// EventUnrecognized is a key with no binding; Key names it.
	EventUnrecognized
)

func (k EventKind) String() string {
	switch k {
	case EventSubmit:
		return "submit"
	case EventInterrupt:
		return "interrupt"
	case EventQuit:
		return "quit"
	case EventNavigate:
		return "navigate"
	case EventPointer:
		return "pointer"
	case EventUnrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one input event from the terminal adapter.
type Event struct {
	Kind EventKind
	Text string
	Key  string
}

// Submit builds a submit event.
func Submit(line string) Event { return Event{Kind: EventSubmit, Text: line} }

// Interrupt builds an interrupt event.
func Interrupt() Event { return Event{Kind: EventInterrupt} }

// Quit builds a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// Navigate builds a navigation event for key.
func Navigate(key string) Event { return Event{Kind: EventNavigate, Key: key} }

// Pointer builds a pointer event.
func Pointer() Event { return Event{Kind: EventPointer} }

// Unrecognized builds an event for an unbound key.
func Unrecognized(key string) Event { return Event{Kind: EventUnrecognized, Key: key} }

// Outcome tells the adapter what to do after an event.
type Outcome struct {
	// Quit asks the host loop to stop.
	Quit bool
	// ClearInput is set after every submit.
	ClearInput bool
	// Started is the job spawned by this event, if any. The adapter must
	// drain its streams and report back through Output, StreamClosed and
	// Exited.
	Started Proc
}
