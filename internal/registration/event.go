package registration

// EventKind is the closed set of inbound message shapes the flow reacts to.
type EventKind int

const (
	KindText EventKind = iota
	KindDocument
	KindPhoto
	KindCommand
)

// Event is everything the flow consumes from one inbound chat message.
// The dialogue driver builds it from the transport update; nothing past
// these fields ever reaches the state machine.
type Event struct {
	UserID            int64
	Kind              EventKind
	Text              string
	AttachmentPresent bool
	Caption           string
}
