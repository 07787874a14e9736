package feedback

// Kind classifies a message for display.
type Kind string

const (
	KindInfo    Kind = "info"
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// Message is a text with its kind. The zero value means "no message".
type Message struct {
	Text string
	Kind Kind
}

// Info returns an informational message.
func Info(text string) Message { return Message{Text: text, Kind: KindInfo} }

// Error returns an error message.
func Error(text string) Message { return Message{Text: text, Kind: KindError} }

// Success returns a success message.
func Success(text string) Message { return Message{Text: text, Kind: KindSuccess} }

// IsZero reports whether m is the empty message.
func (m Message) IsZero() bool {
	return m == Message{}
}

// Transient reports whether m expires after the clear delay.
func (m Message) Transient() bool {
	return !m.IsZero() && m.Kind != KindSuccess
}
