package present

// Embed colours.
const (
	ColorPrimary = 0x5865F2
	ColorSuccess = 0x57F287
	ColorError   = 0xED4245
	ColorWarning = 0xFEE75C
	ColorInfo    = 0x3498DB
	ColorPremium = 0x9B59B6
)

// Field is a titled value inside a Message.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Action is a user-triggerable control attached to a Message, such as an
// export button. ID is opaque to the chat adapter and is handed back
// unchanged when the user triggers it.
type Action struct {
	ID    string
	Label string
}

// Message is one outbound chat message.
type Message struct {
	Title       string
	Description string
	Color       int
	Fields      []Field
	Footer      string
	Actions     []Action
}

// Attachment is a file sent along with a Message.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportPayload is what the bot sends in response to an export action.
// Attachment is nil when the export is shown inline.
type ExportPayload struct {
	Message    Message
	Attachment *Attachment
}
