package dto

// UpdateRequest is one inbound bot-platform update, delivered by the
// transport bridge. Exactly one of Text (messages) or Data (callbacks) is
// meaningful depending on Type.
type UpdateRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	DisplayName string `json:"display_name"`
	Handle      string `json:"handle"`
	Type        string `json:"type" binding:"required,oneof=message callback"`
	Text        string `json:"text"`
	Data        string `json:"data"`
}

const (
	UpdateTypeMessage  = "message"
	UpdateTypeCallback = "callback"
)

// Button is one keyboard button. Data is the callback payload the platform
// sends back when the button is pressed; buttons without Data are plain
// reply-keyboard buttons.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data,omitempty"`
}

// Reply is what the bridge renders back to the user: the message text plus
// an optional keyboard.
type Reply struct {
	Text           string     `json:"text"`
	Keyboard       [][]Button `json:"keyboard,omitempty"`
	RemoveKeyboard bool       `json:"remove_keyboard,omitempty"`
}
