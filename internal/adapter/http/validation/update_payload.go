package validation

import (
	"errors"
	"strings"

	"taskcheck/internal/adapter/http/dto"
)

var ErrInvalidUpdatePayload = errors.New("invalid update payload")

// Event is a well-formed inbound update, normalized for dispatch.
type Event struct {
	UserID      int64
	DisplayName string
	Handle      string
	IsCallback  bool
	// Input is the trimmed message text for messages, or the callback data
	// for callbacks.
	Input string
}

// BuildEvent validates the raw update and normalizes it into an Event.
func BuildEvent(req dto.UpdateRequest) (Event, error) {
	if req.UserID <= 0 {
		return Event{}, ErrInvalidUpdatePayload
	}

	switch req.Type {
	case dto.UpdateTypeMessage:
		text := strings.TrimSpace(req.Text)
		if text == "" {
			return Event{}, ErrInvalidUpdatePayload
		}
		return Event{
			UserID:      req.UserID,
			DisplayName: strings.TrimSpace(req.DisplayName),
			Handle:      strings.TrimSpace(req.Handle),
			Input:       text,
		}, nil
	case dto.UpdateTypeCallback:
		data := strings.TrimSpace(req.Data)
		if data == "" {
			return Event{}, ErrInvalidUpdatePayload
		}
		return Event{
			UserID:      req.UserID,
			DisplayName: strings.TrimSpace(req.DisplayName),
			Handle:      strings.TrimSpace(req.Handle),
			IsCallback:  true,
			Input:       data,
		}, nil
	default:
		return Event{}, ErrInvalidUpdatePayload
	}
}
