package flash

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"vet-clinic-admin/internal/ui/dialog"
)

// DefaultTTL es cuánto vive un mensaje no leído.
const DefaultTTL = time.Minute

var ErrEmptyKey = errors.New("flash: empty key")

// Store guarda el diálogo de resultado entre el POST y el GET que lo muestra.
// Pop lo entrega una sola vez.
type Store interface {
	Put(ctx context.Context, d dialog.Dialog) (string, error)
	Pop(ctx context.Context, key string) (dialog.Dialog, bool, error)
}

func newKey() string { return uuid.NewString() }

// entry es la forma serializada del diálogo.
type entry struct {
	Kind          dialog.Kind   `json:"kind"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	ConfirmAction string        `json:"confirm_action,omitempty"`
	CancelURL     string        `json:"cancel_url,omitempty"`
	DismissAfter  time.Duration `json:"dismiss_after,omitempty"`
	DismissURL    string        `json:"dismiss_url,omitempty"`
}

func encode(d dialog.Dialog) ([]byte, error) {
	return json.Marshal(entry{
		Kind:          d.Kind,
		Title:         d.Title,
		Message:       d.Message,
		ConfirmAction: d.ConfirmAction,
		CancelURL:     d.CancelURL,
		DismissAfter:  d.DismissAfter,
		DismissURL:    d.DismissURL,
	})
}

func decode(b []byte) (dialog.Dialog, error) {
	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		return dialog.Closed(), err
	}
	return dialog.Dialog{
		Open:          true,
		Kind:          e.Kind,
		Title:         e.Title,
		Message:       e.Message,
		ConfirmAction: e.ConfirmAction,
		CancelURL:     e.CancelURL,
		DismissAfter:  e.DismissAfter,
		DismissURL:    e.DismissURL,
	}, nil
}
