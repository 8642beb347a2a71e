package checkout

import (
	"context"
	"strings"
	"sync"

	"medishare-client/internal/api"
	"medishare-client/internal/chat"
)

const defaultOrderMessage = "Aucun message"

// Messenger is the optional pre-checkout contact sub-flow. It has its
// own pending state and is not gated on order validation.
type Messenger struct {
	chat *chat.Service

	mu      sync.Mutex
	sending bool
}

func NewMessenger(chatSvc *chat.Service) *Messenger {
	return &Messenger{chat: chatSvc}
}

func (m *Messenger) Sending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sending
}

// Send delivers the message to the owner of the first cart item. The
// attachment travels in the same multipart request.
func (m *Messenger) Send(ctx context.Context, form *Form) error {
	if strings.TrimSpace(form.Message) == "" {
		return ErrEmptyMessage
	}

	m.mu.Lock()
	if m.sending {
		m.mu.Unlock()
		return ErrMessageInFlight
	}
	m.sending = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.sending = false
		m.mu.Unlock()
	}()

	ownerID := ""
	if len(form.Items) > 0 {
		ownerID = form.Items[0].OwnerID
	}

	var file *api.FilePart
	if form.MessageFile != nil {
		file = &api.FilePart{
			Field:    "file",
			Filename: form.MessageFile.Filename,
			Content:  form.MessageFile.Content,
		}
	}
	return m.chat.SendWithFile(ctx, ownerID, form.Message, file)
}
