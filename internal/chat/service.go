package chat

import (
	"context"
	"fmt"
	"time"

	"medishare-client/internal/api"
)

type Message struct {
	ID        string    `json:"_id"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// History returns the conversation with the given user.
func (s *Service) History(ctx context.Context, userID string) ([]Message, error) {
	var messages []Message
	if err := s.api.Get(ctx, "/chat/"+userID, &messages); err != nil {
		return nil, fmt.Errorf("load chat %s: %w", userID, err)
	}
	return messages, nil
}

// Send posts a plain text message into the conversation.
func (s *Service) Send(ctx context.Context, userID, content string) error {
	body := map[string]string{"content": content}
	if err := s.api.Post(ctx, "/chat/"+userID, body, nil); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendWithFile posts a message addressed by owner id, optionally with an
// attachment. This is the multipart endpoint the checkout page uses.
func (s *Service) SendWithFile(ctx context.Context, ownerID, message string, file *api.FilePart) error {
	fields := map[string]string{
		"message": message,
		"ownerId": ownerID,
	}
	var files []api.FilePart
	if file != nil {
		files = append(files, *file)
	}
	if err := s.api.PostMultipart(ctx, "/chat/message", fields, files, nil); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
