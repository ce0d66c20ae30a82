package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
)

// ChatService manages the bounded staff chat singleton.
type ChatService struct {
	chat *entity.Singleton[domain.ChatLog]
}

func NewChatService(chat *entity.Singleton[domain.ChatLog]) *ChatService {
	return &ChatService{chat: chat}
}

// Messages returns the stored chat history, oldest first.
func (s *ChatService) Messages(ctx context.Context) ([]domain.ChatMessage, error) {
	state, err := s.chat.Get(ctx)
	if err != nil {
		return nil, err
	}
	if state.Messages == nil {
		return []domain.ChatMessage{}, nil
	}
	return state.Messages, nil
}

// Post stamps id, sender and timestamp, then appends via the singleton's
// bounded-append mutator. The log never exceeds domain.MaxChatMessages.
func (s *ChatService) Post(ctx context.Context, sender domain.User, text string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}

	msg := domain.ChatMessage{
		ID:           uuid.NewString(),
		UserID:       sender.ID,
		UserFullName: sender.FullName,
		Text:         text,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := s.chat.Mutate(ctx, func(log domain.ChatLog) domain.ChatLog {
		return log.Append(msg)
	}); err != nil {
		return nil, err
	}
	return &msg, nil
}
