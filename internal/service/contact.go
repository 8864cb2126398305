package service

import (
	"context"
	"fmt"

	"github.com/driveease/rental-service/internal/model"
)

// ContactService manages the append-only contact inbox.
type ContactService struct {
	messages ContactStore
}

func NewContactService(messages ContactStore) *ContactService {
	return &ContactService{messages: messages}
}

func (s *ContactService) SendMessage(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	if msg.Message == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrInvalidInput)
	}
	return s.messages.CreateMessage(ctx, msg)
}

func (s *ContactService) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return s.messages.ListMessages(ctx)
}
