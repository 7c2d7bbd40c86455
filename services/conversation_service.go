// services/conversation_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"aiva-backend/models"

	"gorm.io/gorm"
)

// Chat actions returned to the caller alongside the reply text.
const (
	ActionAskService = "ASK_SERVICE"
	ActionUnknown    = "UNKNOWN"
)

const fallbackAssistantName = "your booking assistant"

type ChatReply struct {
	Reply  string `json:"reply"`
	Action string `json:"action"`
}

// ConversationService advances the per-chat booking conversation. State is
// created lazily at GREETING on first contact and scoped to the technician,
// so identical chat ids under different technicians stay independent.
type ConversationService struct {
	db *gorm.DB
}

func NewConversationService(db *gorm.DB) *ConversationService {
	return &ConversationService{db: db}
}

// HandleMessage runs one step of the scripted flow. The first message for a
// fresh chat id greets the client and moves the state to SERVICE_SELECTION;
// every later message falls through to the static fallback until the
// remaining stages are built out.
func (s *ConversationService) HandleMessage(tech *models.Technician, chatID, text string) (*ChatReply, error) {
	// Normalized for the keyword routing the later stages will do.
	text = strings.ToLower(strings.TrimSpace(text))

	var state models.ConversationState
	err := s.db.Where("technician_id = ? AND chat_id = ?", tech.ID, chatID).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = models.ConversationState{
			TechnicianID: tech.ID,
			ChatID:       chatID,
			Stage:        models.StageGreeting,
		}
		if err := s.db.Create(&state).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if state.Stage == models.StageGreeting {
		if err := s.db.Model(&state).Update("stage", models.StageServiceSelection).Error; err != nil {
			return nil, err
		}

		assistant := tech.AssistantName
		if assistant == "" {
			assistant = fallbackAssistantName
		}
		return &ChatReply{
			Reply: fmt.Sprintf("Hi 👋 I'm %s for %s. What service would you like to book?",
				assistant, tech.BusinessName),
			Action: ActionAskService,
		}, nil
	}

	return &ChatReply{
		Reply:  "Type BOOK to begin booking ❤️",
		Action: ActionUnknown,
	}, nil
}
