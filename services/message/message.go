package message

import (
	messageRepo "egarage/database/repository/message"
	"egarage/models"
	"egarage/utils"

	"github.com/google/uuid"
)

// MessageService records contact-form submissions for the admin panel.
type MessageService interface {
	Send(input models.MessageInput) (*models.Message, error)
	List() ([]models.Message, error)
}

// DefaultMessageService implements MessageService.
type DefaultMessageService struct {
	Repo messageRepo.MessageRepository
}

// Send validates and persists a contact message.
func (s *DefaultMessageService) Send(input models.MessageInput) (*models.Message, error) {
	switch {
	case input.FullName == "":
		return nil, utils.NewValidationError("fullName", "full name is required")
	case input.Email == "":
		return nil, utils.NewValidationError("email", "email is required")
	case input.Subject == "":
		return nil, utils.NewValidationError("subject", "subject is required")
	case input.Message == "":
		return nil, utils.NewValidationError("message", "message is required")
	}

	m := models.Message{
		ID:       uuid.New().String(),
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Subject:  input.Subject,
		Message:  input.Message,
	}
	if err := s.Repo.Create(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all messages, newest first.
func (s *DefaultMessageService) List() ([]models.Message, error) {
	return s.Repo.ListAll()
}
