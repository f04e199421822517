package services

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"
)

type ChatService struct {
	repo      *repository.ChatRepository
	orderRepo *repository.OrderRepository
}

func NewChatService(repo *repository.ChatRepository, orderRepo *repository.OrderRepository) *ChatService {
	return &ChatService{repo: repo, orderRepo: orderRepo}
}

func (s *ChatService) GetRoomByID(roomID uint) (*entity.ChatRoom, error) {
	return s.repo.FindRoomByID(roomID)
}

func (s *ChatService) GetRoomsByUser(userID uint) ([]entity.ChatRoom, error) {
	return s.repo.FindRoomsByUser(userID)
}

// CanAccessRoom allows only the two parties of the room's order in.
func (s *ChatService) CanAccessRoom(userID, orderID uint) (bool, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return false, err
	}
	return order.ClientID == userID || order.FreelancerID == userID, nil
}

func (s *ChatService) GetMessages(userID, roomID uint) ([]entity.Message, error) {
	room, err := s.repo.FindRoomByID(roomID)
	if err != nil {
		return nil, apperr.NotFound("room not found")
	}
	ok, err := s.CanAccessRoom(userID, room.OrderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this room")
	}
	return s.repo.FindMessagesByRoom(roomID)
}

func (s *ChatService) SendMessage(roomID, senderID uint, body string) (*entity.Message, error) {
	if body == "" {
		return nil, apperr.Validation("message body is required")
	}
	room, err := s.repo.FindRoomByID(roomID)
	if err != nil {
		return nil, apperr.NotFound("room not found")
	}
	ok, err := s.CanAccessRoom(senderID, room.OrderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this room")
	}

	msg := &entity.Message{
		Body:     body,
		SenderID: senderID,
		RoomID:   roomID,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}
