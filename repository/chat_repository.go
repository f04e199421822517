package repository

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

func (r *ChatRepository) CreateRoom(room *entity.ChatRoom) error {
	return r.db.Create(room).Error
}

func (r *ChatRepository) FindRoomByID(roomID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) FindRoomByOrder(orderID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.Where("order_id = ?", orderID).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindRoomsByUser returns rooms for orders the user is party to, on either
// side of the transaction.
func (r *ChatRepository) FindRoomsByUser(userID uint) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.db.
		Where("order_id IN (?)", r.db.Table("orders").Select("id").
			Where("client_id = ? OR freelancer_id = ?", userID, userID)).
		Find(&rooms).Error
	return rooms, err
}

func (r *ChatRepository) FindMessagesByRoom(roomID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.db.Create(msg).Error
}
