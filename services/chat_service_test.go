package services

import (
	"testing"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRoomAccess(t *testing.T) {
	orderSvc, db, gw := newOrderService(t)
	chatSvc := NewChatService(repository.NewChatRepository(db), repository.NewOrderRepository(db))

	client := seedUser(t, db, "client@uni.edu", entity.RoleClient)
	freelancer := seedUser(t, db, "fl@uni.edu", entity.RoleFreelancer)
	stranger := seedUser(t, db, "other@uni.edu", entity.RoleClient)
	gig := seedGig(t, db, freelancer.ID, "100")
	order := placePaidOrder(t, orderSvc, gw, client.ID, gig)

	// payment confirmation opened the room
	room, err := repository.NewChatRepository(db).FindRoomByOrder(order.ID)
	require.NoError(t, err)

	t.Run("both parties can send", func(t *testing.T) {
		_, err := chatSvc.SendMessage(room.ID, client.ID, "hi, any update?")
		require.NoError(t, err)
		_, err = chatSvc.SendMessage(room.ID, freelancer.ID, "first draft tomorrow")
		require.NoError(t, err)

		msgs, err := chatSvc.GetMessages(client.ID, room.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hi, any update?", msgs[0].Body)
		assert.Equal(t, client.ID, msgs[0].SenderID)
	})

	t.Run("stranger shut out", func(t *testing.T) {
		_, err := chatSvc.SendMessage(room.ID, stranger.ID, "let me in")
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
		_, err = chatSvc.GetMessages(stranger.ID, room.ID)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("empty body rejected", func(t *testing.T) {
		_, err := chatSvc.SendMessage(room.ID, client.ID, "")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := chatSvc.SendMessage(9999, client.ID, "hello?")
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("room listing covers both sides", func(t *testing.T) {
		for _, u := range []*entity.User{client, freelancer} {
			rooms, err := chatSvc.GetRoomsByUser(u.ID)
			require.NoError(t, err)
			assert.Len(t, rooms, 1)
		}
		rooms, err := chatSvc.GetRoomsByUser(stranger.ID)
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})
}
