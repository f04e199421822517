package services

import (
	"testing"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewPostService(repository.NewPostRepository(db)), db
}

func postReq() *CreatePostReq {
	return &CreatePostReq{
		Title:     "Need a landing page",
		Category:  "web",
		BudgetMin: decimal.RequireFromString("50"),
		BudgetMax: decimal.RequireFromString("150"),
	}
}

func TestCreatePost(t *testing.T) {
	svc, db := newPostService(t)
	client := seedUser(t, db, "client@uni.edu", entity.RoleClient)

	post, err := svc.Create(client.ID, postReq())
	require.NoError(t, err)
	assert.True(t, post.Open)

	req := postReq()
	req.BudgetMax = decimal.RequireFromString("10")
	_, err = svc.Create(client.ID, req)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestApplyRules(t *testing.T) {
	svc, db := newPostService(t)
	client := seedUser(t, db, "client@uni.edu", entity.RoleClient)
	freelancer := seedUser(t, db, "fl@uni.edu", entity.RoleFreelancer)

	post, err := svc.Create(client.ID, postReq())
	require.NoError(t, err)

	apply := &ApplyReq{CoverLetter: "I can build this", ProposedAmount: decimal.RequireFromString("120")}

	t.Run("own post", func(t *testing.T) {
		_, err := svc.Apply(client.ID, post.ID, apply)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
	})

	t.Run("first application accepted", func(t *testing.T) {
		app, err := svc.Apply(freelancer.ID, post.ID, apply)
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationPending, app.Status)
	})

	t.Run("no duplicates", func(t *testing.T) {
		_, err := svc.Apply(freelancer.ID, post.ID, apply)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
	})

	t.Run("closed post", func(t *testing.T) {
		other := seedUser(t, db, "fl2@uni.edu", entity.RoleFreelancer)
		require.NoError(t, svc.Close(client.ID, post.ID))
		_, err := svc.Apply(other.ID, post.ID, apply)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
	})
}

func TestClosedPostsLeaveOpenListing(t *testing.T) {
	svc, db := newPostService(t)
	client := seedUser(t, db, "client@uni.edu", entity.RoleClient)

	kept, err := svc.Create(client.ID, postReq())
	require.NoError(t, err)
	closed, err := svc.Create(client.ID, postReq())
	require.NoError(t, err)
	require.NoError(t, svc.Close(client.ID, closed.ID))

	out, err := svc.ListOpen("", 1, 20)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, kept.ID, out.Items[0].ID)

	mine, err := svc.ListMine(client.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestDecideApplication(t *testing.T) {
	svc, db := newPostService(t)
	client := seedUser(t, db, "client@uni.edu", entity.RoleClient)
	freelancer := seedUser(t, db, "fl@uni.edu", entity.RoleFreelancer)
	stranger := seedUser(t, db, "other@uni.edu", entity.RoleClient)

	post, err := svc.Create(client.ID, postReq())
	require.NoError(t, err)
	app, err := svc.Apply(freelancer.ID, post.ID, &ApplyReq{
		CoverLetter: "pick me", ProposedAmount: decimal.RequireFromString("99"),
	})
	require.NoError(t, err)

	_, err = svc.Decide(stranger.ID, app.ID, true)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	decided, err := svc.Decide(client.ID, app.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationAccepted, decided.Status)

	// a decision is final
	_, err = svc.Decide(client.ID, app.ID, false)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	apps, err := svc.ListApplications(client.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	_, err = svc.ListApplications(stranger.ID, post.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}
