package services

import (
	"context"
	"errors"
	"testing"

	"commulink_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_EmptyCommunity(t *testing.T) {
	t.Parallel()
	store, _ := newTestStore()

	users, err := NewDirectoryService(store).ListUsers(context.Background(), "nobody-here")
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_OnlyUsersOfTheCommunity(t *testing.T) {
	t.Parallel()
	store, _ := newTestStore()
	ctx := context.Background()

	for _, u := range []models.User{
		models.NewMember("u-1", "river-oaks", "alice"),
		models.NewMember("u-2", "river-oaks", "bob"),
		models.NewMember("u-3", "church-st-mary", "carol"),
	} {
		require.NoError(t, store.PutItem(ctx, u.Key(), models.EntityUser, u))
	}
	a := models.Announcement{ID: "a-1", CommunityID: "river-oaks", Title: "Bake sale", CreatedAt: fixedTime}
	require.NoError(t, store.PutItem(ctx, models.AnnouncementKey("river-oaks", fixedTime), models.EntityAnnouncement, a))

	users, err := NewDirectoryService(store).ListUsers(ctx, "river-oaks")
	require.NoError(t, err)

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	assert.ElementsMatch(t, []string{"alice", "bob"}, names)
}

func TestListUsers_MissingCommunity(t *testing.T) {
	t.Parallel()
	store, mem := newTestStore()

	_, err := NewDirectoryService(store).ListUsers(context.Background(), "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"communityId"}, verr.Fields)
	assert.Zero(t, mem.Queries)
}

func TestListUsers_StoreFailure(t *testing.T) {
	t.Parallel()
	store, mem := newTestStore()
	mem.QueryErr = errors.New("boom")

	_, err := NewDirectoryService(store).ListUsers(context.Background(), "river-oaks")

	var serr *StoreError
	assert.ErrorAs(t, err, &serr)
}
