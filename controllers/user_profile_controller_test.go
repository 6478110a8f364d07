package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commulink_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_EmptyDirectory(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	c := NewUserProfileController(env.directory, env.profiles, nil)

	rec := serve(c.ListUsers, httptest.NewRequest(http.MethodGet, "/api/users?communityId=quiet-street", nil))

	requireJSON(t, rec, http.StatusOK)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListUsers_MissingCommunity(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	c := NewUserProfileController(env.directory, env.profiles, nil)

	rec := serve(c.ListUsers, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	requireJSON(t, rec, http.StatusBadRequest)
}

func TestUpdateProfile_ThenListed(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	c := NewUserProfileController(env.directory, env.profiles, nil)

	rec := serve(c.UpdateProfile, jsonRequest(t, http.MethodPut, "/api/profile",
		`{"id":"u-1","username":"jdoe","communityId":"river-oaks","fullName":"Jane Doe","isBloodDonor":true,"bloodType":"O-","avatarUrl":"https://example.com/a.png"}`))
	requireJSON(t, rec, http.StatusOK)

	var saved models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "Jane Doe", saved.FullName)
	assert.Equal(t, "https://example.com/a.png", saved.AvatarURL)

	rec = serve(c.ListUsers, httptest.NewRequest(http.MethodGet, "/api/users?communityId=river-oaks", nil))
	requireJSON(t, rec, http.StatusOK)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, saved, users[0])
}

func TestUpdateProfile_MissingUsername(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	c := NewUserProfileController(env.directory, env.profiles, nil)

	rec := serve(c.UpdateProfile, jsonRequest(t, http.MethodPut, "/api/profile", `{"communityId":"river-oaks"}`))

	requireJSON(t, rec, http.StatusBadRequest)
	assert.Contains(t, rec.Body.String(), "username")
	assert.Zero(t, env.mem.Puts)
}
