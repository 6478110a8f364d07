package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"commulink_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_RegistersNewMember(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	c := NewAuthController(env.identity, nil)

	rec := serve(c.Login, jsonRequest(t, http.MethodPost, "/api/login",
		`{"communityId":"river-oaks","username":"jdoe"}`))
	requireJSON(t, rec, http.StatusOK)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "jdoe", session.User.Username)
	assert.Equal(t, "jdoe", session.User.FullName)
	assert.Equal(t, "u-1710063000000", session.User.ID)
	assert.Equal(t, models.Community{ID: "river-oaks", Name: "River Oaks", Type: models.CommunityTypeNeighborhood}, session.Community)
	assert.Equal(t, 1, env.mem.Puts)
}

func TestLogin_MissingField(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	c := NewAuthController(env.identity, nil)

	rec := serve(c.Login, jsonRequest(t, http.MethodPost, "/api/login", `{"communityId":"river-oaks"}`))

	requireJSON(t, rec, http.StatusBadRequest)
	assert.Contains(t, rec.Body.String(), "username")
	assert.Zero(t, env.mem.Gets)
	assert.Zero(t, env.mem.Puts)
}

func TestLogin_MalformedJSON(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	c := NewAuthController(env.identity, nil)

	rec := serve(c.Login, jsonRequest(t, http.MethodPost, "/api/login", `{"communityId":`))

	requireJSON(t, rec, http.StatusBadRequest)
	assert.JSONEq(t, `{"message":"Invalid request payload"}`, rec.Body.String())
}

func TestLogin_StoreFailure(t *testing.T) {
	t.Parallel()
	env := newTestEnv(nil)
	env.mem.GetErr = errors.New("connection reset")
	c := NewAuthController(env.identity, nil)

	rec := serve(c.Login, jsonRequest(t, http.MethodPost, "/api/login",
		`{"communityId":"river-oaks","username":"jdoe"}`))

	requireJSON(t, rec, http.StatusInternalServerError)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}
