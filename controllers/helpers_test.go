package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commulink_server/services"
	"commulink_server/services/storetest"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	mem           *storetest.Memory
	identity      *services.IdentityService
	directory     *services.DirectoryService
	announcements *services.AnnouncementService
	profiles      *services.UserProfileService
}

func newTestEnv(blob services.BlobStore) *testEnv {
	mem := storetest.NewMemory()
	store := services.NewDynamoService(mem, "test-table", nil)
	clock := services.Clock(func() time.Time { return fixedTime })

	env := &testEnv{
		mem:           mem,
		identity:      services.NewIdentityService(store, nil),
		directory:     services.NewDirectoryService(store),
		announcements: services.NewAnnouncementService(store, nil),
		profiles:      services.NewUserProfileService(store, blob, nil),
	}
	env.identity.Clock = clock
	env.announcements.Clock = clock
	env.profiles.Clock = clock
	return env
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func requireJSON(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

type fakeBlob struct{}

func (fakeBlob) PutObject(_ context.Context, key, _ string, _ []byte) (string, error) {
	return "https://bucket.example.com/" + key, nil
}

func (fakeBlob) PresignUpload(_ context.Context, key, _ string) (string, string, error) {
	return "https://bucket.example.com/" + key + "?signed", "https://bucket.example.com/" + key, nil
}
