package services

import (
	"context"
	"sync"
	"time"

	"commulink_server/models"
	"commulink_server/services/storetest"
)

var fixedTime = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() Clock {
	return func() time.Time { return fixedTime }
}

func newTestStore() (*DynamoService, *storetest.Memory) {
	mem := storetest.NewMemory()
	return NewDynamoService(mem, "test-table", nil), mem
}

// fakeBlob records uploads and fails when err is set.
type fakeBlob struct {
	mu          sync.Mutex
	err         error
	keys        []string
	contentType string
	body        []byte
}

func (f *fakeBlob) PutObject(_ context.Context, key, contentType string, body []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	f.contentType = contentType
	f.body = body
	return "https://bucket.example.com/" + key, nil
}

func (f *fakeBlob) PresignUpload(_ context.Context, key, _ string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "https://bucket.example.com/" + key + "?signed", "https://bucket.example.com/" + key, nil
}

// recordingNotifier collects announcements it is told about.
type recordingNotifier struct {
	mu   sync.Mutex
	seen []models.Announcement
}

func (n *recordingNotifier) AnnouncementCreated(_ context.Context, a models.Announcement) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, a)
}

func memoryOf(ds *DynamoService) *storetest.Memory {
	return ds.Client.(*storetest.Memory)
}
