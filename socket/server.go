package socket

import (
	"context"

	"commulink_server/models"

	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

const (
	namespace = "/"

	// EventJoin is emitted by clients with a communityId to receive that community's updates.
	EventJoin = "join"
	// EventNewAnnouncement carries a freshly created announcement to the community's room.
	EventNewAnnouncement = "announcement:new"
)

// roomBroadcaster is the part of the socket.io server the broadcaster needs.
type roomBroadcaster interface {
	BroadcastToRoom(namespace, room, event string, args ...interface{}) bool
}

// Broadcaster pushes announcements to connected members of the same community.
type Broadcaster struct {
	rooms  roomBroadcaster
	logger *zap.Logger
}

// NewSocketServer initializes the socket.io server and the broadcaster that publishes to it.
// Each community is a room named after its identifier.
func NewSocketServer(logger *zap.Logger) (*socketio.Server, *Broadcaster) {
	server := socketio.NewServer(nil)

	server.OnConnect(namespace, func(c socketio.Conn) error {
		logger.Debug("socket connected", zap.String("socketId", c.ID()))
		return nil
	})

	server.OnEvent(namespace, EventJoin, func(c socketio.Conn, communityID string) {
		if communityID == "" {
			logger.Debug("ignoring join without communityId", zap.String("socketId", c.ID()))
			return
		}
		c.Join(communityID)
		logger.Debug("socket joined community",
			zap.String("socketId", c.ID()),
			zap.String("communityId", communityID),
		)
	})

	server.OnError(namespace, func(c socketio.Conn, err error) {
		logger.Warn("socket error", zap.Error(err))
	})

	server.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		logger.Debug("socket disconnected", zap.String("socketId", c.ID()), zap.String("reason", reason))
	})

	return server, NewBroadcaster(server, logger)
}

func NewBroadcaster(rooms roomBroadcaster, logger *zap.Logger) *Broadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broadcaster{rooms: rooms, logger: logger}
}

// AnnouncementCreated sends the announcement to its community's room. Members who are not
// connected simply miss it and see it on their next list.
func (b *Broadcaster) AnnouncementCreated(_ context.Context, announcement models.Announcement) {
	if !b.rooms.BroadcastToRoom(namespace, announcement.CommunityID, EventNewAnnouncement, announcement) {
		b.logger.Debug("announcement not broadcast", zap.String("communityId", announcement.CommunityID))
	}
}
