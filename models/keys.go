package models

import (
	"strconv"
	"strings"
	"time"
)

// Attribute names of the table's composite primary key and record discriminant.
const (
	PartitionKeyAttr = "PK"
	SortKeyAttr      = "SK"
	EntityTypeAttr   = "entityType"
)

// EntityType tags every stored item with the kind of record it holds.
type EntityType string

const (
	EntityUser         EntityType = "USER"
	EntityAnnouncement EntityType = "ANNOUNCEMENT"
)

const (
	communityPrefix = "COMMUNITY#"

	// UserPrefix and AnnouncementPrefix are the sort-key prefixes used for range queries.
	UserPrefix         = string(EntityUser) + "#"
	AnnouncementPrefix = string(EntityAnnouncement) + "#"
)

// Key addresses one item in the table.
type Key struct {
	PK string
	SK string
}

// CommunityPK is the partition shared by every record of a community.
func CommunityPK(communityID string) string {
	return communityPrefix + communityID
}

func UserKey(communityID, username string) Key {
	return Key{PK: CommunityPK(communityID), SK: UserPrefix + username}
}

// AnnouncementKey uses the creation instant in unix milliseconds as discriminator.
// Two announcements created in the same millisecond share a key.
func AnnouncementKey(communityID string, at time.Time) Key {
	return Key{PK: CommunityPK(communityID), SK: AnnouncementPrefix + strconv.FormatInt(at.UnixMilli(), 10)}
}

// EntityFromSortKey derives the record kind from a sort key, for items written without a
// discriminant attribute.
func EntityFromSortKey(sk string) (EntityType, bool) {
	switch {
	case strings.HasPrefix(sk, UserPrefix):
		return EntityUser, true
	case strings.HasPrefix(sk, AnnouncementPrefix):
		return EntityAnnouncement, true
	}
	return "", false
}
