package models

import (
	"math"
	"time"
)

// AnnouncementLifetime is the fixed distance between createdAt and expiresAt.
const AnnouncementLifetime = 7 * 24 * time.Hour

// Announcement is a time-limited post visible to every member of a community.
// Stored under PK=COMMUNITY#<communityId>, SK=ANNOUNCEMENT#<creation unix millis>.
type Announcement struct {
	ID          string    `dynamodbav:"id" json:"id"`
	CommunityID string    `dynamodbav:"communityId" json:"communityId" validate:"required"`
	AuthorID    string    `dynamodbav:"authorId" json:"authorId"`
	AuthorName  string    `dynamodbav:"authorName" json:"authorName"` // Snapshot at post time
	Title       string    `dynamodbav:"title" json:"title" validate:"required"`
	Description string    `dynamodbav:"description" json:"description"`
	Category    Category  `dynamodbav:"category" json:"category"`
	CreatedAt   time.Time `dynamodbav:"createdAt" json:"createdAt"`
	ExpiresAt   time.Time `dynamodbav:"expiresAt" json:"expiresAt"`
}

// ExpiryFor returns the expiry instant of an announcement created at createdAt.
func ExpiryFor(createdAt time.Time) time.Time {
	return createdAt.Add(AnnouncementLifetime)
}

// DaysRemaining rounds the time left until expiry up to whole days.
// Zero or negative means the announcement expires today or already has.
func (a Announcement) DaysRemaining(now time.Time) int {
	left := a.ExpiresAt.Sub(now)
	return int(math.Ceil(left.Hours() / 24))
}

// ExpiringToday reports whether the announcement should be shown as expiring today.
func (a Announcement) ExpiringToday(now time.Time) bool {
	return a.DaysRemaining(now) <= 0
}

// Expired reports whether expiresAt has passed. Expired announcements are still stored and listed.
func (a Announcement) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}
