package models

// Blood types
type BloodType string

const (
	BloodTypeAPos    BloodType = "A+"
	BloodTypeANeg    BloodType = "A-"
	BloodTypeBPos    BloodType = "B+"
	BloodTypeBNeg    BloodType = "B-"
	BloodTypeABPos   BloodType = "AB+"
	BloodTypeABNeg   BloodType = "AB-"
	BloodTypeOPos    BloodType = "O+"
	BloodTypeONeg    BloodType = "O-"
	BloodTypeUnknown BloodType = "Unknown"
)

// Announcement categories
type Category string

const (
	CategoryRequest Category = "Request"
	CategoryOffer   Category = "Offer"
	CategoryGeneral Category = "General"
)

// Community types. Only Neighborhood is produced today.
type CommunityType string

const (
	CommunityTypeChurch       CommunityType = "Church"
	CommunityTypeClub         CommunityType = "Club"
	CommunityTypeNeighborhood CommunityType = "Neighborhood"
	CommunityTypeSchool       CommunityType = "School"
	CommunityTypeOther        CommunityType = "Other"
)

// Defaults for auto-registered members
const (
	DefaultProfession = "New Member"
	DefaultGender     = "Prefer not to say"
)

// DefaultTableName is the DynamoDB table holding every community record.
const DefaultTableName = "CommuLinkData"
