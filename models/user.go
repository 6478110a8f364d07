package models

// User is a community member. Stored under PK=COMMUNITY#<communityId>, SK=USER#<username>.
type User struct {
	ID           string    `dynamodbav:"id" json:"id"`                     // u-<unix millis>, assigned once
	Username     string    `dynamodbav:"username" json:"username" validate:"required"`
	CommunityID  string    `dynamodbav:"communityId" json:"communityId" validate:"required"`
	FullName     string    `dynamodbav:"fullName" json:"fullName"`
	Email        string    `dynamodbav:"email" json:"email"`
	Phone        string    `dynamodbav:"phone" json:"phone"`
	Address      string    `dynamodbav:"address" json:"address"`
	Profession   string    `dynamodbav:"profession" json:"profession"`
	Gender       string    `dynamodbav:"gender" json:"gender"`
	DateOfBirth  string    `dynamodbav:"dateOfBirth" json:"dateOfBirth"` // YYYY-MM-DD
	AvatarURL    string    `dynamodbav:"avatarUrl" json:"avatarUrl"`
	AllowContact bool      `dynamodbav:"allowContact" json:"allowContact"` // Phone visible to other members
	IsDonor      bool      `dynamodbav:"isDonor" json:"isDonor"`           // Organ donor
	IsBloodDonor bool      `dynamodbav:"isBloodDonor" json:"isBloodDonor"`
	BloodType    BloodType `dynamodbav:"bloodType" json:"bloodType"`
}

// NewMember returns the profile written the first time a username logs in to a community.
func NewMember(id, communityID, username string) User {
	return User{
		ID:          id,
		Username:    username,
		CommunityID: communityID,
		FullName:    username,
		Profession:  DefaultProfession,
		Gender:      DefaultGender,
		BloodType:   BloodTypeUnknown,
	}
}

// Key returns the storage address of the user.
func (u User) Key() Key {
	return UserKey(u.CommunityID, u.Username)
}
