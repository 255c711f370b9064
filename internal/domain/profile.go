package domain

import "time"

// ProfileKey is the fixed partition key of the singleton profile record.
// There is never more than one profile row; every read and write uses this key.
const ProfileKey = "profile"

// Profile is the public site-profile record. ResumeURL points at the externally
// hosted CV file consumed by the download flow.
type Profile struct {
	ProfileID string    `json:"-" dynamodbav:"profile_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Headline  string    `json:"headline" dynamodbav:"headline"`
	Bio       string    `json:"bio" dynamodbav:"bio"`
	Email     string    `json:"email" dynamodbav:"email"`
	GitHub    string    `json:"github" dynamodbav:"github"`
	LinkedIn  string    `json:"linkedin" dynamodbav:"linkedin"`
	AvatarURL string    `json:"avatarUrl" dynamodbav:"avatar_url"`
	ResumeURL string    `json:"resumeUrl" dynamodbav:"resume_url"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Headline  *string `json:"headline"`
	Bio       *string `json:"bio"`
	Email     *string `json:"email" validate:"omitempty,email"`
	GitHub    *string `json:"github"`
	LinkedIn  *string `json:"linkedin"`
	AvatarURL *string `json:"avatarUrl"`
	ResumeURL *string `json:"resumeUrl"`
}
