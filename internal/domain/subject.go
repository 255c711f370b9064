package domain

import "time"

// CVSubject is one verification record per requester email in the cv_subjects table.
// Email is the natural key: re-requesting an OTP updates the existing row rather
// than creating a duplicate. The OTP and its expiry are persisted but never
// serialized into any JSON response.
type CVSubject struct {
	Email          string     `json:"email" dynamodbav:"email"`
	Name           string     `json:"name" dynamodbav:"name"`
	Verified       bool       `json:"verified" dynamodbav:"verified"`
	OTP            string     `json:"-" dynamodbav:"otp"`
	OTPExpiresAt   int64      `json:"-" dynamodbav:"otp_expires_at"` // Unix seconds; 0 once verified
	DownloadCount  int        `json:"downloadCount" dynamodbav:"download_count"`
	LastDownloadAt *time.Time `json:"lastDownloadAt,omitempty" dynamodbav:"last_download_at"`
	CreatedAt      time.Time  `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" dynamodbav:"updated_at"`
}

type RequestOTPRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}
