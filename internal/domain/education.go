package domain

import "time"

type Education struct {
	EducationID string    `json:"id" dynamodbav:"education_id"`
	Institution string    `json:"institution" dynamodbav:"institution"`
	Degree      string    `json:"degree" dynamodbav:"degree"`
	Field       string    `json:"field" dynamodbav:"field"`
	StartYear   int       `json:"startYear" dynamodbav:"start_year"`
	EndYear     int       `json:"endYear" dynamodbav:"end_year"` // 0 while ongoing
	Description string    `json:"description" dynamodbav:"description"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

type CreateEducationRequest struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field"`
	StartYear   int    `json:"startYear" validate:"required"`
	EndYear     int    `json:"endYear"`
	Description string `json:"description"`
}

type UpdateEducationRequest struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartYear   *int    `json:"startYear"`
	EndYear     *int    `json:"endYear"`
	Description *string `json:"description"`
}
