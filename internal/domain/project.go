package domain

import "time"

type Project struct {
	ProjectID   string    `json:"id" dynamodbav:"project_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	Tech        []string  `json:"tech" dynamodbav:"tech"`
	GitHub      string    `json:"github" dynamodbav:"github"`
	LiveURL     string    `json:"liveUrl" dynamodbav:"live_url"`
	ImageURL    string    `json:"imageUrl" dynamodbav:"image_url"`
	Featured    bool      `json:"featured" dynamodbav:"featured"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHub      string   `json:"github"`
	LiveURL     string   `json:"liveUrl"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tech        *[]string `json:"tech"`
	GitHub      *string   `json:"github"`
	LiveURL     *string   `json:"liveUrl"`
	ImageURL    *string   `json:"imageUrl"`
	Featured    *bool     `json:"featured"`
}
