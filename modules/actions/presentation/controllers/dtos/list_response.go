package dtos

import "time"

type BusinessResponse struct {
	BusinessName *string `json:"business_name"`
}

type AssignedUserResponse struct {
	FirstName              *string `json:"first_name"`
	LastName               *string `json:"last_name"`
	ProfilePictureFilename *string `json:"profile_picture_filename"`
}

type StatusResponse struct {
	Name string `json:"name"`
}

type ActionProcessResponse struct {
	Description string `json:"description"`
}

// ActionResponse serializes ids as strings.
type ActionResponse struct {
	ID                 string                 `json:"id"`
	BusinessID         *string                `json:"business_id"`
	Process            *string                `json:"process"`
	ProcessDescription string                 `json:"process_description"`
	Description        string                 `json:"description"`
	DueAt              time.Time              `json:"due_at"`
	CompletedAt        *time.Time             `json:"completed_at"`
	StatusSlug         string                 `json:"status_slug"`
	StatusName         string                 `json:"status_name"`
	AssignedUserID     *string                `json:"assigned_user_id"`
	CreatedAt          time.Time              `json:"created_at"`
	Business           BusinessResponse       `json:"business"`
	AssignedUser       *AssignedUserResponse  `json:"assigned_user"`
	Status             *StatusResponse        `json:"status"`
	ActionProcess      *ActionProcessResponse `json:"action_process"`
}

type ListResponse struct {
	Actions          []*ActionResponse `json:"actions"`
	TotalCompleted   int64             `json:"totalCompleted"`
	TotalOutstanding int64             `json:"totalOutstanding"`
	TotalPages       int               `json:"totalPages"`
	Total            int64             `json:"total"`
	Page             int               `json:"page"`
	PerPage          int               `json:"perPage"`
}
