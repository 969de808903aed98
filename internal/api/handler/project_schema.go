package handler

import "time"

type createProjectRequest struct {
	Name        string   `json:"name"        validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"max=500"`
	AssignedTo  []string `json:"assigned_to" validate:"omitempty,dive,required"`
}

type updateProjectRequest struct {
	Name        *string   `json:"name"        validate:"omitempty,min=3,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	AssignedTo  *[]string `json:"assigned_to" validate:"omitempty,dive,required"`
}

type projectResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"created_by"`
	AssignedTo  []string   `json:"assigned_to"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type projectEnvelope struct {
	baseResponse
	Project projectResponse `json:"project"`
}

type projectsEnvelope struct {
	baseResponse
	CountTotal int               `json:"countTotal"`
	Projects   []projectResponse `json:"projects"`
}
