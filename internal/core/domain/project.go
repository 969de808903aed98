package domain

import "time"

// Project is a unit of work owned by its creator and assigned to a set of
// users. AssignedTo is the full membership set; updates replace it wholesale.
type Project struct {
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
