package handler

import "github.com/taskforge/projecthub/internal/core/domain"

func toProjectResponse(p *domain.Project) projectResponse {
	assigned := p.AssignedTo
	if assigned == nil {
		assigned = []string{}
	}
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		AssignedTo:  assigned,
		IsDeleted:   p.IsDeleted,
		DeletedAt:   p.DeletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProjectResponses(projects []*domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}
