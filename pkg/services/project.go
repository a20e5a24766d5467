package services

import (
	"context"
	"fmt"

	"github.com/cipherswarm/cipherswarm/ent"
)

// ProjectService owns Project CRUD: the tenant boundary everything else
// hangs off. Deliberately thin — user/account management around
// projects is out of scope.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Create inserts a new project.
func (s *ProjectService) Create(ctx context.Context, name string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	created, err := s.client.Project.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %q", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Get loads a project by ID.
func (s *ProjectService) Get(ctx context.Context, id int64) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return p, nil
}
