package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/pkg/resources"
)

// ResourceService owns Resource metadata rows and the upload-handle exchange
// with the object store: the core mints an opaque file handle,
// asks the registry for a signed upload URL, and leaves byte storage and
// line counting to the external pipeline the readiness poller watches.
type ResourceService struct {
	client   *ent.Client
	registry resources.Registry
}

// NewResourceService creates a new ResourceService.
func NewResourceService(client *ent.Client, registry resources.Registry) *ResourceService {
	return &ResourceService{client: client, registry: registry}
}

// CreateUploadHandleInput bundles the operator request for a new resource.
type CreateUploadHandleInput struct {
	Name       string
	Kind       string
	Sensitive  bool
	ProjectIDs []int64
}

// CreateUploadHandle inserts the Resource row with a freshly-minted file
// handle and returns it together with a signed upload URL. line_count stays
// NULL until the counting pipeline reports it.
func (s *ResourceService) CreateUploadHandle(ctx context.Context, in CreateUploadHandleInput) (*ent.Resource, string, error) {
	if in.Name == "" {
		return nil, "", NewValidationError("name", "name is required")
	}
	kind := resource.Kind(in.Kind)
	switch kind {
	case resource.KindWordList, resource.KindRuleList, resource.KindMaskList:
	default:
		return nil, "", NewValidationError("kind", fmt.Sprintf("unknown resource kind %q", in.Kind))
	}
	// Sensitive resources must be scoped to at least one project.
	if in.Sensitive && len(in.ProjectIDs) == 0 {
		return nil, "", NewValidationError("project_ids", "sensitive resources require at least one project")
	}

	fileHandle := fmt.Sprintf("resources/%s/%s", in.Kind, uuid.New())

	created, err := s.client.Resource.Create().
		SetName(in.Name).
		SetKind(kind).
		SetFileHandle(fileHandle).
		SetSensitive(in.Sensitive).
		AddProjectIDs(in.ProjectIDs...).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, "", fmt.Errorf("%w: resource project association", ErrInvalidInput)
		}
		return nil, "", fmt.Errorf("failed to create resource: %w", err)
	}

	uploadURL, err := s.registry.SignUpload(ctx, fileHandle)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign upload url: %w", err)
	}
	return created, uploadURL, nil
}

// Get loads a resource by ID.
func (s *ResourceService) Get(ctx context.Context, id int64) (*ent.Resource, error) {
	res, err := s.client.Resource.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: resource %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load resource: %w", err)
	}
	return res, nil
}

// SignDownload returns the presigned download descriptor for a resource,
// used to build the AttackResourceFile entries of the Attack DTO.
func (s *ResourceService) SignDownload(ctx context.Context, res *ent.Resource) (resources.SignedFile, error) {
	signed, err := s.registry.SignDownload(ctx, res.FileHandle)
	if err != nil {
		return resources.SignedFile{}, fmt.Errorf("failed to sign download url: %w", err)
	}
	return signed, nil
}
