package services

import (
	"context"
	"fmt"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
)

// HashListService owns HashList and HashItem rows: creation with the
// uncracked_count invariant seeded, and the serialized export the agent
// downloads before running a task.
type HashListService struct {
	client *ent.Client
}

// NewHashListService creates a new HashListService.
func NewHashListService(client *ent.Client) *HashListService {
	return &HashListService{client: client}
}

// HashItemInput is one target hash submitted at hash list creation.
type HashItemInput struct {
	HashValue string
	Metadata  string
}

// Create inserts a hash list and its items in one transaction, seeding
// uncracked_count = len(items) so the counter invariant holds from the
// first row.
func (s *HashListService) Create(ctx context.Context, projectID int64, name string, hashMode int, items []HashItemInput) (*ent.HashList, error) {
	if name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if len(items) == 0 {
		return nil, NewValidationError("hashes", "a hash list needs at least one hash")
	}
	for i, item := range items {
		if item.HashValue == "" {
			return nil, NewValidationError("hashes", fmt.Sprintf("entry %d: hash value is empty", i))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	created, err := tx.HashList.Create().
		SetProjectID(projectID).
		SetName(name).
		SetHashMode(hashMode).
		SetUncrackedCount(len(items)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to create hash list: %w", err)
	}

	bulk := make([]*ent.HashItemCreate, 0, len(items))
	for _, item := range items {
		create := tx.HashItem.Create().
			SetHashList(created).
			SetHashValue(item.HashValue)
		if item.Metadata != "" {
			create = create.SetMetadata(item.Metadata)
		}
		bulk = append(bulk, create)
	}
	if _, err := tx.HashItem.CreateBulk(bulk...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to create hash items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit hash list: %w", err)
	}
	return created, nil
}

// Get loads a hash list by ID.
func (s *HashListService) Get(ctx context.Context, id int64) (*ent.HashList, error) {
	hl, err := s.client.HashList.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: hash list %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load hash list: %w", err)
	}
	return hl, nil
}

// UncrackedValues returns the hash values still lacking a plaintext, in
// insertion order — the body of the hash_list_url download the agent feeds
// to hashcat.
func (s *HashListService) UncrackedValues(ctx context.Context, hashListID int64) ([]string, error) {
	items, err := s.client.HashItem.Query().
		Where(
			hashitem.HasHashListWith(hashlist.IDEQ(hashListID)),
			hashitem.IsCracked(false),
		).
		Order(ent.Asc(hashitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query uncracked items: %w", err)
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, item.HashValue)
	}
	return values, nil
}
