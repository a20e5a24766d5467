package services

import (
	"context"
	"fmt"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// BenchmarkService bulk-upserts an agent's hashcat benchmark report: one
// row per (agent, hash_type, device_index), replace-semantics within a
// single transaction.
type BenchmarkService struct {
	client *ent.Client
}

// NewBenchmarkService creates a new BenchmarkService.
func NewBenchmarkService(client *ent.Client) *BenchmarkService {
	return &BenchmarkService{client: client}
}

// Submit replaces ag's benchmark rows for every (hash_type, device) pair
// present in entries, leaving rows for pairs not present untouched.
func (b *BenchmarkService) Submit(ctx context.Context, ag *ent.Agent, entries []models.HashcatBenchmark) error {
	if len(entries) == 0 {
		return nil
	}
	for i, e := range entries {
		if e.HashType < 0 {
			return NewValidationError("hash_type", fmt.Sprintf("entry %d: hash_type must be non-negative", i))
		}
		if e.Device < 0 {
			return NewValidationError("device", fmt.Sprintf("entry %d: device index must be non-negative", i))
		}
		if e.HashSpeed <= 0 {
			return NewValidationError("hash_speed", fmt.Sprintf("entry %d: hash_speed must be positive", i))
		}
	}

	tx, err := b.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}

	for _, e := range entries {
		err := tx.Benchmark.Create().
			SetAgent(ag).
			SetHashType(e.HashType).
			SetDeviceIndex(e.Device).
			SetHashSpeed(e.HashSpeed).
			SetRuntimeMs(e.RuntimeMs).
			OnConflictColumns("agent_id", "hash_type", "device_index").
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to upsert benchmark row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit benchmark batch: %w", err)
	}
	return nil
}
