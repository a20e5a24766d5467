package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// ResultService implements the Result Ingestor: accepts a batch of
// cracked-hash entries, looks each up against the task's hash list,
// discards unmatched entries, dedups already-cracked hashes idempotently,
// and otherwise marks the hash item cracked and decrements the hash list's
// uncracked_count — firing accept_crack on the task once the batch is
// applied.
type ResultService struct {
	client    *ent.Client
	tasks     *TaskService
	publisher events.Publisher
}

// NewResultService creates a new ResultService.
func NewResultService(client *ent.Client, tasks *TaskService, publisher events.Publisher) *ResultService {
	if publisher == nil {
		publisher = events.NewLogPublisher(nil)
	}
	return &ResultService{client: client, tasks: tasks, publisher: publisher}
}

// Submit ingests one crack batch for t, submitted by agentID. Returns the
// number of newly-recorded cracks (entries matching an already-cracked
// item, or no item at all, don't count).
func (r *ResultService) Submit(ctx context.Context, t *ent.Task, agentID int64, entries []models.CrackEntry) (int, error) {
	if t.Edges.Agent == nil || t.Edges.Agent.ID != agentID {
		r.publisher.PublishStatusMismatch(ctx, events.StatusMismatchPayload{
			Type: events.TypeStatusMismatch, TaskID: t.ID, AgentID: agentID, Timestamp: time.Now(),
		})
		return 0, ErrLeaseMismatch
	}

	hashListID, err := r.client.Task.QueryAttack(t).QueryCampaign().QueryHashList().OnlyID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve hash list: %w", err)
	}

	newlyCracked := 0
	for _, entry := range entries {
		cracked, err := r.applyOne(ctx, t, hashListID, entry)
		if err != nil {
			return newlyCracked, err
		}
		if cracked {
			newlyCracked++
		}
	}

	hl, err := r.client.HashList.Get(ctx, hashListID)
	if err != nil {
		return newlyCracked, fmt.Errorf("failed to reload hash list: %w", err)
	}

	if _, err := r.tasks.ApplyEvent(ctx, t, TaskTransitionInput{
		Event:                statemachine.TaskEventAcceptCrack,
		HashListFullyCracked: hl.UncrackedCount == 0,
	}); err != nil {
		return newlyCracked, err
	}

	return newlyCracked, nil
}

// applyOne looks up a single hash by value within hashListID, ignores it if
// not found, idempotently no-ops if already cracked, and otherwise marks it
// cracked and decrements the hash list's uncracked_count transactionally.
func (r *ResultService) applyOne(ctx context.Context, t *ent.Task, hashListID int64, entry models.CrackEntry) (bool, error) {
	item, err := r.client.HashItem.Query().
		Where(hashitem.HashValueEQ(entry.Hash), hashitem.HasHashListWith(hashlist.IDEQ(hashListID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up hash item: %w", err)
	}

	if item.IsCracked {
		// Idempotent duplicate: still record the observation, never
		// decrement uncracked_count twice.
		existing, err := r.client.CrackResult.Query().
			Where(crackresult.HasTaskWith(task.IDEQ(t.ID)), crackresult.HasHashItemWith(hashitem.IDEQ(item.ID))).
			Exist(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check existing crack result: %w", err)
		}
		if !existing {
			if err := r.client.CrackResult.Create().
				SetTask(t).
				SetHashItem(item).
				SetHashValue(entry.Hash).
				SetPlaintext(entry.PlainText).
				SetCrackedAt(entry.Timestamp).
				Exec(ctx); err != nil && !ent.IsConstraintError(err) {
				return false, fmt.Errorf("failed to record duplicate crack observation: %w", err)
			}
		}
		return false, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to open transaction: %w", err)
	}

	if err := tx.HashItem.UpdateOneID(item.ID).
		SetIsCracked(true).
		SetPlaintext(entry.PlainText).
		SetCrackedAt(entry.Timestamp).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("failed to mark hash item cracked: %w", err)
	}

	if err := tx.CrackResult.Create().
		SetTask(t).
		SetHashItem(item).
		SetHashValue(entry.Hash).
		SetPlaintext(entry.PlainText).
		SetCrackedAt(entry.Timestamp).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("failed to record crack result: %w", err)
	}

	n, err := tx.HashList.Update().
		Where(hashlist.IDEQ(hashListID), hashlist.UncrackedCountGT(0)).
		AddUncrackedCount(-1).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("failed to decrement uncracked_count: %w", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		return false, fmt.Errorf("hash list uncracked_count already zero, refusing to go negative")
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit crack: %w", err)
	}

	uncrackedLeft := 0
	if hl, err := r.client.HashList.Get(ctx, hashListID); err == nil {
		uncrackedLeft = hl.UncrackedCount
	}

	r.publisher.PublishCrackObserved(ctx, events.CrackObservedPayload{
		Type: events.TypeCrackObserved, TaskID: t.ID, HashListID: hashListID, HashValue: entry.Hash,
		UncrackedLeft: uncrackedLeft, Timestamp: entry.Timestamp,
	})

	return true, nil
}
