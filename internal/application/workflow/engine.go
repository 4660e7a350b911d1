// Package workflow applies inquiry status transitions atomically. Every
// transition is one transaction holding a compare-and-set status update and
// the matching process-log entry, so the log never shows a step the inquiry
// did not actually take.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/shared/logger"
)

// ErrConflict is returned when the inquiry was no longer in the expected
// status. Callers log and skip; the transition simply lost the race.
var ErrConflict = errors.New("inquiry status changed concurrently")

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransitionCommand struct {
	InquiryID uint
	From      vo.Status
	To        vo.Status
	// Note overrides the default Korean step message when set.
	Note  string
	Actor string
}

type TransitionResult struct {
	InquiryID uint
	From      vo.Status
	To        vo.Status
	LogID     uint
}

type Engine struct {
	inquiries inquiry.Repository
	logs      inquiry.ProcessLogRepository
	tx        TxRunner
	log       logger.Interface
}

func NewEngine(
	inquiries inquiry.Repository,
	logs inquiry.ProcessLogRepository,
	tx TxRunner,
	log logger.Interface,
) *Engine {
	return &Engine{
		inquiries: inquiries,
		logs:      logs,
		tx:        tx,
		log:       log,
	}
}

// Transition moves an inquiry along one workflow edge. The edge is validated
// against the transition table first; the guarded update then ensures the
// row really was in cmd.From at commit time.
func (e *Engine) Transition(ctx context.Context, cmd TransitionCommand) (*TransitionResult, error) {
	if cmd.InquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if !cmd.From.IsValid() || !cmd.To.IsValid() {
		return nil, fmt.Errorf("invalid status in transition %s -> %s", cmd.From, cmd.To)
	}
	if !cmd.From.CanTransitionTo(cmd.To) {
		return nil, fmt.Errorf("transition %s -> %s is not allowed", cmd.From, cmd.To)
	}

	var result TransitionResult
	err := e.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		moved, err := e.inquiries.UpdateStatusGuarded(txCtx, cmd.InquiryID, cmd.From, cmd.To)
		if err != nil {
			return err
		}
		if !moved {
			return ErrConflict
		}

		entry, err := inquiry.NewProcessLog(cmd.InquiryID, cmd.To, cmd.Note, cmd.Actor)
		if err != nil {
			return err
		}
		if err := e.logs.Append(txCtx, entry); err != nil {
			return err
		}

		result = TransitionResult{
			InquiryID: cmd.InquiryID,
			From:      cmd.From,
			To:        cmd.To,
			LogID:     entry.ID(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			e.log.Infow("transition skipped, status already changed",
				"inquiry_id", cmd.InquiryID, "from", cmd.From, "to", cmd.To)
		}
		return nil, err
	}

	e.log.Infow("inquiry transitioned",
		"inquiry_id", cmd.InquiryID, "from", cmd.From, "to", cmd.To, "actor", cmd.Actor)
	return &result, nil
}

// RequestReanalysis sends a pending-approval inquiry back to registered with
// the admin's note stored as a feedback-marked log. The next pipeline pass
// picks the inquiry up again and feeds the note into the prompt.
func (e *Engine) RequestReanalysis(ctx context.Context, inquiryID uint, note, actor string) (*TransitionResult, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}

	var result TransitionResult
	err := e.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		moved, err := e.inquiries.UpdateStatusGuarded(txCtx, inquiryID, vo.StatusPendingApproval, vo.StatusRegistered)
		if err != nil {
			return err
		}
		if !moved {
			return ErrConflict
		}

		entry, err := inquiry.NewFeedbackLog(inquiryID, note, actor)
		if err != nil {
			return err
		}
		if err := e.logs.Append(txCtx, entry); err != nil {
			return err
		}

		result = TransitionResult{
			InquiryID: inquiryID,
			From:      vo.StatusPendingApproval,
			To:        vo.StatusRegistered,
			LogID:     entry.ID(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Infow("re-analysis requested", "inquiry_id", inquiryID, "actor", actor)
	return &result, nil
}
