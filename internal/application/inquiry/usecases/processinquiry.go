package usecases

import (
	"context"
	goerrors "errors"
	"fmt"

	"inqboard/internal/application/workflow"
	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/shared/authorization"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type ProcessInquiryCommand struct {
	InquiryID    uint
	TargetStatus string
	Note         string
	UserRole     string
	Username     string
}

type ProcessInquiryResult struct {
	InquiryID uint
	From      string
	To        string
}

// ProcessInquiryUseCase applies an admin-driven workflow step: approving an
// analysis, sending it back for re-analysis, or moving work between the
// post-approval states.
type ProcessInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	engine      *workflow.Engine
	notifier    Notifier
	logger      logger.Interface
}

func NewProcessInquiryUseCase(
	inquiryRepo inquiry.Repository,
	engine *workflow.Engine,
	notifier Notifier,
	logger logger.Interface,
) *ProcessInquiryUseCase {
	return &ProcessInquiryUseCase{
		inquiryRepo: inquiryRepo,
		engine:      engine,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ProcessInquiryUseCase) Execute(ctx context.Context, cmd ProcessInquiryCommand) (*ProcessInquiryResult, error) {
	if !authorization.ParseUserRole(cmd.UserRole).IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can process inquiries")
	}
	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	target, err := vo.NewStatus(cmd.TargetStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	inq, err := uc.inquiryRepo.GetByID(ctx, cmd.InquiryID)
	if err != nil {
		return nil, err
	}
	current := inq.Status()

	if !current.CanTransitionTo(target) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("transition %s -> %s is not allowed", current, target))
	}

	var result *workflow.TransitionResult
	if current.IsPendingApproval() && target.IsRegistered() {
		result, err = uc.engine.RequestReanalysis(ctx, inq.ID(), cmd.Note, cmd.Username)
	} else {
		result, err = uc.engine.Transition(ctx, workflow.TransitionCommand{
			InquiryID: inq.ID(),
			From:      current,
			To:        target,
			Note:      cmd.Note,
			Actor:     cmd.Username,
		})
	}
	if err != nil {
		if goerrors.Is(err, workflow.ErrConflict) {
			return nil, errors.NewConflictError("inquiry status changed, reload and retry")
		}
		return nil, err
	}

	uc.notifier.Notify(fmt.Sprintf(
		"🔄 문의 상태 변경\n\n📌 문의 #%d\n📝 제목: %s\n⏩ %s → %s\n👤 처리자: %s",
		inq.ID(), inq.Title(), result.From, result.To, cmd.Username))

	return &ProcessInquiryResult{
		InquiryID: result.InquiryID,
		From:      result.From.String(),
		To:        result.To.String(),
	}, nil
}
