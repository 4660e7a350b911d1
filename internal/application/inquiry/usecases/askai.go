package usecases

import (
	"context"
	"strings"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

const aiAssistantName = "AI Assistant"

// Answerer produces a direct answer to a free-form question. Unlike the
// triage pipeline this path is synchronous and skips server diagnostics.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

type AskAICommand struct {
	InquiryID uint
	Question  string
	UserID    uint
	UserRole  string
}

type AskAIUseCase struct {
	inquiryRepo inquiry.Repository
	commentRepo inquiry.CommentRepository
	answerer    Answerer
	logger      logger.Interface
}

func NewAskAIUseCase(
	inquiryRepo inquiry.Repository,
	commentRepo inquiry.CommentRepository,
	answerer Answerer,
	logger logger.Interface,
) *AskAIUseCase {
	return &AskAIUseCase{
		inquiryRepo: inquiryRepo,
		commentRepo: commentRepo,
		answerer:    answerer,
		logger:      logger,
	}
}

// Execute answers the question directly and publishes the reply as an
// "AI Assistant" comment. The inquiry is marked with the legacy answered
// status; this path predates the approval workflow and stays outside it.
func (uc *AskAIUseCase) Execute(ctx context.Context, cmd AskAICommand) (*CommentDTO, error) {
	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	inq, err := uc.inquiryRepo.GetByID(ctx, cmd.InquiryID)
	if err != nil {
		return nil, err
	}
	if !inq.CanBeViewedBy(cmd.UserID, cmd.UserRole) {
		return nil, errors.NewForbiddenError("no access to this inquiry")
	}

	question := strings.TrimSpace(cmd.Question)
	if question == "" {
		question = inq.Content()
	}

	answer, err := uc.answerer.Answer(ctx, question)
	if err != nil {
		uc.logger.Errorw("ai answer failed", "inquiry_id", inq.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate answer")
	}

	comment, err := inquiry.NewSystemComment(inq.ID(), aiAssistantName, answer)
	if err != nil {
		return nil, err
	}
	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save ai answer", "inquiry_id", inq.ID(), "error", err)
		return nil, err
	}

	moved, err := uc.inquiryRepo.UpdateStatusGuarded(ctx, inq.ID(), inq.Status(), vo.StatusAnswered)
	if err != nil {
		uc.logger.Warnw("failed to mark inquiry answered", "inquiry_id", inq.ID(), "error", err)
	} else if !moved {
		uc.logger.Infow("inquiry status changed during answering, left as is", "inquiry_id", inq.ID())
	}

	uc.logger.Infow("ai answer published", "inquiry_id", inq.ID(), "comment_id", comment.ID())
	dto := toCommentDTO(comment)
	return &dto, nil
}
