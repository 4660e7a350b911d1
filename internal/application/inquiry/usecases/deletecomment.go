package usecases

import (
	"context"

	"inqboard/internal/domain/inquiry"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
	UserID    uint
	UserRole  string
}

type DeleteCommentUseCase struct {
	commentRepo inquiry.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo inquiry.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}

	if !comment.CanBeModifiedBy(cmd.UserID, cmd.UserRole) {
		return errors.NewForbiddenError("no permission to delete this comment")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return err
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID, "by", cmd.UserID)
	return nil
}
