package usecases

import (
	"context"

	"inqboard/internal/domain/inquiry"
	"inqboard/internal/domain/user"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type AddCommentCommand struct {
	InquiryID uint
	Content   string
	UserID    uint
	UserRole  string
}

type AddCommentUseCase struct {
	inquiryRepo inquiry.Repository
	commentRepo inquiry.CommentRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	inquiryRepo inquiry.Repository,
	commentRepo inquiry.CommentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		inquiryRepo: inquiryRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error) {
	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	inq, err := uc.inquiryRepo.GetByID(ctx, cmd.InquiryID)
	if err != nil {
		return nil, err
	}
	if !inq.CanBeViewedBy(cmd.UserID, cmd.UserRole) {
		return nil, errors.NewForbiddenError("no access to this inquiry")
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	comment, err := inquiry.NewComment(inq.ID(), author.ID(), author.Name(), cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "inquiry_id", inq.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "inquiry_id", inq.ID(), "comment_id", comment.ID())
	dto := toCommentDTO(comment)
	return &dto, nil
}
