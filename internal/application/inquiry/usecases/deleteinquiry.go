package usecases

import (
	"context"

	"inqboard/internal/application/workflow"
	"inqboard/internal/domain/inquiry"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

// FileRemover deletes stored attachment files from disk.
type FileRemover interface {
	Remove(storedPath string) error
}

type DeleteInquiryCommand struct {
	InquiryID uint
	UserID    uint
	UserRole  string
}

type DeleteInquiryUseCase struct {
	inquiryRepo    inquiry.Repository
	commentRepo    inquiry.CommentRepository
	logRepo        inquiry.ProcessLogRepository
	attachmentRepo inquiry.AttachmentRepository
	tx             workflow.TxRunner
	files          FileRemover
	logger         logger.Interface
}

func NewDeleteInquiryUseCase(
	inquiryRepo inquiry.Repository,
	commentRepo inquiry.CommentRepository,
	logRepo inquiry.ProcessLogRepository,
	attachmentRepo inquiry.AttachmentRepository,
	tx workflow.TxRunner,
	files FileRemover,
	logger logger.Interface,
) *DeleteInquiryUseCase {
	return &DeleteInquiryUseCase{
		inquiryRepo:    inquiryRepo,
		commentRepo:    commentRepo,
		logRepo:        logRepo,
		attachmentRepo: attachmentRepo,
		tx:             tx,
		files:          files,
		logger:         logger,
	}
}

// Execute removes the inquiry with its comments, process logs and attachment
// rows in one transaction, then deletes the attachment files. File removal is
// best-effort; orphaned files are logged, not fatal.
func (uc *DeleteInquiryUseCase) Execute(ctx context.Context, cmd DeleteInquiryCommand) error {
	if cmd.InquiryID == 0 {
		return errors.NewValidationError("inquiry ID is required")
	}

	inq, err := uc.inquiryRepo.GetByID(ctx, cmd.InquiryID)
	if err != nil {
		return err
	}

	if !inq.CanBeModifiedBy(cmd.UserID, cmd.UserRole) {
		return errors.NewForbiddenError("inquiry can no longer be deleted")
	}

	attachments, err := uc.attachmentRepo.ListByInquiryID(ctx, inq.ID())
	if err != nil {
		return err
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByInquiryID(txCtx, inq.ID()); err != nil {
			return err
		}
		if err := uc.logRepo.DeleteByInquiryID(txCtx, inq.ID()); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByInquiryID(txCtx, inq.ID()); err != nil {
			return err
		}
		return uc.inquiryRepo.Delete(txCtx, inq.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete inquiry", "inquiry_id", inq.ID(), "error", err)
		return err
	}

	for _, a := range attachments {
		if err := uc.files.Remove(a.StoredPath()); err != nil {
			uc.logger.Warnw("failed to remove attachment file",
				"inquiry_id", inq.ID(), "path", a.StoredPath(), "error", err)
		}
	}

	uc.logger.Infow("inquiry deleted", "inquiry_id", inq.ID(), "by", cmd.UserID)
	return nil
}
