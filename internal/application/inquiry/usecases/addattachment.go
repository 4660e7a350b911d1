package usecases

import (
	"context"
	"time"

	"inqboard/internal/domain/inquiry"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

type AddAttachmentCommand struct {
	InquiryID  uint
	FileName   string
	StoredPath string
	SizeBytes  int64
	UserID     uint
	UserRole   string
}

type AttachmentDTO struct {
	ID        uint      `json:"id"`
	InquiryID uint      `json:"inquiry_id"`
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type AddAttachmentUseCase struct {
	inquiryRepo    inquiry.Repository
	attachmentRepo inquiry.AttachmentRepository
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	inquiryRepo inquiry.Repository,
	attachmentRepo inquiry.AttachmentRepository,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		inquiryRepo:    inquiryRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

// Execute links an already-stored file to an inquiry. The caller is
// responsible for removing the file when this fails.
func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AttachmentDTO, error) {
	inq, err := uc.inquiryRepo.GetByID(ctx, cmd.InquiryID)
	if err != nil {
		return nil, err
	}
	if !inq.CanBeViewedBy(cmd.UserID, cmd.UserRole) {
		return nil, errors.NewForbiddenError("no access to this inquiry")
	}

	attachment, err := inquiry.NewAttachment(inq.ID(), cmd.FileName, cmd.StoredPath, cmd.SizeBytes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "inquiry_id", inq.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment added", "inquiry_id", inq.ID(), "attachment_id", attachment.ID())
	return &AttachmentDTO{
		ID:        attachment.ID(),
		InquiryID: attachment.InquiryID(),
		FileName:  attachment.FileName(),
		SizeBytes: attachment.SizeBytes(),
		CreatedAt: attachment.CreatedAt(),
	}, nil
}
