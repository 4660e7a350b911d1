package usecases

import (
	"context"
	"fmt"
	"time"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/domain/user"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

// Notifier pushes operator alerts; delivery is best-effort.
type Notifier interface {
	Notify(text string) bool
}

type CreateInquiryCommand struct {
	Title    string
	Content  string
	Category string
	AuthorID uint
}

type CreateInquiryResult struct {
	InquiryID uint
	Status    string
	CreatedAt time.Time
}

type CreateInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	logRepo     inquiry.ProcessLogRepository
	userRepo    user.Repository
	notifier    Notifier
	logger      logger.Interface
}

func NewCreateInquiryUseCase(
	inquiryRepo inquiry.Repository,
	logRepo inquiry.ProcessLogRepository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		inquiryRepo: inquiryRepo,
		logRepo:     logRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateInquiryUseCase) Execute(ctx context.Context, cmd CreateInquiryCommand) (*CreateInquiryResult, error) {
	uc.logger.Infow("executing create inquiry use case", "title", cmd.Title, "author_id", cmd.AuthorID)

	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	category := vo.Category(cmd.Category)
	if cmd.Category != "" && !category.IsValid() {
		return nil, errors.NewValidationError("invalid category")
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, err
	}

	newInquiry, err := inquiry.NewInquiry(cmd.Title, cmd.Content, category, author.ID(), author.Name(), author.SiteTag())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiryRepo.Save(ctx, newInquiry); err != nil {
		uc.logger.Errorw("failed to save inquiry", "error", err)
		return nil, err
	}

	entry, err := inquiry.NewProcessLog(newInquiry.ID(), vo.StatusRegistered, "", author.Name())
	if err != nil {
		return nil, err
	}
	if err := uc.logRepo.Append(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record registration log", "inquiry_id", newInquiry.ID(), "error", err)
	}

	uc.notifier.Notify(fmt.Sprintf(
		"📝 새 문의 등록\n\n📌 문의 #%d\n📂 카테고리: %s\n📝 제목: %s\n👤 작성자: %s",
		newInquiry.ID(), newInquiry.Category(), newInquiry.Title(), author.Name()))

	uc.logger.Infow("inquiry created", "inquiry_id", newInquiry.ID())

	return &CreateInquiryResult{
		InquiryID: newInquiry.ID(),
		Status:    newInquiry.Status().String(),
		CreatedAt: newInquiry.CreatedAt(),
	}, nil
}
