package inquiry

import (
	"context"

	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, inquiry *Inquiry) error
	Update(ctx context.Context, inquiry *Inquiry) error
	Delete(ctx context.Context, inquiryID uint) error
	GetByID(ctx context.Context, inquiryID uint) (*Inquiry, error)
	List(ctx context.Context, filter Filter) ([]*Inquiry, int64, error)

	// ListOldestByStatus returns up to limit inquiries in the given status,
	// oldest first. Inquiries whose triage attempts reached maxAttempts are
	// excluded; maxAttempts <= 0 disables the cap.
	ListOldestByStatus(ctx context.Context, status vo.Status, limit, maxAttempts int) ([]*Inquiry, error)

	// UpdateStatusGuarded moves an inquiry from expected to next in a single
	// guarded statement. It returns false when the row was no longer in the
	// expected status, without error.
	UpdateStatusGuarded(ctx context.Context, inquiryID uint, expected, next vo.Status) (bool, error)

	UpdateCategory(ctx context.Context, inquiryID uint, category vo.Category) error
	IncrementViewCount(ctx context.Context, inquiryID uint) error
	IncrementTriageAttempts(ctx context.Context, inquiryID uint) error
	ResetTriageAttempts(ctx context.Context, inquiryID uint) error
}

type Filter struct {
	Status   *vo.Status
	Category *vo.Category
	AuthorID *uint
	SiteTag  *string
	Keyword  string

	query.PageFilter
}

type ProcessLogRepository interface {
	Append(ctx context.Context, log *ProcessLog) error
	ListByInquiryID(ctx context.Context, inquiryID uint) ([]*ProcessLog, error)

	// LatestFeedback returns the newest feedback-marked entry for the
	// inquiry, or nil when none exists.
	LatestFeedback(ctx context.Context, inquiryID uint) (*ProcessLog, error)

	// DeleteLatestByStep removes the newest entry recorded for the given
	// step. The pipeline uses it to erase the log of a reverted step.
	DeleteLatestByStep(ctx context.Context, inquiryID uint, step vo.Status) error

	DeleteByInquiryID(ctx context.Context, inquiryID uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, attachmentID uint) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	ListByInquiryID(ctx context.Context, inquiryID uint) ([]*Attachment, error)
	DeleteByInquiryID(ctx context.Context, inquiryID uint) error
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, commentID uint) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	ListByInquiryID(ctx context.Context, inquiryID uint) ([]*Comment, error)
	DeleteByInquiryID(ctx context.Context, inquiryID uint) error
}
