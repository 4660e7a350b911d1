package mappers

import (
	"time"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/infrastructure/persistence/models"
)

// InquiryMapper handles the conversion between inquiry domain entities and
// persistence models.
type InquiryMapper interface {
	ToModel(i *inquiry.Inquiry) *models.InquiryModel
	ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error)
	CommentToModel(c *inquiry.Comment) *models.InquiryCommentModel
	CommentToDomain(model *models.InquiryCommentModel) (*inquiry.Comment, error)
	ProcessLogToModel(l *inquiry.ProcessLog) *models.ProcessLogModel
	ProcessLogToDomain(model *models.ProcessLogModel) (*inquiry.ProcessLog, error)
	AttachmentToModel(a *inquiry.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *inquiry.Attachment
}

type InquiryMapperImpl struct{}

func NewInquiryMapper() InquiryMapper {
	return &InquiryMapperImpl{}
}

func (m *InquiryMapperImpl) ToModel(i *inquiry.Inquiry) *models.InquiryModel {
	return &models.InquiryModel{
		ID:             i.ID(),
		Title:          i.Title(),
		Content:        i.Content(),
		Category:       i.Category().String(),
		Status:         i.Status().String(),
		AuthorID:       i.AuthorID(),
		AuthorName:     i.AuthorName(),
		SiteTag:        i.SiteTag(),
		ViewCount:      i.ViewCount(),
		TriageAttempts: i.TriageAttempts(),
		CreatedAt:      i.CreatedAt().UnixMilli(),
		UpdatedAt:      i.UpdatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error) {
	return inquiry.ReconstructInquiry(
		model.ID,
		model.Title,
		model.Content,
		vo.Category(model.Category),
		vo.Status(model.Status),
		model.AuthorID,
		model.AuthorName,
		model.SiteTag,
		model.ViewCount,
		model.TriageAttempts,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *InquiryMapperImpl) CommentToModel(c *inquiry.Comment) *models.InquiryCommentModel {
	return &models.InquiryCommentModel{
		ID:         c.ID(),
		InquiryID:  c.InquiryID(),
		AuthorID:   c.AuthorID(),
		AuthorName: c.AuthorName(),
		Content:    c.Content(),
		IsSystem:   c.IsSystem(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) CommentToDomain(model *models.InquiryCommentModel) (*inquiry.Comment, error) {
	return inquiry.ReconstructComment(
		model.ID,
		model.InquiryID,
		model.AuthorID,
		model.AuthorName,
		model.Content,
		model.IsSystem,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *InquiryMapperImpl) ProcessLogToModel(l *inquiry.ProcessLog) *models.ProcessLogModel {
	return &models.ProcessLogModel{
		ID:        l.ID(),
		InquiryID: l.InquiryID(),
		Step:      l.Step().String(),
		Message:   l.Message(),
		Actor:     l.Actor(),
		CreatedAt: l.CreatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) ProcessLogToDomain(model *models.ProcessLogModel) (*inquiry.ProcessLog, error) {
	return inquiry.ReconstructProcessLog(
		model.ID,
		model.InquiryID,
		vo.Status(model.Step),
		model.Message,
		model.Actor,
		millisToTime(model.CreatedAt),
	)
}

func (m *InquiryMapperImpl) AttachmentToModel(a *inquiry.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         a.ID(),
		InquiryID:  a.InquiryID(),
		FileName:   a.FileName(),
		StoredPath: a.StoredPath(),
		SizeBytes:  a.SizeBytes(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}
}

func (m *InquiryMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *inquiry.Attachment {
	return inquiry.ReconstructAttachment(
		model.ID,
		model.InquiryID,
		model.FileName,
		model.StoredPath,
		model.SizeBytes,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
