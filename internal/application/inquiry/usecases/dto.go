package usecases

import (
	"time"

	"inqboard/internal/domain/inquiry"
)

type InquiryDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	AuthorID    uint            `json:"author_id"`
	AuthorName  string          `json:"author_name"`
	SiteTag     string          `json:"site_tag,omitempty"`
	ViewCount   int             `json:"view_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Comments    []CommentDTO    `json:"comments,omitempty"`
	ProcessLogs []ProcessLogDTO `json:"process_logs,omitempty"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	InquiryID  uint      `json:"inquiry_id"`
	AuthorID   uint      `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	IsSystem   bool      `json:"is_ai_answer"`
	CreatedAt  time.Time `json:"created_at"`
}

type ProcessLogDTO struct {
	ID        uint      `json:"id"`
	InquiryID uint      `json:"inquiry_id"`
	Step      string    `json:"step"`
	Message   string    `json:"message"`
	Actor     string    `json:"actor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toInquiryDTO(i *inquiry.Inquiry) InquiryDTO {
	return InquiryDTO{
		ID:         i.ID(),
		Title:      i.Title(),
		Content:    i.Content(),
		Category:   i.Category().String(),
		Status:     i.Status().String(),
		AuthorID:   i.AuthorID(),
		AuthorName: i.AuthorName(),
		SiteTag:    i.SiteTag(),
		ViewCount:  i.ViewCount(),
		CreatedAt:  i.CreatedAt(),
		UpdatedAt:  i.UpdatedAt(),
	}
}

func toCommentDTO(c *inquiry.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		InquiryID:  c.InquiryID(),
		AuthorID:   c.AuthorID(),
		AuthorName: c.AuthorName(),
		Content:    c.Content(),
		IsSystem:   c.IsSystem(),
		CreatedAt:  c.CreatedAt(),
	}
}

func toProcessLogDTO(l *inquiry.ProcessLog) ProcessLogDTO {
	return ProcessLogDTO{
		ID:        l.ID(),
		InquiryID: l.InquiryID(),
		Step:      l.Step().String(),
		Message:   l.Message(),
		Actor:     l.Actor(),
		CreatedAt: l.CreatedAt(),
	}
}
