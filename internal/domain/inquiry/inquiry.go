package inquiry

import (
	"fmt"
	"time"

	vo "inqboard/internal/domain/inquiry/valueobjects"
)

// Inquiry is the board aggregate root. Each inquiry moves through the
// automated workflow tracked by its status; the process log records every
// step it has taken.
type Inquiry struct {
	id             uint
	title          string
	content        string
	category       vo.Category
	status         vo.Status
	authorID       uint
	authorName     string
	siteTag        string
	viewCount      int
	triageAttempts int
	createdAt      time.Time
	updatedAt      time.Time
}

const (
	maxTitleLength   = 200
	maxContentLength = 10000
)

func NewInquiry(title, content string, category vo.Category, authorID uint, authorName, siteTag string) (*Inquiry, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}
	if category != "" && !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := time.Now()
	return &Inquiry{
		title:      title,
		content:    content,
		category:   category,
		status:     vo.StatusRegistered,
		authorID:   authorID,
		authorName: authorName,
		siteTag:    siteTag,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructInquiry(
	id uint,
	title, content string,
	category vo.Category,
	status vo.Status,
	authorID uint,
	authorName, siteTag string,
	viewCount, triageAttempts int,
	createdAt, updatedAt time.Time,
) (*Inquiry, error) {
	if id == 0 {
		return nil, fmt.Errorf("inquiry ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if category != "" && !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	return &Inquiry{
		id:             id,
		title:          title,
		content:        content,
		category:       category,
		status:         status,
		authorID:       authorID,
		authorName:     authorName,
		siteTag:        siteTag,
		viewCount:      viewCount,
		triageAttempts: triageAttempts,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (i *Inquiry) ID() uint {
	return i.id
}

func (i *Inquiry) Title() string {
	return i.title
}

func (i *Inquiry) Content() string {
	return i.content
}

func (i *Inquiry) Category() vo.Category {
	return i.category
}

// HasCategory reports whether a category has been assigned. New inquiries may
// leave it empty for the analysis step to fill in.
func (i *Inquiry) HasCategory() bool {
	return i.category != ""
}

func (i *Inquiry) Status() vo.Status {
	return i.status
}

func (i *Inquiry) AuthorID() uint {
	return i.authorID
}

func (i *Inquiry) AuthorName() string {
	return i.authorName
}

// SiteTag is the site name copied from the author at creation. It ties the
// inquiry to a registered server for diagnostics.
func (i *Inquiry) SiteTag() string {
	return i.siteTag
}

func (i *Inquiry) ViewCount() int {
	return i.viewCount
}

func (i *Inquiry) TriageAttempts() int {
	return i.triageAttempts
}

func (i *Inquiry) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Inquiry) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Inquiry) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("inquiry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("inquiry ID cannot be zero")
	}
	i.id = id
	return nil
}

// ChangeStatus moves the inquiry to newStatus if the workflow allows the
// edge. Same-status changes are a no-op.
func (i *Inquiry) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if i.status == newStatus {
		return nil
	}
	if !i.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", i.status, newStatus)
	}

	i.status = newStatus
	i.updatedAt = time.Now()
	return nil
}

// AssignCategory sets the category decided by the analysis step.
func (i *Inquiry) AssignCategory(category vo.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	i.category = category
	i.updatedAt = time.Now()
	return nil
}

func (i *Inquiry) UpdateContent(title, content string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	i.title = title
	i.content = content
	i.updatedAt = time.Now()
	return nil
}

func (i *Inquiry) CanBeViewedBy(userID uint, role string) bool {
	if role == "admin" {
		return true
	}
	return i.authorID == userID
}

func (i *Inquiry) CanBeModifiedBy(userID uint, role string) bool {
	if role == "admin" {
		return true
	}
	return i.authorID == userID && i.status.IsRegistered()
}
