package inquiry

import (
	"fmt"
	"time"
)

// Comment is a reply on an inquiry. Comments posted by the automated
// pipeline carry no author ID; they are attributed to an admin alias name
// instead.
type Comment struct {
	id         uint
	inquiryID  uint
	authorID   uint
	authorName string
	content    string
	isSystem   bool
	createdAt  time.Time
	updatedAt  time.Time
}

const maxCommentLength = 5000

func NewComment(inquiryID, authorID uint, authorName, content string) (*Comment, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}

	now := time.Now()
	return &Comment{
		inquiryID:  inquiryID,
		authorID:   authorID,
		authorName: authorName,
		content:    content,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewSystemComment creates a comment written by the pipeline under the given
// alias. System comments have no length cap; analysis reports can run long.
func NewSystemComment(inquiryID uint, alias, content string) (*Comment, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if len(alias) == 0 {
		return nil, fmt.Errorf("alias is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}

	now := time.Now()
	return &Comment{
		inquiryID:  inquiryID,
		authorName: alias,
		content:    content,
		isSystem:   true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(
	id, inquiryID, authorID uint,
	authorName, content string,
	isSystem bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}

	return &Comment{
		id:         id,
		inquiryID:  inquiryID,
		authorID:   authorID,
		authorName: authorName,
		content:    content,
		isSystem:   isSystem,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) InquiryID() uint {
	return c.inquiryID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) IsSystem() bool {
	return c.isSystem
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if !c.isSystem && len(content) > maxCommentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}

	c.content = content
	c.updatedAt = time.Now()
	return nil
}

func (c *Comment) CanBeModifiedBy(userID uint, role string) bool {
	if role == "admin" {
		return true
	}
	return !c.isSystem && c.authorID == userID
}
