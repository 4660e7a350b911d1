package inquiry

import (
	"fmt"
	"time"
)

// Attachment is a file uploaded with an inquiry. The stored path points into
// the upload directory; the row and the file are removed together when the
// inquiry is deleted.
type Attachment struct {
	id         uint
	inquiryID  uint
	fileName   string
	storedPath string
	sizeBytes  int64
	createdAt  time.Time
}

func NewAttachment(inquiryID uint, fileName, storedPath string, sizeBytes int64) (*Attachment, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if storedPath == "" {
		return nil, fmt.Errorf("stored path is required")
	}
	return &Attachment{
		inquiryID:  inquiryID,
		fileName:   fileName,
		storedPath: storedPath,
		sizeBytes:  sizeBytes,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	inquiryID uint,
	fileName string,
	storedPath string,
	sizeBytes int64,
	createdAt time.Time,
) *Attachment {
	return &Attachment{
		id:         id,
		inquiryID:  inquiryID,
		fileName:   fileName,
		storedPath: storedPath,
		sizeBytes:  sizeBytes,
		createdAt:  createdAt,
	}
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) InquiryID() uint      { return a.inquiryID }
func (a *Attachment) FileName() string     { return a.fileName }
func (a *Attachment) StoredPath() string   { return a.storedPath }
func (a *Attachment) SizeBytes() int64     { return a.sizeBytes }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
