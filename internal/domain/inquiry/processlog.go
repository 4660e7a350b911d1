package inquiry

import (
	"fmt"
	"strings"
	"time"

	vo "inqboard/internal/domain/inquiry/valueobjects"
)

// FeedbackMarker prefixes the log message written when an admin sends an
// inquiry back for re-analysis. The analysis step looks for the latest
// marked entry to feed the admin's note back into the prompt.
const FeedbackMarker = "[재확인 요청]"

// ProcessLog is one entry in an inquiry's workflow history. Entries are
// append-only; the single exception is the pipeline deleting the log of a
// step it is reverting.
type ProcessLog struct {
	id        uint
	inquiryID uint
	step      vo.Status
	message   string
	actor     string
	createdAt time.Time
}

func NewProcessLog(inquiryID uint, step vo.Status, message, actor string) (*ProcessLog, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if !step.IsValid() {
		return nil, fmt.Errorf("invalid step: %s", step)
	}
	if message == "" {
		message = step.DefaultMessage()
	}

	return &ProcessLog{
		inquiryID: inquiryID,
		step:      step,
		message:   message,
		actor:     actor,
		createdAt: time.Now(),
	}, nil
}

// NewFeedbackLog records an admin's re-analysis request. The note is stored
// with the feedback marker so later pipeline runs can find it.
func NewFeedbackLog(inquiryID uint, note, actor string) (*ProcessLog, error) {
	message := FeedbackMarker
	if note != "" {
		message = FeedbackMarker + " " + note
	}
	return NewProcessLog(inquiryID, vo.StatusRegistered, message, actor)
}

func ReconstructProcessLog(id, inquiryID uint, step vo.Status, message, actor string, createdAt time.Time) (*ProcessLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("process log ID cannot be zero")
	}
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}

	return &ProcessLog{
		id:        id,
		inquiryID: inquiryID,
		step:      step,
		message:   message,
		actor:     actor,
		createdAt: createdAt,
	}, nil
}

func (l *ProcessLog) ID() uint {
	return l.id
}

func (l *ProcessLog) InquiryID() uint {
	return l.inquiryID
}

func (l *ProcessLog) Step() vo.Status {
	return l.step
}

func (l *ProcessLog) Message() string {
	return l.message
}

func (l *ProcessLog) Actor() string {
	return l.actor
}

func (l *ProcessLog) CreatedAt() time.Time {
	return l.createdAt
}

func (l *ProcessLog) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("process log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("process log ID cannot be zero")
	}
	l.id = id
	return nil
}

// IsFeedback reports whether this entry is an admin re-analysis request.
func (l *ProcessLog) IsFeedback() bool {
	return strings.HasPrefix(l.message, FeedbackMarker)
}

// FeedbackNote returns the admin's note with the marker stripped.
func (l *ProcessLog) FeedbackNote() string {
	return strings.TrimSpace(strings.TrimPrefix(l.message, FeedbackMarker))
}
