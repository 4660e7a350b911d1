package models

type InquiryModel struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"size:200;not null"`
	Content        string `gorm:"type:text;not null"`
	Category       string `gorm:"size:50;index"`
	Status         string `gorm:"size:30;not null;index"`
	AuthorID       uint   `gorm:"not null;index"`
	AuthorName     string `gorm:"size:100"`
	SiteTag        string `gorm:"size:100;index"`
	ViewCount      int    `gorm:"not null;default:0"`
	TriageAttempts int    `gorm:"not null;default:0"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (InquiryModel) TableName() string {
	return "inquiries"
}

type ProcessLogModel struct {
	ID        uint   `gorm:"primaryKey"`
	InquiryID uint   `gorm:"not null;index"`
	Step      string `gorm:"size:30;not null;index"`
	Message   string `gorm:"type:text"`
	Actor     string `gorm:"size:100"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ProcessLogModel) TableName() string {
	return "inquiry_process_logs"
}

type InquiryCommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	InquiryID  uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"index"`
	AuthorName string `gorm:"size:100"`
	Content    string `gorm:"type:text;not null"`
	IsSystem   bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InquiryCommentModel) TableName() string {
	return "inquiry_comments"
}
