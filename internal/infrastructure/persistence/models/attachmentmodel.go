package models

type AttachmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	InquiryID  uint   `gorm:"not null;index"`
	FileName   string `gorm:"size:255;not null"`
	StoredPath string `gorm:"size:512;not null"`
	SizeBytes  int64  `gorm:"not null;default:0"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "inquiry_attachments"
}
