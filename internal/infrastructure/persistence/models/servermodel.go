package models

type ServerModel struct {
	ID           uint   `gorm:"primaryKey"`
	SiteName     string `gorm:"uniqueIndex;size:100;not null"`
	DisplayName  string `gorm:"size:100;not null"`
	Host         string `gorm:"size:255;not null"`
	Port         int    `gorm:"not null;default:22"`
	SSHUser      string `gorm:"size:100;not null;default:root"`
	SSHPass      string `gorm:"type:text"`
	DBUser       string `gorm:"size:100"`
	DBPass       string `gorm:"type:text"`
	SiteURL      string `gorm:"size:255"`
	SiteLoginID  string `gorm:"size:100"`
	SiteLoginPW  string `gorm:"type:text"`
	AdminURL     string `gorm:"size:255"`
	AdminLoginID string `gorm:"size:100"`
	AdminLoginPW string `gorm:"type:text"`
	Notes        string `gorm:"type:text"`
	Enabled      bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ServerModel) TableName() string {
	return "servers"
}
