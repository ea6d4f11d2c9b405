package model

import "time"

// UploadHash is one rewarded-image fingerprint in a user's duplicate ledger.
// Rows are insertion-ordered by ID; when a user's ledger exceeds its cap the
// oldest rows are evicted first.
type UploadHash struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Username    string    `gorm:"column:username;type:varchar(120) COLLATE utf8mb4_bin;not null;uniqueIndex:uk_upload_hashes_user_fp"`
	Fingerprint string    `gorm:"column:fingerprint;size:128;not null;uniqueIndex:uk_upload_hashes_user_fp"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (UploadHash) TableName() string {
	return "upload_hashes"
}
