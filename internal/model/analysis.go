package model

// Analysis is the transient result of classifying one trash photo. It is
// returned to the client and cached by fingerprint, never persisted.
type Analysis struct {
	IsValidTrashImage bool     `json:"isValidTrashImage"`
	Name              string   `json:"name"`
	Materials         []string `json:"materials"`
	RecyclingMethod   string   `json:"recyclingMethod"`
	ReuseMethod       string   `json:"reuseMethod"`
	Category          Category `json:"category"`
	Error             string   `json:"error,omitempty"`
}

// Session is the persisted current-session pointer: at most one row,
// holding the username whose session should be restored on restart.
type Session struct {
	ID        uint64 `gorm:"primaryKey" json:"-"`
	Username  string `gorm:"column:username;type:varchar(120) COLLATE utf8mb4_bin;not null" json:"username"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}
