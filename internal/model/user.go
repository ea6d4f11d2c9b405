package model

import "time"

// User is the registry record for one account. Points is the lifetime
// counter and never decreases; TreeBank is the spendable balance and is
// tracked independently from account creation (never derived from Points).
type User struct {
	Username     string    `gorm:"column:username;primaryKey;type:varchar(120) COLLATE utf8mb4_bin" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;size:120;not null" json:"-"`
	Points       int       `gorm:"column:points;not null;default:0" json:"points"`
	TreeBank     int       `gorm:"column:tree_bank;not null;default:0" json:"treeBank"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`

	Trees          []Tree          `gorm:"foreignKey:Username;references:Username" json:"trees"`
	CategoryCounts []CategoryCount `gorm:"foreignKey:Username;references:Username" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// RecycledByCategory flattens the counter rows into the fixed category map.
// Every known category is present, unseen ones at zero.
func (u *User) RecycledByCategory() map[Category]int {
	out := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		out[c] = 0
	}
	for _, cc := range u.CategoryCounts {
		if cat, ok := ParseCategory(cc.Category); ok {
			out[cat] = cc.Count
		}
	}
	return out
}

// AddReward returns nothing but mutates the receiver value in place; callers
// hold their own copy of the record and persist it as a whole afterwards.
// Category tallies count submissions, not point value, so the counter always
// moves by one even when amount is zero (waste).
func (u *User) AddReward(amount int, category Category) {
	if amount > 0 {
		u.Points += amount
		u.TreeBank += amount
	}
	for i := range u.CategoryCounts {
		if u.CategoryCounts[i].Category == string(category) {
			u.CategoryCounts[i].Count++
			return
		}
	}
	u.CategoryCounts = append(u.CategoryCounts, CategoryCount{
		Username: u.Username,
		Category: string(category),
		Count:    1,
	})
}

// TreeByID returns a pointer into u.Trees, or nil.
func (u *User) TreeByID(id int) *Tree {
	for i := range u.Trees {
		if u.Trees[i].TreeID == id {
			return &u.Trees[i]
		}
	}
	return nil
}

// AllTreesFullyGrown reports whether every tree is at the final stage.
// An empty forest does not count as fully grown.
func (u *User) AllTreesFullyGrown() bool {
	if len(u.Trees) == 0 {
		return false
	}
	for _, t := range u.Trees {
		if t.DisplayStage < MaxDisplayStage {
			return false
		}
	}
	return true
}

// CategoryCount is one per-user per-category submission tally row.
type CategoryCount struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"column:username;type:varchar(120) COLLATE utf8mb4_bin;not null;uniqueIndex:uk_category_counts_user_category"`
	Category string `gorm:"column:category;size:40;not null;uniqueIndex:uk_category_counts_user_category"`
	Count    int    `gorm:"column:count;not null;default:0"`
}

func (CategoryCount) TableName() string {
	return "category_counts"
}
