package model

import "time"

// MaxDisplayStage is the final visual growth stage of a tree.
const MaxDisplayStage = 4

// PlantingAreaHalf bounds the square planting area: x and z are clamped to
// [-PlantingAreaHalf, PlantingAreaHalf].
const PlantingAreaHalf = 6.0

// DefaultPalette is assigned to the tree every new account starts with.
const DefaultPalette = "sakura"

// Palettes is the fixed set of flower palette identifiers a tree can carry.
var Palettes = []string{
	"sakura", "blush", "lavender", "peach", "ivory", "dustyrose", "sage", "copper",
}

// ValidPalette reports whether id is one of the known palettes.
func ValidPalette(id string) bool {
	for _, p := range Palettes {
		if p == id {
			return true
		}
	}
	return false
}

// ClampPosition pulls a planting coordinate into the bounded area.
func ClampPosition(v float64) float64 {
	if v < -PlantingAreaHalf {
		return -PlantingAreaHalf
	}
	if v > PlantingAreaHalf {
		return PlantingAreaHalf
	}
	return v
}

// Tree is one planted tree instance. TreeID is sequential within a user.
type Tree struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	Username     string    `gorm:"column:username;type:varchar(120) COLLATE utf8mb4_bin;not null;uniqueIndex:uk_trees_user_tree" json:"-"`
	TreeID       int       `gorm:"column:tree_id;not null;uniqueIndex:uk_trees_user_tree" json:"id"`
	X            float64   `gorm:"column:x;not null;default:0" json:"x"`
	Z            float64   `gorm:"column:z;not null;default:0" json:"z"`
	PaletteID    string    `gorm:"column:palette_id;size:40;not null" json:"paletteId"`
	DisplayStage int       `gorm:"column:display_stage;not null;default:1" json:"displayStage"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Tree) TableName() string {
	return "trees"
}

// DefaultTree is the single tree a freshly created account owns.
func DefaultTree(username string) Tree {
	return Tree{
		Username:     username,
		TreeID:       0,
		X:            0,
		Z:            0,
		PaletteID:    DefaultPalette,
		DisplayStage: 1,
	}
}
