package model

import "strings"

// Category is one of the fixed classification buckets a submission lands in.
type Category string

const (
	CategoryPlastics Category = "plastics"
	CategoryPaper    Category = "paper and cardboard"
	CategoryMetal    Category = "metal"
	CategoryGlass    Category = "glass"
	CategoryWaste    Category = "waste"
)

// Categories lists every bucket in display order.
var Categories = []Category{
	CategoryPlastics,
	CategoryPaper,
	CategoryMetal,
	CategoryGlass,
	CategoryWaste,
}

// ParseCategory matches an exact category key.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// NormalizeCategory maps free-text model output into the fixed set by
// keyword matching. It is total: anything unrecognized is waste.
func NormalizeCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := ParseCategory(s); ok {
		return c
	}
	switch {
	case strings.Contains(s, "plastic"), strings.Contains(s, "pet"), strings.Contains(s, "polymer"):
		return CategoryPlastics
	case strings.Contains(s, "paper"), strings.Contains(s, "cardboard"), strings.Contains(s, "carton"):
		return CategoryPaper
	case strings.Contains(s, "metal"), strings.Contains(s, "aluminium"), strings.Contains(s, "aluminum"),
		strings.Contains(s, "steel"), strings.Contains(s, "tin can"):
		return CategoryMetal
	case strings.Contains(s, "glass"):
		return CategoryGlass
	default:
		return CategoryWaste
	}
}
