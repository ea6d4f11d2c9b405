package model

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"plastics", CategoryPlastics},
		{"Plastic (PET)", CategoryPlastics},
		{"paper and cardboard", CategoryPaper},
		{"Cardboard box", CategoryPaper},
		{"drink carton", CategoryPaper},
		{"metal", CategoryMetal},
		{"Aluminium foil", CategoryMetal},
		{"aluminum can", CategoryMetal},
		{"steel", CategoryMetal},
		{"glass", CategoryGlass},
		{"Glass jar", CategoryGlass},
		{"waste", CategoryWaste},
		{"organic matter", CategoryWaste},
		{"", CategoryWaste},
		{"something the model made up", CategoryWaste},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q)=%s want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if _, ok := ParseCategory("plastics"); !ok {
		t.Error("plastics must parse")
	}
	if _, ok := ParseCategory("Plastics"); ok {
		t.Error("parse is exact, not fuzzy")
	}
	if _, ok := ParseCategory("cardboard"); ok {
		t.Error("cardboard alone is not a category key")
	}
}
