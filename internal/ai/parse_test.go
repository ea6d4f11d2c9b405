package ai

import (
	"testing"

	"github.com/ecosnap/ecosnap-backend/internal/model"
)

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, a *model.Analysis)
	}{
		{
			name:  "full result",
			input: `{"isValidTrashImage":true,"name":"Plastic Bottle","materials":["Plastic (PET)"],"recyclingMethod":"rinse and bin","reuseMethod":"bird feeder","category":"plastics"}`,
			check: func(t *testing.T, a *model.Analysis) {
				if !a.IsValidTrashImage || a.Name != "Plastic Bottle" || a.Category != model.CategoryPlastics {
					t.Fatalf("unexpected result: %+v", a)
				}
			},
		},
		{
			name:  "json wrapped in prose",
			input: "Here is the analysis:\n```json\n{\"name\":\"Glass Jar\",\"category\":\"glass\"}\n```",
			check: func(t *testing.T, a *model.Analysis) {
				if a.Name != "Glass Jar" || a.Category != model.CategoryGlass {
					t.Fatalf("unexpected result: %+v", a)
				}
			},
		},
		{
			name:  "missing fields get fallbacks",
			input: `{}`,
			check: func(t *testing.T, a *model.Analysis) {
				if a.Name != "Unknown" {
					t.Errorf("name=%q want Unknown", a.Name)
				}
				if a.RecyclingMethod == "" || a.ReuseMethod == "" {
					t.Error("guidance fields must have fallbacks")
				}
				if a.Category != model.CategoryWaste {
					t.Errorf("category=%s want waste", a.Category)
				}
			},
		},
		{
			name:  "materials as bare string",
			input: `{"name":"Can","materials":"Aluminium","category":"metal"}`,
			check: func(t *testing.T, a *model.Analysis) {
				if len(a.Materials) != 1 || a.Materials[0] != "Aluminium" {
					t.Fatalf("materials=%v", a.Materials)
				}
			},
		},
		{
			name:  "rejection",
			input: `{"isValidTrashImage":false,"error":"not a single trash item"}`,
			check: func(t *testing.T, a *model.Analysis) {
				if a.IsValidTrashImage {
					t.Fatal("expected rejection")
				}
				if a.Error == "" {
					t.Error("rejection should carry the reason")
				}
			},
		},
		{
			name:  "fuzzy category",
			input: `{"name":"Milk Carton","category":"Paper/Cardboard packaging"}`,
			check: func(t *testing.T, a *model.Analysis) {
				if a.Category != model.CategoryPaper {
					t.Errorf("category=%s want paper and cardboard", a.Category)
				}
			},
		},
		{
			name:    "no json",
			input:   "I cannot analyze this image.",
			wantErr: true,
		},
		{
			name:    "broken json",
			input:   `{"name": "Bottle"`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnalysis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr {
				tt.check(t, got)
			}
		})
	}
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"Error 429: Resource has been exhausted", true},
		{"Quota exceeded for quota metric", true},
		{"rate limit reached", true},
		{"RESOURCE_EXHAUSTED: too many requests", true},
		{"invalid API key", false},
		{"context deadline exceeded", false},
	}
	for _, tt := range tests {
		if got := isQuotaError(errMsg(tt.msg)); got != tt.want {
			t.Errorf("isQuotaError(%q)=%v want %v", tt.msg, got, tt.want)
		}
	}
}

type errMsg string

func (e errMsg) Error() string { return string(e) }
