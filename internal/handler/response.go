package handler

import (
	"github.com/ecosnap/ecosnap-backend/internal/model"
	"github.com/go-playground/validator/v10"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// userResponse is the client-facing view of a user record.
type userResponse struct {
	Username           string         `json:"username"`
	Points             int            `json:"points"`
	TreeBank           int            `json:"treeBank"`
	Stage              model.Stage    `json:"stage"`
	RecycledByCategory map[string]int `json:"recycledByCategory"`
	Trees              []model.Tree   `json:"trees"`
}

func newUserResponse(u *model.User) userResponse {
	byCat := make(map[string]int, len(model.Categories))
	for cat, n := range u.RecycledByCategory() {
		byCat[string(cat)] = n
	}
	return userResponse{
		Username:           u.Username,
		Points:             u.Points,
		TreeBank:           u.TreeBank,
		Stage:              model.StageForPoints(u.Points),
		RecycledByCategory: byCat,
		Trees:              u.Trees,
	}
}
