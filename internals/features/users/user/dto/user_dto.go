package dto

import (
	"time"

	"priming_backend/internals/features/users/user/model"
)

/* =========================================================
   RESPONSE
========================================================= */

// UserResponse is a usuarios row without the password hash.
type UserResponse struct {
	ID           int        `json:"id"`
	Name         string     `json:"nombre"`
	Email        string     `json:"correo_electronico"`
	Role         string     `json:"tipo_usuario"`
	RegisteredAt *time.Time `json:"fecha_registro,omitempty"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	out := UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if !u.RegisteredAt.IsZero() {
		t := u.RegisteredAt
		out.RegisteredAt = &t
	}
	return out
}

func ToUserResponses(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

// EvaluatorData is the evaluator arm of UserProfile.
type EvaluatorData struct {
	EvaluatorID  int    `json:"evaluador_id"`
	Code         string `json:"codigo"`
	Kind         string `json:"tipo"`
	DocumentType string `json:"tipo_documento"`
}

// ChildData is the child arm of UserProfile.
type ChildData struct {
	ChildID int    `json:"nino_id"`
	Age     int    `json:"edad"`
	Grade   int    `json:"grado"`
	School  string `json:"colegio"`
	Shift   string `json:"jornada"`
}

// UserProfile is a user plus the data of its role. At most one arm is set,
// chosen by Role; the arms are embedded so the JSON stays flat.
type UserProfile struct {
	UserResponse
	*EvaluatorData
	*ChildData
}

// NewUserProfile picks the arm from u.Role. Profiles that do not match the
// role are ignored.
func NewUserProfile(u *model.UserModel, ev *model.EvaluatorModel, child *model.ChildModel) UserProfile {
	p := UserProfile{UserResponse: ToUserResponse(u)}
	switch {
	case u.Role == roleEvaluator && ev != nil:
		p.EvaluatorData = &EvaluatorData{
			EvaluatorID:  ev.ID,
			Code:         ev.Code,
			Kind:         ev.Kind,
			DocumentType: ev.DocumentType,
		}
	case u.Role == roleChild && child != nil:
		p.ChildData = &ChildData{
			ChildID: child.ID,
			Age:     child.Age,
			Grade:   child.Grade,
			School:  child.School,
			Shift:   child.Shift,
		}
	}
	return p
}
