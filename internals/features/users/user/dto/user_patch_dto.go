package dto

import (
	"strings"

	authHelper "priming_backend/internals/features/users/auth/helper"
	helper "priming_backend/internals/helpers"
)

/* =========================================================
   PATCHES
   Each patch lists the columns it may touch; nil means unchanged.
========================================================= */

type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

func (p UserPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["nombre"] = *p.Name
	}
	if p.Email != nil {
		cols["correo_electronico"] = *p.Email
	}
	if p.PasswordHash != nil {
		cols["contrasena"] = *p.PasswordHash
	}
	return cols
}

type EvaluatorPatch struct {
	Code         *string
	Kind         *string
	DocumentType *string
	Name         *string
}

func (p EvaluatorPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Code != nil {
		cols["codigo"] = *p.Code
	}
	if p.Kind != nil {
		cols["tipo"] = *p.Kind
	}
	if p.DocumentType != nil {
		cols["tipo_documento"] = *p.DocumentType
	}
	if p.Name != nil {
		cols["nombre"] = *p.Name
	}
	return cols
}

type ChildPatch struct {
	Age    *int
	Grade  *int
	School *string
	Shift  *string
}

func (p ChildPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Age != nil {
		cols["edad"] = *p.Age
	}
	if p.Grade != nil {
		cols["grado"] = *p.Grade
	}
	if p.School != nil {
		cols["colegio"] = *p.School
	}
	if p.Shift != nil {
		cols["jornada"] = *p.Shift
	}
	return cols
}

/* =========================================================
   REQUESTS
========================================================= */

// RoleFieldsPatch carries optional role-profile fields. Which half applies
// is decided by the target user's role, not by the client.
type RoleFieldsPatch struct {
	Code         *string `json:"codigo" validate:"omitempty,min=1"`
	Kind         *string `json:"tipo" validate:"omitempty,oneof=Estudiante Docente Egresado"`
	DocumentType *string `json:"tipo_documento" validate:"omitempty,min=1"`

	Age    *int    `json:"edad" validate:"omitempty,min=5,max=7"`
	Grade  *int    `json:"grado" validate:"omitempty,min=-1,max=2"`
	School *string `json:"colegio" validate:"omitempty,min=1"`
	Shift  *string `json:"jornada" validate:"omitempty,oneof=mañana tarde Continua"`
}

func (r *RoleFieldsPatch) normalize() {
	trimPtr(r.Code)
	trimPtr(r.Kind)
	trimPtr(r.DocumentType)
	trimPtr(r.School)
	trimPtr(r.Shift)
}

func (r RoleFieldsPatch) EvaluatorPatch() EvaluatorPatch {
	return EvaluatorPatch{Code: r.Code, Kind: r.Kind, DocumentType: r.DocumentType}
}

func (r RoleFieldsPatch) ChildPatch() ChildPatch {
	return ChildPatch{Age: r.Age, Grade: r.Grade, School: r.School, Shift: r.Shift}
}

// UpdateProfileRequest: PUT /api/perfil. nombre and correo_electronico are required.
type UpdateProfileRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"correo_electronico" validate:"required"`
	RoleFieldsPatch
}

func (r *UpdateProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.normalize()
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Email != "" && !authHelper.ValidEmail(r.Email) {
		return helper.InvalidEmail()
	}
	if details := helper.ValidateStruct(r, FieldMessages); len(details) > 0 {
		return helper.MissingData("El nombre y correo electrónico son obligatorios", details...)
	}
	return nil
}

func (r UpdateProfileRequest) UserPatch() UserPatch {
	return UserPatch{Name: &r.Name, Email: &r.Email}
}

// AdminUpdateUserRequest: PUT /api/users/:id. Every field is optional;
// contrasena resets the password.
type AdminUpdateUserRequest struct {
	Name     *string `json:"nombre" validate:"omitempty,min=1"`
	Email    *string `json:"correo_electronico"`
	Password *string `json:"contrasena"`
	RoleFieldsPatch
}

func (r *AdminUpdateUserRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Email)
	r.normalize()
}

func (r *AdminUpdateUserRequest) Validate() error {
	if r.Email != nil && !authHelper.ValidEmail(*r.Email) {
		return helper.InvalidEmail()
	}
	if r.Password != nil && !authHelper.ValidPassword(*r.Password) {
		return helper.InvalidPassword()
	}
	if details := helper.ValidateStruct(r, FieldMessages); len(details) > 0 {
		return helper.MissingData("Datos incompletos o inválidos", details...)
	}
	return nil
}

// ChangePasswordRequest: PUT /api/cambiar-password and the evaluator's
// password reset for an assigned child.
type ChangePasswordRequest struct {
	Password string `json:"contrasena"`
}

func (r ChangePasswordRequest) Validate() error {
	if !authHelper.ValidPassword(r.Password) {
		return helper.InvalidPassword()
	}
	return nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
