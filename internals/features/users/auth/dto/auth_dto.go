package dto

import (
	"strings"

	"priming_backend/internals/constants"
	authHelper "priming_backend/internals/features/users/auth/helper"
	userDto "priming_backend/internals/features/users/user/dto"
	helper "priming_backend/internals/helpers"
)

/* =========================================================
   REGISTER
========================================================= */

type RegisterBase struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"correo_electronico"`
	Password string `json:"contrasena"`
	Role     string `json:"tipo_usuario" validate:"required,oneof=admin evaluador niño"`
}

// RegisterRequest is flat on the wire; the role blocks are only checked
// for their own role.
type RegisterRequest struct {
	RegisterBase
	userDto.EvaluatorFields
	userDto.ChildFields
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
	r.EvaluatorFields.Normalize()
	r.ChildFields.Normalize()
}

// Validate: email then password format fail fast, everything else is
// collected into one MISSING_DATA error.
func (r *RegisterRequest) Validate() error {
	if !authHelper.ValidEmail(r.Email) {
		return helper.InvalidEmail()
	}
	if !authHelper.ValidPassword(r.Password) {
		return helper.InvalidPassword()
	}

	details := helper.ValidateStruct(r.RegisterBase, userDto.FieldMessages)
	switch r.Role {
	case constants.RoleEvaluator:
		details = append(details, helper.ValidateStruct(r.EvaluatorFields, userDto.FieldMessages)...)
	case constants.RoleChild:
		details = append(details, helper.ValidateStruct(r.ChildFields, userDto.FieldMessages)...)
	}
	if len(details) > 0 {
		return helper.MissingData("Datos incompletos o inválidos", details...)
	}
	return nil
}

/* =========================================================
   LOGIN
========================================================= */

type LoginRequest struct {
	Email    string `json:"correo_electronico"`
	Password string `json:"contrasena"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Password) == "" {
		return helper.BadRequest(constants.CodeMissingCredentials, "Correo y contraseña son obligatorios")
	}
	return nil
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  userDto.UserResponse `json:"user"`
}

type VerifyTokenResponse struct {
	Valid bool                 `json:"valid"`
	User  userDto.UserResponse `json:"user"`
}
