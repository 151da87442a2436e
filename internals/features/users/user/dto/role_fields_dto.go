package dto

import (
	"strings"

	"priming_backend/internals/constants"
)

const (
	roleEvaluator = constants.RoleEvaluator
	roleChild     = constants.RoleChild
)

// EvaluatorFields are the evaluadores columns a client sends on register.
type EvaluatorFields struct {
	Code         string `json:"codigo" validate:"required"`
	Kind         string `json:"tipo" validate:"required,oneof=Estudiante Docente Egresado"`
	DocumentType string `json:"tipo_documento" validate:"required"`
}

func (f *EvaluatorFields) Normalize() {
	f.Code = strings.TrimSpace(f.Code)
	f.Kind = strings.TrimSpace(f.Kind)
	f.DocumentType = strings.TrimSpace(f.DocumentType)
}

// ChildFields are the ninos columns a client sends on register or assignment.
// Age and grade are pointers so that grade 0 counts as present.
type ChildFields struct {
	Age    *int   `json:"edad" validate:"required,min=5,max=7"`
	Grade  *int   `json:"grado" validate:"required,min=-1,max=2"`
	School string `json:"colegio" validate:"required"`
	Shift  string `json:"jornada" validate:"required,oneof=mañana tarde Continua"`
}

func (f *ChildFields) Normalize() {
	f.School = strings.TrimSpace(f.School)
	f.Shift = strings.TrimSpace(f.Shift)
}

// FieldMessages: one message per json field, shared by every validator
// touching users and role profiles.
var FieldMessages = map[string]string{
	"nombre":             "El nombre es obligatorio",
	"correo_electronico": "El correo electrónico es obligatorio",
	"contrasena":         "La contraseña es obligatoria",
	"tipo_usuario":       "El tipo de usuario debe ser admin, evaluador o niño",
	"codigo":             "El código es obligatorio para evaluadores",
	"tipo":               "El tipo de evaluador debe ser Estudiante, Docente o Egresado",
	"tipo_documento":     "El tipo de documento es obligatorio para evaluadores",
	"edad":               "La edad debe estar entre 5 y 7 años",
	"grado":              "El grado debe estar entre -1 y 2",
	"colegio":            "El colegio es obligatorio",
	"jornada":            "La jornada debe ser mañana, tarde o Continua",
}
