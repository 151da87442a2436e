package dto

import (
	"strings"
	"time"

	progressModel "priming_backend/internals/features/games/progress/model"
	authHelper "priming_backend/internals/features/users/auth/helper"
	userDto "priming_backend/internals/features/users/user/dto"
	helper "priming_backend/internals/helpers"
)

/* =========================================================
   REQUESTS
========================================================= */

// AssignChildRequest: POST /api/evaluador/asignar-nino. Creates the child
// user, its profile and a first survey.
type AssignChildRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"correo_electronico"`
	Password string `json:"contrasena"`
	userDto.ChildFields
}

func (r *AssignChildRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.ChildFields.Normalize()
}

func (r *AssignChildRequest) Validate() error {
	if !authHelper.ValidEmail(r.Email) {
		return helper.InvalidEmail()
	}
	if !authHelper.ValidPassword(r.Password) {
		return helper.InvalidPassword()
	}
	if details := helper.ValidateStruct(r, userDto.FieldMessages); len(details) > 0 {
		return helper.MissingData("Faltan datos obligatorios.", details...)
	}
	return nil
}

// EditChildRequest: PUT /api/evaluador/ninos/:ninoId. Absent fields are kept.
type EditChildRequest struct {
	Name   *string `json:"nombre" validate:"omitempty,min=1"`
	Email  *string `json:"correo_electronico"`
	Age    *int    `json:"edad" validate:"omitempty,min=5,max=7"`
	Grade  *int    `json:"grado" validate:"omitempty,min=-1,max=2"`
	School *string `json:"colegio" validate:"omitempty,min=1"`
	Shift  *string `json:"jornada" validate:"omitempty,oneof=mañana tarde Continua"`
}

func (r *EditChildRequest) Normalize() {
	for _, s := range []*string{r.Name, r.Email, r.School, r.Shift} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func (r *EditChildRequest) Validate() error {
	if r.Email != nil && !authHelper.ValidEmail(*r.Email) {
		return helper.InvalidEmail()
	}
	if details := helper.ValidateStruct(r, userDto.FieldMessages); len(details) > 0 {
		return helper.MissingData("Datos del niño inválidos", details...)
	}
	return nil
}

func (r EditChildRequest) UserPatch() userDto.UserPatch {
	return userDto.UserPatch{Name: r.Name, Email: r.Email}
}

func (r EditChildRequest) ChildPatch() userDto.ChildPatch {
	return userDto.ChildPatch{Age: r.Age, Grade: r.Grade, School: r.School, Shift: r.Shift}
}

/* =========================================================
   RESPONSES
========================================================= */

// AssignedChild: one survey row of the evaluator joined with its child.
type AssignedChild struct {
	SurveyID   int       `gorm:"column:encuesta_id" json:"encuesta_id"`
	ChildID    int       `gorm:"column:nino_id" json:"nino_id"`
	ChildName  string    `gorm:"column:nino_nombre" json:"nino_nombre"`
	ChildEmail string    `gorm:"column:nino_correo" json:"nino_correo"`
	Age        int       `gorm:"column:edad" json:"edad"`
	Grade      int       `gorm:"column:grado" json:"grado"`
	School     string    `gorm:"column:colegio" json:"colegio"`
	Shift      string    `gorm:"column:jornada" json:"jornada"`
	Date       time.Time `gorm:"column:fecha" json:"fecha"`
	Attempts   int       `gorm:"column:num_intentos" json:"num_intentos"`
	Session    int       `gorm:"column:num_sesion" json:"num_sesion"`
	Notes      string    `gorm:"column:observaciones" json:"observaciones"`
}

type ChildDetail struct {
	ID     int    `gorm:"column:id" json:"id"`
	Name   string `gorm:"column:nombre" json:"nombre"`
	Email  string `gorm:"column:correo_electronico" json:"correo_electronico"`
	Age    int    `gorm:"column:edad" json:"edad"`
	Grade  int    `gorm:"column:grado" json:"grado"`
	School string `gorm:"column:colegio" json:"colegio"`
	Shift  string `gorm:"column:jornada" json:"jornada"`
}

type SurveySummary struct {
	ID       int       `gorm:"column:id" json:"id"`
	Date     time.Time `gorm:"column:fecha" json:"fecha"`
	Attempts int       `gorm:"column:num_intentos" json:"num_intentos"`
	Session  int       `gorm:"column:num_sesion" json:"num_sesion"`
	Notes    string    `gorm:"column:observaciones" json:"observaciones"`
}

// ChildResults: GET /api/evaluador/resultados/:ninoId
type ChildResults struct {
	Child    ChildDetail                   `json:"nino"`
	Surveys  []SurveySummary               `json:"encuestas"`
	Progress []progressModel.ProgressModel `json:"progreso"`
}

type AgeBucket struct {
	Age   int   `gorm:"column:edad" json:"edad"`
	Count int64 `gorm:"column:cantidad" json:"cantidad"`
}

type GradeBucket struct {
	Grade int   `gorm:"column:grado" json:"grado"`
	Count int64 `gorm:"column:cantidad" json:"cantidad"`
}

type SchoolBucket struct {
	School string `gorm:"column:colegio" json:"colegio"`
	Count  int64  `gorm:"column:cantidad" json:"cantidad"`
}

// Statistics: GET /api/evaluador/estadisticas
type Statistics struct {
	TotalChildren int64          `json:"totalNinos"`
	TotalSurveys  int64          `json:"totalEncuestas"`
	Ages          []AgeBucket    `json:"distribucionEdades"`
	Grades        []GradeBucket  `json:"distribucionGrados"`
	Schools       []SchoolBucket `json:"distribucionColegios"`
}
