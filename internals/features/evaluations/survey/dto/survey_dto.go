package dto

import (
	"strings"
	"time"

	"priming_backend/internals/features/evaluations/survey/model"
	helper "priming_backend/internals/helpers"
)

/* =========================================================
   SURVEY
========================================================= */

type CreateSurveyRequest struct {
	ChildID *int   `json:"nino_id" validate:"required,min=1"`
	Notes   string `json:"observaciones"`
}

var surveyMessages = map[string]string{
	"nino_id":      "El niño es obligatorio",
	"num_intentos": "El número de intentos no puede ser negativo",
	"num_sesion":   "El número de sesión debe ser mayor a cero",
}

func (r *CreateSurveyRequest) Validate() error {
	r.Notes = strings.TrimSpace(r.Notes)
	if details := helper.ValidateStruct(r, surveyMessages); len(details) > 0 {
		return helper.MissingData("Faltan datos de la encuesta", details...)
	}
	return nil
}

// ToModel assumes Validate passed. New surveys start at attempt 0, session 1.
func (r CreateSurveyRequest) ToModel(evaluatorID int) model.SurveyModel {
	return model.SurveyModel{
		ChildID:     *r.ChildID,
		EvaluatorID: evaluatorID,
		Attempts:    0,
		Session:     1,
		Notes:       r.Notes,
	}
}

type UpdateSurveyRequest struct {
	Attempts *int    `json:"num_intentos" validate:"omitempty,min=0"`
	Session  *int    `json:"num_sesion" validate:"omitempty,min=1"`
	Notes    *string `json:"observaciones"`
}

func (r UpdateSurveyRequest) Validate() error {
	if details := helper.ValidateStruct(r, surveyMessages); len(details) > 0 {
		return helper.MissingData("Datos de encuesta inválidos", details...)
	}
	if len(r.Patch().Columns()) == 0 {
		return helper.MissingData("No hay campos para actualizar")
	}
	return nil
}

func (r UpdateSurveyRequest) Patch() SurveyPatch {
	return SurveyPatch{Attempts: r.Attempts, Session: r.Session, Notes: r.Notes}
}

// SurveyPatch: the columns an evaluator may change on a survey.
type SurveyPatch struct {
	Attempts *int
	Session  *int
	Notes    *string
}

func (p SurveyPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Attempts != nil {
		cols["num_intentos"] = *p.Attempts
	}
	if p.Session != nil {
		cols["num_sesion"] = *p.Session
	}
	if p.Notes != nil {
		cols["observaciones"] = strings.TrimSpace(*p.Notes)
	}
	return cols
}

// SurveyRow: survey joined with the child's name.
type SurveyRow struct {
	ID        int       `gorm:"column:id" json:"id"`
	Date      time.Time `gorm:"column:fecha" json:"fecha"`
	Attempts  int       `gorm:"column:num_intentos" json:"num_intentos"`
	Session   int       `gorm:"column:num_sesion" json:"num_sesion"`
	Notes     string    `gorm:"column:observaciones" json:"observaciones"`
	ChildID   int       `gorm:"column:nino_id" json:"nino_id"`
	ChildName string    `gorm:"column:nino_nombre" json:"nino_nombre"`
}

type SurveyWithResults struct {
	Survey  SurveyRow                 `json:"encuesta"`
	Results []model.SurveyResultModel `json:"resultados"`
}

// AdminSurvey: one survey of a child across all evaluators.
type AdminSurvey struct {
	ID            int                       `gorm:"column:id" json:"id"`
	Date          time.Time                 `gorm:"column:fecha" json:"fecha"`
	Attempts      int                       `gorm:"column:num_intentos" json:"num_intentos"`
	Session       int                       `gorm:"column:num_sesion" json:"num_sesion"`
	Notes         string                    `gorm:"column:observaciones" json:"observaciones"`
	ChildID       int                       `gorm:"column:nino_id" json:"nino_id"`
	EvaluatorID   int                       `gorm:"column:evaluador_id" json:"evaluador_id"`
	EvaluatorName string                    `gorm:"column:evaluador_nombre" json:"evaluador_nombre"`
	ChildName     string                    `gorm:"-" json:"nino_nombre"`
	Results       []model.SurveyResultModel `gorm:"-" json:"resultados"`
}
