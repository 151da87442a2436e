package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"priming_backend/internals/constants"
	"priming_backend/internals/features/evaluations/survey/dto"
	"priming_backend/internals/features/evaluations/survey/model"
	"priming_backend/internals/features/evaluations/survey/repository"
	userService "priming_backend/internals/features/users/user/service"
	helper "priming_backend/internals/helpers"
)

type SurveyService struct {
	DB *gorm.DB
}

func NewSurveyService(db *gorm.DB) *SurveyService {
	return &SurveyService{DB: db}
}

func surveyNotOwned(action string) *helper.AppError {
	return helper.NotFound(constants.CodeAccessDenied,
		"Encuesta no encontrada o no tienes permiso para "+action)
}

/* =========================================================
   EVALUATOR
========================================================= */

// Create opens a new survey for a child. The child check and the insert
// share one transaction.
func (s *SurveyService) Create(ctx context.Context, actorID int, req dto.CreateSurveyRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	var survey model.SurveyModel
	err := helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		exists, err := repository.ChildExists(tx, *req.ChildID)
		if err != nil {
			return err
		}
		if !exists {
			return helper.NotFound(constants.CodeUserNotFound, "Niño no encontrado")
		}
		ev, err := userService.RequireEvaluator(tx, actorID)
		if err != nil {
			return err
		}
		survey = req.ToModel(ev.ID)
		return repository.CreateSurvey(tx, &survey)
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("survey created",
		zap.Int("survey_id", survey.ID),
		zap.Int("child_id", survey.ChildID),
		zap.Int("evaluator_id", survey.EvaluatorID),
	)
	return survey.ID, nil
}

func (s *SurveyService) ListForChild(ctx context.Context, actorID, childID int) ([]dto.SurveyRow, error) {
	db := s.DB.WithContext(ctx)
	ev, err := userService.RequireEvaluator(db, actorID)
	if err != nil {
		return nil, err
	}
	return repository.ListForChild(db, childID, ev.ID)
}

func (s *SurveyService) Update(ctx context.Context, actorID, surveyID int, req dto.UpdateSurveyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	db := s.DB.WithContext(ctx)
	ev, err := userService.RequireEvaluator(db, actorID)
	if err != nil {
		return err
	}
	survey, err := repository.FindOwned(db, surveyID, ev.ID)
	if err != nil {
		return err
	}
	if survey == nil {
		return surveyNotOwned("editarla")
	}
	return repository.UpdateSurvey(db, surveyID, req.Patch().Columns())
}

// SubmitResults appends a result row and bumps the attempt counter in one
// transaction. The result is tied to the survey's own child.
func (s *SurveyService) SubmitResults(ctx context.Context, actorID, surveyID int, req dto.ResultRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	var result model.SurveyResultModel
	err := helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		ev, err := userService.RequireEvaluator(tx, actorID)
		if err != nil {
			return err
		}
		survey, err := repository.FindOwned(tx, surveyID, ev.ID)
		if err != nil {
			return err
		}
		if survey == nil {
			return surveyNotOwned("registrar resultados")
		}
		result = req.ToModel(survey.ID, survey.ChildID, ev.ID)
		if err := repository.InsertResult(tx, &result); err != nil {
			return err
		}
		return repository.BumpAttempts(tx, survey.ID)
	})
	if err != nil {
		return 0, err
	}
	return result.ID, nil
}

func (s *SurveyService) GetResults(ctx context.Context, actorID, surveyID int) (*dto.SurveyWithResults, error) {
	db := s.DB.WithContext(ctx)
	ev, err := userService.RequireEvaluator(db, actorID)
	if err != nil {
		return nil, err
	}
	row, err := repository.FindOwnedRow(db, surveyID, ev.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, surveyNotOwned("verla")
	}
	results, err := repository.ListResults(db, surveyID)
	if err != nil {
		return nil, err
	}
	return &dto.SurveyWithResults{Survey: *row, Results: results}, nil
}

/* =========================================================
   ADMIN
========================================================= */

// AdminChildSurveys returns every survey of a child user with its results.
// A user without a child row yields an empty list.
func (s *SurveyService) AdminChildSurveys(ctx context.Context, userID int) ([]dto.AdminSurvey, error) {
	db := s.DB.WithContext(ctx)

	childID, childName, ok, err := repository.FindChildRef(db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []dto.AdminSurvey{}, nil
	}

	surveys, err := repository.SurveysForChild(db, childID)
	if err != nil || len(surveys) == 0 {
		return surveys, err
	}

	ids := make([]int64, len(surveys))
	for i, sv := range surveys {
		ids[i] = int64(sv.ID)
	}
	results, err := repository.ResultsForSurveys(db, ids)
	if err != nil {
		return nil, err
	}

	bySurvey := make(map[int][]model.SurveyResultModel, len(surveys))
	for _, r := range results {
		bySurvey[r.SurveyID] = append(bySurvey[r.SurveyID], r)
	}
	for i := range surveys {
		surveys[i].ChildName = childName
		surveys[i].Results = bySurvey[surveys[i].ID]
		if surveys[i].Results == nil {
			surveys[i].Results = []model.SurveyResultModel{}
		}
	}
	return surveys, nil
}

func (s *SurveyService) AdminUpdateResult(ctx context.Context, resultID int, req dto.ResultRequest) (*model.SurveyResultModel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	cols := req.Patch().Columns()
	if len(cols) == 0 {
		return nil, helper.MissingData("No hay campos para actualizar")
	}
	updated, err := repository.UpdateResult(s.DB.WithContext(ctx), resultID, cols)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, helper.NotFound(constants.CodeUserNotFound, "Resultado no encontrado")
	}
	zap.L().Info("survey result edited", zap.Int("result_id", resultID), zap.Int("columns", len(cols)))
	return updated, nil
}
