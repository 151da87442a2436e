package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"priming_backend/internals/constants"
	"priming_backend/internals/features/evaluations/evaluator/dto"
	"priming_backend/internals/features/evaluations/evaluator/repository"
	surveyModel "priming_backend/internals/features/evaluations/survey/model"
	surveyRepo "priming_backend/internals/features/evaluations/survey/repository"
	progressRepo "priming_backend/internals/features/games/progress/repository"
	authHelper "priming_backend/internals/features/users/auth/helper"
	authRepo "priming_backend/internals/features/users/auth/repository"
	userDto "priming_backend/internals/features/users/user/dto"
	userModel "priming_backend/internals/features/users/user/model"
	userRepo "priming_backend/internals/features/users/user/repository"
	userService "priming_backend/internals/features/users/user/service"
	helper "priming_backend/internals/helpers"
)

type EvaluatorService struct {
	DB     *gorm.DB
	Hasher *authHelper.PasswordHasher
}

func NewEvaluatorService(db *gorm.DB, hasher *authHelper.PasswordHasher) *EvaluatorService {
	return &EvaluatorService{DB: db, Hasher: hasher}
}

func notAssigned(action string) *helper.AppError {
	return helper.Forbidden(constants.CodeAccessDenied, "No tienes permiso para "+action+" este niño")
}

// assignedChildUser resolves the user id of a child assigned to the caller.
func assignedChildUser(db *gorm.DB, childID, actorID int, action string) (int, error) {
	userID, ok, err := repository.AssignedChildUserID(db, childID, actorID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, notAssigned(action)
	}
	return userID, nil
}

/* =========================================================
   ASSIGN
========================================================= */

// AssignChild creates the child user, its profile and the first survey with
// the caller in one transaction. Returns the survey id.
func (s *EvaluatorService) AssignChild(ctx context.Context, actorID int, req dto.AssignChildRequest) (int, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return 0, err
	}

	exists, err := authRepo.EmailExists(s.DB.WithContext(ctx), req.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, helper.EmailExists()
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	user := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     constants.RoleChild,
	}
	var survey surveyModel.SurveyModel
	err = helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		child := userModel.ChildModel{
			UserID: user.ID,
			Age:    *req.Age,
			Grade:  *req.Grade,
			School: req.School,
			Shift:  req.Shift,
		}
		if err := authRepo.CreateChildProfile(tx, &child); err != nil {
			return err
		}
		ev, err := userService.RequireEvaluator(tx, actorID)
		if err != nil {
			return err
		}
		survey = surveyModel.SurveyModel{ChildID: child.ID, EvaluatorID: ev.ID, Attempts: 0, Session: 1}
		return surveyRepo.CreateSurvey(tx, &survey)
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("child assigned",
		zap.Int("user_id", user.ID),
		zap.Int("survey_id", survey.ID),
		zap.Int("evaluator_user_id", actorID),
	)
	return survey.ID, nil
}

/* =========================================================
   READ
========================================================= */

func (s *EvaluatorService) ListChildren(ctx context.Context, actorID int) ([]dto.AssignedChild, error) {
	return repository.ListAssignedChildren(s.DB.WithContext(ctx), actorID)
}

func (s *EvaluatorService) ChildResults(ctx context.Context, actorID, childID int) (*dto.ChildResults, error) {
	db := s.DB.WithContext(ctx)
	if _, err := assignedChildUser(db, childID, actorID, "ver los resultados de"); err != nil {
		return nil, err
	}

	child, err := repository.FindChildDetail(db, childID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, helper.NotFound(constants.CodeUserNotFound, "Niño no encontrado")
	}
	surveys, err := repository.SurveysOfChild(db, childID, actorID)
	if err != nil {
		return nil, err
	}
	progress, err := progressRepo.ListByChildID(db, childID)
	if err != nil {
		return nil, err
	}
	return &dto.ChildResults{Child: *child, Surveys: surveys, Progress: progress}, nil
}

func (s *EvaluatorService) Statistics(ctx context.Context, actorID int) (*dto.Statistics, error) {
	db := s.DB.WithContext(ctx)
	ev, err := userService.RequireEvaluator(db, actorID)
	if err != nil {
		return nil, err
	}

	out := &dto.Statistics{}
	if out.TotalChildren, out.TotalSurveys, err = repository.Totals(db, ev.ID); err != nil {
		return nil, err
	}
	if out.Ages, err = repository.AgeDistribution(db, ev.ID); err != nil {
		return nil, err
	}
	if out.Grades, err = repository.GradeDistribution(db, ev.ID); err != nil {
		return nil, err
	}
	if out.Schools, err = repository.SchoolDistribution(db, ev.ID); err != nil {
		return nil, err
	}
	return out, nil
}

/* =========================================================
   EDIT
========================================================= */

// EditChild patches the child's user and profile rows together.
func (s *EvaluatorService) EditChild(ctx context.Context, actorID, childID int, req dto.EditChildRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	db := s.DB.WithContext(ctx)
	childUserID, err := assignedChildUser(db, childID, actorID, "editar")
	if err != nil {
		return err
	}
	if req.Email != nil {
		taken, err := userRepo.EmailTakenByOther(db, *req.Email, childUserID)
		if err != nil {
			return err
		}
		if taken {
			e := helper.EmailExists()
			e.Message = "El correo electrónico ya está en uso por otro usuario"
			return e
		}
	}

	return helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		if err := userRepo.UpdateUser(tx, childUserID, req.UserPatch().Columns()); err != nil {
			return err
		}
		return userRepo.UpdateChildByUserID(tx, childUserID, req.ChildPatch().Columns())
	})
}

func (s *EvaluatorService) ChangeChildPassword(ctx context.Context, actorID, childID int, req userDto.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	db := s.DB.WithContext(ctx)
	childUserID, err := assignedChildUser(db, childID, actorID, "cambiar la contraseña de")
	if err != nil {
		return err
	}
	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return err
	}
	return authRepo.UpdateUserPassword(db, childUserID, hash)
}
