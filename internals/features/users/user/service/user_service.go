package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"priming_backend/internals/constants"
	authHelper "priming_backend/internals/features/users/auth/helper"
	"priming_backend/internals/features/users/user/dto"
	"priming_backend/internals/features/users/user/model"
	"priming_backend/internals/features/users/user/repository"
	helper "priming_backend/internals/helpers"
)

type UserService struct {
	DB     *gorm.DB
	Hasher *authHelper.PasswordHasher
}

func NewUserService(db *gorm.DB, hasher *authHelper.PasswordHasher) *UserService {
	return &UserService{DB: db, Hasher: hasher}
}

func userNotFound() *helper.AppError {
	return helper.NotFound(constants.CodeUserNotFound, "Usuario no encontrado")
}

func (s *UserService) findUser(db *gorm.DB, id int) (*model.UserModel, error) {
	user, err := repository.FindUserByID(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userNotFound()
	}
	return user, err
}

/* =========================================================
   READ
========================================================= */

func (s *UserService) GetUserInfo(ctx context.Context, userID int) (*dto.UserResponse, error) {
	user, err := s.findUser(s.DB.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// GetProfile returns the user with its role arm filled in.
func (s *UserService) GetProfile(ctx context.Context, userID int) (*dto.UserProfile, error) {
	db := s.DB.WithContext(ctx)
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}

	var (
		ev    *model.EvaluatorModel
		child *model.ChildModel
	)
	switch user.Role {
	case constants.RoleEvaluator:
		ev, err = repository.FindEvaluatorByUserID(db, userID)
	case constants.RoleChild:
		child, err = repository.FindChildByUserID(db, userID)
	}
	if err != nil {
		return nil, err
	}

	profile := dto.NewUserProfile(user, ev, child)
	return &profile, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := repository.ListUsers(s.DB.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(users), nil
}

/* =========================================================
   WRITE
========================================================= */

// UpdateProfile updates the caller's user row and, depending on the stored
// role, its evaluator or child row, in one transaction.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, req dto.UpdateProfileRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	db := s.DB.WithContext(ctx)
	user, err := s.findUser(db, userID)
	if err != nil {
		return err
	}
	if err := s.ensureEmailFree(db, req.Email, userID); err != nil {
		return err
	}

	return helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		if err := repository.UpdateUser(tx, userID, req.UserPatch().Columns()); err != nil {
			return err
		}
		return applyRolePatch(tx, user, &req.Name, req.RoleFieldsPatch)
	})
}

func (s *UserService) ChangePassword(ctx context.Context, userID int, req dto.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return err
	}
	db := s.DB.WithContext(ctx)
	if _, err := s.findUser(db, userID); err != nil {
		return err
	}
	return repository.UpdateUser(db, userID, dto.UserPatch{PasswordHash: &hash}.Columns())
}

// AdminUpdateUser applies a partial update to any user and returns the
// resulting profile.
func (s *UserService) AdminUpdateUser(ctx context.Context, userID int, req dto.AdminUpdateUserRequest) (*dto.UserProfile, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		if err := s.ensureEmailFree(db, *req.Email, userID); err != nil {
			return nil, err
		}
	}

	patch := dto.UserPatch{Name: req.Name, Email: req.Email}
	if req.Password != nil {
		hash, err := s.Hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	err = helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		if err := repository.UpdateUser(tx, userID, patch.Columns()); err != nil {
			return err
		}
		return applyRolePatch(tx, user, req.Name, req.RoleFieldsPatch)
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// DeleteUser removes the user with its profiles, surveys, results and
// progress. Admins cannot delete their own account.
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID int) error {
	if actorID == userID {
		return helper.MissingData("No puedes eliminar tu propia cuenta")
	}
	return helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		deleted, err := repository.DeleteUserCascade(tx, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return userNotFound()
		}
		return nil
	})
}

func (s *UserService) ensureEmailFree(db *gorm.DB, email string, userID int) error {
	taken, err := repository.EmailTakenByOther(db, email, userID)
	if err != nil {
		return err
	}
	if taken {
		e := helper.EmailExists()
		e.Message = "El correo electrónico ya está en uso por otro usuario"
		return e
	}
	return nil
}

// applyRolePatch writes the half of fields that matches the user's role.
// The code uniqueness check runs inside the transaction.
func applyRolePatch(tx *gorm.DB, user *model.UserModel, name *string, fields dto.RoleFieldsPatch) error {
	switch user.Role {
	case constants.RoleEvaluator:
		patch := fields.EvaluatorPatch()
		patch.Name = name
		if patch.Code != nil {
			taken, err := repository.CodeTakenByOther(tx, *patch.Code, user.ID)
			if err != nil {
				return err
			}
			if taken {
				e := helper.CodeExists()
				e.Message = "El código ya está en uso por otro evaluador"
				return e
			}
		}
		return repository.UpdateEvaluatorByUserID(tx, user.ID, patch.Columns())
	case constants.RoleChild:
		return repository.UpdateChildByUserID(tx, user.ID, fields.ChildPatch().Columns())
	}
	return nil
}

// RequireEvaluator resolves the evaluator row of the caller. Admins pass the
// evaluator gate but have no row, so they get NOT_EVALUATOR here.
func RequireEvaluator(db *gorm.DB, userID int) (*model.EvaluatorModel, error) {
	ev, err := repository.FindEvaluatorByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, helper.NotEvaluator()
	}
	return ev, nil
}
