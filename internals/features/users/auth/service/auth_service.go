package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"priming_backend/internals/constants"
	"priming_backend/internals/features/users/auth/dto"
	authHelper "priming_backend/internals/features/users/auth/helper"
	authRepo "priming_backend/internals/features/users/auth/repository"
	userDto "priming_backend/internals/features/users/user/dto"
	userModel "priming_backend/internals/features/users/user/model"
	userRepo "priming_backend/internals/features/users/user/repository"
	helper "priming_backend/internals/helpers"
)

type AuthService struct {
	DB     *gorm.DB
	Hasher *authHelper.PasswordHasher
	Tokens *authHelper.TokenService
}

func NewAuthService(db *gorm.DB, hasher *authHelper.PasswordHasher, tokens *authHelper.TokenService) *AuthService {
	return &AuthService{DB: db, Hasher: hasher, Tokens: tokens}
}

/* ==========================
   REGISTER
========================== */

// Register creates the user and its role profile in one transaction and
// returns the new user id.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (int, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return 0, err
	}

	db := s.DB.WithContext(ctx)

	// fast reject, the unique constraints still decide inside the tx
	exists, err := authRepo.EmailExists(db, req.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, helper.EmailExists()
	}
	if req.Role == constants.RoleEvaluator {
		taken, err := authRepo.EvaluatorCodeExists(db, req.Code)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, helper.CodeExists().WithDetails(fmt.Sprintf("Ya existe la llave (codigo)=(%s).", req.Code))
		}
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	user := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
	}
	err = helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		switch req.Role {
		case constants.RoleEvaluator:
			return authRepo.CreateEvaluatorProfile(tx, &userModel.EvaluatorModel{
				UserID:       user.ID,
				Code:         req.Code,
				Kind:         req.Kind,
				DocumentType: req.DocumentType,
				Name:         req.Name,
			})
		case constants.RoleChild:
			return authRepo.CreateChildProfile(tx, &userModel.ChildModel{
				UserID: user.ID,
				Age:    *req.Age,
				Grade:  *req.Grade,
				School: req.School,
				Shift:  req.Shift,
			})
		}
		return nil
	})
	if err != nil {
		zap.L().Warn("register failed", zap.String("email", req.Email), zap.Error(err))
		return 0, err
	}

	zap.L().Info("user registered", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	return user.ID, nil
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := authRepo.FindUserByEmail(s.DB.WithContext(ctx), req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.Unauthorized(constants.CodeUserNotFound, "Usuario no encontrado")
	}
	if err != nil {
		return nil, err
	}

	if !s.Hasher.Verify(req.Password, user.Password) {
		return nil, helper.Unauthorized(constants.CodeWrongPassword, "Contraseña incorrecta")
	}

	user.Role = constants.NormalizeRole(user.Role)
	token, err := s.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: userDto.ToUserResponse(user)}, nil
}

/* ==========================
   VERIFY
========================== */

// CurrentUser backs GET /api/verify-token: the token already passed the
// middleware, this confirms the user still exists.
func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*userDto.UserResponse, error) {
	user, err := userRepo.FindUserByID(s.DB.WithContext(ctx), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(constants.CodeUserNotFound, "Usuario no encontrado")
	}
	if err != nil {
		return nil, err
	}
	out := userDto.ToUserResponse(user)
	return &out, nil
}
