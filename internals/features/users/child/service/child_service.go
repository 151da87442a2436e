package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"priming_backend/internals/constants"
	gameDto "priming_backend/internals/features/games/game/dto"
	gameRepo "priming_backend/internals/features/games/game/repository"
	progressDto "priming_backend/internals/features/games/progress/dto"
	progressRepo "priming_backend/internals/features/games/progress/repository"
	progressService "priming_backend/internals/features/games/progress/service"
	"priming_backend/internals/features/users/child/dto"
	"priming_backend/internals/features/users/child/repository"
	userDto "priming_backend/internals/features/users/user/dto"
	userRepo "priming_backend/internals/features/users/user/repository"
	helper "priming_backend/internals/helpers"
)

type ChildService struct {
	DB       *gorm.DB
	Progress *progressService.ProgressService
}

func NewChildService(db *gorm.DB, progress *progressService.ProgressService) *ChildService {
	return &ChildService{DB: db, Progress: progress}
}

func childNotFound() *helper.AppError {
	return helper.NotFound(constants.CodeUserNotFound, "Datos de niño no encontrados")
}

// Profile returns the user joined with its child row.
func (s *ChildService) Profile(ctx context.Context, userID int) (*userDto.UserProfile, error) {
	db := s.DB.WithContext(ctx)
	user, err := userRepo.FindUserByID(db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, childNotFound()
	}
	if err != nil {
		return nil, err
	}
	child, err := userRepo.FindChildByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, childNotFound()
	}
	profile := userDto.NewUserProfile(user, nil, child)
	return &profile, nil
}

// Overview is the whole catalog plus the caller's progress rows.
func (s *ChildService) Overview(ctx context.Context, userID int) (*dto.ProgressOverview, error) {
	db := s.DB.WithContext(ctx)

	games, err := gameRepo.ListGames(db)
	if err != nil {
		return nil, err
	}
	levels, err := gameRepo.ListLevels(db)
	if err != nil {
		return nil, err
	}
	progress, err := progressRepo.ListByUser(db, userID)
	if err != nil {
		return nil, err
	}

	out := &dto.ProgressOverview{
		Games:    make([]dto.GameBrief, 0, len(games)),
		Levels:   gameDto.ToLevelSummaries(levels),
		Progress: progress,
	}
	for _, g := range games {
		out.Games = append(out.Games, dto.GameBrief{ID: g.ID, Name: g.Name, Description: g.Description})
	}
	return out, nil
}

func (s *ChildService) CurrentLevel(ctx context.Context, userID, gameID int) (*progressDto.CurrentLevelResponse, error) {
	return s.Progress.CurrentLevel(ctx, userID, gameID)
}

func (s *ChildService) Statistics(ctx context.Context, userID int) (*dto.Statistics, error) {
	db := s.DB.WithContext(ctx)

	info, err := repository.FindChildInfo(db, userID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, childNotFound()
	}

	out := &dto.Statistics{Child: *info}
	if out.Totals, err = repository.Totals(db, userID); err != nil {
		return nil, err
	}
	if out.GameProgress, err = repository.GameStats(db, userID); err != nil {
		return nil, err
	}
	if out.RecentSessions, err = repository.RecentSessions(db, userID); err != nil {
		return nil, err
	}
	if out.Evaluators, err = repository.AssignedEvaluators(db, userID); err != nil {
		return nil, err
	}

	zap.L().Debug("child statistics",
		zap.Int("user_id", userID),
		zap.Int64("levels_completed", out.Totals.CompletedLevels),
	)
	return out, nil
}
