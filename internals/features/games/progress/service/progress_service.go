package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"priming_backend/internals/constants"
	gameDto "priming_backend/internals/features/games/game/dto"
	gameRepo "priming_backend/internals/features/games/game/repository"
	gameService "priming_backend/internals/features/games/game/service"
	"priming_backend/internals/features/games/progress/dto"
	"priming_backend/internals/features/games/progress/model"
	"priming_backend/internals/features/games/progress/repository"
	helper "priming_backend/internals/helpers"
)

type ProgressService struct {
	DB *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{DB: db}
}

// SaveProgress upserts the (user, game, level) row. A completed level
// unlocks the next level of the game with a zero row, once.
func (s *ProgressService) SaveProgress(ctx context.Context, userID, gameID, levelID int, req dto.SaveProgressRequest) (*dto.SaveProgressResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := gameRepo.LevelExists(s.DB.WithContext(ctx), gameID, levelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, gameService.LevelNotFound()
	}

	row := req.ToModel(userID, gameID, levelID)
	var unlocked *int

	err = helper.WithTx(ctx, s.DB, func(tx *gorm.DB) error {
		if err := repository.Upsert(tx, &row); err != nil {
			return err
		}
		if !row.Completed {
			return nil
		}
		next, err := gameRepo.NextLevelID(tx, gameID, levelID)
		if err != nil || next == 0 {
			return err
		}
		if err := repository.Unlock(tx, userID, gameID, next); err != nil {
			return err
		}
		unlocked = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Debug("progress saved",
		zap.Int("user_id", userID), zap.Int("juego_id", gameID), zap.Int("nivel_id", levelID),
		zap.Bool("completado", row.Completed))

	return &dto.SaveProgressResponse{
		Message:       "Progreso guardado correctamente",
		Progress:      row,
		UnlockedLevel: unlocked,
	}, nil
}

func (s *ProgressService) ListForUser(ctx context.Context, userID int) ([]model.ProgressModel, error) {
	return repository.ListByUser(s.DB.WithContext(ctx), userID)
}

// CurrentLevel: the highest level with progress, or the next one when that
// level is completed. Without progress it is the first level of the game.
func (s *ProgressService) CurrentLevel(ctx context.Context, userID, gameID int) (*dto.CurrentLevelResponse, error) {
	db := s.DB.WithContext(ctx)

	latest, err := repository.HighestLevel(db, userID, gameID)
	if err != nil {
		return nil, err
	}

	var (
		levelID   int
		lastLevel bool
	)
	switch {
	case latest == nil:
		levelID, err = gameRepo.FirstLevelID(db, gameID)
		if err != nil {
			return nil, err
		}
		if levelID == 0 {
			return nil, helper.NotFound(constants.CodeMissingData, "No se encontraron niveles para este juego")
		}
	case latest.Completed:
		levelID, err = gameRepo.NextLevelID(db, gameID, latest.LevelID)
		if err != nil {
			return nil, err
		}
		if levelID == 0 {
			levelID, lastLevel = latest.LevelID, true
		}
	default:
		levelID = latest.LevelID
	}

	level, err := gameRepo.FindLevelByID(db, levelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gameService.LevelNotFound()
	}
	if err != nil {
		return nil, err
	}

	progress, err := repository.Find(db, userID, gameID, levelID)
	if err != nil {
		return nil, err
	}

	return &dto.CurrentLevelResponse{
		Level:     gameDto.ToLevelSummary(*level),
		Progress:  progress,
		LastLevel: lastLevel,
	}, nil
}
