package seeds

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"priming_backend/internals/constants"
	surveyModel "priming_backend/internals/features/evaluations/survey/model"
	gameModel "priming_backend/internals/features/games/game/model"
	authHelper "priming_backend/internals/features/users/auth/helper"
	userModel "priming_backend/internals/features/users/user/model"
	helper "priming_backend/internals/helpers"
)

//go:embed seed_data.json
var seedJSON []byte

const levelInstructions = "Escucha el audio y selecciona las palabras correctas."

var errAlreadySeeded = errors.New("database already has users")

type UserSeed struct {
	Name  string `json:"nombre"`
	Email string `json:"correo_electronico"`
}

type EvaluatorSeed struct {
	UserSeed
	Code         string `json:"codigo"`
	Kind         string `json:"tipo"`
	DocumentType string `json:"tipo_documento"`
}

type ChildSeed struct {
	UserSeed
	Age    int    `json:"edad"`
	Grade  int    `json:"grado"`
	School string `json:"colegio"`
	Shift  string `json:"jornada"`
}

type LevelSeed struct {
	Difficulty string                 `json:"dificultad"`
	MaxTime    int                    `json:"tiempo_maximo"`
	Content    gameModel.LevelContent `json:"contenido"`
}

type GameSeed struct {
	Name        string      `json:"nombre"`
	Description string      `json:"descripcion"`
	Image       string      `json:"imagen"`
	Levels      []LevelSeed `json:"niveles"`
}

// Data is the whole fixture set. Passwords are keyed by role.
type Data struct {
	Passwords   map[string]string `json:"passwords"`
	Admin       UserSeed          `json:"admin"`
	Evaluators  []EvaluatorSeed   `json:"evaluadores"`
	Children    []ChildSeed       `json:"ninos"`
	Games       []GameSeed        `json:"juegos"`
	SurveyNotes string            `json:"observaciones_encuesta"`
}

// LoadData decodes the embedded fixtures.
func LoadData() (*Data, error) {
	var data Data
	if err := sonic.Unmarshal(seedJSON, &data); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return &data, nil
}

// Run seeds the embedded fixtures.
func Run(ctx context.Context, db *gorm.DB, hasher *authHelper.PasswordHasher, log *zap.Logger) error {
	data, err := LoadData()
	if err != nil {
		return err
	}
	return Seed(ctx, db, hasher, log, data)
}

// Seed inserts data in one transaction. A database that already has users
// is left untouched.
func Seed(ctx context.Context, db *gorm.DB, hasher *authHelper.PasswordHasher, log *zap.Logger, data *Data) error {
	log.Info("🌱 seeding database...")

	hashes := make(map[string]string, len(data.Passwords))
	for role, plain := range data.Passwords {
		h, err := hasher.Hash(plain)
		if err != nil {
			return fmt.Errorf("hash %s password: %w", role, err)
		}
		hashes[role] = h
	}

	err := helper.WithTx(ctx, db, func(tx *gorm.DB) error {
		var users int64
		if err := tx.Model(&userModel.UserModel{}).Count(&users).Error; err != nil {
			return err
		}
		if users > 0 {
			return errAlreadySeeded
		}

		log.Info("👤 creating users")
		admin := userModel.UserModel{Name: data.Admin.Name, Email: data.Admin.Email, Password: hashes[constants.RoleAdmin], Role: constants.RoleAdmin}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("admin %s: %w", admin.Email, err)
		}
		log.Info("✅ admin created", zap.Int("id", admin.ID))

		evaluatorIDs := make([]int, 0, len(data.Evaluators))
		for _, e := range data.Evaluators {
			u := userModel.UserModel{Name: e.Name, Email: e.Email, Password: hashes[constants.RoleEvaluator], Role: constants.RoleEvaluator}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("evaluator %s: %w", e.Email, err)
			}
			ev := userModel.EvaluatorModel{UserID: u.ID, Code: e.Code, Kind: e.Kind, DocumentType: e.DocumentType, Name: e.Name}
			if err := tx.Create(&ev).Error; err != nil {
				return fmt.Errorf("evaluator profile %s: %w", e.Code, err)
			}
			evaluatorIDs = append(evaluatorIDs, ev.ID)
			log.Info("✅ evaluator created", zap.String("name", e.Name), zap.Int("user_id", u.ID))
		}

		childIDs := make([]int, 0, len(data.Children))
		for _, c := range data.Children {
			u := userModel.UserModel{Name: c.Name, Email: c.Email, Password: hashes[constants.RoleChild], Role: constants.RoleChild}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("child %s: %w", c.Email, err)
			}
			child := userModel.ChildModel{UserID: u.ID, Age: c.Age, Grade: c.Grade, School: c.School, Shift: c.Shift}
			if err := tx.Create(&child).Error; err != nil {
				return fmt.Errorf("child profile %s: %w", c.Email, err)
			}
			childIDs = append(childIDs, child.ID)
			log.Info("✅ child created", zap.String("name", c.Name), zap.Int("user_id", u.ID))
		}

		if err := seedGames(tx, log, data.Games); err != nil {
			return err
		}

		log.Info("📋 creating surveys")
		for _, childID := range childIDs {
			for _, evID := range evaluatorIDs {
				s := surveyModel.SurveyModel{ChildID: childID, EvaluatorID: evID, Attempts: 0, Session: 1, Notes: data.SurveyNotes}
				if err := tx.Create(&s).Error; err != nil {
					return fmt.Errorf("survey child=%d evaluator=%d: %w", childID, evID, err)
				}
			}
		}
		return nil
	})
	if errors.Is(err, errAlreadySeeded) {
		log.Warn("⚠️ database already has data, seeding skipped")
		return nil
	}
	if err != nil {
		log.Error("❌ seeding failed", zap.Error(err))
		return err
	}
	log.Info("✅ seeding finished")
	return nil
}

// seedGames only runs on an empty juegos table.
func seedGames(tx *gorm.DB, log *zap.Logger, games []GameSeed) error {
	var existing int64
	if err := tx.Model(&gameModel.GameModel{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Info("ℹ️ games already present, skipped")
		return nil
	}

	log.Info("🎮 creating games and levels")
	for _, g := range games {
		game := gameModel.GameModel{Name: g.Name, Description: strPtr(g.Description), Image: strPtr(g.Image)}
		if err := tx.Create(&game).Error; err != nil {
			return fmt.Errorf("game %s: %w", g.Name, err)
		}
		slug := strings.Replace(strings.ToLower(g.Name), " ", "-", 1)
		for i, l := range g.Levels {
			level := gameModel.LevelModel{
				GameID:        game.ID,
				Name:          fmt.Sprintf("Nivel %d", i+1),
				Description:   strPtr(fmt.Sprintf("Nivel %s de %s", l.Difficulty, g.Name)),
				Difficulty:    strPtr(l.Difficulty),
				Instructions:  strPtr(levelInstructions),
				MaxTime:       intPtr(l.MaxTime),
				TrainingAudio: strPtr(fmt.Sprintf("/audio/%s/%s/intro.mp3", slug, l.Difficulty)),
				Content:       datatypes.NewJSONType(l.Content),
			}
			if err := tx.Create(&level).Error; err != nil {
				return fmt.Errorf("level %d of %s: %w", i+1, g.Name, err)
			}
		}
		log.Info("✅ game created", zap.String("name", g.Name), zap.Int("id", game.ID), zap.Int("levels", len(g.Levels)))
	}
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
