// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"gorm.io/gorm"

	userModel "priming_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("correo_electronico = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func EmailExists(db *gorm.DB, email string) (bool, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM usuarios WHERE correo_electronico = ?)`, email).
		Scan(&exists).Error
	return exists, err
}

// CreateUser inserts the row and fills user.ID.
func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID int, passwordHash string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("contrasena", passwordHash).Error
}

/* ====================== ROLE PROFILES ====================== */

func EvaluatorCodeExists(db *gorm.DB, code string) (bool, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM evaluadores WHERE codigo = ?)`, code).
		Scan(&exists).Error
	return exists, err
}

func CreateEvaluatorProfile(db *gorm.DB, ev *userModel.EvaluatorModel) error {
	return db.Create(ev).Error
}

func CreateChildProfile(db *gorm.DB, child *userModel.ChildModel) error {
	return db.Create(child).Error
}
