package details

import (
	"gorm.io/gorm"

	authHelper "priming_backend/internals/features/users/auth/helper"
)

// Deps is built once in main and handed to every route group.
type Deps struct {
	DB     *gorm.DB
	Hasher *authHelper.PasswordHasher
	Tokens *authHelper.TokenService
}
