package helper

import (
	"context"

	"gorm.io/gorm"
)

// WithTx runs fn on one pooled connection inside BEGIN/COMMIT. Any error or
// panic from fn rolls back; the connection goes back to the pool either way.
// Returned errors are passed through TranslateDBError.
func WithTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return TranslateDBError(db.WithContext(ctx).Transaction(fn))
}
