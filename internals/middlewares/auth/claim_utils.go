// internals/middlewares/auth/claims_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	authHelper "priming_backend/internals/features/users/auth/helper"
	helper "priming_backend/internals/helpers"
)

var errNoToken = errors.New("no token provided")

/* ======== Extractors ======== */

// extractBearerToken accepts "Bearer <t>" or a bare "<t>".
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errNoToken
	}
	tok := authHelper.StripBearer(auth)
	if tok == "" {
		return "", errNoToken
	}
	return tok, nil
}

/* ======== Store claims to Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims *authHelper.Claims) {
	c.Locals(helper.LocalUserID, claims.ID)
	c.Locals(helper.LocalUserRole, claims.Role)
}
