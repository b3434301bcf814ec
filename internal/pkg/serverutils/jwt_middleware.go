package serverutils

import (
	"strings"
	"time"

	"flowa-be/internal/pkg/apperror"
	"flowa-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the user.
func IssueToken(secret string, userId uuid.UUID, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userId.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Invalid token")
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, apperror.Unauthorized("Invalid claims")
	}
	return claims, nil
}

// NewJwtMiddleware guards routes with an Authorization: Bearer token and
// stores user_id and role in the request locals.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Not authorized, no token"))
		}

		claims, err := ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Not authorized, token failed"))
		}

		ctx.Locals(LocalUserID, claims.UserID)
		ctx.Locals(LocalRole, claims.Role)
		return ctx.Next()
	}
}

// RequireRoles rejects callers whose role is not listed. Must run after the JWT middleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals(LocalRole).(string)
		for _, r := range roles {
			if r == role {
				return ctx.Next()
			}
		}
		return apperror.Forbidden("Not authorized for this action")
	}
}

// ActorFromCtx builds the authorization actor from the request locals.
func ActorFromCtx(ctx *fiber.Ctx) (access.Actor, error) {
	userIdStr, _ := ctx.Locals(LocalUserID).(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return access.Actor{}, apperror.Unauthorized("Not authorized")
	}
	role, _ := ctx.Locals(LocalRole).(string)
	return access.Actor{ID: userId, Role: role}, nil
}

// ParamID parses a uuid route parameter. Malformed ids resolve to nothing.
func ParamID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.NotFound("Resource not found")
	}
	return id, nil
}
