package domain

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
)

const (
	RoleUser = "user"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// StatusForError maps domain errors onto response codes: missing entities to
// 404, permission failures to 403, uniqueness violations to 409, and every
// other (invalid input) error to 400.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrFriendRequestNotFound),
		errors.Is(err, ErrFriendNotFound),
		errors.Is(err, ErrRecipeNotFound),
		errors.Is(err, ErrGroceryListNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUserNotAllowed),
		errors.Is(err, ErrNotRequestRecipient),
		errors.Is(err, ErrNotFriends),
		errors.Is(err, ErrUnauthorizedRecipeAccess),
		errors.Is(err, ErrUnauthorizedGroceryAccess):
		return fiber.StatusForbidden
	case errors.Is(err, ErrFriendRequestExists),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrRecipeAlreadyShared),
		errors.Is(err, ErrGroceryAlreadyShared):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
