package server

import (
	"github.com/gofiber/fiber/v2"
)

// CurrentUser handles GET /api/user. It resolves the authenticated user's
// identity from the token and returns their username.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"username": user.Username,
	})
}
