package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ReactToPost handles POST /api/posts/:id/reaction. The body carries a
// boolean reaction_type: true likes the post, false dislikes it. A repeat
// reaction from the same user replaces the previous one.
func (s *Server) ReactToPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ReactionType *bool `json:"reaction_type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ReactionType == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("reaction_type is required"))
	}

	post, reactErr := s.reactionService.React(c.Context(), service.ReactInput{
		UserID: currentUserID(c),
		PostID: postID,
		Like:   *req.ReactionType,
	})
	if reactErr != nil {
		return respondServiceError(c, reactErr)
	}

	return c.JSON(post)
}
