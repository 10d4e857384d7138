package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/like/:id. The membership insert is
// add-if-absent at the store level, so two concurrent likes cannot both
// succeed.
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	if err := s.postRepo.Like(ctx, userID, id); err != nil {
		if models.HasCode(err, models.CodeAlreadyLiked) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"alreadyLiked": "User already liked this post",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	return c.JSON(post)
}

// UnlikePost handles POST /api/posts/unlike/:id. The membership delete is
// remove-by-key; a zero-row delete means the caller never liked the post.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	if err := s.postRepo.Unlike(ctx, userID, id); err != nil {
		if models.HasCode(err, models.CodeNotLiked) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"notLiked": "You have not yet liked this post",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	return c.JSON(post)
}
