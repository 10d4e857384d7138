package server

import (
	"pulse/internal/models"
	"pulse/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/comment/:id
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req validation.PostInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"text": "Text field is required",
		})
	}

	if errs := validation.ValidatePostInput(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	postID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	comment := &models.Comment{
		Text:   req.Text,
		Name:   req.Name,
		Avatar: req.Avatar,
		UserID: userID,
		PostID: postID,
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	return c.JSON(post)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id. The
// comment is keyed by the identity generated on insertion. No request
// body is required; the legacy API's copy-pasted body validation on this
// route was dropped.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	// A malformed comment id can never match an existing comment; it gets
	// the same response as an unknown one. Key name kept verbatim from the
	// legacy API, typo included.
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"noCommet": "This comment does not exist",
		})
	}

	if err := s.postRepo.RemoveComment(ctx, postID, commentID); err != nil {
		if models.HasCode(err, models.CodeCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"noCommet": "This comment does not exist",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	return c.JSON(post)
}
