package server

import (
	"pulse/internal/models"
	"pulse/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PostsTest handles GET /api/posts/test
func (s *Server) PostsTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Posts works"})
}

// GetPosts handles GET /api/posts. An empty result set is a 200 with an
// empty array; only a failing query maps to the legacy 404 body.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"noPostsFound": "No posts found",
		})
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id. Malformed ids and store failures are
// coerced to the same not-found response, matching the legacy API.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"noPostFound": "No post found with that ID",
		})
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"noPostFound": "No post found with that ID",
		})
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
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

	post := &models.Post{
		Text:     req.Text,
		Name:     req.Name,
		Avatar:   req.Avatar,
		UserID:   userID,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Only the owner referenced by
// the post may delete it.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"postNotFound": "No post found",
		})
	}

	if post.UserID != userID {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"notAuthorized": "User is not authorized",
		})
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"success": "Post deleted"})
}
