package server

import (
	"ripple/internal/models"
	"ripple/internal/service"
	"ripple/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UpdateAccount handles PATCH /api/account/update
func (s *Server) UpdateAccount(c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"userName"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.UserName == "" && req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Nothing to update"))
	}
	if req.UserName != "" {
		if err := validation.ValidateHandle(req.UserName); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
	}
	if req.Password != "" {
		if err := validation.ValidatePassword(req.Password); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
	}

	user, err := s.accountService.UpdateAccount(c.Context(), service.UpdateAccountInput{
		UserID:   currentUserID(c),
		Handle:   req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.View(),
	})
}

// GetAccount handles GET /api/account/:id
func (s *Server) GetAccount(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.accountService.GetAccount(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user.View())
}

// FollowUnfollow handles PUT /api/follow/:followeeId
func (s *Server) FollowUnfollow(c *fiber.Ctx) error {
	followeeID, err := s.parseID(c, "followeeId")
	if err != nil {
		return nil
	}

	result, err := s.accountService.ToggleFollow(c.Context(), currentUserID(c), followeeID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
