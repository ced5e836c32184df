package handlers

import (
	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/internal/api/presenters"
	"Recipe-Manager-Backend/pkg/friend"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FriendHandler interface {
		SendFriendRequest(c *fiber.Ctx) error
		GetFriendRequests(c *fiber.Ctx) error
		AcceptFriendRequest(c *fiber.Ctx) error
		RejectFriendRequest(c *fiber.Ctx) error
		GetFriends(c *fiber.Ctx) error
		RemoveFriend(c *fiber.Ctx) error
	}

	friendHandler struct {
		friendService friend.FriendService
		validator     *validator.Validate
	}
)

func NewFriendHandler(friendService friend.FriendService, validator *validator.Validate) FriendHandler {
	return &friendHandler{
		friendService: friendService,
		validator:     validator,
	}
}

func (h *friendHandler) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SendFriendRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.friendService.SendFriendRequest(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedSendFriendRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSendFriendRequest)
}

func (h *friendHandler) GetFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.friendService.GetFriendRequests(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedGetFriendRequests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFriendRequests)
}

func (h *friendHandler) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	requestID := c.Params("id")

	res, err := h.friendService.AcceptFriendRequest(c.Context(), requestID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedAcceptFriendRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAcceptFriendRequest)
}

func (h *friendHandler) RejectFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	requestID := c.Params("id")

	if err := h.friendService.RejectFriendRequest(c.Context(), requestID, userID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedRejectFriendRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectFriendRequest)
}

func (h *friendHandler) GetFriends(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.friendService.GetFriends(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedGetFriends, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFriends)
}

func (h *friendHandler) RemoveFriend(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	friendID := c.Params("id")

	if err := h.friendService.RemoveFriend(c.Context(), friendID, userID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedRemoveFriend, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFriend)
}
