package handlers

import (
	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/internal/api/presenters"
	"Recipe-Manager-Backend/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		GetGroceryList(c *fiber.Ctx) error
		GetGroceryLists(c *fiber.Ctx) error
		AddRecipeToList(c *fiber.Ctx) error
		RemoveRecipeFromList(c *fiber.Ctx) error
		ClearGroceryList(c *fiber.Ctx) error
		AddCustomItem(c *fiber.Ctx) error
		RemoveCustomItem(c *fiber.Ctx) error
		ToggleCustomItem(c *fiber.Ctx) error
		ToggleIngredient(c *fiber.Ctx) error
		ShareGroceryList(c *fiber.Ctx) error
		UnshareGroceryList(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) GetGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.GetOrCreateGroceryList(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedGetGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryList)
}

func (h *groceryHandler) GetGroceryLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.GetVisibleGroceryLists(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedGetGroceryLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryLists)
}

func (h *groceryHandler) AddRecipeToList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.AddRecipeToListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.groceryService.AddRecipeToList(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedAddRecipeToList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddRecipeToList)
}

func (h *groceryHandler) RemoveRecipeFromList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")
	recipeID := c.Params("recipeId")

	res, err := h.groceryService.RemoveRecipeFromList(c.Context(), listID, recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedRemoveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveRecipe)
}

func (h *groceryHandler) ClearGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")

	res, err := h.groceryService.ClearGroceryList(c.Context(), listID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedClearGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearGroceryList)
}

func (h *groceryHandler) AddCustomItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")

	req := new(domain.AddCustomItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.groceryService.AddCustomItem(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedAddCustomItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCustomItem)
}

func (h *groceryHandler) RemoveCustomItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")
	itemID := c.Params("itemId")

	res, err := h.groceryService.RemoveCustomItem(c.Context(), listID, itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedRemoveCustomItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveCustomItem)
}

func (h *groceryHandler) ToggleCustomItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")
	itemID := c.Params("itemId")

	res, err := h.groceryService.ToggleCustomItem(c.Context(), listID, itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedToggleCustomItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleCustomItem)
}

func (h *groceryHandler) ToggleIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")

	req := new(domain.ToggleIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.groceryService.ToggleIngredient(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedToggleIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleIngredient)
}

func (h *groceryHandler) ShareGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")

	req := new(domain.ShareGroceryListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.groceryService.ShareGroceryList(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedShareGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessShareGroceryList)
}

func (h *groceryHandler) UnshareGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")

	req := new(domain.UnshareGroceryListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.groceryService.UnshareGroceryList(c.Context(), listID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusForError(err), domain.MessageFailedUnshareGrocery, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnshareGrocery)
}
