package domain

import (
	"errors"
)

var (
	MessageSuccessGetGroceryList    = "success get grocery list"
	MessageSuccessGetGroceryLists   = "success get grocery lists"
	MessageSuccessAddRecipeToList   = "recipe added to grocery list"
	MessageSuccessRemoveRecipe      = "recipe removed from grocery list"
	MessageSuccessClearGroceryList  = "grocery list cleared"
	MessageSuccessAddCustomItem     = "custom item added"
	MessageSuccessRemoveCustomItem  = "custom item removed"
	MessageSuccessToggleCustomItem  = "custom item toggled"
	MessageSuccessToggleIngredient  = "ingredient toggled"
	MessageSuccessShareGroceryList  = "grocery list shared successfully"
	MessageSuccessUnshareGrocery    = "grocery list unshared successfully"

	MessageFailedGetGroceryList   = "failed to get grocery list"
	MessageFailedGetGroceryLists  = "failed to get grocery lists"
	MessageFailedAddRecipeToList  = "failed to add recipe to grocery list"
	MessageFailedRemoveRecipe     = "failed to remove recipe from grocery list"
	MessageFailedClearGroceryList = "failed to clear grocery list"
	MessageFailedAddCustomItem    = "failed to add custom item"
	MessageFailedRemoveCustomItem = "failed to remove custom item"
	MessageFailedToggleCustomItem = "failed to toggle custom item"
	MessageFailedToggleIngredient = "failed to toggle ingredient"
	MessageFailedShareGroceryList = "failed to share grocery list"
	MessageFailedUnshareGrocery   = "failed to unshare grocery list"

	ErrGroceryListNotFound       = errors.New("grocery list not found")
	ErrUnauthorizedGroceryAccess = errors.New("unauthorized access to grocery list")
	ErrAmbiguousGroceryList      = errors.New("multiple grocery lists visible, list_id is required")
	ErrMissingItemName           = errors.New("item name is required")
	ErrMissingIngredientName     = errors.New("ingredient name is required")
	ErrGroceryAlreadyShared      = errors.New("grocery list already shared with this user")
	ErrGroceryNotShared          = errors.New("grocery list is not shared with this user")
	ErrShareListWithOwner        = errors.New("cannot share a grocery list with its owner")
)

type (
	AddRecipeToListRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		// Optional target list. Required whenever more than one list is
		// visible to the caller.
		ListID string `json:"list_id,omitempty" validate:"omitempty,uuid"`
	}

	AddCustomItemRequest struct {
		Name   string `json:"name" validate:"required"`
		Amount string `json:"amount"`
	}

	ToggleIngredientRequest struct {
		Name string `json:"name" validate:"required"`
	}

	ShareGroceryListRequest struct {
		FriendID string `json:"friend_id" validate:"required,uuid"`
	}

	UnshareGroceryListRequest struct {
		FriendID string `json:"friend_id,omitempty" validate:"omitempty,uuid"`
	}

	CustomItemResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Amount  string `json:"amount"`
		Checked bool   `json:"checked"`
	}

	AggregatedIngredient struct {
		Name    string `json:"name"`
		Amount  string `json:"amount"`
		Checked bool   `json:"checked"`
	}

	GroceryListResponse struct {
		ID                 string                 `json:"id"`
		Owner              UserResponse           `json:"owner"`
		Recipes            []RecipeResponse       `json:"recipes"`
		CustomItems        []CustomItemResponse   `json:"custom_items"`
		Ingredients        []AggregatedIngredient `json:"ingredients"`
		CheckedIngredients []string               `json:"checked_ingredients"`
		SharedWith         []UserResponse         `json:"shared_with"`
	}
)
