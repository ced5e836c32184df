package domain

import (
	"errors"
	"time"
)

const (
	RecipeFilterMine   = "mine"
	RecipeFilterShared = "shared"
	RecipeFilterAll    = "all"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessGetRecipe     = "success get recipe"
	MessageSuccessCreateRecipe  = "recipe created successfully"
	MessageSuccessUpdateRecipe  = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessShareRecipe   = "recipe shared successfully"
	MessageSuccessUnshareRecipe = "recipe unshared successfully"
	MessageSuccessUploadImage   = "recipe image uploaded successfully"

	MessageFailedGetRecipes    = "failed to get recipes"
	MessageFailedGetRecipe     = "failed to get recipe"
	MessageFailedCreateRecipe  = "failed to create recipe"
	MessageFailedUpdateRecipe  = "failed to update recipe"
	MessageFailedDeleteRecipe  = "failed to delete recipe"
	MessageFailedShareRecipe   = "failed to share recipe"
	MessageFailedUnshareRecipe = "failed to unshare recipe"
	MessageFailedUploadImage   = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrMissingRecipeFields      = errors.New("title, ingredients and instructions are required")
	ErrRecipeAlreadyShared      = errors.New("recipe already shared with this user")
	ErrRecipeNotShared          = errors.New("recipe is not shared with this user")
	ErrShareWithOwner           = errors.New("cannot share a recipe with its owner")
	ErrInvalidRecipeFilter      = errors.New("filter must be one of mine, shared, all")
)

type (
	IngredientRequest struct {
		Name   string `json:"name" validate:"required"`
		Amount string `json:"amount"`
	}

	CreateRecipeRequest struct {
		Title           string              `json:"title" validate:"required"`
		Description     string              `json:"description" validate:"required"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		Instructions    string              `json:"instructions" validate:"required"`
		PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"required,gte=1"`
	}

	UpdateRecipeRequest struct {
		Title           *string             `json:"title,omitempty"`
		Description     *string             `json:"description,omitempty"`
		Ingredients     []IngredientRequest `json:"ingredients,omitempty" validate:"omitempty,min=1,dive"`
		Instructions    *string             `json:"instructions,omitempty"`
		PrepTimeMinutes *int                `json:"prep_time_minutes,omitempty" validate:"omitempty,gte=1"`
	}

	ShareRecipeRequest struct {
		FriendID string `json:"friend_id" validate:"required,uuid"`
	}

	// UnshareRecipeRequest carries an optional friend id. The owner passes
	// the friend to remove; a shared member omits it to remove themselves.
	UnshareRecipeRequest struct {
		FriendID string `json:"friend_id,omitempty" validate:"omitempty,uuid"`
	}

	IngredientResponse struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	}

	RecipeResponse struct {
		ID              string               `json:"id"`
		OwnerID         string               `json:"owner_id"`
		Title           string               `json:"title"`
		Description     string               `json:"description"`
		Ingredients     []IngredientResponse `json:"ingredients"`
		Instructions    string               `json:"instructions"`
		PrepTimeMinutes int                  `json:"prep_time_minutes"`
		ImageURL        string               `json:"image_url,omitempty"`
		SharedWith      []UserResponse       `json:"shared_with"`
		CreatedAt       time.Time            `json:"created_at"`
	}
)
