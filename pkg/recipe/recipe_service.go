package recipe

import (
	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/entities"
	"Recipe-Manager-Backend/internal/utils/storage"
	"Recipe-Manager-Backend/pkg/friend"
	"Recipe-Manager-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter string, userID string) ([]domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		ShareRecipe(ctx context.Context, recipeID string, req domain.ShareRecipeRequest, userID string) (domain.RecipeResponse, error)
		UnshareRecipe(ctx context.Context, recipeID string, req domain.UnshareRecipeRequest, userID string) (domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, recipeID string, image *multipart.FileHeader, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
		friendRepository friend.FriendRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userRepository user.UserRepository, friendRepository friend.FriendRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
		friendRepository: friendRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if strings.TrimSpace(req.Title) == "" || len(req.Ingredients) == 0 || strings.TrimSpace(req.Instructions) == "" {
		return domain.RecipeResponse{}, domain.ErrMissingRecipeFields
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	ingredients := make(entities.IngredientList, 0, len(req.Ingredients))
	for _, ingredient := range req.Ingredients {
		ingredients = append(ingredients, entities.Ingredient{
			Name:   ingredient.Name,
			Amount: ingredient.Amount,
		})
	}

	recipe := &entities.Recipe{
		UserID:          userUUID,
		OwnerID:         &userUUID,
		Title:           req.Title,
		Description:     req.Description,
		Ingredients:     ingredients,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}
	if recipe.EffectiveOwner() != userUUID && !recipe.IsSharedWith(userUUID) {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter string, userID string) ([]domain.RecipeResponse, error) {
	var (
		recipes []*entities.Recipe
		err     error
	)
	switch filter {
	case domain.RecipeFilterMine, "":
		recipes, err = s.recipeRepository.GetOwnedRecipes(ctx, userID)
	case domain.RecipeFilterShared:
		recipes, err = s.recipeRepository.GetSharedRecipes(ctx, userID)
	case domain.RecipeFilterAll:
		recipes, err = s.recipeRepository.GetVisibleRecipes(ctx, userID)
	default:
		return nil, domain.ErrInvalidRecipeFilter
	}
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return domain.RecipeResponse{}, domain.ErrMissingRecipeFields
		}
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Ingredients != nil {
		ingredients := make(entities.IngredientList, 0, len(req.Ingredients))
		for _, ingredient := range req.Ingredients {
			ingredients = append(ingredients, entities.Ingredient{
				Name:   ingredient.Name,
				Amount: ingredient.Amount,
			})
		}
		recipe.Ingredients = ingredients
	}
	if req.Instructions != nil {
		if strings.TrimSpace(*req.Instructions) == "" {
			return domain.RecipeResponse{}, domain.ErrMissingRecipeFields
		}
		recipe.Instructions = *req.Instructions
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.getOwnedRecipe(ctx, recipeID, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) ShareRecipe(ctx context.Context, recipeID string, req domain.ShareRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	friendUser, err := s.userRepository.GetUserByID(ctx, req.FriendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrUserNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if friendUser.ID == recipe.EffectiveOwner() {
		return domain.RecipeResponse{}, domain.ErrShareWithOwner
	}

	friends, err := s.friendRepository.AreFriends(ctx, userID, req.FriendID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if !friends {
		return domain.RecipeResponse{}, domain.ErrNotFriends
	}

	if recipe.IsSharedWith(friendUser.ID) {
		return domain.RecipeResponse{}, domain.ErrRecipeAlreadyShared
	}
	if err := s.recipeRepository.AddShare(ctx, recipeID, req.FriendID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeAlreadyShared
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipe(ctx, recipeID, userID)
}

func (s *recipeService) UnshareRecipe(ctx context.Context, recipeID string, req domain.UnshareRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	// Two modes: the owner removes a named friend, or a shared member
	// (friend id omitted or their own) removes themselves.
	target := req.FriendID
	if target == "" || target == userID {
		if !recipe.IsSharedWith(userUUID) {
			return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
		}
		target = userID
	} else {
		if recipe.EffectiveOwner() != userUUID {
			return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
		}
	}

	removed, err := s.recipeRepository.RemoveShare(ctx, recipeID, target)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if removed == 0 {
		return domain.RecipeResponse{}, domain.ErrRecipeNotShared
	}

	recipe, err = s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, image *multipart.FileHeader, userID string) (string, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return "", err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("recipe-%s", recipe.ID.String()),
		image,
		"recipes",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}

func (s *recipeService) getRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.EffectiveOwner().String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{
			Name:   ingredient.Name,
			Amount: ingredient.Amount,
		})
	}

	sharedWith := make([]domain.UserResponse, 0, len(recipe.Shares))
	for _, share := range recipe.Shares {
		if share.User == nil {
			continue
		}
		sharedWith = append(sharedWith, domain.UserResponse{
			ID:    share.User.ID.String(),
			Name:  share.User.Name,
			Email: share.User.Email,
		})
	}

	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		OwnerID:         recipe.EffectiveOwner().String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Ingredients:     ingredients,
		Instructions:    recipe.Instructions,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		ImageURL:        recipe.ImageURL,
		SharedWith:      sharedWith,
		CreatedAt:       recipe.CreatedAt,
	}
}
