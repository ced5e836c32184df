package grocery

import (
	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/entities"
	"Recipe-Manager-Backend/pkg/friend"
	"Recipe-Manager-Backend/pkg/recipe"
	"Recipe-Manager-Backend/pkg/user"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		GetOrCreateGroceryList(ctx context.Context, userID string) (domain.GroceryListResponse, error)
		GetVisibleGroceryLists(ctx context.Context, userID string) ([]domain.GroceryListResponse, error)
		AddRecipeToList(ctx context.Context, req domain.AddRecipeToListRequest, userID string) (domain.GroceryListResponse, error)
		RemoveRecipeFromList(ctx context.Context, listID, recipeID string, userID string) (domain.GroceryListResponse, error)
		ClearGroceryList(ctx context.Context, listID string, userID string) (domain.GroceryListResponse, error)
		AddCustomItem(ctx context.Context, listID string, req domain.AddCustomItemRequest, userID string) (domain.GroceryListResponse, error)
		RemoveCustomItem(ctx context.Context, listID, itemID string, userID string) (domain.GroceryListResponse, error)
		ToggleCustomItem(ctx context.Context, listID, itemID string, userID string) (domain.GroceryListResponse, error)
		ToggleIngredient(ctx context.Context, listID string, req domain.ToggleIngredientRequest, userID string) (domain.GroceryListResponse, error)
		ShareGroceryList(ctx context.Context, listID string, req domain.ShareGroceryListRequest, userID string) (domain.GroceryListResponse, error)
		UnshareGroceryList(ctx context.Context, listID string, req domain.UnshareGroceryListRequest, userID string) error
	}

	groceryService struct {
		groceryRepository GroceryRepository
		recipeRepository  recipe.RecipeRepository
		userRepository    user.UserRepository
		friendRepository  friend.FriendRepository
	}
)

func NewGroceryService(groceryRepository GroceryRepository, recipeRepository recipe.RecipeRepository, userRepository user.UserRepository, friendRepository friend.FriendRepository) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		recipeRepository:  recipeRepository,
		userRepository:    userRepository,
		friendRepository:  friendRepository,
	}
}

func (s *groceryService) GetOrCreateGroceryList(ctx context.Context, userID string) (domain.GroceryListResponse, error) {
	list, err := s.getOrCreateOwnList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return toGroceryListResponse(list), nil
}

func (s *groceryService) GetVisibleGroceryLists(ctx context.Context, userID string) ([]domain.GroceryListResponse, error) {
	lists, err := s.groceryRepository.GetVisibleGroceryLists(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GroceryListResponse, 0, len(lists))
	for _, list := range lists {
		result = append(result, toGroceryListResponse(list))
	}
	return result, nil
}

func (s *groceryService) AddRecipeToList(ctx context.Context, req domain.AddRecipeToListRequest, userID string) (domain.GroceryListResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListResponse{}, domain.ErrRecipeNotFound
		}
		return domain.GroceryListResponse{}, err
	}

	list, err := s.resolveTargetList(ctx, req.ListID, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	// No-op when the recipe is already on the list; checked state is left
	// untouched either way.
	if err := s.groceryRepository.AddListRecipe(ctx, list.ID.String(), req.RecipeID); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return s.reload(ctx, list.ID.String())
}

func (s *groceryService) RemoveRecipeFromList(ctx context.Context, listID, recipeID string, userID string) (domain.GroceryListResponse, error) {
	list, err := s.getAccessibleList(ctx, listID, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	if err := s.groceryRepository.RemoveListRecipe(ctx, list.ID.String(), recipeID); err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.reload(ctx, list.ID.String())
}

func (s *groceryService) ClearGroceryList(ctx context.Context, listID string, userID string) (domain.GroceryListResponse, error) {
	list, err := s.getAccessibleList(ctx, listID, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	if err := s.groceryRepository.ClearList(ctx, list.ID.String()); err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.reload(ctx, list.ID.String())
}

func (s *groceryService) AddCustomItem(ctx context.Context, listID string, req domain.AddCustomItemRequest, userID string) (domain.GroceryListResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.GroceryListResponse{}, domain.ErrMissingItemName
	}

	list, err := s.getAccessibleList(ctx, listID, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	item := &entities.GroceryCustomItem{
		ListID: list.ID,
		Name:   req.Name,
		Amount: req.Amount,
	}
	if err := s.groceryRepository.AddCustomItem(ctx, item); err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.reload(ctx, list.ID.String())
}

func (s *groceryService) RemoveCustomItem(ctx context.Context, listID, itemID string, userID string) (domain.GroceryListResponse, error) {
	list, err := s.getAccessibleList(ctx, listID, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	if err := s.groceryRepository.RemoveCustomItem(ctx, list.ID.String(), itemID); err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.reload(ctx, list.ID.String())
}

func (s *groceryService) ToggleCustomItem(ctx context.Context, listID, itemID string, userID string) (domain.GroceryListResponse, error) {
	list, err := s.getAccessibleList(ctx, listID, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	if err := s.groceryRepository.ToggleCustomItem(ctx, list.ID.String(), itemID); err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.reload(ctx, list.ID.String())
}

func (s *groceryService) ToggleIngredient(ctx context.Context, listID string, req domain.ToggleIngredientRequest, userID string) (domain.GroceryListResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.GroceryListResponse{}, domain.ErrMissingIngredientName
	}

	list, err := s.getAccessibleList(ctx, listID, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	if err := s.groceryRepository.ToggleCheckedIngredient(ctx, list.ID.String(), req.Name); err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.reload(ctx, list.ID.String())
}

func (s *groceryService) ShareGroceryList(ctx context.Context, listID string, req domain.ShareGroceryListRequest, userID string) (domain.GroceryListResponse, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	if list.OwnerID.String() != userID {
		return domain.GroceryListResponse{}, domain.ErrUnauthorizedGroceryAccess
	}

	friendUser, err := s.userRepository.GetUserByID(ctx, req.FriendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListResponse{}, domain.ErrUserNotFound
		}
		return domain.GroceryListResponse{}, err
	}
	if friendUser.ID == list.OwnerID {
		return domain.GroceryListResponse{}, domain.ErrShareListWithOwner
	}

	friends, err := s.friendRepository.AreFriends(ctx, userID, req.FriendID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	if !friends {
		return domain.GroceryListResponse{}, domain.ErrNotFriends
	}

	if list.IsSharedWith(friendUser.ID) {
		return domain.GroceryListResponse{}, domain.ErrGroceryAlreadyShared
	}
	if err := s.groceryRepository.AddListShare(ctx, listID, req.FriendID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.GroceryListResponse{}, domain.ErrGroceryAlreadyShared
		}
		return domain.GroceryListResponse{}, err
	}

	return s.reload(ctx, listID)
}

func (s *groceryService) UnshareGroceryList(ctx context.Context, listID string, req domain.UnshareGroceryListRequest, userID string) error {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	// Same two modes as recipe unsharing: owner removes a named friend, a
	// shared member removes themselves.
	target := req.FriendID
	if target == "" || target == userID {
		if !list.IsSharedWith(userUUID) {
			return domain.ErrUnauthorizedGroceryAccess
		}
		target = userID
	} else {
		if list.OwnerID != userUUID {
			return domain.ErrUnauthorizedGroceryAccess
		}
	}

	removed, err := s.groceryRepository.RemoveListShare(ctx, listID, target)
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrGroceryNotShared
	}
	return nil
}

func (s *groceryService) getOrCreateOwnList(ctx context.Context, userID string) (*entities.GroceryList, error) {
	list, err := s.groceryRepository.GetGroceryListByOwner(ctx, userID)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	created := &entities.GroceryList{OwnerID: ownerUUID}
	if err := s.groceryRepository.CreateGroceryList(ctx, created); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	// Re-read so a lost create race still returns the single surviving list.
	return s.groceryRepository.GetGroceryListByOwner(ctx, userID)
}

// resolveTargetList picks the list an operation without an explicit list id
// applies to. The caller's own list is the default only while no shared list
// is in play; once other lists are visible the choice is ambiguous and the
// explicit id is required.
func (s *groceryService) resolveTargetList(ctx context.Context, listID string, userID string) (*entities.GroceryList, error) {
	if listID != "" {
		return s.getAccessibleList(ctx, listID, userID)
	}

	shared, err := s.groceryRepository.GetSharedGroceryLists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(shared) > 0 {
		return nil, domain.ErrAmbiguousGroceryList
	}
	return s.getOrCreateOwnList(ctx, userID)
}

func (s *groceryService) getList(ctx context.Context, listID string) (*entities.GroceryList, error) {
	list, err := s.groceryRepository.GetGroceryListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryListNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *groceryService) getAccessibleList(ctx context.Context, listID string, userID string) (*entities.GroceryList, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if !list.CanAccess(userUUID) {
		return nil, domain.ErrUnauthorizedGroceryAccess
	}
	return list, nil
}

func (s *groceryService) reload(ctx context.Context, listID string) (domain.GroceryListResponse, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return toGroceryListResponse(list), nil
}

func toGroceryListResponse(list *entities.GroceryList) domain.GroceryListResponse {
	resp := domain.GroceryListResponse{
		ID:                 list.ID.String(),
		Recipes:            make([]domain.RecipeResponse, 0, len(list.Recipes)),
		CustomItems:        make([]domain.CustomItemResponse, 0, len(list.CustomItems)),
		CheckedIngredients: make([]string, 0, len(list.CheckedIngredients)),
		SharedWith:         make([]domain.UserResponse, 0, len(list.Shares)),
	}
	if list.Owner != nil {
		resp.Owner = domain.UserResponse{
			ID:    list.Owner.ID.String(),
			Name:  list.Owner.Name,
			Email: list.Owner.Email,
		}
	} else {
		resp.Owner = domain.UserResponse{ID: list.OwnerID.String()}
	}

	checked := make(map[string]bool, len(list.CheckedIngredients))
	for _, name := range list.CheckedIngredients {
		checked[name.Name] = true
		resp.CheckedIngredients = append(resp.CheckedIngredients, name.Name)
	}

	recipes := make([]*entities.Recipe, 0, len(list.Recipes))
	for _, entry := range list.Recipes {
		if entry.Recipe == nil {
			continue
		}
		recipes = append(recipes, entry.Recipe)
		resp.Recipes = append(resp.Recipes, domain.RecipeResponse{
			ID:              entry.Recipe.ID.String(),
			OwnerID:         entry.Recipe.EffectiveOwner().String(),
			Title:           entry.Recipe.Title,
			Description:     entry.Recipe.Description,
			Ingredients:     toIngredientResponses(entry.Recipe.Ingredients),
			Instructions:    entry.Recipe.Instructions,
			PrepTimeMinutes: entry.Recipe.PrepTimeMinutes,
			ImageURL:        entry.Recipe.ImageURL,
			SharedWith:      []domain.UserResponse{},
			CreatedAt:       entry.Recipe.CreatedAt,
		})
	}

	// Aggregated fresh on every read; checked flags come from the
	// name-keyed set.
	resp.Ingredients = AggregateIngredients(recipes)
	for i := range resp.Ingredients {
		resp.Ingredients[i].Checked = checked[resp.Ingredients[i].Name]
	}

	for _, item := range list.CustomItems {
		resp.CustomItems = append(resp.CustomItems, domain.CustomItemResponse{
			ID:      item.ID.String(),
			Name:    item.Name,
			Amount:  item.Amount,
			Checked: item.Checked,
		})
	}

	for _, share := range list.Shares {
		if share.User == nil {
			continue
		}
		resp.SharedWith = append(resp.SharedWith, domain.UserResponse{
			ID:    share.User.ID.String(),
			Name:  share.User.Name,
			Email: share.User.Email,
		})
	}

	return resp
}

func toIngredientResponses(ingredients entities.IngredientList) []domain.IngredientResponse {
	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, domain.IngredientResponse{
			Name:   ingredient.Name,
			Amount: ingredient.Amount,
		})
	}
	return result
}
