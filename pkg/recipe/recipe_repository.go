package recipe

import (
	"Recipe-Manager-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// effectiveOwnerExpr resolves ownership in SQL the same way
// entities.Recipe.EffectiveOwner does in code: the new owner column wins,
// legacy rows fall back to user_id.
const effectiveOwnerExpr = "COALESCE(recipes.owner_id, recipes.user_id)"

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetOwnedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetSharedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetVisibleRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		AddShare(ctx context.Context, recipeID, userID string) error
		RemoveShare(ctx context.Context, recipeID, userID string) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Shares.User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetOwnedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Shares.User").
		Where(effectiveOwnerExpr+" = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetSharedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Shares.User").
		Joins("JOIN recipe_shares ON recipes.id = recipe_shares.recipe_id").
		Where("recipe_shares.user_id = ? AND "+effectiveOwnerExpr+" <> ?", userID, userID).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetVisibleRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Shares.User").
		Distinct("recipes.*").
		Joins("LEFT JOIN recipe_shares ON recipes.id = recipe_shares.recipe_id").
		Where(effectiveOwnerExpr+" = ? OR recipe_shares.user_id = ?", userID, userID).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

// AddShare inserts share membership with an on-conflict no-op, so concurrent
// shares of distinct friends never race into duplicate rows. A duplicate of
// the same friend surfaces as gorm.ErrDuplicatedKey.
func (r *recipeRepository) AddShare(ctx context.Context, recipeID, userID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	share := entities.RecipeShare{
		RecipeID: recipeUUID,
		UserID:   userUUID,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&share)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func (r *recipeRepository) RemoveShare(ctx context.Context, recipeID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.RecipeShare{})
	return res.RowsAffected, res.Error
}
