package grocery

import (
	"Recipe-Manager-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	GroceryRepository interface {
		CreateGroceryList(ctx context.Context, list *entities.GroceryList) error
		GetGroceryListByID(ctx context.Context, id string) (*entities.GroceryList, error)
		GetGroceryListByOwner(ctx context.Context, ownerID string) (*entities.GroceryList, error)
		GetVisibleGroceryLists(ctx context.Context, userID string) ([]*entities.GroceryList, error)
		GetSharedGroceryLists(ctx context.Context, userID string) ([]*entities.GroceryList, error)
		AddListRecipe(ctx context.Context, listID, recipeID string) error
		RemoveListRecipe(ctx context.Context, listID, recipeID string) error
		ClearList(ctx context.Context, listID string) error
		AddCustomItem(ctx context.Context, item *entities.GroceryCustomItem) error
		RemoveCustomItem(ctx context.Context, listID, itemID string) error
		ToggleCustomItem(ctx context.Context, listID, itemID string) error
		ToggleCheckedIngredient(ctx context.Context, listID, name string) error
		AddListShare(ctx context.Context, listID, userID string) error
		RemoveListShare(ctx context.Context, listID, userID string) (int64, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

// CreateGroceryList inserts with an on-conflict no-op against the owner_id
// unique index; a concurrent get-or-create for the same owner cannot produce
// two lists. RowsAffected == 0 means another caller won, reported as
// gorm.ErrDuplicatedKey so the service re-reads.
func (r *groceryRepository) CreateGroceryList(ctx context.Context, list *entities.GroceryList) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "owner_id"}}, DoNothing: true}).
		Create(list)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func (r *groceryRepository) GetGroceryListByID(ctx context.Context, id string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.listQuery(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) GetGroceryListByOwner(ctx context.Context, ownerID string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.listQuery(ctx).Where("owner_id = ?", ownerID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) GetVisibleGroceryLists(ctx context.Context, userID string) ([]*entities.GroceryList, error) {
	var lists []*entities.GroceryList
	if err := r.listQuery(ctx).
		Distinct("grocery_lists.*").
		Joins("LEFT JOIN grocery_list_shares ON grocery_lists.id = grocery_list_shares.list_id").
		Where("grocery_lists.owner_id = ? OR grocery_list_shares.user_id = ?", userID, userID).
		Order("grocery_lists.created_at asc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *groceryRepository) GetSharedGroceryLists(ctx context.Context, userID string) ([]*entities.GroceryList, error) {
	var lists []*entities.GroceryList
	if err := r.listQuery(ctx).
		Joins("JOIN grocery_list_shares ON grocery_lists.id = grocery_list_shares.list_id").
		Where("grocery_list_shares.user_id = ?", userID).
		Order("grocery_lists.created_at asc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// AddListRecipe is a no-op when the recipe is already on the list.
func (r *groceryRepository) AddListRecipe(ctx context.Context, listID, recipeID string) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	entry := entities.GroceryListRecipe{
		ListID:   listUUID,
		RecipeID: recipeUUID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "list_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(&entry).Error
}

// RemoveListRecipe drops the recipe and clears the checked-ingredient set in
// one transaction; checked state is keyed by name and cannot survive a
// recipe-set change.
func (r *groceryRepository) RemoveListRecipe(ctx context.Context, listID, recipeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("list_id = ? AND recipe_id = ?", listID, recipeID).
			Delete(&entities.GroceryListRecipe{}).Error; err != nil {
			return err
		}
		return tx.
			Where("list_id = ?", listID).
			Delete(&entities.GroceryCheckedIngredient{}).Error
	})
}

func (r *groceryRepository) ClearList(ctx context.Context, listID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", listID).Delete(&entities.GroceryListRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", listID).Delete(&entities.GroceryCustomItem{}).Error; err != nil {
			return err
		}
		return tx.Where("list_id = ?", listID).Delete(&entities.GroceryCheckedIngredient{}).Error
	})
}

func (r *groceryRepository) AddCustomItem(ctx context.Context, item *entities.GroceryCustomItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// RemoveCustomItem and ToggleCustomItem are deliberately lenient: a missing
// item id is a no-op, not an error.
func (r *groceryRepository) RemoveCustomItem(ctx context.Context, listID, itemID string) error {
	return r.db.WithContext(ctx).
		Where("list_id = ? AND id = ?", listID, itemID).
		Delete(&entities.GroceryCustomItem{}).Error
}

func (r *groceryRepository) ToggleCustomItem(ctx context.Context, listID, itemID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.GroceryCustomItem{}).
		Where("list_id = ? AND id = ?", listID, itemID).
		Update("checked", gorm.Expr("NOT checked")).Error
}

// ToggleCheckedIngredient flips set membership: insert wins when the name is
// absent, otherwise the existing row is deleted. The unique index on
// (list_id, name) keeps concurrent toggles from duplicating membership.
func (r *groceryRepository) ToggleCheckedIngredient(ctx context.Context, listID, name string) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return err
	}

	entry := entities.GroceryCheckedIngredient{
		ListID: listUUID,
		Name:   name,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "list_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(&entry)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).
			Where("list_id = ? AND name = ?", listID, name).
			Delete(&entities.GroceryCheckedIngredient{}).Error
	}
	return nil
}

func (r *groceryRepository) AddListShare(ctx context.Context, listID, userID string) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	share := entities.GroceryListShare{
		ListID: listUUID,
		UserID: userUUID,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "list_id"}, {Name: "user_id"}},
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

func (r *groceryRepository) RemoveListShare(ctx context.Context, listID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("list_id = ? AND user_id = ?", listID, userID).
		Delete(&entities.GroceryListShare{})
	return res.RowsAffected, res.Error
}

func (r *groceryRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Recipes.Recipe").
		Preload("CustomItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("grocery_custom_items.created_at asc")
		}).
		Preload("Shares.User").
		Preload("CheckedIngredients")
}
