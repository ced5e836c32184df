package entities

import (
	"time"

	"github.com/google/uuid"
)

type GroceryList struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	// One list per owner; the unique index makes concurrent get-or-create safe.
	OwnerID uuid.UUID `gorm:"uniqueIndex" json:"owner_id"`

	Owner              *User                       `gorm:"foreignKey:OwnerID"`
	Recipes            []*GroceryListRecipe        `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	CustomItems        []*GroceryCustomItem        `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	Shares             []*GroceryListShare         `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	CheckedIngredients []*GroceryCheckedIngredient `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// IsSharedWith reports whether userID is in the list's shared set.
// Shares must be preloaded.
func (l *GroceryList) IsSharedWith(userID uuid.UUID) bool {
	for _, share := range l.Shares {
		if share.UserID == userID {
			return true
		}
	}
	return false
}

// CanAccess reports whether userID owns the list or is shared on it.
func (l *GroceryList) CanAccess(userID uuid.UUID) bool {
	return l.OwnerID == userID || l.IsSharedWith(userID)
}

type GroceryListRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListID    uuid.UUID `gorm:"uniqueIndex:idx_grocery_list_recipe" json:"list_id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_grocery_list_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	List   *GroceryList `gorm:"foreignKey:ListID"`
	Recipe *Recipe      `gorm:"foreignKey:RecipeID"`
}

type GroceryCustomItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListID  uuid.UUID `json:"list_id"`
	Name    string    `json:"name"`
	Amount  string    `json:"amount"`
	Checked bool      `json:"checked"`

	List *GroceryList `gorm:"foreignKey:ListID"`
	Timestamp
}

type GroceryListShare struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListID    uuid.UUID `gorm:"uniqueIndex:idx_grocery_list_share" json:"list_id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_grocery_list_share" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	List *GroceryList `gorm:"foreignKey:ListID"`
	User *User        `gorm:"foreignKey:UserID"`
}

// GroceryCheckedIngredient marks an aggregated ingredient name as checked off.
// Keyed by name: same-named ingredients from different recipes share one
// toggle. The whole set is cleared whenever the list's recipe set changes.
type GroceryCheckedIngredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListID    uuid.UUID `gorm:"uniqueIndex:idx_grocery_checked_name" json:"list_id"`
	Name      string    `gorm:"uniqueIndex:idx_grocery_checked_name" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	List *GroceryList `gorm:"foreignKey:ListID"`
}
