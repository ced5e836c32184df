package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// IngredientList keeps the authored ingredient order in a single jsonb column.
type IngredientList []Ingredient

func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IngredientList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return errors.New("unsupported type for IngredientList")
	}
}

type Recipe struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	// UserID is the legacy single-owner column. OwnerID supersedes it; rows
	// written before the sharing model have only UserID set.
	UserID          uuid.UUID      `json:"user_id"`
	OwnerID         *uuid.UUID     `gorm:"type:uuid" json:"owner_id,omitempty"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Ingredients     IngredientList `gorm:"type:jsonb" json:"ingredients"`
	Instructions    string         `gorm:"type:text" json:"instructions"`
	PrepTimeMinutes int            `json:"prep_time_minutes"`
	ImageURL        string         `json:"image_url,omitempty"`

	User   *User          `gorm:"foreignKey:UserID"`
	Owner  *User          `gorm:"foreignKey:OwnerID"`
	Shares []*RecipeShare `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// EffectiveOwner resolves the owning user, preferring the new owner column
// and falling back to the legacy user column. Every access-control decision
// goes through this so old and new rows behave identically.
func (r *Recipe) EffectiveOwner() uuid.UUID {
	if r.OwnerID != nil {
		return *r.OwnerID
	}
	return r.UserID
}

// IsSharedWith reports whether userID is in the recipe's shared set.
// Shares must be preloaded.
func (r *Recipe) IsSharedWith(userID uuid.UUID) bool {
	for _, share := range r.Shares {
		if share.UserID == userID {
			return true
		}
	}
	return false
}

type RecipeShare struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_recipe_share_member" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_recipe_share_member" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
}
