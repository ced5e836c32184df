package grocery

import (
	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/entities"
)

// AggregateIngredients merges the ingredient lists of the given recipes into
// one shopping list, deduplicated by ingredient name. The first occurrence of
// a name establishes the entry and its position; later occurrences with a
// non-empty amount are appended with ", "; an empty amount never overwrites
// an amount already recorded. Output order is first-seen order across the
// input sequence.
func AggregateIngredients(recipes []*entities.Recipe) []domain.AggregatedIngredient {
	index := make(map[string]int)
	merged := make([]domain.AggregatedIngredient, 0)

	for _, recipe := range recipes {
		if recipe == nil {
			continue
		}
		for _, ingredient := range recipe.Ingredients {
			if i, ok := index[ingredient.Name]; ok {
				if ingredient.Amount == "" {
					continue
				}
				if merged[i].Amount == "" {
					merged[i].Amount = ingredient.Amount
				} else {
					merged[i].Amount += ", " + ingredient.Amount
				}
				continue
			}
			index[ingredient.Name] = len(merged)
			merged = append(merged, domain.AggregatedIngredient{
				Name:   ingredient.Name,
				Amount: ingredient.Amount,
			})
		}
	}
	return merged
}
