package recipe

import (
	"context"
	"testing"

	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

// fakeFriendRepository only tracks accepted pairs; that is all the recipe
// service consults.
type fakeFriendRepository struct {
	pairs map[string]bool
}

func (r *fakeFriendRepository) befriend(a, b uuid.UUID) {
	r.pairs[entities.FriendPairKey(a, b)] = true
}

func (r *fakeFriendRepository) CreateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	return nil
}

func (r *fakeFriendRepository) GetFriendRequestByID(ctx context.Context, id string) (*entities.FriendRequest, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFriendRepository) GetFriendRequestBetween(ctx context.Context, userID, otherUserID string) (*entities.FriendRequest, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFriendRepository) GetPendingRequestsFor(ctx context.Context, recipientID string) ([]*entities.FriendRequest, error) {
	return nil, nil
}

func (r *fakeFriendRepository) UpdateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	return nil
}

func (r *fakeFriendRepository) DeleteFriendRequest(ctx context.Context, id string) error {
	return nil
}

func (r *fakeFriendRepository) GetAcceptedFriendships(ctx context.Context, userID string) ([]*entities.FriendRequest, error) {
	return nil, nil
}

func (r *fakeFriendRepository) DeleteAcceptedBetween(ctx context.Context, userID, otherUserID string) (int64, error) {
	return 0, nil
}

func (r *fakeFriendRepository) AreFriends(ctx context.Context, userID, otherUserID string) (bool, error) {
	a, err := uuid.Parse(userID)
	if err != nil {
		return false, err
	}
	b, err := uuid.Parse(otherUserID)
	if err != nil {
		return false, err
	}
	return r.pairs[entities.FriendPairKey(a, b)], nil
}

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
	users   map[string]*entities.User
}

func newFakeRecipeRepository(users map[string]*entities.User) *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes: make(map[string]*entities.Recipe),
		users:   users,
	}
}

func (r *fakeRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	if recipe, ok := r.recipes[id]; ok {
		return recipe, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRecipeRepository) GetOwnedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var result []*entities.Recipe
	for _, recipe := range r.recipes {
		if recipe.EffectiveOwner().String() == userID {
			result = append(result, recipe)
		}
	}
	return result, nil
}

func (r *fakeRecipeRepository) GetSharedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	var result []*entities.Recipe
	for _, recipe := range r.recipes {
		if recipe.EffectiveOwner() != userUUID && recipe.IsSharedWith(userUUID) {
			result = append(result, recipe)
		}
	}
	return result, nil
}

func (r *fakeRecipeRepository) GetVisibleRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	var result []*entities.Recipe
	for _, recipe := range r.recipes {
		if recipe.EffectiveOwner() == userUUID || recipe.IsSharedWith(userUUID) {
			result = append(result, recipe)
		}
	}
	return result, nil
}

func (r *fakeRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	delete(r.recipes, id)
	return nil
}

func (r *fakeRecipeRepository) AddShare(ctx context.Context, recipeID, userID string) error {
	recipe, ok := r.recipes[recipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	if recipe.IsSharedWith(userUUID) {
		return gorm.ErrDuplicatedKey
	}
	recipe.Shares = append(recipe.Shares, &entities.RecipeShare{
		RecipeID: recipe.ID,
		UserID:   userUUID,
		User:     r.users[userID],
	})
	return nil
}

func (r *fakeRecipeRepository) RemoveShare(ctx context.Context, recipeID, userID string) (int64, error) {
	recipe, ok := r.recipes[recipeID]
	if !ok {
		return 0, nil
	}
	var removed int64
	kept := recipe.Shares[:0]
	for _, share := range recipe.Shares {
		if share.UserID.String() == userID {
			removed++
			continue
		}
		kept = append(kept, share)
	}
	recipe.Shares = kept
	return removed, nil
}

type recipeFixture struct {
	service RecipeService
	repo    *fakeRecipeRepository
	friends *fakeFriendRepository
	owner   *entities.User
	friend  *entities.User
}

func newRecipeFixture() *recipeFixture {
	owner := &entities.User{ID: uuid.New(), Name: "Olivia", Email: "olivia@example.com"}
	friend := &entities.User{ID: uuid.New(), Name: "Frank", Email: "frank@example.com"}
	users := &fakeUserRepository{users: map[string]*entities.User{
		owner.ID.String():  owner,
		friend.ID.String(): friend,
	}}
	repo := newFakeRecipeRepository(users.users)
	friends := &fakeFriendRepository{pairs: make(map[string]bool)}
	return &recipeFixture{
		service: NewRecipeService(repo, users, friends, nil),
		repo:    repo,
		friends: friends,
		owner:   owner,
		friend:  friend,
	}
}

func validCreateRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:       "Pancakes",
		Description: "Fluffy breakfast pancakes",
		Ingredients: []domain.IngredientRequest{
			{Name: "flour", Amount: "200g"},
			{Name: "egg", Amount: "2"},
		},
		Instructions:    "Mix and fry.",
		PrepTimeMinutes: 20,
	}
}

func TestCreateRecipe_SetsBothOwnerColumns(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()

	res, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID.String(), res.OwnerID)

	stored := f.repo.recipes[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, f.owner.ID, stored.UserID)
	require.NotNil(t, stored.OwnerID)
	assert.Equal(t, f.owner.ID, *stored.OwnerID)
}

func TestCreateRecipe_MissingFields(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()

	req := validCreateRequest()
	req.Title = "   "
	_, err := f.service.CreateRecipe(ctx, req, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrMissingRecipeFields)

	req = validCreateRequest()
	req.Ingredients = nil
	_, err = f.service.CreateRecipe(ctx, req, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrMissingRecipeFields)
}

func TestGetRecipe_LegacyOwnerColumn(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()

	// A row written before the sharing model has only user_id set.
	legacy := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       f.owner.ID,
		Title:        "Grandma's stew",
		Ingredients:  entities.IngredientList{{Name: "beef", Amount: "500g"}},
		Instructions: "Simmer for hours.",
	}
	f.repo.recipes[legacy.ID.String()] = legacy

	res, err := f.service.GetRecipe(ctx, legacy.ID.String(), f.owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID.String(), res.OwnerID)

	_, err = f.service.GetRecipe(ctx, legacy.ID.String(), f.friend.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	// Legacy rows accept updates from their effective owner.
	title := "Grandma's beef stew"
	updated, err := f.service.UpdateRecipe(ctx, legacy.ID.String(), domain.UpdateRecipeRequest{Title: &title}, f.owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestShareRecipe(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)

	// Sharing requires an accepted friendship.
	_, err = f.service.ShareRecipe(ctx, created.ID, domain.ShareRecipeRequest{FriendID: f.friend.ID.String()}, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFriends)

	f.friends.befriend(f.owner.ID, f.friend.ID)

	res, err := f.service.ShareRecipe(ctx, created.ID, domain.ShareRecipeRequest{FriendID: f.friend.ID.String()}, f.owner.ID.String())
	require.NoError(t, err)
	require.Len(t, res.SharedWith, 1)
	assert.Equal(t, f.friend.ID.String(), res.SharedWith[0].ID)

	// Sharing twice is a conflict.
	_, err = f.service.ShareRecipe(ctx, created.ID, domain.ShareRecipeRequest{FriendID: f.friend.ID.String()}, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeAlreadyShared)

	// The shared member can read but not share further.
	_, err = f.service.GetRecipe(ctx, created.ID, f.friend.ID.String())
	assert.NoError(t, err)
	_, err = f.service.ShareRecipe(ctx, created.ID, domain.ShareRecipeRequest{FriendID: f.owner.ID.String()}, f.friend.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestShareRecipe_WithOwner(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)

	_, err = f.service.ShareRecipe(ctx, created.ID, domain.ShareRecipeRequest{FriendID: f.owner.ID.String()}, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrShareWithOwner)
}

func TestUnshareRecipe_OwnerRemovesFriend(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()
	f.friends.befriend(f.owner.ID, f.friend.ID)

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)
	_, err = f.service.ShareRecipe(ctx, created.ID, domain.ShareRecipeRequest{FriendID: f.friend.ID.String()}, f.owner.ID.String())
	require.NoError(t, err)

	res, err := f.service.UnshareRecipe(ctx, created.ID, domain.UnshareRecipeRequest{FriendID: f.friend.ID.String()}, f.owner.ID.String())
	require.NoError(t, err)
	assert.Empty(t, res.SharedWith)

	// Removing again: nothing left to remove.
	_, err = f.service.UnshareRecipe(ctx, created.ID, domain.UnshareRecipeRequest{FriendID: f.friend.ID.String()}, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotShared)
}

func TestUnshareRecipe_MemberRemovesThemselves(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()
	f.friends.befriend(f.owner.ID, f.friend.ID)

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)
	_, err = f.service.ShareRecipe(ctx, created.ID, domain.ShareRecipeRequest{FriendID: f.friend.ID.String()}, f.owner.ID.String())
	require.NoError(t, err)

	// Friend id omitted: the caller removes their own membership.
	res, err := f.service.UnshareRecipe(ctx, created.ID, domain.UnshareRecipeRequest{}, f.friend.ID.String())
	require.NoError(t, err)
	assert.Empty(t, res.SharedWith)

	_, err = f.service.GetRecipe(ctx, created.ID, f.friend.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestUnshareRecipe_NonMemberCannotSelfRemove(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)

	_, err = f.service.UnshareRecipe(ctx, created.ID, domain.UnshareRecipeRequest{}, f.friend.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestGetRecipes_Filters(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()
	f.friends.befriend(f.owner.ID, f.friend.ID)

	mine, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)

	theirs := validCreateRequest()
	theirs.Title = "Omelette"
	shared, err := f.service.CreateRecipe(ctx, theirs, f.friend.ID.String())
	require.NoError(t, err)
	_, err = f.service.ShareRecipe(ctx, shared.ID, domain.ShareRecipeRequest{FriendID: f.owner.ID.String()}, f.friend.ID.String())
	require.NoError(t, err)

	owned, err := f.service.GetRecipes(ctx, domain.RecipeFilterMine, f.owner.ID.String())
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.ID, owned[0].ID)

	sharedWithMe, err := f.service.GetRecipes(ctx, domain.RecipeFilterShared, f.owner.ID.String())
	require.NoError(t, err)
	require.Len(t, sharedWithMe, 1)
	assert.Equal(t, shared.ID, sharedWithMe[0].ID)

	all, err := f.service.GetRecipes(ctx, domain.RecipeFilterAll, f.owner.ID.String())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Empty filter defaults to owned.
	defaulted, err := f.service.GetRecipes(ctx, "", f.owner.ID.String())
	require.NoError(t, err)
	assert.Len(t, defaulted, 1)

	_, err = f.service.GetRecipes(ctx, "bogus", f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeFilter)
}

func TestDeleteRecipe_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	f := newRecipeFixture()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.owner.ID.String())
	require.NoError(t, err)

	err = f.service.DeleteRecipe(ctx, created.ID, f.friend.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	require.NoError(t, f.service.DeleteRecipe(ctx, created.ID, f.owner.ID.String()))

	_, err = f.service.GetRecipe(ctx, created.ID, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
