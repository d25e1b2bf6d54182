package recipe

import (
	"context"
	"fmt"
	"testing"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCatalogRepo struct {
	tags        map[int64]*entities.Tag
	ingredients map[int64]*entities.Ingredient
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		tags:        map[int64]*entities.Tag{},
		ingredients: map[int64]*entities.Ingredient{},
	}
}

func (f *fakeCatalogRepo) GetTags(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	for _, tag := range f.tags {
		tags = append(tags, tag)
	}
	return tags, nil
}

func (f *fakeCatalogRepo) GetTagByID(ctx context.Context, id int64) (*entities.Tag, error) {
	tag, ok := f.tags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tag, nil
}

func (f *fakeCatalogRepo) GetTagsByIDs(ctx context.Context, ids []int64) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	for _, id := range ids {
		if tag, ok := f.tags[id]; ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (f *fakeCatalogRepo) GetIngredients(ctx context.Context, namePrefix string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	for _, ingredient := range f.ingredients {
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

func (f *fakeCatalogRepo) GetIngredientByID(ctx context.Context, id int64) (*entities.Ingredient, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ingredient, nil
}

func (f *fakeCatalogRepo) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	for _, id := range ids {
		if ingredient, ok := f.ingredients[id]; ok {
			ingredients = append(ingredients, ingredient)
		}
	}
	return ingredients, nil
}

type fakeUserRepo struct {
	users         map[uuid.UUID]*entities.User
	subscriptions map[string]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         map[uuid.UUID]*entities.User{},
		subscriptions: map[string]bool{},
	}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := f.users[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	f.subscriptions[sub.FollowerID.String()+"/"+sub.AuthorID.String()] = true
	return nil
}

func (f *fakeUserRepo) DeleteSubscription(ctx context.Context, followerID, authorID uuid.UUID) (int64, error) {
	key := followerID.String() + "/" + authorID.String()
	if !f.subscriptions[key] {
		return 0, nil
	}
	delete(f.subscriptions, key)
	return 1, nil
}

func (f *fakeUserRepo) IsSubscribed(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	return f.subscriptions[followerID.String()+"/"+authorID.String()], nil
}

func (f *fakeUserRepo) GetSubscribedAuthors(ctx context.Context, followerID uuid.UUID, page, limit int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) GetRecipesByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]*entities.Recipe, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountRecipesByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeRecipeRepo struct {
	catalog *fakeCatalogRepo
	users   *fakeUserRepo

	recipes     map[uuid.UUID]*entities.Recipe
	ingredients map[uuid.UUID][]entities.RecipeIngredient
	tagLinks    map[uuid.UUID][]int64
	favorites   map[string]bool
	cart        map[string]bool
}

func newFakeRecipeRepo(catalog *fakeCatalogRepo, users *fakeUserRepo) *fakeRecipeRepo {
	return &fakeRecipeRepo{
		catalog:     catalog,
		users:       users,
		recipes:     map[uuid.UUID]*entities.Recipe{},
		ingredients: map[uuid.UUID][]entities.RecipeIngredient{},
		tagLinks:    map[uuid.UUID][]int64{},
		favorites:   map[string]bool{},
		cart:        map[string]bool{},
	}
}

func pairKey(userID, recipeID uuid.UUID) string {
	return userID.String() + "/" + recipeID.String()
}

func (f *fakeRecipeRepo) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, tagIDs []int64) error {
	stored := *recipe
	f.recipes[recipe.ID] = &stored
	f.setLinks(recipe.ID, ingredients, tagIDs)
	return nil
}

func (f *fakeRecipeRepo) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, tagIDs []int64) error {
	stored := *recipe
	stored.Ingredients = nil
	stored.Tags = nil
	f.recipes[recipe.ID] = &stored
	f.setLinks(recipe.ID, ingredients, tagIDs)
	return nil
}

func (f *fakeRecipeRepo) setLinks(recipeID uuid.UUID, ingredients []entities.RecipeIngredient, tagIDs []int64) {
	links := make([]entities.RecipeIngredient, 0, len(ingredients))
	for _, link := range ingredients {
		links = append(links, entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: link.IngredientID,
			Amount:       link.Amount,
		})
	}
	f.ingredients[recipeID] = links
	f.tagLinks[recipeID] = append([]int64(nil), tagIDs...)
}

func (f *fakeRecipeRepo) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	delete(f.recipes, recipeID)
	delete(f.ingredients, recipeID)
	delete(f.tagLinks, recipeID)
	for key := range f.favorites {
		if keyRecipe(key) == recipeID.String() {
			delete(f.favorites, key)
		}
	}
	for key := range f.cart {
		if keyRecipe(key) == recipeID.String() {
			delete(f.cart, key)
		}
	}
	return nil
}

func keyRecipe(pair string) string {
	return pair[len(pair)-36:]
}

func (f *fakeRecipeRepo) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	recipe, ok := f.recipes[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	loaded := *recipe
	loaded.Ingredients = nil
	for _, link := range f.ingredients[parsed] {
		link.Ingredient = f.catalog.ingredients[link.IngredientID]
		loaded.Ingredients = append(loaded.Ingredients, link)
	}
	loaded.Tags = nil
	for _, tagID := range f.tagLinks[parsed] {
		if tag, ok := f.catalog.tags[tagID]; ok {
			loaded.Tags = append(loaded.Tags, *tag)
		}
	}
	loaded.Author = f.users.users[recipe.AuthorID]
	return &loaded, nil
}

func (f *fakeRecipeRepo) RecipeExists(ctx context.Context, authorID uuid.UUID, name string) (bool, error) {
	for _, recipe := range f.recipes {
		if recipe.AuthorID == authorID && recipe.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRecipeRepo) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	for id := range f.recipes {
		recipe, _ := f.GetRecipeByID(ctx, id.String())
		recipes = append(recipes, recipe)
	}
	return recipes, int64(len(recipes)), nil
}

func (f *fakeRecipeRepo) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	key := pairKey(favorite.UserID, favorite.RecipeID)
	if f.favorites[key] {
		return gorm.ErrDuplicatedKey
	}
	f.favorites[key] = true
	return nil
}

func (f *fakeRecipeRepo) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	key := pairKey(userID, recipeID)
	if !f.favorites[key] {
		return 0, nil
	}
	delete(f.favorites, key)
	return 1, nil
}

func (f *fakeRecipeRepo) IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return f.favorites[pairKey(userID, recipeID)], nil
}

func (f *fakeRecipeRepo) AddCartItem(ctx context.Context, item *entities.ShoppingCartItem) error {
	key := pairKey(item.UserID, item.RecipeID)
	if f.cart[key] {
		return gorm.ErrDuplicatedKey
	}
	f.cart[key] = true
	return nil
}

func (f *fakeRecipeRepo) RemoveCartItem(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	key := pairKey(userID, recipeID)
	if !f.cart[key] {
		return 0, nil
	}
	delete(f.cart, key)
	return 1, nil
}

func (f *fakeRecipeRepo) IsInCart(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return f.cart[pairKey(userID, recipeID)], nil
}

// AggregateShoppingList mirrors the SQL SUM/GROUP BY with the same
// name-ordered output contract.
func (f *fakeRecipeRepo) AggregateShoppingList(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingListItem, error) {
	totals := map[string]*domain.ShoppingListItem{}
	for recipeID := range f.recipes {
		if !f.cart[pairKey(userID, recipeID)] {
			continue
		}
		for _, link := range f.ingredients[recipeID] {
			ingredient := f.catalog.ingredients[link.IngredientID]
			key := ingredient.Name + "/" + ingredient.MeasurementUnit
			if totals[key] == nil {
				totals[key] = &domain.ShoppingListItem{
					Name:            ingredient.Name,
					MeasurementUnit: ingredient.MeasurementUnit,
				}
			}
			totals[key].Total += link.Amount
		}
	}

	var items []domain.ShoppingListItem
	for _, item := range totals {
		items = append(items, *item)
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[j].Name < items[i].Name {
				items[i], items[j] = items[j], items[i]
			}
		}
	}
	return items, nil
}

type fakeS3 struct{}

func (fakeS3) UploadBase64Image(ctx context.Context, folder string, payload string) (string, error) {
	return fmt.Sprintf("https://bucket.s3.test/%s/object.jpg", folder), nil
}

type recipeFixture struct {
	service  RecipeService
	repo     *fakeRecipeRepo
	catalog  *fakeCatalogRepo
	users    *fakeUserRepo
	authorID uuid.UUID
}

func newRecipeFixture(t *testing.T) *recipeFixture {
	t.Helper()

	catalogRepo := newFakeCatalogRepo()
	catalogRepo.tags[1] = &entities.Tag{ID: 1, Name: "breakfast", Color: "#E26C2D", Slug: "breakfast"}
	catalogRepo.tags[2] = &entities.Tag{ID: 2, Name: "dinner", Color: "#49B64E", Slug: "dinner"}
	catalogRepo.ingredients[10] = &entities.Ingredient{ID: 10, Name: "flour", MeasurementUnit: "g"}
	catalogRepo.ingredients[11] = &entities.Ingredient{ID: 11, Name: "egg", MeasurementUnit: "pcs"}
	catalogRepo.ingredients[12] = &entities.Ingredient{ID: 12, Name: "milk", MeasurementUnit: "ml"}

	userRepo := newFakeUserRepo()
	authorID := uuid.New()
	userRepo.users[authorID] = &entities.User{
		ID:        authorID,
		Email:     "author@example.com",
		Username:  "author",
		FirstName: "Alex",
		LastName:  "Author",
	}

	recipeRepo := newFakeRecipeRepo(catalogRepo, userRepo)

	return &recipeFixture{
		service:  NewRecipeService(recipeRepo, catalogRepo, userRepo, fakeS3{}),
		repo:     recipeRepo,
		catalog:  catalogRepo,
		users:    userRepo,
		authorID: authorID,
	}
}

func validCreateRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		Image:       "data:image/jpeg;base64,aGVsbG8=",
		CookingTime: 20,
		Tags:        []int64{1},
		Ingredients: []domain.RecipeIngredientRequest{
			{ID: 10, Amount: 200},
			{ID: 11, Amount: 2},
		},
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.CreateRecipeRequest)
		wantErr error
	}{
		{
			name:    "empty tags",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Tags = nil },
			wantErr: domain.ErrNoTags,
		},
		{
			name:    "empty ingredients",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Ingredients = nil },
			wantErr: domain.ErrNoIngredients,
		},
		{
			name:    "cooking time below bound",
			mutate:  func(r *domain.CreateRecipeRequest) { r.CookingTime = 0 },
			wantErr: domain.ErrCookingTimeOutOfRange,
		},
		{
			name:    "cooking time above bound",
			mutate:  func(r *domain.CreateRecipeRequest) { r.CookingTime = 32001 },
			wantErr: domain.ErrCookingTimeOutOfRange,
		},
		{
			name:    "amount below bound",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Ingredients[0].Amount = 0 },
			wantErr: domain.ErrAmountOutOfRange,
		},
		{
			name:    "amount above bound",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Ingredients[0].Amount = 32001 },
			wantErr: domain.ErrAmountOutOfRange,
		},
		{
			name: "duplicate ingredient",
			mutate: func(r *domain.CreateRecipeRequest) {
				r.Ingredients = append(r.Ingredients, domain.RecipeIngredientRequest{ID: 10, Amount: 50})
			},
			wantErr: domain.ErrDuplicateIngredient,
		},
		{
			name:    "unknown tag",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Tags = []int64{99} },
			wantErr: domain.ErrTagNotFound,
		},
		{
			name: "unknown ingredient",
			mutate: func(r *domain.CreateRecipeRequest) {
				r.Ingredients = []domain.RecipeIngredientRequest{{ID: 99, Amount: 10}}
			},
			wantErr: domain.ErrIngredientNotFound,
		},
		{
			name:    "missing image",
			mutate:  func(r *domain.CreateRecipeRequest) { r.Image = "" },
			wantErr: domain.ErrImageRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRecipeFixture(t)
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := f.service.CreateRecipe(context.Background(), req, f.authorID.String())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.repo.recipes, "no row may be written when validation fails")
		})
	}
}

func TestCreateRecipeDuplicateName(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	_, err = f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNameTaken)

	// A different author may reuse the name.
	otherID := uuid.New()
	f.users.users[otherID] = &entities.User{ID: otherID, Username: "other"}
	_, err = f.service.CreateRecipe(ctx, validCreateRequest(), otherID.String())
	assert.NoError(t, err)
}

func TestCreateRecipeProjectsDetail(t *testing.T) {
	f := newRecipeFixture(t)

	res, err := f.service.CreateRecipe(context.Background(), validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", res.Name)
	assert.Equal(t, 20, res.CookingTime)
	assert.Equal(t, "author", res.Author.Username)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, "breakfast", res.Tags[0].Slug)
	require.Len(t, res.Ingredients, 2)
	assert.Equal(t, "flour", res.Ingredients[0].Name)
	assert.Equal(t, 200, res.Ingredients[0].Amount)
	assert.Equal(t, "g", res.Ingredients[0].MeasurementUnit)
	assert.False(t, res.IsFavorited)
	assert.False(t, res.IsInShoppingCart)
}

func TestUpdateRecipeReplacesLinks(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Now with milk.",
		CookingTime: 25,
		Tags:        []int64{2},
		Ingredients: []domain.RecipeIngredientRequest{{ID: 12, Amount: 300}},
	}
	res, err := f.service.UpdateRecipe(ctx, created.ID, update, f.authorID.String())
	require.NoError(t, err)

	require.Len(t, res.Tags, 1, "old tag set must be gone")
	assert.Equal(t, "dinner", res.Tags[0].Slug)
	require.Len(t, res.Ingredients, 1, "old ingredient set must be gone")
	assert.Equal(t, "milk", res.Ingredients[0].Name)
	assert.Equal(t, 300, res.Ingredients[0].Amount)
	assert.Equal(t, 25, res.CookingTime)
}

func TestUpdateRecipeAuthorization(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Hijacked.",
		CookingTime: 5,
		Tags:        []int64{1},
		Ingredients: []domain.RecipeIngredientRequest{{ID: 10, Amount: 1}},
	}
	_, err = f.service.UpdateRecipe(ctx, created.ID, update, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotRecipeAuthor)

	err = f.service.DeleteRecipe(ctx, created.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotRecipeAuthor)
}

func TestUpdateRecipeValidation(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Too slow.",
		CookingTime: 32001,
		Tags:        []int64{1},
		Ingredients: []domain.RecipeIngredientRequest{{ID: 10, Amount: 1}},
	}
	_, err = f.service.UpdateRecipe(ctx, created.ID, update, f.authorID.String())
	assert.ErrorIs(t, err, domain.ErrCookingTimeOutOfRange)
}

func TestDeleteRecipeCascades(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	other := uuid.New().String()
	_, err = f.service.AddFavorite(ctx, other, created.ID)
	require.NoError(t, err)
	_, err = f.service.AddCartItem(ctx, other, created.ID)
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteRecipe(ctx, created.ID, f.authorID.String()))

	recipeUUID := uuid.MustParse(created.ID)
	assert.Empty(t, f.repo.ingredients[recipeUUID])
	assert.Empty(t, f.repo.tagLinks[recipeUUID])
	assert.Empty(t, f.repo.favorites)
	assert.Empty(t, f.repo.cart)
}

func TestAddFavoriteIdempotence(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	userID := uuid.New().String()
	summary, err := f.service.AddFavorite(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, summary.ID)
	assert.Equal(t, "Pancakes", summary.Name)

	_, err = f.service.AddFavorite(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)
	assert.Len(t, f.repo.favorites, 1, "duplicate add must not create a second row")
}

func TestRemoveFavoriteAbsent(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	err = f.service.RemoveFavorite(ctx, uuid.New().String(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFavorited)
}

func TestFavoriteMissingRecipe(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	_, err := f.service.AddFavorite(ctx, uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	err = f.service.RemoveFavorite(ctx, uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCartAddRemove(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)
	userID := uuid.New().String()

	_, err = f.service.AddCartItem(ctx, userID, created.ID)
	require.NoError(t, err)

	_, err = f.service.AddCartItem(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyInCart)

	require.NoError(t, f.service.RemoveCartItem(ctx, userID, created.ID))

	err = f.service.RemoveCartItem(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotInCart)
}

func TestViewerBooleans(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateRecipe(ctx, validCreateRequest(), f.authorID.String())
	require.NoError(t, err)

	userID := uuid.New().String()
	_, err = f.service.AddFavorite(ctx, userID, created.ID)
	require.NoError(t, err)
	_, err = f.service.AddCartItem(ctx, userID, created.ID)
	require.NoError(t, err)

	viewer, err := f.service.GetRecipeDetail(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.True(t, viewer.IsFavorited)
	assert.True(t, viewer.IsInShoppingCart)

	anonymous, err := f.service.GetRecipeDetail(ctx, created.ID, "")
	require.NoError(t, err)
	assert.False(t, anonymous.IsFavorited)
	assert.False(t, anonymous.IsInShoppingCart)
}

func TestDownloadShoppingListAggregates(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	first := validCreateRequest()
	first.Name = "Bread"
	first.Ingredients = []domain.RecipeIngredientRequest{{ID: 10, Amount: 200}}
	createdFirst, err := f.service.CreateRecipe(ctx, first, f.authorID.String())
	require.NoError(t, err)

	second := validCreateRequest()
	second.Name = "Pancakes"
	second.Ingredients = []domain.RecipeIngredientRequest{
		{ID: 10, Amount: 300},
		{ID: 11, Amount: 2},
	}
	createdSecond, err := f.service.CreateRecipe(ctx, second, f.authorID.String())
	require.NoError(t, err)

	userID := uuid.New().String()
	_, err = f.service.AddCartItem(ctx, userID, createdSecond.ID)
	require.NoError(t, err)
	_, err = f.service.AddCartItem(ctx, userID, createdFirst.ID)
	require.NoError(t, err)

	wishlist, err := f.service.DownloadShoppingList(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "egg: 2pcs.\nflour: 500g.\n", wishlist)
}

func TestDownloadShoppingListEmptyCart(t *testing.T) {
	f := newRecipeFixture(t)

	wishlist, err := f.service.DownloadShoppingList(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}
