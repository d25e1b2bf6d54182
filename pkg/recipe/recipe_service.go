package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/catalog"
	"foodgram/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page, limit int) (domain.RecipeListResponse, error)

		AddFavorite(ctx context.Context, userID, recipeID string) (domain.RecipeSummaryResponse, error)
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		AddCartItem(ctx context.Context, userID, recipeID string) (domain.RecipeSummaryResponse, error)
		RemoveCartItem(ctx context.Context, userID, recipeID string) error

		DownloadShoppingList(ctx context.Context, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		catalogRepository catalog.CatalogRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	catalogRepository catalog.CatalogRepository,
	userRepository user.UserRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
		s3:                s3,
	}
}

// validateRecipeInput checks everything that must hold before a single row is
// written: non-empty tag and ingredient sets, bounds on cooking time and
// amounts, no ingredient listed twice, and that every referenced tag and
// ingredient actually exists.
func (s *recipeService) validateRecipeInput(ctx context.Context, cookingTime int, tagIDs []int64, ingredients []domain.RecipeIngredientRequest) error {
	if len(tagIDs) == 0 {
		return domain.ErrNoTags
	}
	if len(ingredients) == 0 {
		return domain.ErrNoIngredients
	}
	if cookingTime < domain.MinAmount || cookingTime > domain.MaxAmount {
		return domain.ErrCookingTimeOutOfRange
	}

	seen := make(map[int64]bool, len(ingredients))
	ingredientIDs := make([]int64, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient.Amount < domain.MinAmount || ingredient.Amount > domain.MaxAmount {
			return domain.ErrAmountOutOfRange
		}
		if seen[ingredient.ID] {
			return domain.ErrDuplicateIngredient
		}
		seen[ingredient.ID] = true
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}

	tags, err := s.catalogRepository.GetTagsByIDs(ctx, dedupe(tagIDs))
	if err != nil {
		return err
	}
	if len(tags) != len(dedupe(tagIDs)) {
		return domain.ErrTagNotFound
	}

	found, err := s.catalogRepository.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return err
	}
	if len(found) != len(ingredientIDs) {
		return domain.ErrIngredientNotFound
	}

	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	if err := s.validateRecipeInput(ctx, req.CookingTime, req.Tags, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}
	if req.Image == "" {
		return domain.RecipeResponse{}, domain.ErrImageRequired
	}

	exists, err := s.recipeRepository.RecipeExists(ctx, authorUUID, req.Name)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if exists {
		return domain.RecipeResponse{}, domain.ErrRecipeNameTaken
	}

	imageURL, err := s.s3.UploadBase64Image(ctx, "recipes", req.Image)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrInvalidImagePayload
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorUUID,
		Name:        req.Name,
		ImageURL:    imageURL,
		Description: req.Text,
		CookingTime: req.CookingTime,
	}

	if err := s.recipeRepository.CreateRecipe(
		ctx, recipe, ingredientLinks(req.Ingredients), dedupe(req.Tags),
	); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeNameTaken
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.AuthorID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrNotRecipeAuthor
	}

	if err := s.validateRecipeInput(ctx, req.CookingTime, req.Tags, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Name != recipe.Name {
		exists, err := s.recipeRepository.RecipeExists(ctx, recipe.AuthorID, req.Name)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		if exists {
			return domain.RecipeResponse{}, domain.ErrRecipeNameTaken
		}
	}

	recipe.Name = req.Name
	recipe.Description = req.Text
	recipe.CookingTime = req.CookingTime
	if req.Image != "" {
		imageURL, err := s.s3.UploadBase64Image(ctx, "recipes", req.Image)
		if err != nil {
			return domain.RecipeResponse{}, domain.ErrInvalidImagePayload
		}
		recipe.ImageURL = imageURL
	}

	if err := s.recipeRepository.UpdateRecipe(
		ctx, recipe, ingredientLinks(req.Ingredients), dedupe(req.Tags),
	); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != userID {
		return domain.ErrNotRecipeAuthor
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipe.ID)
}

func ingredientLinks(ingredients []domain.RecipeIngredientRequest) []entities.RecipeIngredient {
	links := make([]entities.RecipeIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		links = append(links, entities.RecipeIngredient{
			IngredientID: ingredient.ID,
			Amount:       ingredient.Amount,
		})
	}
	return links
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return s.recipeResponse(ctx, recipe, viewerID)
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page, limit int) (domain.RecipeListResponse, error) {
	viewerUUID := uuid.Nil
	if viewerID != "" {
		parsed, err := uuid.Parse(viewerID)
		if err != nil {
			return domain.RecipeListResponse{}, domain.ErrParseUUID
		}
		viewerUUID = parsed
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, viewerUUID, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	results := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := s.recipeResponse(ctx, recipe, viewerID)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		results = append(results, res)
	}

	return domain.RecipeListResponse{Count: count, Results: results}, nil
}

// recipeResponse projects a loaded recipe for a viewer. The viewer-relative
// booleans are always false for an anonymous viewer, never an error.
func (s *recipeService) recipeResponse(ctx context.Context, recipe *entities.Recipe, viewerID string) (domain.RecipeResponse, error) {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for i := range recipe.Tags {
		tags = append(tags, catalog.TagResponseFromEntity(&recipe.Tags[i]))
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, link := range recipe.Ingredients {
		res := domain.RecipeIngredientResponse{
			ID:     link.IngredientID,
			Amount: link.Amount,
		}
		if link.Ingredient != nil {
			res.Name = link.Ingredient.Name
			res.MeasurementUnit = link.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, res)
	}

	author := domain.UserResponse{ID: recipe.AuthorID.String()}
	if recipe.Author != nil {
		author = user.ResponseFromEntity(recipe.Author)
	}

	res := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Tags:        tags,
		Author:      author,
		Ingredients: ingredients,
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		Text:        recipe.Description,
		CookingTime: recipe.CookingTime,
	}

	if viewerID == "" {
		return res, nil
	}
	viewerUUID, err := uuid.Parse(viewerID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	favorited, err := s.recipeRepository.IsFavorited(ctx, viewerUUID, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	res.IsFavorited = favorited

	inCart, err := s.recipeRepository.IsInCart(ctx, viewerUUID, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	res.IsInShoppingCart = inCart

	if viewerID != recipe.AuthorID.String() {
		subscribed, err := s.userRepository.IsSubscribed(ctx, viewerUUID, recipe.AuthorID)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		res.Author.IsSubscribed = subscribed
	}

	return res, nil
}

func (s *recipeService) AddFavorite(ctx context.Context, userID, recipeID string) (domain.RecipeSummaryResponse, error) {
	userUUID, recipe, err := s.lookupPair(ctx, userID, recipeID)
	if err != nil {
		return domain.RecipeSummaryResponse{}, err
	}

	favorited, err := s.recipeRepository.IsFavorited(ctx, userUUID, recipe.ID)
	if err != nil {
		return domain.RecipeSummaryResponse{}, err
	}
	if favorited {
		return domain.RecipeSummaryResponse{}, domain.ErrAlreadyFavorited
	}

	favorite := &entities.Favorite{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipe.ID,
	}
	if err := s.recipeRepository.AddFavorite(ctx, favorite); err != nil {
		// The unique pair index catches the race between two adds.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeSummaryResponse{}, domain.ErrAlreadyFavorited
		}
		return domain.RecipeSummaryResponse{}, err
	}

	return recipeSummary(recipe), nil
}

func (s *recipeService) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	userUUID, recipe, err := s.lookupPair(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	deleted, err := s.recipeRepository.RemoveFavorite(ctx, userUUID, recipe.ID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFavorited
	}
	return nil
}

func (s *recipeService) AddCartItem(ctx context.Context, userID, recipeID string) (domain.RecipeSummaryResponse, error) {
	userUUID, recipe, err := s.lookupPair(ctx, userID, recipeID)
	if err != nil {
		return domain.RecipeSummaryResponse{}, err
	}

	inCart, err := s.recipeRepository.IsInCart(ctx, userUUID, recipe.ID)
	if err != nil {
		return domain.RecipeSummaryResponse{}, err
	}
	if inCart {
		return domain.RecipeSummaryResponse{}, domain.ErrAlreadyInCart
	}

	item := &entities.ShoppingCartItem{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipe.ID,
	}
	if err := s.recipeRepository.AddCartItem(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeSummaryResponse{}, domain.ErrAlreadyInCart
		}
		return domain.RecipeSummaryResponse{}, err
	}

	return recipeSummary(recipe), nil
}

func (s *recipeService) RemoveCartItem(ctx context.Context, userID, recipeID string) error {
	userUUID, recipe, err := s.lookupPair(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	deleted, err := s.recipeRepository.RemoveCartItem(ctx, userUUID, recipe.ID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotInCart
	}
	return nil
}

// lookupPair resolves the (user, recipe) pair shared by the favorite and cart
// operations; a missing recipe is reported before any entry lookup happens.
func (s *recipeService) lookupPair(ctx context.Context, userID, recipeID string) (uuid.UUID, *entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, domain.ErrRecipeNotFound
		}
		return uuid.Nil, nil, err
	}
	return userUUID, recipe, nil
}

func recipeSummary(recipe *entities.Recipe) domain.RecipeSummaryResponse {
	return domain.RecipeSummaryResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}

// DownloadShoppingList renders the aggregated cart as a flat text document,
// one "{name}: {total}{unit}." line per ingredient group.
func (s *recipeService) DownloadShoppingList(ctx context.Context, userID string) (string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	items, err := s.recipeRepository.AggregateShoppingList(ctx, userUUID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "%s: %d%s.\n", item.Name, item.Total, item.MeasurementUnit)
	}
	return sb.String(), nil
}
