package recipe

import (
	"context"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, tagIDs []int64) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, tagIDs []int64) error
		DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		RecipeExists(ctx context.Context, authorID uuid.UUID, name string) (bool, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error)

		AddFavorite(ctx context.Context, favorite *entities.Favorite) error
		RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (int64, error)
		IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)

		AddCartItem(ctx context.Context, item *entities.ShoppingCartItem) error
		RemoveCartItem(ctx context.Context, userID, recipeID uuid.UUID) (int64, error)
		IsInCart(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)

		AggregateShoppingList(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingListItem, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe persists the recipe row and both link sets as one unit; a
// failure on any link row rolls back the whole recipe.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Tags", "Author").Create(recipe).Error; err != nil {
			return err
		}
		return insertRecipeLinks(tx, recipe.ID, ingredients, tagIDs)
	})
}

// UpdateRecipe saves the recipe fields and replaces both link sets wholesale:
// the old rows are deleted and the new set inserted, no diffing.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Tags", "Author").Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeTag{}).Error; err != nil {
			return err
		}
		return insertRecipeLinks(tx, recipe.ID, ingredients, tagIDs)
	})
}

func insertRecipeLinks(tx *gorm.DB, recipeID uuid.UUID, ingredients []entities.RecipeIngredient, tagIDs []int64) error {
	links := make([]entities.RecipeIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		links = append(links, entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredient.IngredientID,
			Amount:       ingredient.Amount,
		})
	}
	if err := tx.Create(&links).Error; err != nil {
		return err
	}

	tagLinks := make([]entities.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tagLinks = append(tagLinks, entities.RecipeTag{
			RecipeID: recipeID,
			TagID:    tagID,
		})
	}
	return tx.Create(&tagLinks).Error
}

// DeleteRecipe removes the recipe together with its link rows and every
// favorite and cart row referencing it, leaving no orphans.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.ShoppingCartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", recipeID).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) RecipeExists(ctx context.Context, authorID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("author_id = ? AND name = ?", authorID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) recipesQuery(ctx context.Context, filter domain.RecipeFilter, viewerID uuid.UUID) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if len(filter.TagSlugs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs).
			Distinct("recipes.*")
	}
	if filter.Author != "" {
		query = query.Where("recipes.author_id = ?", filter.Author)
	}
	if filter.IsFavorited && viewerID != uuid.Nil {
		query = query.
			Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", viewerID)
	}
	if filter.IsInShoppingCart && viewerID != uuid.Nil {
		query = query.
			Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipes.id").
			Where("shopping_cart_items.user_id = ?", viewerID)
	}
	return query
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.recipesQuery(ctx, filter, viewerID).
		Distinct("recipes.id").
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.recipesQuery(ctx, filter, viewerID).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Offset(offset).
		Limit(limit).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *recipeRepository) IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) AddCartItem(ctx context.Context, item *entities.ShoppingCartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *recipeRepository) RemoveCartItem(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.ShoppingCartItem{})
	return res.RowsAffected, res.Error
}

func (r *recipeRepository) IsInCart(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ShoppingCartItem{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AggregateShoppingList sums ingredient amounts across every recipe in the
// user's cart, grouped by (name, unit) and ordered by name so the rendered
// list is stable for a fixed cart.
func (r *recipeRepository) AggregateShoppingList(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_items.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
