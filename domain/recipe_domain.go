package domain

import "errors"

// Bounds shared by cooking time and ingredient amounts.
const (
	MinAmount = 1
	MaxAmount = 32000
)

var (
	MessageSuccessGetRecipes           = "success get recipes"
	MessageSuccessGetRecipeDetail      = "success get recipe detail"
	MessageSuccessCreateRecipe         = "recipe created successfully"
	MessageSuccessUpdateRecipe         = "recipe updated successfully"
	MessageSuccessDeleteRecipe         = "recipe deleted successfully"
	MessageSuccessAddFavorite          = "recipe added to favorites"
	MessageSuccessRemoveFavorite       = "recipe removed from favorites"
	MessageSuccessAddToCart            = "recipe added to shopping cart"
	MessageSuccessRemoveFromCart       = "recipe removed from shopping cart"
	MessageSuccessDownloadShoppingList = "success download shopping list"

	MessageFailedGetRecipes           = "failed to get recipes"
	MessageFailedGetRecipeDetail      = "failed to get recipe detail"
	MessageFailedCreateRecipe         = "failed to create recipe"
	MessageFailedUpdateRecipe         = "failed to update recipe"
	MessageFailedDeleteRecipe         = "failed to delete recipe"
	MessageFailedAddFavorite          = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite       = "failed to remove recipe from favorites"
	MessageFailedAddToCart            = "failed to add recipe to shopping cart"
	MessageFailedRemoveFromCart       = "failed to remove recipe from shopping cart"
	MessageFailedDownloadShoppingList = "failed to download shopping list"

	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrRecipeNameTaken       = errors.New("recipe with this name already exists for this author")
	ErrNotRecipeAuthor       = errors.New("only the author may modify this recipe")
	ErrNoTags                = errors.New("recipe must have at least one tag")
	ErrNoIngredients         = errors.New("recipe must have at least one ingredient")
	ErrDuplicateIngredient   = errors.New("recipe lists the same ingredient twice")
	ErrCookingTimeOutOfRange = errors.New("cooking time must be between 1 and 32000 minutes")
	ErrAmountOutOfRange      = errors.New("ingredient amount must be between 1 and 32000")
	ErrAlreadyFavorited      = errors.New("recipe already in favorites")
	ErrNotFavorited          = errors.New("recipe not in favorites")
	ErrAlreadyInCart         = errors.New("recipe already in shopping cart")
	ErrNotInCart             = errors.New("recipe not in shopping cart")
	ErrImageRequired         = errors.New("recipe image is required")
	ErrInvalidImagePayload   = errors.New("invalid image payload")
)

type (
	RecipeIngredientRequest struct {
		ID     int64 `json:"id" validate:"required"`
		Amount int   `json:"amount" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		Image       string                    `json:"image" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required"`
		Tags        []int64                   `json:"tags"`
		Ingredients []RecipeIngredientRequest `json:"ingredients"`
	}

	UpdateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		Image       string                    `json:"image,omitempty"`
		CookingTime int                       `json:"cooking_time" validate:"required"`
		Tags        []int64                   `json:"tags"`
		Ingredients []RecipeIngredientRequest `json:"ingredients"`
	}

	RecipeIngredientResponse struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
	}

	// RecipeSummaryResponse is the compact shape returned by the favorite and
	// shopping cart endpoints and embedded in subscription listings.
	RecipeSummaryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	RecipeListResponse struct {
		Count   int64            `json:"count"`
		Results []RecipeResponse `json:"results"`
	}

	// RecipeFilter narrows recipe listings. Zero values mean "no filter";
	// the viewer-relative filters are ignored for anonymous viewers.
	RecipeFilter struct {
		TagSlugs         []string
		Author           string
		IsFavorited      bool
		IsInShoppingCart bool
	}

	// ShoppingListItem is one aggregated row of the shopping list: the total
	// amount of an ingredient across every recipe in the cart.
	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Total           int    `json:"total"`
	}
)
