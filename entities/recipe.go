package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_author_name" json:"author_id"`
	Name        string    `gorm:"size:200;uniqueIndex:idx_recipe_author_name" json:"name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `gorm:"type:text" json:"description"`
	CookingTime int       `json:"cooking_time"`

	Author      *User              `gorm:"foreignKey:AuthorID"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Tags        []Tag              `gorm:"many2many:recipe_tags"`
	Timestamp
}

// RecipeIngredient is the explicit join row between a recipe and an
// ingredient; it carries the amount the recipe uses.
type RecipeIngredient struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID int64     `gorm:"uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Amount       int       `json:"amount"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

type RecipeTag struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_tag" json:"recipe_id"`
	TagID    int64     `gorm:"uniqueIndex:idx_recipe_tag" json:"tag_id"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}

type Favorite struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// ShoppingCartItem mirrors Favorite; the unique pair index also keeps the
// shopping list aggregation from counting a recipe twice.
type ShoppingCartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_recipe" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_recipe" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
