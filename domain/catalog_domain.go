package domain

import "errors"

var (
	MessageSuccessGetTags        = "success get tags"
	MessageSuccessGetIngredients = "success get ingredients"

	MessageFailedGetTags        = "failed to get tags"
	MessageFailedGetIngredients = "failed to get ingredients"

	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	TagResponse struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}

	IngredientResponse struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
