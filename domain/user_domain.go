package domain

import "errors"

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessGetProfile       = "success get profile"
	MessageSuccessSetPassword      = "password updated successfully"
	MessageSuccessSubscribe        = "subscribed successfully"
	MessageSuccessUnsubscribe      = "unsubscribed successfully"
	MessageSuccessGetSubscriptions = "success get subscriptions"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetProfile       = "failed to get profile"
	MessageFailedSetPassword      = "failed to update password"
	MessageFailedSubscribe        = "failed to subscribe"
	MessageFailedUnsubscribe      = "failed to unsubscribe"
	MessageFailedGetSubscriptions = "failed to get subscriptions"

	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyUsed    = errors.New("email already in use")
	ErrUsernameAlreadyUsed = errors.New("username already in use")
	ErrCredentialsInvalid  = errors.New("invalid email or password")
	ErrPasswordWrong       = errors.New("current password does not match")
	ErrSelfSubscription    = errors.New("cannot subscribe to yourself")
	ErrAlreadySubscribed   = errors.New("already subscribed to this author")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,max=150"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=150"`
		Avatar    string `json:"avatar,omitempty"`
	}

	RegisterResponse struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"auth_token"`
	}

	SetPasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8,max=150"`
	}

	UserResponse struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		AvatarURL    string `json:"avatar_url,omitempty"`
		IsSubscribed bool   `json:"is_subscribed"`
	}

	// SubscriptionResponse is one followed author with a truncated slice of
	// their latest recipes.
	SubscriptionResponse struct {
		UserResponse
		Recipes      []RecipeSummaryResponse `json:"recipes"`
		RecipesCount int64                   `json:"recipes_count"`
	}

	SubscriptionListResponse struct {
		Count   int64                  `json:"count"`
		Results []SubscriptionResponse `json:"results"`
	}
)
