package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/mailing"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		GetUser(ctx context.Context, id string, viewerID string) (domain.UserResponse, error)
		SetPassword(ctx context.Context, userID string, req domain.SetPasswordRequest) error
		Subscribe(ctx context.Context, followerID, authorID string) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, followerID, authorID string) error
		GetSubscriptions(ctx context.Context, followerID string, page, limit, recipesLimit int) (domain.SubscriptionListResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}

	if req.Avatar != "" {
		avatarURL, err := s.s3.UploadBase64Image(ctx, "avatars", req.Avatar)
		if err != nil {
			return domain.RegisterResponse{}, err
		}
		user.AvatarURL = avatarURL
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	// Welcome mail is best-effort; registration already succeeded.
	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s, welcome to Foodgram! Start sharing your recipes.</p>",
			user.FirstName,
		)
		if err := mailing.SendMail(user.Email, "Welcome to Foodgram", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", user.Email, err)
		}
	}()

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String()),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	return s.GetUser(ctx, userID, "")
}

func (s *userService) GetUser(ctx context.Context, id string, viewerID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	res := ResponseFromEntity(user)
	if viewerID != "" && viewerID != id {
		viewerUUID, err := uuid.Parse(viewerID)
		if err != nil {
			return domain.UserResponse{}, domain.ErrParseUUID
		}
		subscribed, err := s.userRepository.IsSubscribed(ctx, viewerUUID, user.ID)
		if err != nil {
			return domain.UserResponse{}, err
		}
		res.IsSubscribed = subscribed
	}
	return res, nil
}

func (s *userService) SetPassword(ctx context.Context, userID string, req domain.SetPasswordRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrPasswordWrong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) Subscribe(ctx context.Context, followerID, authorID string) (domain.SubscriptionResponse, error) {
	if followerID == authorID {
		return domain.SubscriptionResponse{}, domain.ErrSelfSubscription
	}

	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}

	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscriptionResponse{}, err
	}

	subscribed, err := s.userRepository.IsSubscribed(ctx, followerUUID, author.ID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	if subscribed {
		return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
	}

	sub := &entities.Subscription{
		ID:         uuid.New(),
		FollowerID: followerUUID,
		AuthorID:   author.ID,
	}
	if err := s.userRepository.CreateSubscription(ctx, sub); err != nil {
		// The unique pair index is the safety net for concurrent subscribes.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
		}
		return domain.SubscriptionResponse{}, err
	}

	return s.subscriptionResponse(ctx, author, defaultRecipesLimit)
}

func (s *userService) Unsubscribe(ctx context.Context, followerID, authorID string) error {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return domain.ErrParseUUID
	}

	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	// Absent edge is a no-op; deleting twice is as good as deleting once.
	_, err = s.userRepository.DeleteSubscription(ctx, followerUUID, author.ID)
	return err
}

const defaultRecipesLimit = 3

func (s *userService) GetSubscriptions(ctx context.Context, followerID string, page, limit, recipesLimit int) (domain.SubscriptionListResponse, error) {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return domain.SubscriptionListResponse{}, domain.ErrParseUUID
	}
	if recipesLimit <= 0 {
		recipesLimit = defaultRecipesLimit
	}

	authors, count, err := s.userRepository.GetSubscribedAuthors(ctx, followerUUID, page, limit)
	if err != nil {
		return domain.SubscriptionListResponse{}, err
	}

	results := make([]domain.SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		res, err := s.subscriptionResponse(ctx, author, recipesLimit)
		if err != nil {
			return domain.SubscriptionListResponse{}, err
		}
		results = append(results, res)
	}

	return domain.SubscriptionListResponse{Count: count, Results: results}, nil
}

func (s *userService) subscriptionResponse(ctx context.Context, author *entities.User, recipesLimit int) (domain.SubscriptionResponse, error) {
	recipes, err := s.userRepository.GetRecipesByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	count, err := s.userRepository.CountRecipesByAuthor(ctx, author.ID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	summaries := make([]domain.RecipeSummaryResponse, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, domain.RecipeSummaryResponse{
			ID:          recipe.ID.String(),
			Name:        recipe.Name,
			Image:       recipe.ImageURL,
			CookingTime: recipe.CookingTime,
		})
	}

	res := ResponseFromEntity(author)
	res.IsSubscribed = true
	return domain.SubscriptionResponse{
		UserResponse: res,
		Recipes:      summaries,
		RecipesCount: count,
	}, nil
}

func ResponseFromEntity(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
	}
}
