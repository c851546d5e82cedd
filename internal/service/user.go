package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/tokens"
)

type UserService struct {
	Users  *repo.UserStore
	Orders *repo.OrderStore
	Tokens *tokens.Issuer
	Events events.Publisher
}

type AuthResult struct {
	ID    uint
	Token string
}

// Register creates the user and returns a token for the new account.
func (s *UserService) Register(ctx context.Context, u repo.NewUser) (string, error) {
	l := logging.FromContext(ctx).With("svc", "user.register", "username", u.Username)

	if u.Username == "" {
		return "", fmt.Errorf("%w: username required", ErrValidation)
	}
	if u.Password == "" {
		return "", fmt.Errorf("%w: password required", ErrValidation)
	}

	user, err := s.Users.Create(ctx, u)
	if err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return "", err
	}

	token, err := s.Tokens.Issue(user.Public())
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	publish(ctx, s.Events, events.TopicUsers, user.ID, events.UserEvent{
		Type:     events.UserRegistered,
		UserID:   user.ID,
		Username: user.Username,
	})
	l.Info("user_registered", "user_id", user.ID)
	return token, nil
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "user.authenticate", "username", username)

	user, err := s.Users.Authenticate(ctx, username, password)
	if err != nil {
		l.Error("authenticate_error", "status", 400, "error", err)
		return nil, err
	}
	if user == nil {
		l.Warn("authenticate_failed", "status", 401, "reason", "invalid username or password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.Public())
	if err != nil {
		l.Error("authenticate_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	publish(ctx, s.Events, events.TopicUsers, user.ID, events.UserEvent{
		Type:     events.UserAuthenticated,
		UserID:   user.ID,
		Username: user.Username,
	})
	return &AuthResult{ID: user.ID, Token: token}, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Users.Index(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.Users.Read(ctx, id)
}

func (s *UserService) Update(ctx context.Context, u repo.UserUpdate) (*models.User, error) {
	user, err := s.Users.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, events.TopicUsers, user.ID, events.UserEvent{
		Type:     events.UserUpdated,
		UserID:   user.ID,
		Username: user.Username,
	})
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) (bool, error) {
	ok, err := s.Users.Delete(ctx, id)
	if err != nil {
		logging.FromContext(ctx).Warn("delete_user_error", "user_id", id, "error", err)
		return false, err
	}
	publish(ctx, s.Events, events.TopicUsers, id, events.UserEvent{Type: events.UserDeleted, UserID: id})
	return ok, nil
}

func (s *UserService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}
