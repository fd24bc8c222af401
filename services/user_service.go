package services

import (
	"context"
	"errors"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUserAlreadyExists is returned when the registration email is taken.
var ErrUserAlreadyExists = errors.New("User already exists")

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Register creates a user and binds a session token to it. When the caller
// already holds a token (sent with the request) that token is reused so an
// authenticated client keeps its session; otherwise a fresh one is minted.
func (s *UserService) Register(ctx context.Context, name, email, sessionToken string) (*models.User, error) {
	if sessionToken == "" {
		sessionToken = utils.NewSessionToken()
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		SessionToken: sessionToken,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// Two registrations can race past the lookup; the unique index on
		// email decides the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// FindBySessionToken resolves an opaque session token to its user.
func (s *UserService) FindBySessionToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("session_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
