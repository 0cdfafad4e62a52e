package authService

import (
	"os"
	"strings"
	"time"

	"BlogNest/internal/api/auth"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const minPasswordLength = 8

// RegisterUser stores a new identity. When AUTO_LOGIN_AFTER_REGISTER is set
// the returned response carries a fresh login; otherwise it is nil and the
// caller logs in separately.
func (s *authService) RegisterUser(ctx context.Context, req auth.CreateUserRequest) (*auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, auth.ErrMissingCredentials
	}

	if req.Password != req.Confirmation {
		return nil, auth.ErrPasswordMismatch
	}

	if len(req.Password) < minPasswordLength {
		return nil, auth.ErrWeakPassword
	}

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return nil, err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	user := entity.User{
		ID:        userID,
		Username:  strings.TrimSpace(req.Username),
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}

	// The repository translates the unique-constraint violation into
	// ErrUsernameTaken, so a concurrent duplicate loses cleanly here.
	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   user.Username,
			"error":      err.Error(),
		}).Warn("Failed to create user")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("User registered")

	if os.Getenv("AUTO_LOGIN_AFTER_REGISTER") != "true" {
		return nil, nil
	}

	res, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}
