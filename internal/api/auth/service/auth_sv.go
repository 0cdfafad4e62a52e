package authService

import (
	"context"
	"errors"
	"time"

	"BlogNest/internal/api/auth"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	jwtPkg "BlogNest/pkg/jwt"

	"github.com/sirupsen/logrus"
)

const sessionLifetime = time.Hour * 1

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown username")
			// Same error as a wrong password, so the two cases are
			// indistinguishable to the caller.
			return auth.LoginUserResponse{}, auth.ErrInvalidCredentials
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by username")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Logout drops the session record; the access token dies with it. The
// transition to anonymous is unconditional and idempotent.
func (s *authService) Logout(ctx context.Context, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.sessionStore.DeleteSession(ctx, user.SessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": user.SessionID,
			"error":      err.Error(),
		}).Error("Failed to delete session")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User logged out")

	return nil
}

func (s *authService) issueSession(ctx context.Context, user entity.User) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return auth.LoginUserResponse{}, err
	}

	if err := s.sessionStore.SetSession(ctx, sessionID, user.ID, sessionLifetime); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store session")
		return auth.LoginUserResponse{}, err
	}

	userData := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"session_id": sessionID,
	}

	token, expired, err := jwtPkg.Sign(userData, sessionLifetime)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Session issued")

	return auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}
