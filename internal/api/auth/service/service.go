package authService

import (
	"context"

	"BlogNest/internal/api/auth"
	authRepository "BlogNest/internal/api/auth/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/bcrypt"
	redisPkg "BlogNest/pkg/redis"
	"BlogNest/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	RegisterUser(ctx context.Context, req auth.CreateUserRequest) (*auth.LoginUserResponse, error)
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	Logout(ctx context.Context, user entity.UserLoginData) error
	GetProfile(ctx context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log          *logrus.Logger
	authRepo     authRepository.Repository
	sessionStore redisPkg.IRedis
	bcryptUtils  bcrypt.IBcrypt
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	sessionStore redisPkg.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:          log,
		authRepo:     authRepo,
		sessionStore: sessionStore,
		bcryptUtils:  bcryptUtils,
		utils:        utils,
	}
}
