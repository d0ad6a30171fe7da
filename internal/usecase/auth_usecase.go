package usecase

import (
	"context"
	"errors"

	"github.com/sanish-bhagat/Health-Sathi/internal/converter"
	"github.com/sanish-bhagat/Health-Sathi/internal/delivery/dto"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"
	"github.com/sanish-bhagat/Health-Sathi/pkg/token"
	"github.com/sanish-bhagat/Health-Sathi/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	tokenService *token.Service
	validator    *validator.CustomValidator
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	tokenService *token.Service,
	customValidator *validator.CustomValidator,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		tokenService: tokenService,
		validator:    customValidator,
	}
}

// Register creates a new identity. Email uniqueness is enforced by the
// store's unique index, so a conflicting registration fails instead of
// overwriting the existing user.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		ID:             uuid.New().String(),
		Email:          req.Email,
		PasswordHash:   string(hashedPassword),
		Name:           req.Name,
		Role:           entity.UserRole(req.Role),
		Specialization: req.Specialization,
		BloodGroup:     entity.ProfileUnknown,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Login verifies the credential and issues a session token the caller
// can later restore a session from. Unknown email and wrong password
// are indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := u.tokenService.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     sessionToken,
		ExpiresIn: int64(u.tokenService.Expiry().Seconds()),
		User:      converter.UserToResponse(user),
	}, nil
}
