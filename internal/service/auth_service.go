// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/dto"
	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/pkg/apperror"
	"genai-studio-be/internal/pkg/logger"
	"genai-studio-be/internal/repository/specification"
	"genai-studio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs a session token for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// FindUser returns nil, nil when the account does not exist.
	FindUser(ctx context.Context, userId uuid.UUID) (*entity.User, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     TokenIssuer
	logger     logger.ILogger
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens TokenIssuer, logger logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return nil, apperror.BadRequest(constant.MsgSignupFieldsRequired)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(constant.MsgSignupFailed, err)
	}

	now := s.now()
	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = unitofwork.Transact(ctx, s.uowFactory, func(uow unitofwork.UnitOfWork) error {
		existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmailOrUsername{Email: email, Username: username})
		if err != nil {
			return apperror.Internal(constant.MsgSignupFailed, err)
		}
		if existing != nil {
			return apperror.BadRequest(constant.MsgSignupDuplicate)
		}
		// unique indexes still catch a concurrent signup that passed the check above
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return apperror.BadRequest(constant.MsgSignupDuplicate)
		}
		return nil
	})
	if err != nil {
		var appErr *apperror.Error
		if !errors.As(err, &appErr) {
			return nil, apperror.Internal(constant.MsgSignupFailed, err)
		}
		return nil, err
	}

	s.logger.Info("AUTH", "User registered", map[string]interface{}{"user_id": user.Id.String()})
	return s.respond(constant.MsgSignupSuccess, user, constant.MsgSignupFailed)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.TrimSpace(req.EmailOrUsername)
	if identifier == "" || req.Password == "" {
		return nil, apperror.BadRequest(constant.MsgLoginFieldsRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmailOrUsername{
		Email:    normalizeEmail(identifier),
		Username: identifier,
	})
	if err != nil {
		return nil, apperror.Internal(constant.MsgLoginFailed, err)
	}
	if user == nil {
		return nil, apperror.BadRequest(constant.MsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.BadRequest(constant.MsgInvalidCredentials)
	}

	return s.respond(constant.MsgLoginSuccess, user, constant.MsgLoginFailed)
}

func (s *authService) FindUser(ctx context.Context, userId uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
}

func (s *authService) respond(message string, user *entity.User, failure string) (*dto.AuthResponse, error) {
	signed, _, err := s.tokens.Issue(user.Id.String())
	if err != nil {
		return nil, apperror.Internal(failure, err)
	}
	return &dto.AuthResponse{
		Message:  message,
		Token:    signed,
		UserId:   user.Id,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
