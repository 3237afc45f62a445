package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
	"github.com/chainsafe/swap-offers/pkg/auth"
	"github.com/chainsafe/swap-offers/pkg/user"
	"github.com/chainsafe/swap-offers/pkg/userstore"
)

// Store is the narrow data-access interface for the user service.
// Defined here to keep the user service decoupled from userstore implementation details.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUserIfNotExists(ctx context.Context, user *user.User) (*user.User, bool, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Service defines the interface for user registration and lookup
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	RegisterUser(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type userService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new user service
func NewService(store Store, logger *zap.Logger) Service {
	return &userService{
		store:  store,
		logger: logger,
	}
}

// RegisterUser binds a wallet address to a stable identity. Registering a
// wallet twice returns the identity created the first time.
func (s *userService) RegisterUser(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResponse, error) {
	wallet, err := auth.NormalizeWallet(req.WalletAddress)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid wallet_address")
	}

	usr, created, err := s.store.CreateUserIfNotExists(ctx, user.New(wallet))
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if created {
		s.logger.Info("User registered", zap.String("user_id", usr.ID.String()), zap.String("wallet", auth.ShortWallet(wallet)))
	}

	return &user.RegisterResponse{
		ID:            usr.ID,
		WalletAddress: usr.WalletAddress,
		Created:       created,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	usr, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}
