package userstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/chainsafe/swap-offers/pkg/user"
)

// ErrUserNotFound is returned when a user lookup finds no matching record.
var ErrUserNotFound = errors.New("user not found")

// WalletResolver maps a wallet address to the stable identity registered for it.
type WalletResolver interface {
	ResolveWallet(ctx context.Context, walletAddress string) (uuid.UUID, error)
}

// Store defines the interface for user identity persistence
type Store interface {
	WalletResolver
	CreateUser(ctx context.Context, user *user.User) error
	CreateUserIfNotExists(ctx context.Context, user *user.User) (*user.User, bool, error)
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	UserExists(ctx context.Context, walletAddress string) (bool, error)
	ListUsers(ctx context.Context) ([]*user.User, error)
	DeleteUser(ctx context.Context, walletAddress string) error
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	ID            *uuid.UUID
	WalletAddress *string
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithID sets the user id filter
func WithID(id uuid.UUID) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithWalletAddress sets the wallet address filter. The address is matched
// as given, callers normalize it first.
func WithWalletAddress(walletAddress string) QueryOption {
	return func(opts *QueryOptions) {
		opts.WalletAddress = &walletAddress
	}
}
