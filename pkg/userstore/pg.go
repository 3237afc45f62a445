package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-offers/pkg/auth"
	"github.com/chainsafe/swap-offers/pkg/user"
)

type pgStore struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db bun.IDB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateUser(ctx context.Context, usr *user.User) error {
	dao := toUserDao(usr)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// CreateUserIfNotExists inserts usr unless its wallet is already registered.
// It returns the stored user and whether this call created it.
func (s *pgStore) CreateUserIfNotExists(ctx context.Context, usr *user.User) (*user.User, bool, error) {
	dao := toUserDao(usr)

	res, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (wallet_address) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 1 {
		return toUser(dao), true, nil
	}

	existing, err := s.GetUser(ctx, WithWalletAddress(usr.WalletAddress))
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *pgStore) GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error) {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.ID == nil && options.WalletAddress == nil {
		return nil, fmt.Errorf("get user: no lookup option given")
	}

	dao := new(UserDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("u.id = ?", *options.ID)
	}
	if options.WalletAddress != nil {
		query = query.Where("u.wallet_address = ?", *options.WalletAddress)
	}

	err := query.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.GetUser(ctx, WithID(id))
}

func (s *pgStore) GetUserByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error) {
	return s.GetUser(ctx, WithWalletAddress(walletAddress))
}

// ResolveWallet normalizes walletAddress and returns the id registered for it.
func (s *pgStore) ResolveWallet(ctx context.Context, walletAddress string) (uuid.UUID, error) {
	normalized, err := auth.NormalizeWallet(walletAddress)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrUserNotFound, err)
	}

	var id uuid.UUID
	err = s.db.NewSelect().
		Model((*UserDao)(nil)).
		Column("u.id").
		Where("u.wallet_address = ?", normalized).
		Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrUserNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve wallet: %w", err)
	}
	return id, nil
}

func (s *pgStore) UserExists(ctx context.Context, walletAddress string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*UserDao)(nil)).
		Where("wallet_address = ?", walletAddress).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check user exists: %w", err)
	}
	return exists, nil
}

func (s *pgStore) DeleteUser(ctx context.Context, walletAddress string) error {
	_, err := s.db.NewDelete().
		Model((*UserDao)(nil)).
		Where("wallet_address = ?", walletAddress).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *pgStore) ListUsers(ctx context.Context) ([]*user.User, error) {
	var daos []UserDao
	err := s.db.NewSelect().Model(&daos).Order("u.created_at ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]*user.User, len(daos))
	for i := range daos {
		users[i] = toUser(&daos[i])
	}
	return users, nil
}
