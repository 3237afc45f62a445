package userstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-offers/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	WalletAddress string    `bun:"wallet_address,unique,notnull,type:varchar(128)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// toUserDao converts a user.User to UserDao.
func toUserDao(usr *user.User) *UserDao {
	return &UserDao{
		ID:            usr.ID,
		WalletAddress: usr.WalletAddress,
		CreatedAt:     usr.CreatedAt,
	}
}

// toUser converts a UserDao to user.User.
func toUser(dao *UserDao) *user.User {
	return &user.User{
		ID:            dao.ID,
		WalletAddress: dao.WalletAddress,
		CreatedAt:     dao.CreatedAt,
	}
}
