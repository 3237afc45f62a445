package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-offers/pkg/auth"
	"github.com/chainsafe/swap-offers/pkg/user"
)

const serviceName = "UserService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the user Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) RegisterUser(
	ctx context.Context,
	req *user.RegisterRequest,
) (resp *user.RegisterResponse, err error) {
	start := time.Now()

	ls.logger.Info("RegisterUser started",
		zap.String("service", serviceName),
		zap.String("method", "RegisterUser"),
		zap.String("wallet", auth.ShortWallet(req.WalletAddress)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("RegisterUser failed",
				zap.String("service", serviceName),
				zap.String("method", "RegisterUser"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("RegisterUser completed",
			zap.String("service", serviceName),
			zap.String("method", "RegisterUser"),
			zap.String("user_id", resp.ID.String()),
			zap.Bool("created", resp.Created),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.RegisterUser(ctx, req)
}

func (ls *logService) GetUser(ctx context.Context, id uuid.UUID) (usr *user.User, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.logger.Warn("GetUser failed",
				zap.String("service", serviceName),
				zap.String("method", "GetUser"),
				zap.String("user_id", id.String()),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.GetUser(ctx, id)
}
