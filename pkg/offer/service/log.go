package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
	"github.com/chainsafe/swap-offers/pkg/auth"
	"github.com/chainsafe/swap-offers/pkg/offer"
)

const serviceName = "OfferService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the offer Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// done logs the outcome of a call. Client errors are logged at warn level so
// that lost claim races do not page anyone.
func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	switch {
	case err == nil:
		ls.logger.Info(method+" completed", fields...)
	case apperrors.IsInternalError(err):
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
	default:
		ls.logger.Warn(method+" rejected", append(fields, zap.Error(err))...)
	}
}

func (ls *logService) CreateOffer(ctx context.Context, draft *offer.Draft, callerWallet string) (o *offer.Offer, err error) {
	start := time.Now()
	ls.logger.Info("CreateOffer started",
		zap.String("service", serviceName),
		zap.String("method", "CreateOffer"),
		zap.String("wallet", auth.ShortWallet(callerWallet)),
		zap.Int("token_legs", len(draft.TokenIn)+len(draft.TokenOut)),
		zap.Int("nft_legs", len(draft.NFTIn)+len(draft.NFTOut)),
	)
	defer func() {
		if err != nil {
			ls.done("CreateOffer", start, err)
			return
		}
		ls.done("CreateOffer", start, nil, zap.String("offer_id", o.ID.String()))
	}()
	return ls.svc.CreateOffer(ctx, draft, callerWallet)
}

func (ls *logService) AdvanceStatus(ctx context.Context, req *offer.AdvanceRequest) (o *offer.Offer, err error) {
	start := time.Now()
	ls.logger.Info("AdvanceStatus started",
		zap.String("service", serviceName),
		zap.String("method", "AdvanceStatus"),
		zap.String("offer_id", req.OfferID.String()),
		zap.Stringer("requested", req.Status),
		zap.String("wallet", auth.ShortWallet(req.CallerWallet)),
	)
	defer func() {
		ls.done("AdvanceStatus", start, err, zap.String("offer_id", req.OfferID.String()))
	}()
	return ls.svc.AdvanceStatus(ctx, req)
}

func (ls *logService) GetOffer(ctx context.Context, id uuid.UUID) (o *offer.Offer, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.done("GetOffer", start, err, zap.String("offer_id", id.String()))
		}
	}()
	return ls.svc.GetOffer(ctx, id)
}

func (ls *logService) ListOffers(ctx context.Context, f offer.Filter) (offers []*offer.Offer, err error) {
	start := time.Now()
	defer func() {
		ls.logger.Debug("ListOffers",
			zap.String("service", serviceName),
			zap.Bool("filtered", !f.IsEmpty()),
			zap.Int("results", len(offers)),
			zap.Duration("duration", time.Since(start)),
		)
		if err != nil {
			ls.done("ListOffers", start, err)
		}
	}()
	return ls.svc.ListOffers(ctx, f)
}

func (ls *logService) GetHistory(ctx context.Context, userID uuid.UUID, role offer.Role) (offers []*offer.Offer, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.done("GetHistory", start, err,
				zap.String("user_id", userID.String()),
				zap.String("role", string(role)),
			)
		}
	}()
	return ls.svc.GetHistory(ctx, userID, role)
}
