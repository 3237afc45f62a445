package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/swap-offers/internal/metrics"
	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
	"github.com/chainsafe/swap-offers/pkg/offer"
)

type instrumentedService struct {
	svc Service
}

// NewInstrumented records the latency of every Service call.
func NewInstrumented(svc Service) Service {
	return &instrumentedService{svc: svc}
}

func observe(method string, start time.Time, err error) {
	metrics.OfferOperationDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil && apperrors.IsInternalError(err) {
		metrics.ErrorsTotal.WithLabelValues("offer_service", apperrors.CategoryOf(err).String()).Inc()
	}
}

func (s *instrumentedService) CreateOffer(ctx context.Context, draft *offer.Draft, callerWallet string) (o *offer.Offer, err error) {
	defer func(start time.Time) { observe("CreateOffer", start, err) }(time.Now())
	return s.svc.CreateOffer(ctx, draft, callerWallet)
}

func (s *instrumentedService) AdvanceStatus(ctx context.Context, req *offer.AdvanceRequest) (o *offer.Offer, err error) {
	defer func(start time.Time) { observe("AdvanceStatus", start, err) }(time.Now())
	return s.svc.AdvanceStatus(ctx, req)
}

func (s *instrumentedService) GetOffer(ctx context.Context, id uuid.UUID) (o *offer.Offer, err error) {
	defer func(start time.Time) { observe("GetOffer", start, err) }(time.Now())
	return s.svc.GetOffer(ctx, id)
}

func (s *instrumentedService) ListOffers(ctx context.Context, f offer.Filter) (offers []*offer.Offer, err error) {
	defer func(start time.Time) { observe("ListOffers", start, err) }(time.Now())
	return s.svc.ListOffers(ctx, f)
}

func (s *instrumentedService) GetHistory(ctx context.Context, userID uuid.UUID, role offer.Role) (offers []*offer.Offer, err error) {
	defer func(start time.Time) { observe("GetHistory", start, err) }(time.Now())
	return s.svc.GetHistory(ctx, userID, role)
}
