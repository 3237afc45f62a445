package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-offers/internal/metrics"
	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
	"github.com/chainsafe/swap-offers/pkg/auth"
	"github.com/chainsafe/swap-offers/pkg/catalog"
	"github.com/chainsafe/swap-offers/pkg/offer"
	"github.com/chainsafe/swap-offers/pkg/offerstore"
	"github.com/chainsafe/swap-offers/pkg/userstore"
)

// Store is the narrow data-access interface for the offer lifecycle engine.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateOffer(ctx context.Context, o *offer.Offer) error
	GetOffer(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	UpdateOffer(ctx context.Context, id uuid.UUID, guard offer.Guard, patch offer.Patch) (int64, error)
	ListOffers(ctx context.Context, f offer.Filter) ([]*offer.Offer, error)
	ListOffersByParticipant(ctx context.Context, userID uuid.UUID, role offer.Role) ([]*offer.Offer, error)
}

// IdentityResolver maps a wallet address to a registered user id.
//
//go:generate mockery --name IdentityResolver --output mocks --outpkg mocks --filename mock_identity_resolver.go --with-expecter
type IdentityResolver interface {
	ResolveWallet(ctx context.Context, walletAddress string) (uuid.UUID, error)
}

// Catalog validates chain, token and NFT collection references.
//
//go:generate mockery --name Catalog --output mocks --outpkg mocks --filename mock_catalog.go --with-expecter
type Catalog interface {
	ResolveChain(ctx context.Context, ref string) (uuid.UUID, error)
	ResolveToken(ctx context.Context, ref string) (uuid.UUID, error)
	ResolveNFTCollection(ctx context.Context, ref string) (uuid.UUID, error)
}

// Service defines the offer lifecycle operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateOffer(ctx context.Context, draft *offer.Draft, callerWallet string) (*offer.Offer, error)
	AdvanceStatus(ctx context.Context, req *offer.AdvanceRequest) (*offer.Offer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	ListOffers(ctx context.Context, f offer.Filter) ([]*offer.Offer, error)
	GetHistory(ctx context.Context, userID uuid.UUID, role offer.Role) ([]*offer.Offer, error)
}

type offerService struct {
	store      Store
	identities IdentityResolver
	catalog    Catalog
	planner    *offer.Planner
	logger     *zap.Logger
}

// NewService creates the offer lifecycle engine
func NewService(store Store, identities IdentityResolver, catalog Catalog, planner *offer.Planner, logger *zap.Logger) Service {
	if planner == nil {
		planner = offer.NewPlanner(offer.FallbackParticipants)
	}
	return &offerService{
		store:      store,
		identities: identities,
		catalog:    catalog,
		planner:    planner,
		logger:     logger,
	}
}

// CreateOffer persists a new offer in the CREATED stage with the caller as
// trader. Nothing is written unless every reference resolves.
func (s *offerService) CreateOffer(ctx context.Context, draft *offer.Draft, callerWallet string) (*offer.Offer, error) {
	traderID, err := s.resolveIdentity(ctx, callerWallet)
	if err != nil {
		return nil, toServiceError(err)
	}

	chainA, err := s.resolveRef(ctx, s.catalog.ResolveChain, "chain_a", draft.ChainA)
	if err != nil {
		return nil, toServiceError(err)
	}
	chainB, err := s.resolveRef(ctx, s.catalog.ResolveChain, "chain_b", draft.ChainB)
	if err != nil {
		return nil, toServiceError(err)
	}

	o := offer.New(traderID, chainA, chainB)
	if o.TokenIn, err = s.resolveTokens(ctx, "token_in", draft.TokenIn); err != nil {
		return nil, toServiceError(err)
	}
	if o.TokenOut, err = s.resolveTokens(ctx, "token_out", draft.TokenOut); err != nil {
		return nil, toServiceError(err)
	}
	if o.NFTIn, err = s.resolveNFTs(ctx, "nft_in", draft.NFTIn); err != nil {
		return nil, toServiceError(err)
	}
	if o.NFTOut, err = s.resolveNFTs(ctx, "nft_out", draft.NFTOut); err != nil {
		return nil, toServiceError(err)
	}

	if draft.Fulfiller != "" {
		fulfillerID, err := s.resolveIdentity(ctx, draft.Fulfiller)
		if err != nil {
			return nil, toServiceError(err)
		}
		if fulfillerID == traderID {
			return nil, toServiceError(fmt.Errorf("%w: fulfiller must differ from trader", offer.ErrInvalidReference))
		}
		o.FulfillerID = &fulfillerID
	}

	if err := s.store.CreateOffer(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to save offer: %w", err)
	}
	metrics.OffersCreated.Inc()

	s.logger.Info("Offer created",
		zap.String("offer_id", o.ID.String()),
		zap.String("trader_id", traderID.String()),
		zap.Bool("preselected_fulfiller", o.HasFulfiller()),
	)
	return s.GetOffer(ctx, o.ID)
}

// AdvanceStatus moves an offer forward on behalf of the caller. The write is
// a single conditional update; a lost race is reported, never retried.
func (s *offerService) AdvanceStatus(ctx context.Context, req *offer.AdvanceRequest) (*offer.Offer, error) {
	o, err := s.store.GetOffer(ctx, req.OfferID)
	if err != nil {
		return nil, toServiceError(err)
	}

	if err := offer.CheckAdvance(o.Status, req.Status); err != nil {
		metrics.OfferTransitions.WithLabelValues("none", metrics.OutcomeRejected).Inc()
		return nil, toServiceError(err)
	}

	callerID, err := s.resolveIdentity(ctx, req.CallerWallet)
	if err != nil {
		return nil, toServiceError(err)
	}

	t, err := s.planner.Plan(o, offer.Request{
		Requested: req.Status,
		Caller:    callerID,
		OnChainID: req.OnChainID,
	})
	if err != nil {
		metrics.OfferTransitions.WithLabelValues("none", metrics.OutcomeRejected).Inc()
		return nil, toServiceError(err)
	}

	n, err := s.store.UpdateOffer(ctx, o.ID, t.Guard, t.Patch)
	if err != nil {
		metrics.OfferTransitions.WithLabelValues(string(t.Rule), metrics.OutcomeStoreError).Inc()
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	if n == 0 {
		metrics.OfferTransitions.WithLabelValues(string(t.Rule), metrics.OutcomeConflict).Inc()
		return nil, toServiceError(s.classifyConflict(ctx, o.ID, t, callerID))
	}

	metrics.OfferTransitions.WithLabelValues(string(t.Rule), metrics.OutcomeApplied).Inc()
	s.logger.Info("Offer status advanced",
		zap.String("offer_id", o.ID.String()),
		zap.String("rule", string(t.Rule)),
		zap.Stringer("from", o.Status),
		zap.Stringer("to", req.Status),
	)
	return s.GetOffer(ctx, o.ID)
}

// classifyConflict explains why a guarded write matched no row.
func (s *offerService) classifyConflict(ctx context.Context, id uuid.UUID, t *offer.Transition, callerID uuid.UUID) error {
	if t.Rule != offer.RuleClaim {
		return offer.ErrConcurrentModification
	}
	current, err := s.store.GetOffer(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to reload offer after lost claim", zap.String("offer_id", id.String()), zap.Error(err))
		return offer.ErrConcurrentModification
	}
	if current.HasFulfiller() && *current.FulfillerID != callerID {
		metrics.OfferClaimConflicts.Inc()
		return offer.ErrAlreadyClaimed
	}
	return offer.ErrConcurrentModification
}

func (s *offerService) GetOffer(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, err := s.store.GetOffer(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return o, nil
}

func (s *offerService) ListOffers(ctx context.Context, f offer.Filter) ([]*offer.Offer, error) {
	if f.NFTCollectionID != "" {
		id, err := uuid.Parse(f.NFTCollectionID)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid nft_collection_id")
		}
		// The stored form is the canonical lower-case uuid.
		f.NFTCollectionID = id.String()
	}
	offers, err := s.store.ListOffers(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

func (s *offerService) GetHistory(ctx context.Context, userID uuid.UUID, role offer.Role) ([]*offer.Offer, error) {
	offers, err := s.store.ListOffersByParticipant(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list offer history: %w", err)
	}
	return offers, nil
}

func (s *offerService) resolveIdentity(ctx context.Context, wallet string) (uuid.UUID, error) {
	id, err := s.identities.ResolveWallet(ctx, wallet)
	if err == nil {
		return id, nil
	}
	if errors.Is(err, userstore.ErrUserNotFound) ||
		errors.Is(err, auth.ErrEmptyWallet) ||
		errors.Is(err, auth.ErrInvalidWallet) {
		return uuid.Nil, fmt.Errorf("%w: %s", offer.ErrIdentityNotFound, auth.ShortWallet(wallet))
	}
	return uuid.Nil, fmt.Errorf("failed to resolve wallet: %w", err)
}

type resolveFunc func(ctx context.Context, ref string) (uuid.UUID, error)

func (s *offerService) resolveRef(ctx context.Context, resolve resolveFunc, field, ref string) (uuid.UUID, error) {
	id, err := resolve(ctx, ref)
	if err == nil {
		return id, nil
	}
	if errors.Is(err, catalog.ErrMalformedReference) || errors.Is(err, catalog.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", offer.ErrInvalidReference, field, err)
	}
	return uuid.Nil, fmt.Errorf("failed to resolve %s: %w", field, err)
}

func (s *offerService) resolveTokens(ctx context.Context, field string, drafts []offer.TokenLegDraft) ([]offer.TokenLeg, error) {
	legs := make([]offer.TokenLeg, 0, len(drafts))
	for i, d := range drafts {
		name := fmt.Sprintf("%s[%d]", field, i)
		tokenID, err := s.resolveRef(ctx, s.catalog.ResolveToken, name, d.Token)
		if err != nil {
			return nil, err
		}
		amount, err := offer.ParseAmount(d.Amount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		legs = append(legs, offer.TokenLeg{TokenID: tokenID, Amount: amount})
	}
	return legs, nil
}

func (s *offerService) resolveNFTs(ctx context.Context, field string, drafts []offer.NFTLegDraft) ([]offer.NFTLeg, error) {
	legs := make([]offer.NFTLeg, 0, len(drafts))
	for i, d := range drafts {
		name := fmt.Sprintf("%s[%d]", field, i)
		if d.NFTID == "" {
			return nil, fmt.Errorf("%w: %s: empty nft_id", offer.ErrInvalidReference, name)
		}
		collectionID, err := s.resolveRef(ctx, s.catalog.ResolveNFTCollection, name, d.Collection)
		if err != nil {
			return nil, err
		}
		legs = append(legs, offer.NFTLeg{NFTID: d.NFTID, CollectionID: collectionID})
	}
	return legs, nil
}

// toServiceError maps lifecycle errors onto client facing categories. Errors
// of unknown kind are returned unchanged and surface as internal errors.
func toServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, offer.ErrNotFound), errors.Is(err, offerstore.ErrOfferNotFound):
		return apperrors.ResourceNotFoundError(err, "offer not found")
	case errors.Is(err, offer.ErrIdentityNotFound):
		return apperrors.ResourceNotFoundError(err, "wallet address is not registered")
	case errors.Is(err, offer.ErrInvalidReference), errors.Is(err, offer.ErrInvalidAmount):
		return apperrors.BadRequestError(err, err.Error())
	case errors.Is(err, offer.ErrAlreadyClaimed):
		return apperrors.ConflictError(err, "offer already claimed")
	case errors.Is(err, offer.ErrConcurrentModification):
		return apperrors.ConflictError(err, "offer was modified concurrently")
	case errors.Is(err, offer.ErrInvalidTransition):
		return apperrors.ConflictError(err, err.Error())
	case errors.Is(err, offer.ErrUnauthorized):
		return apperrors.ForbiddenError(err, "caller is not allowed to perform this transition")
	default:
		return err
	}
}
