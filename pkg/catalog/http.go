package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
	apphttp "github.com/chainsafe/swap-offers/pkg/app/http"
)

// Reader is the read side of the catalog exposed over HTTP.
//
//go:generate mockery --name Reader --output mocks --outpkg mocks --filename mock_reader.go --with-expecter
type Reader interface {
	ListChains(ctx context.Context) ([]Chain, error)
	ListTokens(ctx context.Context, chainRef *uuid.UUID) ([]Token, error)
	ListNFTCollections(ctx context.Context, chainRef *uuid.UUID) ([]NFTCollection, error)
}

type handler struct {
	reader Reader
}

// RegisterRoutes registers the read-only catalog endpoints.
func RegisterRoutes(r chi.Router, reader Reader) {
	h := &handler{reader: reader}
	r.Get("/chains", apphttp.HandleError(h.chains))
	r.Get("/tokens", apphttp.HandleError(h.tokens))
	r.Get("/nft-collections", apphttp.HandleError(h.nftCollections))
}

func (h *handler) chains(w http.ResponseWriter, r *http.Request) error {
	chains, err := h.reader.ListChains(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, chains)
	return nil
}

func (h *handler) tokens(w http.ResponseWriter, r *http.Request) error {
	chainRef, err := chainRefParam(r)
	if err != nil {
		return err
	}
	tokens, err := h.reader.ListTokens(r.Context(), chainRef)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, tokens)
	return nil
}

func (h *handler) nftCollections(w http.ResponseWriter, r *http.Request) error {
	chainRef, err := chainRefParam(r)
	if err != nil {
		return err
	}
	cols, err := h.reader.ListNFTCollections(r.Context(), chainRef)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, cols)
	return nil
}

func chainRefParam(r *http.Request) (*uuid.UUID, error) {
	raw := r.URL.Query().Get("chain_ref")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid chain_ref")
	}
	return &id, nil
}
