package service

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
	apphttp "github.com/chainsafe/swap-offers/pkg/app/http"
	"github.com/chainsafe/swap-offers/pkg/auth"
	"github.com/chainsafe/swap-offers/pkg/offer"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the offer endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/offers", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.create))
		r.Get("/", apphttp.HandleError(h.list))
		r.Get("/{id}", apphttp.HandleError(h.get))
		r.Patch("/{id}/status", apphttp.HandleError(h.advance))
	})
	r.Get("/users/{id}/offers", apphttp.HandleError(h.history))
}

// AdvanceStatusRequest is the body of PATCH /offers/{id}/status. Status is
// either the integer stage or its name.
type AdvanceStatusRequest struct {
	Status    json.RawMessage `json:"status" validate:"required"`
	OnChainID *string         `json:"on_chain_id,omitempty" validate:"omitempty,min=1,max=128"`
}

func callerWallet(r *http.Request) (string, error) {
	wallet, ok := auth.WalletFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "caller wallet required")
	}
	return wallet, nil
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	wallet, err := callerWallet(r)
	if err != nil {
		return err
	}

	var draft offer.Draft
	if err := apphttp.DecodeJSON(r, &draft); err != nil {
		return err
	}

	o, err := h.service.CreateOffer(r.Context(), &draft, wallet)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, o)
	return nil
}

func (h *HTTP) advance(w http.ResponseWriter, r *http.Request) error {
	wallet, err := callerWallet(r)
	if err != nil {
		return err
	}
	id, err := apphttp.URLParamUUID(r, "id")
	if err != nil {
		return err
	}

	var body AdvanceStatusRequest
	if err := apphttp.DecodeJSON(r, &body); err != nil {
		return err
	}
	status, err := decodeStatus(body.Status)
	if err != nil {
		return err
	}

	o, err := h.service.AdvanceStatus(r.Context(), &offer.AdvanceRequest{
		OfferID:      id,
		Status:       status,
		CallerWallet: wallet,
		OnChainID:    body.OnChainID,
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, o)
	return nil
}

// decodeStatus accepts a JSON integer or stage name. Unknown integers are
// passed on so the engine reports them as invalid transitions.
func decodeStatus(raw json.RawMessage) (offer.Status, error) {
	raw = bytes.TrimSpace(raw)
	var n int16
	if err := json.Unmarshal(raw, &n); err == nil {
		return offer.Status(n), nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return 0, apperrors.BadRequestError(err, "status must be an integer or a stage name")
	}
	status, err := offer.ParseStatus(name)
	if err != nil {
		return 0, apperrors.BadRequestError(err, err.Error())
	}
	return status, nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	id, err := apphttp.URLParamUUID(r, "id")
	if err != nil {
		return err
	}
	o, err := h.service.GetOffer(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, o)
	return nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	f := offer.Filter{
		ChainID:         q.Get("chain_id"),
		NFTID:           q.Get("nft_id"),
		NFTCollectionID: q.Get("nft_collection_id"),
	}
	if raw := q.Get("status"); raw != "" {
		status, err := offer.ParseStatus(raw)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid status")
		}
		f.Status = &status
	}

	offers, err := h.service.ListOffers(r.Context(), f)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, offers)
	return nil
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	userID, err := apphttp.URLParamUUID(r, "id")
	if err != nil {
		return err
	}
	var role offer.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		if role, err = offer.ParseRole(raw); err != nil {
			return apperrors.BadRequestError(err, "role must be trader or fulfiller")
		}
	}

	offers, err := h.service.GetHistory(r.Context(), userID, role)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, offers)
	return nil
}
