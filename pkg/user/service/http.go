package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/swap-offers/pkg/app/http"
	"github.com/chainsafe/swap-offers/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the user service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/users", apphttp.HandleError(h.register))
	r.Get("/users/{id}", apphttp.HandleError(h.get))
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	var req user.RegisterRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.RegisterUser(r.Context(), &req)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	apphttp.WriteJSON(w, status, resp)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	id, err := apphttp.URLParamUUID(r, "id")
	if err != nil {
		return err
	}

	usr, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, usr)
	return nil
}
