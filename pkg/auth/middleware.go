package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/swap-offers/pkg/app/errors"
	apphttp "github.com/chainsafe/swap-offers/pkg/app/http"
	"github.com/chainsafe/swap-offers/pkg/config"
)

// Middleware identifies the caller of a request by wallet address.
//
// With a JWKS endpoint configured, the wallet is taken from a verified bearer
// token and the wallet header is ignored. Without one, the wallet header is
// trusted as is. Requests carrying neither pass through anonymously.
type Middleware struct {
	validator    *JWTValidator
	walletClaim  string
	walletHeader string
	logger       *zap.Logger
}

// NewMiddleware creates the caller identification middleware.
func NewMiddleware(cfg *config.AuthConfig, logger *zap.Logger) *Middleware {
	m := &Middleware{
		walletClaim:  cfg.WalletClaim,
		walletHeader: cfg.WalletHeader,
		logger:       logger,
	}
	if cfg.JWKSURL != "" {
		m.validator = NewJWTValidator(cfg.JWKSURL, cfg.Issuer)
	}
	return m
}

// Handler wraps next with caller identification.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if m.validator.IsConfigured() {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				next.ServeHTTP(w, r)
				return
			}
			token, ok := strings.CutPrefix(authz, "Bearer ")
			if !ok || token == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "invalid authorization header"))
				return
			}
			claims, err := m.validator.ValidateToken(ctx, token)
			if err != nil {
				m.logger.Debug("Rejected bearer token", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}
			wallet, err := WalletFromClaims(claims, m.walletClaim)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "token carries no valid wallet"))
				return
			}
			ctx = WithWallet(ctx, wallet)
			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				ctx = WithSubject(ctx, sub)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		raw := r.Header.Get(m.walletHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		wallet, err := NormalizeWallet(raw)
		if err != nil {
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid wallet header"))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithWallet(ctx, wallet)))
	})
}

// RateLimitKey keys rate limiting on the caller's wallet, falling back to the
// client IP for anonymous requests.
func RateLimitKey(r *http.Request) string {
	if wallet, ok := WalletFromContext(r.Context()); ok {
		return "wallet:" + wallet
	}
	return "ip:" + apphttp.ClientIP(r)
}
