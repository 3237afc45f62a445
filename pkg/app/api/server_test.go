package api

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/swap-offers/pkg/catalog"
	catalogmocks "github.com/chainsafe/swap-offers/pkg/catalog/mocks"
	"github.com/chainsafe/swap-offers/pkg/config"
	"github.com/chainsafe/swap-offers/pkg/offer"
	offermocks "github.com/chainsafe/swap-offers/pkg/offer/service/mocks"
	usermocks "github.com/chainsafe/swap-offers/pkg/user/service/mocks"
)

const testWallet = "0x1111111111111111111111111111111111111111"

func newTestServer(t *testing.T, doc string) (*Server, *services, *offermocks.Service, *catalogmocks.Reader) {
	t.Helper()
	cfg, err := config.ParseAPIServer([]byte(doc))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	offers := offermocks.NewService(t)
	reader := catalogmocks.NewReader(t)
	svcs := &services{
		users:   usermocks.NewService(t),
		offers:  offers,
		catalog: reader,
	}
	return NewServer(cfg), svcs, offers, reader
}

const baseConfig = `
database:
  user: test
`

func TestRouter_HealthAndMetrics(t *testing.T) {
	s, svcs, _, _ := newTestServer(t, baseConfig)
	r := s.setupRouter(svcs, zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics endpoint, got %d", rec.Code)
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	s, svcs, _, _ := newTestServer(t, baseConfig+`
metrics:
  enabled: false
`)
	r := s.setupRouter(svcs, zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with metrics disabled, got %d", rec.Code)
	}
}

func TestRouter_CreateOfferRequiresWallet(t *testing.T) {
	s, svcs, _, _ := newTestServer(t, baseConfig)
	r := s.setupRouter(svcs, zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/offers", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_GetOfferWithWalletHeader(t *testing.T) {
	s, svcs, offers, _ := newTestServer(t, baseConfig)
	r := s.setupRouter(svcs, zap.NewNop())

	id := uuid.New()
	offers.EXPECT().GetOffer(mock.Anything, id).Return(&offer.Offer{ID: id, Status: offer.StatusCreated}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/offers/"+id.String(), nil)
	req.Header.Set("X-Wallet-Address", testWallet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_CatalogRoutes(t *testing.T) {
	s, svcs, _, reader := newTestServer(t, baseConfig)
	r := s.setupRouter(svcs, zap.NewNop())

	reader.EXPECT().ListChains(mock.Anything).Return([]catalog.Chain{{ID: uuid.New(), ChainID: "1", Name: "Ethereum"}}, nil).Once()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chains", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_RateLimitPerWallet(t *testing.T) {
	s, svcs, _, reader := newTestServer(t, baseConfig+`
rate_limit:
  requests_per_minute: 1
  burst: 1
`)
	r := s.setupRouter(svcs, zap.NewNop())

	reader.EXPECT().ListChains(mock.Anything).Return(nil, nil).Once()

	send := func(wallet string) int {
		req := httptest.NewRequest(http.MethodGet, "/chains", nil)
		req.Header.Set("X-Wallet-Address", wallet)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(testWallet); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send(testWallet); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

func TestBuildServices_LogsFallbackPolicy(t *testing.T) {
	s, _, _, _ := newTestServer(t, baseConfig+`
offers:
  fallback_policy: open
`)
	// no connection is opened while wiring services
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })

	core, logs := observer.New(zap.InfoLevel)
	svcs, err := s.buildServices(db, catalog.NewStore(db), zap.New(core))
	if err != nil {
		t.Fatalf("buildServices() failed: %v", err)
	}
	if svcs.offers == nil || svcs.users == nil || svcs.catalog == nil {
		t.Fatalf("expected every service to be wired: %+v", svcs)
	}

	entries := logs.FilterMessage("Offer lifecycle engine ready").All()
	if len(entries) != 1 {
		t.Fatalf("expected one readiness log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["fallback_policy"]; got != string(offer.FallbackOpen) {
		t.Fatalf("expected fallback_policy %q, got %v", offer.FallbackOpen, got)
	}
}
