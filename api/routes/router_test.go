package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/internal/community"
	pkgauth "github.com/mateoquintero/venturelink-backend/pkg/auth"
	"github.com/mateoquintero/venturelink-backend/pkg/config"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	"github.com/mateoquintero/venturelink-backend/pkg/types"
)

type stubSessionChecker struct{ ok bool }

func (s stubSessionChecker) HasSession(context.Context, string) (bool, error) {
	return s.ok, nil
}

type stubCommunityService struct {
	similar []community.SimilarVendorDTO
}

func (s stubCommunityService) FindSimilarVendors(context.Context, uuid.UUID, int) ([]community.SimilarVendorDTO, error) {
	return s.similar, nil
}

func (s stubCommunityService) CreateCommunityGroups(context.Context) ([]community.GroupDTO, error) {
	return nil, nil
}

func (s stubCommunityService) RecommendCommunityActions(context.Context, uuid.UUID) ([]community.ActionDTO, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "venturelink", ExpirationMinutes: 30},
	}
}

func mintToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID:   uuid.New(),
		Username: "tester",
		UserType: enums.UserTypeVendor,
		JTI:      uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := NewRouter(testConfig(), nil, nil, stubSessionChecker{ok: true}, Services{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := NewRouter(testConfig(), nil, nil, stubSessionChecker{ok: true}, Services{
		Community: stubCommunityService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/community/groups", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestProtectedRouteAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	vendorID := uuid.New()
	router := NewRouter(cfg, nil, nil, stubSessionChecker{ok: true}, Services{
		Community: stubCommunityService{similar: []community.SimilarVendorDTO{
			{VendorID: vendorID, BusinessName: "Side Street Coffee"},
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/community/similar-vendors/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var body types.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	list, ok := body.Data.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected payload %v", body.Data)
	}
}

func TestProtectedRouteRejectsRevokedSession(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(cfg, nil, nil, stubSessionChecker{ok: false}, Services{
		Community: stubCommunityService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/community/groups", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
