// internal/router/router_test.go
package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/projectgichatbot-max/gitag-backend/internal/config"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository/fire"
)

const testJWTSecret = "router-test-secret"

// envelope mirrors the uniform response shape for decoding in assertions.
type envelope struct {
	Success    bool                 `json:"success"`
	Data       json.RawMessage      `json:"data"`
	Error      string               `json:"error"`
	Pagination *repository.PageInfo `json:"pagination"`
}

// RouterTestSuite drives the full HTTP surface against a provider whose
// primary driver is unreachable, so every request is served by the demo
// dataset after fallback.
type RouterTestSuite struct {
	suite.Suite
	engine *gin.Engine
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	provider := repository.NewProvider(
		func(ctx context.Context) (repository.Store, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
		func(ctx context.Context) (repository.Store, error) { return fire.NewDemo(), nil },
		logger,
	)

	// Select the backend up front, the way server startup does, so the
	// first request already sees the resolved driver.
	_, err := provider.Store(context.Background())
	s.Require().NoError(err)

	cfg := &config.Config{
		Environment: "test",
		Admin:       config.AdminConfig{JWTSecret: testJWTSecret},
		Upload:      config.UploadConfig{MaxSizeMB: 10, LocalDir: s.T().TempDir()},
	}
	s.engine = Initialize(provider, cfg, logger)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		s.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (s *RouterTestSuite) adminToken() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	s.NoError(err)
	return "Bearer " + signed
}

func (s *RouterTestSuite) TestHealthReportsFallbackBackend() {
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)

	var body map[string]string
	s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
	s.Equal("demo", body["backend"])
}

func (s *RouterTestSuite) TestListProductsEnvelope() {
	w, env := s.do(http.MethodGet, "/api/v1/products", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(env.Success)
	s.NotNil(env.Pagination)
	s.Equal(int64(4), env.Pagination.TotalItems)
	s.Equal(1, env.Pagination.CurrentPage)

	var products []map[string]any
	s.NoError(json.Unmarshal(env.Data, &products))
	s.Len(products, 4)
}

func (s *RouterTestSuite) TestListProductsMalformedPage() {
	w, env := s.do(http.MethodGet, "/api/v1/products?page=abc", nil, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)
	s.NotEmpty(env.Error)
}

func (s *RouterTestSuite) TestListProductsUnknownFilterField() {
	w, _ := s.do(http.MethodGet, "/api/v1/products?page=1&limit=2", nil, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env := s.do(http.MethodGet, "/api/v1/products?category=food", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	var products []map[string]any
	s.NoError(json.Unmarshal(env.Data, &products))
	s.Len(products, 2)
}

func (s *RouterTestSuite) TestGetProductNotFound() {
	w, env := s.do(http.MethodGet, "/api/v1/products/no-such-id", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.False(env.Success)
	s.Equal("record not found", env.Error)
}

func (s *RouterTestSuite) TestProductLifecycleAsAdmin() {
	auth := map[string]string{"Authorization": s.adminToken()}

	w, env := s.do(http.MethodPost, "/api/v1/products", map[string]any{
		"name":        "Tejpat Leaf Pack",
		"category":    "food",
		"region":      "Gangolihat",
		"description": "Dried bay leaves from Gangolihat, a GI-tagged spice of the Kumaon hills.",
		"giCertified": true,
	}, auth)
	s.Equal(http.StatusCreated, w.Code)
	s.True(env.Success)

	var created map[string]any
	s.NoError(json.Unmarshal(env.Data, &created))
	id, _ := created["id"].(string)
	s.NotEmpty(id)

	w, env = s.do(http.MethodPut, "/api/v1/products/"+id, map[string]any{"available": false}, auth)
	s.Equal(http.StatusOK, w.Code)
	var updated map[string]any
	s.NoError(json.Unmarshal(env.Data, &updated))
	s.Equal(false, updated["available"])

	w, _ = s.do(http.MethodDelete, "/api/v1/products/"+id, nil, auth)
	s.Equal(http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/products/"+id, nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestMutatingProductRoutesRequireAuth() {
	w, _ := s.do(http.MethodPost, "/api/v1/products", map[string]any{"name": "x"}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	// a non-admin token is forbidden, not unauthorized
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1", "role": "viewer", "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	s.NoError(err)

	w, _ = s.do(http.MethodPost, "/api/v1/products", map[string]any{"name": "x"},
		map[string]string{"Authorization": "Bearer " + signed})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestAddAndListReviews() {
	_, env := s.do(http.MethodGet, "/api/v1/products?limit=1", nil, nil)
	var products []map[string]any
	s.NoError(json.Unmarshal(env.Data, &products))
	id := products[0]["id"].(string)

	w, env := s.do(http.MethodPost, "/api/v1/products/"+id+"/reviews", map[string]any{
		"author": "Asha", "rating": 5, "comment": "Lovely",
	}, nil)
	s.Equal(http.StatusCreated, w.Code)

	var product map[string]any
	s.NoError(json.Unmarshal(env.Data, &product))
	s.Equal(5.0, product["rating"])
	s.Equal(1.0, product["reviewsCount"])

	w, env = s.do(http.MethodGet, "/api/v1/products/"+id+"/reviews", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	var reviews []map[string]any
	s.NoError(json.Unmarshal(env.Data, &reviews))
	s.Len(reviews, 1)
}

func (s *RouterTestSuite) TestReviewRatingOutOfRange() {
	_, env := s.do(http.MethodGet, "/api/v1/products?limit=1", nil, nil)
	var products []map[string]any
	s.NoError(json.Unmarshal(env.Data, &products))
	id := products[0]["id"].(string)

	w, _ := s.do(http.MethodPost, "/api/v1/products/"+id+"/reviews", map[string]any{
		"author": "Asha", "rating": 6,
	}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestSearchEndpoint() {
	w, env := s.do(http.MethodGet, "/api/v1/search?q=rajma", nil, nil)
	s.Equal(http.StatusOK, w.Code)

	var result repository.SearchResult
	s.NoError(json.Unmarshal(env.Data, &result))
	s.Equal(1, result.Total)
	s.Equal("Munsiyari Rajma", result.Products[0].Name)

	w, _ = s.do(http.MethodGet, "/api/v1/search", nil, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/search?q=rajma&type=sellers", nil, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestNewsletterFlow() {
	w, env := s.do(http.MethodPost, "/api/v1/newsletter/subscribe", map[string]string{
		"email": "Reader@Example.org",
	}, nil)
	s.Equal(http.StatusOK, w.Code)

	var sub map[string]any
	s.NoError(json.Unmarshal(env.Data, &sub))
	s.Equal("reader@example.org", sub["email"])
	s.Equal(true, sub["active"])

	w, env = s.do(http.MethodPost, "/api/v1/newsletter/unsubscribe", map[string]string{
		"email": "reader@example.org",
	}, nil)
	s.Equal(http.StatusOK, w.Code)
	s.NoError(json.Unmarshal(env.Data, &sub))
	s.Equal(false, sub["active"])

	// listing subscribers is admin-only
	w, _ = s.do(http.MethodGet, "/api/v1/newsletter/subscribers", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w, env = s.do(http.MethodGet, "/api/v1/newsletter/subscribers", nil,
		map[string]string{"Authorization": s.adminToken()})
	s.Equal(http.StatusOK, w.Code)
	var subs []map[string]any
	s.NoError(json.Unmarshal(env.Data, &subs))
	s.Len(subs, 1)
}

func (s *RouterTestSuite) TestInquiryFlow() {
	w, env := s.do(http.MethodPost, "/api/v1/inquiries", map[string]string{
		"name":    "Meera",
		"email":   "meera@example.org",
		"subject": "Workshop dates",
		"message": "When is the next Aipan workshop?",
	}, nil)
	s.Equal(http.StatusCreated, w.Code)

	var inquiry map[string]any
	s.NoError(json.Unmarshal(env.Data, &inquiry))
	id := inquiry["id"].(string)
	s.Equal("new", inquiry["status"])

	auth := map[string]string{"Authorization": s.adminToken()}
	w, env = s.do(http.MethodPut, "/api/v1/inquiries/"+id+"/status", map[string]string{"status": "read"}, auth)
	s.Equal(http.StatusOK, w.Code)
	s.NoError(json.Unmarshal(env.Data, &inquiry))
	s.Equal("read", inquiry["status"])

	w, _ = s.do(http.MethodPut, "/api/v1/inquiries/"+id+"/status", map[string]string{"status": "archived"}, auth)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestChatEndpoint() {
	w, env := s.do(http.MethodPost, "/api/v1/chat", map[string]string{"message": "namaste"}, nil)
	s.Equal(http.StatusOK, w.Code)

	var reply map[string]any
	s.NoError(json.Unmarshal(env.Data, &reply))
	s.Contains(reply["reply"], "Namaste")
}

func (s *RouterTestSuite) TestArtisanListAndGet() {
	w, env := s.do(http.MethodGet, "/api/v1/artisans", nil, nil)
	s.Equal(http.StatusOK, w.Code)

	var artisans []map[string]any
	s.NoError(json.Unmarshal(env.Data, &artisans))
	s.Len(artisans, 2)

	id := artisans[0]["id"].(string)
	w, env = s.do(http.MethodGet, "/api/v1/artisans/"+id, nil, nil)
	s.Equal(http.StatusOK, w.Code)

	var artisan map[string]any
	s.NoError(json.Unmarshal(env.Data, &artisan))
	s.Equal(artisans[0]["name"], artisan["name"])
}
