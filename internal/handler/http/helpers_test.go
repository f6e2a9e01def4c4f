package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-diner/internal/config"
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/metrics"
	"github.com/MKhiriev/go-diner/internal/mock"
	"github.com/MKhiriev/go-diner/internal/service"
	"github.com/MKhiriev/go-diner/models"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

var testClaim = models.Claim{Email: "u@d.com", Name: "U"}

type serviceMocks struct {
	auth      *mock.MockAuthService
	foods     *mock.MockFoodService
	orders    *mock.MockOrderService
	users     *mock.MockUserService
	addedFood *mock.MockAddedFoodService
	appInfo   *mock.MockAppInfoService
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-secret",
			TokenIssuer:   "go-diner-test",
			TokenDuration: time.Hour,
			Environment:   config.EnvironmentDevelopment,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestHandler returns a handler over gomock services. The session gate
// accepts validToken as testClaim.
func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	return newTestHandlerWithConfig(t, testConfig())
}

func newTestHandlerWithConfig(t *testing.T, cfg *config.StructuredConfig) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:      mock.NewMockAuthService(ctrl),
		foods:     mock.NewMockFoodService(ctrl),
		orders:    mock.NewMockOrderService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		addedFood: mock.NewMockAddedFoodService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(testClaim, nil).AnyTimes()
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(validToken)).Return(models.Claim{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	svcs := &service.Services{
		AuthService:      m.auth,
		FoodService:      m.foods,
		OrderService:     m.orders,
		UserService:      m.users,
		AddedFoodService: m.addedFood,
		AppInfoService:   m.appInfo,
	}

	return NewHandler(svcs, metrics.New(), cfg, logger.Nop()), m
}

// serve runs one request through the full router.
func serve(h *Handler, method, target, body string, withSession bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if withSession {
		req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: validToken})
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}
