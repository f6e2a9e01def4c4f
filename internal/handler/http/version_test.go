package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-diner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLiveness(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "The diner running", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.0.0", "2026-10-15", "abc123"))

	rec := serve(h, http.MethodGet, "/version", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"v1.0.0","date":"2026-10-15","commit":"abc123"}`, rec.Body.String())
}
