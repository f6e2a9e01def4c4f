package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetAppInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), logger.Nop())

	info := svc.GetAppInfo(context.Background())

	assert.Equal(t, "v1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestAppInfoService_EmptyFieldsAreNotAvailable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", "deadbeef"), logger.Nop())

	info := svc.GetAppInfo(context.Background())

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "deadbeef", info.BuildCommit())
}

func TestAppInfoService_CancelledContext(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1", "d", "c"), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// GetAppInfo does not use ctx
	assert.Equal(t, "v1", svc.GetAppInfo(ctx).BuildVersion())
}
