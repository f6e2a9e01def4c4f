package service

import (
	"context"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns a service reporting info. Empty build fields are
// reported as models.NotAvailable.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	logger.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("build info")

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
