package get_leads

import (
	"context"

	"github.com/m04kA/SMC-SiteOpsService/internal/service/leads/models"
)

type LeadService interface {
	List(ctx context.Context) (*models.LeadListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
