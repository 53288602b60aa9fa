package get_experiment_stats

import (
	"github.com/m04kA/SMC-SiteOpsService/internal/service/abtest"
)

type ABTestService interface {
	Stats(testID string) (*abtest.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
