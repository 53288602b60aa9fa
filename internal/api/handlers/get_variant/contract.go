package get_variant

import (
	"github.com/m04kA/SMC-SiteOpsService/internal/service/abtest"
)

type ABTestService interface {
	GetVariant(testID, visitorID string) (*abtest.VariantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
