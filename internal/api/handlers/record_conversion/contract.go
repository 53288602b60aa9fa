package record_conversion

type ABTestService interface {
	RecordConversion(testID, visitorID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
