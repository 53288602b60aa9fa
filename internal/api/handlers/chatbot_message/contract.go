package chatbot_message

import (
	"context"

	"github.com/m04kA/SMC-SiteOpsService/internal/service/chatbot"
)

type ChatbotService interface {
	ProcessMessage(ctx context.Context, req *chatbot.Request) (*chatbot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
