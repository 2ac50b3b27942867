package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"giveaway-server/internal/observability"
)

// asynqLogger adapts observability.Logger to the asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(context.Background(), msg, errors.New(msg))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Fatal(context.Background(), msg, errors.New(msg))
}
