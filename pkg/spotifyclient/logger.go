package spotifyclient

import (
	"go.uber.org/zap"

	"github.com/fivetwenty-io/spotify/pkg/spotify"
)

// NewZapLogger adapts a zap logger to the spotify.Logger interface so it can
// serve as the client's diagnostics sink.
func NewZapLogger(logger *zap.Logger) spotify.Logger {
	return &zapLogger{logger: logger.Sugar()}
}

type zapLogger struct {
	logger *zap.SugaredLogger
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Errorw(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		kv = append(kv, key, value)
	}

	return kv
}
