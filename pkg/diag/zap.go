package diag

import "go.uber.org/zap"

type zapSink struct {
	logger *zap.SugaredLogger
}

// NewZap adapts a zap sugared logger into a Sink. A nil logger falls back to
// the nop sink so callers can wire configuration unconditionally.
func NewZap(logger *zap.SugaredLogger) Sink {
	if logger == nil {
		return Nop()
	}
	return zapSink{logger: logger}
}

func (s zapSink) Info(msg string, keysAndValues ...any) {
	s.logger.Infow(msg, keysAndValues...)
}

func (s zapSink) Warn(msg string, keysAndValues ...any) {
	s.logger.Warnw(msg, keysAndValues...)
}
