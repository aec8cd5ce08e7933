package go_bilock

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	// logger receives contract violations before the panic, and
	// cancelled acquisitions at debug level. Falls back to zap.L().
	logger *zap.Logger

	// unlockSpinYield makes Unlock call runtime.Gosched between attempts
	// on a contended waker slot.
	unlockSpinYield bool
}

var defaultOptions = options{
	logger:          nil,
	unlockSpinYield: true,
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithUnlockSpinYield(yield bool) Option {
	return func(o *options) {
		o.unlockSpinYield = yield
	}
}
