package emitter

import "log/slog"

type settings struct {
	prefix string
	log    *slog.Logger
	buffer int
}

func defaultSettings() settings {
	return settings{
		prefix: DefaultPrefix,
		log:    slog.Default(),
		buffer: 100,
	}
}

// Option configures emitters and listeners.
type Option func(*settings)

// WithPrefix overrides the key namespace prefix. Empty values are ignored to
// keep key derivation well-formed.
func WithPrefix(prefix string) Option {
	return func(s *settings) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithLogger sets the diagnostics logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBufferSize sets the listener's frame channel buffer. Values below one
// are ignored.
func WithBufferSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.buffer = n
		}
	}
}
