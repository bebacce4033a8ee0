package emitter

// Config describes the emitter's environment-driven configuration, consumed
// by NewFromEnv via the config package.
type Config struct {
	RedisURL   string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // RedisURL is the backing store connection URL, e.g. "redis://:password@localhost:6379/0".
	RedisToken string `env:"REDIS_TOKEN"`                                     // RedisToken overrides the password embedded in RedisURL when non-empty.
	Prefix     string `env:"EMITTER_PREFIX" envDefault:"io"`                  // Prefix namespaces all derived channel keys.
}
