// Package redis wraps the go-redis client with the small amount of plumbing
// the relay needs: lazy client construction from a connection URL, an eager
// Connect with bounded retries for applications that want to fail fast at
// startup, and a health-check probe.
//
// Configuration comes from the Config struct, usually populated from
// environment variables via github.com/caarlos0/env:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // terminate: the store never became reachable
//	}
//	defer client.Close()
//
// Sentinel errors (ErrNotReady, ErrFailedToParseConnString) are joined with
// the underlying go-redis error via errors.Join, so both layers remain
// matchable with errors.Is.
package redis
