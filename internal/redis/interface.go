package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on an
// interface the tests can stand in for with miniredis.
type Client interface {
	redis.UniversalClient
}
