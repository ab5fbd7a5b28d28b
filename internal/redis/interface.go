package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy mocking
// Naming considerations:
// - "Client" is simple and clear in the redis package context
// - "UniversalClient" matches redis terminology but reads oddly at call sites
type Client interface {
	redis.UniversalClient
}

// Nil is returned by Get when a key does not exist
var Nil = redis.Nil
