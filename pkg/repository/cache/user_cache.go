// Package cache decorates repositories with a Redis read-through layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/logging"
)

const userKeyPrefix = "user:"

// cachedUser omits the password hash; cached entries serve identity lookups only.
type cachedUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserCache implements auth.UserRepository. GetByID is served from Redis
// when possible; everything else goes straight to the wrapped repository.
// Users are immutable, so entries only expire by TTL.
type UserCache struct {
	next   auth.UserRepository
	client redis.Cmdable
	ttl    time.Duration
	log    logging.Logger
}

func NewUserCache(next auth.UserRepository, client redis.Cmdable, ttl time.Duration, log logging.Logger) *UserCache {
	return &UserCache{next: next, client: client, ttl: ttl, log: log}
}

func (c *UserCache) Create(ctx context.Context, user auth.User) error {
	return c.next.Create(ctx, user)
}

func (c *UserCache) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return c.next.GetByEmail(ctx, email)
}

func (c *UserCache) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	key := userKeyPrefix + id.String()
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cu cachedUser
		if jerr := json.Unmarshal(raw, &cu); jerr == nil {
			return auth.User{ID: cu.ID, Name: cu.Name, Email: cu.Email, CreatedAt: cu.CreatedAt}, nil
		}
		c.log.Warn(ctx, "user cache: corrupt entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.log.Warn(ctx, "user cache: get failed", "key", key, "err", err)
	}

	user, err := c.next.GetByID(ctx, id)
	if err != nil {
		return auth.User{}, err
	}
	data, err := json.Marshal(cachedUser{ID: user.ID, Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt})
	if err == nil {
		if serr := c.client.Set(ctx, key, data, c.ttl).Err(); serr != nil {
			c.log.Warn(ctx, "user cache: set failed", "key", key, "err", serr)
		}
	}
	return user, nil
}
