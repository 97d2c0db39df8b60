package service

import (
	"context"
	"encoding/json"
	"time"

	"clinicflow/internal/domain/entity"
	"clinicflow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	identityKeyPrefix = "identity:"

	// Identities barely change; a short TTL keeps the per-request user
	// lookup off Postgres without holding session state in Redis.
	identityTTL = 30 * time.Second
)

// IdentityCache resolves the authenticated user for a request: Redis
// read-through first, Postgres on miss. Returns (nil, nil) when the identity
// no longer exists. The cached projection is the JSON form of the user, so
// the password hash (json:"-") never reaches Redis.
type IdentityCache struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	userRepo    repository.UserRepository
}

func NewIdentityCache(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, userRepo repository.UserRepository) *IdentityCache {
	return &IdentityCache{
		db:          db,
		redisClient: redisClient,
		log:         log,
		userRepo:    userRepo,
	}
}

func (c *IdentityCache) Resolve(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	key := identityKeyPrefix + userID.String()

	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var user entity.User
		decodeErr := json.Unmarshal(data, &user)
		if decodeErr == nil {
			return &user, nil
		}
		c.log.Warnf("Failed to decode cached identity %s: %+v", userID, decodeErr)
	} else if err != redis.Nil {
		c.log.Warnf("Failed to read identity cache: %+v", err)
	}

	user, err := c.userRepo.FindByID(c.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if data, err := json.Marshal(user); err == nil {
		if err := c.redisClient.Set(ctx, key, data, identityTTL).Err(); err != nil {
			c.log.Warnf("Failed to write identity cache: %+v", err)
		}
	}

	return user, nil
}
