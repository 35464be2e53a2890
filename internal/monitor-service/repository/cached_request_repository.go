package repository

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedRequestRepository is a read-through cache. Cache failures fall back to the wrapped repository.
type cachedRequestRepository struct {
	redis    redis.Cmdable
	repo     RequestRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

func (*cachedRequestRepository) getRequestCachedKey(id string) string {
	return fmt.Sprintf("request:%s", id)
}

func (c *cachedRequestRepository) GetRequestDetails(ctx context.Context, requestId string) (model.Request, error) {
	key := c.getRequestCachedKey(requestId)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var request model.Request
		e := gob.NewDecoder(bytes.NewReader(data)).Decode(&request)
		if e == nil {
			return request, nil
		}
		c.logger.Warn("discarding undecodable cached request", zap.String("request_id", requestId), zap.Error(e))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("request cache unavailable", zap.String("request_id", requestId), zap.Error(err))
	}

	request, err := c.repo.GetRequestDetails(ctx, requestId)
	if err != nil {
		return request, fmt.Errorf("cachedRequestRepository.GetRequestDetails: %w", err)
	}

	var buf bytes.Buffer
	if err = gob.NewEncoder(&buf).Encode(request); err != nil {
		c.logger.Warn("failed to encode request for cache", zap.String("request_id", requestId), zap.Error(err))
		return request, nil
	}
	if err = c.redis.Set(ctx, key, buf.Bytes(), c.cacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache request", zap.String("request_id", requestId), zap.Error(err))
	}
	return request, nil
}

func NewCachedRequestRepository(redis redis.Cmdable, repo RequestRepository, cacheTTL time.Duration, logger *zap.Logger) RequestRepository {
	return &cachedRequestRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}
