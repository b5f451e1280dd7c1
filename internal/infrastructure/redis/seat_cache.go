package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("キャッシュが見つかりません")

// SeatCacheInterface は空席数キャッシュのインターフェース
// サービス層のテストでモックに差し替えるための抽象化
type SeatCacheInterface interface {
	GetFreeCount(ctx context.Context, eventID int64) (int, error)
	SetFreeCount(ctx context.Context, eventID int64, count int, ttl time.Duration) error
	Invalidate(ctx context.Context, eventID int64) error
}

// SeatCache はイベントごとの空席数キャッシュを管理する
type SeatCache struct {
	client *redis.Client
}

// NewSeatCache は新しいSeatCacheインスタンスを作成する
func NewSeatCache(client *redis.Client) *SeatCache {
	return &SeatCache{client: client}
}

// GetFreeCount はイベントの空席数をキャッシュから取得する
func (c *SeatCache) GetFreeCount(ctx context.Context, eventID int64) (int, error) {
	val, err := c.client.Get(ctx, c.freeCountKey(eventID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	return val, nil
}

// SetFreeCount はイベントの空席数をキャッシュに保存する
func (c *SeatCache) SetFreeCount(ctx context.Context, eventID int64, count int, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.freeCountKey(eventID), count, ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// Invalidate はイベントのキャッシュを無効化する
func (c *SeatCache) Invalidate(ctx context.Context, eventID int64) error {
	if err := c.client.Del(ctx, c.freeCountKey(eventID)).Err(); err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func (c *SeatCache) freeCountKey(eventID int64) string {
	return fmt.Sprintf("seats:free:%d", eventID)
}

var _ SeatCacheInterface = (*SeatCache)(nil)
