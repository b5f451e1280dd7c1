package worker

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	redisinfra "github.com/sanosuguru/go-venue-ticket-management/internal/infrastructure/redis"
	"github.com/sanosuguru/go-venue-ticket-management/internal/pkg/logger"
	"github.com/sanosuguru/go-venue-ticket-management/internal/pkg/metrics"
)

// 1回の収集で対象とするイベント数の上限
const statsEventLimit = 100

// EventLister はイベント一覧を取得するインターフェース
type EventLister interface {
	List(ctx context.Context, limit, offset int) ([]*event.Event, error)
}

// SeatCounter は状態別の座席数を取得するインターフェース
type SeatCounter interface {
	CountByEventIDAndState(ctx context.Context, eventID int64, state event.SeatState) (int, error)
}

// SeatStatsCollector はイベントごとの座席状態を定期収集するワーカー
// Prometheusゲージの更新と空席数キャッシュのウォームアップを行う
type SeatStatsCollector struct {
	events   EventLister
	seats    SeatCounter
	cache    redisinfra.SeatCacheInterface
	metrics  *metrics.Metrics
	interval time.Duration
	cacheTTL time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSeatStatsCollector は新しいコレクターを作成
func NewSeatStatsCollector(
	events EventLister,
	seats SeatCounter,
	cache redisinfra.SeatCacheInterface,
	m *metrics.Metrics,
	interval time.Duration,
	cacheTTL time.Duration,
) *SeatStatsCollector {
	return &SeatStatsCollector{
		events:   events,
		seats:    seats,
		cache:    cache,
		metrics:  m,
		interval: interval,
		cacheTTL: cacheTTL,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はコレクターを開始
func (c *SeatStatsCollector) Start(ctx context.Context) {
	logger.Info("座席統計コレクター開始", zap.Duration("interval", c.interval))

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	defer close(c.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("座席統計コレクター停止（コンテキストキャンセル）")
			return
		case <-c.stopCh:
			logger.Info("座席統計コレクター停止（シグナル受信）")
			return
		case <-ticker.C:
			c.collect(ctx)
		}
	}
}

// Stop はコレクターを停止
func (c *SeatStatsCollector) Stop() {
	close(c.stopCh)
	<-c.doneCh
}

// collect は全イベントの座席状態を収集する
func (c *SeatStatsCollector) collect(ctx context.Context) {
	log := logger.Get()
	log.Debug("座席統計の収集開始")

	events, err := c.events.List(ctx, statsEventLimit, 0)
	if err != nil {
		log.Error("イベント一覧の取得失敗", zap.Error(err))
		return
	}

	for _, e := range events {
		free, err := c.seats.CountByEventIDAndState(ctx, e.ID, event.SeatFree)
		if err != nil {
			log.Error("空席数の取得失敗", zap.Int64("event_id", e.ID), zap.Error(err))
			continue
		}
		booked, err := c.seats.CountByEventIDAndState(ctx, e.ID, event.SeatBooked)
		if err != nil {
			log.Error("購入済み座席数の取得失敗", zap.Int64("event_id", e.ID), zap.Error(err))
			continue
		}

		eventID := strconv.FormatInt(e.ID, 10)
		c.metrics.EventSeatStates.WithLabelValues(eventID, string(event.SeatFree)).Set(float64(free))
		c.metrics.EventSeatStates.WithLabelValues(eventID, string(event.SeatBooked)).Set(float64(booked))

		// キャッシュのウォームアップ
		if err := c.cache.SetFreeCount(ctx, e.ID, free, c.cacheTTL); err != nil {
			log.Warn("空席数キャッシュの更新失敗", zap.Int64("event_id", e.ID), zap.Error(err))
		}
	}

	log.Debug("座席統計の収集完了", zap.Int("events", len(events)))
}
