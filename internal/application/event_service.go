package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
	redisinfra "github.com/sanosuguru/go-venue-ticket-management/internal/infrastructure/redis"
	"github.com/sanosuguru/go-venue-ticket-management/internal/pkg/logger"
)

const seatCacheTTL = 30 * time.Second

// EventService はイベントとそのスナップショットの管理を行う
type EventService struct {
	txManager     transaction.Manager
	layoutRepo    venue.LayoutRepository
	areaRepo      venue.AreaRepository
	seatRepo      venue.SeatRepository
	eventRepo     event.Repository
	eventAreaRepo event.AreaRepository
	eventSeatRepo event.SeatRepository
	cache         redisinfra.SeatCacheInterface

	// 現在時刻の取得（テストで差し替え可能）
	now func() time.Time
}

func NewEventService(
	txManager transaction.Manager,
	layoutRepo venue.LayoutRepository,
	areaRepo venue.AreaRepository,
	seatRepo venue.SeatRepository,
	eventRepo event.Repository,
	eventAreaRepo event.AreaRepository,
	eventSeatRepo event.SeatRepository,
	cache redisinfra.SeatCacheInterface,
) *EventService {
	return &EventService{
		txManager:     txManager,
		layoutRepo:    layoutRepo,
		areaRepo:      areaRepo,
		seatRepo:      seatRepo,
		eventRepo:     eventRepo,
		eventAreaRepo: eventAreaRepo,
		eventSeatRepo: eventSeatRepo,
		cache:         cache,
		now:           time.Now,
	}
}

type CreateEventInput struct {
	LayoutID      int64
	Name          string
	Description   string
	DateStart     time.Time
	DateEnd       time.Time
	ShowTime      time.Time
	BaseAreaPrice int
	ImageURL      string
}

// CreateEvent はイベントを作成し、レイアウト配下のエリア・座席を
// EventArea/EventSeatへスナップショットする
// イベント本体とスナップショット全体を1つのトランザクションで作成する
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*event.Event, error) {
	e := event.NewEvent(input.LayoutID, input.Name, input.Description,
		input.DateStart, input.DateEnd, input.ShowTime, input.BaseAreaPrice, input.ImageURL)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := e.ValidateStart(s.now()); err != nil {
		return nil, err
	}

	layout, err := s.layoutRepo.GetByID(ctx, e.LayoutID)
	if err != nil {
		return nil, fmt.Errorf("レイアウト取得に失敗: %w", err)
	}
	if err := s.checkSchedule(ctx, layout.VenueID, e, 0); err != nil {
		return nil, err
	}

	areas, err := s.areaRepo.GetByLayoutID(ctx, e.LayoutID)
	if err != nil {
		return nil, fmt.Errorf("エリア取得に失敗: %w", err)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if err := s.eventRepo.Create(ctx, tx, e); err != nil {
		return nil, err
	}

	eventAreas := make([]*event.EventArea, 0, len(areas))
	for _, a := range areas {
		eventAreas = append(eventAreas, event.SnapshotArea(e.ID, a.ID, a.Description, a.CoordX, a.CoordY, e.BaseAreaPrice))
	}
	if err := s.eventAreaRepo.CreateBulk(ctx, tx, eventAreas); err != nil {
		return nil, err
	}

	var eventSeats []*event.EventSeat
	for i, a := range areas {
		seats, err := s.seatRepo.GetByAreaID(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("座席取得に失敗: %w", err)
		}
		for _, seat := range seats {
			eventSeats = append(eventSeats, event.SnapshotSeat(eventAreas[i].ID, seat.Row, seat.Number))
		}
	}
	if err := s.eventSeatRepo.CreateBulk(ctx, tx, eventSeats); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("コミットに失敗: %w", err)
	}

	logger.Info("イベントを作成しました",
		zap.Int64("event_id", e.ID),
		zap.Int("event_areas", len(eventAreas)),
		zap.Int("event_seats", len(eventSeats)),
	)
	return e, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	if id <= 0 {
		return nil, event.ErrInvalidID
	}
	return s.eventRepo.GetByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context, limit, offset int) ([]*event.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.eventRepo.List(ctx, limit, offset)
}

func (s *EventService) GetEventsByLayout(ctx context.Context, layoutID int64) ([]*event.Event, error) {
	if layoutID <= 0 {
		return nil, event.ErrInvalidID
	}
	return s.eventRepo.GetByLayoutID(ctx, layoutID)
}

type UpdateEventInput struct {
	ID            int64
	Name          string
	Description   string
	DateStart     time.Time
	DateEnd       time.Time
	ShowTime      time.Time
	BaseAreaPrice int
	ImageURL      string
}

// UpdateEvent はイベントを更新する
// スナップショット（EventArea/EventSeat）へは影響しない
// 過去日時チェックは作成時のみで、編集では期間の重複のみを再検証する
func (s *EventService) UpdateEvent(ctx context.Context, input UpdateEventInput) (*event.Event, error) {
	if input.ID <= 0 {
		return nil, event.ErrInvalidID
	}
	e, err := s.eventRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	e.Name = input.Name
	e.Description = input.Description
	e.DateStart = input.DateStart
	e.DateEnd = input.DateEnd
	e.ShowTime = input.ShowTime
	e.BaseAreaPrice = input.BaseAreaPrice
	e.ImageURL = input.ImageURL
	if err := e.Validate(); err != nil {
		return nil, err
	}

	layout, err := s.layoutRepo.GetByID(ctx, e.LayoutID)
	if err != nil {
		return nil, fmt.Errorf("レイアウト取得に失敗: %w", err)
	}
	if err := s.checkSchedule(ctx, layout.VenueID, e, e.ID); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEvent はイベントをスナップショットとともに削除する
// 配下のいずれかのイベント座席が購入済みの場合は削除しない
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if id <= 0 {
		return event.ErrInvalidID
	}
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		return err
	}

	err := cascadeDelete(ctx, s.txManager,
		func(ctx context.Context) (int, error) {
			return s.eventSeatRepo.CountBookedByEventID(ctx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventSeatRepo.DeleteByEventID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventAreaRepo.DeleteByEventID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventRepo.Delete(ctx, tx, id)
		},
	)
	if err != nil {
		return err
	}

	s.invalidateCache(ctx, id)
	return nil
}

func (s *EventService) GetEventAreas(ctx context.Context, eventID int64) ([]*event.EventArea, error) {
	if eventID <= 0 {
		return nil, event.ErrInvalidID
	}
	return s.eventAreaRepo.GetByEventID(ctx, eventID)
}

// UpdateEventAreaPrice はイベントエリアの価格を変更する
// スナップショット後の価格改定のための唯一の編集操作
func (s *EventService) UpdateEventAreaPrice(ctx context.Context, id int64, price int) (*event.EventArea, error) {
	if id <= 0 {
		return nil, event.ErrInvalidID
	}
	if price < 0 {
		return nil, event.ErrEventAreaPriceNegative
	}
	ea, err := s.eventAreaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.eventAreaRepo.UpdatePrice(ctx, id, price); err != nil {
		return nil, err
	}
	ea.Price = price
	return ea, nil
}

// DeleteEventArea はイベントエリアを配下の座席とともに削除する
// 配下のいずれかの座席が購入済みの場合は削除しない
func (s *EventService) DeleteEventArea(ctx context.Context, id int64) error {
	if id <= 0 {
		return event.ErrInvalidID
	}
	ea, err := s.eventAreaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = cascadeDelete(ctx, s.txManager,
		func(ctx context.Context) (int, error) {
			return s.eventSeatRepo.CountBookedByEventAreaID(ctx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventSeatRepo.DeleteByEventAreaID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventAreaRepo.Delete(ctx, tx, id)
		},
	)
	if err != nil {
		return err
	}

	s.invalidateCache(ctx, ea.EventID)
	return nil
}

func (s *EventService) GetEventSeats(ctx context.Context, eventAreaID int64) ([]*event.EventSeat, error) {
	if eventAreaID <= 0 {
		return nil, event.ErrInvalidID
	}
	return s.eventSeatRepo.GetByEventAreaID(ctx, eventAreaID)
}

// DeleteEventSeat はイベント座席を個別に削除する
// 購入済みの座席は削除できない（払い戻しを先に行う）
func (s *EventService) DeleteEventSeat(ctx context.Context, id int64) error {
	if id <= 0 {
		return event.ErrInvalidID
	}
	seat, err := s.eventSeatRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !seat.IsFree() {
		return event.ErrBookedSeatsExist
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if err := s.eventSeatRepo.Delete(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("コミットに失敗: %w", err)
	}
	return nil
}

// CountFreeSeats はイベントの空席数を取得する（キャッシュ優先）
func (s *EventService) CountFreeSeats(ctx context.Context, eventID int64) (int, error) {
	if eventID <= 0 {
		return 0, event.ErrInvalidID
	}

	if s.cache != nil {
		count, err := s.cache.GetFreeCount(ctx, eventID)
		if err == nil {
			logger.Debug("キャッシュヒット", zap.Int64("event_id", eventID), zap.Int("count", count))
			return count, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	count, err := s.eventSeatRepo.CountByEventIDAndState(ctx, eventID, event.SeatFree)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.SetFreeCount(ctx, eventID, count, seatCacheTTL); cacheErr != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(cacheErr))
		}
	}
	return count, nil
}

// checkSchedule は同一会場内でのイベント期間の重複を検証する
// excludeIDが正の場合はそのイベント自身を除外する（編集時の再検証用）
func (s *EventService) checkSchedule(ctx context.Context, venueID int64, e *event.Event, excludeID int64) error {
	others, err := s.eventRepo.GetByVenueID(ctx, venueID)
	if err != nil {
		return fmt.Errorf("イベント取得に失敗: %w", err)
	}
	for _, other := range others {
		if excludeID > 0 && other.ID == excludeID {
			continue
		}
		if e.Overlaps(other) {
			return event.ErrEventPeriodTaken
		}
	}
	return nil
}

func (s *EventService) invalidateCache(ctx context.Context, eventID int64) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, eventID); err != nil {
			logger.Warn("キャッシュ無効化エラー", zap.Error(err))
		}
	}
}
