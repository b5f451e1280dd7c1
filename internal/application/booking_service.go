package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/ticket"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/user"
	redisinfra "github.com/sanosuguru/go-venue-ticket-management/internal/infrastructure/redis"
	"github.com/sanosuguru/go-venue-ticket-management/internal/pkg/logger"
	"github.com/sanosuguru/go-venue-ticket-management/internal/pkg/metrics"
)

// BookingConfig はチケット購入処理の設定
type BookingConfig struct {
	LockTTL       time.Duration
	LockRetries   int
	LockRetryWait time.Duration
}

// DefaultBookingConfig は既定の購入処理設定を返す
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		LockTTL:       10 * time.Second,
		LockRetries:   3,
		LockRetryWait: 100 * time.Millisecond,
	}
}

// BookingService はイベント座席の購入・払い戻しを行う
// 座席の状態遷移は Free --購入--> Booked --払い戻し--> Free のみ
type BookingService struct {
	txManager     transaction.Manager
	eventSeatRepo event.SeatRepository
	eventAreaRepo event.AreaRepository
	ticketRepo    ticket.Repository
	userRepo      user.Repository
	lockManager   redisinfra.LockManagerInterface
	cache         redisinfra.SeatCacheInterface
	cfg           BookingConfig

	// 現在時刻の取得（テストで差し替え可能）
	now func() time.Time
}

func NewBookingService(
	txManager transaction.Manager,
	eventSeatRepo event.SeatRepository,
	eventAreaRepo event.AreaRepository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	lockManager redisinfra.LockManagerInterface,
	cache redisinfra.SeatCacheInterface,
	cfg BookingConfig,
) *BookingService {
	return &BookingService{
		txManager:     txManager,
		eventSeatRepo: eventSeatRepo,
		eventAreaRepo: eventAreaRepo,
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		lockManager:   lockManager,
		cache:         cache,
		cfg:           cfg,
		now:           time.Now,
	}
}

type PurchaseSeatInput struct {
	EventSeatID int64
	UserID      int64
	Price       int
}

// PurchaseSeat は空席を購入する
// チケット作成・座席状態の遷移・残高の減算を1つのトランザクションで行う
// 座席状態の更新は期待状態付き（Free→Booked）のため、
// 同時購入があっても成功するのは最大1件となる
func (s *BookingService) PurchaseSeat(ctx context.Context, input PurchaseSeatInput) (*ticket.Ticket, error) {
	if input.EventSeatID <= 0 || input.UserID <= 0 {
		s.record("purchase", "error")
		return nil, event.ErrInvalidID
	}
	if input.Price < 0 {
		s.record("purchase", "error")
		return nil, ticket.ErrPriceNegative
	}

	// 分散ロックで同一座席への同時購入を直列化する
	if s.lockManager != nil {
		lock, err := s.lockManager.AcquireLockWithRetry(ctx, s.seatLockKey(input.EventSeatID),
			s.cfg.LockTTL, s.cfg.LockRetries, s.cfg.LockRetryWait)
		if err != nil {
			if errors.Is(err, redisinfra.ErrLockNotAcquired) {
				s.record("purchase", "lock_failed")
				return nil, fmt.Errorf("座席が他のユーザーによって処理中です")
			}
			s.record("purchase", "error")
			return nil, fmt.Errorf("ロック取得に失敗: %w", err)
		}
		defer lock.Release(ctx)
	}

	seat, err := s.eventSeatRepo.GetByID(ctx, input.EventSeatID)
	if err != nil {
		s.record("purchase", "error")
		return nil, err
	}
	if !seat.IsFree() {
		s.record("purchase", "conflict")
		return nil, event.ErrSeatAlreadyBooked
	}

	u, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		s.record("purchase", "error")
		return nil, err
	}
	if !u.CanAfford(input.Price) {
		s.record("purchase", "conflict")
		return nil, user.ErrInsufficientBalance
	}

	tk := ticket.NewTicket(seat.ID, u.ID, input.Price, s.now())
	if err := tk.Validate(); err != nil {
		s.record("purchase", "error")
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.record("purchase", "error")
		return nil, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if err := s.ticketRepo.Create(ctx, tx, tk); err != nil {
		s.record("purchase", "error")
		return nil, err
	}
	if err := s.eventSeatRepo.UpdateState(ctx, tx, seat.ID, event.SeatFree, event.SeatBooked); err != nil {
		if errors.Is(err, event.ErrSeatAlreadyBooked) {
			s.record("purchase", "conflict")
		} else {
			s.record("purchase", "error")
		}
		return nil, err
	}
	if err := s.userRepo.AdjustBalance(ctx, tx, u.ID, -input.Price); err != nil {
		s.record("purchase", "error")
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		s.record("purchase", "error")
		return nil, fmt.Errorf("コミットに失敗: %w", err)
	}

	s.invalidateCacheForSeat(ctx, seat.EventAreaID)
	s.record("purchase", "success")

	logger.Info("座席を購入しました",
		zap.Int64("ticket_id", tk.ID),
		zap.Int64("event_seat_id", seat.ID),
		zap.Int64("user_id", u.ID),
		zap.Int("price", input.Price),
	)
	return tk, nil
}

// RefundSeat はチケットを払い戻す
// 座席の解放・チケット削除・残高の加算を1つのトランザクションで行う
func (s *BookingService) RefundSeat(ctx context.Context, ticketID int64) error {
	if ticketID <= 0 {
		s.record("refund", "error")
		return ticket.ErrInvalidID
	}

	tk, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		s.record("refund", "error")
		return err
	}

	if s.lockManager != nil {
		lock, err := s.lockManager.AcquireLockWithRetry(ctx, s.seatLockKey(tk.EventSeatID),
			s.cfg.LockTTL, s.cfg.LockRetries, s.cfg.LockRetryWait)
		if err != nil {
			if errors.Is(err, redisinfra.ErrLockNotAcquired) {
				s.record("refund", "lock_failed")
				return fmt.Errorf("座席が他のユーザーによって処理中です")
			}
			s.record("refund", "error")
			return fmt.Errorf("ロック取得に失敗: %w", err)
		}
		defer lock.Release(ctx)
	}

	seat, err := s.eventSeatRepo.GetByID(ctx, tk.EventSeatID)
	if err != nil {
		s.record("refund", "error")
		return err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.record("refund", "error")
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if err := s.eventSeatRepo.UpdateState(ctx, tx, seat.ID, event.SeatBooked, event.SeatFree); err != nil {
		s.record("refund", "error")
		return err
	}
	if err := s.ticketRepo.Delete(ctx, tx, tk.ID); err != nil {
		s.record("refund", "error")
		return err
	}
	if err := s.userRepo.AdjustBalance(ctx, tx, tk.UserID, tk.Price); err != nil {
		s.record("refund", "error")
		return err
	}
	if err := tx.Commit(); err != nil {
		s.record("refund", "error")
		return fmt.Errorf("コミットに失敗: %w", err)
	}

	s.invalidateCacheForSeat(ctx, seat.EventAreaID)
	s.record("refund", "success")

	logger.Info("チケットを払い戻しました",
		zap.Int64("ticket_id", tk.ID),
		zap.Int64("event_seat_id", seat.ID),
		zap.Int64("user_id", tk.UserID),
		zap.Int("price", tk.Price),
	)
	return nil
}

func (s *BookingService) GetTicket(ctx context.Context, id int64) (*ticket.Ticket, error) {
	if id <= 0 {
		return nil, ticket.ErrInvalidID
	}
	return s.ticketRepo.GetByID(ctx, id)
}

func (s *BookingService) GetUserTickets(ctx context.Context, userID int64, limit, offset int) ([]*ticket.Ticket, error) {
	if userID <= 0 {
		return nil, ticket.ErrInvalidID
	}
	if limit <= 0 {
		limit = 20
	}
	return s.ticketRepo.GetByUserID(ctx, userID, limit, offset)
}

func (s *BookingService) seatLockKey(eventSeatID int64) string {
	return fmt.Sprintf("eventseat:%d", eventSeatID)
}

// invalidateCacheForSeat は座席の属するイベントの空席数キャッシュを無効化する
func (s *BookingService) invalidateCacheForSeat(ctx context.Context, eventAreaID int64) {
	if s.cache == nil {
		return
	}
	ea, err := s.eventAreaRepo.GetByID(ctx, eventAreaID)
	if err != nil {
		logger.Warn("イベントエリア取得エラー", zap.Error(err))
		return
	}
	if err := s.cache.Invalidate(ctx, ea.EventID); err != nil {
		logger.Warn("キャッシュ無効化エラー", zap.Error(err))
	}
}

func (s *BookingService) record(operation, status string) {
	if m := metrics.Get(); m != nil {
		m.TicketOperationsTotal.WithLabelValues(operation, status).Inc()
	}
}
