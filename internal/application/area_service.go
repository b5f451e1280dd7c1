package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

// AreaService はエリアと座席の管理を行う
type AreaService struct {
	txManager     transaction.Manager
	layoutRepo    venue.LayoutRepository
	areaRepo      venue.AreaRepository
	seatRepo      venue.SeatRepository
	eventSeatRepo event.SeatRepository
}

func NewAreaService(
	txManager transaction.Manager,
	layoutRepo venue.LayoutRepository,
	areaRepo venue.AreaRepository,
	seatRepo venue.SeatRepository,
	eventSeatRepo event.SeatRepository,
) *AreaService {
	return &AreaService{
		txManager:     txManager,
		layoutRepo:    layoutRepo,
		areaRepo:      areaRepo,
		seatRepo:      seatRepo,
		eventSeatRepo: eventSeatRepo,
	}
}

type CreateAreaInput struct {
	LayoutID    int64
	Description string
	CoordX      int
	CoordY      int
}

func (s *AreaService) CreateArea(ctx context.Context, input CreateAreaInput) (*venue.Area, error) {
	a := venue.NewArea(input.LayoutID, input.Description, input.CoordX, input.CoordY)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.layoutRepo.GetByID(ctx, a.LayoutID); err != nil {
		return nil, fmt.Errorf("レイアウト取得に失敗: %w", err)
	}
	if err := s.checkAreaDescription(ctx, a.LayoutID, a.Description, 0); err != nil {
		return nil, err
	}
	if err := s.areaRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("エリア作成に失敗しました: %w", err)
	}
	return a, nil
}

func (s *AreaService) GetArea(ctx context.Context, id int64) (*venue.Area, error) {
	if id <= 0 {
		return nil, venue.ErrInvalidID
	}
	return s.areaRepo.GetByID(ctx, id)
}

func (s *AreaService) GetAreasByLayout(ctx context.Context, layoutID int64) ([]*venue.Area, error) {
	if layoutID <= 0 {
		return nil, venue.ErrInvalidID
	}
	return s.areaRepo.GetByLayoutID(ctx, layoutID)
}

type UpdateAreaInput struct {
	ID          int64
	Description string
	CoordX      int
	CoordY      int
}

// UpdateArea はエリアを更新する
// 既存イベントのスナップショットへは影響しない
func (s *AreaService) UpdateArea(ctx context.Context, input UpdateAreaInput) (*venue.Area, error) {
	if input.ID <= 0 {
		return nil, venue.ErrInvalidID
	}
	a, err := s.areaRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	a.Description = input.Description
	a.CoordX = input.CoordX
	a.CoordY = input.CoordY
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAreaDescription(ctx, a.LayoutID, a.Description, a.ID); err != nil {
		return nil, err
	}
	if err := s.areaRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteArea はエリアを配下の座席とともに削除する
// このエリアからスナップショットされたイベント座席に購入済みがある場合は削除しない
func (s *AreaService) DeleteArea(ctx context.Context, id int64) error {
	if id <= 0 {
		return venue.ErrInvalidID
	}
	if _, err := s.areaRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return cascadeDelete(ctx, s.txManager,
		func(ctx context.Context) (int, error) {
			return s.eventSeatRepo.CountBookedByAreaID(ctx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.seatRepo.DeleteByAreaID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.areaRepo.Delete(ctx, tx, id)
		},
	)
}

type CreateSeatInput struct {
	AreaID int64
	Row    int
	Number int
}

func (s *AreaService) CreateSeat(ctx context.Context, input CreateSeatInput) (*venue.Seat, error) {
	seat := venue.NewSeat(input.AreaID, input.Row, input.Number)
	if err := seat.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.areaRepo.GetByID(ctx, seat.AreaID); err != nil {
		return nil, fmt.Errorf("エリア取得に失敗: %w", err)
	}
	if err := s.checkSeatPosition(ctx, seat.AreaID, seat.Row, seat.Number, 0); err != nil {
		return nil, err
	}
	if err := s.seatRepo.Create(ctx, seat); err != nil {
		return nil, fmt.Errorf("座席作成に失敗しました: %w", err)
	}
	return seat, nil
}

type CreateBulkSeatsInput struct {
	AreaID      int64
	Rows        int
	SeatsPerRow int
}

// CreateBulkSeats はエリアにRows×SeatsPerRowの座席グリッドを一括作成する
func (s *AreaService) CreateBulkSeats(ctx context.Context, input CreateBulkSeatsInput) ([]*venue.Seat, error) {
	if input.AreaID <= 0 {
		return nil, venue.ErrInvalidID
	}
	if input.Rows < 1 || input.SeatsPerRow < 1 {
		return nil, venue.ErrSeatRowInvalid
	}
	if _, err := s.areaRepo.GetByID(ctx, input.AreaID); err != nil {
		return nil, fmt.Errorf("エリア取得に失敗: %w", err)
	}

	existing, err := s.seatRepo.GetByAreaID(ctx, input.AreaID)
	if err != nil {
		return nil, fmt.Errorf("座席取得に失敗: %w", err)
	}
	occupied := make(map[[2]int]bool, len(existing))
	for _, seat := range existing {
		occupied[[2]int{seat.Row, seat.Number}] = true
	}

	seats := make([]*venue.Seat, 0, input.Rows*input.SeatsPerRow)
	for row := 1; row <= input.Rows; row++ {
		for number := 1; number <= input.SeatsPerRow; number++ {
			if occupied[[2]int{row, number}] {
				return nil, venue.ErrSeatTaken
			}
			seats = append(seats, venue.NewSeat(input.AreaID, row, number))
		}
	}
	if err := s.seatRepo.CreateBulk(ctx, seats); err != nil {
		return nil, fmt.Errorf("座席一括作成に失敗しました: %w", err)
	}
	return seats, nil
}

func (s *AreaService) GetSeat(ctx context.Context, id int64) (*venue.Seat, error) {
	if id <= 0 {
		return nil, venue.ErrInvalidID
	}
	return s.seatRepo.GetByID(ctx, id)
}

func (s *AreaService) GetSeatsByArea(ctx context.Context, areaID int64) ([]*venue.Seat, error) {
	if areaID <= 0 {
		return nil, venue.ErrInvalidID
	}
	return s.seatRepo.GetByAreaID(ctx, areaID)
}

type UpdateSeatInput struct {
	ID     int64
	Row    int
	Number int
}

func (s *AreaService) UpdateSeat(ctx context.Context, input UpdateSeatInput) (*venue.Seat, error) {
	if input.ID <= 0 {
		return nil, venue.ErrInvalidID
	}
	seat, err := s.seatRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	seat.Row = input.Row
	seat.Number = input.Number
	if err := seat.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkSeatPosition(ctx, seat.AreaID, seat.Row, seat.Number, seat.ID); err != nil {
		return nil, err
	}
	if err := s.seatRepo.Update(ctx, seat); err != nil {
		return nil, err
	}
	return seat, nil
}

// DeleteSeat は座席を削除する
// この座席からスナップショットされたイベント座席に購入済みがある場合は削除しない
func (s *AreaService) DeleteSeat(ctx context.Context, id int64) error {
	if id <= 0 {
		return venue.ErrInvalidID
	}
	seat, err := s.seatRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return cascadeDelete(ctx, s.txManager,
		func(ctx context.Context) (int, error) {
			return s.eventSeatRepo.CountBookedBySourceSeat(ctx, seat.AreaID, seat.Row, seat.Number)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.seatRepo.Delete(ctx, tx, id)
		},
	)
}

// checkAreaDescription はレイアウト内のエリア説明の一意性を検証する（selfIDのエリア自身は除外）
func (s *AreaService) checkAreaDescription(ctx context.Context, layoutID int64, description string, selfID int64) error {
	existing, err := s.areaRepo.GetByLayoutIDAndDescription(ctx, layoutID, description)
	if err != nil {
		if errors.Is(err, venue.ErrAreaNotFound) {
			return nil
		}
		return fmt.Errorf("エリア説明の確認に失敗: %w", err)
	}
	if existing.ID != selfID {
		return venue.ErrAreaDescriptionTaken
	}
	return nil
}

// checkSeatPosition はエリア内の座席（列・番号）の一意性を検証する（selfIDの座席自身は除外）
func (s *AreaService) checkSeatPosition(ctx context.Context, areaID int64, row, number int, selfID int64) error {
	existing, err := s.seatRepo.GetByAreaIDAndPosition(ctx, areaID, row, number)
	if err != nil {
		if errors.Is(err, venue.ErrSeatNotFound) {
			return nil
		}
		return fmt.Errorf("座席位置の確認に失敗: %w", err)
	}
	if existing.ID != selfID {
		return venue.ErrSeatTaken
	}
	return nil
}
