package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

// VenueService は会場とレイアウトの管理を行う
type VenueService struct {
	txManager     transaction.Manager
	venueRepo     venue.VenueRepository
	layoutRepo    venue.LayoutRepository
	areaRepo      venue.AreaRepository
	seatRepo      venue.SeatRepository
	eventRepo     event.Repository
	eventAreaRepo event.AreaRepository
	eventSeatRepo event.SeatRepository
}

func NewVenueService(
	txManager transaction.Manager,
	venueRepo venue.VenueRepository,
	layoutRepo venue.LayoutRepository,
	areaRepo venue.AreaRepository,
	seatRepo venue.SeatRepository,
	eventRepo event.Repository,
	eventAreaRepo event.AreaRepository,
	eventSeatRepo event.SeatRepository,
) *VenueService {
	return &VenueService{
		txManager:     txManager,
		venueRepo:     venueRepo,
		layoutRepo:    layoutRepo,
		areaRepo:      areaRepo,
		seatRepo:      seatRepo,
		eventRepo:     eventRepo,
		eventAreaRepo: eventAreaRepo,
		eventSeatRepo: eventSeatRepo,
	}
}

type CreateVenueInput struct {
	Name        string
	Address     string
	Phone       string
	Description string
}

func (s *VenueService) CreateVenue(ctx context.Context, input CreateVenueInput) (*venue.Venue, error) {
	v := venue.NewVenue(input.Name, input.Address, input.Phone, input.Description)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkVenueName(ctx, v.Name, 0); err != nil {
		return nil, err
	}
	if err := s.venueRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("会場作成に失敗しました: %w", err)
	}
	return v, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id int64) (*venue.Venue, error) {
	if id <= 0 {
		return nil, venue.ErrInvalidID
	}
	return s.venueRepo.GetByID(ctx, id)
}

func (s *VenueService) ListVenues(ctx context.Context) ([]*venue.Venue, error) {
	return s.venueRepo.GetAll(ctx)
}

type UpdateVenueInput struct {
	ID          int64
	Name        string
	Address     string
	Phone       string
	Description string
}

func (s *VenueService) UpdateVenue(ctx context.Context, input UpdateVenueInput) (*venue.Venue, error) {
	if input.ID <= 0 {
		return nil, venue.ErrInvalidID
	}
	v, err := s.venueRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	v.Name = input.Name
	v.Address = input.Address
	v.Phone = input.Phone
	v.Description = input.Description
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkVenueName(ctx, v.Name, v.ID); err != nil {
		return nil, err
	}
	if err := s.venueRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVenue は会場を配下の全階層とともに削除する
// 配下のいずれかのイベント座席が購入済みの場合は削除しない
func (s *VenueService) DeleteVenue(ctx context.Context, id int64) error {
	if id <= 0 {
		return venue.ErrInvalidID
	}
	if _, err := s.venueRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return cascadeDelete(ctx, s.txManager,
		func(ctx context.Context) (int, error) {
			return s.eventSeatRepo.CountBookedByVenueID(ctx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventSeatRepo.DeleteByVenueID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventAreaRepo.DeleteByVenueID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventRepo.DeleteByVenueID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.seatRepo.DeleteByVenueID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.areaRepo.DeleteByVenueID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.layoutRepo.DeleteByVenueID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.venueRepo.Delete(ctx, tx, id)
		},
	)
}

type CreateLayoutInput struct {
	VenueID     int64
	Name        string
	Description string
}

func (s *VenueService) CreateLayout(ctx context.Context, input CreateLayoutInput) (*venue.Layout, error) {
	l := venue.NewLayout(input.VenueID, input.Name, input.Description)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.venueRepo.GetByID(ctx, l.VenueID); err != nil {
		return nil, fmt.Errorf("会場取得に失敗: %w", err)
	}
	if err := s.checkLayoutName(ctx, l.VenueID, l.Name, 0); err != nil {
		return nil, err
	}
	if err := s.layoutRepo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("レイアウト作成に失敗しました: %w", err)
	}
	return l, nil
}

func (s *VenueService) GetLayout(ctx context.Context, id int64) (*venue.Layout, error) {
	if id <= 0 {
		return nil, venue.ErrInvalidID
	}
	return s.layoutRepo.GetByID(ctx, id)
}

func (s *VenueService) GetLayoutsByVenue(ctx context.Context, venueID int64) ([]*venue.Layout, error) {
	if venueID <= 0 {
		return nil, venue.ErrInvalidID
	}
	return s.layoutRepo.GetByVenueID(ctx, venueID)
}

type UpdateLayoutInput struct {
	ID          int64
	Name        string
	Description string
}

func (s *VenueService) UpdateLayout(ctx context.Context, input UpdateLayoutInput) (*venue.Layout, error) {
	if input.ID <= 0 {
		return nil, venue.ErrInvalidID
	}
	l, err := s.layoutRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	l.Name = input.Name
	l.Description = input.Description
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkLayoutName(ctx, l.VenueID, l.Name, l.ID); err != nil {
		return nil, err
	}
	if err := s.layoutRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteLayout はレイアウトを配下の全階層とともに削除する
// 配下のいずれかのイベント座席が購入済みの場合は削除しない
func (s *VenueService) DeleteLayout(ctx context.Context, id int64) error {
	if id <= 0 {
		return venue.ErrInvalidID
	}
	if _, err := s.layoutRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return cascadeDelete(ctx, s.txManager,
		func(ctx context.Context) (int, error) {
			return s.eventSeatRepo.CountBookedByLayoutID(ctx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventSeatRepo.DeleteByLayoutID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventAreaRepo.DeleteByLayoutID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.eventRepo.DeleteByLayoutID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.seatRepo.DeleteByLayoutID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.areaRepo.DeleteByLayoutID(ctx, tx, id)
		},
		func(ctx context.Context, tx transaction.Tx) error {
			return s.layoutRepo.Delete(ctx, tx, id)
		},
	)
}

// checkVenueName は会場名の一意性を検証する（selfIDの会場自身は除外）
func (s *VenueService) checkVenueName(ctx context.Context, name string, selfID int64) error {
	existing, err := s.venueRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, venue.ErrVenueNotFound) {
			return nil
		}
		return fmt.Errorf("会場名の確認に失敗: %w", err)
	}
	if existing.ID != selfID {
		return venue.ErrVenueNameTaken
	}
	return nil
}

// checkLayoutName は会場内のレイアウト名の一意性を検証する（selfIDのレイアウト自身は除外）
func (s *VenueService) checkLayoutName(ctx context.Context, venueID int64, name string, selfID int64) error {
	existing, err := s.layoutRepo.GetByVenueIDAndName(ctx, venueID, name)
	if err != nil {
		if errors.Is(err, venue.ErrLayoutNotFound) {
			return nil
		}
		return fmt.Errorf("レイアウト名の確認に失敗: %w", err)
	}
	if existing.ID != selfID {
		return venue.ErrLayoutNameTaken
	}
	return nil
}
