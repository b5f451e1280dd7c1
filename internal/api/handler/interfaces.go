package handler

import (
	"context"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/ticket"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

// VenueServiceInterface は会場サービスのインターフェース
type VenueServiceInterface interface {
	CreateVenue(ctx context.Context, input application.CreateVenueInput) (*venue.Venue, error)
	GetVenue(ctx context.Context, id int64) (*venue.Venue, error)
	ListVenues(ctx context.Context) ([]*venue.Venue, error)
	UpdateVenue(ctx context.Context, input application.UpdateVenueInput) (*venue.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error

	CreateLayout(ctx context.Context, input application.CreateLayoutInput) (*venue.Layout, error)
	GetLayout(ctx context.Context, id int64) (*venue.Layout, error)
	GetLayoutsByVenue(ctx context.Context, venueID int64) ([]*venue.Layout, error)
	UpdateLayout(ctx context.Context, input application.UpdateLayoutInput) (*venue.Layout, error)
	DeleteLayout(ctx context.Context, id int64) error
}

// AreaServiceInterface はエリアサービスのインターフェース
type AreaServiceInterface interface {
	CreateArea(ctx context.Context, input application.CreateAreaInput) (*venue.Area, error)
	GetArea(ctx context.Context, id int64) (*venue.Area, error)
	GetAreasByLayout(ctx context.Context, layoutID int64) ([]*venue.Area, error)
	UpdateArea(ctx context.Context, input application.UpdateAreaInput) (*venue.Area, error)
	DeleteArea(ctx context.Context, id int64) error

	CreateSeat(ctx context.Context, input application.CreateSeatInput) (*venue.Seat, error)
	CreateBulkSeats(ctx context.Context, input application.CreateBulkSeatsInput) ([]*venue.Seat, error)
	GetSeat(ctx context.Context, id int64) (*venue.Seat, error)
	GetSeatsByArea(ctx context.Context, areaID int64) ([]*venue.Seat, error)
	UpdateSeat(ctx context.Context, input application.UpdateSeatInput) (*venue.Seat, error)
	DeleteSeat(ctx context.Context, id int64) error
}

// EventServiceInterface はイベントサービスのインターフェース
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error)
	GetEvent(ctx context.Context, id int64) (*event.Event, error)
	ListEvents(ctx context.Context, limit, offset int) ([]*event.Event, error)
	GetEventsByLayout(ctx context.Context, layoutID int64) ([]*event.Event, error)
	UpdateEvent(ctx context.Context, input application.UpdateEventInput) (*event.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	GetEventAreas(ctx context.Context, eventID int64) ([]*event.EventArea, error)
	UpdateEventAreaPrice(ctx context.Context, id int64, price int) (*event.EventArea, error)
	DeleteEventArea(ctx context.Context, id int64) error

	GetEventSeats(ctx context.Context, eventAreaID int64) ([]*event.EventSeat, error)
	DeleteEventSeat(ctx context.Context, id int64) error
	CountFreeSeats(ctx context.Context, eventID int64) (int, error)
}

// BookingServiceInterface は購入サービスのインターフェース
type BookingServiceInterface interface {
	PurchaseSeat(ctx context.Context, input application.PurchaseSeatInput) (*ticket.Ticket, error)
	RefundSeat(ctx context.Context, ticketID int64) error
	GetTicket(ctx context.Context, id int64) (*ticket.Ticket, error)
	GetUserTickets(ctx context.Context, userID int64, limit, offset int) ([]*ticket.Ticket, error)
}
