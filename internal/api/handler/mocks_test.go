package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/ticket"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

// MockVenueService はVenueServiceInterfaceのモック
type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) CreateVenue(ctx context.Context, input application.CreateVenueInput) (*venue.Venue, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueService) GetVenue(ctx context.Context, id int64) (*venue.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueService) ListVenues(ctx context.Context) ([]*venue.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Venue), args.Error(1)
}

func (m *MockVenueService) UpdateVenue(ctx context.Context, input application.UpdateVenueInput) (*venue.Venue, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueService) DeleteVenue(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVenueService) CreateLayout(ctx context.Context, input application.CreateLayoutInput) (*venue.Layout, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Layout), args.Error(1)
}

func (m *MockVenueService) GetLayout(ctx context.Context, id int64) (*venue.Layout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Layout), args.Error(1)
}

func (m *MockVenueService) GetLayoutsByVenue(ctx context.Context, venueID int64) ([]*venue.Layout, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Layout), args.Error(1)
}

func (m *MockVenueService) UpdateLayout(ctx context.Context, input application.UpdateLayoutInput) (*venue.Layout, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Layout), args.Error(1)
}

func (m *MockVenueService) DeleteLayout(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ VenueServiceInterface = (*MockVenueService)(nil)

// MockAreaService はAreaServiceInterfaceのモック
type MockAreaService struct {
	mock.Mock
}

func (m *MockAreaService) CreateArea(ctx context.Context, input application.CreateAreaInput) (*venue.Area, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Area), args.Error(1)
}

func (m *MockAreaService) GetArea(ctx context.Context, id int64) (*venue.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Area), args.Error(1)
}

func (m *MockAreaService) GetAreasByLayout(ctx context.Context, layoutID int64) ([]*venue.Area, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Area), args.Error(1)
}

func (m *MockAreaService) UpdateArea(ctx context.Context, input application.UpdateAreaInput) (*venue.Area, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Area), args.Error(1)
}

func (m *MockAreaService) DeleteArea(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAreaService) CreateSeat(ctx context.Context, input application.CreateSeatInput) (*venue.Seat, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Seat), args.Error(1)
}

func (m *MockAreaService) CreateBulkSeats(ctx context.Context, input application.CreateBulkSeatsInput) ([]*venue.Seat, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Seat), args.Error(1)
}

func (m *MockAreaService) GetSeat(ctx context.Context, id int64) (*venue.Seat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Seat), args.Error(1)
}

func (m *MockAreaService) GetSeatsByArea(ctx context.Context, areaID int64) ([]*venue.Seat, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Seat), args.Error(1)
}

func (m *MockAreaService) UpdateSeat(ctx context.Context, input application.UpdateSeatInput) (*venue.Seat, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Seat), args.Error(1)
}

func (m *MockAreaService) DeleteSeat(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ AreaServiceInterface = (*MockAreaService)(nil)

// MockEventService はEventServiceInterfaceのモック
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, limit, offset int) ([]*event.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventService) GetEventsByLayout(ctx context.Context, layoutID int64) ([]*event.Event, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, input application.UpdateEventInput) (*event.Event, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) GetEventAreas(ctx context.Context, eventID int64) ([]*event.EventArea, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.EventArea), args.Error(1)
}

func (m *MockEventService) UpdateEventAreaPrice(ctx context.Context, id int64, price int) (*event.EventArea, error) {
	args := m.Called(ctx, id, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.EventArea), args.Error(1)
}

func (m *MockEventService) DeleteEventArea(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) GetEventSeats(ctx context.Context, eventAreaID int64) ([]*event.EventSeat, error) {
	args := m.Called(ctx, eventAreaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.EventSeat), args.Error(1)
}

func (m *MockEventService) DeleteEventSeat(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) CountFreeSeats(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

var _ EventServiceInterface = (*MockEventService)(nil)

// MockBookingService はBookingServiceInterfaceのモック
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) PurchaseSeat(ctx context.Context, input application.PurchaseSeatInput) (*ticket.Ticket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockBookingService) RefundSeat(ctx context.Context, ticketID int64) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

func (m *MockBookingService) GetTicket(ctx context.Context, id int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockBookingService) GetUserTickets(ctx context.Context, userID int64, limit, offset int) ([]*ticket.Ticket, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

var _ BookingServiceInterface = (*MockBookingService)(nil)
