package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/ticket"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/user"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
	redisinfra "github.com/sanosuguru/go-venue-ticket-management/internal/infrastructure/redis"
)

// === Mock implementations ===

// MockTx is a mock of transaction.Tx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockTxManager is a mock of transaction.Manager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transaction.Tx), args.Error(1)
}

// newMockTxManager returns a manager whose transactions always succeed.
func newMockTxManager() *MockTxManager {
	tx := new(MockTx)
	tx.On("Commit").Return(nil)
	tx.On("Rollback").Return(nil)
	manager := new(MockTxManager)
	manager.On("Begin", mock.Anything).Return(tx, nil)
	return manager
}

// MockVenueRepository is a mock of venue.VenueRepository
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, v *venue.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*venue.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetAll(ctx context.Context) ([]*venue.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetByName(ctx context.Context, name string) (*venue.Venue, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueRepository) Update(ctx context.Context, v *venue.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

// MockLayoutRepository is a mock of venue.LayoutRepository
type MockLayoutRepository struct {
	mock.Mock
}

func (m *MockLayoutRepository) Create(ctx context.Context, l *venue.Layout) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLayoutRepository) GetByID(ctx context.Context, id int64) (*venue.Layout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Layout), args.Error(1)
}

func (m *MockLayoutRepository) GetByVenueID(ctx context.Context, venueID int64) ([]*venue.Layout, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Layout), args.Error(1)
}

func (m *MockLayoutRepository) GetByVenueIDAndName(ctx context.Context, venueID int64, name string) (*venue.Layout, error) {
	args := m.Called(ctx, venueID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Layout), args.Error(1)
}

func (m *MockLayoutRepository) Update(ctx context.Context, l *venue.Layout) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLayoutRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockLayoutRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	args := m.Called(ctx, tx, venueID)
	return args.Error(0)
}

// MockAreaRepository is a mock of venue.AreaRepository
type MockAreaRepository struct {
	mock.Mock
}

func (m *MockAreaRepository) Create(ctx context.Context, a *venue.Area) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAreaRepository) GetByID(ctx context.Context, id int64) (*venue.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Area), args.Error(1)
}

func (m *MockAreaRepository) GetByLayoutID(ctx context.Context, layoutID int64) ([]*venue.Area, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Area), args.Error(1)
}

func (m *MockAreaRepository) GetByLayoutIDAndDescription(ctx context.Context, layoutID int64, description string) (*venue.Area, error) {
	args := m.Called(ctx, layoutID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Area), args.Error(1)
}

func (m *MockAreaRepository) Update(ctx context.Context, a *venue.Area) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAreaRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockAreaRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	args := m.Called(ctx, tx, layoutID)
	return args.Error(0)
}

func (m *MockAreaRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	args := m.Called(ctx, tx, venueID)
	return args.Error(0)
}

// MockSeatRepository is a mock of venue.SeatRepository
type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) Create(ctx context.Context, s *venue.Seat) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSeatRepository) CreateBulk(ctx context.Context, seats []*venue.Seat) error {
	args := m.Called(ctx, seats)
	return args.Error(0)
}

func (m *MockSeatRepository) GetByID(ctx context.Context, id int64) (*venue.Seat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Seat), args.Error(1)
}

func (m *MockSeatRepository) GetByAreaID(ctx context.Context, areaID int64) ([]*venue.Seat, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Seat), args.Error(1)
}

func (m *MockSeatRepository) GetByAreaIDAndPosition(ctx context.Context, areaID int64, row, number int) (*venue.Seat, error) {
	args := m.Called(ctx, areaID, row, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Seat), args.Error(1)
}

func (m *MockSeatRepository) Update(ctx context.Context, s *venue.Seat) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSeatRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockSeatRepository) DeleteByAreaID(ctx context.Context, tx transaction.Tx, areaID int64) error {
	args := m.Called(ctx, tx, areaID)
	return args.Error(0)
}

func (m *MockSeatRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	args := m.Called(ctx, tx, layoutID)
	return args.Error(0)
}

func (m *MockSeatRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	args := m.Called(ctx, tx, venueID)
	return args.Error(0)
}

// MockEventRepository is a mock of event.Repository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, tx transaction.Tx, e *event.Event) error {
	args := m.Called(ctx, tx, e)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, limit, offset int) ([]*event.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventRepository) GetByLayoutID(ctx context.Context, layoutID int64) ([]*event.Event, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventRepository) GetByVenueID(ctx context.Context, venueID int64) ([]*event.Event, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	args := m.Called(ctx, tx, layoutID)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	args := m.Called(ctx, tx, venueID)
	return args.Error(0)
}

// MockEventAreaRepository is a mock of event.AreaRepository
type MockEventAreaRepository struct {
	mock.Mock
}

func (m *MockEventAreaRepository) CreateBulk(ctx context.Context, tx transaction.Tx, areas []*event.EventArea) error {
	args := m.Called(ctx, tx, areas)
	return args.Error(0)
}

func (m *MockEventAreaRepository) GetByID(ctx context.Context, id int64) (*event.EventArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.EventArea), args.Error(1)
}

func (m *MockEventAreaRepository) GetByEventID(ctx context.Context, eventID int64) ([]*event.EventArea, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.EventArea), args.Error(1)
}

func (m *MockEventAreaRepository) UpdatePrice(ctx context.Context, id int64, price int) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func (m *MockEventAreaRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockEventAreaRepository) DeleteByEventID(ctx context.Context, tx transaction.Tx, eventID int64) error {
	args := m.Called(ctx, tx, eventID)
	return args.Error(0)
}

func (m *MockEventAreaRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	args := m.Called(ctx, tx, layoutID)
	return args.Error(0)
}

func (m *MockEventAreaRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	args := m.Called(ctx, tx, venueID)
	return args.Error(0)
}

// MockEventSeatRepository is a mock of event.SeatRepository
type MockEventSeatRepository struct {
	mock.Mock
}

func (m *MockEventSeatRepository) CreateBulk(ctx context.Context, tx transaction.Tx, seats []*event.EventSeat) error {
	args := m.Called(ctx, tx, seats)
	return args.Error(0)
}

func (m *MockEventSeatRepository) GetByID(ctx context.Context, id int64) (*event.EventSeat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.EventSeat), args.Error(1)
}

func (m *MockEventSeatRepository) GetByEventAreaID(ctx context.Context, eventAreaID int64) ([]*event.EventSeat, error) {
	args := m.Called(ctx, eventAreaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.EventSeat), args.Error(1)
}

func (m *MockEventSeatRepository) GetByEventAreaIDAndPosition(ctx context.Context, eventAreaID int64, row, number int) (*event.EventSeat, error) {
	args := m.Called(ctx, eventAreaID, row, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.EventSeat), args.Error(1)
}

func (m *MockEventSeatRepository) UpdateState(ctx context.Context, tx transaction.Tx, id int64, from, to event.SeatState) error {
	args := m.Called(ctx, tx, id, from, to)
	return args.Error(0)
}

func (m *MockEventSeatRepository) CountByEventIDAndState(ctx context.Context, eventID int64, state event.SeatState) (int, error) {
	args := m.Called(ctx, eventID, state)
	return args.Int(0), args.Error(1)
}

func (m *MockEventSeatRepository) CountBookedByEventID(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventSeatRepository) CountBookedByEventAreaID(ctx context.Context, eventAreaID int64) (int, error) {
	args := m.Called(ctx, eventAreaID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventSeatRepository) CountBookedByLayoutID(ctx context.Context, layoutID int64) (int, error) {
	args := m.Called(ctx, layoutID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventSeatRepository) CountBookedByVenueID(ctx context.Context, venueID int64) (int, error) {
	args := m.Called(ctx, venueID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventSeatRepository) CountBookedByAreaID(ctx context.Context, areaID int64) (int, error) {
	args := m.Called(ctx, areaID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventSeatRepository) CountBookedBySourceSeat(ctx context.Context, areaID int64, row, number int) (int, error) {
	args := m.Called(ctx, areaID, row, number)
	return args.Int(0), args.Error(1)
}

func (m *MockEventSeatRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockEventSeatRepository) DeleteByEventAreaID(ctx context.Context, tx transaction.Tx, eventAreaID int64) error {
	args := m.Called(ctx, tx, eventAreaID)
	return args.Error(0)
}

func (m *MockEventSeatRepository) DeleteByEventID(ctx context.Context, tx transaction.Tx, eventID int64) error {
	args := m.Called(ctx, tx, eventID)
	return args.Error(0)
}

func (m *MockEventSeatRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	args := m.Called(ctx, tx, layoutID)
	return args.Error(0)
}

func (m *MockEventSeatRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	args := m.Called(ctx, tx, venueID)
	return args.Error(0)
}

// MockTicketRepository is a mock of ticket.Repository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, tx transaction.Tx, t *ticket.Ticket) error {
	args := m.Called(ctx, tx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByEventSeatID(ctx context.Context, eventSeatID int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, eventSeatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]*ticket.Ticket, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

// MockUserRepository is a mock of user.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) AdjustBalance(ctx context.Context, tx transaction.Tx, id int64, delta int) error {
	args := m.Called(ctx, tx, id, delta)
	return args.Error(0)
}

// MockLock is a mock of redisinfra.Lock
type MockLock struct {
	mock.Mock
}

func (m *MockLock) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLock) Extend(ctx context.Context, ttl time.Duration) error {
	args := m.Called(ctx, ttl)
	return args.Error(0)
}

// MockLockManager is a mock of redisinfra.LockManagerInterface
type MockLockManager struct {
	mock.Mock
}

func (m *MockLockManager) AcquireLock(ctx context.Context, key string, ttl time.Duration) (redisinfra.Lock, error) {
	args := m.Called(ctx, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(redisinfra.Lock), args.Error(1)
}

func (m *MockLockManager) AcquireLockWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (redisinfra.Lock, error) {
	args := m.Called(ctx, key, ttl, maxRetries, retryDelay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(redisinfra.Lock), args.Error(1)
}

// newMockLockManager returns a lock manager that always grants the lock.
func newMockLockManager() *MockLockManager {
	lock := new(MockLock)
	lock.On("Release", mock.Anything).Return(nil)
	manager := new(MockLockManager)
	manager.On("AcquireLockWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(lock, nil)
	return manager
}

// MockSeatCache is a mock of redisinfra.SeatCacheInterface
type MockSeatCache struct {
	mock.Mock
}

func (m *MockSeatCache) GetFreeCount(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockSeatCache) SetFreeCount(ctx context.Context, eventID int64, count int, ttl time.Duration) error {
	args := m.Called(ctx, eventID, count, ttl)
	return args.Error(0)
}

func (m *MockSeatCache) Invalidate(ctx context.Context, eventID int64) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
