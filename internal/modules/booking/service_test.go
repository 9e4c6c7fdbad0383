package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Booking, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockTourDateReader struct {
	mock.Mock
}

func (m *MockTourDateReader) GetWithTour(ctx context.Context, id int64) (*domain.TourDate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourDate), args.Error(1)
}

type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) FindOrCreate(ctx context.Context, fullName, phone, email, telegram string) (*domain.Customer, error) {
	args := m.Called(ctx, fullName, phone, email, telegram)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type recordingSink struct {
	created       []*domain.Booking
	statusChanged []*domain.Booking
}

func (r *recordingSink) BookingCreated(b *domain.Booking)       { r.created = append(r.created, b) }
func (r *recordingSink) BookingStatusChanged(b *domain.Booking) { r.statusChanged = append(r.statusChanged, b) }

func dateWithBase(tourDateID, basePrice int64, override *int64) *domain.TourDate {
	return &domain.TourDate{
		ID:            tourDateID,
		TourID:        1,
		PriceOverride: override,
		Tour:          &domain.Tour{ID: 1, BasePrice: basePrice},
	}
}

func TestCalculatePrice_BasePrice(t *testing.T) {
	dates := new(MockTourDateReader)
	svc := NewService(new(MockBookingRepository), dates, new(MockCustomerStore), &recordingSink{})

	dates.On("GetWithTour", mock.Anything, int64(10)).Return(dateWithBase(10, 1200, nil), nil)

	quote, err := svc.CalculatePrice(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), quote.UnitPrice)
	assert.Equal(t, int64(2400), quote.TotalPrice)
}

func TestCalculatePrice_Override(t *testing.T) {
	dates := new(MockTourDateReader)
	svc := NewService(new(MockBookingRepository), dates, new(MockCustomerStore), &recordingSink{})

	override := int64(1300)
	dates.On("GetWithTour", mock.Anything, int64(10)).Return(dateWithBase(10, 1200, &override), nil)

	quote, err := svc.CalculatePrice(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1300), quote.UnitPrice)
	assert.Equal(t, int64(3900), quote.TotalPrice)
}

func TestCalculatePrice_DateNotFound(t *testing.T) {
	dates := new(MockTourDateReader)
	svc := NewService(new(MockBookingRepository), dates, new(MockCustomerStore), &recordingSink{})

	dates.On("GetWithTour", mock.Anything, int64(77)).Return(nil, repository.ErrNotFound)

	_, err := svc.CalculatePrice(context.Background(), 77, 2)
	assert.ErrorIs(t, err, ErrTourDateNotFound)
}

func TestCreate_FindsCustomerAndFreezesPrice(t *testing.T) {
	bookings := new(MockBookingRepository)
	dates := new(MockTourDateReader)
	customers := new(MockCustomerStore)
	sink := &recordingSink{}
	svc := NewService(bookings, dates, customers, sink)

	customers.On("FindOrCreate", mock.Anything, "John Smith", "+1-555-0101", "john@email.com", "").
		Return(&domain.Customer{ID: 3, FullName: "John Smith", Phone: "+1-555-0101"}, nil)
	dates.On("GetWithTour", mock.Anything, int64(10)).Return(dateWithBase(10, 1200, nil), nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CustomerID == 3 && b.TourDateID == 10 && b.People == 2 &&
			b.TotalPrice == 2400 && b.Status == domain.BookingNew
	})).Return(nil)

	b, err := svc.Create(context.Background(), CreateBookingRequest{
		TourDateID: 10,
		Customer:   CustomerInput{FullName: "John Smith", Phone: "+1-555-0101", Email: "john@email.com"},
		People:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	require.Len(t, sink.created, 1)
	assert.Equal(t, b, sink.created[0])
	bookings.AssertExpectations(t)
}

func TestUpdate_PeopleChangeReprices(t *testing.T) {
	bookings := new(MockBookingRepository)
	dates := new(MockTourDateReader)
	svc := NewService(bookings, dates, new(MockCustomerStore), &recordingSink{})

	// Booking made at an old rate; the tour now costs 1500 per person.
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, TourDateID: 10, People: 2, TotalPrice: 2400,
	}, nil)
	dates.On("GetWithTour", mock.Anything, int64(10)).Return(dateWithBase(10, 1500, nil), nil)
	bookings.On("Update", mock.Anything, int64(5), map[string]any{
		"people":      4,
		"total_price": int64(6000),
	}).Return(&domain.Booking{ID: 5, People: 4, TotalPrice: 6000}, nil)

	people := 4
	b, err := svc.Update(context.Background(), 5, UpdateBookingRequest{People: &people})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), b.TotalPrice)
	bookings.AssertExpectations(t)
}

func TestUpdate_NoteOnlyKeepsPrice(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockTourDateReader), new(MockCustomerStore), &recordingSink{})

	bookings.On("Update", mock.Anything, int64(5), map[string]any{
		"note": "call before pickup",
	}).Return(&domain.Booking{ID: 5, TotalPrice: 2400, Note: "call before pickup"}, nil)

	note := "call before pickup"
	b, err := svc.Update(context.Background(), 5, UpdateBookingRequest{Note: &note})
	require.NoError(t, err)
	assert.Equal(t, int64(2400), b.TotalPrice)
}

func TestUpdate_EmptyBodyReturnsBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockTourDateReader), new(MockCustomerStore), &recordingSink{})

	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5}, nil)

	b, err := svc.Update(context.Background(), 5, UpdateBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), b.ID)
	bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_Valid(t *testing.T) {
	bookings := new(MockBookingRepository)
	sink := &recordingSink{}
	svc := NewService(bookings, new(MockTourDateReader), new(MockCustomerStore), sink)

	bookings.On("Update", mock.Anything, int64(5), map[string]any{
		"status": domain.BookingPaid,
	}).Return(&domain.Booking{ID: 5, Status: domain.BookingPaid}, nil)

	b, err := svc.UpdateStatus(context.Background(), 5, domain.BookingPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPaid, b.Status)
	require.Len(t, sink.statusChanged, 1)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockTourDateReader), new(MockCustomerStore), &recordingSink{})

	_, err := svc.UpdateStatus(context.Background(), 5, domain.BookingStatus("REFUNDED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockTourDateReader), new(MockCustomerStore), &recordingSink{})

	bookings.On("Update", mock.Anything, int64(404), mock.Anything).Return(nil, repository.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), 404, domain.BookingPaid)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
