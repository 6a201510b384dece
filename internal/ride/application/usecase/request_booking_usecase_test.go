package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identitydomain "ridemate/internal/identity/domain"
	"ridemate/internal/ride/application/ports/in"
	"ridemate/internal/ride/application/ports/out"
	"ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
)

// --- fakes, общие для тестов пакета ---

func testLogger() *logger.Logger {
	return logger.NewLoggerWithOptions("test", "ERROR", io.Discard, io.Discard)
}

type fakeRideRepo struct {
	rides map[string]*domain.Ride
	order []string

	createErr error
	updateErr error
	listErr   error

	updateCalls int
}

func newFakeRideRepo(rides ...*domain.Ride) *fakeRideRepo {
	r := &fakeRideRepo{rides: make(map[string]*domain.Ride)}
	for _, ride := range rides {
		r.rides[ride.ID] = ride
		r.order = append(r.order, ride.ID)
	}
	return r
}

func (r *fakeRideRepo) Create(ctx context.Context, ride *domain.Ride) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.rides[ride.ID] = ride
	r.order = append(r.order, ride.ID)
	return nil
}

func (r *fakeRideRepo) FindByID(ctx context.Context, id string) (*domain.Ride, error) {
	ride, ok := r.rides[id]
	if !ok {
		return nil, domain.ErrRideNotFound
	}
	return ride, nil
}

func (r *fakeRideRepo) List(ctx context.Context) ([]domain.Ride, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := make([]domain.Ride, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.rides[id])
	}
	return result, nil
}

func (r *fakeRideRepo) Update(ctx context.Context, ride *domain.Ride) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updateCalls++
	r.rides[ride.ID] = ride
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*identitydomain.Account
}

func newFakeAccountRepo(accounts ...*identitydomain.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[string]*identitydomain.Account)}
	for _, acc := range accounts {
		r.accounts[acc.ID] = acc
	}
	return r
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *identitydomain.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*identitydomain.Account, error) {
	for _, acc := range r.accounts {
		if acc.Email == email {
			return acc, nil
		}
	}
	return nil, identitydomain.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id string) (*identitydomain.Account, error) {
	acc, ok := r.accounts[id]
	if !ok {
		return nil, identitydomain.ErrAccountNotFound
	}
	return acc, nil
}

type fakeNotifier struct {
	notifications []out.BookingNotification
	driverIDs     []string
	err           error
}

func (n *fakeNotifier) NotifyDriver(ctx context.Context, driverID string, notification out.BookingNotification) error {
	if n.err != nil {
		return n.err
	}
	n.driverIDs = append(n.driverIDs, driverID)
	n.notifications = append(n.notifications, notification)
	return nil
}

func testAccount(id, name string) *identitydomain.Account {
	return &identitydomain.Account{ID: id, Name: name, Email: id + "@mitwpu.edu.in"}
}

func testRide(id string, driver *identitydomain.Account, seats int) *domain.Ride {
	return &domain.Ride{
		ID:             id,
		Driver:         *driver,
		Origin:         "Kothrud",
		Destination:    "MIT-WPU Campus",
		DepartureTime:  time.Now().Add(24 * time.Hour),
		TotalSeats:     seats,
		AvailableSeats: seats,
		VehicleType:    domain.VehicleCar,
		Passengers:     []identitydomain.Account{},
		Status:         domain.StatusAccepted,
	}
}

// --- tests ---

func TestRequestBooking_Execute_Success(t *testing.T) {
	driver := testAccount("d1", "Driver")
	rider := testAccount("p1", "Asha")
	ride := testRide("r1", driver, 2)

	rideRepo := newFakeRideRepo(ride)
	accountRepo := newFakeAccountRepo(driver, rider)
	notifier := &fakeNotifier{}
	svc := NewRequestBookingService(rideRepo, accountRepo, notifier, testLogger())

	got, err := svc.Execute(context.Background(), in.RequestBookingInput{RideID: "r1", RequesterID: "p1"})

	require.NoError(t, err)
	assert.Equal(t, 1, got.AvailableSeats)
	assert.True(t, got.HasPassenger("p1"))
	assert.Equal(t, 1, rideRepo.updateCalls)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "d1", notifier.driverIDs[0])
	assert.Equal(t, "booking_requested", notifier.notifications[0].Type)
	assert.Equal(t, "Asha", notifier.notifications[0].PassengerName)
}

func TestRequestBooking_Execute_IdempotentRepeatSkipsSave(t *testing.T) {
	driver := testAccount("d1", "Driver")
	rider := testAccount("p1", "Asha")
	ride := testRide("r1", driver, 2)

	rideRepo := newFakeRideRepo(ride)
	accountRepo := newFakeAccountRepo(driver, rider)
	notifier := &fakeNotifier{}
	svc := NewRequestBookingService(rideRepo, accountRepo, notifier, testLogger())

	input := in.RequestBookingInput{RideID: "r1", RequesterID: "p1"}
	_, err := svc.Execute(context.Background(), input)
	require.NoError(t, err)

	got, err := svc.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 1, got.AvailableSeats)
	assert.Len(t, got.Passengers, 1)
	// повтор не сохраняет и не шлет второе уведомление
	assert.Equal(t, 1, rideRepo.updateCalls)
	assert.Len(t, notifier.notifications, 1)
}

func TestRequestBooking_Execute_SelfBooking(t *testing.T) {
	driver := testAccount("d1", "Driver")
	ride := testRide("r1", driver, 2)

	svc := NewRequestBookingService(newFakeRideRepo(ride), newFakeAccountRepo(driver), &fakeNotifier{}, testLogger())

	_, err := svc.Execute(context.Background(), in.RequestBookingInput{RideID: "r1", RequesterID: "d1"})

	require.ErrorIs(t, err, domain.ErrSelfBooking)
}

func TestRequestBooking_Execute_RideNotFound(t *testing.T) {
	driver := testAccount("d1", "Driver")
	svc := NewRequestBookingService(newFakeRideRepo(), newFakeAccountRepo(driver), &fakeNotifier{}, testLogger())

	_, err := svc.Execute(context.Background(), in.RequestBookingInput{RideID: "missing", RequesterID: "d1"})

	require.ErrorIs(t, err, domain.ErrRideNotFound)
}

func TestRequestBooking_Execute_RequesterNotFound(t *testing.T) {
	driver := testAccount("d1", "Driver")
	ride := testRide("r1", driver, 2)
	svc := NewRequestBookingService(newFakeRideRepo(ride), newFakeAccountRepo(driver), &fakeNotifier{}, testLogger())

	_, err := svc.Execute(context.Background(), in.RequestBookingInput{RideID: "r1", RequesterID: "ghost"})

	require.ErrorIs(t, err, identitydomain.ErrAccountNotFound)
}

func TestRequestBooking_Execute_FullRide(t *testing.T) {
	driver := testAccount("d1", "Driver")
	rider := testAccount("p1", "Asha")
	late := testAccount("p2", "Boris")
	ride := testRide("r1", driver, 1)

	rideRepo := newFakeRideRepo(ride)
	accountRepo := newFakeAccountRepo(driver, rider, late)
	svc := NewRequestBookingService(rideRepo, accountRepo, &fakeNotifier{}, testLogger())

	_, err := svc.Execute(context.Background(), in.RequestBookingInput{RideID: "r1", RequesterID: "p1"})
	require.NoError(t, err)

	_, err = svc.Execute(context.Background(), in.RequestBookingInput{RideID: "r1", RequesterID: "p2"})
	require.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
}

func TestRequestBooking_Execute_NotifierErrorDoesNotFail(t *testing.T) {
	driver := testAccount("d1", "Driver")
	rider := testAccount("p1", "Asha")
	ride := testRide("r1", driver, 2)

	notifier := &fakeNotifier{err: errors.New("driver offline")}
	svc := NewRequestBookingService(newFakeRideRepo(ride), newFakeAccountRepo(driver, rider), notifier, testLogger())

	got, err := svc.Execute(context.Background(), in.RequestBookingInput{RideID: "r1", RequesterID: "p1"})

	require.NoError(t, err)
	assert.True(t, got.HasPassenger("p1"))
}
