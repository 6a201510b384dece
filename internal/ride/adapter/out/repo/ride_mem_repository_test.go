package repo

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identitydomain "ridemate/internal/identity/domain"
	"ridemate/internal/ride/domain"
	"ridemate/internal/shared/logger"
)

func newRepo() *RideMemRepository {
	return NewRideMemRepository(logger.NewLoggerWithOptions("test", "ERROR", io.Discard, io.Discard))
}

func memRide(id string) *domain.Ride {
	return &domain.Ride{
		ID:             id,
		Driver:         identitydomain.Account{ID: "d-" + id, Name: "Driver"},
		Origin:         "Kothrud",
		Destination:    "MIT-WPU Campus",
		TotalSeats:     3,
		AvailableSeats: 3,
		Passengers:     []identitydomain.Account{},
		Status:         domain.StatusAccepted,
	}
}

func TestRideMemRepository_CreateAndFind(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, memRide("r1")))

	got, err := repo.FindByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Kothrud", got.Origin)

	_, err = repo.FindByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrRideNotFound)
}

func TestRideMemRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, repo.Create(ctx, memRide(id)))
	}

	rides, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 3)
	assert.Equal(t, "r1", rides[0].ID)
	assert.Equal(t, "r2", rides[1].ID)
	assert.Equal(t, "r3", rides[2].ID)
}

func TestRideMemRepository_UpdateUnknownRide(t *testing.T) {
	repo := newRepo()

	err := repo.Update(context.Background(), memRide("ghost"))

	require.ErrorIs(t, err, domain.ErrRideNotFound)
}

func TestRideMemRepository_CopiesAreIsolated(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, memRide("r1")))

	// мутация копии не должна просачиваться в каталог
	got, err := repo.FindByID(ctx, "r1")
	require.NoError(t, err)
	got.AvailableSeats = 0
	got.Passengers = append(got.Passengers, identitydomain.Account{ID: "p1"})

	fresh, err := repo.FindByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.AvailableSeats)
	assert.Empty(t, fresh.Passengers)
}

func TestRideMemRepository_UpdatePersistsBooking(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, memRide("r1")))

	ride, err := repo.FindByID(ctx, "r1")
	require.NoError(t, err)
	require.NoError(t, ride.RequestBooking(identitydomain.Account{ID: "p1", Name: "Asha"}))
	require.NoError(t, repo.Update(ctx, ride))

	stored, err := repo.FindByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AvailableSeats)
	assert.True(t, stored.HasPassenger("p1"))
	assert.True(t, stored.SeatInvariantHolds())
}
