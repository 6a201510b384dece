package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identitydomain "ridemate/internal/identity/domain"
)

func TestGetProfile_Execute(t *testing.T) {
	piyush := testAccount("d1", "Piyush")
	priya := testAccount("p1", "Priya")

	offered := testRide("r1", piyush, 3)

	booked := testRide("r2", priya, 2)
	booked.Passengers = []identitydomain.Account{*piyush}
	booked.AvailableSeats = 1

	unrelated := testRide("r3", priya, 2)

	rideRepo := newFakeRideRepo(offered, booked, unrelated)
	svc := NewGetProfileService(rideRepo, newFakeAccountRepo(piyush, priya))

	profile, err := svc.Execute(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "Piyush", profile.Account.Name)

	require.Len(t, profile.OfferedRides, 1)
	assert.Equal(t, "r1", profile.OfferedRides[0].ID)

	require.Len(t, profile.BookedRides, 1)
	assert.Equal(t, "r2", profile.BookedRides[0].ID)
}

func TestGetProfile_Execute_UnknownAccount(t *testing.T) {
	svc := NewGetProfileService(newFakeRideRepo(), newFakeAccountRepo())

	_, err := svc.Execute(context.Background(), "ghost")

	require.ErrorIs(t, err, identitydomain.ErrAccountNotFound)
}

type stubDescriber struct {
	text string
}

func (d *stubDescriber) Describe(ctx context.Context, origin, destination string) string {
	return d.text
}

func TestDescribeRide_Execute(t *testing.T) {
	svc := NewDescribeRideService(&stubDescriber{text: "Great ride from Baner to campus!"})

	text, err := svc.Execute(context.Background(), "Baner", "MIT-WPU Campus")

	require.NoError(t, err)
	assert.Equal(t, "Great ride from Baner to campus!", text)
}

func TestDescribeRide_Execute_MissingRoute(t *testing.T) {
	svc := NewDescribeRideService(&stubDescriber{text: "unused"})

	_, err := svc.Execute(context.Background(), "  ", "MIT-WPU Campus")

	require.Error(t, err)
}
