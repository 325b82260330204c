package service_test

import (
	"context"
	"errors"
	"maps"
	"math/rand/v2"
	"net/http"
	"repnowait/config"
	otelMocks "repnowait/infras/otel/mocks"
	"repnowait/internal/domains/booking/model"
	"repnowait/internal/domains/booking/model/dto"
	"repnowait/internal/domains/booking/service"
	occupancyModel "repnowait/internal/domains/occupancy/model"
	occupancyDto "repnowait/internal/domains/occupancy/model/dto"
	occupancy "repnowait/internal/domains/occupancy/service"
	gDto "repnowait/shared/dto"
	"repnowait/shared/failure"
	"repnowait/shared/transaction"
	"repnowait/zonemap"
	"slices"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore stands in for the bookings and gym_map tables. Transactions are serialised and
// roll back by restoring a copy of the state.
type memoryStore struct {
	mu       sync.Mutex
	nextID   int
	bookings map[int]model.Booking
	zones    []occupancyModel.ZoneOccupancy
	failNext bool
}

func newMemoryStore(zoneNames ...string) *memoryStore {
	store := &memoryStore{bookings: map[int]model.Booking{}}

	for i, name := range zoneNames {
		store.zones = append(store.zones, occupancyModel.ZoneOccupancy{ZoneID: i + 1, ZoneName: name})
	}

	return store
}

func (m *memoryStore) WithinTx(ctx context.Context, fn transaction.Func) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookings := maps.Clone(m.bookings)
	zones := slices.Clone(m.zones)
	nextID := m.nextID

	if err := fn(ctx, nil); err != nil {
		m.bookings, m.zones, m.nextID = bookings, zones, nextID

		return err
	}

	return nil
}

type memoryBookings struct{ *memoryStore }

func (m memoryBookings) GetAll(_ context.Context, _ gDto.FilterGroup, _ string, _ ...string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := []model.Booking{}

	for _, id := range slices.Sorted(maps.Keys(m.bookings)) {
		if !m.bookings[id].Done {
			res = append(res, m.bookings[id])
		}
	}

	return res, nil
}

func (m memoryBookings) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) (model.Booking, error) {
	m.nextID++
	booking.ID = m.nextID
	m.bookings[booking.ID] = booking

	return booking, nil
}

func (m memoryBookings) CompleteTx(_ context.Context, _ *sqlx.Tx, id int) (model.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok || booking.Done {
		return model.Booking{}, nil
	}

	booking.Done = true
	m.bookings[id] = booking

	return booking, nil
}

func (m memoryBookings) DeleteTx(_ context.Context, _ *sqlx.Tx, id int) (model.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return model.Booking{}, nil
	}

	delete(m.bookings, id)

	return booking, nil
}

type memoryZones struct{ *memoryStore }

func (m memoryZones) GetAll(_ context.Context, _ gDto.FilterGroup, _ string, _ ...string) ([]occupancyModel.ZoneOccupancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.zones), nil
}

func (m memoryZones) AdjustTx(_ context.Context, _ *sqlx.Tx, zoneName string, delta int) (bool, error) {
	if m.failNext {
		m.failNext = false

		return false, errors.New("connection lost")
	}

	for i := range m.zones {
		if m.zones[i].ZoneName == zoneName {
			m.zones[i].CurrentBookings = max(m.zones[i].CurrentBookings+delta, 0)

			return true, nil
		}
	}

	return false, nil
}

func (m memoryZones) SetCountTx(_ context.Context, _ *sqlx.Tx, zoneName string, count int) error {
	for i := range m.zones {
		if m.zones[i].ZoneName == zoneName {
			m.zones[i].CurrentBookings = count
		}
	}

	return nil
}

func (m memoryZones) LockAllTx(_ context.Context, _ *sqlx.Tx) ([]occupancyModel.ZoneOccupancy, error) {
	return slices.Clone(m.zones), nil
}

func (m memoryZones) CountActiveByEquipmentTx(_ context.Context, _ *sqlx.Tx) (map[int]int, error) {
	counts := map[int]int{}

	for _, booking := range m.bookings {
		if !booking.Done {
			counts[booking.EquipmentID]++
		}
	}

	return counts, nil
}

type discardPublisher struct{}

func (discardPublisher) Publish(_ context.Context, _ string, _ dto.BookingResponse) {}

func (discardPublisher) Wait(_ context.Context) error { return nil }

type system struct {
	store    *memoryStore
	zones    *zonemap.Table
	bookings service.Booking
	ledger   occupancy.Ledger
}

func newSystem(t *testing.T) system {
	t.Helper()

	zones, err := zonemap.Load("")
	require.NoError(t, err)

	store := newMemoryStore(zones.Zones()...)
	otl := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.DefaultUserID = 1

	ledger := occupancy.New(memoryZones{store}, store, zones, otl)

	return system{
		store:    store,
		zones:    zones,
		ledger:   ledger,
		bookings: service.New(memoryBookings{store}, ledger, store, discardPublisher{}, cfg, otl),
	}
}

func (s system) counts(t *testing.T) map[string]int {
	t.Helper()

	snapshot, err := s.ledger.Snapshot(context.Background())
	require.NoError(t, err)

	counts := map[string]int{}
	for _, zone := range snapshot {
		counts[zone.ZoneName] = zone.Count
	}

	return counts
}

func (s system) assertInvariant(t *testing.T) {
	t.Helper()

	expected := map[string]int{}
	for _, zone := range s.zones.Zones() {
		expected[zone] = 0
	}

	active, err := s.bookings.ListActive(context.Background())
	require.NoError(t, err)

	for _, booking := range active {
		if zone, ok := s.zones.ZoneFor(booking.EquipmentID); ok {
			expected[zone]++
		}
	}

	assert.Equal(t, expected, s.counts(t))
}

func TestScenario_ChestPress(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()
	userID := 5

	before := sys.counts(t)["Chest Press"]

	created, err := sys.bookings.Create(ctx, dto.CreateBookingRequest{EquipmentID: 1, TimeSlotID: 1, UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, dto.BookingResponse{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5, Done: false}, created)
	assert.Equal(t, before+1, sys.counts(t)["Chest Press"])

	active, err := sys.bookings.ListActive(ctx)
	require.NoError(t, err)
	assert.Contains(t, active, created)

	completed, err := sys.bookings.Complete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, completed.Done)
	assert.Equal(t, before, sys.counts(t)["Chest Press"])

	_, err = sys.bookings.Complete(ctx, 1)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	require.NoError(t, sys.bookings.Cancel(ctx, 1))
	assert.Equal(t, before, sys.counts(t)["Chest Press"], "cancelling a completed booking must not decrement again")

	err = sys.bookings.Cancel(ctx, 1)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	sys.assertInvariant(t)
}

func TestNotFoundLeavesStateUnchanged(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	_, err := sys.bookings.Create(ctx, dto.CreateBookingRequest{EquipmentID: 11, TimeSlotID: 1})
	require.NoError(t, err)

	before := sys.counts(t)
	activeBefore, err := sys.bookings.ListActive(ctx)
	require.NoError(t, err)

	_, err = sys.bookings.Complete(ctx, 77)
	assert.True(t, failure.IsNotFound(err))

	err = sys.bookings.Cancel(ctx, 77)
	assert.True(t, failure.IsNotFound(err))

	activeAfter, err := sys.bookings.ListActive(ctx)
	require.NoError(t, err)

	assert.Equal(t, before, sys.counts(t))
	assert.Equal(t, activeBefore, activeAfter)
}

func TestFailedLedgerUpdateRollsBackBooking(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	sys.store.failNext = true

	_, err := sys.bookings.Create(ctx, dto.CreateBookingRequest{EquipmentID: 5, TimeSlotID: 1})
	require.Error(t, err)

	active, err := sys.bookings.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	sys.assertInvariant(t)
}

func TestInvariant_RandomSequences(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()
	rnd := rand.New(rand.NewPCG(7, 11))

	var ids []int

	for range 500 {
		switch rnd.IntN(3) {
		case 0:
			// equipment 13 has no zone and must leave every counter alone
			booking, err := sys.bookings.Create(ctx, dto.CreateBookingRequest{
				EquipmentID: rnd.IntN(13) + 1,
				TimeSlotID:  rnd.IntN(4) + 1,
			})
			require.NoError(t, err)

			ids = append(ids, booking.ID)
		case 1:
			if len(ids) == 0 {
				continue
			}

			_, err := sys.bookings.Complete(ctx, ids[rnd.IntN(len(ids))])
			if err != nil {
				require.True(t, failure.IsNotFound(err))
			}
		default:
			if len(ids) == 0 {
				continue
			}

			err := sys.bookings.Cancel(ctx, ids[rnd.IntN(len(ids))])
			if err != nil {
				require.True(t, failure.IsNotFound(err))
			}
		}

		sys.assertInvariant(t)

		for _, count := range sys.counts(t) {
			require.GreaterOrEqual(t, count, 0)
		}
	}
}

func TestInvariant_Concurrent(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	created := make([]dto.BookingResponse, 0, 40)
	for i := range 40 {
		booking, err := sys.bookings.Create(ctx, dto.CreateBookingRequest{EquipmentID: i%12 + 1, TimeSlotID: 1})
		require.NoError(t, err)

		created = append(created, booking)
	}

	var wg sync.WaitGroup

	// complete and cancel race on every booking; occupancy must be released exactly once
	for _, booking := range created {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_, _ = sys.bookings.Complete(ctx, booking.ID)
		}()

		go func() {
			defer wg.Done()

			_ = sys.bookings.Cancel(ctx, booking.ID)
		}()
	}

	wg.Wait()

	for zone, count := range sys.counts(t) {
		assert.Zero(t, count, zone)
	}

	sys.assertInvariant(t)
}

func TestReconcileRepairsDrift(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	for _, equipmentID := range []int{1, 2, 11} {
		_, err := sys.bookings.Create(ctx, dto.CreateBookingRequest{EquipmentID: equipmentID, TimeSlotID: 1})
		require.NoError(t, err)
	}

	// drift left behind by the old trigger
	sys.store.zones[0].CurrentBookings += 4

	changes, err := sys.ledger.Reconcile(ctx)
	require.NoError(t, err)

	assert.Equal(t, []occupancyDto.ReconcileChange{
		{ZoneName: sys.store.zones[0].ZoneName, Before: 4, After: 0},
	}, changes)

	sys.assertInvariant(t)
}
