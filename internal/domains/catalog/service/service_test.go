package service_test

import (
	"context"
	"errors"
	"repnowait/config"
	otelMocks "repnowait/infras/otel/mocks"
	"repnowait/internal/domains/catalog/mocks"
	"repnowait/internal/domains/catalog/model"
	"repnowait/internal/domains/catalog/model/dto"
	"repnowait/internal/domains/catalog/service"
	"repnowait/shared/cache"
	cacheMocks "repnowait/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ttl = 300

func setup(t *testing.T) (*mocks.MockCatalog, *cacheMocks.MockRedisCache, service.Catalog) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = ttl

	repo := mocks.NewMockCatalog(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	return repo, redisCache, service.New(repo, redisCache, cfg, otelMocks.NewOtel())
}

func TestMuscleGroups_CacheMiss(t *testing.T) {
	repo, redisCache, svc := setup(t)

	expected := []dto.MuscleGroupResponse{{ID: 1, Name: "Chest"}, {ID: 2, Name: "Back"}}

	redisCache.EXPECT().Get(gomock.Any(), "catalog:muscle_groups", gomock.Any()).Return(cache.Nil)
	repo.EXPECT().MuscleGroups(gomock.Any()).Return([]model.MuscleGroup{{ID: 1, Name: "Chest"}, {ID: 2, Name: "Back"}}, nil)
	redisCache.EXPECT().Save(gomock.Any(), "catalog:muscle_groups", expected, ttl).Return(nil)

	groups, err := svc.MuscleGroups(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, groups)
}

func TestMuscleGroups_CacheHit(t *testing.T) {
	repo, redisCache, svc := setup(t)

	redisCache.EXPECT().Get(gomock.Any(), "catalog:muscle_groups", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*[]dto.MuscleGroupResponse) = []dto.MuscleGroupResponse{{ID: 1, Name: "Chest"}}

			return nil
		})
	repo.EXPECT().MuscleGroups(gomock.Any()).Times(0)

	groups, err := svc.MuscleGroups(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.MuscleGroupResponse{{ID: 1, Name: "Chest"}}, groups)
}

func TestEquipmentByGroup(t *testing.T) {
	repo, redisCache, svc := setup(t)

	redisCache.EXPECT().Get(gomock.Any(), "catalog:equipment:3", gomock.Any()).Return(cache.Nil)
	repo.EXPECT().EquipmentByGroup(gomock.Any(), 3).Return([]model.Equipment{{ID: 5, Name: "Leg Press", MuscleGroupID: 3}}, nil)
	redisCache.EXPECT().Save(gomock.Any(), "catalog:equipment:3", gomock.Any(), ttl).Return(nil)

	equipment, err := svc.EquipmentByGroup(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []dto.EquipmentResponse{{ID: 5, Name: "Leg Press", MuscleGroupID: 3}}, equipment)
}

func TestEquipmentByGroup_UnknownGroupIsEmpty(t *testing.T) {
	repo, redisCache, svc := setup(t)

	redisCache.EXPECT().Get(gomock.Any(), "catalog:equipment:99", gomock.Any()).Return(cache.Nil)
	repo.EXPECT().EquipmentByGroup(gomock.Any(), 99).Return([]model.Equipment{}, nil)
	redisCache.EXPECT().Save(gomock.Any(), "catalog:equipment:99", gomock.Any(), ttl).Return(nil)

	equipment, err := svc.EquipmentByGroup(context.Background(), 99)

	require.NoError(t, err)
	assert.NotNil(t, equipment)
	assert.Empty(t, equipment)
}

func TestTimeSlots_CacheUnavailable(t *testing.T) {
	repo, redisCache, svc := setup(t)

	redisCache.EXPECT().Get(gomock.Any(), "catalog:time_slots", gomock.Any()).Return(errors.New("connection refused"))
	repo.EXPECT().TimeSlots(gomock.Any()).Return([]model.TimeSlot{{ID: 1, Label: "06:00 - 07:00"}}, nil)
	redisCache.EXPECT().Save(gomock.Any(), "catalog:time_slots", gomock.Any(), ttl).Return(errors.New("connection refused"))

	slots, err := svc.TimeSlots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.TimeSlotResponse{{ID: 1, Label: "06:00 - 07:00"}}, slots)
}

func TestTimeSlots_StoreError(t *testing.T) {
	repo, redisCache, svc := setup(t)

	redisCache.EXPECT().Get(gomock.Any(), "catalog:time_slots", gomock.Any()).Return(cache.Nil)
	repo.EXPECT().TimeSlots(gomock.Any()).Return(nil, errors.New("relation does not exist"))

	_, err := svc.TimeSlots(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list time slots")
}
