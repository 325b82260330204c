package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"
	"fmt"
	"repnowait/config"
	"repnowait/infras/otel"
	"repnowait/internal/domains/catalog/model/dto"
	"repnowait/internal/domains/catalog/repository"
	"repnowait/shared"
	"repnowait/shared/cache"
	"repnowait/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyPrefix       = "catalog"
	cacheKeyMuscleGroups = "muscle_groups"
	cacheKeyEquipment    = "equipment"
	cacheKeyTimeSlots    = "time_slots"
)

type Catalog interface {
	MuscleGroups(ctx context.Context) ([]dto.MuscleGroupResponse, error)
	EquipmentByGroup(ctx context.Context, muscleGroupID int) ([]dto.EquipmentResponse, error)
	TimeSlots(ctx context.Context) ([]dto.TimeSlotResponse, error)
}

type serviceImpl struct {
	repo  repository.Catalog
	cache cache.RedisCache
	ttl   int
	otel  otel.Otel
}

func New(repo repository.Catalog, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		ttl:   cfg.Cache.TTL,
		otel:  otel,
	}
}

func (s *serviceImpl) MuscleGroups(ctx context.Context) (res []dto.MuscleGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.MuscleGroups")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.CacheKey(cacheKeyPrefix, cacheKeyMuscleGroups)

	res, err = cache.Remember(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]dto.MuscleGroupResponse, error) {
		groups, err := s.repo.MuscleGroups(ctx)
		if err != nil {
			return nil, err
		}

		return dto.FromMuscleGroups(groups), nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list muscle groups")

		return nil, fmt.Errorf("failed to list muscle groups: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) EquipmentByGroup(ctx context.Context, muscleGroupID int) (res []dto.EquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.EquipmentByGroup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("muscle_group.id", muscleGroupID)

	key := shared.CacheKey(cacheKeyPrefix, cacheKeyEquipment, muscleGroupID)

	res, err = cache.Remember(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]dto.EquipmentResponse, error) {
		equipment, err := s.repo.EquipmentByGroup(ctx, muscleGroupID)
		if err != nil {
			return nil, err
		}

		return dto.FromEquipment(equipment), nil
	})
	if err != nil {
		log.Error().Err(err).Int("muscle_group_id", muscleGroupID).Msg("failed to list equipment")

		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) TimeSlots(ctx context.Context) (res []dto.TimeSlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.TimeSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.CacheKey(cacheKeyPrefix, cacheKeyTimeSlots)

	res, err = cache.Remember(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]dto.TimeSlotResponse, error) {
		slots, err := s.repo.TimeSlots(ctx)
		if err != nil {
			return nil, err
		}

		return dto.FromTimeSlots(slots), nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list time slots")

		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}

	return res, nil
}
