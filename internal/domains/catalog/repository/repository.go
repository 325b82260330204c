package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"repnowait/infras/otel"
	"repnowait/infras/postgres"
	"repnowait/internal/domains/catalog/model"
	"repnowait/shared"
	"repnowait/shared/constant"
	gDto "repnowait/shared/dto"
	gRepo "repnowait/shared/repository"
)

// Catalog reads the immutable reference tables.
type Catalog interface {
	MuscleGroups(ctx context.Context) ([]model.MuscleGroup, error)
	EquipmentByGroup(ctx context.Context, muscleGroupID int) ([]model.Equipment, error)
	TimeSlots(ctx context.Context) ([]model.TimeSlot, error)
}

type repositoryImpl struct {
	muscleGroups gRepo.Repository[model.MuscleGroup]
	equipment    gRepo.Repository[model.Equipment]
	timeSlots    gRepo.Repository[model.TimeSlot]
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		muscleGroups: gRepo.NewRepository[model.MuscleGroup](model.EntityMuscleGroup, model.TableMuscleGroups, model.FieldID, db, otel),
		equipment:    gRepo.NewRepository[model.Equipment](model.EntityEquipment, model.TableEquipment, model.FieldID, db, otel),
		timeSlots:    gRepo.NewRepository[model.TimeSlot](model.EntityTimeSlot, model.TableTimeSlots, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) MuscleGroups(ctx context.Context) ([]model.MuscleGroup, error) {
	return r.muscleGroups.GetAll(ctx, gDto.FilterGroup{}, constant.OrderByID)
}

func (r *repositoryImpl) EquipmentByGroup(ctx context.Context, muscleGroupID int) ([]model.Equipment, error) {
	filter := shared.FilterByID(muscleGroupID, model.FieldMuscleGroupID, model.TableEquipment)

	return r.equipment.GetAll(ctx, filter, constant.OrderByID)
}

func (r *repositoryImpl) TimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return r.timeSlots.GetAll(ctx, gDto.FilterGroup{}, constant.OrderByID)
}
