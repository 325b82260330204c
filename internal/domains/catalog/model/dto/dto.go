package dto

import "repnowait/internal/domains/catalog/model"

type MuscleGroupResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (m *MuscleGroupResponse) FromModel(data model.MuscleGroup) {
	m.ID = data.ID
	m.Name = data.Name
}

type EquipmentResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	MuscleGroupID int    `json:"muscle_group_id"`
}

func (e *EquipmentResponse) FromModel(data model.Equipment) {
	e.ID = data.ID
	e.Name = data.Name
	e.MuscleGroupID = data.MuscleGroupID
}

type TimeSlotResponse struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

func (t *TimeSlotResponse) FromModel(data model.TimeSlot) {
	t.ID = data.ID
	t.Label = data.Label
}

func FromMuscleGroups(models []model.MuscleGroup) []MuscleGroupResponse {
	res := make([]MuscleGroupResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

func FromEquipment(models []model.Equipment) []EquipmentResponse {
	res := make([]EquipmentResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

func FromTimeSlots(models []model.TimeSlot) []TimeSlotResponse {
	res := make([]TimeSlotResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
