package model

const (
	TableMuscleGroups = "muscle_groups"
	TableEquipment    = "equipment"
	TableTimeSlots    = "time_slots"

	EntityMuscleGroup = "muscle_group"
	EntityEquipment   = "equipment"
	EntityTimeSlot    = "time_slot"

	FieldID            = "id"
	FieldName          = "name"
	FieldLabel         = "label"
	FieldMuscleGroupID = "muscle_group_id"
)

type MuscleGroup struct {
	ID   int    `db:"id"   insert:"-"`
	Name string `db:"name"`
}

type Equipment struct {
	ID            int    `db:"id"              insert:"-"`
	Name          string `db:"name"`
	MuscleGroupID int    `db:"muscle_group_id"`
}

type TimeSlot struct {
	ID    int    `db:"id"    insert:"-"`
	Label string `db:"label"`
}
