package model

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldEquipmentID = "equipment_id"
	FieldTimeSlotID  = "time_slot_id"
	FieldUserID      = "user_id"
	FieldDone        = "done"
)

// Booking reserves one equipment item for one time slot. Done bookings no longer occupy their zone.
type Booking struct {
	ID          int  `db:"id"           insert:"-"`
	EquipmentID int  `db:"equipment_id"`
	TimeSlotID  int  `db:"time_slot_id"`
	UserID      int  `db:"user_id"`
	Done        bool `db:"done"`
}

// Active reports whether the booking still counts toward its zone.
func (b Booking) Active() bool {
	return b.ID != 0 && !b.Done
}
