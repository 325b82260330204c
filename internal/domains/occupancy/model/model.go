package model

const (
	TableName  = "gym_map"
	EntityName = "zone_occupancy"

	FieldZoneID          = "zone_id"
	FieldZoneName        = "zone_name"
	FieldCurrentBookings = "current_bookings"
)

// ZoneOccupancy is the live count of active bookings in one zone.
type ZoneOccupancy struct {
	ZoneID          int    `db:"zone_id"          insert:"-"`
	ZoneName        string `db:"zone_name"`
	CurrentBookings int    `db:"current_bookings"`
}
