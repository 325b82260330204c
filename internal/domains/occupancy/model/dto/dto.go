package dto

import "repnowait/internal/domains/occupancy/model"

// ZoneCount is one heatmap entry.
type ZoneCount struct {
	ZoneName string `json:"zone_name"`
	Count    int    `json:"count"`
}

func (z *ZoneCount) FromModel(m model.ZoneOccupancy) {
	z.ZoneName = m.ZoneName
	z.Count = m.CurrentBookings
}

func FromModels(models []model.ZoneOccupancy) []ZoneCount {
	res := make([]ZoneCount, 0, len(models))

	for _, m := range models {
		var zone ZoneCount

		zone.FromModel(m)
		res = append(res, zone)
	}

	return res
}

// ReconcileChange records a zone whose stored count disagreed with its active bookings.
type ReconcileChange struct {
	ZoneName string `json:"zone_name"`
	Before   int    `json:"before"`
	After    int    `json:"after"`
}
