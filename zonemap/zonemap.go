// Package zonemap holds the static equipment to zone table used by the occupancy ledger.
package zonemap

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"repnowait/config"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed zones.json
var zonesData []byte

type equipment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type tableData struct {
	Equipment []equipment       `json:"equipment"`
	Zones     map[string]string `json:"zones"`
}

// Table resolves equipment ids to zone names. It is immutable once built.
type Table struct {
	names map[int]string
	zones map[string]string
}

// New loads the table named by APP_ZONE_MAP_FILE, or the embedded one, and exits when it is invalid.
func New(config *config.Config) *Table {
	table, err := Load(config.App.ZoneMapFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", config.App.ZoneMapFile).Msg("Failed to load zone map")
	}

	log.Info().
		Int("equipment", len(table.names)).
		Int("zones", len(table.Zones())).
		Msg("Successfully loaded zone map")

	return table
}

// Load reads the table from path, falling back to the embedded table when path is empty.
func Load(path string) (*Table, error) {
	data := zonesData

	if path != "" {
		var err error

		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read zone map: %w", err)
		}
	}

	return Parse(data)
}

// Parse decodes and validates a JSON zone table.
func Parse(data []byte) (*Table, error) {
	var raw tableData

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode zone map: %w", err)
	}

	table := &Table{
		names: make(map[int]string, len(raw.Equipment)),
		zones: make(map[string]string, len(raw.Zones)),
	}

	for _, item := range raw.Equipment {
		name := strings.TrimSpace(item.Name)

		if item.ID <= 0 || name == "" {
			return nil, fmt.Errorf("invalid equipment entry %d %q", item.ID, item.Name)
		}

		if _, ok := table.names[item.ID]; ok {
			return nil, fmt.Errorf("duplicate equipment id %d", item.ID)
		}

		table.names[item.ID] = name
	}

	for name, zone := range raw.Zones {
		zone = strings.TrimSpace(zone)
		if zone == "" {
			return nil, fmt.Errorf("equipment %q has an empty zone", name)
		}

		table.zones[strings.TrimSpace(name)] = zone
	}

	for id, name := range table.names {
		if _, ok := table.zones[name]; !ok {
			log.Warn().Int("equipment_id", id).Str("equipment", name).Msg("equipment has no zone")
		}
	}

	return table, nil
}

// EquipmentName returns the configured name of an equipment id.
func (t *Table) EquipmentName(equipmentID int) (string, bool) {
	name, ok := t.names[equipmentID]

	return name, ok
}

// ZoneFor returns the zone that owns equipmentID.
func (t *Table) ZoneFor(equipmentID int) (string, bool) {
	name, ok := t.names[equipmentID]
	if !ok {
		return "", false
	}

	zone, ok := t.zones[name]

	return zone, ok
}

// Zones returns the distinct zone names, sorted.
func (t *Table) Zones() []string {
	zones := make([]string, 0, len(t.zones))

	for _, zone := range t.zones {
		if !slices.Contains(zones, zone) {
			zones = append(zones, zone)
		}
	}

	slices.Sort(zones)

	return zones
}
