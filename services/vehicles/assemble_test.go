package vehicles

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const aviationPage = `<html><body>
<div class="game-unit_name">P-51D-5</div>
<div class="game-unit_card-info_item">
	<div class="game-unit_card-info_label">Game nation</div>
	<div class="game-unit_card-info_value"><div class="text-truncate">USA</div></div>
</div>
<div class="game-unit_card-info_item game-unit_rank">
	<div class="game-unit_card-info_label">Rank</div>
	<div class="game-unit_card-info_value">IV</div>
</div>
<div class="game-unit_card-info_item">
	<div class="game-unit_card-info_label">Main role</div>
	<div class="game-unit_card-info_value"><div class="text-truncate">Fighter</div></div>
</div>
<div class="game-unit_br-item"><div>AB</div><div class="value">4.3</div></div>
<div class="game-unit_br-item"><div>RB</div><div class="value">4.7</div></div>
<div class="game-unit_br-item"><div>SB</div><div class="value">5.0</div></div>
<div class="game-unit_card-info_item">
	<div class="game-unit_card-info_label">Purchase</div>
	<div class="game-unit_card-info_value"><div>170000</div></div>
</div>
<div class="game-unit_card-info_item">
	<div class="game-unit_card-info_label">Research</div>
	<div class="game-unit_card-info_value"><div>63000</div></div>
</div>
<div class="game-unit_chars-line">Max speed</div>
<div class="game-unit_chars-subline">
	<span class="game-unit_chars-value"><span class="show-char-rb-mod-ref">711</span></span> km/h
</div>
<div class="game-unit_chars-line">Rate of Climb
	<span class="game-unit_chars-value"><span class="show-char-rb-mod-ref">17.8</span></span>
</div>
<div class="game-unit_chars-line">Turn time
	<span class="game-unit_chars-value"><span class="show-char-rb-mod-ref">21.3</span></span>
</div>
<div class="game-unit_chars-line">Max altitude
	<span class="game-unit_chars-value">11500 m</span>
</div>
<div class="game-unit_chars-line">Takeoff Run
	<span class="game-unit_chars-value">750 m</span>
</div>
<div class="game-unit_chars-line">Crew
	<span class="game-unit_chars-value">1 person</span>
</div>
<div class="game-unit_chars-line">Length
	<span class="game-unit_chars-value">9.83 m</span>
</div>
<div class="game-unit_chars-line">Gross weight
	<span class="game-unit_chars-value">5.3 t</span>
</div>
<div class="game-unit_chars-line">Wingspan
	<span class="game-unit_chars-value">11.28 m</span>
</div>
<div class="game-unit_chars-line">Engine
	<span class="game-unit_chars-value">Packard V-1650-3</span>
</div>
<div class="game-unit_chars-line">Max Speed Limit (IAS)
	<span class="game-unit_chars-value">797 km/h</span>
</div>
<div class="game-unit_chars-line">Flap Speed Limit (IAS)
	<span class="game-unit_chars-value">400 km/h</span>
</div>
<div class="game-unit_chars-line">Mach Number Limit
	<span class="game-unit_chars-value">0.8</span>
</div>
</body></html>`

const groundPage = `<html><body>
<div class="game-unit_name">T-34-85</div>
<div class="game-unit_card-info_item">
	<div class="game-unit_card-info_label">Game nation</div>
	<div class="game-unit_card-info_value"><div class="text-truncate">USSR</div></div>
</div>
<div class="game-unit_card-info_item game-unit_rank">
	<div class="game-unit_card-info_value">III</div>
</div>
<div class="game-unit_chars-subline">Hull
	<span class="game-unit_chars-value">45 / 45 / 40</span>
</div>
<div class="game-unit_chars-subline">Turret
	<span class="game-unit_chars-value">90 / 75 / 52</span>
</div>
<div class="game-unit_chars-line">Visibility
	<span class="game-unit_chars-value">103 %</span>
</div>
<div class="game-unit_chars-line">Crew
	<span class="game-unit_chars-value">5 people</span>
</div>
<div class="game-unit_chars-subline">Forward
	<span class="game-unit_chars-value"><span class="show-char-rb">55 km/h</span></span>
</div>
<div class="game-unit_chars-subline">Backward
	<span class="game-unit_chars-value"><span>8 km/h</span></span>
</div>
<div class="game-unit_chars-line">Power-to-weight ratio
	<span class="game-unit_chars-value"><span class="show-char-rb-mod-ref">16.2</span></span>
</div>
<div class="game-unit_chars-subline">Engine power
	<span class="game-unit_chars-value"><span class="show-char-rb-mod-ref">520</span></span>
</div>
<div class="game-unit_chars-subline">Weight
	<span class="game-unit_chars-value">32.2 t</span>
</div>
<div class="form-text">Optics zoom</div>
<div class="gunit_specs-table_row">
	<div>2.7x-12x</div>
	<div>4.0x-8.0x</div>
	<div>1.0x</div>
</div>
<div class="form-text">Optical device</div>
<div class="gunit_specs-table_row">
	<div>Gunner sight
NVD</div>
	<div>Commander sight</div>
	<div>Driver periscope
NVD</div>
</div>
</body></html>`

const helicopterPage = `<html><body>
<div class="game-unit_name">Mi-24P</div>
<div class="game-unit_card-info_item">
	<div class="game-unit_card-info_label">Game nation</div>
	<div class="game-unit_card-info_value"><div class="text-truncate">USSR</div></div>
</div>
<div class="game-unit_card-info_item game-unit_rank">
	<div class="game-unit_card-info_value">VI</div>
</div>
<div class="game-unit_chars-line">Max speed</div>
<div class="game-unit_chars-subline">
	<span class="game-unit_chars-value"><span class="show-char-rb-mod-ref">335</span></span> km/h
</div>
<div class="game-unit_chars-line">Rate of Climb
	<span class="game-unit_chars-value"><span class="show-char-rb-mod-ref">12.5</span></span>
</div>
<div class="game-unit_chars-line">Max altitude
	<span class="game-unit_chars-value">550 m</span>
</div>
<div class="game-unit_chars-block">
	<div>Crew <span class="game-unit_chars-value">2 people</span></div>
	<div>Gross weight <span class="game-unit_chars-value">11.5 t</span></div>
	<div>Engine <span class="game-unit_chars-value">2 x Isotov TV3-117</span></div>
	<div>Main rotor diameter <span class="game-unit_chars-value">17.3 m</span></div>
</div>
</body></html>`

func parsePage(t *testing.T, page string) Document {
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func requireText(t *testing.T, record Record, field, expected string) {
	value, ok := record.Get(field)
	require.True(t, ok, "field %q not declared", field)
	text, ok := value.Text()
	require.True(t, ok, "field %q is not text", field)
	require.Equal(t, expected, text)
}

func requireNumber(t *testing.T, record Record, field string, expected float64) {
	value, ok := record.Get(field)
	require.True(t, ok, "field %q not declared", field)
	num, ok := value.Number()
	require.True(t, ok, "field %q is not a number", field)
	require.Equal(t, expected, num)
}

func requireNoValue(t *testing.T, record Record, field string) {
	value, ok := record.Get(field)
	require.True(t, ok, "field %q not declared", field)
	require.True(t, value.IsNone(), "field %q should have no value", field)
}

func TestAssembleAviation(t *testing.T) {
	record := Assemble(context.Background(), parsePage(t, aviationPage), Aviation)
	require.Equal(t, Aviation, record.Category)
	require.Len(t, record.Fields, len(FieldsFor(Aviation)))

	requireText(t, record, "name", "P-51D-5")
	requireText(t, record, "nation", "USA")
	requireText(t, record, "rank", "IV")
	requireText(t, record, "main_role", "Fighter")
	requireNumber(t, record, "AB", 4.3)
	requireNumber(t, record, "RB", 4.7)
	requireNumber(t, record, "SB", 5.0)
	requireText(t, record, "purchase", "170000")
	requireText(t, record, "research", "63000")

	requireNumber(t, record, "max_speed", 711)
	requireNumber(t, record, "at_height", 711)
	requireNumber(t, record, "rate_of_climb", 17.8)
	requireNumber(t, record, "turn_time", 21.3)
	// beyond the representable bound, treated as corrupted
	requireNoValue(t, record, "max_altitude")
	requireNumber(t, record, "takeoff_run", 750)
	requireText(t, record, "crew", "1")
	requireNumber(t, record, "length", 9.8)
	requireNumber(t, record, "gross_weight", 5.3)
	requireNumber(t, record, "wingspan", 11.3)
	requireText(t, record, "engine", "Packard V-1650-3")
	requireNumber(t, record, "max_speed_limit_ias", 797)
	requireNumber(t, record, "flap_speed_limit_ias", 400)
	requireNumber(t, record, "mach_number_limit", 0.8)
}

func TestAssembleGround(t *testing.T) {
	record := Assemble(context.Background(), parsePage(t, groundPage), Ground)
	require.Len(t, record.Fields, len(FieldsFor(Ground)))

	requireText(t, record, "name", "T-34-85")
	requireText(t, record, "nation", "USSR")
	requireText(t, record, "rank", "III")

	requireText(t, record, "armor_hull", "45 / 45 / 40")
	requireText(t, record, "armor_turret", "90 / 75 / 52")
	requireNumber(t, record, "visibility", 103)
	requireText(t, record, "crew", "5")
	requireNumber(t, record, "max_speed_forward", 55)
	requireNumber(t, record, "max_speed_backward", 8)
	requireNumber(t, record, "power_to_weight_ratio", 16.2)
	requireNumber(t, record, "engine_power", 520)
	requireNumber(t, record, "weight", 32.2)

	requireText(t, record, "optics_gunner_zoom", "2.7x-12x")
	requireText(t, record, "optics_commander_zoom", "4.0x-8.0x")
	requireText(t, record, "optics_driver_zoom", "1.0x")
	// device cells hold one device per line, only the first counts
	requireText(t, record, "optics_gunner_device", "Gunner sight")
	requireText(t, record, "optics_commander_device", "Commander sight")
	requireText(t, record, "optics_driver_device", "Driver periscope")
}

func TestAssembleHelicopter(t *testing.T) {
	record := Assemble(context.Background(), parsePage(t, helicopterPage), Helicopter)
	require.Len(t, record.Fields, len(FieldsFor(Helicopter)))

	requireText(t, record, "name", "Mi-24P")
	requireText(t, record, "rank", "VI")
	requireNumber(t, record, "max_speed", 335)
	requireNumber(t, record, "at_height", 335)
	requireNumber(t, record, "rate_of_climb", 12.5)
	requireNumber(t, record, "max_altitude", 550)
	requireText(t, record, "crew", "2")
	requireNumber(t, record, "gross_weight", 11.5)
	requireText(t, record, "engine", "2 x Isotov TV3-117")
	requireNumber(t, record, "main_rotor_diameter", 17.3)
}

func TestAssembleDefaults(t *testing.T) {
	empty := parsePage(t, "<html><body></body></html>")
	for _, category := range Categories {
		record := Assemble(context.Background(), empty, category)
		require.Len(t, record.Fields, len(FieldsFor(category)))

		requireText(t, record, "name", "Unknown")
		requireText(t, record, "nation", "Unknown")
		requireText(t, record, "rank", "Unknown")
		requireText(t, record, "purchase", "0")
		requireText(t, record, "research", "0")
		requireNoValue(t, record, "AB")
		requireNoValue(t, record, "RB")
		requireNoValue(t, record, "SB")
	}
	{
		record := Assemble(context.Background(), empty, Ground)
		requireText(t, record, "optics_gunner_device", "Unknown")
		requireText(t, record, "optics_driver_zoom", "Unknown")
	}
}
