package vehicles

// The registry is the single source of truth for what a category's
// records look like: assembly, persistence and querying all consult
// it, so the three cannot drift apart.

type Kind int

const (
	// printable text, trimmed
	KindFreeText Kind = iota
	// bounded one-decimal number, out of range becomes "no value"
	KindNumber
	// decimal digits only (e.g. crew count)
	KindDigits
	// roman-numeral rank, stored as text, decoded to 1-8 on read
	KindRank
)

// FieldSpec declares one extractable, storable attribute of a
// category. Specs are immutable and defined below at startup.
type FieldSpec struct {
	Name    string
	Loc     Locator
	Kind    Kind
	Default Value

	// Indexed fields read the Index-th result of LocateAll (the
	// ground optics triples); everything else takes the first match.
	Indexed bool
	Index   int

	// keep only the text before the first space (drops a trailing
	// unit token like "km/h")
	TrimUnit bool
	// keep only the first line of a multi-line cell
	FirstLine bool
}

var unknown = Text("Unknown")

// prefixFields are shared by every category, in storage order.
var prefixFields = []FieldSpec{
	{Name: "name", Kind: KindFreeText, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_name"}},
	{Name: "nation", Kind: KindFreeText, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_card-info_item", Label: "Game nation", Value: "div.game-unit_card-info_value div.text-truncate"}},
	{Name: "rank", Kind: KindRank, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_card-info_item.game-unit_rank", Value: "div.game-unit_card-info_value"}},
	{Name: "main_role", Kind: KindFreeText, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_card-info_item", Label: "Main role", Value: "div.game-unit_card-info_value div.text-truncate"}},
	{Name: "AB", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_br-item", Label: "AB", Value: ".value"}},
	{Name: "RB", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_br-item", Label: "RB", Value: ".value"}},
	{Name: "SB", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_br-item", Label: "SB", Value: ".value"}},
	{Name: "purchase", Kind: KindFreeText, Default: Text("0"),
		Loc: Locator{Scope: "div.game-unit_card-info_item", Label: "Purchase", Value: "div.game-unit_card-info_value div"}},
	{Name: "research", Kind: KindFreeText, Default: Text("0"),
		Loc: Locator{Scope: "div.game-unit_card-info_item", Label: "Research", Value: "div.game-unit_card-info_value div"}},
}

var aviationFields = []FieldSpec{
	{Name: "max_speed", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Max speed", Sibling: "div.game-unit_chars-subline", Value: "span.game-unit_chars-value span.show-char-rb-mod-ref"}},
	{Name: "at_height", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Max speed", Sibling: "div.game-unit_chars-subline", Value: "span:first-of-type span:first-of-type"}},
	{Name: "rate_of_climb", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Rate of Climb", Value: "span.game-unit_chars-value span.show-char-rb-mod-ref"}},
	{Name: "turn_time", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Turn time", Value: "span.game-unit_chars-value span.show-char-rb-mod-ref"}},
	{Name: "max_altitude", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Max altitude", Value: "span.game-unit_chars-value"}},
	{Name: "takeoff_run", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Takeoff Run", Value: "span.game-unit_chars-value"}},
	{Name: "crew", Kind: KindDigits,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Crew", Value: "span.game-unit_chars-value"}},
	{Name: "length", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Length", Value: "span.game-unit_chars-value"}},
	{Name: "gross_weight", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Gross weight", Value: "span.game-unit_chars-value"}},
	{Name: "wingspan", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Wingspan", Value: "span.game-unit_chars-value"}},
	{Name: "engine", Kind: KindFreeText, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Engine", Value: "span.game-unit_chars-value"}},
	{Name: "max_speed_limit_ias", Kind: KindNumber, TrimUnit: true,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Max Speed Limit (IAS)", Value: "span.game-unit_chars-value"}},
	{Name: "flap_speed_limit_ias", Kind: KindNumber, TrimUnit: true,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Flap Speed Limit (IAS)", Value: "span.game-unit_chars-value"}},
	{Name: "mach_number_limit", Kind: KindNumber, TrimUnit: true,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Mach Number Limit", Value: "span.game-unit_chars-value"}},
}

var groundOpticsRow = Locator{Scope: "div.form-text", Label: "Optics zoom", Sibling: "div.gunit_specs-table_row", Value: "div"}
var groundDeviceRow = Locator{Scope: "div.form-text", Label: "Optical device", Sibling: "div.gunit_specs-table_row", Value: "div"}

var groundFields = []FieldSpec{
	{Name: "armor_hull", Kind: KindFreeText, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_chars-subline", Label: "Hull", Value: "span.game-unit_chars-value"}},
	{Name: "armor_turret", Kind: KindFreeText, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_chars-subline", Label: "Turret", Value: "span.game-unit_chars-value"}},
	{Name: "visibility", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Visibility", Value: "span.game-unit_chars-value"}},
	{Name: "crew", Kind: KindDigits,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Crew", Value: "span.game-unit_chars-value"}},
	{Name: "max_speed_forward", Kind: KindNumber, TrimUnit: true,
		Loc: Locator{Scope: "div.game-unit_chars-subline", Label: "Forward", Value: "span.game-unit_chars-value span.show-char-rb"}},
	{Name: "max_speed_backward", Kind: KindNumber, TrimUnit: true,
		Loc: Locator{Scope: "div.game-unit_chars-subline", Label: "Backward", Value: "span.game-unit_chars-value span"}},
	{Name: "power_to_weight_ratio", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Power-to-weight ratio", Value: "span.game-unit_chars-value span.show-char-rb-mod-ref"}},
	{Name: "engine_power", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-subline", Label: "Engine power", Value: "span.game-unit_chars-value span.show-char-rb-mod-ref"}},
	{Name: "weight", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-subline", Label: "Weight", Value: "span.game-unit_chars-value"}},
	{Name: "optics_gunner_zoom", Kind: KindFreeText, Default: unknown, Indexed: true, Index: 0, Loc: groundOpticsRow},
	{Name: "optics_commander_zoom", Kind: KindFreeText, Default: unknown, Indexed: true, Index: 1, Loc: groundOpticsRow},
	{Name: "optics_driver_zoom", Kind: KindFreeText, Default: unknown, Indexed: true, Index: 2, Loc: groundOpticsRow},
	{Name: "optics_gunner_device", Kind: KindFreeText, Default: unknown, Indexed: true, Index: 0, FirstLine: true, Loc: groundDeviceRow},
	{Name: "optics_commander_device", Kind: KindFreeText, Default: unknown, Indexed: true, Index: 1, FirstLine: true, Loc: groundDeviceRow},
	{Name: "optics_driver_device", Kind: KindFreeText, Default: unknown, Indexed: true, Index: 2, FirstLine: true, Loc: groundDeviceRow},
}

var helicopterFields = []FieldSpec{
	{Name: "max_speed", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Max speed", Sibling: "div.game-unit_chars-subline", Value: "span.game-unit_chars-value span.show-char-rb-mod-ref"}},
	{Name: "at_height", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Max speed", Sibling: "div.game-unit_chars-subline", Value: "span:first-of-type span:first-of-type"}},
	{Name: "rate_of_climb", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Rate of Climb", Value: "span.game-unit_chars-value span.show-char-rb-mod-ref"}},
	{Name: "max_altitude", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-line", Label: "Max altitude", Value: "span.game-unit_chars-value"}},
	{Name: "crew", Kind: KindDigits,
		Loc: Locator{Scope: "div.game-unit_chars-block div", Label: "Crew", Value: "span.game-unit_chars-value"}},
	{Name: "gross_weight", Kind: KindNumber,
		Loc: Locator{Scope: "div.game-unit_chars-block div", Label: "Gross weight", Value: "span.game-unit_chars-value"}},
	{Name: "engine", Kind: KindFreeText, Default: unknown,
		Loc: Locator{Scope: "div.game-unit_chars-block div", Label: "Engine", Value: "span.game-unit_chars-value"}},
	{Name: "main_rotor_diameter", Kind: KindNumber, TrimUnit: true,
		Loc: Locator{Scope: "div.game-unit_chars-block div", Label: "Main rotor diameter", Value: "span.game-unit_chars-value"}},
}

var categoryFields = map[Category][]FieldSpec{
	Aviation:   aviationFields,
	Ground:     groundFields,
	Helicopter: helicopterFields,
}

// FieldsFor returns the ordered field list of a category: the shared
// prefix followed by the category's own fields.
func FieldsFor(category Category) []FieldSpec {
	extra := categoryFields[category]
	out := make([]FieldSpec, 0, len(prefixFields)+len(extra))
	out = append(out, prefixFields...)
	out = append(out, extra...)
	return out
}

// sortNameMap translates client-facing sort names to storage field
// names, so the API vocabulary can diverge from column naming.
var sortNameMap = map[string]string{
	"price":                 "purchase",
	"research point":        "research",
	"crews":                 "crew",
	"max speed":             "max_speed",
	"max speed at height":   "at_height",
	"flap speed limit ias":  "flap_speed_limit_ias",
	"gross weight":          "gross_weight",
	"mach number limit":     "mach_number_limit",
	"max altitude":          "max_altitude",
	"max speed limit ias":   "max_speed_limit_ias",
	"rate of climb":         "rate_of_climb",
	"take off run":          "takeoff_run",
	"turn time":             "turn_time",
	"power to weight ratio": "power_to_weight_ratio",
}

// MapSortField resolves a client sort name to its storage field name.
// Names with no mapping pass through unchanged and get caught by the
// allow-list instead.
func MapSortField(clientName string) string {
	if mapped, ok := sortNameMap[clientName]; ok {
		return mapped
	}
	return clientName
}

var allowedSort = map[Category][]string{
	Aviation: {
		"name", "rank", "purchase", "research", "AB", "RB", "SB", "crew",
		"max_speed", "at_height", "flap_speed_limit_ias", "gross_weight",
		"length", "mach_number_limit", "max_altitude", "max_speed_limit_ias",
		"rate_of_climb", "takeoff_run", "turn_time", "wingspan",
	},
	Ground: {
		"name", "rank", "purchase", "research", "AB", "RB", "SB", "crew",
		"engine_power", "max_speed_forward", "max_speed_backward", "weight",
		"power_to_weight_ratio", "visibility",
	},
	Helicopter: {
		"name", "rank", "purchase", "research", "AB", "RB", "SB",
		"at_height", "crew", "gross_weight", "main_rotor_diameter",
		"max_altitude", "max_speed", "rate_of_climb",
	},
}

// AllowedSortFields reports the fixed set of storage field names the
// category accepts as a sort key.
func AllowedSortFields(category Category) map[string]bool {
	out := map[string]bool{}
	for _, f := range allowedSort[category] {
		out[f] = true
	}
	return out
}

// castFields are stored as text but hold numbers; ordering by them
// must cast to decimal or multi-digit values sort lexically.
var castFields = map[string]bool{
	"rank": true, "purchase": true, "research": true,
	"AB": true, "RB": true, "SB": true, "crew": true,
	"max_speed": true, "at_height": true, "flap_speed_limit_ias": true,
	"gross_weight": true, "length": true, "mach_number_limit": true,
	"max_altitude": true, "max_speed_limit_ias": true,
	"rate_of_climb": true, "takeoff_run": true, "turn_time": true,
	"wingspan": true, "engine_power": true, "max_speed_forward": true,
	"max_speed_backward": true, "weight": true,
	"power_to_weight_ratio": true, "visibility": true,
	"main_rotor_diameter": true,
}

// NumericField reports whether ordering by `field` needs a decimal
// cast.
func NumericField(field string) bool {
	return castFields[field]
}
