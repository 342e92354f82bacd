package domain

// osu! game modes accepted by the profile endpoints
const (
	ModeStandard = "osu"
	ModeTaiko    = "taiko"
	ModeCatch    = "fruits"
	ModeMania    = "mania"
)

// ModeDisplayNames maps game modes to their display names.
var ModeDisplayNames = map[string]string{
	ModeStandard: "osu!standard",
	ModeTaiko:    "osu!taiko",
	ModeCatch:    "osu!catch (ctb)",
	ModeMania:    "osu!mania",
}
