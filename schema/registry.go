package schema

// ByName returns a built-in product schema by its stable name.
func ByName(name string) (*Schema, bool) {
	switch name {
	case "iqdat":
		return IQDAT, true
	case "rawacf":
		return RAWACF, true
	case "fitacf":
		return FITACF, true
	case "grid":
		return GRID, true
	case "map":
		return MAP, true
	default:
		return nil, false
	}
}
