package schema

import "github.com/hupe1980/godmap/atom"

// gridScalars is the time-window header shared by GRID and MAP records.
func gridScalars() []FieldDef {
	return []FieldDef{
		{Name: "start.year", Kind: atom.KindInt16},
		{Name: "start.month", Kind: atom.KindInt16},
		{Name: "start.day", Kind: atom.KindInt16},
		{Name: "start.hour", Kind: atom.KindInt16},
		{Name: "start.minute", Kind: atom.KindInt16},
		{Name: "start.second", Kind: atom.KindFloat64},
		{Name: "end.year", Kind: atom.KindInt16},
		{Name: "end.month", Kind: atom.KindInt16},
		{Name: "end.day", Kind: atom.KindInt16},
		{Name: "end.hour", Kind: atom.KindInt16},
		{Name: "end.minute", Kind: atom.KindInt16},
		{Name: "end.second", Kind: atom.KindFloat64},
	}
}

// gridVectors is the per-station summary and per-cell velocity block shared
// by GRID and MAP records. The cell vectors are absent when no station
// contributed measurements in the window.
func gridVectors() []FieldDef {
	return []FieldDef{
		{Name: "stid", Kind: atom.KindInt16},
		{Name: "channel", Kind: atom.KindInt16},
		{Name: "nvec", Kind: atom.KindInt16},
		{Name: "freq", Kind: atom.KindFloat32},
		{Name: "major.revision", Kind: atom.KindInt16},
		{Name: "minor.revision", Kind: atom.KindInt16},
		{Name: "program.id", Kind: atom.KindInt16},
		{Name: "noise.mean", Kind: atom.KindFloat32},
		{Name: "noise.sd", Kind: atom.KindFloat32},
		{Name: "gsct", Kind: atom.KindInt16},
		{Name: "v.min", Kind: atom.KindFloat32},
		{Name: "v.max", Kind: atom.KindFloat32},
		{Name: "p.min", Kind: atom.KindFloat32},
		{Name: "p.max", Kind: atom.KindFloat32},
		{Name: "w.min", Kind: atom.KindFloat32},
		{Name: "w.max", Kind: atom.KindFloat32},
		{Name: "ve.min", Kind: atom.KindFloat32},
		{Name: "ve.max", Kind: atom.KindFloat32},
		{Name: "vector.mlat", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.mlon", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.kvect", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.stid", Kind: atom.KindInt16, Optional: true},
		{Name: "vector.channel", Kind: atom.KindInt16, Optional: true},
		{Name: "vector.index", Kind: atom.KindInt32, Optional: true},
		{Name: "vector.vel.median", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.vel.sd", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.pwr.median", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.pwr.sd", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.wdt.median", Kind: atom.KindFloat32, Optional: true},
		{Name: "vector.wdt.sd", Kind: atom.KindFloat32, Optional: true},
	}
}

// GRID describes gridded velocity records combining one or more radars onto
// a magnetic-latitude grid.
var GRID = &Schema{
	Name:    "grid",
	Scalars: gridScalars(),
	Vectors: gridVectors(),
}
