package schema

import "github.com/hupe1980/godmap/atom"

// MAP describes convection map records: a GRID record extended with the
// spherical-harmonic fit of the convection pattern and its boundary.
var MAP = &Schema{
	Name: "map",
	Scalars: append(gridScalars(),
		FieldDef{Name: "map.major.revision", Kind: atom.KindInt16},
		FieldDef{Name: "map.minor.revision", Kind: atom.KindInt16},
		FieldDef{Name: "source", Kind: atom.KindString, Optional: true},
		FieldDef{Name: "doping.level", Kind: atom.KindInt16},
		FieldDef{Name: "model.wt", Kind: atom.KindInt16},
		FieldDef{Name: "error.wt", Kind: atom.KindInt16},
		FieldDef{Name: "IMF.flag", Kind: atom.KindInt16},
		FieldDef{Name: "IMF.delay", Kind: atom.KindInt16},
		FieldDef{Name: "IMF.Bx", Kind: atom.KindFloat64},
		FieldDef{Name: "IMF.By", Kind: atom.KindFloat64},
		FieldDef{Name: "IMF.Bz", Kind: atom.KindFloat64},
		FieldDef{Name: "IMF.Vx", Kind: atom.KindFloat64, Optional: true},
		FieldDef{Name: "IMF.tilt", Kind: atom.KindFloat64, Optional: true},
		FieldDef{Name: "IMF.Kp", Kind: atom.KindFloat64, Optional: true},
		FieldDef{Name: "model.angle", Kind: atom.KindString},
		FieldDef{Name: "model.level", Kind: atom.KindString},
		FieldDef{Name: "model.tilt", Kind: atom.KindString, Optional: true},
		FieldDef{Name: "model.name", Kind: atom.KindString, Optional: true},
		FieldDef{Name: "hemisphere", Kind: atom.KindInt16},
		FieldDef{Name: "noigrf", Kind: atom.KindInt16, Optional: true},
		FieldDef{Name: "fit.order", Kind: atom.KindInt16},
		FieldDef{Name: "latmin", Kind: atom.KindFloat32},
		FieldDef{Name: "chi.sqr", Kind: atom.KindFloat64},
		FieldDef{Name: "chi.sqr.dat", Kind: atom.KindFloat64},
		FieldDef{Name: "rms.err", Kind: atom.KindFloat64},
		FieldDef{Name: "lon.shft", Kind: atom.KindFloat32},
		FieldDef{Name: "lat.shft", Kind: atom.KindFloat32},
		FieldDef{Name: "mlt.start", Kind: atom.KindFloat64},
		FieldDef{Name: "mlt.end", Kind: atom.KindFloat64},
		FieldDef{Name: "mlt.av", Kind: atom.KindFloat64},
		FieldDef{Name: "pot.drop", Kind: atom.KindFloat64},
		FieldDef{Name: "pot.drop.err", Kind: atom.KindFloat64},
		FieldDef{Name: "pot.max", Kind: atom.KindFloat64},
		FieldDef{Name: "pot.max.err", Kind: atom.KindFloat64},
		FieldDef{Name: "pot.min", Kind: atom.KindFloat64},
		FieldDef{Name: "pot.min.err", Kind: atom.KindFloat64},
	),
	Vectors: append(gridVectors(),
		FieldDef{Name: "N", Kind: atom.KindFloat64},
		FieldDef{Name: "N+1", Kind: atom.KindFloat64},
		FieldDef{Name: "N+2", Kind: atom.KindFloat64},
		FieldDef{Name: "N+3", Kind: atom.KindFloat64},
		FieldDef{Name: "model.mlat", Kind: atom.KindFloat32, Optional: true},
		FieldDef{Name: "model.mlon", Kind: atom.KindFloat32, Optional: true},
		FieldDef{Name: "model.kvect", Kind: atom.KindFloat32, Optional: true},
		FieldDef{Name: "model.vel.median", Kind: atom.KindFloat32, Optional: true},
		FieldDef{Name: "boundary.mlat", Kind: atom.KindFloat32, Optional: true},
		FieldDef{Name: "boundary.mlon", Kind: atom.KindFloat32, Optional: true},
	),
}
