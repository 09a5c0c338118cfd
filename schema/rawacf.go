package schema

import "github.com/hupe1980/godmap/atom"

// RAWACF describes raw auto-correlation function records.
var RAWACF = &Schema{
	Name: "rawacf",
	Scalars: append(radarScalars(),
		FieldDef{Name: "rawacf.revision.major", Kind: atom.KindInt32},
		FieldDef{Name: "rawacf.revision.minor", Kind: atom.KindInt32},
		FieldDef{Name: "combf", Kind: atom.KindString},
		FieldDef{Name: "thr", Kind: atom.KindFloat32},
	),
	Vectors: []FieldDef{
		{Name: "ptab", Kind: atom.KindInt16},
		{Name: "ltab", Kind: atom.KindInt16},
		{Name: "pwr0", Kind: atom.KindFloat32},
		{Name: "slist", Kind: atom.KindInt16},
		{Name: "acfd", Kind: atom.KindFloat32},
		// xcfd is present only when the record was taken with
		// interferometer data (xcf scalar non-zero).
		{Name: "xcfd", Kind: atom.KindFloat32, Optional: true},
	},
}
