package schema

import "github.com/hupe1980/godmap/atom"

// IQDAT describes raw in-phase/quadrature voltage sample records.
var IQDAT = &Schema{
	Name: "iqdat",
	Scalars: append(radarScalars(),
		FieldDef{Name: "iqdata.revision.major", Kind: atom.KindInt32},
		FieldDef{Name: "iqdata.revision.minor", Kind: atom.KindInt32},
		FieldDef{Name: "combf", Kind: atom.KindString},
		FieldDef{Name: "seqnum", Kind: atom.KindInt32},
		FieldDef{Name: "chnnum", Kind: atom.KindInt32},
		FieldDef{Name: "smpnum", Kind: atom.KindInt32},
		FieldDef{Name: "skpnum", Kind: atom.KindInt32},
	),
	Vectors: []FieldDef{
		{Name: "ptab", Kind: atom.KindInt16},
		{Name: "ltab", Kind: atom.KindInt16},
		{Name: "tsc", Kind: atom.KindInt32},
		{Name: "tus", Kind: atom.KindInt32},
		{Name: "tatten", Kind: atom.KindInt16},
		{Name: "tnoise", Kind: atom.KindFloat32},
		{Name: "toff", Kind: atom.KindInt32},
		{Name: "tsze", Kind: atom.KindInt32},
		{Name: "tbadtr", Kind: atom.KindInt32, Optional: true},
		{Name: "badtr", Kind: atom.KindInt32, Optional: true},
		{Name: "data", Kind: atom.KindInt16},
	},
}
