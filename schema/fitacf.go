package schema

import "github.com/hupe1980/godmap/atom"

// FITACF describes fitted parameter records. The per-range vectors are
// present only for ranges above threshold, so all of them are optional; an
// empty scan writes an empty slist placeholder instead.
var FITACF = &Schema{
	Name: "fitacf",
	Scalars: append(radarScalars(),
		FieldDef{Name: "fitacf.revision.major", Kind: atom.KindInt32},
		FieldDef{Name: "fitacf.revision.minor", Kind: atom.KindInt32},
		FieldDef{Name: "combf", Kind: atom.KindString},
		FieldDef{Name: "mplgexs", Kind: atom.KindInt16, Optional: true},
		FieldDef{Name: "ifmode", Kind: atom.KindInt16, Optional: true},
		FieldDef{Name: "noise.sky", Kind: atom.KindFloat32},
		FieldDef{Name: "noise.lag0", Kind: atom.KindFloat32},
		FieldDef{Name: "noise.vel", Kind: atom.KindFloat32},
		FieldDef{Name: "tdiff", Kind: atom.KindFloat32, Optional: true},
	),
	Vectors: []FieldDef{
		{Name: "ptab", Kind: atom.KindInt16},
		{Name: "ltab", Kind: atom.KindInt16},
		{Name: "pwr0", Kind: atom.KindFloat32},
		{Name: "slist", Kind: atom.KindInt16, Optional: true},
		{Name: "nlag", Kind: atom.KindInt16, Optional: true},
		{Name: "qflg", Kind: atom.KindInt8, Optional: true},
		{Name: "gflg", Kind: atom.KindInt8, Optional: true},
		{Name: "p_l", Kind: atom.KindFloat32, Optional: true},
		{Name: "p_l_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "p_s", Kind: atom.KindFloat32, Optional: true},
		{Name: "p_s_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "v", Kind: atom.KindFloat32, Optional: true},
		{Name: "v_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "w_l", Kind: atom.KindFloat32, Optional: true},
		{Name: "w_l_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "w_s", Kind: atom.KindFloat32, Optional: true},
		{Name: "w_s_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "sd_l", Kind: atom.KindFloat32, Optional: true},
		{Name: "sd_s", Kind: atom.KindFloat32, Optional: true},
		{Name: "sd_phi", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_qflg", Kind: atom.KindInt8, Optional: true},
		{Name: "x_gflg", Kind: atom.KindInt8, Optional: true},
		{Name: "x_p_l", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_p_l_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_p_s", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_p_s_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_v", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_v_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_w_l", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_w_l_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_w_s", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_w_s_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_sd_l", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_sd_s", Kind: atom.KindFloat32, Optional: true},
		{Name: "x_sd_phi", Kind: atom.KindFloat32, Optional: true},
		{Name: "phi0", Kind: atom.KindFloat32, Optional: true},
		{Name: "phi0_e", Kind: atom.KindFloat32, Optional: true},
		{Name: "elv", Kind: atom.KindFloat32, Optional: true},
		{Name: "elv_low", Kind: atom.KindFloat32, Optional: true},
		{Name: "elv_high", Kind: atom.KindFloat32, Optional: true},
	},
}
