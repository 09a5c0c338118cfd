package schema

import "github.com/hupe1980/godmap/atom"

// radarScalars is the operating-parameter block shared by the time-series
// products (IQDAT, RAWACF, FITACF). GRID and MAP summarize many radars and
// carry their own headers.
func radarScalars() []FieldDef {
	return []FieldDef{
		{Name: "radar.revision.major", Kind: atom.KindInt8},
		{Name: "radar.revision.minor", Kind: atom.KindInt8},
		{Name: "origin.code", Kind: atom.KindInt8},
		{Name: "origin.time", Kind: atom.KindString},
		{Name: "origin.command", Kind: atom.KindString},
		{Name: "cp", Kind: atom.KindInt16},
		{Name: "stid", Kind: atom.KindInt16},
		{Name: "time.yr", Kind: atom.KindInt16},
		{Name: "time.mo", Kind: atom.KindInt16},
		{Name: "time.dy", Kind: atom.KindInt16},
		{Name: "time.hr", Kind: atom.KindInt16},
		{Name: "time.mt", Kind: atom.KindInt16},
		{Name: "time.sc", Kind: atom.KindInt16},
		{Name: "time.us", Kind: atom.KindInt32},
		{Name: "txpow", Kind: atom.KindInt16},
		{Name: "nave", Kind: atom.KindInt16},
		{Name: "atten", Kind: atom.KindInt16},
		{Name: "lagfr", Kind: atom.KindInt16},
		{Name: "smsep", Kind: atom.KindInt16},
		{Name: "ercod", Kind: atom.KindInt16},
		{Name: "stat.agc", Kind: atom.KindInt16},
		{Name: "stat.lopwr", Kind: atom.KindInt16},
		{Name: "noise.search", Kind: atom.KindFloat32},
		{Name: "noise.mean", Kind: atom.KindFloat32},
		{Name: "channel", Kind: atom.KindInt16},
		{Name: "bmnum", Kind: atom.KindInt16},
		{Name: "bmazm", Kind: atom.KindFloat32},
		{Name: "scan", Kind: atom.KindInt16},
		{Name: "offset", Kind: atom.KindInt16},
		{Name: "rxrise", Kind: atom.KindInt16},
		{Name: "intt.sc", Kind: atom.KindInt16},
		{Name: "intt.us", Kind: atom.KindInt32},
		{Name: "txpl", Kind: atom.KindInt16},
		{Name: "mpinc", Kind: atom.KindInt16},
		{Name: "mppul", Kind: atom.KindInt16},
		{Name: "mplgs", Kind: atom.KindInt16},
		{Name: "nrang", Kind: atom.KindInt16},
		{Name: "frang", Kind: atom.KindInt16},
		{Name: "rsep", Kind: atom.KindInt16},
		{Name: "xcf", Kind: atom.KindInt16},
		{Name: "tfreq", Kind: atom.KindInt16},
		{Name: "mxpwr", Kind: atom.KindInt32},
		{Name: "lvmax", Kind: atom.KindInt32},
	}
}
