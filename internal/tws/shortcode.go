package tws

import "fmt"

// Table selects a short-code table.
type Table int

const (
	// WTS maps whatToShow values ("TRADES", "BID_ASK", ...) to 1-3 letter codes.
	WTS Table = iota
	// BarSize maps bar sizes ("1 min", "1 day", ...) to fixed-width codes.
	BarSize
)

func (t Table) String() string {
	switch t {
	case WTS:
		return "wts"
	case BarSize:
		return "bar_size"
	default:
		return fmt.Sprintf("table(%d)", int(t))
	}
}

// Pair is a long-form request parameter and its short code.
type Pair struct {
	Long  string
	Short string
}

type shortTable struct {
	pairs   []Pair
	unknown string
}

var shortTables = [...]shortTable{
	WTS: {
		pairs: []Pair{
			{"TRADES", "T"},
			{"MIDPOINT", "M"},
			{"BID", "B"},
			{"ASK", "A"},
			{"BID_ASK", "BA"},
			{"HISTORICAL_VOLATILITY", "HV"},
			{"OPTION_IMPLIED_VOLATILITY", "OIV"},
			{"OPTION_VOLUME", "OV"},
		},
		unknown: "NNN",
	},
	BarSize: {
		pairs: []Pair{
			{"1 secs", "s01"},
			{"5 secs", "s05"},
			{"15 secs", "s15"},
			{"30 secs", "s30"},
			{"1 min", "m01"},
			{"2 mins", "m02"},
			{"3 mins", "m03"},
			{"5 mins", "m05"},
			{"15 mins", "m15"},
			{"30 mins", "m30"},
			{"1 hour", "h01"},
			{"4 hour", "h04"},
			{"1 day", "eod"},
			{"1 week", "w01"},
			{"1 month", "x01"},
			{"3 months", "x03"},
			{"1 year", "y01"},
		},
		unknown: "00N",
	},
}

func lookupTable(t Table) shortTable {
	if t < 0 || int(t) >= len(shortTables) {
		panic(fmt.Sprintf("tws: unknown short-code %s", t))
	}
	return shortTables[t]
}

// ShortCode returns the short code for long in table t: the first exact match wins,
// and unmatched values map to the table's unknown code.
func ShortCode(t Table, long string) string {
	tbl := lookupTable(t)
	for _, p := range tbl.pairs {
		if p.Long == long {
			return p.Short
		}
	}
	return tbl.unknown
}

// LongForm is the reverse of ShortCode.
func LongForm(t Table, short string) (string, bool) {
	for _, p := range lookupTable(t).pairs {
		if p.Short == short {
			return p.Long, true
		}
	}
	return "", false
}

// UnknownCode returns the code ShortCode yields for unmatched values.
func UnknownCode(t Table) string {
	return lookupTable(t).unknown
}

// Pairs returns a copy of table t in lookup order.
func Pairs(t Table) []Pair {
	pairs := lookupTable(t).pairs
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}

// ShortWTS returns the short code for a whatToShow value ("MIDPOINT" -> "M").
func ShortWTS(wts string) string {
	return ShortCode(WTS, wts)
}

// ShortBarSize returns the short code for a bar size ("1 day" -> "eod").
func ShortBarSize(barSize string) string {
	return ShortCode(BarSize, barSize)
}
