package history

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultBasePrice anchors synthetic series for instruments we don't know
const DefaultBasePrice = 72.00

// ErrUnknownInstrument is returned by Lookup for names outside the catalogue
var ErrUnknownInstrument = errors.New("unknown instrument")

// Instrument maps a dashboard name to its upstream series
type Instrument struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	SeriesKey string  `json:"series"`
	BasePrice float64 `json:"base_price"`
}

var instruments = map[string]Instrument{
	"brent": {Key: "brent", Name: "Brent", SeriesKey: "RBRTE", BasePrice: 74.25},
	"wti":   {Key: "wti", Name: "WTI", SeriesKey: "RWTC", BasePrice: 70.80},
}

// Lookup finds an instrument by case-insensitive name
func Lookup(name string) (Instrument, error) {
	inst, ok := instruments[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Instrument{}, ErrUnknownInstrument
	}
	return inst, nil
}

// ListInstruments returns the known instruments ordered by key
func ListInstruments() []Instrument {
	list := make([]Instrument, 0, len(instruments))
	for _, inst := range instruments {
		list = append(list, inst)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list
}

// unknownInstrument builds a catalogue-less instrument for synthetic output
func unknownInstrument(name string) Instrument {
	name = strings.TrimSpace(name)
	display := name
	if first, size := utf8.DecodeRuneInString(name); size > 0 {
		display = string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
	}
	return Instrument{
		Key:       strings.ToLower(name),
		Name:      display,
		BasePrice: DefaultBasePrice,
	}
}
