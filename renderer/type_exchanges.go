package renderer

import (
	"strings"

	"github.com/etnz/exledger"
)

// Exchange is a line of the exchanges report.
type Exchange struct {
	Name       string
	Prefix     string
	TypeColumn string
	Currencies string // currency columns, comma separated
	Interest   string // interest label, empty if not declared
}

// NewExchanges builds the report of every exchange in 'r'.
func NewExchanges(r *exledger.Registry) []Exchange {
	var exchanges []Exchange
	for _, s := range r.Schemas() {
		e := Exchange{
			Name:       s.Name(),
			Prefix:     s.Prefix(),
			TypeColumn: s.TypeColumn(),
			Currencies: strings.Join(s.CurrencyColumns(), ", "),
		}
		if q, ok := s.Interest(); ok {
			e.Interest = q.InterestLabel
		}
		exchanges = append(exchanges, e)
	}
	return exchanges
}

// RenderExchanges renders the exchanges to a markdown string.
func RenderExchanges(exchanges []Exchange) string {
	return renderTemplate("exchanges", "exchanges.md", nil, exchanges)
}
