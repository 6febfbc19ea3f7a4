package renderer

import (
	"github.com/etnz/exledger"
)

// Interest is a struct to represent the interest received in a ledger.
// Numbers are handled using the exact decimal types (Money, Quantity)
// so that they already contain their renderers.
type Interest struct {
	// Name of the ledger, usually its file name.
	Name string
	// Label of the interest transactions.
	Label string
	// Assets in order of first occurrence in the ledger.
	Assets []InterestAsset
	// Total value of the interest received, in fiat.
	Total exledger.Money
}

// InterestAsset is the interest received in one asset.
type InterestAsset struct {
	Asset  string
	Amount exledger.Quantity
	Value  exledger.Money
}

// NewInterest builds the report of 's', the interest labelled 'label' in ledger 'name'.
func NewInterest(name, label string, s *exledger.InterestSummary) *Interest {
	r := &Interest{
		Name:  name,
		Label: label,
		Total: s.Total(),
	}
	for _, a := range s.Assets() {
		r.Assets = append(r.Assets, InterestAsset{
			Asset:  a.Asset,
			Amount: a.Amount,
			Value:  a.Value,
		})
	}
	return r
}
