package renderer

import (
	"github.com/etnz/exledger"
)

// Partition is a struct to represent the split of a ledger by transaction type.
type Partition struct {
	// Name of the ledger, usually its file name.
	Name string
	// Exchange is the exchange identifier the ledger was read with.
	Exchange string
	// Groups in order of first occurrence in the ledger.
	Groups []PartitionGroup
	// Total number of transactions processed.
	Total int
}

// PartitionGroup is a line of the partition report.
type PartitionGroup struct {
	Type     string
	Rows     int
	Internal bool   // an internal transfer between wallets of the exchange
	File     string // name of the file holding the group
}

// NewPartition builds the report of 'p', a partition of ledger 'name' read with 'schema'.
func NewPartition(name string, schema *exledger.ExchangeSchema, p *exledger.PartitionResult) *Partition {
	r := &Partition{
		Name:     name,
		Exchange: schema.Name(),
		Total:    p.Total(),
	}
	for g := range p.Groups() {
		r.Groups = append(r.Groups, PartitionGroup{
			Type:     g.Type,
			Rows:     g.Len(),
			Internal: schema.IsInternalTransfer(g.Type),
			File:     exledger.FileName(schema.Prefix(), g.Type),
		})
	}
	return r
}
