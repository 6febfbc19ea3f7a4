package exledger

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

// Group is the set of rows sharing one transaction type label.
type Group struct {
	Type string
	Rows []Row
}

// Len returns the number of rows in the group.
func (g Group) Len() int { return len(g.Rows) }

// PartitionResult splits a ledger into disjoint groups, one per transaction type.
//
// Groups are kept in order of first occurrence of their label in the ledger.
type PartitionResult struct {
	groups []Group
	index  map[string]int // group position by label
	total  int
}

// Total returns the number of rows assigned to a group. It always equals the ledger length.
func (p *PartitionResult) Total() int { return p.total }

// Len returns the number of groups.
func (p *PartitionResult) Len() int { return len(p.groups) }

// Types returns the group labels in first occurrence order.
func (p *PartitionResult) Types() []string {
	types := make([]string, 0, len(p.groups))
	for _, g := range p.groups {
		types = append(types, g.Type)
	}
	return types
}

// Group returns the rows labelled 'label', and false if there are none.
func (p *PartitionResult) Group(label string) (Group, bool) {
	i, ok := p.index[label]
	if !ok {
		return Group{}, false
	}
	return p.groups[i], true
}

// Groups iterates over the groups in first occurrence order.
func (p *PartitionResult) Groups() iter.Seq[Group] {
	return func(yield func(Group) bool) {
		for _, g := range p.groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Partition groups the rows of l by the value of typeColumn.
//
// Every row ends up in exactly one group, rows with the same label are
// merged even if they are not contiguous. An empty ledger yields no group.
// A row without typeColumn returns a *SchemaViolationError.
func Partition(l *Ledger, typeColumn string) (*PartitionResult, error) {
	p := &PartitionResult{index: make(map[string]int)}
	for _, row := range l.rows {
		label, ok := row.Field(typeColumn)
		if !ok {
			return nil, &SchemaViolationError{Row: row.Index(), Column: typeColumn}
		}
		i, exists := p.index[label]
		if !exists {
			i = len(p.groups)
			p.index[label] = i
			p.groups = append(p.groups, Group{Type: label})
		}
		p.groups[i].Rows = append(p.groups[i].Rows, row)
	}

	for _, g := range p.groups {
		p.total += g.Len()
	}
	if p.total != l.Len() {
		return nil, fmt.Errorf("%w: %d rows assigned out of %d", ErrIncompletePartition, p.total, l.Len())
	}
	return p, nil
}

// FileName returns the name of the file holding the rows labelled 'label'.
//
// It is "<prefix>_<label>.csv" where spaces, and path separators, in label are replaced by underscores.
func FileName(prefix, label string) string {
	label = strings.ReplaceAll(label, " ", "_")
	label = strings.ReplaceAll(label, "/", "_")
	label = strings.ReplaceAll(label, string(filepath.Separator), "_")
	return fmt.Sprintf("%s_%s.csv", prefix, label)
}
