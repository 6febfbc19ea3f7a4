package exledger

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed schemas.yaml
var defaultSchemas []byte

// DefaultRegistry holds the exchanges supported out of the box.
// As a CLI library it is ok to extend it once at startup with Load.
var DefaultRegistry = mustDefaultRegistry()

// Resolve returns the schema registered in the DefaultRegistry under name.
func Resolve(name string) (*ExchangeSchema, error) { return DefaultRegistry.Resolve(name) }

// ExchangeSchema describes the CSV layout of one exchange export.
//
// It is built once and never modified: accessors return copies.
type ExchangeSchema struct {
	name              string
	prefix            string
	columns           []string
	typeColumn        string
	currencyColumns   []string
	internalTransfers []string
	normalize         []string
	interest          *InterestQuery
}

// Name returns the exchange identifier.
func (s *ExchangeSchema) Name() string { return s.name }

// Prefix returns the prefix of the files written for this exchange.
func (s *ExchangeSchema) Prefix() string { return s.prefix }

// Columns returns the ordered list of expected columns.
func (s *ExchangeSchema) Columns() []string { return slices.Clone(s.columns) }

// TypeColumn returns the name of the column holding the transaction type label.
func (s *ExchangeSchema) TypeColumn() string { return s.typeColumn }

// CurrencyColumns returns the columns holding asset identifiers.
func (s *ExchangeSchema) CurrencyColumns() []string { return slices.Clone(s.currencyColumns) }

// NormalizedColumns returns the columns converted from display strings to decimals at read time.
func (s *ExchangeSchema) NormalizedColumns() []string { return slices.Clone(s.normalize) }

// IsInternalTransfer reports whether label denotes a transfer between two
// wallets of the same exchange.
func (s *ExchangeSchema) IsInternalTransfer(label string) bool {
	return slices.Contains(s.internalTransfers, label)
}

// Interest returns the default interest query for this exchange, and false if
// the exchange does not declare one.
func (s *ExchangeSchema) Interest() (InterestQuery, bool) {
	if s.interest == nil {
		return InterestQuery{}, false
	}
	return *s.interest, true
}

// HasColumn reports whether column is one the expected columns.
func (s *ExchangeSchema) HasColumn(column string) bool { return slices.Contains(s.columns, column) }

// SchemaDefinition is the declarative form of an ExchangeSchema, as found in schema files.
type SchemaDefinition struct {
	Name              string              `yaml:"name"`
	Prefix            string              `yaml:"prefix,omitempty"`
	Columns           []string            `yaml:"columns"`
	Type              string              `yaml:"type"`
	Currency          []string            `yaml:"currency"`
	InternalTransfers []string            `yaml:"internal_transfers,omitempty"`
	Normalize         []string            `yaml:"normalize,omitempty"`
	Interest          *InterestDefinition `yaml:"interest,omitempty"`
}

// InterestDefinition declares where interest is found in a ledger.
//
// Type defaults to the schema type column.
type InterestDefinition struct {
	Type     string `yaml:"type,omitempty"`
	Label    string `yaml:"label"`
	Asset    string `yaml:"asset"`
	Amount   string `yaml:"amount"`
	Fiat     string `yaml:"fiat"`
	Currency string `yaml:"currency,omitempty"`
}

// Build validates the definition and returns the corresponding schema.
//
// The type column, the currency columns and every other referenced column
// must belong to the expected columns.
func (d SchemaDefinition) Build() (*ExchangeSchema, error) {
	if d.Name == "" {
		return nil, errors.New("schema without a name")
	}
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("schema %q: no columns", d.Name)
	}
	for i, col := range d.Columns {
		if slices.Contains(d.Columns[:i], col) {
			return nil, fmt.Errorf("schema %q: duplicate column %q", d.Name, col)
		}
	}
	if d.Type == "" {
		return nil, fmt.Errorf("schema %q: no type column", d.Name)
	}
	if len(d.Currency) == 0 {
		return nil, fmt.Errorf("schema %q: no currency column", d.Name)
	}

	s := &ExchangeSchema{
		name:              d.Name,
		prefix:            d.Prefix,
		columns:           slices.Clone(d.Columns),
		typeColumn:        d.Type,
		currencyColumns:   slices.Clone(d.Currency),
		internalTransfers: slices.Clone(d.InternalTransfers),
		normalize:         slices.Clone(d.Normalize),
	}
	if s.prefix == "" {
		s.prefix = s.name
	}

	var errs []error
	check := func(role, col string) {
		if !s.HasColumn(col) {
			errs = append(errs, fmt.Errorf("%s column %q is not an expected column", role, col))
		}
	}
	check("type", s.typeColumn)
	for _, col := range s.currencyColumns {
		check("currency", col)
	}
	for _, col := range s.normalize {
		check("normalized", col)
	}

	if i := d.Interest; i != nil {
		q := InterestQuery{
			TypeColumn:        i.Type,
			InterestLabel:     i.Label,
			AssetColumn:       i.Asset,
			AssetAmountColumn: i.Amount,
			FiatValueColumn:   i.Fiat,
			FiatCurrency:      i.Currency,
		}
		if q.TypeColumn == "" {
			q.TypeColumn = s.typeColumn
		}
		if q.InterestLabel == "" {
			errs = append(errs, errors.New("interest label is empty"))
		}
		check("interest type", q.TypeColumn)
		check("interest asset", q.AssetColumn)
		check("interest amount", q.AssetAmountColumn)
		check("interest fiat", q.FiatValueColumn)
		s.interest = &q
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid schema %q: %w", d.Name, err)
	}
	return s, nil
}

// Registry maps exchange identifiers to their schema.
//
// A Registry is append-only.
type Registry struct {
	schemas map[string]*ExchangeSchema
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*ExchangeSchema)}
}

// Register adds a schema. Registering an identifier twice is an error.
func (r *Registry) Register(s *ExchangeSchema) error {
	if _, exists := r.schemas[s.name]; exists {
		return fmt.Errorf("exchange %q is already registered", s.name)
	}
	r.schemas[s.name] = s
	return nil
}

// Load decodes a YAML list of SchemaDefinition from 'in' and registers them all.
//
// Nothing is registered if any definition is invalid.
func (r *Registry) Load(in io.Reader) error {
	var defs []SchemaDefinition
	if err := yaml.NewDecoder(in).Decode(&defs); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("cannot decode schemas: %w", err)
	}

	schemas := make([]*ExchangeSchema, 0, len(defs))
	for _, def := range defs {
		s, err := def.Build()
		if err != nil {
			return err
		}
		if _, exists := r.schemas[s.name]; exists || slices.ContainsFunc(schemas, func(o *ExchangeSchema) bool { return o.name == s.name }) {
			return fmt.Errorf("exchange %q is already registered", s.name)
		}
		schemas = append(schemas, s)
	}
	for _, s := range schemas {
		r.schemas[s.name] = s
	}
	return nil
}

// Resolve returns the schema registered under name.
//
// It returns an *UnknownExchangeError listing every known identifier if name is not registered.
func (r *Registry) Resolve(name string) (*ExchangeSchema, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, &UnknownExchangeError{Name: name, Known: r.Names()}
	}
	return s, nil
}

// Names returns the registered identifiers in alphabetical order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.schemas))
}

// Schemas returns the registered schemas sorted by identifier.
func (r *Registry) Schemas() []*ExchangeSchema {
	names := r.Names()
	schemas := make([]*ExchangeSchema, 0, len(names))
	for _, name := range names {
		schemas = append(schemas, r.schemas[name])
	}
	return schemas
}

func mustDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.Load(bytes.NewReader(defaultSchemas)); err != nil {
		panic(fmt.Sprintf("invalid embedded schemas: %v", err))
	}
	return r
}

// String returns a one line description of the schema.
func (s *ExchangeSchema) String() string {
	return fmt.Sprintf("%s (type: %q, currencies: %s)", s.name, s.typeColumn, strings.Join(s.currencyColumns, ", "))
}
