package exledger

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// this file contains code to read ledgers from, and write partitions to, the file system.
// The overall layout is the one of the export folder:
//
//	exports/nexo_2024.csv           the ledger
//	exports/nexo_2024/Nexo_Interest.csv   one file per transaction type
//	exports/nexo_2024/Nexo_Deposit.csv

// ListLedgers returns the CSV files directly in 'dir', sorted by name.
func ListLedgers(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list ledgers in %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// OpenLedger reads the ledger in file 'filename' using 'schema'.
func OpenLedger(filename string, schema *ExchangeSchema) (*Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", filename, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f, schema)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", filename, err)
	}
	return l, nil
}

// OutputDir creates, if needed, the folder receiving the partition of ledger file 'filename'.
//
// The folder is named after the file without its extension. It is created in
// 'root', or next to the file if root is empty.
func OutputDir(filename, root string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if root == "" {
		root = filepath.Dir(filename)
	}
	dir := filepath.Join(root, base)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output folder %q: %w", dir, err)
	}
	return dir, nil
}

// SavePartition writes each group of 'p' in its own CSV file in 'dir'.
//
// Files are named with FileName(prefix, label) and written in group order.
// Empty groups are not written. It returns the paths written.
func SavePartition(dir, prefix string, header []string, p *PartitionResult) ([]string, error) {
	var written []string
	for g := range p.Groups() {
		if g.Len() == 0 {
			continue
		}
		path := filepath.Join(dir, FileName(prefix, g.Type))
		if err := saveRows(path, header, g.Rows); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func saveRows(path string, header []string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	if err := EncodeRows(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return f.Close()
}
