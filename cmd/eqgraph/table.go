package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// table is a tabwriter that keeps the first write error.
type table struct {
	tw  *tabwriter.Writer
	err error
}

func newTable(w io.Writer) *table {
	return &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t *table) row(line string) {
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintln(t.tw, line); err != nil {
		t.err = fmt.Errorf("failed to write output row: %w", err)
	}
}

func (t *table) flush() error {
	if t.err != nil {
		return t.err
	}
	if err := t.tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
