// Copyright © 2018 One Concern

// Package format renders classified records as column-formatted output.
//
// Each record of a visible column is rendered on its own line, offset by one
// delimiter for every visible column which precedes its own. Records of
// suppressed columns are not rendered.
package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/linecomm/pkg/comm"
)

const (
	// Text renders records as delimiter-offset columns
	Text Format = "text"
	// JSONLines renders each record as a JSON object
	JSONLines Format = "jsonl"
)

// Format of the output
type Format string

// ParseFormat from its name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSONLines:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: expected one of text, jsonl", s)
	}
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonRecord struct {
	Column comm.Column `json:"column"`
	Kind   string      `json:"kind"`
	Text   string      `json:"text"`
}

type jsonTotals struct {
	Total struct {
		OnlyInFirst  uint64 `json:"only-first"`
		OnlyInSecond uint64 `json:"only-second"`
		InBoth       uint64 `json:"both"`
		All          uint64 `json:"all"`
	} `json:"total"`
}

// Formatter writes records to some output, one record per line.
//
// Output is buffered: Flush must be called once done.
type Formatter struct {
	w          *bufio.Writer
	visibility Visibility
	delimiter  string
	terminator byte
	format     Format
	palette    palette
}

// New formatter writing to w
func New(w io.Writer, opts ...Option) *Formatter {
	f := &Formatter{
		w:          bufio.NewWriter(w),
		visibility: AllVisible(),
		delimiter:  DefaultDelimiter,
		terminator: '\n',
		format:     Text,
	}
	for _, apply := range opts {
		apply(f)
	}
	return f
}

// Render a record, without its terminator. It returns false when the column of the
// record is suppressed.
func (f *Formatter) Render(rec comm.Record) (string, bool, error) {
	if !f.visibility.Visible(rec.Column) {
		return "", false, nil
	}

	if f.format == JSONLines {
		b, err := json.Marshal(jsonRecord{Column: rec.Column, Kind: rec.Column.String(), Text: rec.Text})
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	}

	return strings.Repeat(f.delimiter, f.visibility.Prefix(rec.Column)) + f.colorize(rec.Column, rec.Text), true, nil
}

// Write a record, if visible
func (f *Formatter) Write(rec comm.Record) error {
	line, ok, err := f.Render(rec)
	if err != nil || !ok {
		return err
	}
	return f.writeLine(line)
}

// WriteTotals writes a summary line with the count of records in each column,
// including suppressed ones.
func (f *Formatter) WriteTotals(t comm.Totals) error {
	if f.format == JSONLines {
		var jt jsonTotals
		jt.Total.OnlyInFirst = t.OnlyInFirst
		jt.Total.OnlyInSecond = t.OnlyInSecond
		jt.Total.InBoth = t.InBoth
		jt.Total.All = t.Sum()
		b, err := json.Marshal(jt)
		if err != nil {
			return err
		}
		return f.writeLine(string(b))
	}

	parts := make([]string, 0, len(comm.Columns)+1)
	for _, col := range comm.Columns {
		parts = append(parts, strconv.FormatUint(t.Get(col), 10))
	}
	parts = append(parts, "total")
	return f.writeLine(strings.Join(parts, f.delimiter))
}

func (f *Formatter) writeLine(line string) error {
	if _, err := f.w.WriteString(line); err != nil {
		return err
	}
	return f.w.WriteByte(f.terminator)
}

// Flush buffered output
func (f *Formatter) Flush() error {
	return f.w.Flush()
}
