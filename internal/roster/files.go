package roster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// SheetName is the workbook sheet holding per-season team rows.
const SheetName = "TeamSeason"

// columns maps recognised sheet headers, lower-cased, to record fields.
var columns = map[string]string{
	"team":       "team",
	"name":       "team",
	"season":     "season",
	"year":       "season",
	"conference": "conference",
	"conf":       "conference",
	"overall":    "overall",
	"ovr":        "overall",
	"prestige":   "prestige",
}

// yamlFile is the on-disk YAML layout.
type yamlFile struct {
	Teams []RawRecord `yaml:"teams"`
}

// LoadFile reads a roster file, choosing the format from its extension.
func LoadFile(path string, logger *slog.Logger) (*Memory, []Warning, error) {
	var (
		raw []RawRecord
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		raw, err = ReadWorkbook(path)
	case ".yaml", ".yml":
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening roster %s: %w", path, err)
		}
		defer f.Close()
		raw, err = ReadYAML(f)
	default:
		return nil, nil, fmt.Errorf("unsupported roster format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, nil, err
	}

	records, warnings := Normalize(raw, logger)
	return NewMemory(records), warnings, nil
}

// ReadYAML decodes a document of the form `teams: [{team, season, ...}]`.
func ReadYAML(r io.Reader) ([]RawRecord, error) {
	var doc yamlFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding roster yaml: %w", err)
	}
	return doc.Teams, nil
}

// ReadWorkbook reads the TeamSeason sheet. The first row is the header;
// columns are located by name so extra columns are ignored.
func ReadWorkbook(path string) ([]RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", SheetName, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := make(map[string]int)
	for i, h := range rows[0] {
		if key, ok := columns[strings.ToLower(strings.TrimSpace(h))]; ok {
			index[key] = i
		}
	}
	for _, required := range []string{"team", "season"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("sheet %s: missing %q column", SheetName, required)
		}
	}

	cell := func(row []string, key string) string {
		i, ok := index[key]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	raw := make([]RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw = append(raw, RawRecord{
			Team:       cell(row, "team"),
			Season:     cell(row, "season"),
			Conference: cell(row, "conference"),
			Overall:    cell(row, "overall"),
			Prestige:   cell(row, "prestige"),
		})
	}
	return raw, nil
}
