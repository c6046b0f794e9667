package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// PriceSpec is the per-crop base price (per kg) and volatility coefficient
// driving the random walk. Higher volatility means more fluctuation
// (vegetables > grains).
type PriceSpec struct {
	Base       float64
	Volatility float64
}

// DefaultSpec applies to crops not listed in the table.
var DefaultSpec = PriceSpec{Base: 50, Volatility: 0.10}

func defaultPriceTable() map[string]PriceSpec {
	return map[string]PriceSpec{
		"Wheat":          {32, 0.05},
		"Rice (Basmati)": {85, 0.04},
		"Rice (Common)":  {45, 0.03},
		"Tomato":         {40, 0.25},
		"Onion":          {35, 0.20},
		"Potato":         {25, 0.15},
		"Apple":          {120, 0.10},
		"Banana":         {40, 0.08},
		"Cotton":         {65, 0.06},
		"Sugarcane":      {4, 0.02},
		"Green Chilli":   {60, 0.30},
		"Ginger":         {80, 0.15},
		"Turmeric":       {110, 0.05},
	}
}

// LoadPriceTable merges per-crop overrides from a CSV or XLSX file into the
// built-in table. Expected columns: Crop, BasePrice, Volatility.
func LoadPriceTable(path string) (map[string]PriceSpec, error) {
	table := defaultPriceTable()
	if path == "" {
		return table, nil
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("price table %s: unsupported format", path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("price table is empty")
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\ufeff") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	cCrop, okC := hmap["crop"]
	cBase, okB := hmap["baseprice"]
	cVol, okV := hmap["volatility"]
	if !okC || !okB || !okV {
		return nil, fmt.Errorf("price table missing required columns, found headers: %v", rows[0])
	}

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	for _, rec := range rows[1:] {
		name := get(rec, cCrop)
		if name == "" {
			continue
		}
		base, err1 := strconv.ParseFloat(get(rec, cBase), 64)
		vol, err2 := strconv.ParseFloat(get(rec, cVol), 64)
		if err1 != nil || err2 != nil || base <= 0 {
			continue // skip invalid rows
		}
		table[name] = PriceSpec{Base: base, Volatility: vol}
	}
	return table, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}
	return f.GetRows(sheets[0])
}
