// Package importer converts source spreadsheets of facility listings into
// extraction records that the site-data generator can consume.
package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/careatlas/directory-cli/internal/fetcher"
	"github.com/careatlas/directory-cli/internal/sitegen"
)

// Column headers recognized in the source sheet, case-insensitive.
const (
	colName         = "name"
	colCategory     = "category"
	colCity         = "city"
	colAddress      = "address"
	colPhone        = "phone"
	colWebsite      = "website"
	colRating       = "rating"
	colReviews      = "reviews"
	colLat          = "lat"
	colLng          = "lng"
	colSpecialities = "specialities"
	colFacilityType = "facility_type"
	colPremium      = "is_premium"
)

// ImportFiles reads every given XLSX file concurrently and merges the rows
// into a single record map keyed by a synthetic row ID. Duplicate keys
// across files are impossible because the key embeds the file index.
func ImportFiles(ctx context.Context, paths []string) (map[string]sitegen.SourceRecord, error) {
	var mu sync.Mutex
	merged := map[string]sitegen.SourceRecord{}

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := ImportFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			for j, rec := range records {
				merged[fmt.Sprintf("xlsx-%d-%04d", i, j)] = rec
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}

// ImportFile reads one XLSX file. The first row must be a header naming the
// recognized columns; unknown columns are ignored, rows without a name or
// city are skipped.
func ImportFile(path string) ([]sitegen.SourceRecord, error) {
	rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, eris.Errorf("importer: %s has no rows", path)
	}

	cols := headerIndex(rows[0])
	if _, ok := cols[colName]; !ok {
		return nil, eris.Errorf("importer: %s missing %q header column", path, colName)
	}

	var records []sitegen.SourceRecord
	var skipped int
	for _, row := range rows[1:] {
		rec := parseRow(row, cols)
		if rec.Name == "" || rec.City == "" {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	zap.L().Info("spreadsheet imported",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)
	return records, nil
}

func headerIndex(header []string) map[string]int {
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func parseRow(row []string, cols map[string]int) sitegen.SourceRecord {
	get := func(col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := sitegen.SourceRecord{
		Name:             get(colName),
		Category:         get(colCategory),
		City:             get(colCity),
		FormattedAddress: get(colAddress),
		Phone:            get(colPhone),
		Website:          get(colWebsite),
		FacilityType:     get(colFacilityType),
		Specialities:     splitList(get(colSpecialities)),
	}

	if v, err := strconv.ParseFloat(get(colRating), 64); err == nil {
		rec.Rating = &v
	}
	if v, err := strconv.Atoi(get(colReviews)); err == nil {
		rec.Reviews = v
	}
	if v, err := strconv.ParseFloat(get(colLat), 64); err == nil {
		lat := v
		rec.Lat = &lat
	}
	if v, err := strconv.ParseFloat(get(colLng), 64); err == nil {
		lng := v
		rec.Lng = &lng
	}
	if v, err := strconv.ParseBool(get(colPremium)); err == nil {
		rec.IsPremium = v
	}

	return rec
}

// splitList parses a semicolon-separated cell into trimmed, non-empty tags.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
