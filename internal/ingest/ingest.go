// Package ingest parses catalog export files into records ready for a store
// refresh. Rows pointing at paid, login-walled, or dead sources are dropped
// here so the searchable set only carries usable links.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/partsdir/partsdir/internal/catalog"
	"github.com/partsdir/partsdir/internal/database"
)

// ErrIngestion is returned when an import file cannot be used at all. Row
// level problems are skipped, not fatal.
var ErrIngestion = errors.New("ingestion failed")

// RequiredColumns must all be present in the CSV header.
var RequiredColumns = []string{"group", "models", "type", "description", "url"}

// optional columns recognised when present.
const (
	colStatus        = "status"
	colCatalogNumber = "catalog_number"
	colPartNumbers   = "part_numbers"
	colLinkStatus    = "link_status"
)

// BlockedDomains hosts known to paywall or otherwise break catalog links.
var BlockedDomains = map[string]struct{}{
	"machinetechdoc.com":     {},
	"servicepartmanuals.com": {},
	"interdalnoboy.com":      {},
	"www.avtozapchasty.ru":   {},
	"avtofiles.com":          {},
	"www.niva-club.net":      {},
}

// paidMarkers flag rows whose description or type admits the source is not
// freely accessible.
var paidMarkers = []string{"paid", "subscription", "login required"}

// Result reports what an import produced.
type Result struct {
	Records []database.CatalogRecord
	Skipped int
}

// LoadFile reads and parses a CSV export from disk.
func LoadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrIngestion, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a CSV export. The header must carry every required column;
// otherwise nothing is returned and the existing store stays untouched.
// Rows without a usable http(s) link, rows on blocked domains, rows carrying
// a paid marker, and rows whose link_status is not "ok" are skipped.
func Parse(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("%w: reading header: %v", ErrIngestion, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Result{}, fmt.Errorf("%w: missing required columns: %s", ErrIngestion, strings.Join(missing, ", "))
	}

	_, hasLinkStatus := cols[colLinkStatus]

	var result Result
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("%w: reading row: %v", ErrIngestion, err)
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		url := field("url")
		if !strings.HasPrefix(url, "http") {
			result.Skipped++
			continue
		}
		if hasLinkStatus && strings.ToLower(field(colLinkStatus)) != "ok" {
			result.Skipped++
			continue
		}

		domain := catalog.DomainFromURL(url)
		if _, blocked := BlockedDomains[domain]; blocked {
			result.Skipped++
			continue
		}

		description := field("description")
		typ := field("type")
		if hasPaidMarker(description) || hasPaidMarker(typ) {
			result.Skipped++
			continue
		}

		result.Records = append(result.Records, database.CatalogRecord{
			GroupName:     field("group"),
			Models:        field("models"),
			CatalogType:   typ,
			Description:   description,
			URL:           url,
			Domain:        domain,
			Country:       catalog.CountryFromDomain(domain),
			CatalogNumber: field(colCatalogNumber),
			PartNumbers:   field(colPartNumbers),
			Status:        field(colStatus),
		})
	}

	return result, nil
}

func hasPaidMarker(value string) bool {
	lowered := strings.ToLower(value)
	for _, marker := range paidMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
