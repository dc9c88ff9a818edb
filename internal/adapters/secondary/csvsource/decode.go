package csvsource

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"launch-dashboard-service/internal/core/domain"
)

// maxDatasetBytes caps the size of a dataset body. Larger bodies are rejected.
const maxDatasetBytes = 32 << 20

// Column names of the published launch dataset.
const (
	colLaunchSite      = "Launch Site"
	colClass           = "class"
	colPayloadMass     = "Payload Mass (kg)"
	colBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{colLaunchSite, colClass, colPayloadMass, colBoosterCategory}

type launchRow struct {
	FlightNumber           int     `csv:"Flight Number"`
	LaunchSite             string  `csv:"Launch Site"`
	Class                  int     `csv:"class"`
	PayloadMassKg          float64 `csv:"Payload Mass (kg)"`
	BoosterVersion         string  `csv:"Booster Version"`
	BoosterVersionCategory string  `csv:"Booster Version Category"`
}

// Decode parses a launch dataset in CSV form. Columns other than the launch
// columns are ignored; a missing required column is an error.
func Decode(r io.Reader) ([]domain.LaunchRecord, error) {
	return decode(r, maxDatasetBytes)
}

func decode(r io.Reader, limit int64) ([]domain.LaunchRecord, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("dataset exceeds %d bytes", limit)
	}

	if err := checkHeader(data); err != nil {
		return nil, err
	}

	var rows []*launchRow
	if err := gocsv.Unmarshal(bytes.NewReader(data), &rows); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	records := make([]domain.LaunchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.LaunchRecord{
			FlightNumber:           row.FlightNumber,
			LaunchSite:             row.LaunchSite,
			Class:                  row.Class,
			PayloadMassKg:          row.PayloadMassKg,
			BoosterVersion:         row.BoosterVersion,
			BoosterVersionCategory: row.BoosterVersionCategory,
		})
	}
	return records, nil
}

func checkHeader(data []byte) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err == io.EOF {
		return domain.ErrEmptyDataset
	}
	if err != nil {
		return fmt.Errorf("read dataset header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("dataset header missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
