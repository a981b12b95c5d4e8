package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

// FileSource reads the roster from a comma-separated file whose first line
// names the columns. Column order is free; RequiredColumns must all appear.
// Quoted fields are honored, so values may contain commas.
type FileSource struct {
	path   string
	logger internal.Logger
}

func NewFileSource(path string, logger internal.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

func (s *FileSource) LoadProfiles(ctx context.Context) (LoadResult, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warnf("storage: directory file %s does not exist, starting with an empty roster", s.path)
			return LoadResult{}, nil
		}
		return LoadResult{}, err
	}
	defer file.Close()

	res, err := ParseProfiles(file)
	if err != nil {
		s.logger.Errorf("storage: failed to parse %s: %v", s.path, err)
		return LoadResult{}, err
	}
	s.logger.Infof("storage: loaded %d profiles from %s (%d rows rejected)", len(res.Profiles), s.path, len(res.RowErrors))
	return res, nil
}

// ParseProfiles decodes a directory table. Rows that cannot be turned into a
// profile are reported in RowErrors and skipped; only an unreadable header or
// an I/O failure aborts the whole load.
func ParseProfiles(r io.Reader) (LoadResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return LoadResult{}, nil
		}
		return LoadResult{}, fmt.Errorf("storage: read header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return LoadResult{}, err
	}

	var res LoadResult
	seen := make(map[int]bool)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				res.RowErrors = append(res.RowErrors, RowError{Line: pe.Line, Err: pe.Err})
				continue
			}
			return res, err
		}
		line, _ := cr.FieldPos(0)

		p, err := parseRecord(record, cols)
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Err: err})
			continue
		}
		if seen[p.UserID] {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Err: fmt.Errorf("duplicate user_id %d", p.UserID)})
			continue
		}
		seen[p.UserID] = true
		res.Profiles = append(res.Profiles, p)
	}
	return res, nil
}

func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		cols[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("storage: missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRecord(record []string, cols map[string]int) (internal.UserProfile, error) {
	field := func(name string) (string, error) {
		i := cols[name]
		if i >= len(record) {
			return "", fmt.Errorf("missing column %q", name)
		}
		return strings.TrimSpace(record[i]), nil
	}

	var p internal.UserProfile
	var err error
	var raw string

	if raw, err = field("user_id"); err != nil {
		return p, err
	}
	if p.UserID, err = strconv.Atoi(raw); err != nil {
		return p, fmt.Errorf("user_id %q is not an integer", raw)
	}
	if raw, err = field("latest_cgm"); err != nil {
		return p, err
	}
	if p.LatestCGM, err = strconv.Atoi(raw); err != nil {
		return p, fmt.Errorf("latest_cgm %q is not an integer", raw)
	}

	text := []struct {
		col string
		dst *string
	}{
		{"first_name", &p.FirstName},
		{"last_name", &p.LastName},
		{"city", &p.City},
		{"dietary_preference", &p.DietaryPreference},
		{"medical_conditions", &p.MedicalConditions},
		{"physical_limitations", &p.PhysicalLimitations},
		{"mood", &p.Mood},
	}
	for _, t := range text {
		if *t.dst, err = field(t.col); err != nil {
			return p, err
		}
	}
	return p, nil
}

var _ ProfileSource = (*FileSource)(nil)
