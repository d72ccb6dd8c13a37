package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV parses Titanic CSV bytes into a Dataset. Columns are resolved by
// header name so column order does not matter. Rows with an unparseable id,
// survival flag, or class are skipped; missing age and embarkation values are
// tolerated.
func ParseCSV(data []byte) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	col := make(map[string]int, len(headers))
	for i, h := range headers {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"passengerid", "survived", "pclass", "sex", "fare"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var passengers []Passenger
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		id, err := strconv.Atoi(field(row, "passengerid"))
		if err != nil {
			continue
		}
		survived, err := strconv.Atoi(field(row, "survived"))
		if err != nil {
			continue
		}
		class, err := strconv.Atoi(field(row, "pclass"))
		if err != nil {
			continue
		}

		p := Passenger{
			ID:       id,
			Survived: survived == 1,
			Sex:      strings.ToLower(field(row, "sex")),
			Class:    class,
			Embarked: strings.ToUpper(field(row, "embarked")),
		}

		if v := field(row, "age"); v != "" {
			if age, err := strconv.ParseFloat(v, 64); err == nil {
				p.Age = &age
			}
		}
		if v := field(row, "fare"); v != "" {
			if fare, err := strconv.ParseFloat(v, 64); err == nil {
				p.Fare = fare
			}
		}

		passengers = append(passengers, p)
	}

	return New(passengers), nil
}
