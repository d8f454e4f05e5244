// Package dataset loads prediction sets and feature matrices from files for
// the validation CLI.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PredictionSet holds the three parallel slices a validation run consumes.
// Range and cross-length checks are the core library's job; loading only
// guarantees the file parsed and the columns were present.
type PredictionSet struct {
	Predicted []int     `json:"predicted"`
	Probs     []float64 `json:"probabilities"`
	Labels    []int     `json:"labels"`
}

// Load reads a prediction set, picking the format from the file extension
// (.csv or .json).
func Load(path string) (*PredictionSet, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported prediction file extension %q (want .csv or .json)", ext)
	}
}

// LoadCSV reads a prediction set from a CSV file with a header row naming
// the columns "predicted", "probability", and "label" in any order.
func LoadCSV(path string) (*PredictionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening predictions: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	predictedCol, probCol, labelCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "predicted":
			predictedCol = i
		case "probability":
			probCol = i
		case "label":
			labelCol = i
		}
	}
	if predictedCol < 0 || probCol < 0 || labelCol < 0 {
		return nil, fmt.Errorf("header %v missing one of predicted, probability, label", header)
	}

	set := &PredictionSet{}
	for row := 2; ; row++ {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		predicted, err := strconv.Atoi(strings.TrimSpace(record[predictedCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad predicted value %q", row, record[predictedCol])
		}
		prob, err := strconv.ParseFloat(strings.TrimSpace(record[probCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad probability %q", row, record[probCol])
		}
		label, err := strconv.Atoi(strings.TrimSpace(record[labelCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad label %q", row, record[labelCol])
		}

		set.Predicted = append(set.Predicted, predicted)
		set.Probs = append(set.Probs, prob)
		set.Labels = append(set.Labels, label)
	}

	if len(set.Labels) == 0 {
		return nil, fmt.Errorf("%s has no data rows", path)
	}
	return set, nil
}

// LoadJSON reads a prediction set from a JSON object with "predicted",
// "probabilities", and "labels" arrays.
func LoadJSON(path string) (*PredictionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading predictions: %w", err)
	}

	var set PredictionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(set.Labels) == 0 {
		return nil, fmt.Errorf("%s has no samples", path)
	}
	return &set, nil
}

// LoadFeatures reads a feature matrix from a CSV file with a header row.
// A column named "label" (any position) becomes the returned labels; every
// other column is parsed as a float32 feature. Labels are nil when the file
// has no label column.
func LoadFeatures(path string) ([][]float32, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening features: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	labelCol := -1
	for i, name := range header {
		if strings.ToLower(strings.TrimSpace(name)) == "label" {
			labelCol = i
			break
		}
	}

	var features [][]float32
	var labels []int
	for row := 2; ; row++ {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("row %d: %w", row, err)
		}

		vector := make([]float32, 0, len(record))
		for i, field := range record {
			if i == labelCol {
				label, err := strconv.Atoi(strings.TrimSpace(field))
				if err != nil {
					return nil, nil, fmt.Errorf("row %d: bad label %q", row, field)
				}
				labels = append(labels, label)
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: bad feature %q", row, field)
			}
			vector = append(vector, float32(v))
		}
		features = append(features, vector)
	}

	if len(features) == 0 {
		return nil, nil, fmt.Errorf("%s has no data rows", path)
	}
	return features, labels, nil
}
