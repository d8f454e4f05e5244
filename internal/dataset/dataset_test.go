package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "preds.csv",
		"predicted,probability,label\n"+
			"1,0.9,1\n"+
			"0,0.2,1\n"+
			"1,0.7,0\n")

	set, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	if len(set.Predicted) != 3 || len(set.Probs) != 3 || len(set.Labels) != 3 {
		t.Fatalf("got lengths %d/%d/%d, want 3/3/3",
			len(set.Predicted), len(set.Probs), len(set.Labels))
	}
	if set.Predicted[0] != 1 || set.Probs[0] != 0.9 || set.Labels[0] != 1 {
		t.Errorf("first sample = %d/%v/%d, want 1/0.9/1",
			set.Predicted[0], set.Probs[0], set.Labels[0])
	}
	if set.Predicted[1] != 0 || set.Labels[2] != 0 {
		t.Error("column values mapped to wrong samples")
	}
}

func TestLoadCSV_ReorderedColumns(t *testing.T) {
	path := writeFile(t, "preds.csv",
		"label,predicted,probability\n"+
			"1,0,0.4\n")

	set, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if set.Labels[0] != 1 || set.Predicted[0] != 0 || set.Probs[0] != 0.4 {
		t.Errorf("got %d/%v/%d, want predicted=0 probability=0.4 label=1",
			set.Predicted[0], set.Probs[0], set.Labels[0])
	}
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "missing column",
			content: "predicted,probability\n1,0.9\n",
			wantIn:  "missing",
		},
		{
			name:    "bad probability",
			content: "predicted,probability,label\n1,high,1\n",
			wantIn:  "row 2",
		},
		{
			name:    "bad label on later row",
			content: "predicted,probability,label\n1,0.9,1\n0,0.2,x\n",
			wantIn:  "row 3",
		},
		{
			name:    "no data rows",
			content: "predicted,probability,label\n",
			wantIn:  "no data rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "preds.csv", tt.content)
			_, err := LoadCSV(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "preds.json",
		`{"predicted": [1, 0], "probabilities": [0.8, 0.3], "labels": [1, 0]}`)

	set, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if len(set.Predicted) != 2 || set.Probs[1] != 0.3 {
		t.Errorf("unexpected set: %+v", set)
	}
}

func TestLoadJSON_Empty(t *testing.T) {
	path := writeFile(t, "preds.json", `{"predicted": [], "probabilities": [], "labels": []}`)

	if _, err := LoadJSON(path); err == nil {
		t.Error("expected error for empty prediction set")
	}
}

func TestLoad_ByExtension(t *testing.T) {
	csvPath := writeFile(t, "preds.csv", "predicted,probability,label\n1,0.9,1\n")
	if _, err := Load(csvPath); err != nil {
		t.Errorf("Load(csv) error = %v", err)
	}

	jsonPath := writeFile(t, "preds.json",
		`{"predicted": [1], "probabilities": [0.9], "labels": [1]}`)
	if _, err := Load(jsonPath); err != nil {
		t.Errorf("Load(json) error = %v", err)
	}

	if _, err := Load("preds.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadFeatures(t *testing.T) {
	path := writeFile(t, "features.csv",
		"f0,f1,label\n"+
			"0.1,0.2,1\n"+
			"0.3,0.4,0\n")

	features, labels, err := LoadFeatures(path)
	if err != nil {
		t.Fatalf("LoadFeatures() error = %v", err)
	}
	if len(features) != 2 || len(features[0]) != 2 {
		t.Fatalf("got %d rows of %d features, want 2 rows of 2", len(features), len(features[0]))
	}
	if features[1][1] != 0.4 {
		t.Errorf("features[1][1] = %v, want 0.4", features[1][1])
	}
	if len(labels) != 2 || labels[0] != 1 || labels[1] != 0 {
		t.Errorf("labels = %v, want [1 0]", labels)
	}
}

func TestLoadFeatures_NoLabelColumn(t *testing.T) {
	path := writeFile(t, "features.csv",
		"f0,f1\n"+
			"0.1,0.2\n")

	features, labels, err := LoadFeatures(path)
	if err != nil {
		t.Fatalf("LoadFeatures() error = %v", err)
	}
	if labels != nil {
		t.Errorf("labels = %v, want nil", labels)
	}
	if len(features) != 1 || len(features[0]) != 2 {
		t.Errorf("unexpected features: %v", features)
	}
}

func TestLoadFeatures_BadValue(t *testing.T) {
	path := writeFile(t, "features.csv",
		"f0,label\n"+
			"0.1,1\n"+
			"oops,0\n")

	_, _, err := LoadFeatures(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name row 3", err)
	}
}
