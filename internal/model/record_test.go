package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nao1215/lookupbot/internal/normalize"
)

func TestRecordString(t *testing.T) {
	t.Parallel()

	rec := Record{
		"name":    "asha",
		"mobile":  json.Number("9876543210"),
		"age":     float64(42),
		"active":  true,
		"missing": nil,
	}

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "name", want: "asha", wantOK: true},
		{key: "mobile", want: "9876543210", wantOK: true},
		{key: "age", want: "42", wantOK: true},
		{key: "active", want: "true", wantOK: true},
		{key: "missing", want: "", wantOK: false},
		{key: "absent", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got, ok := rec.String(tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("String(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRecordFatherName(t *testing.T) {
	t.Parallel()

	t.Run("prefers father_name", func(t *testing.T) {
		t.Parallel()
		rec := Record{"father_name": "ram", "fathersname": "shyam"}
		if got := rec.FatherName(); got != "ram" {
			t.Errorf("expected ram, got %q", got)
		}
	})

	t.Run("falls back to fathersname", func(t *testing.T) {
		t.Parallel()
		rec := Record{"fathersname": "shyam"}
		if got := rec.FatherName(); got != "shyam" {
			t.Errorf("expected shyam, got %q", got)
		}
	})

	t.Run("null father_name falls back", func(t *testing.T) {
		t.Parallel()
		rec := Record{"father_name": nil, "fathersname": "shyam"}
		if got := rec.FatherName(); got != "shyam" {
			t.Errorf("expected shyam, got %q", got)
		}
	})

	t.Run("neither present", func(t *testing.T) {
		t.Parallel()
		if got := (Record{}).FatherName(); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})
}

func TestNewDisplayRecord(t *testing.T) {
	t.Parallel()

	t.Run("normalizes every field", func(t *testing.T) {
		t.Parallel()

		rec := Record{
			"name":        "JOHN ii",
			"father_name": "robert#smith",
			"address":     "12-MG Road..Delhi",
			"mobile":      "9123456789",
		}
		got := NewDisplayRecord(rec, "9876543210")

		want := DisplayRecord{
			Mobile:     "9123456789",
			Name:       "John II",
			FatherName: "Robert Smith",
			Address:    "12, Mg Road, DELHI",
		}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
		if !got.HasFatherName() || !got.HasAddress() {
			t.Error("expected father's name and address to be present")
		}
	})

	t.Run("falls back to searched number and placeholders", func(t *testing.T) {
		t.Parallel()

		got := NewDisplayRecord(Record{"name": "null"}, "9876543210")

		if got.Mobile != "9876543210" {
			t.Errorf("expected searched number, got %q", got.Mobile)
		}
		if got.Name != normalize.NotAvailable {
			t.Errorf("expected placeholder name, got %q", got.Name)
		}
		if got.HasFatherName() {
			t.Error("expected HasFatherName to be false")
		}
		if got.HasAddress() {
			t.Error("expected HasAddress to be false")
		}
	})
}

func TestResultConstructors(t *testing.T) {
	t.Parallel()

	t.Run("records result keeps order", func(t *testing.T) {
		t.Parallel()

		recs := []Record{{"name": "a"}, {"name": "b"}}
		r := RecordsResult(recs)
		if r.Kind != KindRecords || r.Count() != 2 {
			t.Fatalf("unexpected result %+v", r)
		}
		if r.Records[1].Name() != "b" {
			t.Errorf("expected order to be preserved")
		}
	})

	t.Run("no records becomes empty", func(t *testing.T) {
		t.Parallel()

		if r := RecordsResult(nil); r.Kind != KindEmpty {
			t.Errorf("expected KindEmpty, got %v", r.Kind)
		}
	})

	t.Run("kind names", func(t *testing.T) {
		t.Parallel()

		if KindError.String() != "error" || KindEmpty.String() != "empty" || KindRecords.String() != "records" {
			t.Error("unexpected kind names")
		}
	})
}

func TestNewExport(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	exp := NewExport("9876543210", []Record{{"name": "asha", "extra": "kept"}}, at)

	if exp.Count != 1 {
		t.Errorf("expected count 1, got %d", exp.Count)
	}
	if exp.Records[0]["extra"] != "kept" {
		t.Error("expected raw fields to be preserved")
	}

	display := exp.DisplayRecords()
	if len(display) != 1 || display[0].Name != "Asha" || display[0].Mobile != "9876543210" {
		t.Errorf("unexpected display records %+v", display)
	}

	if empty := NewExport("9876543210", nil, at); empty.Records == nil || empty.Count != 0 {
		t.Error("expected non-nil empty records slice")
	}
}
