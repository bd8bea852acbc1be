package parser

import (
	"testing"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
)

func TestDefaultGeometry(t *testing.T) {
	g := DefaultGeometry()
	if err := g.Validate(); err != nil {
		t.Fatalf("default geometry invalid: %v", err)
	}
	if g.Days[models.Monday] != (ColumnTriplet{"I", "J", "K"}) {
		t.Errorf("Monday columns = %+v", g.Days[models.Monday])
	}
	if g.Days[models.Friday] != (ColumnTriplet{"U", "V", "W"}) {
		t.Errorf("Friday columns = %+v", g.Days[models.Friday])
	}
	if g.Band(models.Week2) != (RowBand{24, 28}) || g.Week1.Rows() != 5 {
		t.Errorf("unexpected bands %s %s", g.Week1, g.Week2)
	}
}

func TestParseColumnTriplet(t *testing.T) {
	tests := []struct {
		input    string
		expected ColumnTriplet
		wantErr  bool
	}{
		{"I:K", ColumnTriplet{"I", "J", "K"}, false},
		{"$u:$w", ColumnTriplet{"U", "V", "W"}, false},
		{"Y:AA", ColumnTriplet{"Y", "Z", "AA"}, false},
		{"A,C,E", ColumnTriplet{"A", "C", "E"}, false},
		{"I:J", ColumnTriplet{}, true},
		{"I", ColumnTriplet{}, true},
		{"1:3", ColumnTriplet{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColumnTriplet(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColumnTriplet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseColumnTriplet(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestParseRowBand(t *testing.T) {
	tests := []struct {
		input    string
		expected RowBand
		wantErr  bool
	}{
		{"9:13", RowBand{9, 13}, false},
		{" $24:$28 ", RowBand{24, 28}, false},
		{"5:5", RowBand{5, 5}, false},
		{"13:9", RowBand{}, true},
		{"0:4", RowBand{}, true},
		{"9", RowBand{}, true},
		{"a:b", RowBand{}, true},
	}
	for _, tt := range tests {
		got, err := ParseRowBand(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRowBand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseRowBand(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestValidateRejectsOverlap(t *testing.T) {
	g := DefaultGeometry()
	g.Week2 = RowBand{First: 12, Last: 16}
	if err := g.Validate(); err == nil {
		t.Error("expected overlapping bands to be rejected")
	}

	g = DefaultGeometry()
	g.NameCell = "not a cell"
	if err := g.Validate(); err == nil {
		t.Error("expected invalid name cell to be rejected")
	}
}
