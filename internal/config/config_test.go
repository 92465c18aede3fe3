package config

import (
	"errors"
	"testing"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/errs"
)

func TestDecodeOverlaysRowOntoDefaults(t *testing.T) {
	row := map[string]string{
		"max_row":   "3",
		"max_bay":   "4",
		"max_level": "2",
		"agv_count": "2",
	}
	cfg, err := Decode(row)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.MaxRow != 3 || cfg.MaxBay != 4 || cfg.MaxLevel != 2 || cfg.AGVCount != 2 {
		t.Errorf("Decode() = %+v, want overridden dims and agv_count", cfg)
	}
	// Fields absent from the row keep their Defaults() value.
	if cfg.WB != Defaults().WB {
		t.Errorf("WB = %v, want default %v", cfg.WB, Defaults().WB)
	}
}

func TestDecodeRejectsNonPositiveDimensions(t *testing.T) {
	row := map[string]string{"max_row": "0", "max_bay": "1", "max_level": "1"}
	_, err := Decode(row)
	if !errors.Is(err, errs.ErrConfigInvalid) {
		t.Errorf("Decode() error = %v, want wrapping ErrConfigInvalid", err)
	}
}

func TestValidateAggregatesAllViolations(t *testing.T) {
	cfg := Defaults()
	cfg.MaxRow = 0
	cfg.MaxBay = 0
	cfg.BeamWidth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"max_row", "max_bay", "beam_width"} {
		if !contains(msg, want) {
			t.Errorf("error %q missing mention of %q", msg, want)
		}
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
