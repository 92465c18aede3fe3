// Package config holds the immutable configuration record passed by value
// to every subsystem (§9 Design Notes: no process-wide singleton).
package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/errs"
)

// Config is every recognized option from §6, plus the ordering weights of
// §4.4, which the spec also calls out as overridable.
type Config struct {
	MaxRow     int `mapstructure:"max_row"`
	MaxBay     int `mapstructure:"max_bay"`
	MaxLevel   int `mapstructure:"max_level"`
	TotalBoxes int `mapstructure:"total_boxes"`

	MissionCount int `mapstructure:"mission_count"`
	AGVCount     int `mapstructure:"agv_count"`
	BeamWidth    int `mapstructure:"beam_width"`
	PortCount    int `mapstructure:"port_count"`

	TTravel  float64 `mapstructure:"t_travel"`
	THandle  float64 `mapstructure:"t_handle"`
	TProcess float64 `mapstructure:"t_process"`
	TPick    float64 `mapstructure:"t_pick"`

	SimStartEpoch float64 `mapstructure:"sim_start_epoch"`

	WPenaltyBlocking   float64 `mapstructure:"w_penalty_blocking"`
	WPenaltyLookahead  float64 `mapstructure:"w_penalty_lookahead"`

	WB float64 `mapstructure:"w_b"`
	WU float64 `mapstructure:"w_u"`
	WD float64 `mapstructure:"w_d"`
}

// Defaults returns a Config with every documented default applied (§4.4,
// §6). Callers decode the CSV row on top of this via Decode.
func Defaults() Config {
	return Config{
		MaxRow:     0,
		MaxBay:     0,
		MaxLevel:   0,
		TotalBoxes: 0,

		MissionCount: 0,
		AGVCount:     1,
		BeamWidth:    1,
		PortCount:    1,

		TTravel:  1.0,
		THandle:  0.0,
		TProcess: 0.0,
		TPick:    0.0,

		SimStartEpoch: 0,

		WPenaltyBlocking:  1.0,
		WPenaltyLookahead: 1.0,

		WB: 2.0,
		WU: 5.0,
		WD: 0.5,
	}
}

// Decode overlays row (a single CSV header/value map, e.g. the sole data
// row of yard_config.csv) onto Defaults(), weakly typing numeric strings
// into their struct fields, and validates the result.
func Decode(row map[string]string) (Config, error) {
	cfg := Defaults()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, fmt.Errorf("config: building decoder: %w", err)
	}
	if err := dec.Decode(row); err != nil {
		return Config{}, fmt.Errorf("%w: decoding yard_config.csv row: %v", errs.ErrConfigInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants of §7's ConfigInvalid case, aggregating
// every violation rather than stopping at the first.
func (c Config) Validate() error {
	var merr *multierror.Error

	if c.MaxRow <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("max_row must be positive, got %d", c.MaxRow))
	}
	if c.MaxBay <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("max_bay must be positive, got %d", c.MaxBay))
	}
	if c.MaxLevel <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("max_level must be positive, got %d", c.MaxLevel))
	}
	if c.BeamWidth <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("beam_width must be positive, got %d", c.BeamWidth))
	}
	if c.AGVCount <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("agv_count must be positive, got %d", c.AGVCount))
	}
	if c.PortCount <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("port_count must be positive, got %d", c.PortCount))
	}

	if merr.ErrorOrNil() != nil {
		return fmt.Errorf("%w: %v", errs.ErrConfigInvalid, merr)
	}
	return nil
}
