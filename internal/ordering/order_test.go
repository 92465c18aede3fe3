package ordering

import (
	"reflect"
	"testing"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/config"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

func col(r, b int) model.Column { return model.Column{Row: r, Bay: b} }

func TestOrderEmptyTargets(t *testing.T) {
	cfg := config.Defaults()
	y := yard.New(1)
	if got := Order(cfg, y, nil); got != nil {
		t.Errorf("Order(nil) = %v, want nil", got)
	}
}

func TestOrderRespectsColumnPrecedence(t *testing.T) {
	cfg := config.Defaults()
	y := yard.New(3)
	y = y.Place(col(0, 0), []yard.BoxID{1, 2, 3}) // level0=1 (target), level1=2 (blocker), level2=3 (target)

	targets := []yard.BoxID{1, 3}
	order := Order(cfg, y, targets)

	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("Order() = %v, want [3 1] (top-down within column)", order)
	}
}

func TestOrderPicksLowerScoreAcrossColumns(t *testing.T) {
	cfg := config.Defaults()
	y := yard.New(1)
	// Target 1: no blockers, far from workstation.
	y = y.Place(col(5, 5), []yard.BoxID{1})
	// Target 2: no blockers, close to workstation.
	y = y.Place(col(0, 0), []yard.BoxID{2})

	order := Order(cfg, y, []yard.BoxID{1, 2})
	if len(order) != 2 || order[0] != 2 {
		t.Errorf("Order() = %v, want target 2 (closer to workstation) first", order)
	}
}

func TestOrderIdempotence(t *testing.T) {
	cfg := config.Defaults()
	y := yard.New(3)
	y = y.Place(col(0, 0), []yard.BoxID{1, 2, 3})
	y = y.Place(col(1, 0), []yard.BoxID{4})

	targets := []yard.BoxID{1, 3, 4}
	first := Order(cfg, y, targets)
	second := Order(cfg, y, first)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Order() is not idempotent on its own output: first=%v second=%v", first, second)
	}
}
