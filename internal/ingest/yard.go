package ingest

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/errs"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

// Yard reads mock_yard.csv (columns container_id, row, bay, level) into a
// populated yard.Yard, validating every column's stack invariants and
// aggregating every violation found (§7 DataInconsistent).
func Yard(path string, maxLevel int) (yard.Yard, error) {
	rows, err := readRows(path)
	if err != nil {
		return yard.Yard{}, err
	}

	type placed struct {
		box   yard.BoxID
		level int
	}
	byColumn := make(map[model.Column][]placed)

	var merr *multierror.Error
	for i, row := range rows {
		boxID, err1 := atoiField(row, "container_id")
		r, err2 := atoiField(row, "row")
		b, err3 := atoiField(row, "bay")
		l, err4 := atoiField(row, "level")
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			merr = multierror.Append(merr, fmt.Errorf("mock_yard.csv row %d: %v/%v/%v/%v", i+2, err1, err2, err3, err4))
			continue
		}
		col := model.Column{Row: r, Bay: b}
		byColumn[col] = append(byColumn[col], placed{box: yard.BoxID(boxID), level: l})
	}
	if err := merr.ErrorOrNil(); err != nil {
		return yard.Yard{}, fmt.Errorf("%w: %v", errs.ErrDataInconsistent, err)
	}

	y := yard.New(maxLevel)
	merr = nil
	for col, boxes := range byColumn {
		levels := make([]int, len(boxes))
		for i, p := range boxes {
			levels[i] = p.level
		}
		if verr := yard.ValidateColumn(col, levels, maxLevel); verr != nil {
			merr = multierror.Append(merr, verr)
			continue
		}
		ordered := make([]yard.BoxID, len(boxes))
		for _, p := range boxes {
			ordered[p.level] = p.box
		}
		y = y.Place(col, ordered)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return yard.Yard{}, fmt.Errorf("%w: %v", errs.ErrDataInconsistent, err)
	}
	return y, nil
}

// ValidateTargetsExist checks that every commanded target box id is
// actually present in y, aggregating every missing target into one
// DataInconsistent error (§7: "a target id not present in yard") rather
// than letting ordering silently drop it from the retrieval queue.
func ValidateTargetsExist(y yard.Yard, targets []yard.BoxID) error {
	var merr *multierror.Error
	for _, box := range targets {
		if _, _, ok := y.Locate(box); !ok {
			merr = multierror.Append(merr, fmt.Errorf("target %d not present in yard", box))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDataInconsistent, err)
	}
	return nil
}

// Commands reads mock_commands.csv and returns, in file order, the subset
// of rows with cmd_type = "target" as a target list (box ids) plus a
// sku_qty lookup (defaulting to 1 per row on missing/unparseable values,
// per §6).
func Commands(path string) (targets []yard.BoxID, skuQty map[yard.BoxID]int, err error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, nil, err
	}

	skuQty = make(map[yard.BoxID]int)
	var merr *multierror.Error
	for i, row := range rows {
		if row["cmd_type"] != "target" {
			continue
		}
		carrierID, cerr := atoiField(row, "parent_carrier_id")
		if cerr != nil {
			merr = multierror.Append(merr, fmt.Errorf("mock_commands.csv row %d: %v", i+2, cerr))
			continue
		}
		box := yard.BoxID(carrierID)
		targets = append(targets, box)

		qty := 1
		if raw, ok := row["sku_qty"]; ok && raw != "" {
			if parsed, perr := strconv.Atoi(raw); perr == nil && parsed >= 0 {
				qty = parsed
			}
		}
		skuQty[box] = qty
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrDataInconsistent, err)
	}
	return targets, skuQty, nil
}
