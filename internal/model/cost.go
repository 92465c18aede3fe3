package model

// Durations holds the closed-form duration constants from §4.1. All values
// are fractional seconds; Durations is passed by value, never mutated
// after construction (see config.Config, which owns the canonical copy).
type Durations struct {
	TravelUnit float64 // t_travel: seconds per Manhattan unit
	Handle     float64 // t_handle: one-sided pick/place cost, applied twice per mission
	Process    float64 // t_process: workstation handoff constant
	Pick       float64 // t_pick: per-SKU picking cost
}

// portColumn is the fixed yard-side coordinate every workstation port
// reduces to for distance purposes (row=-1, bay=0), per §4.1.
var portColumn = Column{Row: -1, Bay: 0}

func columnOf(p Position) Column {
	if p.Kind == KindPort {
		return portColumn
	}
	return p.Column()
}

// Travel returns t_travel(p, q): the Manhattan distance between the two
// positions' yard-reduced columns, scaled by TravelUnit. Level is ignored.
func (d Durations) Travel(p, q Position) float64 {
	return d.TravelUnit * float64(Manhattan(columnOf(p), columnOf(q)))
}

// Picking returns t_picking(carrier) = sku_qty * t_pick, applied only at
// target retrieval.
func (d Durations) Picking(skuQty int) float64 {
	return float64(skuQty) * d.Pick
}
