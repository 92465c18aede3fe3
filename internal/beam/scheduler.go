package beam

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/config"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/errs"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/fleet"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/missionlog"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

// Scheduler drives the beam search of §4.5–4.8 over a fixed target order.
// A Scheduler is built once per solve and is not safe for concurrent reuse
// across unrelated Solve calls (the node-ID counter is per instance).
type Scheduler struct {
	cfg       config.Config
	durations model.Durations
	skuQty    map[yard.BoxID]int
	logger    hclog.Logger

	idCounter int64
}

// New builds a Scheduler for one solve run. skuQty maps each target box to
// its SKU quantity, used by the §4.1 picking-duration term.
func New(cfg config.Config, skuQty map[yard.BoxID]int, logger hclog.Logger) *Scheduler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scheduler{
		cfg: cfg,
		durations: model.Durations{
			TravelUnit: cfg.TTravel,
			Handle:     cfg.THandle,
			Process:    cfg.TProcess,
			Pick:       cfg.TPick,
		},
		skuQty: skuQty,
		logger: logger.Named("beam"),
	}
}

func (s *Scheduler) nextID() int64 {
	return atomic.AddInt64(&s.idCounter, 1)
}

// Solve runs the beam search: one phase per target in order, each phase
// made of zero or more relocation steps (clearing blockers above the
// target) followed by exactly one retrieval step, with top-K pruning of
// the beam after every step (§4.5–4.6).
func (s *Scheduler) Solve(ctx context.Context, y0 yard.Yard, pool0 fleet.Pool, order []yard.BoxID) (missionlog.Log, error) {
	beam := []*Node{{
		ID:   s.nextID(),
		Yard: y0,
		Pool: pool0,
		Log:  missionlog.Empty,
	}}

	for qi, target := range order {
		if err := ctx.Err(); err != nil {
			return missionlog.Log{}, fmt.Errorf("%w: beam search cancelled before target %d/%d: %v", errs.ErrTimeout, qi+1, len(order), err)
		}

		s.logger.Debug("starting phase", "target", target, "index", qi, "beam_size", len(beam))

		var err error
		beam, err = s.runRelocationPhase(ctx, beam, target, order, qi)
		if err != nil {
			return missionlog.Log{}, err
		}

		beam, err = s.expandStep(ctx, beam, func(n *Node) []*Node {
			return s.retrievalBranches(n, target)
		})
		if err != nil {
			return missionlog.Log{}, err
		}
		if len(beam) == 0 {
			return missionlog.Log{}, fmt.Errorf("%w: no beam survivors after retrieving target %v", errs.ErrNoFeasibleRelocation, target)
		}
	}

	winner := beam[0]
	for _, n := range beam[1:] {
		if n.Cost() < winner.Cost() {
			winner = n
		}
	}
	return winner.Log, nil
}

// runRelocationPhase repeatedly clears the current top blocker off
// target's column, one relocation step at a time, until every node in the
// beam has target directly accessible (or the beam is exhausted).
func (s *Scheduler) runRelocationPhase(ctx context.Context, beam []*Node, target yard.BoxID, order []yard.BoxID, qi int) ([]*Node, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: beam search cancelled during relocation phase for target %v: %v", errs.ErrTimeout, target, err)
		}

		allClear := true
		for _, n := range beam {
			col, _, ok := n.Yard.Locate(target)
			if !ok {
				continue
			}
			if top, _ := n.Yard.TopOf(col); top != target {
				allClear = false
				break
			}
		}
		if allClear {
			return beam, nil
		}

		next, err := s.expandStep(ctx, beam, func(n *Node) []*Node {
			col, _, ok := n.Yard.Locate(target)
			if !ok {
				return []*Node{n} // already retrieved elsewhere in a sibling branch; shouldn't occur, kept defensively
			}
			if top, _ := n.Yard.TopOf(col); top == target {
				return []*Node{n} // already clear, pass through unchanged
			}
			return s.relocationBranches(n, target, order, qi)
		})
		if err != nil {
			return nil, err
		}
		if len(next) == 0 {
			return nil, fmt.Errorf("%w: no relocation destination available for blocker above target %v", errs.ErrNoFeasibleRelocation, target)
		}
		beam = next
	}
}

// expandStep applies branch to every node in beam concurrently (§5: one
// goroutine per parent, joined before pruning), flattens the results, and
// prunes back to the configured beam width.
func (s *Scheduler) expandStep(ctx context.Context, beam []*Node, branch func(*Node) []*Node) ([]*Node, error) {
	results := make([][]*Node, len(beam))

	g, _ := errgroup.WithContext(ctx)
	for i, n := range beam {
		i, n := i, n
		g.Go(func() error {
			results[i] = branch(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*Node
	for _, r := range results {
		all = append(all, r...)
	}
	return prune(all, s.cfg.BeamWidth), nil
}
