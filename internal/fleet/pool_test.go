package fleet

import (
	"testing"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
)

func TestNewPoolAllSameStart(t *testing.T) {
	start := model.PortPos(0)
	p := NewPool(3, start, 100)

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	for _, agv := range p.All() {
		if agv.Position != start || agv.ReadyTime != 100 {
			t.Errorf("agv %d = %+v, want Position=%v ReadyTime=100", agv.ID, agv, start)
		}
	}
}

func TestCommitIsCopyOnWrite(t *testing.T) {
	p := NewPool(2, model.PortPos(0), 0)
	next := p.Commit(0, model.YardPos(1, 1, 0), 50)

	if p.Get(0).ReadyTime != 0 {
		t.Errorf("original pool mutated: ReadyTime = %v, want 0", p.Get(0).ReadyTime)
	}
	if next.Get(0).ReadyTime != 50 {
		t.Errorf("committed pool ReadyTime = %v, want 50", next.Get(0).ReadyTime)
	}
	if next.Get(1) != p.Get(1) {
		t.Error("uncommitted AGV 1 should be unchanged across Commit")
	}
}

func TestPickAGVsOrdering(t *testing.T) {
	p := NewPool(3, model.PortPos(0), 0)
	p = p.Commit(0, model.PortPos(0), 30)
	p = p.Commit(1, model.PortPos(0), 10)
	p = p.Commit(2, model.PortPos(0), 10)

	picked := p.PickAGVs(2)
	if len(picked) != 2 {
		t.Fatalf("PickAGVs(2) len = %d, want 2", len(picked))
	}
	// AGV 1 and AGV 2 tie at ReadyTime=10; AGVID ascending breaks the tie.
	if picked[0].ID != 1 || picked[1].ID != 2 {
		t.Errorf("PickAGVs(2) = %v, want [1, 2]", picked)
	}
}

func TestReadyTimeSum(t *testing.T) {
	p := NewPool(2, model.PortPos(0), 5)
	if got := p.ReadyTimeSum(); got != 10 {
		t.Errorf("ReadyTimeSum() = %v, want 10", got)
	}
}
