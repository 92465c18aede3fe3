package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestConfigDecodesRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "yard_config.csv", "max_row,max_bay,max_level,agv_count\n2,2,3,4\n")

	cfg, err := Config(path)
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	if cfg.MaxRow != 2 || cfg.MaxBay != 2 || cfg.MaxLevel != 3 || cfg.AGVCount != 4 {
		t.Errorf("Config() = %+v, want row values applied", cfg)
	}
}

func TestYardBuildsStacks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mock_yard.csv",
		"container_id,row,bay,level\n1,0,0,0\n2,0,0,1\n3,0,1,0\n")

	y, err := Yard(path, 2)
	if err != nil {
		t.Fatalf("Yard() error = %v", err)
	}
	if top, _ := y.TopOf(model.Column{Row: 0, Bay: 0}); top != 2 {
		t.Errorf("TopOf(0,0) = %d, want 2", top)
	}
	if top, _ := y.TopOf(model.Column{Row: 0, Bay: 1}); top != 3 {
		t.Errorf("TopOf(0,1) = %d, want 3", top)
	}
}

func TestYardRejectsGap(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mock_yard.csv",
		"container_id,row,bay,level\n1,0,0,0\n2,0,0,2\n") // missing level 1: a gap

	if _, err := Yard(path, 3); err == nil {
		t.Error("expected a DataInconsistent error for a gapped column")
	}
}

func TestValidateTargetsExistRejectsMissingBox(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mock_yard.csv",
		"container_id,row,bay,level\n1,0,0,0\n")

	y, err := Yard(path, 2)
	if err != nil {
		t.Fatalf("Yard() error = %v", err)
	}

	if err := ValidateTargetsExist(y, []yard.BoxID{1}); err != nil {
		t.Errorf("ValidateTargetsExist() error = %v, want nil for a present box", err)
	}
	if err := ValidateTargetsExist(y, []yard.BoxID{1, 99}); err == nil {
		t.Error("ValidateTargetsExist() = nil, want a DataInconsistent error for an absent target")
	}
}

func TestCommandsFiltersTargetsAndDefaultsSKU(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mock_commands.csv",
		"cmd_no,batch_id,cmd_type,cmd_priority,parent_carrier_id,src_row,src_bay,src_level,dest_row,dest_bay,dest_level,create_time,sku_qty\n"+
			"1,1,target,1,10,0,0,0,-1,0,0,0,5\n"+
			"2,1,other,2,11,0,1,0,-1,0,0,0,5\n"+
			"3,1,target,3,12,0,2,0,-1,0,0,0,\n")

	targets, skuQty, err := Commands(path)
	if err != nil {
		t.Fatalf("Commands() error = %v", err)
	}
	if len(targets) != 2 || targets[0] != yard.BoxID(10) || targets[1] != yard.BoxID(12) {
		t.Errorf("targets = %v, want [10 12] (non-target rows excluded)", targets)
	}
	if skuQty[yard.BoxID(10)] != 5 {
		t.Errorf("skuQty[10] = %d, want 5", skuQty[yard.BoxID(10)])
	}
	if skuQty[yard.BoxID(12)] != 1 {
		t.Errorf("skuQty[12] = %d, want 1 (missing value defaults to 1)", skuQty[yard.BoxID(12)])
	}
}
