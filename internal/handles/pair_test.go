package handles

import (
	"testing"

	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/scene"
)

// M0,0 C10,-10,20,-10,30,0 C40,10,50,10,60,0 gives commands
// p-1 (move), p-2 (cubic, anchor 30,0), p-3 (cubic, anchor 60,0).
func testStore(t *testing.T, d string) *scene.MemStore {
	t.Helper()
	s := scene.NewMemStore(nil)
	if _, err := s.AddPathData("p", d, scene.Style{}); err != nil {
		t.Fatalf("AddPathData: %v", err)
	}
	return s
}

func TestResolvePairControl2(t *testing.T) {
	s := testStore(t, "M0,0 C10,-10,20,-10,30,0 C40,10,50,10,60,0")

	// Dragging p-2's (X2,Y2)=(20,-10): anchor is p-2's (30,0), partner
	// is p-3's (X1,Y1)=(40,10).
	info, ok := ResolvePair(s, "p-2", FieldControl2)
	if !ok {
		t.Fatal("ResolvePair failed")
	}
	if info.AnchorID != "p-2" || !info.Anchor.Eq(geom.Pt(30, 0), 0) {
		t.Errorf("anchor = %s %v", info.AnchorID, info.Anchor)
	}
	if info.Partner == nil {
		t.Fatal("partner not resolved")
	}
	if info.Partner.CommandID != "p-3" || info.Partner.Field != FieldControl1 {
		t.Errorf("partner = %+v", info.Partner)
	}
	if !info.Partner.Pos.Eq(geom.Pt(40, 10), 0) {
		t.Errorf("partner pos = %v", info.Partner.Pos)
	}
	// (20,-10) and (40,10) are exactly opposite equal-length handles
	// around (30,0).
	if info.Type != Mirrored {
		t.Errorf("pair type = %v, want Mirrored", info.Type)
	}
}

func TestResolvePairControl1(t *testing.T) {
	s := testStore(t, "M0,0 C10,-10,20,-10,30,0 C40,10,50,10,60,0")

	// Dragging p-3's (X1,Y1)=(40,10): anchor is p-2's (30,0), partner
	// is p-2's (X2,Y2)=(20,-10).
	info, ok := ResolvePair(s, "p-3", FieldControl1)
	if !ok {
		t.Fatal("ResolvePair failed")
	}
	if info.AnchorID != "p-2" {
		t.Errorf("anchor owner = %s, want p-2", info.AnchorID)
	}
	if info.Partner == nil || info.Partner.CommandID != "p-2" || info.Partner.Field != FieldControl2 {
		t.Fatalf("partner = %+v", info.Partner)
	}
	if info.Type != Mirrored {
		t.Errorf("pair type = %v, want Mirrored", info.Type)
	}
}

func TestResolvePairNoPartner(t *testing.T) {
	s := testStore(t, "M0,0 C10,-10,20,-10,30,0")

	// p-2's incoming handle has no following cubic: independent, no
	// partner, but still resolvable.
	info, ok := ResolvePair(s, "p-2", FieldControl2)
	if !ok {
		t.Fatal("ResolvePair failed")
	}
	if info.Partner != nil {
		t.Errorf("unexpected partner %+v", info.Partner)
	}
	if info.Type != Independent {
		t.Errorf("pair type = %v, want Independent", info.Type)
	}

	// p-2's outgoing handle leaves the move's anchor; the move has no
	// incoming control, so no partner either.
	info, ok = ResolvePair(s, "p-2", FieldControl1)
	if !ok {
		t.Fatal("ResolvePair failed")
	}
	if info.Partner != nil {
		t.Errorf("unexpected partner %+v", info.Partner)
	}
}

func TestResolvePairMissingCommand(t *testing.T) {
	s := testStore(t, "M0,0 C10,-10,20,-10,30,0")

	if _, ok := ResolvePair(s, "gone", FieldControl2); ok {
		t.Error("ResolvePair on missing command succeeded")
	}
	// Non-cubic commands have no handles to drag.
	if _, ok := ResolvePair(s, "p-1", FieldControl2); ok {
		t.Error("ResolvePair on move command succeeded")
	}
}

func TestHandleUpdate(t *testing.T) {
	h := Handle{CommandID: "c", Field: FieldControl1}
	upd := h.Update(geom.Pt(1, 2))
	if upd.X1 == nil || *upd.X1 != 1 || upd.Y1 == nil || *upd.Y1 != 2 {
		t.Errorf("control1 update = %+v", upd)
	}
	if upd.X2 != nil || upd.Y2 != nil {
		t.Error("control1 update touched control2 fields")
	}

	h.Field = FieldControl2
	upd = h.Update(geom.Pt(3, 4))
	if upd.X2 == nil || *upd.X2 != 3 || upd.Y2 == nil || *upd.Y2 != 4 {
		t.Errorf("control2 update = %+v", upd)
	}
}

func TestComputeInfo(t *testing.T) {
	s := testStore(t, "M0,0 C10,-10,20,-10,30,0 C40,10,50,10,60,0")

	info := ComputeInfo(s, "p-2")
	if info == nil {
		t.Fatal("ComputeInfo returned nil")
	}
	if info.Incoming == nil || !info.Incoming.Eq(geom.Pt(20, -10), 0) {
		t.Errorf("incoming = %v", info.Incoming)
	}
	if info.Outgoing == nil || !info.Outgoing.Eq(geom.Pt(40, 10), 0) {
		t.Errorf("outgoing = %v", info.Outgoing)
	}
	if info.Type != Mirrored || !info.Breakable {
		t.Errorf("type=%v breakable=%v", info.Type, info.Breakable)
	}

	// Tail anchor: incoming handle only.
	info = ComputeInfo(s, "p-3")
	if info == nil {
		t.Fatal("ComputeInfo returned nil for p-3")
	}
	if info.Outgoing != nil || info.Incoming == nil {
		t.Errorf("tail anchor handles: in=%v out=%v", info.Incoming, info.Outgoing)
	}
	if info.Type != Independent || info.Breakable {
		t.Errorf("tail anchor type=%v breakable=%v", info.Type, info.Breakable)
	}

	// Stale IDs yield nil, never an error.
	if ComputeInfo(s, "gone") != nil {
		t.Error("ComputeInfo for missing command is non-nil")
	}
}

func TestInfoCache(t *testing.T) {
	s := testStore(t, "M0,0 C10,-10,20,-10,30,0 C40,10,50,10,60,0")
	cache := NewInfoCache(s)

	before := cache.Get("p-2")
	if before == nil || before.Type != Mirrored {
		t.Fatalf("initial info = %+v", before)
	}

	// Break the symmetry behind the cache's back.
	s.UpdateCommand("p-3", scene.CommandUpdate{X1: scene.F(40), Y1: scene.F(-10)})

	// Cached entry still reflects the old geometry until invalidated.
	if got := cache.Get("p-2"); got.Type != Mirrored {
		t.Fatalf("cache served recomputed info before invalidation")
	}

	cache.Invalidate()
	after := cache.Get("p-2")
	if after.Type == Mirrored {
		t.Error("invalidated cache still serves stale classification")
	}
}

func TestInfoCacheInvalidateCommand(t *testing.T) {
	s := testStore(t, "M0,0 C10,-10,20,-10,30,0 C40,10,50,10,60,0")
	cache := NewInfoCache(s)

	cache.Get("p-2")
	s.UpdateCommand("p-3", scene.CommandUpdate{X1: scene.F(40), Y1: scene.F(-10)})

	// Invalidating p-3 must also drop its neighbor p-2, whose derived
	// info depends on p-3's control point.
	cache.InvalidateCommand("p-3")
	if got := cache.Get("p-2"); got.Type == Mirrored {
		t.Error("neighbor entry survived InvalidateCommand")
	}
}
