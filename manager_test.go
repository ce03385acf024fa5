package sway

import (
	"math"
	"testing"
)

func TestUpdateOrderIsInsertionOrder(t *testing.T) {
	m := NewManager()
	var order []string
	a, b := &mixedFields{}, &mixedFields{}
	m.Add(a, 1000).To("F64", 1).OnUpdate(func() { order = append(order, "a") })
	m.Add(b, 1000).To("F64", 1).OnUpdate(func() { order = append(order, "b") })

	m.Update(0.1)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("update order = %v, want [a b]", order)
	}
}

func TestOverwriteDefaultInvalidatesOverlappingOnly(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	t1 := m.Add(obj, 1000).To("F64", 100)
	t2 := m.Add(obj, 1000).To("F32", 100)

	m.Update(0.1) // both active now

	m.Add(obj, 1000).To("F64", 0).Overwrite(OverwriteDefault)
	m.Update(0.1) // new tween starts and resolves its policy

	if !t1.procs[0].(*propertyProc).invalid {
		t.Error("overlapping F64 procedure should be invalidated")
	}
	if t2.procs[0].(*propertyProc).invalid {
		t.Error("disjoint F32 procedure must not be touched")
	}
	if t1.IsComplete() || t2.IsComplete() {
		t.Error("OverwriteDefault invalidates procedures, it does not end tweens")
	}

	// F32 keeps animating to its own end.
	for i := 0; i < 10; i++ {
		m.Update(0.1)
	}
	if math.Abs(float64(obj.F32)-100) > 1e-2 {
		t.Errorf("F32 = %f, want 100", obj.F32)
	}
	// F64 lands on the newer tween's end value.
	if math.Abs(obj.F64) > 15 {
		t.Errorf("F64 = %f, want near 0 (owned by the newer tween)", obj.F64)
	}
}

func TestOverwriteConcurrentEndsActiveOnly(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	active := m.Add(obj, 1000).To("F64", 100)
	delayed := m.Add(obj, 1000).To("F32", 100).Delay(5000)

	m.Update(0.1) // active enters update; delayed still waiting

	m.Add(obj, 1000).To("I", 10).Overwrite(OverwriteConcurrent)
	m.Update(0.1)

	if !active.IsComplete() {
		t.Error("active tween should be ended by OverwriteConcurrent")
	}
	if delayed.IsComplete() {
		t.Error("delayed tween must survive OverwriteConcurrent")
	}
}

func TestOverwriteAllOnStartEndsEverything(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	active := m.Add(obj, 1000).To("F64", 100)
	delayed := m.Add(obj, 1000).To("F32", 100).Delay(5000)
	other := m.Add(&mixedFields{}, 1000).To("F64", 1)

	m.Update(0.1)
	m.Add(obj, 1000).To("I", 10).Overwrite(OverwriteAllOnStart)
	m.Update(0.1)

	if !active.IsComplete() || !delayed.IsComplete() {
		t.Error("OverwriteAllOnStart should end all tweens of the target")
	}
	if other.IsComplete() {
		t.Error("tweens of other targets must not be affected")
	}
}

func TestOverwriteAllActsDuringDelay(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	victim := m.Add(obj, 1000).To("F64", 100)

	m.Add(obj, 1000).To("F32", 1).Delay(5000).Overwrite(OverwriteAll)
	m.Update(0.1) // killer still delaying, but OverwriteAll acts per tick

	if !victim.IsComplete() {
		t.Error("OverwriteAll should end other tweens even before its start")
	}
}

func TestOverwritePreexistingEndsOlderOnly(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	older := m.Add(obj, 1000).To("F64", 100)
	killer := m.Add(obj, 1000).To("F32", 1).Overwrite(OverwritePreexisting)
	newer := m.Add(obj, 1000).To("I", 10)

	m.Update(0.1)

	if !older.IsComplete() {
		t.Error("tween added before should be ended")
	}
	if newer.IsComplete() {
		t.Error("tween added after must survive")
	}
	if killer.overwrite != OverwriteNone {
		t.Error("one-shot policy should reset to OverwriteNone after firing")
	}
}

func TestCompactionRemovesOnlyFinishedTweens(t *testing.T) {
	m := NewManager()
	done := m.Add(&mixedFields{}, 1000).To("F64", 1)
	live := m.Add(&mixedFields{}, 1e9).To("F64", 1)

	done.End(false, false)

	// One compaction interval of accumulated time.
	for i := 0; i < 25; i++ {
		m.Update(0.1)
	}

	if len(m.tweens) != 1 {
		t.Fatalf("manager holds %d tweens after compaction, want 1", len(m.tweens))
	}
	if m.tweens[0] != live {
		t.Error("compaction removed the wrong tween")
	}
	if !done.IsDisposed() {
		t.Error("compacted tween should be disposed")
	}
	if live.IsComplete() || live.IsDisposed() {
		t.Error("live tween must survive compaction")
	}
}

func TestSpeedMultiplierScalesWallTime(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	m.SetSpeed(2)
	m.Add(obj, 1000).To("F64", 100)

	m.Update(0.25) // 250ms * 2 = 500ms
	if math.Abs(obj.F64-50) > 1e-3 {
		t.Errorf("F64 = %f with speed 2 after 250ms, want 50", obj.F64)
	}
}

func TestNonPositiveSpeedCoercedToOne(t *testing.T) {
	m := NewManager()
	m.SetSpeed(0)
	if m.Speed() != 1 {
		t.Errorf("Speed = %f after SetSpeed(0), want 1", m.Speed())
	}
	m.SetSpeed(-3)
	if m.Speed() != 1 {
		t.Errorf("Speed = %f after SetSpeed(-3), want 1", m.Speed())
	}
}

func TestManagerPauseFreezesAll(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	m.Add(obj, 1000).To("F64", 100)

	m.Pause()
	m.Update(0.5)
	if obj.F64 != 0 {
		t.Error("paused manager must not advance tweens")
	}
	m.Unpause()
	m.Update(0.5)
	if obj.F64 == 0 {
		t.Error("unpaused manager should advance tweens")
	}
}

func TestKillTweensOfSnapsMatchingTargetOnly(t *testing.T) {
	m := NewManager()
	a, b := &mixedFields{}, &mixedFields{}
	m.Add(a, 1000).To("F64", 100)
	m.Add(b, 1000).To("F64", 100)

	m.Update(0.1)
	m.KillTweensOf(a, true, false)

	if math.Abs(a.F64-100) > 1e-3 {
		t.Errorf("a.F64 = %f after kill with snap, want 100", a.F64)
	}
	if a.F64 == b.F64 {
		t.Error("tween of the other target must keep running")
	}
}

func TestKillAllTweensFiresCallbacksWhenAsked(t *testing.T) {
	m := NewManager()
	completed := 0
	m.Add(&mixedFields{}, 1000).To("F64", 1).OnComplete(func() { completed++ })
	m.Add(&mixedFields{}, 1000).To("F64", 1).OnComplete(func() { completed++ })

	m.KillAllTweens(false, true)
	if completed != 2 {
		t.Errorf("completion callbacks fired %d times, want 2", completed)
	}
	if m.Count() != 0 {
		t.Errorf("Count = %d after KillAllTweens, want 0", m.Count())
	}
}

func TestDisposeInsideCallbackAbortsIteration(t *testing.T) {
	m := NewManager()
	first := &mixedFields{}
	second := &mixedFields{}
	m.Add(first, 1000).To("F64", 100).OnUpdate(func() { m.Dispose() })
	m.Add(second, 1000).To("F64", 100)

	m.Update(0.1) // must not panic

	if !m.IsDisposed() {
		t.Fatal("manager should be disposed")
	}
	if second.F64 != 0 {
		t.Error("iteration should abort before the second tween updates")
	}
}

func TestManagerDisposeDisposesTweens(t *testing.T) {
	m := NewManager()
	tw := m.Add(&mixedFields{}, 1000).To("F64", 1)

	m.Dispose()
	if !tw.IsDisposed() {
		t.Error("disposing the manager should dispose its tweens")
	}
	m.Update(0.5) // no-op, must not panic
	m.Dispose()   // idempotent
}

func TestAddInsideCallbackIsPickedUp(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	m.Add(obj, 100).To("F64", 1).OnComplete(func() {
		m.Add(obj, 1000).To("F32", 5)
	})

	m.Update(0.1) // completes the first tween, callback adds another
	if m.Count() != 1 {
		t.Errorf("Count = %d after callback add, want 1", m.Count())
	}
}

func TestCountExcludesFinished(t *testing.T) {
	m := NewManager()
	done := m.Add(&mixedFields{}, 1000).To("F64", 1)
	m.Add(&mixedFields{}, 1000).To("F64", 1)

	done.End(false, false)
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestDefaultManagerIsReusedUntilDisposed(t *testing.T) {
	d1 := Default()
	d2 := Default()
	if d1 != d2 {
		t.Fatal("Default should return the same manager")
	}
	d1.Dispose()
	d3 := Default()
	if d3 == d1 {
		t.Error("Default should replace a disposed manager")
	}
}

func TestStepFrameDrivesFrameTweens(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	tw := m.AddFrames(obj, 3).To("F64", 3)

	m.StepFrame()
	m.StepFrame()
	if tw.IsComplete() {
		t.Fatal("frame tween should need exactly 3 frames")
	}
	m.StepFrame()
	if !tw.IsComplete() {
		t.Fatal("frame tween should complete on its 3rd frame")
	}
}

func TestManagerUpdateZeroAlloc(t *testing.T) {
	m := NewManager()
	obj := &mixedFields{}
	m.Add(obj, 1e9).To("F64", 100)

	// Warm up past the start transition.
	m.Update(0.001)

	result := testing.AllocsPerRun(100, func() {
		m.Update(0.001)
	})
	if result > 0 {
		t.Errorf("Manager.Update allocated %f times per run, want 0", result)
	}
}
