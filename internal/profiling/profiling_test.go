package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	defer Reset()

	for i := 0; i < 3; i++ {
		stop := Track("seed.Derive")
		time.Sleep(time.Millisecond)
		stop()
	}
	s := Snapshot()["seed.Derive"]
	if s.Calls != 3 {
		t.Errorf("Expected 3 calls, got %d", s.Calls)
	}
	if s.Total < 3*time.Millisecond {
		t.Errorf("Expected at least 3ms total, got %v", s.Total)
	}
}

func TestSumWithPrefix(t *testing.T) {
	Reset()
	defer Reset()

	Track("scene.BuildRender")()
	Track("scene.Validate")()
	Track("palette.Chain")()
	if got, want := SumWithPrefix("scene."), Snapshot()["scene.BuildRender"].Total+Snapshot()["scene.Validate"].Total; got != want {
		t.Errorf("SumWithPrefix = %v, want %v", got, want)
	}
}

func TestTopN(t *testing.T) {
	Reset()
	defer Reset()

	stop := Track("slow")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("fast")()

	out := TopN(1)
	if !strings.HasPrefix(out, "slow:") || strings.Contains(out, "fast") {
		t.Errorf("TopN(1) = %q", out)
	}
	if got := strings.Count(TopN(10), ","); got != 1 {
		t.Errorf("TopN(10) should list both stages, got %q", TopN(10))
	}
}
