package measure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollectorSnapshotAndReset(t *testing.T) {
	var c Collector
	c.Add(Record{SignMS: 1.5, CoreAttempts: 1, EncodeAttempts: 1, HInf: 2})
	c.Add(Record{SignMS: 2.5, CoreAttempts: 2, EncodeAttempts: 1, HInf: 3})

	got := c.SnapshotAndReset()
	if len(got) != 2 {
		t.Fatalf("snapshot length %d, want 2", len(got))
	}
	if len(c.Snapshot()) != 0 {
		t.Fatal("collector not cleared by SnapshotAndReset")
	}
}

func TestSummarize(t *testing.T) {
	recs := []Record{
		{SignMS: 1, CoreAttempts: 1, EncodeAttempts: 1, HInf: 1, ZInf: 10},
		{SignMS: 3, CoreAttempts: 2, EncodeAttempts: 2, HInf: 4, ZInf: 20},
	}
	s := Summarize(recs)
	if s.Calls != 2 || s.MeanMS != 2 || s.MaxMS != 3 {
		t.Fatalf("latency summary wrong: %+v", s)
	}
	if s.MaxAttempts != 4 || s.MeanAttempts != 2.5 {
		t.Fatalf("attempt summary wrong: %+v", s)
	}
	if s.MaxHInf != 4 || s.MaxZInf != 20 {
		t.Fatalf("norm summary wrong: %+v", s)
	}
}

func TestRenderHTML(t *testing.T) {
	recs := []Record{
		{SignMS: 1.2, CoreAttempts: 1, EncodeAttempts: 1, HInf: 1},
		{SignMS: 0.9, CoreAttempts: 1, EncodeAttempts: 2, HInf: 3},
	}
	path := filepath.Join(t.TempDir(), "telemetry.html")
	if err := RenderHTML(path, recs); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rendered page: %v", err)
	}
	if !strings.Contains(string(b), "Sign latency") {
		t.Fatal("rendered page is missing the latency chart")
	}

	if err := RenderHTML(filepath.Join(t.TempDir(), "x.html"), nil); err == nil {
		t.Fatal("empty record set must not render")
	}
}
