package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Rendering frames"}

	r.Start(2)
	r.Update(1, "frame 1")
	r.Update(2, "frame 2")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Rendering frames: 2 steps", "[1/2] frame 1", "[2/2] frame 2", "Rendering frames: done"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
