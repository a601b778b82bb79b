package ephemeris

import (
	"strings"
	"testing"
	"time"
)

func TestWriteSummaryTable(t *testing.T) {
	eng := NewEngine()
	var sb strings.Builder

	WriteSummaryTable(&sb, eng, time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	out := sb.String()

	for _, b := range Bodies {
		if !strings.Contains(out, b.Name()) {
			t.Errorf("summary missing %s", b.Name())
		}
	}

	// The Moon has no heliocentric orbit and shows dashes
	moonDashed := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Moon") && strings.Contains(line, "-") {
			moonDashed = true
		}
	}
	if !moonDashed {
		t.Errorf("summary should dash out the Moon's columns:\n%s", out)
	}

	if !strings.Contains(out, "AU") {
		t.Error("summary missing distance units")
	}
}
