package calllog

import (
	"reflect"
	"testing"
)

func TestCloseMatches_Cutoff(t *testing.T) {
	candidates := []string{"+18165551234", "+18165559999", "+19995550000"}

	got := closeMatches("+1816555", candidates, 3, defaultCutoff)

	want := []string{"+18165551234", "+18165559999"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("closeMatches() = %v, want %v", got, want)
	}
}

func TestCloseMatches_BestFirst(t *testing.T) {
	candidates := []string{"apble", "apple sauce", "apple"}

	got := closeMatches("apple", candidates, 3, defaultCutoff)

	if len(got) == 0 || got[0] != "apple" {
		t.Errorf("closeMatches() = %v, want exact match first", got)
	}
}

func TestCloseMatches_LimitsValues(t *testing.T) {
	candidates := []string{"log-a", "log-b", "log-c", "log-d"}

	got := closeMatches("log-", candidates, 2, defaultCutoff)
	if len(got) != 2 {
		t.Errorf("closeMatches() returned %d values, want 2", len(got))
	}
}

func TestCloseMatches_TieKeepsFirstObserved(t *testing.T) {
	// Equally similar candidates keep their input order.
	candidates := []string{"call-x1", "call-x2"}

	got := closeMatches("call-x", candidates, 1, defaultCutoff)
	if !reflect.DeepEqual(got, []string{"call-x1"}) {
		t.Errorf("closeMatches() = %v, want first-observed tie winner", got)
	}
}

func TestCloseMatches_ZeroN(t *testing.T) {
	if got := closeMatches("x", []string{"x"}, 0, defaultCutoff); got != nil {
		t.Errorf("closeMatches(n=0) = %v, want nil", got)
	}
}
