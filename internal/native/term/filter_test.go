package term

import (
	"testing"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

var filterDefs = []native.ButtonDef{
	{ID: 1, Text: "Install updates now"},
	{ID: 2, Text: "Remind me later"},
	{ID: 3, Text: "Skip this version"},
	{ID: 4, Text: "Open release notes"},
}

func TestFilterButtonsEmptyQueryMatchesAll(t *testing.T) {
	got := filterButtons(filterDefs, "   ")
	if len(got) != len(filterDefs) {
		t.Fatalf("expected all %d buttons, got %d", len(filterDefs), len(got))
	}
}

func TestFilterButtonsKeepsCallerOrder(t *testing.T) {
	got := filterButtons(filterDefs, "in")
	if len(got) < 2 {
		t.Fatalf("expected multiple matches for %q, got %v", "in", got)
	}
	lastIdx := -1
	for _, def := range got {
		idx := -1
		for i, src := range filterDefs {
			if src.ID == def.ID {
				idx = i
			}
		}
		if idx <= lastIdx {
			t.Fatalf("matches out of caller order: %v", got)
		}
		lastIdx = idx
	}
}

func TestFilterButtonsSubstringFallback(t *testing.T) {
	got := filterButtons(filterDefs, "version")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected the version button, got %v", got)
	}
}

func TestBestButtonMatchPrefersExactThenPrefix(t *testing.T) {
	defs := []native.ButtonDef{
		{ID: 1, Text: "Retry"},
		{ID: 2, Text: "Retry all"},
	}
	if idx := bestButtonMatch(defs, "retry"); idx != 0 {
		t.Fatalf("expected exact match at 0, got %d", idx)
	}
	if idx := bestButtonMatch(defs, "retry a"); idx != 1 {
		t.Fatalf("expected prefix match at 1, got %d", idx)
	}
}

func TestBestButtonMatchEmptyQueryPicksFirst(t *testing.T) {
	if idx := bestButtonMatch(filterDefs, ""); idx != 0 {
		t.Fatalf("expected index 0 for empty query, got %d", idx)
	}
	if idx := bestButtonMatch(nil, ""); idx != -1 {
		t.Fatalf("expected -1 for empty list, got %d", idx)
	}
}

func TestBestButtonMatchNoMatch(t *testing.T) {
	if idx := bestButtonMatch(filterDefs, "zzzz"); idx != -1 {
		t.Fatalf("expected -1 for unmatched query, got %d", idx)
	}
}
