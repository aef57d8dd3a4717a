package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

func TestStoreStartsEmpty(t *testing.T) {
	s := New()
	if _, ok := s.Radio(); ok {
		t.Fatalf("expected no recorded radio selection")
	}
	if _, ok := s.Verification(); ok {
		t.Fatalf("expected no recorded verification state")
	}
	if _, ok := s.Expanded(); ok {
		t.Fatalf("expected no recorded expander state")
	}
	if s.Progress() != nil {
		t.Fatalf("expected no progress record before first use")
	}
	if _, ok := s.RealIcon(); ok {
		t.Fatalf("expected no recorded real icon")
	}
	if steps := s.Replay(func(native.Interaction) {}); steps != 0 {
		t.Fatalf("expected empty replay, got %d steps", steps)
	}
}

func TestStoreRecordsTouchedProperties(t *testing.T) {
	s := New()
	s.SetRadio(0)
	if radio, ok := s.Radio(); !ok || radio != 0 {
		t.Fatalf("expected recorded selection 0, got %d (touched=%t)", radio, ok)
	}
	s.SetVerification(false)
	if _, ok := s.Verification(); !ok {
		t.Fatalf("expected verification to count as touched even when false")
	}
	s.SetExpanded(true)
	if expanded, ok := s.Expanded(); !ok || !expanded {
		t.Fatalf("expected recorded expander state true")
	}
}

func TestEnsureProgressDefaultsToNormal(t *testing.T) {
	s := New()
	p := s.EnsureProgress()
	if p.State != native.ProgressNormal {
		t.Fatalf("expected normal state, got %d", p.State)
	}
	p.Pos = 10
	if s.EnsureProgress().Pos != 10 {
		t.Fatalf("expected EnsureProgress to return the same record")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := New()
	s.SetButtonEnabled(1, false)
	s.SetText(native.ElementContent, "before")
	s.EnsureProgress().Pos = 5

	snap := s.Snapshot()
	s.SetButtonEnabled(1, true)
	s.SetText(native.ElementContent, "after")
	s.EnsureProgress().Pos = 99

	if snap.ButtonEnabled[1] {
		t.Fatalf("snapshot button map mutated through the store")
	}
	if snap.Texts[native.ElementContent] != "before" {
		t.Fatalf("snapshot text mutated through the store: %q", snap.Texts[native.ElementContent])
	}
	if snap.Progress.Pos != 5 {
		t.Fatalf("snapshot progress mutated through the store: %d", snap.Progress.Pos)
	}
}

func TestComposeOverlaysRecordedState(t *testing.T) {
	s := New()
	s.SetVerification(true)
	s.SetExpanded(false)
	s.SetRadio(7)
	s.SetText(native.ElementContent, "updated content")
	s.SetText(native.ElementFooter, "updated footer")

	last := &native.Config{
		Flags:        native.FlagExpandedByDefault,
		Content:      "original content",
		Footer:       "original footer",
		DefaultRadio: 3,
		Radios:       []native.ButtonDef{{ID: 3, Text: "a"}, {ID: 7, Text: "b"}},
	}

	cfg := s.Compose(last, func(c *native.Config) {
		c.Title = "new title"
	})

	if cfg == last {
		t.Fatalf("expected Compose to clone, not mutate the last snapshot")
	}
	if cfg.Title != "new title" {
		t.Fatalf("expected delta applied, got title %q", cfg.Title)
	}
	if cfg.Flags&native.FlagVerificationChecked == 0 {
		t.Fatalf("expected verification flag set from recorded state")
	}
	if cfg.Flags&native.FlagExpandedByDefault != 0 {
		t.Fatalf("expected expander flag cleared from recorded state")
	}
	if cfg.DefaultRadio != 7 {
		t.Fatalf("expected recorded radio substituted as default, got %d", cfg.DefaultRadio)
	}
	if cfg.Content != "updated content" || cfg.Footer != "updated footer" {
		t.Fatalf("expected text overrides in config, got %q / %q", cfg.Content, cfg.Footer)
	}
	if last.Title != "" || last.DefaultRadio != 3 {
		t.Fatalf("last snapshot mutated: %+v", last)
	}
}

func TestComposeOverlayRunsAfterDelta(t *testing.T) {
	s := New()
	s.SetRadio(2)
	last := &native.Config{Radios: []native.ButtonDef{{ID: 1}, {ID: 2}}}

	cfg := s.Compose(last, func(c *native.Config) {
		c.DefaultRadio = 1
	})
	if cfg.DefaultRadio != 2 {
		t.Fatalf("expected recorded selection to win over the delta, got %d", cfg.DefaultRadio)
	}
}

func TestComposeClearedRadioSetsNoDefaultFlag(t *testing.T) {
	s := New()
	s.SetRadio(0)
	cfg := s.Compose(&native.Config{DefaultRadio: 4}, nil)
	if cfg.DefaultRadio != 0 {
		t.Fatalf("expected default radio cleared, got %d", cfg.DefaultRadio)
	}
	if cfg.Flags&native.FlagNoDefaultRadio == 0 {
		t.Fatalf("expected no-default-radio flag for cleared selection")
	}
}

func TestReplayOrderIsFixed(t *testing.T) {
	s := New()
	p := s.EnsureProgress()
	p.Min, p.Max, p.Pos, p.State = 0, 200, 40, native.ProgressPaused
	s.SetButtonEnabled(8, false)
	s.SetButtonEnabled(2, true)
	s.SetRadioEnabled(11, false)
	s.SetElevationRequired(8, true)
	s.SetText(native.ElementFooter, "f")
	s.SetText(native.ElementMainInstruction, "i")
	s.SetRealIcon(native.IconRef{ID: native.IconWarning})

	var sent []native.Interaction
	steps := s.Replay(func(in native.Interaction) { sent = append(sent, in) })

	want := []native.Message{
		native.MsgSetProgressRange,
		native.MsgSetProgressState,
		native.MsgSetProgressPos,
		native.MsgEnableButton, // id 2 before id 8
		native.MsgEnableButton,
		native.MsgEnableRadioButton,
		native.MsgSetElevationRequired,
		native.MsgUpdateElementText, // instruction before footer
		native.MsgUpdateElementText,
		native.MsgUpdateIcon,
	}
	if steps != len(want) || len(sent) != len(want) {
		t.Fatalf("expected %d steps, got %d (%d sent)", len(want), steps, len(sent))
	}
	for i, msg := range want {
		if sent[i].Msg != msg {
			t.Fatalf("step %d: expected %v, got %v", i, msg, sent[i].Msg)
		}
	}
	if sent[3].A != 2 || sent[4].A != 8 {
		t.Fatalf("expected button enablement in id order, got %d then %d", sent[3].A, sent[4].A)
	}
	if sent[7].Elem != native.ElementMainInstruction || sent[8].Elem != native.ElementFooter {
		t.Fatalf("expected instruction before footer, got %v then %v", sent[7].Elem, sent[8].Elem)
	}
	if sent[9].Icon.ID != native.IconWarning {
		t.Fatalf("expected real icon last, got %+v", sent[9].Icon)
	}
}

func TestReplayMarqueeSkipsRangeAndPosition(t *testing.T) {
	s := New()
	p := s.EnsureProgress()
	p.Marquee = true
	p.MarqueeSpeed = 30

	var sent []native.Interaction
	steps := s.Replay(func(in native.Interaction) { sent = append(sent, in) })
	if steps != 1 || len(sent) != 1 {
		t.Fatalf("expected a single marquee step, got %d", steps)
	}
	if sent[0].Msg != native.MsgSetMarquee || sent[0].A != 1 || sent[0].B != 30 {
		t.Fatalf("unexpected marquee interaction: %+v", sent[0])
	}
}

func TestSnapshotRoundTripThroughReplay(t *testing.T) {
	s := New()
	s.SetRadio(2)
	s.SetVerification(true)
	s.SetExpanded(true)
	s.SetButtonEnabled(1, false)
	s.SetText(native.ElementContent, "c")
	s.SetRealIcon(native.IconRef{ID: native.IconError})
	p := s.EnsureProgress()
	p.Min, p.Max, p.Pos = 0, 100, 42

	before := s.Snapshot()
	s.Replay(func(native.Interaction) {})
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("replay mutated the store:\nbefore %+v\nafter  %+v", before, after)
	}
}
