package term

import (
	"testing"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

func TestNewPageResolvesDefaultRadio(t *testing.T) {
	cfg := &native.Config{
		Radios: []native.ButtonDef{{ID: 5, Text: "a"}, {ID: 6, Text: "b"}},
	}
	if p := newPage(cfg); p.radio != 5 {
		t.Fatalf("expected first radio as implicit default, got %d", p.radio)
	}

	cfg.DefaultRadio = 6
	if p := newPage(cfg); p.radio != 6 {
		t.Fatalf("expected declared default radio, got %d", p.radio)
	}

	cfg.Flags = native.FlagNoDefaultRadio
	if p := newPage(cfg); p.radio != 0 {
		t.Fatalf("expected no selection with the no-default flag, got %d", p.radio)
	}
}

func TestNewPageDerivesStateFromFlags(t *testing.T) {
	p := newPage(&native.Config{
		Flags: native.FlagVerificationChecked | native.FlagExpandedByDefault | native.FlagShowMarqueeProgress,
	})
	if !p.verification || !p.expanded {
		t.Fatalf("expected verification and expander on from flags")
	}
	if !p.showProgress || !p.marquee {
		t.Fatalf("expected a marquee progress bar from flags")
	}
}

func TestPageBarIconFixedAtConstruction(t *testing.T) {
	p := newPage(&native.Config{MainIcon: native.IconRef{ID: native.IconShieldBlue}})
	if p.barIcon != native.IconShieldBlue {
		t.Fatalf("expected bar icon from the construction config, got %d", p.barIcon)
	}

	p.apply(native.Interaction{Msg: native.MsgUpdateIcon, Icon: native.IconRef{ID: native.IconWarning}})
	if p.barIcon != native.IconShieldBlue {
		t.Fatalf("icon update must not recolor the bar, got %d", p.barIcon)
	}
	if p.icon.ID != native.IconWarning {
		t.Fatalf("expected the visible icon updated, got %+v", p.icon)
	}
}

func TestPageApplyClassifiesInteractions(t *testing.T) {
	p := newPage(&native.Config{})
	cases := []struct {
		in   native.Interaction
		want applied
	}{
		{native.Interaction{Msg: native.MsgEnableButton, A: 1, B: 1}, appliedState},
		{native.Interaction{Msg: native.MsgSetProgressPos, A: 10}, appliedState},
		{native.Interaction{Msg: native.MsgClickButton, A: 1}, appliedClickButton},
		{native.Interaction{Msg: native.MsgClickRadioButton, A: 1}, appliedClickRadio},
		{native.Interaction{Msg: native.MsgClickVerification, A: 1}, appliedClickVerification},
		{native.Interaction{Msg: native.MsgNavigate}, appliedNavigate},
	}
	for _, tc := range cases {
		if got := p.apply(tc.in); got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.in.Msg, tc.want, got)
		}
	}
}

func TestPageTextPrefersOverrides(t *testing.T) {
	p := newPage(&native.Config{Content: "original"})
	if got := p.text(native.ElementContent); got != "original" {
		t.Fatalf("expected config text, got %q", got)
	}
	p.apply(native.Interaction{Msg: native.MsgUpdateElementText, Elem: native.ElementContent, Text: "override"})
	if got := p.text(native.ElementContent); got != "override" {
		t.Fatalf("expected override, got %q", got)
	}
}

func TestPageButtonsKeepCallerOrderThenCommon(t *testing.T) {
	p := newPage(&native.Config{
		Buttons:       []native.ButtonDef{{ID: 20, Text: "b"}, {ID: 10, Text: "a"}},
		CommonButtons: native.ButtonOK | native.ButtonCancel,
	})
	entries := p.buttons()
	wantIDs := []int{20, 10, native.IDOK, native.IDCancel}
	if len(entries) != len(wantIDs) {
		t.Fatalf("expected %d buttons, got %d", len(wantIDs), len(entries))
	}
	for i, id := range wantIDs {
		if entries[i].id != id {
			t.Fatalf("button %d: expected id %d, got %d", i, id, entries[i].id)
		}
	}
	if entries[0].common || !entries[2].common {
		t.Fatalf("expected custom buttons before common ones")
	}
}

func TestPageEnablementDefaultsToEnabled(t *testing.T) {
	p := newPage(&native.Config{})
	if !p.buttonIsEnabled(1) || !p.radioIsEnabled(1) {
		t.Fatalf("expected untouched controls enabled")
	}
	p.apply(native.Interaction{Msg: native.MsgEnableButton, A: 1, B: 0})
	if p.buttonIsEnabled(1) {
		t.Fatalf("expected button disabled after interaction")
	}
	p.apply(native.Interaction{Msg: native.MsgEnableButton, A: 1, B: 1})
	if !p.buttonIsEnabled(1) {
		t.Fatalf("expected button re-enabled")
	}
}

func TestPagePositionUpdateLeavesMarquee(t *testing.T) {
	p := newPage(&native.Config{Flags: native.FlagShowMarqueeProgress})
	if !p.marquee {
		t.Fatalf("expected marquee from flags")
	}
	p.apply(native.Interaction{Msg: native.MsgSetProgressPos, A: 30})
	if p.marquee {
		t.Fatalf("expected a position update to leave marquee mode")
	}
	if p.progressPos != 30 {
		t.Fatalf("expected position 30, got %d", p.progressPos)
	}
}
