package dialog

import (
	"strings"
	"testing"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

func TestBuildConfigPreservesButtonOrder(t *testing.T) {
	spec := &Spec{
		Buttons: []native.ButtonDef{{ID: 30, Text: "c"}, {ID: 10, Text: "a"}, {ID: 20, Text: "b"}},
		Radios:  []native.ButtonDef{{ID: 2, Text: "y"}, {ID: 1, Text: "x"}},
	}
	cfg, err := BuildConfig(spec)
	if err != nil {
		t.Fatalf("BuildConfig failed: %v", err)
	}
	for i, want := range []int{30, 10, 20} {
		if cfg.Buttons[i].ID != want {
			t.Fatalf("button %d: expected id %d, got %d", i, want, cfg.Buttons[i].ID)
		}
	}
	for i, want := range []int{2, 1} {
		if cfg.Radios[i].ID != want {
			t.Fatalf("radio %d: expected id %d, got %d", i, want, cfg.Radios[i].ID)
		}
	}
}

func TestBuildConfigCopiesDefinitionSlices(t *testing.T) {
	buttons := []native.ButtonDef{{ID: 1, Text: "a"}}
	cfg, err := BuildConfig(&Spec{Buttons: buttons})
	if err != nil {
		t.Fatalf("BuildConfig failed: %v", err)
	}
	buttons[0].Text = "changed"
	if cfg.Buttons[0].Text != "a" {
		t.Fatalf("config shares the caller's button slice")
	}
}

func TestBuildConfigRejectsReservedAndDuplicateIDs(t *testing.T) {
	if _, err := BuildConfig(&Spec{Buttons: []native.ButtonDef{{ID: 0, Text: "zero"}}}); err == nil {
		t.Fatalf("expected error for reserved button id 0")
	} else if !strings.Contains(err.Error(), "reserved") {
		t.Fatalf("unexpected error for id 0: %v", err)
	}
	if _, err := BuildConfig(&Spec{Radios: []native.ButtonDef{{ID: 3}, {ID: 3}}}); err == nil {
		t.Fatalf("expected error for duplicate radio id")
	} else if !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("unexpected error for duplicate id: %v", err)
	}
}

func TestBuildConfigFoldsOptionsIntoFlags(t *testing.T) {
	cfg, err := BuildConfig(&Spec{
		AllowCancel:         true,
		CommandLinks:        true,
		VerificationChecked: true,
		ShowProgressBar:     true,
		CallbackTimer:       true,
		NoDefaultRadio:      true,
	})
	if err != nil {
		t.Fatalf("BuildConfig failed: %v", err)
	}
	for _, bit := range []native.Flags{
		native.FlagAllowCancel,
		native.FlagCommandLinks,
		native.FlagVerificationChecked,
		native.FlagShowProgressBar,
		native.FlagCallbackTimer,
		native.FlagNoDefaultRadio,
	} {
		if cfg.Flags&bit == 0 {
			t.Fatalf("expected flag bit %#x set, flags %#x", bit, cfg.Flags)
		}
	}
	if cfg.Flags&native.FlagShowMarqueeProgress != 0 {
		t.Fatalf("unexpected marquee flag, flags %#x", cfg.Flags)
	}
}

func TestBuildConfigIconHandleOverridesIdentifier(t *testing.T) {
	cfg, err := BuildConfig(&Spec{
		MainIcon:   native.IconRef{ID: native.IconWarning, Handle: 0xbeef},
		FooterIcon: native.IconRef{ID: native.IconInformation},
	})
	if err != nil {
		t.Fatalf("BuildConfig failed: %v", err)
	}
	if cfg.MainIcon.Handle != 0xbeef || cfg.MainIcon.ID != 0 {
		t.Fatalf("expected handle to win over identifier, got %+v", cfg.MainIcon)
	}
	if cfg.Flags&native.FlagUseIconHandle == 0 {
		t.Fatalf("expected use-icon-handle flag forced on")
	}
	if cfg.Flags&native.FlagUseFooterIconHandle != 0 {
		t.Fatalf("footer icon has no handle, flag must stay off")
	}
	if cfg.FooterIcon.ID != native.IconInformation {
		t.Fatalf("expected footer identifier preserved, got %+v", cfg.FooterIcon)
	}
}
