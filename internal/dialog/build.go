package dialog

import "github.com/atomicstack/taskdialog-control/internal/native"

// BuildConfig converts the declarative spec into the native wire config.
// The conversion is pure: it validates ids, folds the boolean options
// into flag bits, and resolves icon references. An explicit icon handle
// always wins over an enumerated icon and forces the use-icon-handle
// flag on, because the two share a wire field.
func BuildConfig(spec *Spec) (*native.Config, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cfg := &native.Config{
		CommonButtons:        spec.CommonButtons,
		Title:                spec.Title,
		Instruction:          spec.Instruction,
		Content:              spec.Content,
		Footer:               spec.Footer,
		VerificationText:     spec.VerificationText,
		ExpandedInfo:         spec.ExpandedInfo,
		ExpandedControlText:  spec.ExpandedControlText,
		CollapsedControlText: spec.CollapsedControlText,
		Buttons:              append([]native.ButtonDef(nil), spec.Buttons...),
		Radios:               append([]native.ButtonDef(nil), spec.Radios...),
		DefaultButton:        spec.DefaultButton,
		DefaultRadio:         spec.DefaultRadio,
		Width:                spec.Width,
	}

	cfg.Flags = buildFlags(spec)
	cfg.MainIcon = resolveIcon(spec.MainIcon, &cfg.Flags, native.FlagUseIconHandle)
	cfg.FooterIcon = resolveIcon(spec.FooterIcon, &cfg.Flags, native.FlagUseFooterIconHandle)

	return cfg, nil
}

func buildFlags(spec *Spec) native.Flags {
	var flags native.Flags
	set := func(on bool, bit native.Flags) {
		if on {
			flags |= bit
		}
	}
	set(spec.EnableHyperlinks, native.FlagEnableHyperlinks)
	set(spec.AllowCancel, native.FlagAllowCancel)
	set(spec.CommandLinks, native.FlagCommandLinks)
	set(spec.CommandLinksNoIcon, native.FlagCommandLinksNoIcon)
	set(spec.ExpandedByDefault, native.FlagExpandedByDefault)
	set(spec.VerificationChecked, native.FlagVerificationChecked)
	set(spec.ShowProgressBar, native.FlagShowProgressBar)
	set(spec.MarqueeProgressBar, native.FlagShowMarqueeProgress)
	set(spec.CallbackTimer, native.FlagCallbackTimer)
	set(spec.NoDefaultRadio, native.FlagNoDefaultRadio)
	set(spec.CanBeMinimized, native.FlagCanBeMinimized)
	set(spec.RTLLayout, native.FlagRTLLayout)
	set(spec.SizeToContent, native.FlagSizeToContent)
	return flags
}

func resolveIcon(ref native.IconRef, flags *native.Flags, handleBit native.Flags) native.IconRef {
	if ref.Handle != 0 {
		*flags |= handleBit
		return native.IconRef{Handle: ref.Handle}
	}
	return native.IconRef{ID: ref.ID}
}
