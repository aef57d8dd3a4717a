// Package dialog is the session engine over the native task-dialog
// subsystem. The subsystem only offers a one-shot blocking open call and
// an asynchronous message channel to the live window; it cannot be asked
// for its current state. The Session type therefore tracks every
// caller- and user-driven change in a preservation store
// (internal/dialog/state) and replays it deterministically whenever a
// property change forces a full page rebuild.
//
// Flow:
//   - A caller fills in a Spec and calls Session.Open, which builds the
//     wire config, hands it to the backend, and blocks for the whole
//     session lifetime.
//   - Native notifications arrive synchronously on the opening thread
//     and are dispatched as typed events to the caller's Handlers; the
//     dispatcher also keeps the preservation store in sync with user
//     actions (radio clicks, verification toggles, expander toggles).
//   - Interaction methods (progress, enablement, elevation, text, icon)
//     record into the store and forward to the live window. With no live
//     session every interaction is a silent no-op: races against an
//     asynchronously closing window are expected, never errors.
//   - Property changes that need a rebuild go through Navigate, which
//     composes last-snapshot + delta + preserved state, sends one
//     navigate message, and replays the store in a fixed order once the
//     Navigated notification arrives.
//
// The colored title bar has no first-class native concept; bar.go fakes
// it by mapping bar colors onto the fixed shield icon identifiers and
// swapping the caller's real icon back in after each rebuild settles.
package dialog
