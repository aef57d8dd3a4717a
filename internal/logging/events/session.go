package events

import "github.com/atomicstack/taskdialog-control/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Open(title string, buttons, radios int) {
	logging.Trace("session.open", map[string]interface{}{
		"title":   title,
		"buttons": buttons,
		"radios":  radios,
	})
}

func (SessionTracer) Created(handle uintptr) {
	logging.Trace("session.created", map[string]interface{}{"handle": handle})
}

func (SessionTracer) Unavailable(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.unavailable", map[string]interface{}{"error": err.Error()})
}

func (SessionTracer) SuppressedClose(button int) {
	logging.Trace("session.suppress-close", map[string]interface{}{"button": button})
}

func (SessionTracer) Result(button, radio int, verification bool) {
	logging.Trace("session.result", map[string]interface{}{
		"button":       button,
		"radio":        radio,
		"verification": verification,
	})
}

func (SessionTracer) Destroyed() {
	logging.Trace("session.destroyed", nil)
}
