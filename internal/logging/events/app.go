package events

import "github.com/atomicstack/taskdialog-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) BackendSelected(name string) {
	logging.Trace("app.backend", map[string]interface{}{"backend": name})
}
