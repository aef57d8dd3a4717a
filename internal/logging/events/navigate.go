package events

import "github.com/atomicstack/taskdialog-control/internal/logging"

type NavigateTracer struct{}

var Navigate = NavigateTracer{}

func (NavigateTracer) Begin(reason string) {
	logging.Trace("navigate.begin", map[string]interface{}{"reason": reason})
}

func (NavigateTracer) Replayed(steps int) {
	logging.Trace("navigate.replayed", map[string]interface{}{"steps": steps})
}

func (NavigateTracer) BarColor(from, to string) {
	logging.Trace("navigate.bar-color", map[string]interface{}{"from": from, "to": to})
}
