package events

import "github.com/atomicstack/taskdialog-control/internal/logging"

type NativeTracer struct{}

var Native = NativeTracer{}

func (NativeTracer) Send(msg string, handle uintptr) {
	logging.Trace("native.send", map[string]interface{}{"msg": msg, "handle": handle})
}

func (NativeTracer) Notification(code string, arg int) {
	logging.Trace("native.notification", map[string]interface{}{"code": code, "arg": arg})
}

func (NativeTracer) DroppedSend(msg string) {
	logging.Trace("native.dropped-send", map[string]interface{}{"msg": msg})
}
