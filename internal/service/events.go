package service

import "boxpoint-api/internal/ws"

// publish is a nil-safe shortcut so services run without a hub in tests
// and CLI tools.
func publish(p ws.Publisher, action string, id uint, message string) {
	if p == nil {
		return
	}
	p.Publish(ws.Event{Type: "catalog_update", Action: action, EntityID: id, Message: message})
}
