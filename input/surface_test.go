package input

import (
	"testing"

	"github.com/dshills/keytap/key"
)

func TestEmitter_AddHandlerValidation(t *testing.T) {
	em := NewEmitter()

	if _, err := em.AddHandler("", func(Event) {}); err != ErrInvalidEventType {
		t.Errorf("expected ErrInvalidEventType, got %v", err)
	}
	if _, err := em.AddHandler(EventKeyPressed, nil); err != ErrNilHandler {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
}

func TestEmitter_EmitOrder(t *testing.T) {
	em := NewEmitter()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		if _, err := em.AddHandler(EventKeyPressed, func(Event) { order = append(order, i) }); err != nil {
			t.Fatalf("AddHandler: %v", err)
		}
	}

	em.EmitPress(key.A)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected registration-order delivery, got %v", order)
	}
}

func TestEmitter_RemoveHandler(t *testing.T) {
	em := NewEmitter()

	calls := 0
	id, err := em.AddHandler(EventKeyPressed, func(Event) { calls++ })
	if err != nil {
		t.Fatalf("AddHandler: %v", err)
	}

	if err := em.RemoveHandler(EventKeyPressed, id); err != nil {
		t.Fatalf("RemoveHandler: %v", err)
	}
	em.EmitPress(key.A)
	if calls != 0 {
		t.Errorf("expected no delivery after removal, got %d", calls)
	}

	if err := em.RemoveHandler(EventKeyPressed, id); err != ErrHandlerNotFound {
		t.Errorf("expected ErrHandlerNotFound, got %v", err)
	}
	if err := em.RemoveHandler(EventKeyReleased, "missing"); err != ErrHandlerNotFound {
		t.Errorf("expected ErrHandlerNotFound for unknown type, got %v", err)
	}
}

func TestEmitter_EventTypesIndependent(t *testing.T) {
	em := NewEmitter()

	presses, releases := 0, 0
	if _, err := em.AddHandler(EventKeyPressed, func(Event) { presses++ }); err != nil {
		t.Fatalf("AddHandler: %v", err)
	}
	if _, err := em.AddHandler(EventKeyReleased, func(Event) { releases++ }); err != nil {
		t.Fatalf("AddHandler: %v", err)
	}

	em.EmitPress(key.A)
	em.EmitPress(key.B)
	em.EmitRelease(key.A)

	if presses != 2 || releases != 1 {
		t.Errorf("expected 2 presses and 1 release, got %d/%d", presses, releases)
	}
}

func TestEmitter_EventCarriesCode(t *testing.T) {
	em := NewEmitter()

	var got key.Code
	if _, err := em.AddHandler(EventKeyPressed, func(ev Event) { got = ev.Code() }); err != nil {
		t.Fatalf("AddHandler: %v", err)
	}

	em.EmitPress(key.F5)

	if got != key.F5 {
		t.Errorf("expected F5, got %v", got)
	}
}

func TestEmitter_HandlerMayDeregisterDuringDelivery(t *testing.T) {
	em := NewEmitter()

	var id HandlerID
	calls := 0
	id, err := em.AddHandler(EventKeyPressed, func(Event) {
		calls++
		_ = em.RemoveHandler(EventKeyPressed, id)
	})
	if err != nil {
		t.Fatalf("AddHandler: %v", err)
	}

	em.EmitPress(key.A)
	em.EmitPress(key.A)

	if calls != 1 {
		t.Errorf("expected self-removal after first delivery, got %d", calls)
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected default surface")
	}
	if Default() != Default() {
		t.Error("expected the same instance")
	}
}
