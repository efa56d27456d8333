package notify

import "testing"

func TestHubDrainDeliversOnce(t *testing.T) {
	h := NewHub(nil, 0)
	h.Notify(Success("saved"))
	h.Notify(Warning("check email"))

	first := h.Drain()
	if len(first) != 2 {
		t.Fatalf("drain = %d notifications, want 2", len(first))
	}
	if first[0].Kind != KindSuccess || first[1].Kind != KindWarning {
		t.Fatalf("order = %v %v, want success then warning", first[0].Kind, first[1].Kind)
	}

	if second := h.Drain(); len(second) != 0 {
		t.Fatalf("second drain = %d, want 0", len(second))
	}
}

func TestHubBoundsPending(t *testing.T) {
	h := NewHub(nil, 3)
	for i := 0; i < 10; i++ {
		h.Notify(Success("n"))
	}

	if got := len(h.Drain()); got != 3 {
		t.Fatalf("pending = %d, want capped at 3", got)
	}
}

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify(Notification) { c.n++ }

func TestHubForwardsToInner(t *testing.T) {
	inner := &countingNotifier{}
	h := NewHub(inner, 0)

	h.Notify(Destructive("boom"))
	h.Notify(Success("ok"))

	if inner.n != 2 {
		t.Fatalf("inner saw %d, want 2", inner.n)
	}
}
