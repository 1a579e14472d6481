package event

import "testing"

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Subscribe(CoinCollected, ListenerFunc(func(e Event) { calls = append(calls, "first") }))
	d.Subscribe(CoinCollected, ListenerFunc(func(e Event) { calls = append(calls, "second") }))
	d.Subscribe(GameWon, ListenerFunc(func(e Event) { calls = append(calls, "other") }))

	d.Dispatch(Event{Type: CoinCollected, Data: 10})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v", calls)
	}
}

func TestDispatchPassesData(t *testing.T) {
	d := NewDispatcher()
	var got WaveData
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = e.Data.(WaveData) }))

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Number: 2, Total: 10, Count: 10}})

	if got.Number != 2 || got.Count != 10 {
		t.Errorf("data = %+v", got)
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameLost})
}
