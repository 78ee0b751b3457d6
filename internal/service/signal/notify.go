package service_signal

// Notify is the typed facade the usecases publish through. Each method
// is fire-and-forget, see Bus.Publish.
type Notify struct {
	bus *Bus
}

func NewNotify(bus *Bus) *Notify {
	return &Notify{bus: bus}
}

func (n *Notify) AuthRequired() {
	n.bus.Publish(Signal{Kind: KindAuthRequired})
}

func (n *Notify) FeedReady(generation uint64) {
	n.bus.Publish(Signal{Kind: KindFeedReady, Payload: generation})
}

func (n *Notify) FeedFailed(reason string) {
	n.bus.Publish(Signal{Kind: KindFeedFailed, Payload: reason})
}

func (n *Notify) HeroChanged(index int) {
	n.bus.Publish(Signal{Kind: KindHeroChanged, Payload: index})
}
