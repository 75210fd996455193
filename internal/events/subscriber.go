package events

// Message is one raw notification as seen on the bus.
type Message struct {
	Topic string
	Data  []byte
}

// Subscriber receives mutation notifications from the event bus.
type Subscriber interface {
	// Subscribe delivers notifications on the returned channel.
	// Call the returned cancel function to unsubscribe and close the channel.
	Subscribe(topic string) (<-chan Message, func(), error)
	Close() error
}
