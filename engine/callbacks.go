package engine

// Callbacks are the caller-supplied hooks fired re-entrantly from Feed.
// Any of them may be nil.
type Callbacks struct {
	// OnData is invoked exactly once per ApplicationData record, with its
	// decrypted bytes, in arrival order, only while state == StateOpen.
	OnData func(data []byte)

	// OnHandshakeFinish fires exactly once per connection, the moment the
	// handshake reaches StateOpen.
	OnHandshakeFinish func()

	// OnChangeState fires on every state transition, including the final
	// one into StateClosed.
	OnChangeState func(prev, next State)

	// OnError fires once when a fatal alert is sent or received. Warning
	// alerts (close_notify, no_renegotiation) never invoke it.
	OnError func(code byte)
}

func (c Callbacks) fireData(data []byte) {
	if c.OnData != nil {
		c.OnData(data)
	}
}

func (c Callbacks) fireHandshakeFinish() {
	if c.OnHandshakeFinish != nil {
		c.OnHandshakeFinish()
	}
}

func (c Callbacks) fireChangeState(prev, next State) {
	if c.OnChangeState != nil {
		c.OnChangeState(prev, next)
	}
}

func (c Callbacks) fireError(code byte) {
	if c.OnError != nil {
		c.OnError(code)
	}
}
