package channels

// CloseIgnorePanic closes a channel like normal.
// However, if the channel has already been closed,
// it will suppress the resulting panic.
func CloseIgnorePanic[T any](ch chan<- T) {
	if ch == nil {
		return
	}

	defer func() {
		// Recover from panic if the channel is already closed
		_ = recover()
	}()

	close(ch)
}

// Infinite creates a channel with infinite buffering.
// It returns a send-only channel and a receive-only channel.
// The send-only channel can be used to send values without blocking.
// The receive-only channel yields values in the order they were sent.
// Closing the send side drains the queue and then closes the receive side.
//
// Note: use with caution, the internal queue grows without bound if the
// sender outpaces the receiver in a long-running process.
func Infinite[A any]() (chan<- A, <-chan A) {
	inputCh := make(chan A)
	outputCh := make(chan A)

	go func() {
		var queue []A

		// outCh returns the output channel only when there's data to send.
		// Returns nil when the queue is empty to disable that select case.
		outCh := func() chan A {
			if len(queue) == 0 {
				return nil
			}

			return outputCh
		}

		curVal := func() A {
			if len(queue) == 0 {
				var zero A

				return zero
			}

			return queue[0]
		}

		for len(queue) > 0 || inputCh != nil {
			select {
			case v, ok := <-inputCh:
				if !ok {
					// Input closed, set to nil to disable this case
					inputCh = nil
				} else {
					queue = append(queue, v)
				}
			case outCh() <- curVal():
				queue = queue[1:]
			}
		}

		close(outputCh)
	}()

	return inputCh, outputCh
}
