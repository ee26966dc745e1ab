package driver

import "time"

// Status is the state of one batch item.
type Status string

const (
	// StatusQueued indicates the item is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the item is being tokenized.
	StatusWorking Status = "working"
	// StatusDone indicates the item produced tokens.
	StatusDone Status = "done"
	// StatusError indicates the item failed to tokenize.
	StatusError Status = "error"
)

// Event reports progress of a batch item.
type Event struct {
	Item    string // BatchItem.Label
	Index   int
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. OnEvent is called from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events to a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

type nopSink struct{}

func (nopSink) OnEvent(Event) {}
