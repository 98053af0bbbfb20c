package autoscroll

// FrameRequest identifies a scheduled frame callback. Zero means no frame
// is scheduled.
type FrameRequest uint64

// FrameScheduler schedules a callback to run on the next display-aligned
// frame. Schedule returns a handle that Cancel can use to drop the callback
// before it runs; cancelling an already-run or unknown handle is a no-op.
// Implementations are cooperative and single-threaded: scheduled callbacks
// run on the same goroutine that drives the controller.
type FrameScheduler interface {
	Schedule(step func()) FrameRequest
	Cancel(req FrameRequest)
}
