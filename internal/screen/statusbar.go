package screen

// StatusProvider is an optional interface for screens that want to
// show progress or score in the header's right-hand slot.
type StatusProvider interface {
	HeaderStatus() string
}
