package sim

// TextRole identifies an on-screen text element the engine may update.
type TextRole uint8

const (
	// TextFPS is the frame-rate readout.
	TextFPS TextRole = iota
	// TextEntityCount is the live entity total.
	TextEntityCount
)

// DisplaySink receives text updates from the engine. The engine only
// calls Set when a value changes; implementations keep the last value
// for each role between updates.
type DisplaySink interface {
	Set(role TextRole, text string)
}
