// Package history defines the historical-state accessor read by the
// trip-window filter, plus Memory, an in-memory reference store.
//
// A store exposes an ordered list of recorded frame indices and, for a frame
// and a feature name, one value per node. Frames other than the most recent
// are immutable; the most recent frame may still be written by the
// simulation, which is why consumers must re-read it on every call.
//
// Memory enforces that contract: Record appends a new frame or overwrites
// the latest one, and rejects writes into older frames with ErrFrameOrder.
package history
