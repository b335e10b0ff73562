package render

// HUD is the text overlay drawn beside the board
type HUD struct {
	Moves uint32
	State string
}

// Frame is everything a presenter needs for one screen update
type Frame struct {
	Batches []DrawBatch
	HUD     HUD
}

// Presenter submits batched draws to an output device
type Presenter interface {
	Present(frame Frame) error
}

// RecordingPresenter keeps every presented frame; used by headless runs and tests
type RecordingPresenter struct {
	Frames []Frame
}

// Present stores a copy of frame
func (r *RecordingPresenter) Present(frame Frame) error {
	batches := make([]DrawBatch, len(frame.Batches))
	copy(batches, frame.Batches)
	frame.Batches = batches
	r.Frames = append(r.Frames, frame)
	return nil
}

// Last returns the most recent frame, false if none
func (r *RecordingPresenter) Last() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}
