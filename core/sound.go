package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundWall      SoundType = iota // Push into an immovable
	SoundCorrect                    // Box placed on a spot of its colour
	SoundIncorrect                  // Box placed on a spot of another colour
	SoundWin                        // All spots covered
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundWall:      "wall",
	SoundCorrect:   "correct",
	SoundIncorrect: "incorrect",
	SoundWin:       "win",
}

func (s SoundType) String() string {
	if s >= 0 && s < SoundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}
