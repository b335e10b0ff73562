package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.6
)

// Wall Sound
const (
	WallSoundDuration = 80 * time.Millisecond
	WallSoundAttack   = 5 * time.Millisecond
	WallSoundRelease  = 20 * time.Millisecond
)

// Correct Sound
const (
	CorrectSoundNote1Duration = 80 * time.Millisecond
	CorrectSoundNote2Duration = 280 * time.Millisecond
	CorrectSoundAttack        = 5 * time.Millisecond
	CorrectSoundNote1Release  = 40 * time.Millisecond
	CorrectSoundNote2Release  = 200 * time.Millisecond
)

// Incorrect Sound
const (
	IncorrectSoundNoteDuration = 120 * time.Millisecond
	IncorrectSoundAttack       = 5 * time.Millisecond
	IncorrectSoundRelease      = 60 * time.Millisecond
)

// Win Sound
const (
	WinSoundNoteDuration = 150 * time.Millisecond
	WinSoundFinalDuration = 600 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundRelease       = 100 * time.Millisecond
	WinSoundFinalRelease  = 500 * time.Millisecond
)
