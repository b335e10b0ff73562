package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/boxpusher/core"
	"github.com/lixenwraith/boxpusher/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// CreateWallSound generates a short harsh buzz for a blocked push
func CreateWallSound(rate beep.SampleRate) beep.Streamer {
	return tone(100.0, WaveSaw, parameter.WallSoundDuration,
		parameter.WallSoundAttack, parameter.WallSoundRelease, rate)
}

// CreateCorrectSound generates a rising two-note chime
func CreateCorrectSound(rate beep.SampleRate) beep.Streamer {
	// B5 then E6
	return beep.Seq(
		tone(987.77, WaveSquare, parameter.CorrectSoundNote1Duration,
			parameter.CorrectSoundAttack, parameter.CorrectSoundNote1Release, rate),
		tone(1318.51, WaveSquare, parameter.CorrectSoundNote2Duration,
			parameter.CorrectSoundAttack, parameter.CorrectSoundNote2Release, rate),
	)
}

// CreateIncorrectSound generates a falling two-note thud
func CreateIncorrectSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.IncorrectSoundNoteDuration
	return beep.Seq(
		tone(311.13, WaveSquare, d, parameter.IncorrectSoundAttack, parameter.IncorrectSoundRelease, rate),
		tone(233.08, WaveSquare, d, parameter.IncorrectSoundAttack, parameter.IncorrectSoundRelease, rate),
	)
}

// CreateWinSound generates a major arpeggio ending on a bell with an octave overtone
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.WinSoundNoteDuration
	final := parameter.WinSoundFinalDuration

	bell := beep.Mix(
		newVolume(tone(1046.50, WaveSine, final, parameter.WinSoundAttack, parameter.WinSoundFinalRelease, rate), 0.7),
		newVolume(tone(2093.00, WaveSine, final, parameter.WinSoundAttack, parameter.WinSoundRelease, rate), 0.3),
	)

	return beep.Seq(
		tone(523.25, WaveSine, d, parameter.WinSoundAttack, parameter.WinSoundRelease, rate),
		tone(659.25, WaveSine, d, parameter.WinSoundAttack, parameter.WinSoundRelease, rate),
		tone(783.99, WaveSine, d, parameter.WinSoundAttack, parameter.WinSoundRelease, rate),
		// Mix streams forever; bound it to the bell length
		beep.Take(rate.N(final), bell),
	)
}

// GetSoundEffect returns the cue streamer for st scaled by volume, nil for unknown types
func GetSoundEffect(st core.SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch st {
	case core.SoundWall:
		s = CreateWallSound(rate)
	case core.SoundCorrect:
		s = CreateCorrectSound(rate)
	case core.SoundIncorrect:
		s = CreateIncorrectSound(rate)
	case core.SoundWin:
		s = CreateWinSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
