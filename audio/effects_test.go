package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/boxpusher/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the total sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for _, v := range buf[j] {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer did not terminate")
	return 0, 0
}

func TestOscillatorWaves(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)
		assert.Equal(t, testRate.N(50*time.Millisecond), n)
		assert.LessOrEqual(t, peak, 1.0)
		assert.NoError(t, osc.Err())
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.InDelta(t, 0.0, buf[0][0], 1e-9, "attack starts silent")
	assert.InDelta(t, 1.0, buf[n/2][0], 1e-9, "sustain at full level")
	assert.Less(t, buf[n-1][0], 0.01, "release ends near silence")
}

func TestSoundEffectsTerminate(t *testing.T) {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, testRate, 0.5)
			require.NotNil(t, s)
			n, peak := drain(t, s)
			assert.Positive(t, n)
			assert.Positive(t, peak)
		})
	}
}

func TestSoundEffectUnknown(t *testing.T) {
	assert.Nil(t, GetSoundEffect(core.SoundTypeCount, testRate, 1))
}

func TestSoundEffectZeroVolumeIsSilent(t *testing.T) {
	s := GetSoundEffect(core.SoundWall, testRate, 0)
	require.NotNil(t, s)
	_, peak := drain(t, s)
	assert.Zero(t, peak)
}
