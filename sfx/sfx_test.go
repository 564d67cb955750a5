package sfx

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// peak returns the loudest left-channel sample of rendered PCM
func peak(pcm []byte) int {
	top := 0
	for i := 0; i+3 < len(pcm); i += 4 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		if v < 0 {
			v = -v
		}
		top = max(top, v)
	}
	return top
}

func TestEveryCueRenders(t *testing.T) {
	names := Cues()
	require.Len(t, names, 9)

	for _, name := range names {
		pcm, err := Effect(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, pcm, name)
		assert.Zero(t, len(pcm)%4, "%s is not whole stereo frames", name)
		assert.Greater(t, peak(pcm), 1000, "%s is silent", name)
	}
}

func TestCueLength(t *testing.T) {
	pcm, err := Effect("player_hit")
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(70*ms)*4, len(pcm))

	pcm, err = Effect("player_death")
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(900*ms)*4, len(pcm))
}

func TestUnknownSounds(t *testing.T) {
	_, err := Effect("kazoo")
	assert.ErrorIs(t, err, ErrUnknown)

	_, err = Track(-1)
	assert.ErrorIs(t, err, ErrUnknown)
	_, err = Track(Tracks())
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Equal(t, "", TrackName(99))
}

func TestTrackRenders(t *testing.T) {
	require.Equal(t, 4, Tracks())

	for i := range Tracks() {
		tr := tracks[i]
		pcm, err := Track(i)
		require.NoError(t, err, tr.name)
		// per-note rounding may trim a few frames off each pass
		want := tr.repeats * SampleRate.N(tr.length()) * 4
		assert.InDelta(t, want, len(pcm), float64(4*4*len(tr.lead)*tr.repeats), tr.name)
		assert.Greater(t, peak(pcm), 1000, tr.name)
		assert.NotEmpty(t, TrackName(i))
	}
}

func TestTrackVoicesLineUp(t *testing.T) {
	for _, tr := range tracks {
		var lead, bass float64
		for _, st := range tr.lead {
			lead += st.beats
		}
		for _, st := range tr.bass {
			bass += st.beats
		}
		assert.Equal(t, lead, bass, tr.name)
	}
}

func TestFrequency(t *testing.T) {
	assert.Equal(t, 440.0, frequency(0))
	assert.InDelta(t, 880.0, frequency(12), 1e-9)
	assert.InDelta(t, 220.0, frequency(-12), 1e-9)
}

func TestNoteRejectsUnplayablePitch(t *testing.T) {
	_, err := Note(30000, 10*ms)
	assert.Error(t, err)

	s, err := Note(440, 10*ms)
	require.NoError(t, err)
	pcm, err := Render(s)
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(10*ms)*4, len(pcm))
}

func TestSweepWaves(t *testing.T) {
	for _, w := range []Wave{Sine, Square, Saw, Noise} {
		s := Tone(220, 20*ms, w)
		buf := make([][2]float64, 100)
		n, ok := s.Stream(buf)
		require.True(t, ok)
		require.Equal(t, 100, n)
		for _, smp := range buf {
			assert.LessOrEqual(t, math.Abs(smp[0]), 1.0)
			assert.Equal(t, smp[0], smp[1])
		}
	}
}

func TestShapeFadesEdges(t *testing.T) {
	s := Shape(Tone(0, 100*ms, Square), 100*ms, 10*ms, 10*ms)
	buf := make([][2]float64, SampleRate.N(100*ms))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0])
	assert.Equal(t, 1.0, buf[len(buf)/2][0])
	assert.Less(t, buf[len(buf)-1][0], 0.01)
}

func TestGainSilences(t *testing.T) {
	buf := make([][2]float64, 10)
	n, _ := Gain(Tone(0, 10*ms, Square), 0).Stream(buf)
	require.Equal(t, 10, n)
	for _, smp := range buf {
		assert.Equal(t, 0.0, smp[0])
	}

	pcm, err := Render(Gain(beep.Silence(8), 1))
	require.NoError(t, err)
	assert.Len(t, pcm, 32)
}

func TestToPCMClamps(t *testing.T) {
	assert.Equal(t, int16(math.MaxInt16), toPCM(3))
	assert.Equal(t, int16(-math.MaxInt16), toPCM(-3))
	assert.Equal(t, int16(0), toPCM(0))
}
