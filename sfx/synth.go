// Package sfx synthesizes the game's sound cues and jukebox tracks as
// 16-bit little-endian stereo PCM, ready for the audio player.
package sfx

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by every rendered sound
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// sweep is an oscillator whose pitch glides linearly from one
// frequency to another over its lifetime.
type sweep struct {
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	length   int
	rng      *rand.Rand
}

// Tone returns a fixed-pitch oscillator lasting d
func Tone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return Sweep(freq, freq, d, wave)
}

// Sweep returns an oscillator gliding from one pitch to another over d
func Sweep(from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return &sweep{
		from:   from,
		to:     to,
		wave:   wave,
		length: SampleRate.N(d),
		rng:    rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * o.phase)
		case Square:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2 * (o.phase - 0.5)
		case Noise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.pos) / float64(o.length)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope fades a streamer in over attack and out over release
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// Shape applies a linear attack and release to a sound lasting d
func Shape(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		s:       beep.Take(SampleRate.N(d), s),
		attack:  SampleRate.N(attack),
		release: SampleRate.N(release),
		total:   SampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// Gain scales a streamer linearly; zero or less is silent
func Gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// Note is a pure sine built on the beep tone generator
func Note(freq float64, d time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %.1f Hz tone: %w", freq, err)
	}
	return beep.Take(SampleRate.N(d), tone), nil
}

// mix plays streamers together for exactly d
func mix(d time.Duration, s ...beep.Streamer) beep.Streamer {
	return beep.Take(SampleRate.N(d), beep.Mix(s...))
}

// Rest is silence lasting d
func Rest(d time.Duration) beep.Streamer {
	return beep.Silence(SampleRate.N(d))
}

// Render drains a finite streamer into 16-bit little-endian stereo PCM
func Render(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 64*1024)
	var frame [4]byte

	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toPCM(smp[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toPCM(smp[1])))
			out = append(out, frame[:]...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render stream: %w", err)
	}
	return out, nil
}

func toPCM(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
