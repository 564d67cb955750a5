package sfx

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gopxl/beep"
)

// ErrUnknown is returned for cue names and track numbers that do not exist
var ErrUnknown = errors.New("unknown sound")

const ms = time.Millisecond

// radio is the burst of static that opens every comm cue
func radio() beep.Streamer {
	return Gain(Shape(Tone(0, 90*ms, Noise), 90*ms, 5*ms, 40*ms), 0.25)
}

// chirps strings together shaped sweeps separated by short gaps
func chirps(wave Wave, gap time.Duration, parts ...[3]float64) beep.Streamer {
	var seq []beep.Streamer
	for i, p := range parts {
		d := time.Duration(p[2]) * ms
		seq = append(seq, Shape(Sweep(p[0], p[1], d, wave), d, 5*ms, d/3))
		if i < len(parts)-1 {
			seq = append(seq, Rest(gap))
		}
	}
	return beep.Seq(seq...)
}

var cues = map[string]func() (beep.Streamer, error){
	"player_hit": func() (beep.Streamer, error) {
		return Gain(Shape(Sweep(880, 440, 70*ms, Square), 70*ms, 2*ms, 40*ms), 0.35), nil
	},
	"boss_hit": func() (beep.Streamer, error) {
		thud := Shape(Sweep(220, 90, 140*ms, Saw), 140*ms, 2*ms, 80*ms)
		crack := Shape(Tone(0, 60*ms, Noise), 60*ms, 1*ms, 50*ms)
		return Gain(mix(140*ms, thud, Gain(crack, 0.5)), 0.5), nil
	},
	"player_heal": func() (beep.Streamer, error) {
		var seq []beep.Streamer
		for _, f := range []float64{523.25, 659.25, 783.99} {
			n, err := Note(f, 70*ms)
			if err != nil {
				return nil, err
			}
			seq = append(seq, Shape(n, 70*ms, 5*ms, 30*ms))
		}
		return Gain(beep.Seq(seq...), 0.5), nil
	},
	"player_death": func() (beep.Streamer, error) {
		rumble := Shape(Tone(0, 900*ms, Noise), 900*ms, 5*ms, 700*ms)
		fall := Shape(Sweep(300, 40, 900*ms, Saw), 900*ms, 5*ms, 400*ms)
		return Gain(mix(900*ms, Gain(rumble, 0.6), fall), 0.55), nil
	},
	"level_up": func() (beep.Streamer, error) {
		return Gain(beep.Seq(
			chirps(Square, 20*ms, [3]float64{523.25, 523.25, 100}, [3]float64{659.25, 659.25, 100}, [3]float64{783.99, 783.99, 100}),
			Rest(20*ms),
			Shape(Tone(1046.5, 300*ms, Square), 300*ms, 5*ms, 200*ms),
		), 0.3), nil
	},
	"comm_bird": func() (beep.Streamer, error) {
		return beep.Seq(radio(), Gain(chirps(Sine, 40*ms,
			[3]float64{2000, 3200, 60}, [3]float64{2200, 3400, 60}, [3]float64{1800, 3000, 90}), 0.4)), nil
	},
	"comm_bunny": func() (beep.Streamer, error) {
		return beep.Seq(radio(), Gain(chirps(Square, 50*ms,
			[3]float64{900, 1300, 80}, [3]float64{950, 1350, 80}, [3]float64{1000, 1400, 80}), 0.25)), nil
	},
	"comm_fox": func() (beep.Streamer, error) {
		return beep.Seq(radio(), Gain(chirps(Saw, 30*ms,
			[3]float64{500, 900, 120}, [3]float64{900, 400, 180}), 0.3)), nil
	},
	"comm_frog": func() (beep.Streamer, error) {
		return beep.Seq(radio(), Gain(chirps(Square, 80*ms,
			[3]float64{120, 90, 150}, [3]float64{130, 95, 150}), 0.35)), nil
	},
}

// Cues lists the available cue names in sorted order
func Cues() []string {
	names := make([]string, 0, len(cues))
	for name := range cues {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Effect renders the named cue to PCM
func Effect(name string) ([]byte, error) {
	build, ok := cues[name]
	if !ok {
		return nil, fmt.Errorf("cue %q: %w", name, ErrUnknown)
	}
	s, err := build()
	if err != nil {
		return nil, fmt.Errorf("failed to build cue %q: %w", name, err)
	}
	return Render(s)
}
