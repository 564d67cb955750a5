package sfx

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// rest marks a silent step
const rest = math.MinInt

// step is one note: semitones above A4 (or rest) and its length in beats
type step struct {
	semi  int
	beats float64
}

// track is a short chiptune loop with a square lead over a sine bass
type track struct {
	name    string
	bpm     float64
	repeats int
	lead    []step
	bass    []step
}

var tracks = []track{
	{
		name: "Blue Sortie", bpm: 150, repeats: 2,
		lead: []step{
			{3, .5}, {7, .5}, {10, .5}, {15, .5}, {14, 1}, {10, .5}, {7, .5},
			{5, .5}, {8, .5}, {12, .5}, {17, .5}, {15, 1}, {rest, .5}, {12, .5},
			{10, .5}, {7, .5}, {3, .5}, {7, .5}, {10, 1}, {8, .5}, {7, .5},
			{5, 1}, {7, 1}, {3, 2},
		},
		bass: []step{
			{-21, 1}, {-21, 1}, {-14, 1}, {-14, 1},
			{-16, 1}, {-16, 1}, {-19, 1}, {-19, 1},
			{-21, 1}, {-21, 1}, {-14, 1}, {-14, 1},
			{-16, 1}, {-19, 1}, {-21, 2},
		},
	},
	{
		name: "Overdrive", bpm: 168, repeats: 2,
		lead: []step{
			{0, .5}, {0, .5}, {7, .5}, {0, .5}, {5, .5}, {7, .5}, {12, 1},
			{10, .5}, {7, .5}, {5, .5}, {3, .5}, {5, 1}, {rest, 1},
			{0, .5}, {0, .5}, {7, .5}, {0, .5}, {5, .5}, {7, .5}, {12, 1},
			{15, .5}, {14, .5}, {12, .5}, {10, .5}, {12, 2},
		},
		bass: []step{
			{-24, .5}, {-12, .5}, {-24, .5}, {-12, .5}, {-19, .5}, {-7, .5}, {-19, .5}, {-7, .5},
			{-21, .5}, {-9, .5}, {-21, .5}, {-9, .5}, {-17, .5}, {-5, .5}, {-17, .5}, {-5, .5},
			{-24, .5}, {-12, .5}, {-24, .5}, {-12, .5}, {-19, .5}, {-7, .5}, {-19, .5}, {-7, .5},
			{-21, 1}, {-17, 1}, {-24, 2},
		},
	},
	{
		name: "Nebula Drift", bpm: 96, repeats: 2,
		lead: []step{
			{-2, 1.5}, {1, .5}, {5, 2},
			{3, 1}, {1, 1}, {-2, 2},
			{-4, 1.5}, {-2, .5}, {1, 2},
			{3, 1}, {5, 1}, {8, 2},
		},
		bass: []step{
			{-26, 4}, {-23, 4}, {-28, 4}, {-21, 4},
		},
	},
	{
		name: "Iron Fortress", bpm: 140, repeats: 2,
		lead: []step{
			{-5, .25}, {-2, .25}, {2, .5}, {5, .5}, {2, .5}, {-2, .5}, {-5, .5}, {rest, 1},
			{-4, .25}, {-1, .25}, {3, .5}, {6, .5}, {3, .5}, {-1, .5}, {-4, .5}, {rest, 1},
			{-5, .5}, {2, .5}, {7, .5}, {10, .5}, {9, .5}, {7, .5}, {5, .5}, {2, .5},
			{0, 1}, {-2, 1}, {-5, 2},
		},
		bass: []step{
			{-29, 1}, {-29, .5}, {-17, .5}, {-29, 1}, {-17, 1},
			{-28, 1}, {-28, .5}, {-16, .5}, {-28, 1}, {-16, 1},
			{-29, 1}, {-22, 1}, {-24, 1}, {-26, 1},
			{-29, 2}, {-17, 2},
		},
	},
}

// length is the duration of one pass through the lead line
func (t track) length() time.Duration {
	beats := 0.0
	for _, st := range t.lead {
		beats += st.beats
	}
	return time.Duration(beats * float64(time.Minute) / t.bpm)
}

// frequency converts semitones above A4 to hertz
func frequency(semi int) float64 {
	return 440 * math.Pow(2, float64(semi)/12)
}

// voice renders one melodic line; the lead uses square waves, the bass
// the beep sine generator.
func (t track) voice(steps []step, lead bool) (beep.Streamer, error) {
	beat := time.Duration(float64(time.Minute) / t.bpm)

	var seq []beep.Streamer
	for _, st := range steps {
		d := time.Duration(st.beats * float64(beat))
		if st.semi == rest {
			seq = append(seq, Rest(d))
			continue
		}

		var s beep.Streamer
		if lead {
			s = Tone(frequency(st.semi), d, Square)
		} else {
			n, err := Note(frequency(st.semi), d)
			if err != nil {
				return nil, err
			}
			s = n
		}
		seq = append(seq, Shape(s, d, 4*ms, d/4))
	}
	return beep.Seq(seq...), nil
}

func (t track) streamer() (beep.Streamer, error) {
	var loops []beep.Streamer
	for range max(1, t.repeats) {
		lead, err := t.voice(t.lead, true)
		if err != nil {
			return nil, err
		}
		bass, err := t.voice(t.bass, false)
		if err != nil {
			return nil, err
		}
		loops = append(loops, mix(t.length(), Gain(lead, 0.18), Gain(bass, 0.35)))
	}
	return beep.Seq(loops...), nil
}

// Tracks returns the number of jukebox tracks
func Tracks() int {
	return len(tracks)
}

// TrackName returns a track's title
func TrackName(i int) string {
	if i < 0 || i >= len(tracks) {
		return ""
	}
	return tracks[i].name
}

// Track renders jukebox track i to PCM
func Track(i int) ([]byte, error) {
	if i < 0 || i >= len(tracks) {
		return nil, fmt.Errorf("track %d: %w", i, ErrUnknown)
	}
	s, err := tracks[i].streamer()
	if err != nil {
		return nil, fmt.Errorf("failed to build track %q: %w", tracks[i].name, err)
	}
	return Render(s)
}
