package client

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"spacehunt/game"
	"spacehunt/sfx"
)

// Mixer plays cue effects and keeps the jukebox going. Sounds that fail
// to synthesize are logged once and then stay silent.
type Mixer struct {
	ctx     *audio.Context
	effects map[game.Cue]*audio.Player
	tracks  [][]byte
	broken  []bool
	music   *audio.Player
	volume  float64
	rng     *rand.Rand
}

// NewMixer renders every cue up front; jukebox tracks render on first play
func NewMixer(ctx *audio.Context, rng *rand.Rand) *Mixer {
	m := &Mixer{
		ctx:     ctx,
		effects: make(map[game.Cue]*audio.Player, len(game.Cues)),
		tracks:  make([][]byte, sfx.Tracks()),
		broken:  make([]bool, sfx.Tracks()),
		volume:  1,
		rng:     rng,
	}

	for _, cue := range game.Cues {
		pcm, err := sfx.Effect(string(cue))
		if err != nil {
			log.Printf("sound %s unavailable: %v", cue, err)
			continue
		}
		m.effects[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	return m
}

// SetVolume applies a master volume in percent to music and effects
func (m *Mixer) SetVolume(percent int) {
	v := float64(percent) / 100
	if v == m.volume {
		return
	}
	m.volume = v
	for _, p := range m.effects {
		p.SetVolume(v)
	}
	if m.music != nil {
		m.music.SetVolume(v)
	}
}

// Play restarts the effect for cue
func (m *Mixer) Play(cue game.Cue) {
	p, ok := m.effects[cue]
	if !ok {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Printf("rewind %s: %v", cue, err)
		return
	}
	p.SetVolume(m.volume)
	p.Play()
}

// Tick starts a random track whenever the music has stopped
func (m *Mixer) Tick() {
	if m.music != nil && m.music.IsPlaying() {
		return
	}

	var playable []int
	for i, bad := range m.broken {
		if !bad {
			playable = append(playable, i)
		}
	}
	if len(playable) == 0 {
		return
	}

	i := playable[m.rng.Intn(len(playable))]
	if m.tracks[i] == nil {
		pcm, err := sfx.Track(i)
		if err != nil {
			log.Printf("track %d unavailable: %v", i, err)
			m.broken[i] = true
			return
		}
		m.tracks[i] = pcm
	}

	if m.music != nil {
		if err := m.music.Close(); err != nil {
			log.Printf("close track: %v", err)
		}
	}
	m.music = m.ctx.NewPlayerFromBytes(m.tracks[i])
	m.music.SetVolume(m.volume)
	m.music.Play()
	log.Printf("now playing %q", sfx.TrackName(i))
}
