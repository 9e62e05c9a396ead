// Package sound plays short alert sounds through the system speaker.
package sound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extWAV  = ".wav"
	extFLAC = ".flac"
)

// speakerSampleRate is the fixed output rate; sounds are resampled to it.
const speakerSampleRate beep.SampleRate = 44100

// ErrNoSound is returned when no sound file is configured for a type.
var ErrNoSound = errors.New("sound: no file configured")

// Resolver maps a notification type key to a sound file path.
type Resolver func(typeKey string) string

// Player decodes sound files once, keeps them in memory and plays them on
// demand. It is safe for concurrent use.
type Player struct {
	resolve Resolver
	level   float64

	mu          sync.Mutex
	initialized bool
	cache       map[string]*beep.Buffer
}

// New creates a player. level is the volume from 0.0 to 1.0.
func New(resolve Resolver, level float64) *Player {
	return &Player{
		resolve: resolve,
		level:   min(max(level, 0), 1),
		cache:   make(map[string]*beep.Buffer),
	}
}

// Play starts the sound for typeKey and returns without waiting for it to
// finish.
func (p *Player) Play(typeKey string) error {
	path := ""
	if p.resolve != nil {
		path = p.resolve(typeKey)
	}
	if path == "" {
		return ErrNoSound
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	buf, err := p.load(path)
	if err != nil {
		return err
	}

	if !p.initialized {
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initialized = true
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if rate := buf.Format().SampleRate; rate != speakerSampleRate {
		s = beep.Resample(4, rate, speakerSampleRate, s)
	}
	speaker.Play(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   levelToVolume(p.level),
		Silent:   p.level <= 0,
	})
	return nil
}

// Close stops the speaker if it was started.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Clear()
		speaker.Close()
		p.initialized = false
	}
}

func (p *Player) load(path string) (*beep.Buffer, error) {
	if buf, ok := p.cache[path]; ok {
		return buf, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	p.cache[path] = buf
	return buf, nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case extMP3:
		return mp3.Decode(f)
	case extWAV:
		return wav.Decode(f)
	case extFLAC:
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
	}
}

// levelToVolume converts a 0.0-1.0 level to beep's base-2 Volume value.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
