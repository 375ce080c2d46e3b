// Package sound plays cue sounds through the system speaker.
package sound

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/interval/internal/apperr"
	"github.com/ayoisaiah/interval/internal/static"
)

var (
	errUnknownSound = &apperr.Error{
		Message: "sound %q is neither a built-in sound nor an audio file",
	}
	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported sound format %q: use wav, mp3, flac or ogg",
	}
	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound %q",
	}
	errNotLoaded = &apperr.Error{
		Message: "sound %q has not been loaded",
	}
)

// sampleRate is the rate the speaker is opened at. Sounds recorded at a
// different rate are resampled when loaded.
const sampleRate beep.SampleRate = 44100

// bufferSize is the number of speaker buffers per second.
const bufferSize = 10

type decoder func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decodeWAV(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return wav.Decode(r)
}

func decodeFLAC(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return flac.Decode(r)
}

var decoders = map[string]decoder{
	".wav":  decodeWAV,
	".mp3":  mp3.Decode,
	".flac": decodeFLAC,
	".ogg":  vorbis.Decode,
}

// Player decodes sounds into memory once and plays them on demand.
type Player struct {
	buffers map[string]*beep.Buffer
	initErr error
	once    sync.Once
	mu      sync.Mutex
}

// NewPlayer returns a Player. The speaker is opened on the first load.
func NewPlayer() *Player {
	return &Player{
		buffers: make(map[string]*beep.Buffer),
	}
}

// LoadCue decodes the named sound into memory. A name without an extension
// refers to a built-in sound; anything else is treated as a file path.
func (p *Player) LoadCue(name string) error {
	p.once.Do(func() {
		p.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/bufferSize))
	})

	if p.initErr != nil {
		return p.initErr
	}

	p.mu.Lock()
	_, ok := p.buffers[name]
	p.mu.Unlock()

	if ok {
		return nil
	}

	buf, err := load(name)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.buffers[name] = buf
	p.mu.Unlock()

	return nil
}

// PlayCue starts playing a loaded sound and returns without waiting for it
// to end.
func (p *Player) PlayCue(name string) error {
	p.mu.Lock()
	buf, ok := p.buffers[name]
	p.mu.Unlock()

	if !ok {
		return errNotLoaded.Fmt(name)
	}

	speaker.Play(buf.Streamer(0, buf.Len()))

	return nil
}

func open(name string) (io.ReadCloser, string, error) {
	ext := strings.ToLower(filepath.Ext(name))

	if ext == "" {
		if !static.IsSound(name) {
			return nil, "", errUnknownSound.Fmt(name)
		}

		f, err := static.Files.Open(static.SoundPath(name))
		if err != nil {
			return nil, "", err
		}

		return f, ".wav", nil
	}

	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", errUnknownSound.Fmt(name)
		}

		return nil, "", err
	}

	return f, ext, nil
}

func load(name string) (*beep.Buffer, error) {
	f, ext, err := open(name)
	if err != nil {
		return nil, err
	}

	decode, ok := decoders[ext]
	if !ok {
		_ = f.Close()
		return nil, errInvalidSoundFormat.Fmt(ext)
	}

	stream, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, errDecodeSound.Fmt(name).Wrap(err)
	}

	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	format.SampleRate = sampleRate

	buf := beep.NewBuffer(format)
	buf.Append(s)

	slog.Debug("sound loaded", slog.String("sound", name), slog.Int("samples", buf.Len()))

	return buf, nil
}

// Nop is a Player that plays nothing. It is used when sound is disabled.
type Nop struct{}

func (Nop) LoadCue(string) error { return nil }

func (Nop) PlayCue(string) error { return nil }
