package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/decker502/colortag/internal/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of game resources.
//
// The game ships no asset files: the UI font is Go Regular from
// golang.org/x/image and every sound effect is synthesized by internal/synth.
// Both are prepared once at start up and cached.
//
// This implementation is NOT thread-safe; all loading happens on the main
// goroutine before the game loop starts.
type ResourceManager struct {
	audioContext  *audio.Context               // nil in tests: sounds are synthesized but not playable
	fontSource    *text.GoTextFaceSource       // parsed UI font
	fontFaceCache map[float64]*text.GoTextFace // size -> face
	soundData     map[string][]byte            // sound ID -> 16-bit stereo PCM
	audioCache    map[string]*audio.Player     // sound ID -> player
}

// NewResourceManager creates an empty ResourceManager.
//
// Parameters:
//   - audioContext: the global audio context (48000 Hz), may be nil when audio
//     playback is not needed.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		soundData:     make(map[string][]byte),
		audioCache:    make(map[string]*audio.Player),
	}
}

// LoadFont parses the embedded UI font.
//
// Returns an error if the font data cannot be parsed; callers treat this as fatal.
func (rm *ResourceManager) LoadFont() error {
	if rm.fontSource != nil {
		return nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to create font source: %w", err)
	}
	rm.fontSource = source
	log.Printf("[ResourceManager] UI font loaded")
	return nil
}

// Font returns a cached face of the given size, or nil if LoadFont has not succeeded.
func (rm *ResourceManager) Font(size float64) *text.GoTextFace {
	if rm.fontSource == nil {
		return nil
	}
	if face, ok := rm.fontFaceCache[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

// LoadSounds synthesizes the given sound effects and, when an audio context is
// available, creates a player for each one.
//
// Returns the first synthesis error; callers treat it as fatal.
func (rm *ResourceManager) LoadSounds(soundIDs []string) error {
	for _, id := range soundIDs {
		if _, ok := rm.soundData[id]; ok {
			continue
		}

		pcm, err := synth.Generate(id)
		if err != nil {
			return fmt.Errorf("failed to synthesize sound %s: %w", id, err)
		}
		rm.soundData[id] = pcm

		if rm.audioContext != nil {
			rm.audioCache[id] = rm.audioContext.NewPlayerFromBytes(pcm)
		}
	}
	log.Printf("[ResourceManager] %d sounds ready", len(rm.soundData))
	return nil
}

// SoundData returns the raw PCM of a loaded sound, or nil.
func (rm *ResourceManager) SoundData(soundID string) []byte {
	return rm.soundData[soundID]
}

// GetAudioPlayer returns the cached player of a loaded sound, or nil.
func (rm *ResourceManager) GetAudioPlayer(soundID string) *audio.Player {
	return rm.audioCache[soundID]
}
