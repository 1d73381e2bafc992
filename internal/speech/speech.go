package speech

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abhisek/vocabdrill/internal/config"
)

// ErrUnavailable is returned when no speech synthesizer can be found.
var ErrUnavailable = errors.New("speech synthesis is not available")

// Speaker pronounces text. Speak blocks until playback ends and returns
// ctx.Err() when cancelled.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// normalWPM is the words-per-minute most engines treat as rate 1.0.
const normalWPM = 175

// candidates are probed in order when no command is configured.
var candidates = []string{"espeak-ng", "espeak", "spd-say", "say"}

type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", filepath.Base(name), err, msg)
		}
		return fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return nil
}

// CommandSpeaker speaks through a local TTS executable.
type CommandSpeaker struct {
	path string
	lang string
	rate float64
	run  runFunc
}

// New returns a Speaker for cfg. When no usable command exists it returns
// Unavailable, whose Speak always fails with ErrUnavailable.
func New(cfg config.SpeechConfig) Speaker {
	s, err := NewCommandSpeaker(cfg, exec.LookPath)
	if err != nil {
		return Unavailable{}
	}
	return s
}

// NewCommandSpeaker resolves the configured command, or the first known
// engine on PATH, using lookPath.
func NewCommandSpeaker(cfg config.SpeechConfig, lookPath func(string) (string, error)) (*CommandSpeaker, error) {
	names := candidates
	if cfg.Command != "" {
		names = []string{cfg.Command}
	}
	for _, name := range names {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		return &CommandSpeaker{path: path, lang: cfg.Lang, rate: cfg.Rate, run: runCommand}, nil
	}
	return nil, fmt.Errorf("%w: tried %s", ErrUnavailable, strings.Join(names, ", "))
}

// Engine is the base name of the TTS executable.
func (s *CommandSpeaker) Engine() string {
	return filepath.Base(s.path)
}

// Args builds the command line arguments for text.
func (s *CommandSpeaker) Args(text string) []string {
	rate := s.rate
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(math.Round(normalWPM * rate)))
	lang := strings.ToLower(s.lang)

	switch s.Engine() {
	case "espeak", "espeak-ng":
		args := []string{"-s", wpm}
		if lang != "" {
			args = append(args, "-v", lang)
		}
		return append(args, "--", text)
	case "spd-say":
		// spd-say takes a rate offset in [-100, 100] and waits with -w.
		offset := int(math.Round((rate - 1) * 100))
		offset = max(-100, min(100, offset))
		args := []string{"-w", "-r", strconv.Itoa(offset)}
		if lang != "" {
			args = append(args, "-l", strings.SplitN(lang, "-", 2)[0])
		}
		return append(args, "--", text)
	case "say":
		return []string{"-r", wpm, "--", text}
	default:
		return []string{text}
	}
}

// Speak runs the TTS command for text.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.run(ctx, s.path, s.Args(text)...)
}

// Unavailable is the Speaker used when no engine is installed.
type Unavailable struct{}

func (Unavailable) Speak(context.Context, string) error { return ErrUnavailable }
