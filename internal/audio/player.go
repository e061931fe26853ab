package audio

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// playerCommands are probed in order; the first binary on PATH wins.
// The args play a WAV file given as the final argument and exit when
// playback ends.
var playerCommands = [][]string{
	{"afplay"},
	{"aplay", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// Player plays WAV clips through a system audio command. At most one
// clip plays at a time; starting a new one stops the previous.
type Player struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	tmpFile string
}

// NewPlayer creates an idle player.
func NewPlayer() *Player {
	return &Player{}
}

// Available reports whether a usable system player was found on PATH.
func Available() bool {
	_, err := lookupPlayer()
	return err == nil
}

func lookupPlayer() ([]string, error) {
	for _, cmd := range playerCommands {
		if path, err := exec.LookPath(cmd[0]); err == nil {
			out := append([]string{path}, cmd[1:]...)
			return out, nil
		}
	}
	return nil, fmt.Errorf("no audio player found (tried afplay, aplay, ffplay)")
}

// Play writes the WAV bytes to a temp file and starts playback,
// stopping any clip already playing. It returns once playback has
// started; Wait on the returned channel for completion.
func (p *Player) Play(wav []byte) (<-chan error, error) {
	player, err := lookupPlayer()
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "contextlens-*.wav")
	if err != nil {
		return nil, fmt.Errorf("create temp audio file: %w", err)
	}
	if _, err := f.Write(wav); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write temp audio file: %w", err)
	}
	f.Close()

	p.mu.Lock()
	p.stopLocked()

	args := append(player[1:], f.Name())
	cmd := exec.Command(player[0], args...)
	if err := cmd.Start(); err != nil {
		os.Remove(f.Name())
		p.mu.Unlock()
		return nil, fmt.Errorf("start audio player: %w", err)
	}
	p.cmd = cmd
	p.tmpFile = f.Name()
	p.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		p.mu.Lock()
		if p.cmd == cmd {
			p.cmd = nil
			os.Remove(p.tmpFile)
			p.tmpFile = ""
		}
		p.mu.Unlock()
		done <- err
	}()

	return done, nil
}

// Stop kills the current playback, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Playing reports whether a clip is currently playing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}

func (p *Player) stopLocked() {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	if p.tmpFile != "" {
		os.Remove(p.tmpFile)
	}
	p.cmd = nil
	p.tmpFile = ""
}
