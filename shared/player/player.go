// Package player drives an external media player for clip previews. Two
// backends exist, one for local files and one for YouTube streams; both
// satisfy the same single-capability contract: seek to an absolute second
// offset, then resume playback.
package player

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/ridhoarazzak/Clipper/internal/models"
)

// Player is the one seek contract the rest of the app talks to. The
// backend is chosen once from the video source; nothing else branches on
// source kind.
type Player interface {
	SeekAndPlay(seconds int) error
	Close() error
}

// ForSource selects the backend matching the source variant.
func ForSource(command string, src *models.VideoSource) Player {
	if src.Kind == models.SourceYouTube {
		return NewStreamPlayer(command, src.WatchURL())
	}
	return NewFilePlayer(command, src.Path)
}

// mpvCommand is one line of mpv's JSON IPC protocol.
type mpvCommand struct {
	Command []any `json:"command"`
}

// FilePlayer plays a local file through mpv. The first seek launches the
// process with an IPC socket; later seeks reuse the running instance by
// posting the two-command sequence: absolute seek, then unpause.
type FilePlayer struct {
	command    string
	path       string
	socketPath string

	mu   sync.Mutex
	proc *exec.Cmd
}

func NewFilePlayer(command, path string) *FilePlayer {
	socket := filepath.Join(os.TempDir(), fmt.Sprintf("clipper-mpv-%d.sock", os.Getpid()))
	return &FilePlayer{command: command, path: path, socketPath: socket}
}

func (p *FilePlayer) SeekAndPlay(seconds int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proc != nil {
		if err := p.sendSeek(seconds); err == nil {
			return nil
		}
		// The player was closed by the user; fall through and relaunch.
		p.reap()
	}

	cmd := exec.Command(p.command,
		"--input-ipc-server="+p.socketPath,
		"--start="+strconv.Itoa(seconds),
		p.path,
	)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", p.command, err)
	}
	p.proc = cmd
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

// sendSeek posts the seek-then-resume pair over the IPC socket.
func (p *FilePlayer) sendSeek(seconds int) error {
	conn, err := net.DialTimeout("unix", p.socketPath, 500*time.Millisecond)
	if err != nil {
		return fmt.Errorf("player IPC unavailable: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	commands := []mpvCommand{
		{Command: []any{"seek", seconds, "absolute"}},
		{Command: []any{"set_property", "pause", false}},
	}
	for _, c := range commands {
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to send player command: %w", err)
		}
	}
	return nil
}

func (p *FilePlayer) reap() {
	if p.proc != nil && p.proc.Process != nil {
		_ = p.proc.Process.Kill()
	}
	p.proc = nil
}

func (p *FilePlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reap()
	_ = os.Remove(p.socketPath)
	return nil
}

// StreamPlayer hands a YouTube watch URL to the player, which resolves
// the stream itself. Remote streams carry no IPC session worth reusing,
// so every seek relaunches at the requested offset.
type StreamPlayer struct {
	command string
	url     string

	mu   sync.Mutex
	proc *exec.Cmd
}

func NewStreamPlayer(command, url string) *StreamPlayer {
	return &StreamPlayer{command: command, url: url}
}

func (p *StreamPlayer) SeekAndPlay(seconds int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proc != nil && p.proc.Process != nil {
		if err := p.proc.Process.Kill(); err != nil {
			log.Printf("Warning: failed to stop previous preview: %v", err)
		}
	}

	cmd := exec.Command(p.command, "--start="+strconv.Itoa(seconds), p.url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", p.command, err)
	}
	p.proc = cmd
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

func (p *StreamPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.proc != nil && p.proc.Process != nil {
		_ = p.proc.Process.Kill()
	}
	p.proc = nil
	return nil
}
