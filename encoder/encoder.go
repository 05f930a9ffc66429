// Package encoder merges rendered frame sequences into a video file
// by shelling out to an external encoder binary. Backends are
// interchangeable behind the VideoEncoder interface.
package encoder

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	parray "github.com/gokuldas/simulation-phased-array"
)

// Defaults shared by the stock backends.
const (
	DefaultFrameRate = 25
	DefaultWidth     = 800
	DefaultHeight    = 600
)

// VideoEncoder merges the PNG frames dir/<prefix>NNN.png into a
// single video file and returns its path. Failures of the external
// binary are surfaced, never retried.
type VideoEncoder interface {
	Encode(dir, prefix string) (string, error)
}

// FFmpeg encodes the frame sequence into a .webm file.
type FFmpeg struct {
	Bin           string // binary to invoke, default "ffmpeg"
	FrameRate     int
	Width, Height int
}

func (f FFmpeg) args(prefix, out string) []string {
	return []string{
		"-y",
		"-r", fmt.Sprint(orDefault(f.FrameRate, DefaultFrameRate)),
		"-i", prefix + "%03d.png",
		"-s", fmt.Sprintf("%dx%d", orDefault(f.Width, DefaultWidth), orDefault(f.Height, DefaultHeight)),
		out,
	}
}

func (f FFmpeg) Encode(dir, prefix string) (string, error) {
	bin := f.Bin
	if bin == "" {
		bin = "ffmpeg"
	}
	out := prefix + ".webm"
	return run(bin, f.args(prefix, out), dir, out)
}

// Mencoder encodes the frame sequence into a .avi file.
type Mencoder struct {
	Bin           string // binary to invoke, default "mencoder"
	FrameRate     int
	Width, Height int
}

func (m Mencoder) args(prefix, out string) []string {
	mf := fmt.Sprintf("fps=%d:w=%d:h=%d:type=png",
		orDefault(m.FrameRate, DefaultFrameRate),
		orDefault(m.Width, DefaultWidth),
		orDefault(m.Height, DefaultHeight))
	return []string{
		"mf://" + prefix + "*.png",
		"-mf", mf,
		"-ovc", "lavc",
		"-o", out,
	}
}

func (m Mencoder) Encode(dir, prefix string) (string, error) {
	bin := m.Bin
	if bin == "" {
		bin = "mencoder"
	}
	out := prefix + ".avi"
	return run(bin, m.args(prefix, out), dir, out)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// run invokes the encoder binary inside dir. A missing binary or a
// non-zero exit wraps ErrExternalTool together with the tool's
// stderr.
func run(bin string, args []string, dir, out string) (string, error) {
	if _, err := exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("%w: %v", parray.ErrExternalTool, err)
	}
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	log.Debugf("encoder: %s %v", bin, args)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %v: %s", parray.ErrExternalTool, bin, err, stderr.String())
	}
	return filepath.Join(dir, out), nil
}
