// SPDX-License-Identifier: Apache-2.0

package camera

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/openderm/lesionsnap/internal/logger"
)

// execProvider shells out to a configured command for every snapshot. The
// command must write exactly one encoded frame to stdout; the current
// constraints are exposed to it through CAMERA_* environment variables.
type execProvider struct {
	command string

	logger *logger.Logger
}

// NewExecProvider returns a [Provider] backed by the given snapshot command.
// The command is split on whitespace; the first field is the executable.
func NewExecProvider(snapshotCommand string, logger *logger.Logger) Provider {
	return &execProvider{command: snapshotCommand, logger: logger}
}

func (p *execProvider) Open(ctx context.Context, constraints Constraints) (Stream, error) {
	fields := strings.Fields(p.command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no snapshot command configured", ErrCameraUnavailable)
	}

	if _, err := exec.LookPath(fields[0]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}

	stream := &execStream{
		path:        fields[0],
		args:        fields[1:],
		constraints: constraints,
		logger:      p.logger,
	}

	// probe once so a dead grabber fails at open, not mid-capture
	if _, err := stream.Snapshot(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}

	return stream, nil
}

type execStream struct {
	path string
	args []string

	mu          sync.Mutex
	constraints Constraints
	closed      bool

	logger *logger.Logger
}

func (s *execStream) ApplyConstraints(_ context.Context, constraints Constraints) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%w: stream closed", ErrCameraUnavailable)
	}

	s.constraints = constraints
	return nil
}

func (s *execStream) Snapshot(ctx context.Context) (Frame, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Frame{}, fmt.Errorf("%w: stream closed", ErrCameraUnavailable)
	}
	constraints := s.constraints
	s.mu.Unlock()

	cmd := exec.CommandContext(ctx, s.path, s.args...)
	cmd.Env = append(os.Environ(), constraintEnv(constraints)...)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Frame{}, fmt.Errorf("snapshot command failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	data := out.Bytes()
	if len(data) == 0 {
		return Frame{}, fmt.Errorf("snapshot command produced no frame")
	}

	return Frame{Data: data, MimeType: sniffImageMime(data)}, nil
}

func (s *execStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func constraintEnv(c Constraints) []string {
	env := make([]string, 0, 4)
	if c.FacingMode != "" {
		env = append(env, "CAMERA_FACING="+c.FacingMode)
	}
	if c.Width > 0 {
		env = append(env, "CAMERA_WIDTH="+strconv.Itoa(c.Width))
	}
	if c.Height > 0 {
		env = append(env, "CAMERA_HEIGHT="+strconv.Itoa(c.Height))
	}
	if c.Zoom > 0 {
		env = append(env, "CAMERA_ZOOM="+strconv.FormatFloat(c.Zoom, 'f', -1, 64))
	}
	return env
}

// sniffImageMime detects the frame encoding from its leading bytes,
// defaulting to JPEG.
func sniffImageMime(data []byte) string {
	if mime := http.DetectContentType(data); strings.HasPrefix(mime, "image/") {
		return mime
	}
	return "image/jpeg"
}
