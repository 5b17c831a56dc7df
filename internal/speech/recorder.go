package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

// DefaultRecordSeconds is how long one utterance is recorded for
const DefaultRecordSeconds = 5

// Recorder records one utterance into a WAV file
type Recorder interface {
	// Record captures audio and returns the path of a temporary WAV file
	// that the caller must remove
	Record(ctx context.Context) (string, error)

	// Name returns the recorder command name
	Name() string
}

// lookPath is replaced in tests
var lookPath = exec.LookPath

// recorderCandidates returns the recorder commands to try on goos, in order
func recorderCandidates(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"rec", "ffmpeg"}
	default:
		return []string{"arecord", "rec", "ffmpeg"}
	}
}

// CommandRecorder records audio by running an external command
type CommandRecorder struct {
	command string
	path    string
	seconds int
	goos    string
}

// FindRecorder returns a recorder for the first recorder command found in PATH
func FindRecorder(seconds int) (*CommandRecorder, error) {
	if seconds <= 0 {
		seconds = DefaultRecordSeconds
	}

	for _, cmd := range recorderCandidates(runtime.GOOS) {
		if path, err := lookPath(cmd); err == nil {
			return &CommandRecorder{
				command: cmd,
				path:    path,
				seconds: seconds,
				goos:    runtime.GOOS,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: no audio recorder found (install alsa-utils, sox or ffmpeg)", ErrUnsupported)
}

// Name returns the recorder command name
func (r *CommandRecorder) Name() string {
	return r.command
}

// Args returns the command line arguments to record into outputFile
func (r *CommandRecorder) Args(outputFile string) []string {
	secs := strconv.Itoa(r.seconds)

	switch r.command {
	case "arecord":
		return []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-d", secs, outputFile}
	case "rec":
		return []string{"-q", "-r", "16000", "-c", "1", outputFile, "trim", "0", secs}
	default:
		input := []string{"-f", "alsa", "-i", "default"}
		if r.goos == "darwin" {
			input = []string{"-f", "avfoundation", "-i", ":0"}
		}
		args := []string{"-y", "-loglevel", "error"}
		args = append(args, input...)
		return append(args, "-t", secs, "-ac", "1", "-ar", "16000", outputFile)
	}
}

// Record runs the recorder command
func (r *CommandRecorder) Record(ctx context.Context) (string, error) {
	tmp, err := os.CreateTemp("", "linguist-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	outputFile := tmp.Name()
	tmp.Close()

	cmd := exec.CommandContext(ctx, r.path, r.Args(outputFile)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		os.Remove(outputFile)
		return "", fmt.Errorf("%s failed: %w\nOutput: %s", r.command, err, output)
	}

	info, err := os.Stat(outputFile)
	if err != nil || info.Size() == 0 {
		os.Remove(outputFile)
		return "", fmt.Errorf("%s produced no audio", r.command)
	}

	return outputFile, nil
}
