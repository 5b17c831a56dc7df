package speech

import (
	"errors"
	"os/exec"
	"reflect"
	"runtime"
	"testing"
)

func withLookPath(t *testing.T, available ...string) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(file string) (string, error) {
		for _, a := range available {
			if a == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestFindRecorder(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("recorder order differs on macOS")
	}

	tests := []struct {
		name      string
		available []string
		want      string
		wantErr   bool
	}{
		{"arecord preferred", []string{"ffmpeg", "rec", "arecord"}, "arecord", false},
		{"sox next", []string{"ffmpeg", "rec"}, "rec", false},
		{"ffmpeg last", []string{"ffmpeg"}, "ffmpeg", false},
		{"none installed", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withLookPath(t, tt.available...)

			rec, err := FindRecorder(0)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Errorf("error = %v, want ErrUnsupported", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindRecorder failed: %v", err)
			}
			if rec.Name() != tt.want {
				t.Errorf("recorder = %s, want %s", rec.Name(), tt.want)
			}
			if rec.seconds != DefaultRecordSeconds {
				t.Errorf("seconds = %d, want default %d", rec.seconds, DefaultRecordSeconds)
			}
		})
	}
}

func TestRecorderCandidates(t *testing.T) {
	if got := recorderCandidates("darwin"); !reflect.DeepEqual(got, []string{"rec", "ffmpeg"}) {
		t.Errorf("darwin candidates = %v", got)
	}
	if got := recorderCandidates("linux"); !reflect.DeepEqual(got, []string{"arecord", "rec", "ffmpeg"}) {
		t.Errorf("linux candidates = %v", got)
	}
}

func TestCommandRecorder_Args(t *testing.T) {
	tests := []struct {
		command string
		goos    string
		want    []string
	}{
		{"arecord", "linux", []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-d", "3", "out.wav"}},
		{"rec", "linux", []string{"-q", "-r", "16000", "-c", "1", "out.wav", "trim", "0", "3"}},
		{"ffmpeg", "linux", []string{"-y", "-loglevel", "error", "-f", "alsa", "-i", "default", "-t", "3", "-ac", "1", "-ar", "16000", "out.wav"}},
		{"ffmpeg", "darwin", []string{"-y", "-loglevel", "error", "-f", "avfoundation", "-i", ":0", "-t", "3", "-ac", "1", "-ar", "16000", "out.wav"}},
	}

	for _, tt := range tests {
		t.Run(tt.command+"/"+tt.goos, func(t *testing.T) {
			r := &CommandRecorder{command: tt.command, seconds: 3, goos: tt.goos}
			if got := r.Args("out.wav"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}
