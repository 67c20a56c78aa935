package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name    string
		content string
		create  bool
		wantLog bool
		wantEnv string
	}{
		{name: "missing file is logged at debug", create: false, wantLog: true},
		{name: "file is loaded", content: "DSA_TEST_LOAD_ENV=7\n", create: true, wantEnv: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DSA_TEST_LOAD_ENV", "")
			os.Unsetenv("DSA_TEST_LOAD_ENV")

			path := filepath.Join(t.TempDir(), ".env")
			if tt.create {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("Failed to write env file: %v", err)
				}
			}

			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
			loadEnv(&logger, path)

			logged := strings.Contains(buf.String(), `"level":"debug"`) &&
				strings.Contains(buf.String(), "No .env file loaded")
			if logged != tt.wantLog {
				t.Errorf("debug log = %v; want %v (output %q)", logged, tt.wantLog, buf.String())
			}
			if got := os.Getenv("DSA_TEST_LOAD_ENV"); got != tt.wantEnv {
				t.Errorf("DSA_TEST_LOAD_ENV = %q; want %q", got, tt.wantEnv)
			}
		})
	}
}

func TestStartupLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "", want: zerolog.WarnLevel},
		{level: "debug", want: zerolog.DebugLevel},
		{level: "shouty", want: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		if got := startupLevel(tt.level); got != tt.want {
			t.Errorf("startupLevel(%q) = %v; want %v", tt.level, got, tt.want)
		}
	}
}
