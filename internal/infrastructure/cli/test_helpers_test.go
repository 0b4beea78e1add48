package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/pflag"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/config"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fn()

	_ = w.Close()
	os.Stdout = old
	return string(<-done)
}

// withTempDir runs the test from an empty directory so no config file is picked up.
func withTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvFile, "")
	return dir
}

func resetFlags() {
	configPath, rootDir, schemaPath, format, metricsFile = "", "", "", "", ""
	threshold = 0
	verbose = false

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	RootCmd.PersistentFlags().VisitAll(reset)
	RootCmd.Flags().VisitAll(reset)
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	RootCmd.SetArgs(args)
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	var err error
	out := captureStdout(t, func() {
		err = RootCmd.Execute()
	})
	return out, err
}
