package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/configs"
	"github.com/PolarWolf314/keez/internal/editor"
	logger "github.com/PolarWolf314/keez/internal/logging"
	"github.com/PolarWolf314/keez/internal/parameters"
	"github.com/PolarWolf314/keez/internal/store"
	"github.com/PolarWolf314/keez/internal/workflows"
)

type staticKey string

func (k staticKey) GetOrCreateKey() (string, error) { return string(k), nil }

// testEnv wires the commands to an in-memory store, a fixed export key and
// a scripted editor.
type testEnv struct {
	store   *store.MemoryGateway
	sealer  *codec.Sealer
	edits   []func(string) string
	opened  []string
	needs   []serviceNeeds
	tempDir string
}

func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store: store.NewMemoryGateway(map[string]parameters.Parameter{
			"/preprod/db/host":     {Value: "db.internal", Type: parameters.PlainText},
			"/preprod/db/password": {Value: "hunter2", Type: parameters.Encrypted},
		}),
		sealer:  &codec.Sealer{Keys: staticKey("test"), KDF: codec.KDFParams{Time: 1, Memory: 8 * 1024, Threads: 1}},
		tempDir: t.TempDir(),
	}

	originalSettings := configs.UserKeezSettings
	configs.UserKeezSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(env.tempDir, "config"),
		KeyringFilePath: filepath.Join(env.tempDir, "config", "keyring"),
		Username:        "testuser",
	}
	os.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	SetLogger(logger.Logger{})
	newServices = func(_ context.Context, needs serviceNeeds) (workflows.Services, error) {
		env.needs = append(env.needs, needs)
		svc := workflows.Services{Store: env.store}
		if needs.sealer {
			svc.Sealer = env.sealer
		}
		if needs.editor {
			svc.Editor = editor.Func(func(_ context.Context, text string) (string, error) {
				if len(env.opened) >= len(env.edits) {
					t.Fatalf("editor opened more often than scripted")
				}
				respond := env.edits[len(env.opened)]
				env.opened = append(env.opened, text)
				return respond(text), nil
			})
		}
		return svc, nil
	}

	t.Cleanup(func() {
		configs.UserKeezSettings = originalSettings
		os.Unsetenv("NO_COLOR")
		newServices = defaultServices
		ResetGlobalState()
	})
	return env
}

// runCommand executes keez with args and returns everything printed.
func runCommand(args ...string) (string, error) {
	return captureOutput(func() error {
		RootCmd.SetArgs(args)
		return RootCmd.Execute()
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	reader, writer, _ := os.Pipe()
	os.Stdout = writer
	os.Stderr = writer

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, reader)
		outputChan <- buf.String()
	}()

	err := fn()

	writer.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan, err
}

func replaceText(old, new string) func(string) string {
	return func(text string) string { return strings.Replace(text, old, new, 1) }
}
