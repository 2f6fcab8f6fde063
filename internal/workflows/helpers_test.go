package workflows

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/keez/internal/audit"
	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/configs"
	"github.com/PolarWolf314/keez/internal/editor"
	"github.com/PolarWolf314/keez/internal/parameters"
	"github.com/PolarWolf314/keez/internal/store"
)

type staticKey string

func (k staticKey) GetOrCreateKey() (string, error) { return string(k), nil }

// testSealer uses cheap key derivation so tests stay fast.
func testSealer(key string) *codec.Sealer {
	return &codec.Sealer{Keys: staticKey(key), KDF: codec.KDFParams{Time: 1, Memory: 8 * 1024, Threads: 1}}
}

// useTempConfigDir points the audit log at a temp directory.
func useTempConfigDir(t *testing.T) {
	t.Helper()
	original := configs.UserKeezSettings
	configs.UserKeezSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(t.TempDir(), "keez"),
		Username:        "tester",
	}
	t.Cleanup(func() {
		configs.UserKeezSettings = original
	})
}

func readAudit(t *testing.T) []audit.Entry {
	t.Helper()
	entries, err := audit.ReadEntries()
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	return entries
}

// scriptedEditor answers each editor session with the next response and
// records the text it was opened with.
type scriptedEditor struct {
	t         *testing.T
	responses []func(string) string
	opened    []string
}

func newScriptedEditor(t *testing.T, responses ...func(string) string) *scriptedEditor {
	return &scriptedEditor{t: t, responses: responses}
}

func (s *scriptedEditor) Edit(_ context.Context, text string) (string, error) {
	if len(s.opened) >= len(s.responses) {
		s.t.Fatalf("editor opened %d times, only %d responses scripted", len(s.opened)+1, len(s.responses))
	}
	respond := s.responses[len(s.opened)]
	s.opened = append(s.opened, text)
	return respond(text), nil
}

var _ editor.Editor = (*scriptedEditor)(nil)

func replaceText(old, new string) func(string) string {
	return func(text string) string { return strings.Replace(text, old, new, 1) }
}

func constantText(doc string) func(string) string {
	return func(string) string { return doc }
}

func seededStore() *store.MemoryGateway {
	return store.NewMemoryGateway(map[string]parameters.Parameter{
		"/preprod/db/host":     {Value: "db.internal", Type: parameters.PlainText},
		"/preprod/db/password": {Value: "hunter2", Type: parameters.Encrypted},
		"/preprod/hosts":       {Value: "a,b,c", Type: parameters.List},
		"/preprodx/other":      {Value: "untouched", Type: parameters.PlainText},
	})
}

func assertKeys(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", got, want)
	}
}
