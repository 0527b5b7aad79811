package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/shapegridgo/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log and report
// output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing, with all
// output captured in the returned buffer.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader) (*App, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}

	testApp, err := New(buf, appConfig, loader)
	if err != nil {
		t.Fatalf("failed to construct app: %v\nlogs:\n%s", err, buf.String())
	}

	t.Cleanup(func() {
		if os.Getenv("SGGO_TEST_LOGS") == "true" {
			t.Logf("--- Full output for %s ---\n%s", t.Name(), buf.String())
		}
	})

	return testApp, buf
}
