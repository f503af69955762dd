package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cardbox-dev/cardbox/internal/config"
)

var (
	debugOnce sync.Once
	debugFile *os.File
	debugMu   sync.Mutex
	debugDir  string
)

// ConfigureDebug sets the directory debug logs are written to. Must be called
// before the first Debug call to take effect; later calls are ignored because
// the log file is opened once.
func ConfigureDebug(dir string) {
	debugMu.Lock()
	debugDir = dir
	debugMu.Unlock()
}

// Debug appends a timestamped line to the session debug log. The log file is
// opened lazily on first use; failures to open are silent since debug logging
// must never break the UI.
func Debug(format string, args ...any) {
	debugOnce.Do(func() {
		dir := debugDir
		if dir == "" {
			dir = config.GetLogsDir()
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return
		}
		name := fmt.Sprintf("debug-%s.log", time.Now().Format("20060102-150405"))
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return
		}
		debugFile = f
	})

	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile == nil {
		return
	}
	fmt.Fprintf(debugFile, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
