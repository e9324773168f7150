// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spantrace

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// SetLogger installs the *zap.Logger spantrace reports once-per-failure-kind
// warnings to (see the error taxonomy's case 5: OS thread-name and
// processor-id query failures are logged at most once per kind, never on
// the hot path). Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func currentLogger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

type failureKind int

const (
	failureKindThreadName failureKind = iota
	failureKindProcessorID
	failureKindCount
)

var logOnceGuards [failureKindCount]sync.Once

func logFailureOnce(kind failureKind, msg string, err error) {
	logOnceGuards[kind].Do(func() {
		currentLogger().Warn(msg, zap.Error(err))
	})
}
