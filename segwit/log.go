// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import "github.com/decred/slog"

// log is a package level logger that is disabled by default.
var log = slog.Disabled

// DisableLog disables all package logging.
func DisableLog() {
	log = slog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}
