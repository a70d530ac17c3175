// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"syscall"
)

// isFatalFsnotifyError reports whether an fsnotify error means the
// watcher cannot recover. On Linux these are the inotify resource
// exhaustion errnos: ENOSPC (fs.inotify.max_user_watches exceeded),
// EMFILE (per-process fd limit), ENFILE (system-wide fd limit).
func isFatalFsnotifyError(err error) bool {
	return errors.Is(err, syscall.ENOSPC) ||
		errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE)
}
