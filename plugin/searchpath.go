package plugin

import (
	"os"
	"sync"

	"github.com/yllada/tabdeck/common"
)

// searchPath serializes access to a plugins directory during a discovery
// pass. Only one scan may hold the path at a time, so overlapping passes
// (reload triggered while a scan runs) execute sequentially instead of
// interleaving their registrations.
type searchPath struct {
	mu  sync.Mutex
	dir string
}

// acquire validates the directory and takes the scan lock. The returned
// release function must be called when the pass completes, normally via
// defer. acquire reports false when the directory does not exist or is
// not a directory; no lock is held in that case.
func (s *searchPath) acquire(dir string) (release func(), ok bool) {
	fi, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			common.LogWarn("Cannot access plugins directory %s: %v", dir, err)
		}
		return nil, false
	}
	if !fi.IsDir() {
		common.LogWarn("Plugins path %s is not a directory", dir)
		return nil, false
	}

	s.mu.Lock()
	s.dir = dir
	return func() {
		s.dir = ""
		s.mu.Unlock()
	}, true
}
