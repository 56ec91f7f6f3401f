package wifisource

import (
	"errors"
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"io/fs"
	"os"
	"path"
	"strings"
)

const DefaultSysfsNetDir = "/sys/class/net"

// Sysfs finds the Wi-Fi adapter in the kernel's /sys/class/net tree. An entry
// is wireless when it has a "wireless" or "phy80211" child; the first one in
// lexical order wins.
type Sysfs struct {
	fsys fs.FS
}

var _ types.WifiMacSource = (*Sysfs)(nil)

func NewSysfs(netDir string) *Sysfs {
	return &Sysfs{fsys: os.DirFS(netDir)}
}

func NewSysfsFS(fsys fs.FS) *Sysfs {
	return &Sysfs{fsys: fsys}
}

func (s *Sysfs) CurrentWifiMacAddress() (string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		// no sysfs, so no wireless adapter to report
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to read network class directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !s.isWireless(name) {
			continue
		}

		address, err := fs.ReadFile(s.fsys, path.Join(name, "address"))
		if err != nil {
			return "", fmt.Errorf("failed to read address of %s: %w", name, err)
		}
		return strings.TrimSpace(string(address)), nil
	}
	return "", nil
}

func (s *Sysfs) isWireless(name string) bool {
	for _, marker := range []string{"wireless", "phy80211"} {
		if _, err := fs.Stat(s.fsys, path.Join(name, marker)); err == nil {
			return true
		}
	}
	return false
}
