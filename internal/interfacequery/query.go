package interfacequery

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"runtime"
	"strings"
)

const (
	BackendNetlink  = "netlink"
	BackendGopsutil = "gopsutil"
)

func DefaultBackend() string {
	if runtime.GOOS == "linux" {
		return BackendNetlink
	}
	return BackendGopsutil
}

func New(backend string) (types.InterfaceQuery, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendNetlink:
		query, err := NewNetlink()
		if err != nil {
			return nil, err
		}
		return query, nil
	case BackendGopsutil:
		return NewGopsutil(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownBackend, backend)
	}
}
