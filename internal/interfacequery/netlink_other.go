//go:build !linux

package interfacequery

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"iter"
)

type Netlink struct{}

var _ types.InterfaceQuery = (*Netlink)(nil)

func NewNetlink() (*Netlink, error) {
	return nil, types.ErrBackendUnsupported
}

func (q *Netlink) ListInterfaces() (iter.Seq2[*types.InterfaceRecord, error], error) {
	return nil, types.ErrBackendUnsupported
}

func (q *Netlink) InterfaceByName(string) (*types.InterfaceRecord, error) {
	return nil, types.ErrBackendUnsupported
}
