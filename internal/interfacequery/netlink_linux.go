//go:build linux

package interfacequery

import (
	"errors"
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
	"iter"
)

// Netlink reads links and their addresses from the kernel over rtnetlink.
type Netlink struct {
	linkList   func() ([]netlink.Link, error)
	linkByName func(name string) (netlink.Link, error)
	addrList   func(link netlink.Link, family int) ([]netlink.Addr, error)
}

var _ types.InterfaceQuery = (*Netlink)(nil)

func NewNetlink() (*Netlink, error) {
	return &Netlink{
		linkList:   netlink.LinkList,
		linkByName: netlink.LinkByName,
		addrList:   netlink.AddrList,
	}, nil
}

func (q *Netlink) ListInterfaces() (iter.Seq2[*types.InterfaceRecord, error], error) {
	links, err := q.linkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return func(yield func(*types.InterfaceRecord, error) bool) {
		for _, link := range links {
			if !yield(q.toRecord(link)) {
				return
			}
		}
	}, nil
}

func (q *Netlink) InterfaceByName(name string) (*types.InterfaceRecord, error) {
	link, err := q.linkByName(name)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get link %s: %w", name, err)
	}

	return q.toRecord(link)
}

func (q *Netlink) toRecord(link netlink.Link) (*types.InterfaceRecord, error) {
	attrs := link.Attrs()
	addrs, err := q.addrList(link, unix.AF_UNSPEC)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses of link %s: %w", attrs.Name, err)
	}

	record := &types.InterfaceRecord{
		Index:        attrs.Index,
		Name:         attrs.Name,
		Alias:        attrs.Alias,
		HardwareAddr: attrs.HardwareAddr,
	}
	for _, addr := range addrs {
		if addr.IPNet != nil {
			record.Addresses = append(record.Addresses, addr.IP)
		}
	}
	return record, nil
}
