package interfacequery

import (
	"encoding/hex"
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	psnet "github.com/shirou/gopsutil/v3/net"
	"iter"
	"net"
	"strings"
)

// Gopsutil reads the interface table through gopsutil, which works on every
// platform gopsutil supports.
type Gopsutil struct {
	interfaces func() (psnet.InterfaceStatList, error)
}

var _ types.InterfaceQuery = (*Gopsutil)(nil)

func NewGopsutil() *Gopsutil {
	return &Gopsutil{interfaces: psnet.Interfaces}
}

func (q *Gopsutil) ListInterfaces() (iter.Seq2[*types.InterfaceRecord, error], error) {
	stats, err := q.interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	return func(yield func(*types.InterfaceRecord, error) bool) {
		for _, stat := range stats {
			if !yield(statToRecord(stat)) {
				return
			}
		}
	}, nil
}

func (q *Gopsutil) InterfaceByName(name string) (*types.InterfaceRecord, error) {
	stats, err := q.interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	for _, stat := range stats {
		if stat.Name == name {
			return statToRecord(stat)
		}
	}
	return nil, nil
}

func statToRecord(stat psnet.InterfaceStat) (*types.InterfaceRecord, error) {
	record := &types.InterfaceRecord{
		Index: stat.Index,
		Name:  stat.Name,
	}

	if stat.HardwareAddr != "" {
		// tunnels report 4 and 16 byte addresses, which net.ParseMAC rejects
		hw, err := hex.DecodeString(strings.ReplaceAll(stat.HardwareAddr, ":", ""))
		if err != nil {
			return nil, fmt.Errorf("failed to parse hardware address of %s: %w", stat.Name, err)
		}
		record.HardwareAddr = net.HardwareAddr(hw)
	}

	for _, addr := range stat.Addrs {
		// gopsutil reports addresses in prefix notation
		ip, _, err := net.ParseCIDR(addr.Addr)
		if err != nil {
			ip = net.ParseIP(addr.Addr)
		}
		if ip != nil {
			record.Addresses = append(record.Addresses, ip)
		}
	}
	return record, nil
}
