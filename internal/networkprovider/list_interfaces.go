package networkprovider

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
)

func (p *Provider) ListInterfaces() ([]*types.InterfaceDetails, error) {
	interfaces, err := p.query.ListInterfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}
	if interfaces == nil {
		return nil, nil
	}

	var details []*types.InterfaceDetails
	for record, err := range interfaces {
		if err != nil {
			return nil, fmt.Errorf("failed to read network interface: %w", err)
		}
		if record != nil {
			details = append(details, toDetails(record))
		}
	}
	return details, nil
}
