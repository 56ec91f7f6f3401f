package networkprovider

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/macaddr"
)

// NameByMacAddress returns the name of the first interface, in OS order, whose
// hardware address equals mac, or "" when there is none.
func (p *Provider) NameByMacAddress(mac *macaddr.MAC) (string, error) {
	record, err := p.findByMacAddress(mac)
	if err != nil || record == nil {
		return "", err
	}

	return record.Name, nil
}
