package wifisource

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestSysfsCurrentWifiMacAddress(t *testing.T) {
	cases := []struct {
		name     string
		fsys     fstest.MapFS
		expected string
	}{
		{
			name: "wireless directory",
			fsys: fstest.MapFS{
				"eth0/address":          {Data: []byte("d2:28:dd:89:27:8e\n")},
				"lo/address":            {Data: []byte("00:00:00:00:00:00\n")},
				"wlan0/address":         {Data: []byte("50:d1:5f:4e:be:75\n")},
				"wlan0/wireless/.dummy": {Data: nil},
			},
			expected: "50:d1:5f:4e:be:75",
		},
		{
			name: "phy80211 link",
			fsys: fstest.MapFS{
				"wlp2s0/address":  {Data: []byte("1c:7c:d7:09:a3:de\n")},
				"wlp2s0/phy80211": {Data: []byte("../../ieee80211/phy0")},
			},
			expected: "1c:7c:d7:09:a3:de",
		},
		{
			name: "first wireless entry wins",
			fsys: fstest.MapFS{
				"wlan1/address":         {Data: []byte("aa:bb:cc:dd:ee:01")},
				"wlan1/wireless/.dummy": {},
				"wlan0/address":         {Data: []byte("aa:bb:cc:dd:ee:00")},
				"wlan0/wireless/.dummy": {},
			},
			expected: "aa:bb:cc:dd:ee:00",
		},
		{
			name: "no wireless adapter",
			fsys: fstest.MapFS{
				"eth0/address": {Data: []byte("d2:28:dd:89:27:8e\n")},
			},
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			address, err := NewSysfsFS(tc.fsys).CurrentWifiMacAddress()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if address != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, address)
			}
		})
	}
}

func TestSysfsMissingAddress(t *testing.T) {
	fsys := fstest.MapFS{
		"wlan0/wireless/.dummy": {},
	}
	if _, err := NewSysfsFS(fsys).CurrentWifiMacAddress(); err == nil {
		t.Error("expected an error when the address file is missing")
	}
}

func TestSysfsMissingDirectory(t *testing.T) {
	address, err := NewSysfs(t.TempDir() + "/missing").CurrentWifiMacAddress()
	if err != nil || address != "" {
		t.Errorf("expected no wifi adapter without sysfs, got %q, %v", address, err)
	}
}

// deniedFS fails to open the listed paths with a permission error.
type deniedFS struct {
	fsys   fstest.MapFS
	denied map[string]bool
}

func (d deniedFS) Open(name string) (fs.File, error) {
	if d.denied[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return d.fsys.Open(name)
}

func TestSysfsUnreadableWirelessMarker(t *testing.T) {
	fsys := deniedFS{
		fsys: fstest.MapFS{
			"wlan0/address":  {Data: []byte("50:d1:5f:4e:be:75\n")},
			"wlan0/wireless": {Data: nil},
			"wlan0/phy80211": {Data: []byte("../../ieee80211/phy0")},
		},
		denied: map[string]bool{"wlan0/wireless": true},
	}

	address, err := NewSysfsFS(fsys).CurrentWifiMacAddress()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address != "50:d1:5f:4e:be:75" {
		t.Errorf("expected phy80211 to identify wlan0, got %q", address)
	}
}

func TestStatic(t *testing.T) {
	address, err := Static("D2:28:DD:89:27:8F").CurrentWifiMacAddress()
	if err != nil || address != "D2:28:DD:89:27:8F" {
		t.Errorf("expected configured address, got %q, %v", address, err)
	}
}
