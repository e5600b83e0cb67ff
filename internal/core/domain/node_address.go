package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeAddress identifies a peer on the p2p network.
type NodeAddress struct {
	HostName string `json:"host_name"`
	Port     int    `json:"port"`
}

// ParseNodeAddress parses "host:port". A missing port is allowed and stays 0.
func ParseNodeAddress(s string) (NodeAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NodeAddress{}, fmt.Errorf("empty node address")
	}
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return NodeAddress{HostName: s}, nil
	}
	port, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return NodeAddress{}, fmt.Errorf("invalid port in node address %q: %w", s, err)
	}
	return NodeAddress{HostName: s[:idx], Port: port}, nil
}

// FullAddress renders the address as host:port.
func (a NodeAddress) FullAddress() string {
	return fmt.Sprintf("%s:%d", a.HostName, a.Port)
}

// HostNameWithoutPostFix returns the normalized host used by ban and ignore
// lists: trimmed, lower-cased, with suffix (e.g. ".onion") removed.
func (a NodeAddress) HostNameWithoutPostFix(suffix string) string {
	return NormalizeHostName(a.HostName, suffix)
}

// NormalizeHostName applies the ban/ignore list normalization to a raw entry.
// Entries may carry a port, which is dropped.
func NormalizeHostName(host, suffix string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if idx := strings.LastIndex(h, ":"); idx >= 0 {
		h = h[:idx]
	}
	if suffix != "" {
		h = strings.TrimSuffix(h, strings.ToLower(suffix))
	}
	return h
}
