package promcfg

import (
	"net"
	"strconv"
	"strings"
)

// TargetDeclaration is one named scrape job: a derived name, the addresses
// the job scrapes, and its per-job option entries. Declarations are immutable
// once parsed and consumed exactly once by the assembler.
type TargetDeclaration struct {
	Name      string
	Addresses []string
	Options   []OptionEntry
}

// NewTargetDeclaration validates the address list and builds a declaration.
// A declaration must carry at least one address, and every address must pass
// ValidateAddress; any failure aborts the declaration as a whole.
func NewTargetDeclaration(name string, addresses []string, options []OptionEntry) (*TargetDeclaration, error) {
	if len(addresses) == 0 {
		return nil, Validation(name, "target declares no addresses")
	}
	for _, addr := range addresses {
		if err := ValidateAddress(addr); err != nil {
			return nil, err
		}
	}
	return &TargetDeclaration{Name: name, Addresses: addresses, Options: options}, nil
}

// JobName returns the name as emitted into the document: lowercased.
func (t *TargetDeclaration) JobName() string {
	return strings.ToLower(t.Name)
}

// ValidateAddress checks host[:port] syntax: a non-empty host, optionally
// followed by a decimal port in the 1-65535 range. Bracketed IPv6 hosts go
// through net.SplitHostPort; a bare IPv6 address without brackets is
// rejected because its colons are ambiguous with the port separator.
func ValidateAddress(addr string) error {
	host := addr
	if strings.Contains(addr, ":") {
		h, port, err := net.SplitHostPort(addr)
		if err != nil {
			return Validation(addr, "not a host:port pair: %v", err)
		}
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return Validation(addr, "port %q is not in 1-65535", port)
		}
		host = h
	}
	if host == "" {
		return Validation(addr, "empty host")
	}
	if strings.ContainsAny(host, " \t/") {
		return Validation(addr, "host contains illegal characters")
	}
	return nil
}
