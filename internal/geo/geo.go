// Package geo defines the boundary to the external IP geolocation
// collaborator. The core only depends on the Resolver contract; the real
// lookup database lives outside this repository.
package geo

import "net/netip"

// Resolver maps an IP address to a (country, city) pair. Implementations must
// return empty strings instead of failing and must never block indefinitely.
type Resolver interface {
	Lookup(ip string) (country, city string)
}

// Nop is the default resolver used when no geolocation source is configured.
type Nop struct{}

// Lookup always reports unknown geography.
func (Nop) Lookup(string) (string, string) { return "", "" }

// IsPrivate reports whether ip is a private, loopback, or link-local address,
// or not a parseable address at all. Such addresses are never sent to the
// geo resolver.
func IsPrivate(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return true
	}
	return addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsUnspecified()
}
