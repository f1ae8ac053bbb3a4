package address

import (
	"context"
	"net"
)

// DomainResolver is an optional capability that reports whether a domain
// exists for mail delivery purposes. It is consulted only by Validator;
// plain Validate never performs a lookup.
type DomainResolver interface {
	// HasMXOrA reports whether the domain has at least one MX or A record.
	HasMXOrA(ctx context.Context, domain string) bool
}

// NetResolver is a DomainResolver backed by the platform resolver. The
// zero value uses net.DefaultResolver.
type NetResolver struct {
	Resolver *net.Resolver
}

// HasMXOrA looks up MX records for the domain, falling back to a host
// lookup when none are found. Lookup errors are treated as "no record".
func (r *NetResolver) HasMXOrA(ctx context.Context, domain string) bool {
	res := r.Resolver
	if res == nil {
		res = net.DefaultResolver
	}

	if mxs, err := res.LookupMX(ctx, domain); err == nil && len(mxs) > 0 {
		return true
	}

	addrs, err := res.LookupHost(ctx, domain)
	return err == nil && len(addrs) > 0
}

// Validator combines pure syntax validation with an optional domain
// existence check. The zero value is equivalent to Validate.
type Validator struct {
	// Resolver, when non-nil, is consulted after the syntax checks pass.
	Resolver DomainResolver
}

// Validate reports whether the address passes the syntax checks and, when
// a Resolver is configured, whether its domain exists.
func (v *Validator) Validate(address string) bool {
	return v.ValidateContext(context.Background(), address)
}

// ValidateContext is Validate with a caller-supplied context governing any
// DNS lookup performed by the configured Resolver.
func (v *Validator) ValidateContext(ctx context.Context, address string) bool {
	if !Validate(address) {
		return false
	}

	if v.Resolver == nil {
		return true
	}

	_, domain, _ := Split(address)
	return v.Resolver.HasMXOrA(ctx, domain)
}
