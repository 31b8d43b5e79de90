package predicate

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// NoPort is the symbolic member of a ports allow-list matching URLs that
// carry no explicit port.
const NoPort = -1

// schemePrefixRe matches a leading scheme token like "http:" or "s3+n:".
// A dot disqualifies the first segment, so "example.com:8080" reads as a
// bare host rather than a schemed URL.
var schemePrefixRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+_-]*:`)

// URL checks that a value is a well-formed absolute URL satisfying the
// configured scheme, IP-address, domain and port policy. Normalize implies a
// default scheme onto bare host input.
type URL struct {
	Base
	allowIPAddress bool
	schemes        []string
	domains        []string
	ports          []int
	impliedScheme  string
}

// NewURL constructs a URL predicate for attribute. Defaults: IPv4-literal
// hosts allowed, schemes http and https, any domain, any port, implied
// scheme "http".
func NewURL(attribute string, opts Options) (*URL, error) {
	u := &URL{
		Base:           newBase(attribute),
		allowIPAddress: true,
		schemes:        []string{"http", "https"},
		impliedScheme:  "http",
	}
	u.install(u.errorBinds, func() any { return Key("url") })
	if err := opts.apply(attribute, u.baseSetters(), u.urlSetters()); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *URL) urlSetters() setters {
	return setters{
		"allow_ip_address": u.setAllowIP,
		"schemes":          u.setSchemes,
		"domains":          u.setDomains,
		"ports":            u.setPorts,
		"implied_scheme":   u.setImpliedScheme,
	}
}

func (u *URL) setAllowIP(v any) error {
	allow, err := asBool(v)
	if err != nil {
		return err
	}
	u.allowIPAddress = allow
	return nil
}

func (u *URL) setSchemes(v any) error {
	ss, err := asStringSlice(v)
	if err != nil {
		return err
	}
	if len(ss) == 0 {
		return fmt.Errorf("%w: schemes cannot be empty", ErrInvalidOptionValue)
	}
	u.schemes = ss
	return nil
}

func (u *URL) setDomains(v any) error {
	ss, err := asStringSlice(v)
	if err != nil {
		return err
	}
	u.domains = ss
	return nil
}

func (u *URL) setPorts(v any) error {
	ps, err := asPortList(v)
	if err != nil {
		return err
	}
	u.ports = ps
	return nil
}

// setImpliedScheme accepts a scheme name or nil; nil disables normalization.
func (u *URL) setImpliedScheme(v any) error {
	if v == nil {
		u.impliedScheme = ""
		return nil
	}
	s, err := asString(v)
	if err != nil {
		return err
	}
	u.impliedScheme = s
	return nil
}

// Validate reports whether value is an absolute URL passing every configured
// check. Checks are conjunctive; the first failure decides the outcome.
func (u *URL) Validate(value any, _ Record) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	parsed, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return false
	}
	host := parsed.Hostname()
	isIP := ipv4Literal(host)
	if !isIP && !dottedHost(host) {
		return false
	}
	if !slices.Contains(u.schemes, parsed.Scheme) {
		return false
	}
	if isIP && !u.allowIPAddress {
		return false
	}
	if u.domains != nil {
		// An IP literal has no qualifying suffix, so a configured domain
		// allow-list always rejects it.
		if isIP || !slices.Contains(u.domains, tldSuffix(host)) {
			return false
		}
	}
	if u.ports != nil && !slices.Contains(u.ports, portOf(parsed)) {
		return false
	}
	return true
}

// Normalize prepends the implied scheme to input lacking a leading scheme
// token, so "example.com" becomes "http://example.com" with any path, port
// or trailing slash preserved verbatim. Already-schemed input, malformed or
// not, passes through unchanged.
func (u *URL) Normalize(value any) any {
	s, ok := value.(string)
	if !ok || u.impliedScheme == "" {
		return value
	}
	if s == "" || schemePrefixRe.MatchString(s) {
		return value
	}
	return u.impliedScheme + "://" + s
}

func (u *URL) errorBinds() map[string]any {
	return map[string]any{"schemes": strings.Join(u.schemes, ", ")}
}

func ipv4Literal(host string) bool {
	ip := net.ParseIP(host)
	return ip != nil && ip.To4() != nil
}

// dottedHost reports whether host carries a non-empty label after its last
// dot. Bare names ("example") and trailing-dot hosts ("example.") fail.
func dottedHost(host string) bool {
	i := strings.LastIndexByte(host, '.')
	return i > 0 && i < len(host)-1
}

func tldSuffix(host string) string {
	i := strings.LastIndexByte(host, '.')
	if i < 0 || i == len(host)-1 {
		return ""
	}
	return host[i+1:]
}

func portOf(parsed *url.URL) int {
	p := parsed.Port()
	if p == "" {
		return NoPort
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return NoPort
	}
	return n
}
