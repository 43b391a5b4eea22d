package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// FromRequest resolves the client address of r. Forwarding headers
// (X-Forwarded-For, then X-Real-IP) are read only when trustProxy is set;
// otherwise, and when they hold no valid address, the peer address is used.
// It returns "" when nothing parses.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for ip := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if parsed := normalize(ip); parsed != "" {
				return parsed
			}
		}
		if parsed := normalize(r.Header.Get("X-Real-IP")); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
