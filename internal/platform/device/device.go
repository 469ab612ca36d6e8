// Package device turns raw User-Agent strings into short display names for
// request logs.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent returns a compact "<browser> on <platform>" description,
// e.g. "Chrome on Mac OS X" or "Safari on iPhone". Empty or unparseable
// strings yield "Unknown Device".
func ParseUserAgent(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Unknown Device"
	}

	ua := useragent.New(raw)

	browser, _ := ua.Browser()
	platform := ua.OSInfo().Name
	if platform == "" {
		platform = ua.Platform()
	}

	switch {
	case browser != "" && platform != "":
		return browser + " on " + platform
	case browser != "":
		return browser
	case platform != "":
		return platform
	default:
		return "Unknown Device"
	}
}
