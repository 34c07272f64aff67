// Package geoip resolves request IPs to coordinates via ipapi.co. Private
// and loopback addresses never reach the API; callers fall back to their
// configured default location instead.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

const DefaultBase = "https://ipapi.co"

// Location is a resolved coordinate with its human-readable place name.
type Location struct {
	Latitude  float64
	Longitude float64
	City      string
	Region    string
	Country   string
}

type Client struct {
	base       string
	httpClient *http.Client
}

func NewClient(base string) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{
		base:       strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type lookupResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	Region    string   `json:"region"`
	Country   string   `json:"country_name"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

// Lookup resolves a public IP to a location.
func (c *Client) Lookup(ctx context.Context, ip string) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", c.base, ip), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip: unexpected status %d", resp.StatusCode)
	}

	var data lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if data.Error {
		return nil, fmt.Errorf("geoip: lookup failed: %s", data.Reason)
	}
	if data.Latitude == nil || data.Longitude == nil {
		return nil, fmt.Errorf("geoip: lookup returned no coordinates")
	}

	return &Location{
		Latitude:  *data.Latitude,
		Longitude: *data.Longitude,
		City:      data.City,
		Region:    data.Region,
		Country:   data.Country,
	}, nil
}

// NormalizeIP strips port and IPv6 brackets, and collapses IPv4-mapped IPv6
// addresses to their IPv4 form.
func NormalizeIP(raw string) string {
	ip := strings.TrimSpace(raw)
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	ip = strings.Trim(ip, "[]")
	if parsed := net.ParseIP(ip); parsed != nil {
		if v4 := parsed.To4(); v4 != nil {
			return v4.String()
		}
		return parsed.String()
	}
	return ip
}

// IsPrivateIP reports whether the address is loopback, link-local, private
// range, or unparseable, i.e. not resolvable by a public geoip service.
func IsPrivateIP(raw string) bool {
	ip := net.ParseIP(NormalizeIP(raw))
	if ip == nil {
		return true
	}
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}
