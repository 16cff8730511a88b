package scoring

import (
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// Stars is a rating on the 0-4 scale. 0 means there was no data to rate.
type Stars int

const (
	NoData Stars = 0
)

// wireguardPingThreshold is the average ping performance above which a fully
// capable wireguard gateway gets the top rating.
const wireguardPingThreshold = 0.75

// QualityStars maps an uptime or performance fraction to 1-4 stars. Tier
// boundaries belong to the higher tier.
func QualityStars(quality float64) Stars {
	switch {
	case quality < 0.3:
		return 1
	case quality < 0.5:
		return 2
	case quality < 0.7:
		return 3
	default:
		return 4
	}
}

// ConfigScore rates how many of the entry/exit routing checks a gateway
// passed. It returns NoData when the probe has neither entry nor exit
// results.
func ConfigScore(probe *types.ProbeResult) Stars {
	if probe == nil {
		return NoData
	}
	entry, exit := probe.AsEntry, probe.AsExit

	switch {
	case entry != nil && exit != nil:
		switch countTrue(entryChecks(entry)...) + countTrue(exitChecks(exit)...) {
		case 7:
			return 4
		case 6:
			return 3
		case 5:
			return 2
		default:
			return 1
		}
	case entry != nil:
		switch countTrue(entryChecks(entry)...) {
		case 2:
			return 4
		case 1:
			return 2
		default:
			return 1
		}
	case exit != nil:
		switch countTrue(exitChecks(exit)...) {
		case 5:
			return 4
		case 4:
			return 3
		case 3:
			return 2
		default:
			return 1
		}
	default:
		return NoData
	}
}

func entryChecks(e *types.EntryProbe) []bool {
	return []bool{e.CanConnect, e.CanRoute}
}

func exitChecks(e *types.ExitProbe) []bool {
	return []bool{
		e.CanConnect,
		e.CanRouteIPExternalV4,
		e.CanRouteIPExternalV6,
		e.CanRouteIPV4,
		e.CanRouteIPV6,
	}
}

func countTrue(checks ...bool) int {
	n := 0
	for _, c := range checks {
		if c {
			n++
		}
	}
	return n
}

// WireguardPerformance rates the wireguard probe. A gateway without wireguard
// results gets 1, not NoData; callers decide separately whether the node is a
// gateway at all.
func WireguardPerformance(probe *types.ProbeResult) Stars {
	if probe == nil || probe.Wg == nil {
		return 1
	}
	wg := probe.Wg

	avgPing := (wg.PingHostsPerformanceV4 +
		wg.PingHostsPerformanceV6 +
		wg.PingIPsPerformanceV4 +
		wg.PingIPsPerformanceV6) / 4

	fullyCapable := wg.CanRegister &&
		wg.CanHandshakeV4 && wg.CanHandshakeV6 &&
		wg.CanResolveDNSV4 && wg.CanResolveDNSV6

	switch {
	case fullyCapable && avgPing > wireguardPingThreshold:
		return 4
	case fullyCapable:
		return 3
	case wg.CanRegister && (!wg.CanHandshakeV4 || !wg.CanHandshakeV6):
		return 2
	case probe.AsExit != nil && (!probe.AsExit.CanRouteIPV4 || !probe.AsExit.CanRouteIPV6):
		return 1
	default:
		return 1
	}
}
