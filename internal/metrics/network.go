package metrics

import (
	"sort"

	"github.com/jonathan/status-page/internal/types"
)

// RecentInteraction is an interaction tagged with its owning contact.
type RecentInteraction struct {
	types.Interaction
	ContactName string
	ContactID   string
}

// Network aggregates the contact list: interaction volume, the last
// week's activity, and how many contacts are tied to tracked roles.
type Network struct {
	ContactCount           int
	TotalInteractions      int
	RecentInteractionCount int
	ContactsWithJobsCount  int
	Contacts               []types.Contact
	Recent                 []RecentInteraction
}

// ComputeNetwork aggregates the network document. Recent interactions
// cover the last 7 days (inclusive) and are sorted by date descending;
// ties keep contact-file order.
func ComputeNetwork(network types.NetworkData, clock Clock) Network {
	net := Network{
		ContactCount: len(network.Contacts),
		Contacts:     network.Contacts,
	}

	weekAgo := clock.DaysAgo(7)
	for _, c := range network.Contacts {
		net.TotalInteractions += len(c.Interactions)
		linked := false
		for _, in := range c.Interactions {
			if len(in.LinkedJobs) > 0 {
				linked = true
			}
			if in.Date >= weekAgo {
				net.Recent = append(net.Recent, RecentInteraction{
					Interaction: in,
					ContactName: c.Name,
					ContactID:   c.ID,
				})
			}
		}
		if linked {
			net.ContactsWithJobsCount++
		}
	}

	sort.SliceStable(net.Recent, func(i, j int) bool {
		return net.Recent[i].Date > net.Recent[j].Date
	})
	net.RecentInteractionCount = len(net.Recent)
	return net
}
