package domain

// FilterRules is the operator-signed ban list distributed over the network.
// A nil *FilterRules means no rules are in force.
type FilterRules struct {
	BannedOfferIDs      []string `json:"banned_offer_ids"`
	BannedNodeAddresses []string `json:"banned_node_addresses"`
}

// IsOfferBanned reports whether the offer id is banned. Nil-safe.
func (f *FilterRules) IsOfferBanned(offerID string) bool {
	if f == nil {
		return false
	}
	for _, id := range f.BannedOfferIDs {
		if id == offerID {
			return true
		}
	}
	return false
}

// IsNodeBanned reports whether the normalized host name is banned. Entries
// are normalized with the same suffix before comparing, so rules written
// with ports, mixed case or the full onion name still match. Nil-safe.
func (f *FilterRules) IsNodeBanned(host, suffix string) bool {
	if f == nil {
		return false
	}
	for _, h := range f.BannedNodeAddresses {
		if NormalizeHostName(h, suffix) == host {
			return true
		}
	}
	return false
}
