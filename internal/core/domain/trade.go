package domain

import "time"

// ClosedTrade is a completed, failed or cancelled tradable from the local history.
// Cancelled own offers never had a peer, so TradingPeerNodeAddress may be nil.
type ClosedTrade struct {
	ID                     string
	OfferID                string
	TradingPeerNodeAddress *NodeAddress
	ClosedAt               time.Time
}
