package memory

import (
	"context"
	"fmt"
	"sync"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
)

// UserStore implements ports.UserAccount from the stored node profile.
type UserStore struct {
	repo ports.UserProfileRepository

	mu      sync.RWMutex
	profile domain.UserProfile
}

// NewUserStore creates a store for the local node. Until Reload finds a
// stored profile the user has no arbitrators and no payment accounts.
func NewUserStore(repo ports.UserProfileRepository, node domain.NodeAddress) *UserStore {
	return &UserStore{repo: repo, profile: domain.UserProfile{NodeAddress: node}}
}

func (s *UserStore) NodeAddress() domain.NodeAddress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.NodeAddress
}

func (s *UserStore) AcceptedArbitratorAddresses() []domain.NodeAddress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.NodeAddress(nil), s.profile.AcceptedArbitrators...)
}

func (s *UserStore) PaymentAccounts() []domain.PaymentAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PaymentAccount(nil), s.profile.PaymentAccounts...)
}

// SetProfile replaces the profile. The node address is kept.
func (s *UserStore) SetProfile(p domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.NodeAddress = s.profile.NodeAddress
	s.profile = p
}

// Reload reads the profile of the local node from the repository.
func (s *UserStore) Reload(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	p, err := s.repo.Load(ctx, s.NodeAddress().HostName)
	if err != nil {
		return fmt.Errorf("reload user profile: %w", err)
	}
	if p != nil {
		s.SetProfile(*p)
	}
	return nil
}
