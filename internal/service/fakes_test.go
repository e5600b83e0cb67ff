package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
	"p2p-offerbook/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// fakeOfferSource notifies listeners synchronously, outside its lock.
type fakeOfferSource struct {
	mu           sync.Mutex
	offers       []*domain.Offer
	mine         map[string]bool
	listeners    map[int]func(ports.OfferChange)
	next         int
	removeErr    error
	bootstrapped bool

	// beforeOffers runs at the start of Offers, outside the lock.
	beforeOffers func()
}

func newFakeOfferSource(offers ...*domain.Offer) *fakeOfferSource {
	return &fakeOfferSource{
		offers:       offers,
		mine:         map[string]bool{},
		listeners:    map[int]func(ports.OfferChange){},
		bootstrapped: true,
	}
}

func (f *fakeOfferSource) Offers() []*domain.Offer {
	if f.beforeOffers != nil {
		f.beforeOffers()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Offer(nil), f.offers...)
}

func (f *fakeOfferSource) Subscribe(fn func(ports.OfferChange)) ports.Subscription {
	f.mu.Lock()
	id := f.next
	f.next++
	f.listeners[id] = fn
	f.mu.Unlock()
	return ports.SubscriptionFunc(func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	})
}

func (f *fakeOfferSource) IsMyOffer(o *domain.Offer) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mine[o.ID]
}

func (f *fakeOfferSource) RemoveOffer(_ context.Context, o *domain.Offer) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.remove(o)
	return nil
}

func (f *fakeOfferSource) IsBootstrapped() bool { return f.bootstrapped }

func (f *fakeOfferSource) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

func (f *fakeOfferSource) add(offers ...*domain.Offer) {
	f.mu.Lock()
	f.offers = append(f.offers, offers...)
	fns := f.snapshot()
	f.mu.Unlock()
	for _, fn := range fns {
		fn(ports.OfferChange{Added: offers})
	}
}

func (f *fakeOfferSource) remove(o *domain.Offer) {
	f.mu.Lock()
	for i, x := range f.offers {
		if x == o {
			f.offers = append(f.offers[:i], f.offers[i+1:]...)
			break
		}
	}
	fns := f.snapshot()
	f.mu.Unlock()
	for _, fn := range fns {
		fn(ports.OfferChange{Removed: []*domain.Offer{o}})
	}
}

// stage stores offers and returns the pending notification without running it.
func (f *fakeOfferSource) stage(offers ...*domain.Offer) func() {
	f.mu.Lock()
	f.offers = append(f.offers, offers...)
	fns := f.snapshot()
	f.mu.Unlock()
	return func() {
		for _, fn := range fns {
			fn(ports.OfferChange{Added: offers})
		}
	}
}

func (f *fakeOfferSource) snapshot() []func(ports.OfferChange) {
	fns := make([]func(ports.OfferChange), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	return fns
}

// fakePrefs records persisted screen currency codes.
type fakePrefs struct {
	mu        sync.Mutex
	prefs     domain.Preferences
	listeners map[int]func(domain.PreferenceChange)
	next      int
	saved     []string

	// onSetScreen runs before a screen currency code is stored.
	onSetScreen func(code string)
}

func newFakePrefs(p domain.Preferences) *fakePrefs {
	return &fakePrefs{prefs: p, listeners: map[int]func(domain.PreferenceChange){}}
}

func (f *fakePrefs) Preferences() domain.Preferences {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefs.Clone()
}

func (f *fakePrefs) SetScreenCurrencyCode(d domain.Direction, code string) {
	if f.onSetScreen != nil {
		f.onSetScreen(code)
	}
	f.update(domain.PrefScreenCurrency, func(p *domain.Preferences) {
		if d == domain.DirectionBuy {
			p.BuyScreenCurrencyCode = code
		} else {
			p.SellScreenCurrencyCode = code
		}
		f.saved = append(f.saved, code)
	})
}

func (f *fakePrefs) SetUseStickyMarketPrice(sticky bool) {
	f.update(domain.PrefStickyMarketPrice, func(p *domain.Preferences) { p.UseStickyMarketPrice = sticky })
}

func (f *fakePrefs) SetShowOwnOffersInOfferBook(show bool) {
	f.update(domain.PrefShowOwnOffers, func(p *domain.Preferences) { p.ShowOwnOffersInOfferBook = show })
}

func (f *fakePrefs) SetTradeCurrencies(c []domain.TradeCurrency) {
	f.update(domain.PrefTradeCurrencies, func(p *domain.Preferences) { p.TradeCurrencies = c })
}

func (f *fakePrefs) SetIgnoreTradersList(hosts []string) {
	f.update(domain.PrefIgnoreList, func(p *domain.Preferences) { p.IgnoreTradersList = hosts })
}

func (f *fakePrefs) Subscribe(fn func(domain.PreferenceChange)) ports.Subscription {
	f.mu.Lock()
	id := f.next
	f.next++
	f.listeners[id] = fn
	f.mu.Unlock()
	return ports.SubscriptionFunc(func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	})
}

func (f *fakePrefs) savedCodes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.saved...)
}

func (f *fakePrefs) update(change domain.PreferenceChange, mutate func(*domain.Preferences)) {
	f.mu.Lock()
	mutate(&f.prefs)
	fns := make([]func(domain.PreferenceChange), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(change)
	}
}

type fakeCatalog struct {
	currencies map[string]domain.TradeCurrency
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{currencies: map[string]domain.TradeCurrency{
		"EUR": domain.NewFiatCurrency("EUR", "Euro"),
		"USD": domain.NewFiatCurrency("USD", "US Dollar"),
		"GBP": domain.NewFiatCurrency("GBP", "British Pound"),
		"XMR": domain.NewCryptoCurrency("XMR", "Monero"),
		"ETH": domain.NewCryptoCurrency("ETH", "Ether"),
	}}
}

func (c *fakeCatalog) Lookup(code string) (domain.TradeCurrency, bool) {
	tc, ok := c.currencies[code]
	return tc, ok
}

func (c *fakeCatalog) IsCryptoCurrency(code string) bool {
	return c.currencies[code].Crypto
}

func (c *fakeCatalog) DefaultCurrency() domain.TradeCurrency {
	return c.currencies["EUR"]
}

type fakeUser struct {
	address     domain.NodeAddress
	arbitrators []domain.NodeAddress
	accounts    []domain.PaymentAccount
}

func (u *fakeUser) NodeAddress() domain.NodeAddress                   { return u.address }
func (u *fakeUser) AcceptedArbitratorAddresses() []domain.NodeAddress { return u.arbitrators }
func (u *fakeUser) PaymentAccounts() []domain.PaymentAccount          { return u.accounts }

type fakeFilter struct{ rules *domain.FilterRules }

func (f *fakeFilter) Filter() *domain.FilterRules { return f.rules }

type fakeTrades struct{ trades []domain.ClosedTrade }

func (f *fakeTrades) ClosedTrades() []domain.ClosedTrade { return f.trades }

// ==================== fixtures ====================

var baseTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func testOffer(id string, dir domain.Direction, code, price, method string) *domain.Offer {
	o := &domain.Offer{
		ID:                 id,
		Direction:          dir,
		CurrencyCode:       code,
		Amount:             decimal.RequireFromString("1"),
		MinAmount:          decimal.RequireFromString("1"),
		PaymentMethodID:    method,
		OffererNodeAddress: domain.NodeAddress{HostName: "peer-" + id + ".onion", Port: 9999},
		ProtocolVersion:    1,
		CreatedAt:          baseTime,
	}
	if price != "" {
		p := decimal.RequireFromString(price)
		o.Price = &p
	}
	return o
}

func trackedPrefs(codes ...string) domain.Preferences {
	cat := newFakeCatalog()
	var tracked []domain.TradeCurrency
	for _, c := range codes {
		tc, _ := cat.Lookup(c)
		tracked = append(tracked, tc)
	}
	return domain.Preferences{
		BuyScreenCurrencyCode:  domain.ShowAllFlag,
		SellScreenCurrencyCode: domain.ShowAllFlag,
		TradeCurrencies:        tracked,
	}
}

type viewTestDeps struct {
	view      *OfferBookView
	source    *fakeOfferSource
	prefs     *fakePrefs
	catalog   *fakeCatalog
	user      *fakeUser
	filter    *fakeFilter
	trades    *fakeTrades
	feed      *mocks.MockPriceFeed
	navigator *mocks.MockNavigator
	ctrl      *gomock.Controller
}

func setupViewDeps(t *testing.T, prefs domain.Preferences, offers ...*domain.Offer) *viewTestDeps {
	ctrl := gomock.NewController(t)
	d := &viewTestDeps{
		source:    newFakeOfferSource(offers...),
		prefs:     newFakePrefs(prefs),
		catalog:   newFakeCatalog(),
		user:      &fakeUser{address: domain.NodeAddress{HostName: "me.onion", Port: 9999}},
		filter:    &fakeFilter{},
		trades:    &fakeTrades{},
		feed:      mocks.NewMockPriceFeed(ctrl),
		navigator: mocks.NewMockNavigator(ctrl),
		ctrl:      ctrl,
	}
	return d
}

func (d *viewTestDeps) viewDeps() ViewDeps {
	return ViewDeps{
		Offers:    d.source,
		Catalog:   d.catalog,
		Prefs:     d.prefs,
		PriceFeed: d.feed,
		Navigator: d.navigator,
		Trust:     NewTrustEvaluator(d.user, d.prefs, d.filter, d.trades, ".onion", 1),
	}
}

func setupView(t *testing.T, dir domain.Direction, prefs domain.Preferences, offers ...*domain.Offer) *viewTestDeps {
	d := setupViewDeps(t, prefs, offers...)
	d.view = NewOfferBookView(dir, d.viewDeps(), zerolog.Nop())
	return d
}

func offerIDs(offers []*domain.Offer) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	return ids
}
