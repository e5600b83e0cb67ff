package service

import (
	"context"
	"sync"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
	"p2p-offerbook/pkg/livelist"

	"github.com/rs/zerolog"
)

// ViewMetrics receives engine measurements. All methods must not block.
type ViewMetrics interface {
	FilterApplied(direction domain.Direction, visible int)
	SelectionChanged(direction domain.Direction, dimension string, kind domain.SelectionKind)
	PriceFeedPushed(direction domain.Direction, code string)
}

type nopMetrics struct{}

func (nopMetrics) FilterApplied(domain.Direction, int)                             {}
func (nopMetrics) SelectionChanged(domain.Direction, string, domain.SelectionKind) {}
func (nopMetrics) PriceFeedPushed(domain.Direction, string)                        {}

// ViewDeps are the collaborators of an OfferBookView.
type ViewDeps struct {
	Offers    ports.OfferSource
	Catalog   ports.CurrencyCatalog
	Prefs     ports.PreferenceStore
	PriceFeed ports.PriceFeed
	Navigator ports.Navigator
	Trust     *TrustEvaluator
	Metrics   ViewMetrics // nil = no metrics
}

// OfferBookView is the engine behind one offer book tab. It is bound to a
// direction for its whole life and owns its selection state exclusively.
//
// Every entry point runs under mu, so callbacks from the offer source, the
// preference store and the user are processed one at a time and no partial
// update is observable. Calls that may re-enter the view (preference
// persistence, navigation, offer removal) happen after mu is released.
//
// selMu is taken before mu by user selections and held through persistence,
// so the persisted screen currency always matches the live selection.
type OfferBookView struct {
	selMu sync.Mutex
	mu    sync.Mutex

	direction domain.Direction
	offers    ports.OfferSource
	catalog   ports.CurrencyCatalog
	prefs     ports.PreferenceStore
	navigator ports.Navigator
	trust     *TrustEvaluator
	feedSync  *PriceFeedSynchronizer
	metrics   ViewMetrics
	log       zerolog.Logger

	list *livelist.List[*domain.Offer]
	subs []ports.Subscription

	active      bool
	tabSelected bool

	tradeCurrency         domain.TradeCurrency
	showAllCurrencies     bool
	paymentMethod         domain.PaymentMethod
	showAllPaymentMethods bool
	sortOrder             domain.SortOrder
	trackedCodes          map[string]struct{}
	tradeCurrencies       []domain.CurrencySelection

	obsMu     sync.Mutex
	observers map[int]func(ports.ViewEvent)
	nextObs   int
}

// NewOfferBookView creates an inactive view bound to direction.
func NewOfferBookView(direction domain.Direction, deps ViewDeps, log zerolog.Logger) *OfferBookView {
	metrics := deps.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}
	log = log.With().Str("direction", string(direction)).Logger()

	v := &OfferBookView{
		direction:             direction,
		offers:                deps.Offers,
		catalog:               deps.Catalog,
		prefs:                 deps.Prefs,
		navigator:             deps.Navigator,
		trust:                 deps.Trust,
		feedSync:              NewPriceFeedSynchronizer(deps.PriceFeed, deps.Prefs, deps.Catalog, log),
		metrics:               metrics,
		log:                   log,
		list:                  livelist.New[*domain.Offer](),
		showAllCurrencies:     true,
		showAllPaymentMethods: true,
		trackedCodes:          map[string]struct{}{},
		observers:             make(map[int]func(ports.ViewEvent)),
	}
	v.list.Observe(func(livelist.Change[*domain.Offer]) {
		v.emit(ports.ViewEvent{Kind: ports.ViewChanged, Direction: v.direction, Visible: v.list.Len()})
	})
	return v
}

// Direction is the side this view is bound to.
func (v *OfferBookView) Direction() domain.Direction {
	return v.direction
}

// Run activates the view and keeps it active until ctx is done.
func (v *OfferBookView) Run(ctx context.Context) error {
	v.Activate()
	defer v.Deactivate()
	<-ctx.Done()
	return nil
}

// Activate restores the selection from preferences, registers the listeners
// and evaluates the filter over the current offers. Calling it on an active
// view is a no-op.
func (v *OfferBookView) Activate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.active {
		return
	}

	prefs := v.prefs.Preferences()
	v.trackedCodes = trackedCodeSet(prefs.TradeCurrencies)

	code := prefs.ScreenCurrencyCode(v.direction)
	sel, ok := domain.ParseCurrencySelection(code, v.catalog.Lookup)
	if c, specific := sel.Currency(); ok && specific {
		v.showAllCurrencies = false
		v.tradeCurrency = c
	} else {
		v.showAllCurrencies = true
		v.tradeCurrency = v.catalog.DefaultCurrency()
	}

	v.showAllPaymentMethods = true
	v.paymentMethod = domain.PaymentMethod{}

	v.applySortOrder()
	v.fillTradeCurrencies(prefs.TradeCurrencies)

	v.subs = append(v.subs,
		v.prefs.Subscribe(v.onPreferenceChanged),
		v.offers.Subscribe(v.onOffersChanged),
	)
	v.active = true

	v.list.SetAll(v.offers.Offers())
	v.applyFilter()
	v.syncPriceFeed()

	v.log.Debug().
		Str("currency", v.tradeCurrency.Code).
		Bool("show_all", v.showAllCurrencies).
		Int("tracked", len(v.trackedCodes)).
		Msg("offer book view activated")
}

// Deactivate releases every listener registered by Activate.
func (v *OfferBookView) Deactivate() {
	v.mu.Lock()
	subs := v.subs
	v.subs = nil
	wasActive := v.active
	v.active = false
	v.tabSelected = false
	v.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
	if wasActive {
		v.log.Debug().Msg("offer book view deactivated")
	}
}

// OnTabSelected records tab visibility and re-points the price feed.
func (v *OfferBookView) OnTabSelected(selected bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tabSelected = selected
	v.syncPriceFeed()
}

// OnSetTradeCurrency applies a currency list entry. It returns true when the
// entry was the edit entry, in which case only navigation happened.
func (v *OfferBookView) OnSetTradeCurrency(sel domain.CurrencySelection) bool {
	v.selMu.Lock()
	defer v.selMu.Unlock()

	if sel.Kind() == domain.SelectEdit {
		v.metrics.SelectionChanged(v.direction, "currency", domain.SelectEdit)
		v.navigator.NavigateToCurrencySettings(v.direction)
		return true
	}

	v.mu.Lock()
	if c, ok := sel.Currency(); ok {
		v.showAllCurrencies = false
		v.tradeCurrency = c
	} else {
		v.showAllCurrencies = true
	}

	v.applySortOrder()
	v.syncPriceFeed()
	v.applyFilter()
	v.mu.Unlock()

	v.metrics.SelectionChanged(v.direction, "currency", sel.Kind())
	v.prefs.SetScreenCurrencyCode(v.direction, sel.Code())
	v.emit(ports.ViewEvent{Kind: ports.ViewSelection, Direction: v.direction, Target: sel.Code(), Visible: v.list.Len()})
	return false
}

// OnSetPaymentMethod applies a payment method list entry.
func (v *OfferBookView) OnSetPaymentMethod(sel domain.PaymentMethodSelection) {
	v.selMu.Lock()
	defer v.selMu.Unlock()

	v.mu.Lock()
	if m, ok := sel.Method(); ok {
		v.showAllPaymentMethods = false
		v.paymentMethod = m
	} else {
		v.showAllPaymentMethods = true
	}
	v.applyFilter()
	v.mu.Unlock()

	v.metrics.SelectionChanged(v.direction, "payment_method", sel.Kind())
	v.emit(ports.ViewEvent{Kind: ports.ViewSelection, Direction: v.direction, Target: sel.ID(), Visible: v.list.Len()})
}

// OnRemoveOpenOffer delegates removal of an own offer to the offer source.
// The view sees the removal through its offer listener.
func (v *OfferBookView) OnRemoveOpenOffer(ctx context.Context, offer *domain.Offer) error {
	return v.offers.RemoveOffer(ctx, offer)
}

// Offers is the live filtered and sorted projection.
func (v *OfferBookView) Offers() []*domain.Offer {
	return v.list.Items()
}

// snapshot reads the projection and the selection it was built for.
func (v *OfferBookView) snapshot() ([]*domain.Offer, domain.SelectionState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list.Items(), v.selection()
}

// TradeCurrencies is the selectable currency list: all, tracked, edit.
func (v *OfferBookView) TradeCurrencies() []domain.CurrencySelection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.CurrencySelection(nil), v.tradeCurrencies...)
}

// Selection returns the current selection snapshot.
func (v *OfferBookView) Selection() domain.SelectionState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection()
}

// State returns the derived view state.
func (v *OfferBookView) State() ports.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	sel := v.selection()
	return ports.ViewState{
		Selection:                    sel,
		PriceSortOrder:               v.sortOrder,
		TabSelected:                  v.tabSelected,
		Active:                       v.active,
		VisibleOffers:                v.list.Len(),
		IsBootstrapped:               v.offers.IsBootstrapped(),
		HasPaymentAccount:            v.trust.HasPaymentAccount(),
		HasPaymentAccountForCurrency: v.trust.HasPaymentAccountForCurrency(sel),
		HasAcceptedArbitrators:       v.trust.HasAcceptedArbitrators(),
	}
}

// IsMyOffer reports whether the local user published offer.
func (v *OfferBookView) IsMyOffer(offer *domain.Offer) bool {
	return v.offers.IsMyOffer(offer)
}

// Observe registers fn for view events. Observers must not call back into
// the view synchronously.
func (v *OfferBookView) Observe(fn func(ports.ViewEvent)) ports.Subscription {
	v.obsMu.Lock()
	id := v.nextObs
	v.nextObs++
	v.observers[id] = fn
	v.obsMu.Unlock()

	var once sync.Once
	return ports.SubscriptionFunc(func() {
		once.Do(func() {
			v.obsMu.Lock()
			delete(v.observers, id)
			v.obsMu.Unlock()
		})
	})
}

// --- listeners ---

func (v *OfferBookView) onOffersChanged(c ports.OfferChange) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.active {
		return
	}
	v.list.Remove(c.Removed...)
	v.list.Add(c.Added...)
}

func (v *OfferBookView) onPreferenceChanged(change domain.PreferenceChange) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.active {
		return
	}

	switch change {
	case domain.PrefTradeCurrencies:
		currencies := v.prefs.Preferences().TradeCurrencies
		v.trackedCodes = trackedCodeSet(currencies)
		v.fillTradeCurrencies(currencies)
		v.applyFilter()
	case domain.PrefShowOwnOffers:
		v.applyFilter()
	case domain.PrefStickyMarketPrice:
		v.syncPriceFeed()
	case domain.PrefIgnoreList:
		v.emit(ports.ViewEvent{Kind: ports.ViewChanged, Direction: v.direction, Visible: v.list.Len()})
	}
}

// --- helpers, mu held ---

func (v *OfferBookView) selection() domain.SelectionState {
	return domain.SelectionState{
		Direction:              v.direction,
		TradeCurrency:          v.tradeCurrency,
		ShowAllTradeCurrencies: v.showAllCurrencies,
		PaymentMethod:          v.paymentMethod,
		ShowAllPaymentMethods:  v.showAllPaymentMethods,
	}
}

// applySortOrder uses the fiat rule while all currencies are shown.
func (v *OfferBookView) applySortOrder() {
	isCrypto := !v.showAllCurrencies && v.catalog.IsCryptoCurrency(v.tradeCurrency.Code)
	order := PriceSortOrder(v.direction, isCrypto)
	if order == v.sortOrder {
		return
	}
	v.sortOrder = order
	v.list.SetComparator(priceComparator(order))
}

func (v *OfferBookView) syncPriceFeed() {
	if code, pushed := v.feedSync.Sync(v.tabSelected, v.selection()); pushed {
		v.metrics.PriceFeedPushed(v.direction, code)
	}
}

func (v *OfferBookView) applyFilter() {
	tracked := make(map[string]struct{}, len(v.trackedCodes))
	for code := range v.trackedCodes {
		tracked[code] = struct{}{}
	}
	fc := FilterContext{
		Direction:            v.direction,
		Selection:            v.selection(),
		TrackedCurrencyCodes: tracked,
		ShowOwnOffers:        v.prefs.Preferences().ShowOwnOffersInOfferBook,
		IsMyOffer:            v.offers.IsMyOffer,
	}
	v.list.SetPredicate(func(o *domain.Offer) bool { return IsOfferVisible(o, fc) })
	v.metrics.FilterApplied(v.direction, v.list.Len())
}

func (v *OfferBookView) fillTradeCurrencies(tracked []domain.TradeCurrency) {
	list := make([]domain.CurrencySelection, 0, len(tracked)+2)
	list = append(list, domain.AllCurrencies())
	for _, c := range tracked {
		list = append(list, domain.SpecificCurrency(c))
	}
	list = append(list, domain.EditCurrencies())
	v.tradeCurrencies = list
}

func (v *OfferBookView) emit(e ports.ViewEvent) {
	v.obsMu.Lock()
	fns := make([]func(ports.ViewEvent), 0, len(v.observers))
	for _, fn := range v.observers {
		fns = append(fns, fn)
	}
	v.obsMu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}
