package service

import (
	"context"
	"strings"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
	"p2p-offerbook/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// OfferBookServiceImpl implements ports.OfferBook over one BUY and one SELL view.
type OfferBookServiceImpl struct {
	views   map[domain.Direction]*OfferBookView
	offers  ports.OfferSource
	catalog ports.CurrencyCatalog
	log     zerolog.Logger
}

// NewOfferBookService creates both views. They stay inactive until Run or
// Activate is called.
func NewOfferBookService(deps ViewDeps, log zerolog.Logger) *OfferBookServiceImpl {
	return &OfferBookServiceImpl{
		views: map[domain.Direction]*OfferBookView{
			domain.DirectionBuy:  NewOfferBookView(domain.DirectionBuy, deps, log),
			domain.DirectionSell: NewOfferBookView(domain.DirectionSell, deps, log),
		},
		offers:  deps.Offers,
		catalog: deps.Catalog,
		log:     log,
	}
}

// Run keeps both views active until ctx is done.
func (s *OfferBookServiceImpl) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, v := range s.views {
		g.Go(func() error { return v.Run(ctx) })
	}
	return g.Wait()
}

// Activate activates both views.
func (s *OfferBookServiceImpl) Activate() {
	for _, v := range s.views {
		v.Activate()
	}
}

// Deactivate deactivates both views.
func (s *OfferBookServiceImpl) Deactivate() {
	for _, v := range s.views {
		v.Deactivate()
	}
}

// View returns the view bound to direction.
func (s *OfferBookServiceImpl) View(direction domain.Direction) (*OfferBookView, bool) {
	v, ok := s.views[direction]
	return v, ok
}

func (s *OfferBookServiceImpl) activeView(direction domain.Direction) (*OfferBookView, error) {
	v, ok := s.views[direction]
	if !ok {
		return nil, apperror.ErrUnknownDirection(string(direction))
	}
	v.mu.Lock()
	active := v.active
	v.mu.Unlock()
	if !active {
		return nil, apperror.ErrViewInactive()
	}
	return v, nil
}

// State returns the derived state of one view.
func (s *OfferBookServiceImpl) State(direction domain.Direction) (*ports.ViewState, error) {
	v, err := s.activeView(direction)
	if err != nil {
		return nil, err
	}
	state := v.State()
	return &state, nil
}

// Rows returns the rendered visible offers of one view.
func (s *OfferBookServiceImpl) Rows(direction domain.Direction) ([]ports.OfferRow, error) {
	v, err := s.activeView(direction)
	if err != nil {
		return nil, err
	}
	return v.Rows(), nil
}

// TradeCurrencies returns the selectable currency list of one view.
func (s *OfferBookServiceImpl) TradeCurrencies(direction domain.Direction) ([]domain.CurrencySelection, error) {
	v, err := s.activeView(direction)
	if err != nil {
		return nil, err
	}
	return v.TradeCurrencies(), nil
}

// PaymentMethods is the selectable payment method list, "all" first.
func (s *OfferBookServiceImpl) PaymentMethods() []domain.PaymentMethodSelection {
	methods := domain.AllPaymentMethods()
	list := make([]domain.PaymentMethodSelection, 0, len(methods)+1)
	list = append(list, domain.AllPaymentMethodsSelection())
	for _, m := range methods {
		list = append(list, domain.SpecificPaymentMethod(m))
	}
	return list
}

// SelectCurrency applies a boundary currency code: SHOW_ALL, EDIT or a code.
func (s *OfferBookServiceImpl) SelectCurrency(direction domain.Direction, code string) (*ports.SelectionResult, error) {
	v, err := s.activeView(direction)
	if err != nil {
		return nil, err
	}

	sel, ok := domain.ParseCurrencySelection(strings.ToUpper(strings.TrimSpace(code)), s.catalog.Lookup)
	if !ok {
		return nil, apperror.Validation("unknown currency code: " + code)
	}

	result := &ports.SelectionResult{}
	if v.OnSetTradeCurrency(sel) {
		result.NavigateTo = "currency_settings"
	}
	result.State = v.State()

	s.log.Info().
		Str("direction", string(direction)).
		Str("selection", sel.Code()).
		Msg("currency selected")
	return result, nil
}

// SelectPaymentMethod applies a boundary payment method id: SHOW_ALL or an id.
func (s *OfferBookServiceImpl) SelectPaymentMethod(direction domain.Direction, id string) (*ports.ViewState, error) {
	v, err := s.activeView(direction)
	if err != nil {
		return nil, err
	}

	id = strings.ToUpper(strings.TrimSpace(id))
	sel := domain.AllPaymentMethodsSelection()
	if id != domain.ShowAllFlag {
		m, ok := domain.LookupPaymentMethod(id)
		if !ok {
			return nil, apperror.Validation("unknown payment method: " + id)
		}
		sel = domain.SpecificPaymentMethod(m)
	}

	v.OnSetPaymentMethod(sel)
	state := v.State()
	return &state, nil
}

// SetTabSelected records which tab is on screen.
func (s *OfferBookServiceImpl) SetTabSelected(direction domain.Direction, selected bool) (*ports.ViewState, error) {
	v, err := s.activeView(direction)
	if err != nil {
		return nil, err
	}
	v.OnTabSelected(selected)
	state := v.State()
	return &state, nil
}

// RemoveOffer withdraws one of the local user's offers.
func (s *OfferBookServiceImpl) RemoveOffer(ctx context.Context, offerID string) error {
	var offer *domain.Offer
	for _, o := range s.offers.Offers() {
		if o.ID == offerID {
			offer = o
			break
		}
	}
	if offer == nil {
		return apperror.ErrNotFound("offer")
	}

	v, err := s.activeView(offer.MirroredDirection())
	if err != nil {
		return err
	}
	if !v.IsMyOffer(offer) {
		return apperror.ErrNotOwnOffer()
	}

	if err := v.OnRemoveOpenOffer(ctx, offer); err != nil {
		s.log.Warn().Err(err).Str("offer_id", offerID).Msg("offer removal failed")
		return apperror.ErrRemoveOfferFailed(err.Error())
	}

	s.log.Info().Str("offer_id", offerID).Msg("offer removed")
	return nil
}

// Observe registers fn for events of one view.
func (s *OfferBookServiceImpl) Observe(direction domain.Direction, fn func(ports.ViewEvent)) (ports.Subscription, error) {
	v, ok := s.views[direction]
	if !ok {
		return nil, apperror.ErrUnknownDirection(string(direction))
	}
	return v.Observe(fn), nil
}
