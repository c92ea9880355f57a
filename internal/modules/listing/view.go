// Package listing holds the card-list view fed by one load of the
// product collection.
package listing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
	"github.com/harinagireddy-katta/DeKart/pkg/view"
)

// SelectFunc receives the full record behind an activated card.
type SelectFunc func(item products.Product)

// Card is a rendered card plus its activation.
type Card struct {
	view.Card
	activate func()
}

// Activate forwards the card's record to the view's SelectFunc.
func (c Card) Activate() {
	if c.activate != nil {
		c.activate()
	}
}

// View owns the current collection. It loads once per mount and keeps
// the previous collection when a load fails.
type View struct {
	loader products.Loader
	log    *slog.Logger

	done chan struct{}

	mu        sync.Mutex
	state     State
	mounted   bool
	unmounted bool
	cancel    context.CancelFunc
	result    products.Result

	items        []products.Product
	itemsVersion uint64

	onSelect      SelectFunc
	selectVersion uint64

	memo *cardMemo
}

type cardMemo struct {
	itemsVersion  uint64
	selectVersion uint64
	cards         []Card
}

type Option func(*View)

func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.log = l
		}
	}
}

func New(loader products.Loader, onSelect SelectFunc, opts ...Option) *View {
	v := &View{
		loader:   loader,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		done:     make(chan struct{}),
		items:    []products.Product{},
		onSelect: onSelect,
		result:   products.Result{Products: []products.Product{}},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount starts the single load in the background. Later calls are no-ops.
// Cancelling ctx has the same effect as Unmount on the pending load.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted || v.unmounted {
		return
	}
	v.mounted = true
	v.state = Loading

	loadCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	go v.load(loadCtx)
}

func (v *View) load(ctx context.Context) {
	defer close(v.done)

	res := products.Fetch(ctx, v.loader)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unmounted || ctx.Err() != nil {
		v.result = products.Result{Products: v.items, Err: ErrDiscarded}
		v.log.LogAttrs(ctx, slog.LevelDebug, "listing_result_discarded",
			slog.Int("items", len(res.Products)),
		)
		return
	}

	if res.Err != nil {
		v.state = Failed
		v.result = products.Result{Products: v.items, Err: res.Err}
		v.log.LogAttrs(ctx, slog.LevelError, "listing_load_failed",
			slog.Any("err", res.Err),
		)
		return
	}

	v.items = res.Products
	v.itemsVersion++
	v.state = Loaded
	v.result = res
}

// Wait blocks until the load settles or ctx is done and reports its outcome.
func (v *View) Wait(ctx context.Context) products.Result {
	v.mu.Lock()
	mounted := v.mounted
	v.mu.Unlock()

	if !mounted {
		return products.Result{Products: v.Items(), Err: ErrNotMounted}
	}

	select {
	case <-v.done:
	case <-ctx.Done():
		return products.Result{Products: v.Items(), Err: ctx.Err()}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// Unmount cancels a pending load and waits for it to return.
// A result that arrives afterwards is dropped.
func (v *View) Unmount() {
	v.mu.Lock()
	if v.unmounted {
		v.mu.Unlock()
		return
	}
	v.unmounted = true
	mounted, cancel := v.mounted, v.cancel
	v.mu.Unlock()

	if !mounted {
		return
	}
	cancel()
	<-v.done
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Items returns the current collection. Callers must not modify it.
func (v *View) Items() []products.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.items
}

// SetOnSelect swaps the callback. Cards derived before the swap keep
// calling the old one.
func (v *View) SetOnSelect(fn SelectFunc) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onSelect = fn
	v.selectVersion++
}

// Cards derives one card per record. The slice is reused until the
// collection or the callback changes, so callers must not modify it.
func (v *View) Cards() []Card {
	v.mu.Lock()
	defer v.mu.Unlock()

	if m := v.memo; m != nil && m.itemsVersion == v.itemsVersion && m.selectVersion == v.selectVersion {
		return m.cards
	}

	fn := v.onSelect
	cards := make([]Card, len(v.items))
	for i, p := range v.items {
		cards[i] = Card{
			Card: view.Card{
				Index:       i,
				ImageURL:    p.Image,
				Description: p.Description,
				OwnerName:   p.OwnerName,
				PriceLabel:  view.FormatPrice(p.Price, products.PriceUnit),
			},
			activate: func() {
				if fn != nil {
					fn(p)
				}
			},
		}
	}

	v.memo = &cardMemo{
		itemsVersion:  v.itemsVersion,
		selectVersion: v.selectVersion,
		cards:         cards,
	}
	return cards
}

// Select activates card i.
func (v *View) Select(i int) error {
	cards := v.Cards()
	if i < 0 || i >= len(cards) {
		return fmt.Errorf("%w: %d", ErrNoSuchCard, i)
	}
	cards[i].Activate()
	return nil
}
