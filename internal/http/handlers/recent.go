package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harinagireddy-katta/DeKart/internal/http/middleware"
	"github.com/harinagireddy-katta/DeKart/internal/http/render"
	"github.com/harinagireddy-katta/DeKart/internal/http/validation"
	"github.com/harinagireddy-katta/DeKart/internal/modules/listing"
	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
	"github.com/harinagireddy-katta/DeKart/internal/shared/apperr"
	"github.com/harinagireddy-katta/DeKart/pkg/view"
	"github.com/harinagireddy-katta/DeKart/templates/pages"
)

// RecentHandler is the parent of the listing view: it mounts one view
// per request and opens the details panel for the selected card.
type RecentHandler struct {
	loader products.Loader
	log    *slog.Logger
}

func NewRecentHandler(loader products.Loader, l *slog.Logger) *RecentHandler {
	return &RecentHandler{loader: loader, log: l}
}

type recentQuery struct {
	Selected *int `form:"selected" binding:"omitempty,min=0"`
}

type recentJSON struct {
	State    string            `json:"state"`
	Cards    []view.Card       `json:"cards"`
	Selected *products.Product `json:"selected,omitempty"`
}

// List renders the recent listings grid, as HTML or JSON.
func (h *RecentHandler) List(c *gin.Context) {
	var q recentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid listing parameters.", validation.FromBindError(err, &q)))
		return
	}

	var selected *products.Product
	lv := listing.New(h.loader, func(p products.Product) { selected = &p }, listing.WithLogger(h.log))

	ctx := c.Request.Context()
	lv.Mount(ctx)
	defer lv.Unmount()

	// A failed load is logged by the view; the page keeps its empty grid.
	_ = lv.Wait(ctx)

	if q.Selected != nil {
		if err := lv.Select(*q.Selected); err != nil {
			if errors.Is(err, listing.ErrNoSuchCard) {
				middleware.Fail(c, apperr.NotFoundErr("Listing not found."))
				return
			}
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	}

	cards := lv.Cards()
	display := make([]view.Card, 0, len(cards))
	for _, card := range cards {
		display = append(display, card.Card)
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, recentJSON{
			State:    lv.State().String(),
			Cards:    display,
			Selected: selected,
		})
		return
	}

	vm := view.RecentPage{
		Title: "Recent Listings",
		Cards: display,
	}
	if selected != nil {
		vm.Selected = &view.ProductDetail{
			ImageURL:    selected.Image,
			Description: selected.Description,
			OwnerName:   selected.OwnerName,
			PriceLabel:  view.FormatPrice(selected.Price, products.PriceUnit),
		}
	}
	render.Component(c, http.StatusOK, pages.Recent(vm))
}
