package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harinagireddy-katta/DeKart/internal/http/render"
	"github.com/harinagireddy-katta/DeKart/internal/modules/about"
	"github.com/harinagireddy-katta/DeKart/pkg/view"
	"github.com/harinagireddy-katta/DeKart/templates/pages"
)

// AboutHandler serves the team page
type AboutHandler struct {
	page view.AboutPage
}

func NewAboutHandler() *AboutHandler {
	team := about.Team()
	contacts := make([]view.Contact, 0, len(team))
	for _, m := range team {
		contacts = append(contacts, view.Contact{
			Role:  m.Role,
			Name:  m.Name,
			Email: m.Email,
			Phone: m.Phone,
		})
	}

	return &AboutHandler{page: view.AboutPage{
		Title:    "About Us",
		Intro:    "Meet the team behind this project:",
		Contacts: contacts,
	}}
}

// Get returns the about page
func (h *AboutHandler) Get(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.About(h.page))
}
