package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harinagireddy-katta/DeKart/pkg/view"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func teamPage() view.AboutPage {
	return view.AboutPage{
		Title: "About Us",
		Intro: "Meet the team behind this project:",
		Contacts: []view.Contact{
			{Role: "Backend Developer", Name: "Karthik Kuppili", Email: "karthikkuppili.offl@gmail.com", Phone: "9100388576"},
			{Role: "Web3 Developer", Name: "Puneeth Narra", Email: "narrapuneeth44@gmail.com", Phone: "9652585354"},
			{Role: "Frontend Developer", Name: "Thirush Reddy Chada", Email: "thirushreddychada@gmail.com", Phone: "7815962448"},
		},
	}
}

func TestAboutContent(t *testing.T) {
	html := renderString(t, AboutContent(teamPage()))

	assert.Equal(t, 1, strings.Count(html, "<h1>About Us</h1>"))
	assert.Equal(t, 3, strings.Count(html, `class="about-category"`))

	wantInOrder := []string{
		"<span>Backend Developer</span>",
		"<strong>Karthik Kuppili</strong>",
		`<a href="mailto:karthikkuppili.offl@gmail.com">karthikkuppili.offl@gmail.com</a>`,
		"Phone: 9100388576",
		"<span>Web3 Developer</span>",
		"<strong>Puneeth Narra</strong>",
		`<a href="mailto:narrapuneeth44@gmail.com">narrapuneeth44@gmail.com</a>`,
		"Phone: 9652585354",
		"<span>Frontend Developer</span>",
		"<strong>Thirush Reddy Chada</strong>",
		`<a href="mailto:thirushreddychada@gmail.com">thirushreddychada@gmail.com</a>`,
		"Phone: 7815962448",
	}
	pos := 0
	for _, want := range wantInOrder {
		i := strings.Index(html[pos:], want)
		require.GreaterOrEqual(t, i, 0, "missing or out of order: %s", want)
		pos += i + len(want)
	}
}

func TestAboutIsByteStable(t *testing.T) {
	first := renderString(t, About(teamPage()))
	second := renderString(t, About(teamPage()))

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "<!doctype html>"))
	assert.Contains(t, first, "<title>About Us | DeKart</title>")
}
