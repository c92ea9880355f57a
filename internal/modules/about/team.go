// Package about holds the fixed team roster shown on the About Us page.
package about

type TeamMember struct {
	Role  string
	Name  string
	Email string
	Phone string
}

var team = [...]TeamMember{
	{Role: "Backend Developer", Name: "Karthik Kuppili", Email: "karthikkuppili.offl@gmail.com", Phone: "9100388576"},
	{Role: "Web3 Developer", Name: "Puneeth Narra", Email: "narrapuneeth44@gmail.com", Phone: "9652585354"},
	{Role: "Frontend Developer", Name: "Thirush Reddy Chada", Email: "thirushreddychada@gmail.com", Phone: "7815962448"},
}

// Team returns a copy of the roster in display order.
func Team() []TeamMember {
	out := make([]TeamMember, len(team))
	copy(out, team[:])
	return out
}
