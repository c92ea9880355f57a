package view

type Contact struct {
	Role  string
	Name  string
	Email string
	Phone string
}

type AboutPage struct {
	Title    string
	Intro    string
	Contacts []Contact
}
