package render

import "time"

// RenderInput is the deterministic input used for receipt rendering.
type RenderInput struct {
	Profile  ProfileView
	Customer CustomerView
	Package  PackageView
	PaidAt   time.Time
}

type ProfileView struct {
	Name    string
	LogoURL string
	Address string
	Contact string
}

type CustomerView struct {
	ID      string
	Name    string
	Address string
	DueDate time.Time
}

type PackageView struct {
	Name  string
	Price int64
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}
