package render

import (
	"strings"
	"testing"
	"time"
)

func TestRenderHTMLIncludesLocalizedFields(t *testing.T) {
	r := NewRenderer()

	input := RenderInput{
		Profile: ProfileView{
			Name:    "ASRO Network",
			Address: "Jl. Merdeka No. 1, Bandung",
			Contact: "0812-0000-0000",
		},
		Customer: CustomerView{
			ID:      "1952731024812345344",
			Name:    "Budi Santoso",
			Address: "Jl. Mawar No. 5",
			DueDate: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		},
		Package: PackageView{Name: "Paket Home 10 Mbps", Price: 150000},
		PaidAt:  time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC),
	}

	html, err := r.RenderHTML(input)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	for _, want := range []string{
		"ASRO Network",
		"Budi Santoso",
		"Paket Home 10 Mbps",
		"Rp 150.000",
		"15/9/2026",
		"1/9/2026",
		"Lunas",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered receipt missing %q", want)
		}
	}
}

func TestRenderHTMLEscapesCustomerInput(t *testing.T) {
	r := NewRenderer()

	input := RenderInput{
		Profile:  ProfileView{Name: "ASRO Network"},
		Customer: CustomerView{Name: "<script>alert(1)</script>"},
		Package:  PackageView{Name: "Paket Home 10 Mbps", Price: 150000},
		PaidAt:   time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	}

	html, err := r.RenderHTML(input)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("customer name rendered unescaped")
	}
}
