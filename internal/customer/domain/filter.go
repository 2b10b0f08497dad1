package domain

import (
	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

// FilterKey selects a customer list view.
type FilterKey string

const (
	FilterAll       FilterKey = "All"
	FilterPaid      FilterKey = "Paid"
	FilterUnpaid    FilterKey = "Unpaid"
	FilterVerifying FilterKey = "Verifying"
	FilterIsolated  FilterKey = "Isolated"
)

// ValidFilterKey reports whether key names a known view.
func ValidFilterKey(key FilterKey) bool {
	switch key {
	case FilterAll, FilterPaid, FilterUnpaid, FilterVerifying, FilterIsolated:
		return true
	default:
		return false
	}
}

// FilterCustomers derives the role-scoped, filtered view of the customer
// collection. Sales only ever see their own portfolio; subscribers only the
// record linked to their account. The Isolated view selects by service status
// regardless of payment state; the payment views exclude isolated customers
// because isolation dominates the display. Input order is preserved.
func FilterCustomers(all []Customer, role identitydomain.Role, actorID snowflake.ID, key FilterKey) []Customer {
	scoped := all
	switch role {
	case identitydomain.RoleSales:
		scoped = make([]Customer, 0, len(all))
		for _, c := range all {
			if c.SalesID == actorID {
				scoped = append(scoped, c)
			}
		}
	case identitydomain.RoleCustomer:
		scoped = make([]Customer, 0, 1)
		for _, c := range all {
			if c.UserID != nil && *c.UserID == actorID {
				scoped = append(scoped, c)
			}
		}
	}

	if key == FilterAll {
		return scoped
	}

	out := make([]Customer, 0, len(scoped))
	for _, c := range scoped {
		if matchesFilter(c, key) {
			out = append(out, c)
		}
	}
	return out
}

func matchesFilter(c Customer, key FilterKey) bool {
	switch key {
	case FilterIsolated:
		return c.Status == StatusIsolated
	case FilterPaid:
		return c.Status != StatusIsolated && c.PaymentStatus == PaymentPaid
	case FilterUnpaid:
		return c.Status != StatusIsolated && c.PaymentStatus == PaymentUnpaid
	case FilterVerifying:
		return c.Status != StatusIsolated && c.PaymentStatus == PaymentVerifying
	default:
		return false
	}
}
