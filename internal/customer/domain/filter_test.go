package domain

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

func sampleCustomers() []Customer {
	return []Customer{
		{ID: 1, SalesID: 100, Status: StatusActive, PaymentStatus: PaymentPaid},
		{ID: 2, SalesID: 100, Status: StatusActive, PaymentStatus: PaymentUnpaid},
		{ID: 3, SalesID: 200, Status: StatusActive, PaymentStatus: PaymentVerifying},
		{ID: 4, SalesID: 200, Status: StatusIsolated, PaymentStatus: PaymentPaid},
		{ID: 5, SalesID: 100, Status: StatusIsolated, PaymentStatus: PaymentUnpaid},
	}
}

func TestFilterIsolatedSelectsByServiceStatusOnly(t *testing.T) {
	got := FilterCustomers(sampleCustomers(), identitydomain.RoleAdmin, 0, FilterIsolated)
	if len(got) != 2 {
		t.Fatalf("expected 2 isolated customers, got %d", len(got))
	}
	for _, c := range got {
		if c.Status != StatusIsolated {
			t.Fatalf("isolated view returned non-isolated customer %d", c.ID)
		}
	}
}

func TestFilterPaymentViewsExcludeIsolated(t *testing.T) {
	for _, key := range []FilterKey{FilterPaid, FilterUnpaid, FilterVerifying} {
		for _, c := range FilterCustomers(sampleCustomers(), identitydomain.RoleAdmin, 0, key) {
			if c.Status == StatusIsolated {
				t.Fatalf("%s view returned isolated customer %d", key, c.ID)
			}
		}
	}

	paid := FilterCustomers(sampleCustomers(), identitydomain.RoleAdmin, 0, FilterPaid)
	if len(paid) != 1 || paid[0].ID != 1 {
		t.Fatalf("expected only customer 1 in paid view, got %v", paid)
	}
}

func TestFilterSalesScoping(t *testing.T) {
	actorID := snowflake.ID(100)
	for _, key := range []FilterKey{FilterAll, FilterPaid, FilterUnpaid, FilterVerifying, FilterIsolated} {
		for _, c := range FilterCustomers(sampleCustomers(), identitydomain.RoleSales, actorID, key) {
			if c.SalesID != actorID {
				t.Fatalf("%s view leaked customer %d of sales %d", key, c.ID, c.SalesID)
			}
		}
	}

	all := FilterCustomers(sampleCustomers(), identitydomain.RoleSales, actorID, FilterAll)
	if len(all) != 3 {
		t.Fatalf("expected 3 customers for sales 100, got %d", len(all))
	}
}

func TestFilterSubscriberSeesOwnRecordOnly(t *testing.T) {
	userID := snowflake.ID(900)
	customers := sampleCustomers()
	customers[2].UserID = &userID

	got := FilterCustomers(customers, identitydomain.RoleCustomer, userID, FilterAll)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only the linked customer record, got %v", got)
	}

	none := FilterCustomers(customers, identitydomain.RoleCustomer, snowflake.ID(901), FilterAll)
	if len(none) != 0 {
		t.Fatalf("expected no records for an unlinked subscriber, got %v", none)
	}
}

func TestFilterAllPreservesOrder(t *testing.T) {
	got := FilterCustomers(sampleCustomers(), identitydomain.RoleSuperAdmin, 0, FilterAll)
	if len(got) != 5 {
		t.Fatalf("expected full set, got %d", len(got))
	}
	for i, c := range got {
		if c.ID != snowflake.ID(i+1) {
			t.Fatalf("expected insertion order preserved, got %v at %d", c.ID, i)
		}
	}
}

func TestValidFilterKey(t *testing.T) {
	if ValidFilterKey("Bogus") {
		t.Fatalf("expected unknown key to be invalid")
	}
	if !ValidFilterKey(FilterAll) {
		t.Fatalf("expected All to be valid")
	}
}
