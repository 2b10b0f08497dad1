package domain

import (
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

// Action is a requested customer lifecycle transition.
type Action string

const (
	ActionMarkAsVerifying    Action = "markAsVerifying"
	ActionCancelVerification Action = "cancelVerification"
	ActionConfirmPayment     Action = "confirmPayment"
	ActionToggleIsolate      Action = "toggleIsolate"
)

// Outcome carries the field values a permitted transition results in. The
// rule engine only decides; applying the outcome is the caller's job.
type Outcome struct {
	PaymentStatus PaymentStatus
	Status        CustomerStatus
}

type rule struct {
	roles        []identitydomain.Role
	precondition func(Customer) bool
	outcome      func(Customer) Outcome
}

// transitionTable is the single source of truth for who may move a customer
// between payment states. Sales claim and retract verification; admins
// confirm payment and toggle isolation.
var transitionTable = map[Action]rule{
	ActionMarkAsVerifying: {
		roles:        []identitydomain.Role{identitydomain.RoleSales},
		precondition: func(c Customer) bool { return c.PaymentStatus == PaymentUnpaid },
		outcome: func(c Customer) Outcome {
			return Outcome{PaymentStatus: PaymentVerifying, Status: c.Status}
		},
	},
	ActionCancelVerification: {
		roles:        []identitydomain.Role{identitydomain.RoleSales},
		precondition: func(c Customer) bool { return c.PaymentStatus == PaymentVerifying },
		outcome: func(c Customer) Outcome {
			return Outcome{PaymentStatus: PaymentUnpaid, Status: c.Status}
		},
	},
	ActionConfirmPayment: {
		roles:        []identitydomain.Role{identitydomain.RoleAdmin, identitydomain.RoleSuperAdmin},
		precondition: func(c Customer) bool { return c.PaymentStatus == PaymentVerifying },
		outcome: func(c Customer) Outcome {
			return Outcome{PaymentStatus: PaymentPaid, Status: StatusActive}
		},
	},
	ActionToggleIsolate: {
		roles:        []identitydomain.Role{identitydomain.RoleAdmin, identitydomain.RoleSuperAdmin},
		precondition: func(Customer) bool { return true },
		outcome: func(c Customer) Outcome {
			next := StatusIsolated
			if c.Status == StatusIsolated {
				next = StatusActive
			}
			return Outcome{PaymentStatus: c.PaymentStatus, Status: next}
		},
	},
}

// Decide is the pure transition check: given the actor's role and the
// customer's current state, it either returns the resulting field values or
// ErrUnauthorized / ErrInvalidState. It never mutates its inputs.
func Decide(role identitydomain.Role, customer Customer, action Action) (Outcome, error) {
	entry, ok := transitionTable[action]
	if !ok {
		return Outcome{}, ErrUnauthorized
	}

	allowed := false
	for _, r := range entry.roles {
		if r == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return Outcome{}, ErrUnauthorized
	}

	if !entry.precondition(customer) {
		return Outcome{}, ErrInvalidState
	}
	return entry.outcome(customer), nil
}
