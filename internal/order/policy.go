package order

import "github.com/kingrea/afrofeast/internal/catalog"

// PaymentMethodsFor lists the methods a guest may pick for a dining option.
// Guests on site may pay cash; remote orders settle by mobile money.
func PaymentMethodsFor(opt catalog.DiningOption) []PaymentMethod {
	if opt.IsImmediate() {
		return []PaymentMethod{PaymentMobileMoney, PaymentBanknotes}
	}
	return []PaymentMethod{PaymentMobileMoney}
}

// AcceptsPayment reports whether method is offered for opt.
func AcceptsPayment(opt catalog.DiningOption, method PaymentMethod) bool {
	for _, m := range PaymentMethodsFor(opt) {
		if m == method {
			return true
		}
	}
	return false
}

// DepositFor is the amount held at booking: half the total for reservations
// and nothing otherwise. Amounts are whole units, so half of an odd total is
// truncated.
func DepositFor(opt catalog.DiningOption, total int64) int64 {
	if opt != catalog.Reservation || total <= 0 {
		return 0
	}
	return total / 2
}

// PaidAtOrder reports whether the order is settled when it is placed. Only
// mobile money on remote orders is collected up front.
func PaidAtOrder(method PaymentMethod, opt catalog.DiningOption) bool {
	if method != PaymentMobileMoney {
		return false
	}
	switch opt {
	case catalog.Reservation, catalog.Pickup, catalog.Delivery:
		return true
	}
	return false
}
