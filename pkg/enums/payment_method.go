package enums

// PaymentMethod is the closed set of checkout payment options.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "creditCard"
	PaymentMethodDebitCard  PaymentMethod = "debitCard"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodCOD        PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodUPI, PaymentMethodCOD:
		return true
	}
	return false
}

// IsCard reports whether the method settles against a payment card.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}
