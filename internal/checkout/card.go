package checkout

import (
	"strings"
	"time"
	"unicode"

	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
)

const (
	cardNumberMinDigits = 13
	cardNumberMaxDigits = 19
)

// CardForm holds the four card inputs. Each setter re-formats the raw
// input for display and re-derives that field's state, so validity always
// reflects the latest keystroke.
type CardForm struct {
	Number     Field `json:"cardNumber"`
	Cardholder Field `json:"cardholderName"`
	Expiry     Field `json:"expiryDate"`
	CVV        Field `json:"cvv"`

	now func() time.Time
}

func NewCardForm() *CardForm {
	return newCardForm(time.Now)
}

func newCardForm(now func() time.Time) *CardForm {
	return &CardForm{
		Number:     Field{State: FieldUntouched},
		Cardholder: Field{State: FieldUntouched},
		Expiry:     Field{State: FieldUntouched},
		CVV:        Field{State: FieldUntouched},
		now:        now,
	}
}

func (c *CardForm) SetNumber(input string) {
	formatted := FormatCardNumber(input)
	c.Number.set(formatted, ValidateCardNumber(formatted))
}

func (c *CardForm) SetCardholder(input string) {
	c.Cardholder.set(input, ValidateCardholder(input))
}

func (c *CardForm) SetExpiry(input string) {
	formatted := FormatExpiry(input)
	c.Expiry.set(formatted, ValidateExpiry(formatted, c.now()))
}

func (c *CardForm) SetCVV(input string) {
	c.CVV.set(input, ValidateCVV(input))
}

// Valid reports whether every field has been edited and passed validation.
func (c *CardForm) Valid() bool {
	return c.Number.Valid() && c.Cardholder.Valid() && c.Expiry.Valid() && c.CVV.Valid()
}

// FormatCardNumber strips whitespace and regroups the digits in blocks of
// four separated by single spaces. Non-digit characters are dropped.
func FormatCardNumber(input string) string {
	digits := digitsOf(input)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// ValidateCardNumber checks digit count (13 to 19 after stripping spaces)
// and the Luhn checksum.
func ValidateCardNumber(input string) error {
	digits := digitsOf(input)
	if len(digits) < cardNumberMinDigits || len(digits) > cardNumberMaxDigits {
		return pkgerrors.New(pkgerrors.CodeValidation, "card number must be 13 to 19 digits")
	}
	if !luhnValid(digits) {
		return pkgerrors.New(pkgerrors.CodeValidation, "card number failed checksum")
	}
	return nil
}

// luhnValid runs the mod-10 checksum: walking from the rightmost digit,
// every second digit doubles, subtracting 9 when the double exceeds 9.
func luhnValid(digits []rune) bool {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// FormatExpiry auto-inserts the slash after the month digits, yielding
// MM/YY while typing. Non-digit input characters are dropped.
func FormatExpiry(input string) string {
	digits := digitsOf(input)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return string(digits)
	}
	return string(digits[:2]) + "/" + string(digits[2:])
}

// ValidateExpiry requires a full MM/YY with month 1-12 that does not
// resolve to a calendar month before now. The two-digit year maps into
// the 2000s; far-future dates are accepted.
func ValidateExpiry(input string, now time.Time) error {
	digits := digitsOf(input)
	if len(digits) != 4 {
		return pkgerrors.New(pkgerrors.CodeValidation, "expiry must be MM/YY")
	}
	month := int(digits[0]-'0')*10 + int(digits[1]-'0')
	year := 2000 + int(digits[2]-'0')*10 + int(digits[3]-'0')
	if month < 1 || month > 12 {
		return pkgerrors.New(pkgerrors.CodeValidation, "expiry month must be 01 to 12")
	}
	if year < now.Year() || (year == now.Year() && time.Month(month) < now.Month()) {
		return pkgerrors.New(pkgerrors.CodeValidation, "card has expired")
	}
	return nil
}

// ValidateCVV requires 3 or 4 digits and nothing else.
func ValidateCVV(input string) error {
	if len(input) < 3 || len(input) > 4 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cvv must be 3 or 4 digits")
	}
	for _, r := range input {
		if !unicode.IsDigit(r) {
			return pkgerrors.New(pkgerrors.CodeValidation, "cvv must be digits only")
		}
	}
	return nil
}

// ValidateCardholder rejects any character outside letters and spaces.
func ValidateCardholder(input string) error {
	if strings.TrimSpace(input) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cardholder name is required")
	}
	for _, r := range input {
		if !unicode.IsLetter(r) && r != ' ' {
			return pkgerrors.New(pkgerrors.CodeValidation, "cardholder name must be letters and spaces only")
		}
	}
	return nil
}

func digitsOf(input string) []rune {
	digits := make([]rune, 0, len(input))
	for _, r := range input {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	return digits
}
