package cart

import (
	"regexp"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
)

// Indian mobile numbers: 10 digits, first digit 6-9.
var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// Customer is the party a bill is made out to.
type Customer struct {
	Name  string
	Phone string
	Email string
}

// ValidPhone reports whether p is a valid Indian mobile number.
func ValidPhone(p string) bool {
	return phonePattern.MatchString(p)
}

// ValidateCustomer checks the customer details required before a bill can be
// generated. Checks run in a fixed order so the caller always surfaces the
// first problem: missing name/phone, then phone format, then the email when
// the invoice should be sent by mail.
func ValidateCustomer(cust Customer, sendEmail bool) error {
	if cust.Name == "" || cust.Phone == "" {
		return domain.ErrMissingCustomer
	}
	if !ValidPhone(cust.Phone) {
		return domain.ErrInvalidPhone
	}
	if sendEmail && cust.Email == "" {
		return domain.ErrEmailRequired
	}
	return nil
}
