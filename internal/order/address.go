package order

import "fooddash-be/internal/validate"

// ValidateAddress checks the delivery form field by field. A non-empty
// result aborts checkout before any mutation happens.
func ValidateAddress(a Address) validate.FieldErrors {
	errs := validate.FieldErrors{}

	if validate.Blank(a.FullName) {
		errs["fullName"] = "Full name is required"
	}
	if validate.Blank(a.Address) {
		errs["address"] = "Address is required"
	}
	if validate.Blank(a.City) {
		errs["city"] = "City is required"
	}
	if validate.Blank(a.PostalCode) {
		errs["postalCode"] = "Postal code is required"
	}
	if validate.Blank(a.Phone) {
		errs["phone"] = "Phone number is required"
	} else if !validate.Phone(a.Phone) {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}

	return errs
}
