package checkout

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// maxCINFileSize is the client-enforced ceiling on the identity
// document. Other attachments are not size-checked.
const maxCINFileSize = 5 * 1024 * 1024

const (
	msgRequired     = "This field is required"
	msgInvalidEmail = "Please enter a valid email address"
	msgInvalidPhone = "Please enter a valid phone number (10 digits)"
	msgCINRequired  = "The CIN document is required"
	msgCINTooLarge  = "The file must not exceed 5MB"
	msgNoPayment    = "Please select a payment method"
)

// Validate runs the synchronous pre-network checks. It flags every
// offending field at once; any violation blocks submission entirely.
func (f *Form) Validate() *ValidationError {
	fields := map[string]string{}

	required := map[string]string{
		"firstName": f.PersonalInfo.FirstName,
		"lastName":  f.PersonalInfo.LastName,
		"email":     f.PersonalInfo.Email,
		"cin":       f.PersonalInfo.CIN,
		"address":   f.PersonalInfo.Address,
		"city":      f.PersonalInfo.City,
		"phone":     f.PersonalInfo.Phone,
	}
	for name, value := range required {
		if value == "" {
			fields[name] = msgRequired
		}
	}

	if f.PersonalInfo.Email != "" && !emailPattern.MatchString(f.PersonalInfo.Email) {
		fields["email"] = msgInvalidEmail
	}
	if f.PersonalInfo.Phone != "" && !phonePattern.MatchString(f.PersonalInfo.Phone) {
		fields["phone"] = msgInvalidPhone
	}

	if f.CINFile == nil {
		fields["cinFile"] = msgCINRequired
	} else if f.CINFile.Size() > maxCINFileSize {
		fields["cinFile"] = msgCINTooLarge
	}

	if !f.PaymentMethod.Valid() {
		fields["paymentMethod"] = msgNoPayment
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
