package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAccountID checks that an account identifier is a plausible email
// address and is safe to embed in a session credential. The credential wire
// format is colon-separated, so identifiers containing ':' are rejected at
// issuance rather than escaped.
func ValidateAccountID(accountID string) error {
	if err := validate.Var(accountID, "required,email"); err != nil {
		return err
	}
	if strings.Contains(accountID, ":") {
		return &AccountIDError{AccountID: accountID, Reason: "must not contain ':'"}
	}
	return nil
}

// AccountIDError reports an account identifier that cannot be used.
type AccountIDError struct {
	AccountID string
	Reason    string
}

func (e *AccountIDError) Error() string {
	return "invalid account identifier: " + e.Reason
}

// NormalizeAccountID lowercases an account identifier so that session rows
// and credentials agree on a canonical form.
func NormalizeAccountID(accountID string) string {
	return strings.ToLower(strings.TrimSpace(accountID))
}

// ValidateDurationHours checks a license key duration against sane bounds
// (one hour to one year).
func ValidateDurationHours(hours int) error {
	return validate.Var(hours, "required,min=1,max=8760")
}
