package validation

import (
	"fmt"
	"regexp"

	"github.com/hance08/kea-import/internal/model"
)

const (
	msgDateRequired     = "date is required"
	msgJournalRequired  = "journal code is required"
	msgVoucherRequired  = "voucher reference is required"
	msgAccountRequired  = "account code is required"
	msgAmountRequired   = "a debit or credit amount is required"
	msgBothAmounts      = "a line cannot carry both a debit and a credit"
	msgNegativeAmount   = "amounts cannot be negative"
	accountFormatLayout = "account code is invalid (must be %d to %d digits)"
)

// RowValidator checks import rows against the line rules. It holds no state
// besides the account code pattern and is safe for concurrent use.
type RowValidator struct {
	accountPattern *regexp.Regexp
	accountFormat  string
}

// NewRowValidator creates a validator accepting account codes of minDigits to maxDigits digits.
func NewRowValidator(minDigits, maxDigits int) (*RowValidator, error) {
	if minDigits < 1 {
		return nil, fmt.Errorf("account code minimum length must be at least 1 (got %d)", minDigits)
	}
	if maxDigits < minDigits {
		return nil, fmt.Errorf("account code maximum length %d is below minimum %d", maxDigits, minDigits)
	}

	return &RowValidator{
		accountPattern: regexp.MustCompile(fmt.Sprintf(`^\d{%d,%d}$`, minDigits, maxDigits)),
		accountFormat:  fmt.Sprintf(accountFormatLayout, minDigits, maxDigits),
	}, nil
}

// Validate returns a copy of row with IsValid and Violations set.
// Every rule is evaluated; all failures are kept.
func (v *RowValidator) Validate(row model.ImportRow) model.ImportRow {
	var violations []string

	if row.Date == "" {
		violations = append(violations, msgDateRequired)
	}

	if row.JournalCode == "" {
		violations = append(violations, msgJournalRequired)
	}

	if row.VoucherRef == "" {
		violations = append(violations, msgVoucherRequired)
	}

	if row.AccountCode == "" {
		violations = append(violations, msgAccountRequired)
	} else if !v.accountPattern.MatchString(row.AccountCode) {
		violations = append(violations, v.accountFormat)
	}

	debitPositive := row.Debit.IsPositive()
	creditPositive := row.Credit.IsPositive()

	if !debitPositive && !creditPositive {
		violations = append(violations, msgAmountRequired)
	}

	if debitPositive && creditPositive {
		violations = append(violations, msgBothAmounts)
	}

	if row.Debit.IsNegative() || row.Credit.IsNegative() {
		violations = append(violations, msgNegativeAmount)
	}

	row.Violations = violations
	row.IsValid = len(violations) == 0
	return row
}

// ValidateAll validates each row, preserving order.
func (v *RowValidator) ValidateAll(rows []model.ImportRow) []model.ImportRow {
	result := make([]model.ImportRow, len(rows))
	for i, row := range rows {
		result[i] = v.Validate(row)
	}
	return result
}
