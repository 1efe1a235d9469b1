package validation

import (
	"fmt"
	"time"

	"github.com/hance08/kea-import/internal/constants"
)

// ValidateDate accepts an empty string or a YYYY-MM-DD date.
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return nil
}
