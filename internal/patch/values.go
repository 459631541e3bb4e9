package patch

import (
	"fmt"

	pkgerrors "github.com/inventoryhub/inventory-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// StringValue coerces a payload value into a string field.
func StringValue(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a string", field))
	}
	return s, nil
}

// NullableStringValue coerces a payload value into an optional string field;
// an explicit JSON null clears it.
func NullableStringValue(field string, value any) (*string, error) {
	if value == nil {
		return nil, nil
	}
	s, err := StringValue(field, value)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DecimalValue coerces a payload value into a decimal field. JSON numbers and
// numeric strings are both accepted.
func DecimalValue(field string, value any) (decimal.Decimal, error) {
	switch typed := value.(type) {
	case float64:
		return decimal.NewFromFloat(typed), nil
	case string:
		d, err := decimal.NewFromString(typed)
		if err != nil {
			return decimal.Decimal{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("%s must be numeric", field))
		}
		return d, nil
	default:
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a number or numeric string", field))
	}
}
