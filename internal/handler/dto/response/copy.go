package response

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var errNotDecimal = errors.New("copier: source is not a decimal")

// Money goes over the wire as a fixed two-place string so clients never
// parse floats.
var moneyConverters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			d, ok := src.(decimal.Decimal)
			if !ok {
				return nil, errNotDecimal
			}
			return d.StringFixed(moneyPlaces), nil
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{Converters: moneyConverters})
}
