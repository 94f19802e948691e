package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Quantities leave the API as decimal strings so no precision is lost in JSON
// number handling on the client.
var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(decimal.Decimal).String(), nil
			},
		},
	},
}

func copyInto(to, from any) error {
	return copier.CopyWithOption(to, from, copyOpts)
}
