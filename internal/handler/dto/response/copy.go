package response

import (
	"club-booking/internal/pkg/calendar"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: calendar.Date{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(calendar.Date).String(), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
