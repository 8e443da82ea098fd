package engine

import (
	"strconv"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

// Format renders res as {name=min/mean/max, ...} sorted by raw station bytes.
func Format(res Result) string {
	rows := res.Rows()

	buf := make([]byte, 0, 2+len(rows)*32)
	buf = append(buf, '{')
	for i, row := range rows {
		if i > 0 {
			buf = append(buf, ',', ' ')
		}
		buf = append(buf, row.Name...)
		buf = append(buf, '=')
		buf = appendStats(buf, row.Stats)
	}
	buf = append(buf, '}')

	return string(buf)
}

// FormatStats renders one station as min/mean/max.
func FormatStats(s entity.Stats) string {
	return string(appendStats(nil, s))
}

// FormatMean renders the unscaled mean with two fractional digits.
func FormatMean(s entity.Stats) string {
	return strconv.FormatFloat(s.Mean(), 'f', 2, 64)
}

func appendStats(buf []byte, s entity.Stats) []byte {
	buf = appendTenths(buf, s.Min)
	buf = append(buf, '/')
	buf = strconv.AppendFloat(buf, s.Mean(), 'f', 2, 64)
	buf = append(buf, '/')
	return appendTenths(buf, s.Max)
}
