package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// microsPerUnit is the number of micro units in one currency unit.
var microsPerUnit = decimal.NewFromInt(1_000_000)

// ToRemoteDateTime converts t into the ad server's DateTime object,
// expressed in loc.
func ToRemoteDateTime(t time.Time, loc *time.Location) map[string]any {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return map[string]any{
		"date": map[string]any{
			"year":  t.Year(),
			"month": int(t.Month()),
			"day":   t.Day(),
		},
		"hour":       t.Hour(),
		"minute":     t.Minute(),
		"second":     t.Second(),
		"timeZoneId": loc.String(),
	}
}

// CentsToRemoteMoney converts an amount in cents into the ad server's Money
// object, which counts micro units of the currency.
func CentsToRemoteMoney(cents int64, currency string) map[string]any {
	dollars := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	return map[string]any{
		"currencyCode": currency,
		"microAmount":  dollars.Mul(microsPerUnit).Round(0).IntPart(),
	}
}
