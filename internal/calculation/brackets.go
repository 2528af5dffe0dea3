package calculation

import (
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// ApplyBrackets computes progressive tax on amount using table.
// Tables are validated at load time, so this never fails. Amounts at or
// below zero owe nothing.
func ApplyBrackets(table domain.BracketTable, amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var tax decimal.Decimal
	for _, bracket := range table {
		if amount.LessThanOrEqual(bracket.Min) {
			break
		}
		top := amount
		if upper, bounded := bracket.Upper(); bounded && upper.LessThan(amount) {
			top = upper
		}
		incomeInBracket := top.Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}

	return tax
}

// MarginalBracketRate returns the rate of the bracket containing amount
func MarginalBracketRate(table domain.BracketTable, amount decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, bracket := range table {
		if amount.LessThan(bracket.Min) {
			break
		}
		rate = bracket.Rate
	}
	return rate
}
