package calculation

import (
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// FICACalculator handles Social Security and Medicare payroll taxes
type FICACalculator struct {
	SSWageBase           decimal.Decimal
	SSRate               decimal.Decimal
	MedicareRate         decimal.Decimal
	AdditionalRate       decimal.Decimal
	AdditionalThresholds domain.StatusAmounts
}

// NewFICACalculator creates a FICA calculator from the payroll rules
func NewFICACalculator(rules domain.FICARules) *FICACalculator {
	return &FICACalculator{
		SSWageBase:           rules.SocialSecurityWageBase,
		SSRate:               rules.SocialSecurityRate,
		MedicareRate:         rules.MedicareRate,
		AdditionalRate:       rules.AdditionalMedicareRate,
		AdditionalThresholds: rules.AdditionalMedicareThreshold,
	}
}

// SocialSecurity is the capped Social Security portion
func (fc *FICACalculator) SocialSecurity(wages decimal.Decimal) decimal.Decimal {
	if wages.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.Min(wages, fc.SSWageBase).Mul(fc.SSRate)
}

// Medicare is the uncapped Medicare portion including the additional
// Medicare surtax above the filing-status threshold
func (fc *FICACalculator) Medicare(wages decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if wages.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	medicare := wages.Mul(fc.MedicareRate)

	threshold := fc.AdditionalThresholds.For(status)
	if wages.GreaterThan(threshold) {
		medicare = medicare.Add(wages.Sub(threshold).Mul(fc.AdditionalRate))
	}
	return medicare
}

// Compute returns total FICA owed on gross wages
func (fc *FICACalculator) Compute(wages decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	return fc.SocialSecurity(wages).Add(fc.Medicare(wages, status))
}
