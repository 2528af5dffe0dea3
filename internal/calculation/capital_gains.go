package calculation

import (
	"github.com/rgehrsitz/netpay/internal/domain"
	"github.com/shopspring/decimal"
)

// CapitalGainsInput is what the capital gains calculator needs from a scenario
type CapitalGainsInput struct {
	Gains                 decimal.Decimal
	DepreciationRecapture decimal.Decimal
	OrdinaryTaxableIncome decimal.Decimal
	// ModifiedAGI is total income used for the NIIT threshold test
	ModifiedAGI decimal.Decimal
	Status      domain.FilingStatus
}

// CapitalGainsResult splits preferential-rate tax from the NIIT surtax
type CapitalGainsResult struct {
	GainsTax     decimal.Decimal
	RecaptureTax decimal.Decimal
	NIIT         decimal.Decimal
}

// Tax is the gains tax plus the recapture tax
func (r CapitalGainsResult) Tax() decimal.Decimal {
	return r.GainsTax.Add(r.RecaptureTax)
}

// CapitalGainsCalculator handles long-term gains, depreciation recapture and NIIT
type CapitalGainsCalculator struct {
	Brackets      domain.StatusBrackets
	RecaptureRate decimal.Decimal
	NIITRate      decimal.Decimal
	NIITThreshold domain.StatusAmounts
}

// NewCapitalGainsCalculator creates a calculator from the capital gains rules
func NewCapitalGainsCalculator(rules domain.CapitalGainsRules) *CapitalGainsCalculator {
	return &CapitalGainsCalculator{
		Brackets:      rules.Brackets,
		RecaptureRate: rules.DepreciationRecaptureRate,
		NIITRate:      rules.NIITRate,
		NIITThreshold: rules.NIITThreshold,
	}
}

// Compute stacks gains on top of ordinary taxable income so only the slice
// of each preferential bracket the gains occupy is charged.
func (cg *CapitalGainsCalculator) Compute(in CapitalGainsInput) CapitalGainsResult {
	var result CapitalGainsResult

	if in.DepreciationRecapture.IsPositive() {
		result.RecaptureTax = in.DepreciationRecapture.Mul(cg.RecaptureRate)
	}

	if in.Gains.IsPositive() {
		table := cg.Brackets.For(in.Status)
		ordinary := decimal.Max(in.OrdinaryTaxableIncome, decimal.Zero)
		withGains := ApplyBrackets(table, ordinary.Add(in.Gains))
		result.GainsTax = decimal.Max(withGains.Sub(ApplyBrackets(table, ordinary)), decimal.Zero)
	}

	result.NIIT = cg.NetInvestmentIncomeTax(in.Gains.Add(in.DepreciationRecapture), in.ModifiedAGI, in.Status)
	return result
}

// NetInvestmentIncomeTax charges the NIIT rate on the lesser of investment
// income and the excess of total income over the threshold
func (cg *CapitalGainsCalculator) NetInvestmentIncomeTax(investmentIncome, totalIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	excess := totalIncome.Sub(cg.NIITThreshold.For(status))
	base := decimal.Min(investmentIncome, excess)
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return base.Mul(cg.NIITRate)
}
