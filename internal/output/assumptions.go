package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Standard deduction only; no itemized deductions or credits",
	"Pre-tax deductions reduce federal income tax but not FICA",
	"Capital gains are long-term and stacked on top of ordinary taxable income",
	"Tax tables are held at the loaded year's levels (no inflation indexing)",
}
