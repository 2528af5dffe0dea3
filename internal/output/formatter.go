package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
)

// Formatter renders evaluated scenarios
type Formatter interface {
	Name() string
	Format(reports []Report) ([]byte, error)
}

var formatters = map[string]Formatter{}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{Pretty: true})
	register(CSVFormatter{})
}

// GetFormatterByName returns the registered formatter or nil
func GetFormatterByName(name string) Formatter {
	return formatters[name]
}

// FormatterNames lists the registered formatter names
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// JSONFormatter emits the reports as a JSON array
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(reports []Report) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(reports, "", "  ")
	}
	return json.Marshal(reports)
}

// CSVFormatter emits one row per scenario
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(reports []Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "State", "FilingStatus", "Gross", "FederalTax", "StateTax", "FICATax", "CapitalGainsTax", "NIIT", "TotalTax", "NetIncome", "EffectiveRate", "MarginalRate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range reports {
		row := []string{
			r.Name,
			r.Scenario.Profile.StateID,
			string(r.Scenario.Profile.FilingStatus),
			r.Result.GrossIncome.StringFixed(2),
			r.Result.FederalTax.StringFixed(2),
			r.Result.StateTax.StringFixed(2),
			r.Result.FICATax.StringFixed(2),
			r.Result.CapitalGainsTax.StringFixed(2),
			r.Result.NIIT.StringFixed(2),
			r.Result.TotalTax.StringFixed(2),
			r.Result.NetIncome.StringFixed(2),
			r.Result.EffectiveRate.StringFixed(4),
			r.MarginalRate.StringFixed(4),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}
