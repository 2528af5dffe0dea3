package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/netpay/internal/domain"
	"gopkg.in/yaml.v3"
)

// NamedScenario is an income scenario with a label for reports
type NamedScenario struct {
	Name                  string `yaml:"name"`
	domain.IncomeScenario `yaml:",inline"`
}

// ScenarioFile is the on-disk layout of a batch of scenarios
type ScenarioFile struct {
	Scenarios []NamedScenario `yaml:"scenarios"`
}

// InputParser handles parsing of scenario input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML file
func (ip *InputParser) LoadFromFile(filename string) ([]NamedScenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario document
func (ip *InputParser) Parse(data []byte) ([]NamedScenario, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("scenario %d: duplicate name %q", i, sc.Name)
		}
		seen[sc.Name] = true

		if sc.Profile.FilingStatus != "" {
			status, err := domain.ParseFilingStatus(string(sc.Profile.FilingStatus))
			if err != nil {
				return nil, fmt.Errorf("scenario %d (%s) validation failed: %w", i, sc.Name, err)
			}
			sc.Profile.FilingStatus = status
		}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%s) validation failed: %w", i, sc.Name, err)
		}
	}

	return file.Scenarios, nil
}
