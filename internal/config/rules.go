package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rgehrsitz/netpay/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed rules_2025.yaml
var defaultRulesYAML []byte

// RulesLoader handles parsing of tax rule table files
type RulesLoader struct{}

// NewRulesLoader creates a new rules loader
func NewRulesLoader() *RulesLoader {
	return &RulesLoader{}
}

// DefaultRules returns the embedded 2025 rule set. Each call returns a fresh
// copy, so callers may add or replace states without affecting others.
func DefaultRules() (*domain.TaxRules, error) {
	rules, err := NewRulesLoader().Parse(defaultRulesYAML, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded rules: %w", err)
	}
	return rules, nil
}

// Format is the encoding of a rules file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the rules format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported rules file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}

// LoadFromFile loads and validates rule tables from a YAML or TOML file
func (rl *RulesLoader) LoadFromFile(filename string) (*domain.TaxRules, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	rules, err := rl.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return rules, nil
}

// Parse decodes and validates rule tables
func (rl *RulesLoader) Parse(data []byte, format Format) (*domain.TaxRules, error) {
	var rules domain.TaxRules

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&rules); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &rules)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse TOML: unknown key %s", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported rules format %q", format)
	}

	if err := rl.ValidateRules(&rules); err != nil {
		return nil, err
	}
	return &rules, nil
}

// ValidateRules validates the loaded rule tables
func (rl *RulesLoader) ValidateRules(rules *domain.TaxRules) error {
	if len(rules.Federal.StandardDeduction) == 0 {
		return fmt.Errorf("rules validation failed: federal_tax.standard_deduction is required")
	}
	if rules.FICA.SocialSecurityWageBase.IsZero() {
		return fmt.Errorf("rules validation failed: fica.social_security_wage_base is required")
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("rules validation failed: %w", err)
	}
	return nil
}
