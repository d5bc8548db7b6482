package main

import (
	"fmt"
	"os"

	"employee-discount/internal/domain/discountcode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type ruleFixture struct {
	Percentage decimal.Decimal `yaml:"percentage"`
	Active     *bool           `yaml:"active"`
}

type divisionFixture struct {
	ID     uuid.UUID    `yaml:"id"`
	Name   string       `yaml:"name"`
	Active *bool        `yaml:"active"`
	Rule   *ruleFixture `yaml:"rule"`
}

type employeeFixture struct {
	ID           uuid.UUID        `yaml:"id"`
	FullName     string           `yaml:"full_name"`
	Email        string           `yaml:"email"`
	Active       *bool            `yaml:"active"`
	MonthlyLimit *decimal.Decimal `yaml:"monthly_limit"`
}

// Fixture is the reference data a fresh environment needs before codes can
// be issued.
type Fixture struct {
	Divisions []divisionFixture `yaml:"divisions"`
	Employees []employeeFixture `yaml:"employees"`
}

func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if len(f.Divisions) == 0 && len(f.Employees) == 0 {
		return nil, fmt.Errorf("seed file defines no divisions or employees")
	}

	for i, d := range f.Divisions {
		if d.ID == uuid.Nil {
			return nil, fmt.Errorf("division %d: id is required", i)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("division %s: name is required", d.ID)
		}
		if d.Rule != nil {
			if err := discountcode.ValidatePercentage(d.Rule.Percentage); err != nil {
				return nil, fmt.Errorf("division %s: %w", d.ID, err)
			}
		}
	}
	for i, e := range f.Employees {
		if e.ID == uuid.Nil {
			return nil, fmt.Errorf("employee %d: id is required", i)
		}
		if e.Email == "" {
			return nil, fmt.Errorf("employee %s: email is required", e.ID)
		}
		if e.MonthlyLimit != nil && e.MonthlyLimit.IsNegative() {
			return nil, fmt.Errorf("employee %s: monthly_limit must not be negative", e.ID)
		}
	}
	return &f, nil
}

// enabled treats an omitted flag as true.
func enabled(flag *bool) bool {
	return flag == nil || *flag
}
