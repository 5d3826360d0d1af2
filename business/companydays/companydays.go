// Package companydays reads organization days off from YAML documents
package companydays

import (
	"errors"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

// document is the YAML layout:
//
//	company_days:
//	  - date: 2025-12-26
//	    name: Office Closure
type document struct {
	CompanyDays []entry `yaml:"company_days"`
}

type entry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// Parse reads company days off from r. Every entry must have a name and a yyyy-MM-dd date,
// otherwise an error naming each invalid entry is returned and no days are.
// An entry for a date already seen replaces the earlier one.
func Parse(r io.Reader) ([]optimizer.CompanyDayOff, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to read company days: %w", err)
	}

	problems := make([]string, 0)
	results := make([]optimizer.CompanyDayOff, 0, len(doc.CompanyDays))
	positions := make(map[string]int)
	for i, e := range doc.CompanyDays {
		day := optimizer.CompanyDayOff{Date: strings.TrimSpace(e.Date), Name: strings.TrimSpace(e.Name)}
		if errs := optimizer.ValidateCompanyDay(day); errs != nil {
			problems = append(problems, describe(i, errs))
			continue
		}
		if position, present := positions[day.Date]; present {
			results[position] = day
			continue
		}
		positions[day.Date] = len(results)
		results = append(results, day)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid company days: %s", strings.Join(problems, "; "))
	}
	return results, nil
}

func describe(index int, errs *optimizer.FieldErrors) string {
	messages := make([]string, 0, 2)
	if errs.Name != "" {
		messages = append(messages, errs.Name)
	}
	if errs.Date != "" {
		messages = append(messages, errs.Date)
	}
	return fmt.Sprintf("entry %d: %s", index+1, strings.Join(messages, ", "))
}
