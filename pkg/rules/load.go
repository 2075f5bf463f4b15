package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mintfolio/pkg/models"
)

type matcherSpec struct {
	Field    string   `yaml:"field"`
	Patterns []string `yaml:"patterns"`
}

type dupeSpec struct {
	Account        string `yaml:"account"`
	ExemptCategory string `yaml:"exempt_category"`
}

type rulesetSpec struct {
	Income    matcherSpec `yaml:"income"`
	Ignorable matcherSpec `yaml:"ignorable"`
	Duplicate dupeSpec    `yaml:"duplicate"`
}

// Load reads a ruleset from a YAML file. All three rules must be present;
// partial tables would silently reclassify everything.
func Load(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	var spec rulesetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Ruleset{}, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(spec.Income.Patterns) == 0 {
		return Ruleset{}, fmt.Errorf("rules file has no income patterns")
	}
	if len(spec.Ignorable.Patterns) == 0 {
		return Ruleset{}, fmt.Errorf("rules file has no ignorable patterns")
	}
	if spec.Duplicate.Account == "" || spec.Duplicate.ExemptCategory == "" {
		return Ruleset{}, fmt.Errorf("rules file has an incomplete duplicate rule")
	}

	income, err := NewMatcher(spec.Income.Field, spec.Income.Patterns...)
	if err != nil {
		return Ruleset{}, err
	}
	ignorable, err := NewMatcher(spec.Ignorable.Field, spec.Ignorable.Patterns...)
	if err != nil {
		return Ruleset{}, err
	}
	account, err := NewMatcher(models.FieldAccountName, spec.Duplicate.Account)
	if err != nil {
		return Ruleset{}, err
	}

	return Ruleset{
		Income:    income,
		Ignorable: ignorable,
		Dupe: DupeRule{
			Account:        account,
			ExemptCategory: spec.Duplicate.ExemptCategory,
		},
	}, nil
}
