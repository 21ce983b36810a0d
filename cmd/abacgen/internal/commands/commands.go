package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wolfeidau/abacgen/internal/population"
)

type Globals struct {
	Debug   bool
	Version string
}

// presetOverrides is the YAML override file schema. Every field is optional;
// unset fields keep their preset defaults.
type presetOverrides struct {
	Seed              *int64 `yaml:"seed"`
	Users             *int   `yaml:"users"`
	Documents         *int   `yaml:"documents"`
	HelpdeskOperators *int   `yaml:"helpdeskOperators"`
	ApplicationAdmins *int   `yaml:"applicationAdmins"`
	Customers         *int   `yaml:"customers"`
	ProjectManagers   *int   `yaml:"projectManagers"`
	LegalOfficers     *int   `yaml:"legalOfficers"`
	FinancialOfficers *int   `yaml:"financialOfficers"`
	Auditors          *int   `yaml:"auditors"`
	Consultants       *int   `yaml:"consultants"`
	Projects          *int   `yaml:"projects"`

	ConfidentialProb *float64 `yaml:"confidentialProb"`
	PersonalInfoProb *float64 `yaml:"personalInfoProb"`
	PayrollingProb   *float64 `yaml:"payrollingProb"`
	RegisteredProb   *float64 `yaml:"registeredProb"`
	DelegationProb   *float64 `yaml:"delegationProb"`
	TempAccessProb   *float64 `yaml:"tempAccessProb"`
	PastProjectProb  *float64 `yaml:"pastProjectProb"`
	RelatedDocProb   *float64 `yaml:"relatedDocProb"`
}

// applyConfigFile overlays a YAML override file onto the preset
// configuration. The file takes precedence over preset defaults and flags.
func applyConfigFile(path string, cfg *population.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var o presetOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&cfg.Users, o.Users)
	setInt(&cfg.Documents, o.Documents)
	setInt(&cfg.HelpdeskOperators, o.HelpdeskOperators)
	setInt(&cfg.ApplicationAdmins, o.ApplicationAdmins)
	setInt(&cfg.Customers, o.Customers)
	setInt(&cfg.ProjectManagers, o.ProjectManagers)
	setInt(&cfg.LegalOfficers, o.LegalOfficers)
	setInt(&cfg.FinancialOfficers, o.FinancialOfficers)
	setInt(&cfg.Auditors, o.Auditors)
	setInt(&cfg.Consultants, o.Consultants)
	setInt(&cfg.Projects, o.Projects)

	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat(&cfg.ConfidentialProb, o.ConfidentialProb)
	setFloat(&cfg.PersonalInfoProb, o.PersonalInfoProb)
	setFloat(&cfg.PayrollingProb, o.PayrollingProb)
	setFloat(&cfg.RegisteredProb, o.RegisteredProb)
	setFloat(&cfg.DelegationProb, o.DelegationProb)
	setFloat(&cfg.TempAccessProb, o.TempAccessProb)
	setFloat(&cfg.PastProjectProb, o.PastProjectProb)
	setFloat(&cfg.RelatedDocProb, o.RelatedDocProb)

	return nil
}
