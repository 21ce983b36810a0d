package population

import (
	"fmt"
	"time"

	"github.com/wolfeidau/abacgen/internal/taxonomy"
)

// Preset names accepted by the CLI.
const (
	PresetBasic    = "basic"
	PresetExtended = "extended"
)

// Config holds every knob of a generation run: population sizes, event
// probabilities, the taxonomy, the seed, and the reference time used for
// relative date sampling. The basic and extended presets are independent
// configurations; neither supersedes the other.
type Config struct {
	Preset   string
	Extended bool

	// Seed drives the single pseudo-random source threaded through the
	// pipeline. Same seed, same config, same reference time: identical
	// population.
	Seed int64

	// Now anchors relative date attributes (last login, created date,
	// expiry). The CLI defaults it to wall clock; tests pin it.
	Now time.Time

	// Population sizes.
	Users             int
	Documents         int
	HelpdeskOperators int
	ApplicationAdmins int
	Customers         int
	ProjectManagers   int
	LegalOfficers     int
	FinancialOfficers int
	Auditors          int
	Consultants       int
	Projects          int

	// Event probabilities.
	ConfidentialProb   float64
	PersonalInfoProb   float64
	PayrollingProb     float64
	RegisteredProb     float64
	DelegationProb     float64
	TempAccessProb     float64
	PastProjectProb    float64
	RelatedDocProb     float64
	ExpiryProb         float64
	ProjectAssocProb   float64
	ActiveProb         float64
	ArchivedProb       float64
	CustomerOfficesMin int
	CustomerOfficesMax int

	Taxonomy *taxonomy.Taxonomy
}

// BasicConfig returns the basic preset: the smaller taxonomy, no extended
// attributes, specialized staff without departments, recipients resolved at
// document construction.
func BasicConfig() *Config {
	const users = 10000
	return &Config{
		Preset:            PresetBasic,
		Extended:          false,
		Seed:              42,
		Now:               time.Now(),
		Users:             users,
		Documents:         10000,
		HelpdeskOperators: min(30, users/10),
		ApplicationAdmins: min(30, users/10),
		Customers:         min(40, users/2),
		ConfidentialProb:  0.6,
		PersonalInfoProb:  0.2,
		PayrollingProb:    0.5,
		Taxonomy:          taxonomy.Basic(),
	}
}

// ExtendedConfig returns the extended preset: the larger taxonomy, extended
// attributes, project allocation, delegation, temporary access, and the
// two-pass recipient resolution.
func ExtendedConfig() *Config {
	return &Config{
		Preset:             PresetExtended,
		Extended:           true,
		Seed:               42,
		Now:                time.Now(),
		Users:              10000,
		Documents:          10000,
		HelpdeskOperators:  200,
		ApplicationAdmins:  150,
		Customers:          500,
		ProjectManagers:    300,
		LegalOfficers:      100,
		FinancialOfficers:  150,
		Auditors:           200,
		Consultants:        250,
		Projects:           1000,
		ConfidentialProb:   0.4,
		PersonalInfoProb:   0.3,
		PayrollingProb:     0.3,
		RegisteredProb:     0.7,
		DelegationProb:     0.3,
		TempAccessProb:     0.2,
		PastProjectProb:    0.6,
		RelatedDocProb:     0.1,
		ExpiryProb:         0.7,
		ProjectAssocProb:   0.6,
		ActiveProb:         0.95,
		ArchivedProb:       0.1,
		CustomerOfficesMin: 1,
		CustomerOfficesMax: 5,
		Taxonomy:           taxonomy.Extended(),
	}
}

// ConfigForPreset returns the named preset configuration.
func ConfigForPreset(preset string) (*Config, error) {
	switch preset {
	case PresetBasic:
		return BasicConfig(), nil
	case PresetExtended:
		return ExtendedConfig(), nil
	default:
		return nil, fmt.Errorf("unknown preset %q (want %q or %q)", preset, PresetBasic, PresetExtended)
	}
}

// Validate checks that population counts are usable. Zero counts are valid
// degenerate configuration (they produce empty sections); negative counts
// are not.
func (c *Config) Validate() error {
	counts := map[string]int{
		"users":              c.Users,
		"documents":          c.Documents,
		"helpdesk-operators": c.HelpdeskOperators,
		"application-admins": c.ApplicationAdmins,
		"customers":          c.Customers,
		"project-managers":   c.ProjectManagers,
		"legal-officers":     c.LegalOfficers,
		"financial-officers": c.FinancialOfficers,
		"auditors":           c.Auditors,
		"consultants":        c.Consultants,
		"projects":           c.Projects,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("population count %s must not be negative, got %d", name, n)
		}
	}
	if c.Taxonomy == nil {
		return fmt.Errorf("taxonomy is required")
	}
	if len(c.Taxonomy.Tenants) == 0 {
		return fmt.Errorf("at least one tenant is required")
	}
	if c.Customers > 0 && len(c.Taxonomy.CustomerTenants) == 0 {
		return fmt.Errorf("customer generation requires at least one customer tenant")
	}
	if c.Now.IsZero() {
		return fmt.Errorf("reference time is required")
	}
	return nil
}
