package abac

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/abacgen/internal/population"
)

func testConfig(preset string) *population.Config {
	cfg, err := population.ConfigForPreset(preset)
	if err != nil {
		panic(err)
	}
	cfg.Users = 150
	cfg.Documents = 60
	cfg.HelpdeskOperators = 5
	cfg.ApplicationAdmins = 5
	cfg.Customers = 10
	cfg.ProjectManagers = 5
	cfg.LegalOfficers = 2
	cfg.FinancialOfficers = 2
	cfg.Auditors = 2
	cfg.Consultants = 2
	cfg.Projects = 10
	cfg.Now = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return cfg
}

func render(t *testing.T, cfg *population.Config) []byte {
	t.Helper()

	pop, err := population.NewGenerator(cfg, zerolog.Nop()).Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(cfg).Write(&buf, pop))
	return buf.Bytes()
}

func TestWriteDeterministic(t *testing.T) {
	for _, preset := range []string{population.PresetBasic, population.PresetExtended} {
		t.Run(preset, func(t *testing.T) {
			first := render(t, testConfig(preset))
			second := render(t, testConfig(preset))
			require.Equal(t, first, second, "same seed and config must produce byte-identical output")
		})
	}
}

func TestWriteSeedChangesOutput(t *testing.T) {
	cfg := testConfig(population.PresetBasic)
	first := render(t, cfg)

	cfg2 := testConfig(population.PresetBasic)
	cfg2.Seed = 99
	second := render(t, cfg2)

	require.NotEqual(t, first, second)
}

func TestWriteBasicLayout(t *testing.T) {
	out := string(render(t, testConfig(population.PresetBasic)))

	require.True(t, strings.HasPrefix(out, "# ABAC policy for document management system.\n"))
	require.Contains(t, out, "# User Attribute Data\n")
	require.Contains(t, out, "# Resource Attribute Data\n")
	require.Contains(t, out, "# ABAC Rules\n")
	require.Contains(t, out, "rule(role [ {customer}, registered [ {False}; ; {view}; uid [ recipients)")
	require.Contains(t, out, "rule(role [ {customer}, tenant [ {privateReceiver}; ; {view}; uid [ recipients)")

	// Basic preset carries no statistics block and no extended attributes.
	require.NotContains(t, out, "# Statistics")
	require.NotContains(t, out, "securityClearance=")

	require.Equal(t, 150+5+5+10, strings.Count(out, "userAttrib("))
	require.Equal(t, 60, strings.Count(out, "resourceAttrib("))
	require.Equal(t, BasicRuleCount, strings.Count(out, "\nrule("))
}

func TestWriteExtendedLayout(t *testing.T) {
	out := string(render(t, testConfig(population.PresetExtended)))

	require.True(t, strings.HasPrefix(out, "# Enhanced ABAC policy for comprehensive document management system.\n"))
	require.Contains(t, out, "# Enhanced ABAC Rules\n")
	require.Contains(t, out, "# Statistics\n")
	require.Contains(t, out, "# Total Rules: 30\n")
	require.Contains(t, out, "securityClearance=")
	require.Contains(t, out, "rule(budgetAuthority > 100000; tags ] {financial}; {approve}; )")
	require.Equal(t, ExtendedRuleCount, strings.Count(out, "\nrule("))
}

func TestUserLineSentinels(t *testing.T) {
	cfg := testConfig(population.PresetBasic)
	pop, err := population.NewGenerator(cfg, zerolog.Nop()).Run()
	require.NoError(t, err)

	w := NewWriter(cfg)

	// Helpdesk operators carry no department, office, or position in the
	// basic preset; all render as the none sentinel.
	hd := pop.UsersByRole("helpdesk")[0]
	line := w.UserLine(hd)
	require.Contains(t, line, "position=none")
	require.Contains(t, line, "department=none")
	require.Contains(t, line, "office=none")
	require.Contains(t, line, "registered=False")
}

func TestAttribLineRoundTrip(t *testing.T) {
	cfg := testConfig(population.PresetExtended)
	pop, err := population.NewGenerator(cfg, zerolog.Nop()).Run()
	require.NoError(t, err)

	w := NewWriter(cfg)

	for _, u := range pop.Users[:20] {
		id, attrs, err := ParseAttribLine(w.UserLine(u))
		require.NoError(t, err)
		require.Equal(t, u.UserID, id)
		require.Len(t, attrs, 27)
		require.Equal(t, u.Role, attrs["role"])
		require.Equal(t, u.Tenant(), attrs["tenant"])
		require.Equal(t, "{"+strings.Join(u.Supervisee.Sorted(), " ")+"}", attrs["supervisee"])
		require.Equal(t, "{"+strings.Join(u.Certifications.Sorted(), " ")+"}", attrs["certifications"])
	}

	for _, d := range pop.Documents[:20] {
		id, attrs, err := ParseAttribLine(w.DocumentLine(d))
		require.NoError(t, err)
		require.Equal(t, d.DocID, id)
		require.Len(t, attrs, 29)
		require.Equal(t, d.Type, attrs["type"])
		require.Equal(t, d.OwnerID, attrs["owner"])
		require.Equal(t, "{"+strings.Join(d.Recipients.Sorted(), " ")+"}", attrs["recipients"])
	}
}

func TestParseAttribLineRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty", line: ""},
		{name: "no parens", line: "userAttrib user0"},
		{name: "unknown kind", line: "widgetAttrib(w0, a=b)"},
		{name: "no attributes", line: "userAttrib(user0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAttribLine(tt.line)
			require.Error(t, err)
		})
	}
}
