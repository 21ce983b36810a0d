package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicDepartmentsCoverAllTenants(t *testing.T) {
	tax := Basic()

	for _, tenant := range tax.Tenants {
		require.NotEmpty(t, tax.Departments[tenant], "tenant %s has no departments", tenant)
	}
	for _, tenant := range tax.CustomerTenants {
		require.NotEmpty(t, tax.Departments[tenant], "customer tenant %s has no departments", tenant)
	}
}

func TestExtendedDepartmentsCoverAllTenants(t *testing.T) {
	tax := Extended()

	for _, tenant := range tax.Tenants {
		require.NotEmpty(t, tax.Departments[tenant], "tenant %s has no departments", tenant)
		require.Contains(t, tax.OfficeCounts, tenant)
	}
	for _, tenant := range tax.CustomerTenants {
		require.NotEmpty(t, tax.Departments[tenant], "customer tenant %s has no departments", tenant)
	}
}

func TestCustomerDepartmentNaming(t *testing.T) {
	tests := []struct {
		name     string
		tax      *Taxonomy
		tenant   string
		expected []string
	}{
		{
			name:     "basic plain customer",
			tax:      Basic(),
			tenant:   "carLeaser",
			expected: []string{"carLeaserAudit", "carLeaserSecretary", "carLeaserAccounting"},
		},
		{
			name:   "basic ict provider gets ICT department",
			tax:    Basic(),
			tenant: "ictProvider",
			expected: []string{
				"ictProviderAudit", "ictProviderSecretary", "ictProviderAccounting", "ictProviderICT",
			},
		},
		{
			name:   "extended startup gets product departments",
			tax:    Extended(),
			tenant: "startupCompany",
			expected: []string{
				"startupCompanyAudit", "startupCompanySecretary", "startupCompanyAccounting",
				"startupCompanyOperations", "startupCompanyMarketing",
				"startupCompanyProduct", "startupCompanyEngineering", "startupCompanyBusinessDevelopment",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.tax.Departments[tt.tenant])
		})
	}
}

func TestValidPositionsExcludesOfficeBoundWithoutOffices(t *testing.T) {
	tax := Basic()

	withOffices := tax.ValidPositions(10)
	require.Equal(t, tax.Positions, withOffices)

	withoutOffices := tax.ValidPositions(0)
	require.NotContains(t, withoutOffices, "secretary")
	require.NotContains(t, withoutOffices, "director")
	require.Contains(t, withoutOffices, "officeManager")
	require.Len(t, withoutOffices, len(tax.Positions)-2)
}

func TestPositionRanksOrdering(t *testing.T) {
	tax := Extended()

	require.Greater(t, tax.PositionRanks["vicePresident"], tax.PositionRanks["director"])
	require.Greater(t, tax.PositionRanks["director"], tax.PositionRanks["secretary"])

	// Unranked positions default to zero.
	require.Zero(t, tax.PositionRanks["insuranceAgent"])
}

func TestIndustryLookup(t *testing.T) {
	require.Equal(t, "financial", Industry("largeBank"))
	require.Equal(t, "technology", Industry("techCorp"))
	require.Equal(t, "other", Industry("privateReceiver"))
}

func TestCitiesForFallback(t *testing.T) {
	tax := Extended()

	require.Contains(t, tax.CitiesFor("USA"), "NewYork")
	require.Equal(t, []string{"DefaultCity"}, tax.CitiesFor("Brazil"))
}
