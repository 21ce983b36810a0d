// Package taxonomy holds the static enumerations and tenant maps that drive
// population generation. Pure configuration data, no behaviour beyond the
// customer-department naming rule and the industry lookup.
package taxonomy

// Taxonomy bundles every enumeration the generator samples from, plus the
// tenant structure maps. The basic and extended presets carry different
// instances; fields only used by the extended preset are empty in the basic
// one.
type Taxonomy struct {
	Roles         []string
	Positions     []string
	DocumentTypes []string

	// Tenants employ staff; CustomerTenants only hold customers.
	Tenants         []string
	CustomerTenants []string

	// Departments maps every tenant (including customer tenants) to its
	// ordered department list.
	Departments map[string][]string

	// OfficeCounts maps tenants to the number of physical offices. Zero
	// means the tenant has no offices at all. Customer tenants of the
	// extended preset are absent here; their counts are drawn at
	// organization-build time.
	OfficeCounts map[string]int

	// PositionRanks orders positions for supervisor-chain construction.
	// Positions missing from the table rank as zero.
	PositionRanks map[string]int

	// Extended-only enumerations.
	SecurityLevels   []string
	CustomerTiers    []string
	ProjectPhases    []string
	TimeZones        []string
	Regions          []string
	Countries        map[string][]string
	Cities           map[string][]string
	Certificates     []string
	DocumentTags     []string
	ComplianceReqs   []string
	DocumentFormats  []string
	Languages        []string
	Priorities       []string
	ApprovalStatuses []string
	ContractTypes    []string
	OrgSizes         []string

	// customerDeptSuffixes returns the department name suffixes for a
	// customer tenant; varies between presets.
	customerDeptSuffixes func(tenant string) []string
}

// officePositions are the positions that only exist in tenants with physical
// offices.
var officePositions = map[string]bool{
	"secretary": true,
	"director":  true,
}

// RequiresOffice reports whether a position is tied to a physical office.
func RequiresOffice(position string) bool {
	return officePositions[position]
}

// ValidPositions returns the positions assignable within a tenant with the
// given office count. Office-bound positions are excluded when the tenant has
// no offices.
func (t *Taxonomy) ValidPositions(officeCount int) []string {
	if officeCount > 0 {
		return t.Positions
	}
	valid := make([]string, 0, len(t.Positions))
	for _, p := range t.Positions {
		if !RequiresOffice(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// CustomerDepartments computes the department list for a customer tenant:
// each suffix prefixed with the tenant name.
func (t *Taxonomy) CustomerDepartments(tenant string) []string {
	suffixes := t.customerDeptSuffixes(tenant)
	depts := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		depts = append(depts, tenant+s)
	}
	return depts
}

// industryByTenant maps tenant ids to industries for the extended preset.
var industryByTenant = map[string]string{
	"largeBank":          "financial",
	"largeBankLeasing":   "financial",
	"newsAgency":         "media",
	"techCorp":           "technology",
	"pharmaceuticals":    "healthcare",
	"energyCompany":      "energy",
	"retailChain":        "retail",
	"consultingFirm":     "consulting",
	"lawFirm":            "legal",
	"financialServices":  "financial",
	"healthcareSystem":   "healthcare",
	"educationInstitute": "education",
}

// Industry returns the industry for a tenant id, defaulting to "other" for
// unmapped tenants.
func Industry(tenant string) string {
	if ind, ok := industryByTenant[tenant]; ok {
		return ind
	}
	return "other"
}

// Basic returns the taxonomy of the basic preset.
func Basic() *Taxonomy {
	t := &Taxonomy{
		Roles:         []string{"employee", "manager", "admin", "helpdesk", "customer"},
		Positions:     []string{"secretary", "director", "seniorOfficeManager", "officeManager", "insuranceAgent"},
		DocumentTypes: []string{"invoice", "contract", "paycheck", "bankingNote", "salesOffer", "trafficFine"},
		Tenants: []string{
			"largeBank", "largeBankLeasing", "newsAgency", "europeRegion", "londonOffice", "reseller",
		},
		CustomerTenants: []string{"carLeaser", "ictProvider", "privateReceiver"},
		Departments: map[string][]string{
			"largeBank":        {"largeBankSales", "largeBankICT", "largeBankHR", "largeBankIT", "largeBankAudit"},
			"largeBankLeasing": {"largeBankLeasingCustomerCare", "largeBankLeasingSales"},
			"newsAgency":       {"newsAgencyAudit", "newsAgencyIT"},
			"europeRegion":     {"europeRegionIT", "europeRegionHR"},
			"londonOffice":     {"londonOfficeAudit", "londonOfficeHR", "londonOfficeSales"},
			"reseller":         {"resellerSales", "resellerCustomer", "resellerAccounting"},
		},
		OfficeCounts: map[string]int{
			"largeBank":        10,
			"largeBankLeasing": 2,
			"newsAgency":       0,
			"europeRegion":     0,
			"londonOffice":     0,
			"reseller":         0,
			// Customer tenants have no offices in the basic preset.
			"carLeaser":       0,
			"ictProvider":     0,
			"privateReceiver": 0,
		},
		PositionRanks: map[string]int{
			"secretary":           1,
			"officeManager":       2,
			"seniorOfficeManager": 3,
			"director":            4,
		},
		customerDeptSuffixes: func(tenant string) []string {
			base := []string{"Audit", "Secretary", "Accounting"}
			if tenant == "ictProvider" {
				base = append(base, "ICT")
			}
			return base
		},
	}
	t.fillCustomerDepartments()
	return t
}

// Extended returns the taxonomy of the extended preset.
func Extended() *Taxonomy {
	t := &Taxonomy{
		Roles: []string{
			"employee", "manager", "admin", "helpdesk", "customer", "projectManager",
			"legalOfficer", "financialOfficer", "auditor", "consultant",
		},
		Positions: []string{
			"secretary", "director", "seniorOfficeManager", "officeManager",
			"insuranceAgent", "analyst", "specialist", "coordinator", "lead",
			"associate", "senior", "principal", "vicePresident",
		},
		DocumentTypes: []string{
			"invoice", "contract", "paycheck", "bankingNote", "salesOffer",
			"trafficFine", "legalDocument", "technicalSpecification",
			"financialReport", "auditReport", "hrDocument", "policyDocument",
			"projectPlan", "meetingMinutes", "complianceReport", "riskAssessment",
			"budgetReport", "performanceReview", "strategicPlan", "marketAnalysis",
		},
		Tenants: []string{
			"largeBank", "largeBankLeasing", "newsAgency", "europeRegion",
			"londonOffice", "reseller", "techCorp", "pharmaceuticals",
			"energyCompany", "retailChain", "consultingFirm", "lawFirm",
			"financialServices", "healthcareSystem", "educationInstitute",
		},
		CustomerTenants: []string{
			"carLeaser", "ictProvider", "privateReceiver", "smallBusiness",
			"startupCompany", "governmentAgency", "nonprofit", "mediaCompany",
		},
		Departments: map[string][]string{
			"largeBank": {
				"largeBankSales", "largeBankICT", "largeBankHR", "largeBankIT",
				"largeBankAudit", "largeBankLegal", "largeBankRisk", "largeBankCompliance",
			},
			"largeBankLeasing": {
				"largeBankLeasingCustomerCare", "largeBankLeasingSales",
				"largeBankLeasingRisk", "largeBankLeasingOperations",
			},
			"newsAgency": {
				"newsAgencyAudit", "newsAgencyIT", "newsAgencyEditorial",
				"newsAgencyMarketing", "newsAgencyLegal",
			},
			"europeRegion": {
				"europeRegionIT", "europeRegionHR", "europeRegionFinance",
				"europeRegionStrategy", "europeRegionCompliance",
			},
			"londonOffice": {
				"londonOfficeAudit", "londonOfficeHR", "londonOfficeSales",
				"londonOfficeOperations", "londonOfficeResearch",
			},
			"reseller": {
				"resellerSales", "resellerCustomer", "resellerAccounting",
				"resellerSupport", "resellerMarketing",
			},
			"techCorp": {
				"techCorpEngineering", "techCorpProduct", "techCorpSales",
				"techCorpSupport", "techCorpResearch", "techCorpSecurity",
			},
			"pharmaceuticals": {
				"pharmaceuticalsResearch", "pharmaceuticalsRegulatory",
				"pharmaceuticalsSales", "pharmaceuticalsManufacturing",
			},
			"energyCompany": {
				"energyCompanyExploration", "energyCompanyProduction",
				"energyCompanyRefining", "energyCompanyTradingAudit",
			},
			"retailChain": {
				"retailChainOperations", "retailChainMarketing",
				"retailChainSupplyChain", "retailChainFinance",
			},
			"consultingFirm": {
				"consultingFirmStrategy", "consultingFirmTechnology",
				"consultingFirmOperations", "consultingFirmHR",
			},
			"lawFirm": {
				"lawFirmCorporate", "lawFirmLitigation", "lawFirmIntellectualProperty",
				"lawFirmTax", "lawFirmEmployment",
			},
			"financialServices": {
				"financialServicesWealth", "financialServicesRetail",
				"financialServicesInvestment", "financialServicesRisk",
			},
			"healthcareSystem": {
				"healthcareSystemClinical", "healthcareSystemAdministrative",
				"healthcareSystemResearch", "healthcareSystemIT",
			},
			"educationInstitute": {
				"educationInstituteAcademic", "educationInstituteAdministrative",
				"educationInstituteResearch", "educationInstituteIT",
			},
		},
		OfficeCounts: map[string]int{
			"largeBank":          15,
			"largeBankLeasing":   5,
			"newsAgency":         6,
			"europeRegion":       12,
			"londonOffice":       4,
			"reseller":           7,
			"techCorp":           20,
			"pharmaceuticals":    18,
			"energyCompany":      25,
			"retailChain":        50,
			"consultingFirm":     10,
			"lawFirm":            8,
			"financialServices":  15,
			"healthcareSystem":   12,
			"educationInstitute": 8,
		},
		PositionRanks: map[string]int{
			"secretary":           1,
			"associate":           2,
			"analyst":             3,
			"specialist":          4,
			"coordinator":         5,
			"officeManager":       6,
			"lead":                7,
			"senior":              8,
			"seniorOfficeManager": 9,
			"principal":           10,
			"director":            11,
			"vicePresident":       12,
		},
		SecurityLevels: []string{"public", "internal", "confidential", "secret", "topSecret"},
		CustomerTiers:  []string{"bronze", "silver", "gold", "platinum", "vip"},
		ProjectPhases:  []string{"initiation", "planning", "execution", "monitoring", "closure"},
		TimeZones:      []string{"UTC", "EST", "PST", "GMT", "CET", "JST", "IST"},
		Regions:        []string{"NorthAmerica", "Europe", "Asia", "LatinAmerica", "Africa"},
		Countries: map[string][]string{
			"NorthAmerica": {"USA", "Canada", "Mexico"},
			"Europe":       {"UK", "Germany", "France", "Netherlands", "Spain"},
			"Asia":         {"Japan", "China", "India", "Singapore", "SouthKorea"},
			"LatinAmerica": {"Brazil", "Argentina", "Chile", "Colombia"},
			"Africa":       {"SouthAfrica", "Nigeria", "Egypt", "Kenya"},
		},
		Cities: map[string][]string{
			"USA":     {"NewYork", "LosAngeles", "Chicago", "Houston", "Phoenix"},
			"Canada":  {"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa"},
			"UK":      {"London", "Manchester", "Birmingham", "Edinburgh", "Glasgow"},
			"Germany": {"Berlin", "Munich", "Frankfurt", "Hamburg", "Cologne"},
			"France":  {"Paris", "Lyon", "Marseille", "Toulouse", "Nice"},
			"Japan":   {"Tokyo", "Osaka", "Yokohama", "Nagoya", "Sapporo"},
			"China":   {"Beijing", "Shanghai", "Guangzhou", "Shenzhen", "Chengdu"},
		},
		Certificates: []string{"PMP", "CISSP", "CPA", "MBA", "PhD", "JD", "CFA", "FRM", "CISA", "CRISC"},
		DocumentTags: []string{
			"financial", "legal", "technical", "strategic", "operational",
			"compliance", "audit", "hr", "marketing", "research", "development",
		},
		ComplianceReqs:   []string{"GDPR", "HIPAA", "SOX", "PCI-DSS", "ISO27001", "NIST", "COBIT"},
		DocumentFormats:  []string{"pdf", "docx", "xlsx", "txt", "pptx", "xml", "json"},
		Languages:        []string{"en", "es", "fr", "de", "ja", "zh", "pt"},
		Priorities:       []string{"low", "medium", "high", "critical"},
		ApprovalStatuses: []string{"draft", "pending", "approved", "rejected", "archived"},
		ContractTypes:    []string{"permanent", "temporary", "contractor", "consultant"},
		OrgSizes:         []string{"small", "medium", "large", "enterprise"},
		customerDeptSuffixes: func(tenant string) []string {
			base := []string{"Audit", "Secretary", "Accounting", "Operations", "Marketing"}
			switch tenant {
			case "ictProvider":
				base = append(base, "ICT", "Development", "Support")
			case "startupCompany":
				base = append(base, "Product", "Engineering", "BusinessDevelopment")
			case "governmentAgency":
				base = append(base, "Policy", "PublicRelations", "Compliance")
			}
			return base
		},
	}
	t.fillCustomerDepartments()
	return t
}

func (t *Taxonomy) fillCustomerDepartments() {
	for _, tenant := range t.CustomerTenants {
		t.Departments[tenant] = t.CustomerDepartments(tenant)
	}
}

// CitiesFor returns the city list for a country, with a single fallback city
// for countries without a configured list.
func (t *Taxonomy) CitiesFor(country string) []string {
	if cities, ok := t.Cities[country]; ok {
		return cities
	}
	return []string{"DefaultCity"}
}
