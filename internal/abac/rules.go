package abac

// The rule catalogs are static policy text emitted verbatim after the
// attribute data; none of it is derived from the generated population.

// BasicRuleCount and ExtendedRuleCount are the catalog sizes, used by the
// statistics block.
const (
	BasicRuleCount    = 25
	ExtendedRuleCount = 30
)

const basicRules = `# 1. An Unregistered Receiver can only view documents sent to them.
rule(role [ {customer}, registered [ {False}; ; {view}; uid [ recipients)

# 2. Helpdesk members can search and view meta-information of documents in the application.
rule(role [ {helpdesk}; ; {search readMetaInfo}; uid [ recipients)

# 3. Helpdesk members can only read the content of documents belonging to tenants they are assigned responsible.
rule(role [ {helpdesk}; isConfidential [ {False}; {view}; tenant = tenant)

# 4. Application admins can view documents that are not confidential.
rule(role [ {admin}; isConfidential [ {False}; {view}; )

# 5. A supervisor can read documents sent by their supervisees.
rule(role [ {employee}, registered [ {True}, tenant [ {largeBank}; ; {view}; supervisee ] owner)

# 6. A project member can read all sent documents related to the project.
rule(role [ {employee}, tenant [ {largeBank}; ; {view}; projects ] rid)

# 7. Only members of the sales department can send, view, or search invoices.
rule(role [ {employee}, department [ {largeBankSales}; type [ {invoice}; {send view search}; )

# 8. Only members of the ICT department can send banking notes and view their status.
rule(role [ {employee}, department [ {largeBankICT}; type [ {bankingNote}; {send readMetaInfo}; )

# 9. Only employees responsible for payrolling can send and view paychecks.
rule(role [ {employee}, tenant [ {largeBank}, payrollingPermissions [ {True}; type [ {paycheck}; {send view}; )

# 10. Only sales department members can send sales offers.
rule(role [ {employee}, department [ {largeBankSales}; type [ {salesOffer}; {send}; )

# 11. Only the bank office manager can send documents.
rule(role [ {employee}, tenant [ {largeBank}, position [ {officeManager seniorOfficeManager}; ; {send}; )

# 12. Audit department members can read all invoices, offers, and documents except those containing personal information.
rule(role [ {employee}, department [ {largeBankAudit}; type [ {invoice salesOffer}, containsPersonalInfo [ {False}; {view}; )

# 13. Only members of Customer Care can view traffic fines.
rule(role [ {employee}, department [ {largeBankLeasingCustomerCare}; type [ {trafficFine}; {view}; )

# 14. Only sales users can send invoices.
#     Only Customer Care Office members can manually bill a customer.
rule(role [ {employee}, department [ {largeBankLeasingSales largeBankLeasingCustomerCare}; type [ {invoice}; {send}; )

# 15. Only the secretary and office director can read documents sent to the bank office.
rule(role [ {employee}, position [ {secretary director}; ; {view}; office = office)

# 16. Any member of the Accounting department can receive and read invoices.
rule(role [ {customer}, department [ {carLeaserAccounting}; type [ {invoice}; {view}; )

# 17. Only secretary members can read invoices.
rule(role [ {customer}, department [ {ictProviderSecretary}; type [ {invoice}; {view}; )

# 18. Audit department members can read all invoices, offers, contracts, and paychecks.
rule(role [ {employee}, department [ {newsAgencyAudit}; type [ {invoice salesOffer contract paycheck}; {view}; )

# 19. Only members of the HR department can send contracts.
rule(role [ {employee}, department [ {europeRegionHR}; type [ {contract}; {send}; )

# 20. Members of the Human Resources department can send contracts.
rule(role [ {employee}, department [ {londonOfficeHR}; type [ {contract}; {send}; )

# 21. Any member of the Sales department can send invoices.
rule(role [ {employee}, department [ {londonOfficeSales}; type [ {invoice}; {send}; )

# 22. Any member of the Sales department can read all invoices sent by the department.
rule(role [ {employee}, department [ {londonOfficeSales}; type [ {invoice}; {view}; department = department)

# 23. Only assigned Customer department members can read a subtenant's documents.
rule(role [ {employee}, department [ {resellerCustomer}; ; {view}; uid [ recipients)

# 24. Any member of the Accounting department can send invoices.
rule(role [ {employee}, department [ {resellerAccounting}; type [ {invoice}; {send}; )

# 25. Registered Private Receivers can only read documents they received.
rule(role [ {customer}, tenant [ {privateReceiver}; ; {view}; uid [ recipients)

`

const extendedRules = `# 1. Unregistered customers can only view documents sent to them
rule(role [ {customer}, registered [ {False}; ; {view}; uid [ recipients)

# 2. Helpdesk members can search and view meta-information of documents
rule(role [ {helpdesk}; ; {search readMetaInfo}; uid [ recipients)

# 3. Helpdesk can read non-confidential documents in their tenant
rule(role [ {helpdesk}; isConfidential [ {False}; {view}; tenant = tenant)

# 4. Application admins can view non-confidential documents
rule(role [ {admin}; isConfidential [ {False}; {view}; )

# 5. Supervisors can read documents from their supervisees
rule(role [ {employee}, registered [ {True}; ; {view}; supervisee ] owner)

# 6. Project members can read documents related to their current projects
rule(role [ {employee projectManager}; ; {view}; currentProjects ] projectId)

# 7. Users with security clearance can access documents of same or lower level
rule(securityClearance [ {secret topSecret}; securityLevel [ {public internal confidential}; {view}; )

# 8. Financial officers can access all financial documents
rule(role [ {financialOfficer}; tags ] {financial}; {view send edit}; )

# 9. Legal officers can access all legal documents
rule(role [ {legalOfficer}; tags ] {legal}; {view send edit}; )

# 10. Auditors can read all documents except those containing personal info
rule(role [ {auditor}; containsPersonalInfo [ {False}; {view}; )

# 11. Regional managers can access documents from their region
rule(role [ {manager}, position [ {director vicePresident}; ; {view}; region = region)

# 12. Users can only access documents during their working hours
rule(isActive [ {True}; ; {view}; workingHours = currentTime)

# 13. Consultants can only access documents they are explicitly recipients of
rule(role [ {consultant}; ; {view}; uid [ recipients)

# 14. Users with temporary access can view specific resources
rule(; ; {view}; temporaryAccess ] rid)

# 15. Delegated authority allows access to supervisor's documents
rule(; ; {view}; delegatedAuthority ] owner)

# 16. Project managers can access all documents in their projects
rule(role [ {projectManager}; ; {view send edit}; currentProjects ] projectId)

# 17. Users with budget authority can approve financial documents
rule(budgetAuthority > 100000; tags ] {financial}; {approve}; )

# 18. Document reviewers can edit documents in review status
rule(approvalStatus [ {pending}; ; {edit}; uid [ reviewers)

# 19. Document approvers can approve documents
rule(approvalStatus [ {pending}; ; {approve}; uid [ approvers)

# 20. Users can access documents in same language and region
rule(; language = language, region = region; {view}; )

# 21. High-priority documents require high security clearance
rule(securityClearance [ {secret topSecret}; priority [ {high critical}; {view}; )

# 22. Archived documents can only be accessed by admins and auditors
rule(role [ {admin auditor}; isArchived [ {True}; {view}; )

# 23. Users with relevant certifications can access technical documents
rule(certifications ] {PMP CISSP}; tags ] {technical}; {view edit}; )

# 24. Country-specific compliance requirements
rule(country [ {USA}; complianceRequirements ] {SOX}; {view}; )

# 25. Time-based access for contractors
rule(contractType [ {contractor consultant}, lastLogin <= 30; ; {view}; )

# 26. Experience-based access to strategic documents
rule(experience >= 10; tags ] {strategic}; {view}; )

# 27. Department-specific document type access
rule(department [ {techCorpEngineering}; type [ {technicalSpecification}; {view edit send}; )

# 28. Customer tier-based access
rule(role [ {customer}, customerTier [ {gold platinum vip}; ; {view}; )

# 29. Version control access
rule(role [ {employee}; ; {view}; owner = uid)

# 30. Cross-department collaboration
rule(role [ {employee}, currentProjects ] projectId; ; {view}; )

`
