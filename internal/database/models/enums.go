package models

// Designation is an employee's role in the delivery process
type Designation string

const (
	DesignationDeveloper Designation = "developer"
	DesignationQA        Designation = "qa"
	DesignationLead      Designation = "lead"
	DesignationManager   Designation = "manager"
)

// Severity of a test case
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// TestCaseType classifies a test case
type TestCaseType string

const (
	TestCaseTypeFunctional  TestCaseType = "functional"
	TestCaseTypeRegression  TestCaseType = "regression"
	TestCaseTypeSmoke       TestCaseType = "smoke"
	TestCaseTypeIntegration TestCaseType = "integration"
	TestCaseTypePerformance TestCaseType = "performance"
)

// ReleaseStatus is the lifecycle state of a release
type ReleaseStatus string

const (
	ReleaseStatusPlanned    ReleaseStatus = "planned"
	ReleaseStatusInProgress ReleaseStatus = "in_progress"
	ReleaseStatusReleased   ReleaseStatus = "released"
)

// IsValid checks if the Designation is valid
func (d Designation) IsValid() bool {
	switch d {
	case DesignationDeveloper, DesignationQA, DesignationLead, DesignationManager:
		return true
	}
	return false
}

// IsValid checks if the Severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// IsValid checks if the TestCaseType is valid
func (t TestCaseType) IsValid() bool {
	switch t {
	case TestCaseTypeFunctional, TestCaseTypeRegression, TestCaseTypeSmoke, TestCaseTypeIntegration, TestCaseTypePerformance:
		return true
	}
	return false
}

// IsValid checks if the ReleaseStatus is valid
func (s ReleaseStatus) IsValid() bool {
	switch s {
	case ReleaseStatusPlanned, ReleaseStatusInProgress, ReleaseStatusReleased:
		return true
	}
	return false
}
