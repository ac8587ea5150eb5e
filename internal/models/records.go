package models

import "time"

// IssueType classifies a production quality issue traced back to design.
type IssueType string

const (
	IssueDesignError   IssueType = "design-error"
	IssueBendingError  IssueType = "bending-error"
	IssueCuttingError  IssueType = "cutting-error"
	IssueMaterialError IssueType = "material-error"
	IssueAssemblyError IssueType = "assembly-error"
)

// IssueTypes lists the valid issue types in display order.
var IssueTypes = []IssueType{
	IssueDesignError,
	IssueBendingError,
	IssueCuttingError,
	IssueMaterialError,
	IssueAssemblyError,
}

// IssueRecord ties a quality issue to a work-order number.
type IssueRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectNS   string    `gorm:"not null;index" json:"project_ns"`
	Type        IssueType `gorm:"not null" json:"type"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	ReportedBy  string    `json:"reported_by"`
}

// InnovationType classifies a cost-saving proposal.
type InnovationType string

const (
	InnovationNewProject         InnovationType = "new-project"
	InnovationProductImprovement InnovationType = "product-improvement"
	InnovationProcessOptim       InnovationType = "process-optimization"
)

// InnovationTypes lists the valid innovation types in display order.
var InnovationTypes = []InnovationType{
	InnovationNewProject,
	InnovationProductImprovement,
	InnovationProcessOptim,
}

// CalculationType says how an innovation's savings scale to a year.
type CalculationType string

const (
	CalcPerUnit          CalculationType = "per-unit"
	CalcRecurringMonthly CalculationType = "recurring-monthly"
	CalcOneTime          CalculationType = "one-time"
)

// InnovationStatus is the review state of a proposal.
type InnovationStatus string

const (
	InnovationPending     InnovationStatus = "PENDING"
	InnovationApproved    InnovationStatus = "APPROVED"
	InnovationRejected    InnovationStatus = "REJECTED"
	InnovationImplemented InnovationStatus = "IMPLEMENTED"
)

// InnovationRecord is a cost-saving proposal with its savings math
// snapshotted at creation time.
type InnovationRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Type        InnovationType `gorm:"not null" json:"type"`

	CalculationType    CalculationType `gorm:"not null" json:"calculation_type"`
	UnitSavings        float64         `json:"unit_savings"`
	Quantity           float64         `json:"quantity"`
	TotalAnnualSavings float64         `json:"total_annual_savings"`
	InvestmentCost     float64         `json:"investment_cost"`

	Status   InnovationStatus `gorm:"not null;default:PENDING;index" json:"status"`
	AuthorID string           `json:"author_id"`
}

// AnnualSavings computes the yearly total for the given calculation type.
// One-time values do not scale with quantity.
func AnnualSavings(calc CalculationType, unitSavings, quantity float64) float64 {
	if calc == CalcOneTime {
		return unitSavings
	}
	return unitSavings * quantity
}

// PaybackMonths estimates how many months of savings repay the investment.
// Returns 0 when either side of the division is not positive.
func (r *InnovationRecord) PaybackMonths() float64 {
	if r.InvestmentCost <= 0 || r.TotalAnnualSavings <= 0 {
		return 0
	}
	return r.InvestmentCost / (r.TotalAnnualSavings / 12)
}

// UserRole separates the two audiences of the tracker. Roles only gate
// which views a client surfaces; they carry no enforcement here.
type UserRole string

const (
	RoleManager  UserRole = "manager"
	RoleDesigner UserRole = "designer"
)

// User is a tracked department member.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string   `gorm:"uniqueIndex;not null" json:"username"`
	Name     string   `gorm:"not null" json:"name"`
	Role     UserRole `gorm:"not null;default:designer" json:"role"`
}
