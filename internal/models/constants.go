package models

// Transaction types as stored by the ledger
const (
	TypeDeposit  = "DEPOSIT"
	TypeWithdraw = "WITHDRAW"
	TypeTransfer = "TRANSFER"
)

// Transfer direction relative to the analyzed account
const (
	DirectionIncoming = "in"
	DirectionOutgoing = "out"
)

// Categories with special handling
const (
	CategorySalaryIncome = "Salary & Income"
	CategoryOther        = "Other"
)

// Fallback presentation for the implicit "Other" category
const (
	OtherIcon  = "📦"
	OtherColor = "#6b7280"
)

// Risk levels derived from the 0-100 fraud score
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionReportFile = 0644
)
