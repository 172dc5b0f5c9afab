package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile          = "file_path"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldKeyword       = "keyword"
	FieldRiskScore     = "risk_score"
	FieldRiskLevel     = "risk_level"
	FieldAlertType     = "alert_type"
	FieldTrend         = "trend"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldCount         = "count"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
