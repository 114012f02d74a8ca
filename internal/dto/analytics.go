package dto

// SpendingParams are the query parameters for the spending analytics report.
type SpendingParams struct {
	Range string `form:"range,default=30days" binding:"omitempty,oneof=7days 30days 90days all"`
}
