package analytics

import "PersonalFinance/pkg/response"

var (
	ErrInvalidMonth = response.NewError(400, "month must be in YYYY-MM format")
	ErrBuildReport  = response.NewError(500, "failed to fetch analytics")
)
