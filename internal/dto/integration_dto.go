package dto

type ManageApiKeyRequest struct {
	Service string `json:"service" validate:"required"`
	Key     string `json:"key"`
	Action  string `json:"action" validate:"required"`
}

type ServiceUsage struct {
	Service  string  `json:"service"`
	Requests int     `json:"requests"`
	Tokens   int     `json:"tokens"`
	Cost     float64 `json:"cost"`
}

type DailyUsage struct {
	Day      string `json:"day"`
	Requests int    `json:"requests"`
	Tokens   int    `json:"tokens"`
}

type UsageOverview struct {
	TotalRequests int     `json:"totalRequests"`
	TotalTokens   int     `json:"totalTokens"`
	EstimatedCost float64 `json:"estimatedCost"`
}

type ApiUsageResponse struct {
	Overview         UsageOverview  `json:"overview"`
	ByService        []ServiceUsage `json:"byService"`
	TimeDistribution []DailyUsage   `json:"timeDistribution"`
}
