package messages

// ResultMessage is the terminal message of a query, summarizing cost,
// timing, and outcome.
type ResultMessage struct {
	Subtype string `json:"subtype"`
	// CostUSD is the cost of this call. Older CLI versions emit only
	// total_cost_usd, which the mapper then mirrors here.
	CostUSD       float64 `json:"cost_usd"`
	DurationMS    int64   `json:"duration_ms"`
	DurationAPIMS int64   `json:"duration_api_ms"`
	IsError       bool    `json:"is_error"`
	NumTurns      int     `json:"num_turns"`
	SessionID     string  `json:"session_id"`
	TotalCostUSD  float64 `json:"total_cost_usd"`
	Usage         *Usage  `json:"usage,omitempty"`
	Result        *string `json:"result,omitempty"`
}

func (*ResultMessage) message() {}

// Usage is the token breakdown reported on a result.
type Usage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}
