package parse

import (
	"fmt"

	"github.com/conneroisu/claudecode/pkg/ccerrs"
	"github.com/conneroisu/claudecode/pkg/claudecode/messages"
)

func (a *Adapter) parseResultMessage(data map[string]any) (messages.Message, error) {
	subtype, ok := getString(data, "subtype")
	if !ok {
		return nil, missingField("subtype")
	}

	durationMS, ok := getFloat(data, "duration_ms")
	if !ok {
		return nil, missingField("duration_ms")
	}

	durationAPIMS, ok := getFloat(data, "duration_api_ms")
	if !ok {
		return nil, missingField("duration_api_ms")
	}

	isError, ok := getBool(data, "is_error")
	if !ok {
		return nil, missingField("is_error")
	}

	numTurns, ok := getFloat(data, "num_turns")
	if !ok {
		return nil, missingField("num_turns")
	}

	sessionID, ok := getString(data, "session_id")
	if !ok {
		return nil, missingField("session_id")
	}

	// Older CLI versions emit cost_usd, newer ones total_cost_usd.
	// Either fills in for the other; only both missing is an error.
	costUSD, haveCost := getFloat(data, "cost_usd")
	totalCostUSD, haveTotal := getFloat(data, "total_cost_usd")
	switch {
	case !haveCost && !haveTotal:
		return nil, ccerrs.NewParseError(ccerrs.ErrCodeMissingField,
			"result message missing cost_usd and total_cost_usd fields", "result")
	case !haveCost:
		costUSD = totalCostUSD
	case !haveTotal:
		totalCostUSD = costUSD
	}

	return &messages.ResultMessage{
		Subtype:       subtype,
		CostUSD:       costUSD,
		DurationMS:    int64(durationMS),
		DurationAPIMS: int64(durationAPIMS),
		IsError:       isError,
		NumTurns:      int(numTurns),
		SessionID:     sessionID,
		TotalCostUSD:  totalCostUSD,
		Usage:         parseUsage(data["usage"]),
		Result:        getStringPtr(data, "result"),
	}, nil
}

func missingField(field string) error {
	return ccerrs.NewParseError(ccerrs.ErrCodeMissingField,
		fmt.Sprintf("result message missing %s field", field), "result")
}

func parseUsage(v any) *messages.Usage {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	input, _ := m["input_tokens"].(float64)
	output, _ := m["output_tokens"].(float64)
	cacheCreation, _ := m["cache_creation_input_tokens"].(float64)
	cacheRead, _ := m["cache_read_input_tokens"].(float64)

	return &messages.Usage{
		InputTokens:              int(input),
		OutputTokens:             int(output),
		CacheCreationInputTokens: int(cacheCreation),
		CacheReadInputTokens:     int(cacheRead),
	}
}

func getString(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)

	return v, ok
}

func getFloat(data map[string]any, key string) (float64, bool) {
	v, ok := data[key].(float64)

	return v, ok
}

func getBool(data map[string]any, key string) (bool, bool) {
	v, ok := data[key].(bool)

	return v, ok
}

func getStringPtr(data map[string]any, key string) *string {
	if v, ok := data[key].(string); ok {
		return &v
	}

	return nil
}
