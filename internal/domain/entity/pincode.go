package entity

import (
	"encoding/json"
	"strings"
)

// PincodeList is a list of pincode tokens that decodes from either a JSON
// array or a single comma-separated string.
type PincodeList []string

// UnmarshalJSON accepts `["110001","110002"]` and `"110001, 110002"`.
func (l *PincodeList) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*l = SplitPincodes(text)

		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	tokens := make([]string, 0, len(items))
	for _, item := range items {
		tokens = append(tokens, SplitPincodes(item)...)
	}
	*l = tokens

	return nil
}

// SplitPincodes splits free text on commas, trims whitespace and drops empty tokens.
func SplitPincodes(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}

// UniquePincodes deduplicates tokens, keeping the first occurrence order.
func UniquePincodes(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}

	return unique
}
