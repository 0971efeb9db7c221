package source

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Query runs a jq expression over a decoded document. A single result is
// returned as is; several results are collected into an array so they can
// be read as records.
func Query(doc any, expr string) (any, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	var results []any
	iter := code.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %w", err)
		}
		results = append(results, v)
	}

	switch len(results) {
	case 0:
		return nil, fmt.Errorf("query %q produced no result", expr)
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}
