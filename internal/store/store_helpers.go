package store

import "strings"

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func makePlaceholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// upsert replaces the record with the same id or appends it.
func upsert[T any](records []T, record T, id func(T) string) []T {
	key := id(record)
	for i, existing := range records {
		if id(existing) == key {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func contains[T any](records []T, key string, id func(T) string) bool {
	for _, record := range records {
		if id(record) == key {
			return true
		}
	}
	return false
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
