package logs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"stationdeck/internal/logging"
)

// Filter selects log lines. A nil Filter keeps every line.
type Filter func(line string) bool

// ForProfile keeps lines carrying the given profile id field.
func ForProfile(profileID string) Filter {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil
	}
	console := logging.FieldProfileID + "=" + profileID
	quoted := fmt.Sprintf("%s=%q", logging.FieldProfileID, profileID)
	jsonField := fmt.Sprintf("%q:%q", logging.FieldProfileID, profileID)
	return func(line string) bool {
		if strings.Contains(line, jsonField) || strings.Contains(line, quoted) {
			return true
		}
		idx := strings.Index(line, console)
		if idx < 0 {
			return false
		}
		end := idx + len(console)
		return end == len(line) || line[end] == ' '
	}
}

// Last returns up to limit of the newest lines in path that pass filter,
// oldest first. A missing file yields no lines.
func Last(path string, limit int, filter Filter) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("log path %q is a directory", path)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ring := make([]string, limit)
	count := 0
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()
		if filter != nil && !filter(line) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := make([]string, count)
	if count == limit {
		for i := range count {
			lines[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
