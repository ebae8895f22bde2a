package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Formatter renders a simulation result as a byte slice. Implementations
// must be pure: deterministic formatting, no mutation of the result.
type Formatter interface {
	Format(res *Result) ([]byte, error)
	// Name returns the canonical identifier used for lookup.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVSummaryFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"report":      "console",
	"json-pretty": "json",
	"csv-summary": "csv",
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
// It returns nil when the name is unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NormalizeFormatName lowers, trims and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// WriteFormatted runs a formatter and writes its output to a
// timestamped file with the given extension, returning the filename.
func WriteFormatted(f Formatter, res *Result, ext string) (string, error) {
	data, err := f.Format(res)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("portfolio_simulation_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
