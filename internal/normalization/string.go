package normalization

import (
  "strings"
)

func ParseInputString(input string) string {
  normalized := strings.ToLower(strings.TrimSpace(input))
  return normalized
}

// ParseEnumString uppercases trimmed input so difficulty and status values
// match their stored form regardless of how the client cased them.
func ParseEnumString(input string) string {
  normalized := strings.ToUpper(strings.TrimSpace(input))
  return normalized
}
