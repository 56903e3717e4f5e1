/* utils.go
 * Utility functions used across the application
 */

package main

import (
	"fmt"
	"strings"
)

// convertStrToBool parses a "true"/"false" flag value, ignoring case and
// surrounding whitespace.
// Postconditions: Returns the boolean value, or an error for anything else
func convertStrToBool(str string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string %q", str)
}
