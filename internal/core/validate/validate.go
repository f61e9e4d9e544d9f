// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/zukan/internal/core/catalog"
)

// Name validates a collection or entry name is non-empty after trimming whitespace.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// NameField returns a criterio validator for names.
func NameField(field, name string) error {
	return criterio.Run(field, name, Name)
}

// RecordID validates that id refers to a record that exists on the server.
func RecordID(id int64) error {
	if id == catalog.SentinelID {
		return fmt.Errorf("no record selected")
	}
	if id < 0 {
		return fmt.Errorf("invalid id %d", id)
	}
	return nil
}

// RecordIDField returns a criterio validator for record ids.
func RecordIDField(field string, id int64) error {
	if err := RecordID(id); err != nil {
		return criterio.NewFieldErrors(field, err)
	}
	return nil
}
