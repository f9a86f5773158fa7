package model

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/geodatos/geoforms/registry"
)

// Validate checks a document before it is handed to the save collaborator.
// All problems are collected into one multierror rather than stopping at
// the first. Unknown question types are tolerated here (the preview falls
// back to a text widget); structural problems are not.
func Validate(doc FormDocument) error {
	var result *multierror.Error

	if doc.Title == "" {
		result = multierror.Append(result, fmt.Errorf("form title is required"))
	}

	switch doc.Status {
	case StatusDraft, StatusPublished, StatusArchived:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid form status %q", doc.Status))
	}

	for i, q := range doc.Questions {
		if q.Label == "" {
			result = multierror.Append(result, fmt.Errorf("question %d: label is required", i+1))
		}

		desc, known := registry.Lookup(q.Type)
		if !known {
			continue
		}

		caps := desc.Capabilities
		if caps.Options && !caps.OptionsOptional && len(q.Options) == 0 {
			result = multierror.Append(result, fmt.Errorf("question %d (%s): at least one option is required", i+1, q.Type))
		}
		if q.MinValue != nil && q.MaxValue != nil && *q.MinValue > *q.MaxValue {
			result = multierror.Append(result, fmt.Errorf("question %d: min_value %v exceeds max_value %v", i+1, *q.MinValue, *q.MaxValue))
		}
		if minLen, maxLen := q.Validation["min_length"], q.Validation["max_length"]; maxLen > 0 && minLen > maxLen {
			result = multierror.Append(result, fmt.Errorf("question %d: min_length exceeds max_length", i+1))
		}
	}

	return result.ErrorOrNil()
}
