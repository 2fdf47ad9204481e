package engine

import (
	"strings"
	"time"

	"formval/internal/field"
)

// validateAttachment checks presence, consistency and size. The answer
// and filename must co-vary with the binary content: an answer with no
// file, or a file with no answer, is inconsistent and fails.
func validateAttachment(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	hasContent := len(resp.Content) > 0
	answer := strings.TrimSpace(resp.Answer)

	if !hasContent && resp.Filename == "" && answer == "" {
		if f.Required {
			return invalidAnswer()
		}
		return nil
	}
	if !hasContent || resp.Filename == "" || answer == "" {
		return invalidAnswer()
	}

	// Size tiers use fixed decimal byte ceilings. An unrecognized tier
	// resolves to 0 and rejects every file rather than accepting an
	// unbounded upload.
	limit := field.AttachmentSize("").Bytes()
	if f.Attachment != nil {
		limit = f.Attachment.Size.Bytes()
	}
	if int64(len(resp.Content)) > limit {
		return invalidAnswer()
	}
	return nil
}
