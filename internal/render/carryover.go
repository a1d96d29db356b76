package render

import (
	"fmt"
	"strings"

	"github.com/dials/corenote/internal/constants"
	apperrors "github.com/dials/corenote/internal/errors"
)

// ExtractCarryOver returns the previous note's text from the "## Previous Actions" heading
// up to, but not including, the first "### Next meeting" heading after it.
func ExtractCarryOver(doc string) (string, error) {
	start := strings.Index(doc, constants.PreviousActionsMarker)
	if start < 0 {
		return "", fmt.Errorf("%w: missing %q", apperrors.ErrMalformedPreviousDocument, constants.PreviousActionsMarker)
	}
	end := strings.Index(doc[start:], constants.NextMeetingMarker)
	if end < 0 {
		return "", fmt.Errorf("%w: missing %q after %q", apperrors.ErrMalformedPreviousDocument,
			constants.NextMeetingMarker, constants.PreviousActionsMarker)
	}
	return doc[start : start+end], nil
}
