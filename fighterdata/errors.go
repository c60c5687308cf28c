package fighterdata

import "errors"

// Load failures are reported as wrapped sentinel errors so callers can tell
// a corrupt file from an incomplete one with errors.Is.
var (
	// ErrVerification means the file's <verification> element is absent or
	// does not carry the code expected for its file type.
	ErrVerification = errors.New("verification code mismatch")

	// ErrMissingElement means a required child element is absent.
	ErrMissingElement = errors.New("missing required element")

	// ErrMissingAttribute means a required attribute is absent.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrBadValue means a field was present but could not be converted to
	// its target type.
	ErrBadValue = errors.New("invalid field value")

	// ErrEmptyManifest means a manifest produced no loadable entries.
	ErrEmptyManifest = errors.New("no loadable entries in manifest")
)
