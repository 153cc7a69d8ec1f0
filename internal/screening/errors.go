package screening

import "errors"

// ErrNoUsableText marks a batch item whose document produced no text: the
// screening result still exists (all defaults), but the upload layer reports
// the file as failed.
var ErrNoUsableText = errors.New("no usable text extracted from document")

// ErrUnsupportedFormat marks a batch item whose filename extension is
// neither .pdf nor .docx.
var ErrUnsupportedFormat = errors.New("unsupported document format")
