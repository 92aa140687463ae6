// Package classify decides whether a document's effective language
// identifier should change based on the Clay first-line marker.
//
// Classification is advisory: every guard is a silent no-op, and the only
// error that can come back is the host's own relabeling failure, which is
// passed through untouched and never retried.
package classify

import (
	"context"
	"path"
	"strings"

	"github.com/claytmpl/clayls/pkg/clay"
	"github.com/rs/zerolog"
)

// Host is the part of the editing environment the classifier drives. The
// relabel call may fail per host rules; the notification channel is
// best-effort and only carries the message text.
type Host interface {
	SetDocumentLanguage(ctx context.Context, uri string, languageID string) error
	ShowMessage(ctx context.Context, message string) error
}

// Snapshot is the read-only view of a document the classifier inspects.
type Snapshot struct {
	URI        string
	LanguageID string
	Lines      []string
}

// Classifier evaluates documents against the marker and language mapping.
// The zero value is ready to use; it carries no state of its own.
type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

// Evaluate inspects doc and, when the marker matches and the document is not
// already carrying the derived identifier, asks host to relabel it. All
// other outcomes are silent no-ops.
func (c *Classifier) Evaluate(ctx context.Context, doc Snapshot, host Host) error {
	logger := zerolog.Ctx(ctx)

	base := doc.LanguageID
	target, ok := clay.DerivedTag(base)
	if !ok {
		return nil
	}

	if len(doc.Lines) == 0 {
		return nil
	}

	// Exact whole-line match on line 0 only. Markers mixed with other
	// tokens or placed elsewhere do not count.
	if strings.TrimSpace(doc.Lines[0]) != clay.Marker {
		return nil
	}

	if doc.LanguageID == target {
		// Already relabeled, avoid a relabeling storm on repeated triggers.
		return nil
	}

	logger.Debug().
		Str("uri", doc.URI).
		Str("from", base).
		Str("to", target).
		Msg("clay marker found, relabeling document")

	if err := host.SetDocumentLanguage(ctx, doc.URI, target); err != nil {
		return err
	}

	if err := host.ShowMessage(ctx, SwitchMessage(doc.URI, base, target)); err != nil {
		logger.Warn().Err(err).Str("uri", doc.URI).Msg("failed to deliver switch notification")
	}

	return nil
}

// SwitchMessage is the user-facing feedback text for a relabeled document.
// Delivery and formatting are the host's concern.
func SwitchMessage(uri, from, to string) string {
	return "Switched " + path.Base(uri) + " from " + from + " to " + to
}

// TouchesFirstLine is the change-event trigger policy: an edit re-triggers
// classification only when its range starts or ends at line 0. Edits
// elsewhere in a large document must not re-run the classifier on every
// keystroke.
func TouchesFirstLine(startLine, endLine int) bool {
	return startLine == 0 || endLine == 0
}
