package classify_test

import (
	"context"
	"testing"

	"github.com/claytmpl/clayls/pkg/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

type relabelCall struct {
	uri        string
	languageID string
}

// recordingHost captures relabel requests and notifications, optionally
// failing the relabel call.
type recordingHost struct {
	relabels   []relabelCall
	messages   []string
	relabelErr error
}

func (h *recordingHost) SetDocumentLanguage(ctx context.Context, uri string, languageID string) error {
	if h.relabelErr != nil {
		return h.relabelErr
	}
	h.relabels = append(h.relabels, relabelCall{uri: uri, languageID: languageID})
	return nil
}

func (h *recordingHost) ShowMessage(ctx context.Context, message string) error {
	h.messages = append(h.messages, message)
	return nil
}

func doc(languageID string, lines ...string) classify.Snapshot {
	return classify.Snapshot{
		URI:        "file:///workspace/example.js",
		LanguageID: languageID,
		Lines:      lines,
	}
}

func TestEvaluateRelabelsMarkedDocument(t *testing.T) {
	host := &recordingHost{}

	err := classify.New().Evaluate(context.Background(), doc("javascript", "// @clay", "const x = 1;"), host)
	require.NoError(t, err)

	require.Len(t, host.relabels, 1)
	assert.Equal(t, "file:///workspace/example.js", host.relabels[0].uri)
	assert.Equal(t, "javascript-with-clay", host.relabels[0].languageID)

	require.Len(t, host.messages, 1)
	assert.Equal(t, "Switched example.js from javascript to javascript-with-clay", host.messages[0])
}

func TestEvaluateIsIdempotent(t *testing.T) {
	host := &recordingHost{}
	c := classify.New()

	// A document already carrying the derived identifier must not be
	// relabeled again, no matter how often it is evaluated.
	d := doc("javascript-with-clay", "// @clay", "const x = 1;")
	require.NoError(t, c.Evaluate(context.Background(), d, host))
	require.NoError(t, c.Evaluate(context.Background(), d, host))

	assert.Empty(t, host.relabels)
	assert.Empty(t, host.messages)
}

func TestEvaluateNoOps(t *testing.T) {
	tests := []struct {
		name string
		doc  classify.Snapshot
	}{
		{"unsupported language", doc("go", "// @clay")},
		{"empty document", doc("javascript")},
		{"no marker", doc("javascript", "const x = 1;")},
		{"marker without space", doc("javascript", "//@clay")},
		{"marker with trailing tokens", doc("javascript", "// @clay enable")},
		{"marker on second line", doc("javascript", "", "// @clay")},
		{"derived tag with no marker", doc("javascript-with-clay", "const x = 1;")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &recordingHost{}
			require.NoError(t, classify.New().Evaluate(context.Background(), tt.doc, host))
			assert.Empty(t, host.relabels)
			assert.Empty(t, host.messages)
		})
	}
}

func TestEvaluateAcceptsSurroundingWhitespace(t *testing.T) {
	host := &recordingHost{}

	err := classify.New().Evaluate(context.Background(), doc("typescript", "   // @clay\t"), host)
	require.NoError(t, err)

	require.Len(t, host.relabels, 1)
	assert.Equal(t, "typescript-with-clay", host.relabels[0].languageID)
}

func TestEvaluatePropagatesRelabelFailure(t *testing.T) {
	host := &recordingHost{relabelErr: errors.New("host refused")}

	err := classify.New().Evaluate(context.Background(), doc("javascript", "// @clay"), host)
	require.Error(t, err)
	assert.ErrorContains(t, err, "host refused")
	// No notification when the relabel did not happen.
	assert.Empty(t, host.messages)
}

func TestTouchesFirstLine(t *testing.T) {
	assert.True(t, classify.TouchesFirstLine(0, 0))
	assert.True(t, classify.TouchesFirstLine(0, 5))
	assert.False(t, classify.TouchesFirstLine(1, 1))
	assert.False(t, classify.TouchesFirstLine(3, 12))
}
