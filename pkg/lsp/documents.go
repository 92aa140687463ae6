package lsp

import (
	"strings"
	"sync"

	"github.com/claytmpl/clayls/pkg/lsp/protocol"
	"github.com/spf13/afero"
)

// Document is a text document tracked by the server.
type Document struct {
	URI        string
	LanguageID protocol.LanguageKind
	Version    int32
	Content    string
}

// Lines splits the document content into its lines.
func (d *Document) Lines() []string {
	return strings.Split(d.Content, "\n")
}

// DocumentManager stores open documents keyed by normalized URI. Requests
// for unopened documents fall back to reading the file system, so that
// one-shot tools can ask about files the editor never sent.
type DocumentManager struct {
	store *sync.Map // map[string]*Document
	fs    afero.Fs
}

// NewDocumentManager builds a manager backed by fs; a nil fs means the OS
// file system.
func NewDocumentManager(fs afero.Fs) *DocumentManager {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &DocumentManager{
		store: &sync.Map{},
		fs:    fs,
	}
}

// normalizeURI ensures consistent map keys by stripping the file scheme.
func normalizeURI(uri string) string {
	uri = strings.TrimPrefix(uri, "file://")
	uri = strings.TrimPrefix(uri, "file:")
	return uri
}

func (m *DocumentManager) Get(uri protocol.DocumentURI) (*Document, bool) {
	normalized := normalizeURI(string(uri))
	if content, ok := m.store.Load(normalized); ok {
		doc, ok := content.(*Document)
		return doc, ok
	}

	data, err := afero.ReadFile(m.fs, normalized)
	if err != nil {
		return nil, false
	}

	doc := &Document{
		URI:     normalized,
		Content: string(data),
	}
	m.store.Store(normalized, doc)
	return doc, true
}

// GetOpen is like Get without the file system fallback.
func (m *DocumentManager) GetOpen(uri protocol.DocumentURI) (*Document, bool) {
	content, ok := m.store.Load(normalizeURI(string(uri)))
	if !ok {
		return nil, false
	}
	doc, ok := content.(*Document)
	return doc, ok
}

func (m *DocumentManager) Store(uri protocol.DocumentURI, doc *Document) {
	m.store.Store(normalizeURI(string(uri)), doc)
}

func (m *DocumentManager) Delete(uri protocol.DocumentURI) {
	m.store.Delete(normalizeURI(string(uri)))
}
