package search_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogos de prueba: certificados con etiquetas
// ──────────────────────────────────────────────────────────────────────────────

const (
	certType search.EntityType = "certificate"
	tagType  search.EntityType = "tag"
)

var certCatalog = search.StaticCatalog{
	Type:        certType,
	FieldPrefix: "gc.",
	FieldList: []search.FieldDescriptor{
		{LogicalName: "id", Aliases: []string{"gcId"}, StorageColumn: "id"},
		{LogicalName: "name", Aliases: []string{"gcName", "giftCertificateName"}, StorageColumn: "name"},
		{LogicalName: "description", Aliases: []string{"description"}, StorageColumn: "description"},
		{LogicalName: "price", Aliases: []string{"price"}, StorageColumn: "price"},
		{LogicalName: "create", Aliases: []string{"create_date", "gc.create"}, StorageColumn: "create_date"},
	},
	JoinList: []search.JoinRef{{Related: tagType, Path: "tags"}},
}

var tagCatalog = search.StaticCatalog{
	Type:        tagType,
	FieldPrefix: "t.",
	FieldList: []search.FieldDescriptor{
		{LogicalName: "id", Aliases: []string{"tId"}, StorageColumn: "id"},
		{LogicalName: "name", Aliases: []string{"tName", "tagName"}, StorageColumn: "name"},
	},
	JoinList: []search.JoinRef{{Related: certType, Path: "certificates"}},
}

func newTestRegistry(t *testing.T) *search.Registry {
	t.Helper()
	reg, err := search.NewRegistry(certCatalog, tagCatalog)
	require.NoError(t, err, "los catálogos de prueba deben ser válidos")
	return reg
}

func newTestParser(t *testing.T) *search.Parser {
	t.Helper()
	return search.NewParser(newTestRegistry(t), 100, zerolog.Nop())
}

func certDefaults() search.Defaults { return search.DefaultsFor("gc.id") }

// mustParse interpreta una query string para certificados.
func mustParse(t *testing.T, p *search.Parser, query string) search.SearchParamRequest {
	t.Helper()
	req, err := p.Parse(search.ParseQueryString(query), certType, certDefaults())
	require.NoError(t, err)
	return req
}
