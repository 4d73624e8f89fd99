package taxonomy

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNormalizes(t *testing.T) {
	tax, err := Build(Document{
		Hard: []EntrySpec{{Term: "  Python ", Variations: []string{"PY", "py", " ", "Python3"}}},
	})
	require.NoError(t, err)

	entries := tax.Entries(Hard)
	require.Len(t, entries, 1)
	assert.Equal(t, "python", entries[0].Term)
	assert.Equal(t, Hard, entries[0].Category)
	assert.Equal(t, []string{"py", "python3"}, entries[0].Variations)
	assert.Equal(t, 1, tax.Len())
}

func TestBuildRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{name: "empty", doc: Document{}},
		{name: "blank term", doc: Document{Soft: []EntrySpec{{Term: "  "}}}},
		{name: "duplicate term", doc: Document{Hard: []EntrySpec{{Term: "go"}, {Term: "GO"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestBuildAllowsSameTermAcrossCategories(t *testing.T) {
	tax, err := Build(Document{
		Hard:      []EntrySpec{{Term: "data science"}},
		Education: []EntrySpec{{Term: "data science"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tax.Len())
}

func TestVariationsLookup(t *testing.T) {
	tax := Default()

	vars, ok := tax.Variations(Hard, "Kubernetes")
	require.True(t, ok)
	assert.Contains(t, vars, "k8s")

	_, ok = tax.Variations(Soft, "kubernetes")
	assert.False(t, ok)
}

func TestEntriesReturnsCopy(t *testing.T) {
	tax := Default()
	entries := tax.Entries(Hard)
	entries[0].Term = "mutated"
	entries[0].Variations[0] = "mutated"

	again := tax.Entries(Hard)
	assert.Equal(t, "python", again[0].Term)
	assert.Equal(t, "python3", again[0].Variations[0])
}

func TestDefaultOrder(t *testing.T) {
	assert.Equal(t, []Category{Hard, Soft, Experience, Education}, Order)

	tax := Default()
	for _, cat := range Order {
		assert.NotEmpty(t, tax.Entries(cat), "category %s", cat)
	}
	assert.Equal(t, "Hard Skills", Hard.DisplayName())
	assert.Equal(t, "Soft Skills", Soft.DisplayName())
	assert.Equal(t, "Experience", Experience.DisplayName())
	assert.Equal(t, "Education", Education.DisplayName())
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, Hard, cat)

	_, err = ParseCategory("misc")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestYAMLRoundTripKeepsChecksum(t *testing.T) {
	tax := Default()
	data, err := tax.EncodeYAML()
	require.NoError(t, err)

	parsed, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, tax.Document(), parsed.Document())
	assert.Equal(t, tax.Checksum(), parsed.Checksum())
	assert.Len(t, tax.Checksum(), 64)
}

func TestParseYAMLRejectsGarbage(t *testing.T) {
	_, err := ParseYAML([]byte("hard: [oops"))
	assert.ErrorIs(t, err, ErrInvalid)
}

type fakeOpener struct {
	objects map[string]string
}

func (f fakeOpener) Open(_ context.Context, key string) (io.ReadCloser, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestStoreSourceLoad(t *testing.T) {
	doc := `
hard:
  - term: golang
    variations: [go]
soft:
  - term: empathy
`
	src := StoreSource{Store: fakeOpener{objects: map[string]string{"taxonomy.yaml": doc}}, Key: "taxonomy.yaml"}
	tax, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "store", src.Name())
	assert.Equal(t, 2, tax.Len())

	vars, ok := tax.Variations(Hard, "golang")
	require.True(t, ok)
	assert.Equal(t, []string{"go"}, vars)
}

func TestStoreSourceMissingKey(t *testing.T) {
	src := StoreSource{Store: fakeOpener{objects: map[string]string{}}, Key: "missing.yaml"}
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestBuiltinSourceHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuiltinSource{}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPGSourceLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{"id", "category", "term", "variation"}).
		AddRow(int64(1), "hard", "python", "py").
		AddRow(int64(1), "hard", "python", "python3").
		AddRow(int64(2), "soft", "leadership", nil).
		AddRow(int64(3), "hard", "docker", "dockerfile")
	mock.ExpectQuery("FROM skill_terms").WillReturnRows(rows)

	tax, err := PGSource{DB: db}.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	hard := tax.Entries(Hard)
	require.Len(t, hard, 2)
	assert.Equal(t, "python", hard[0].Term)
	assert.Equal(t, []string{"py", "python3"}, hard[0].Variations)
	assert.Equal(t, "docker", hard[1].Term)

	soft := tax.Entries(Soft)
	require.Len(t, soft, 1)
	assert.Empty(t, soft[0].Variations)
}

func TestPGSourceRejectsUnknownCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM skill_terms").WillReturnRows(
		sqlmock.NewRows([]string{"id", "category", "term", "variation"}).AddRow(int64(1), "hobby", "chess", nil),
	)

	_, err = PGSource{DB: db}.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSeedPG(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tax := MustBuild(Document{
		Hard: []EntrySpec{{Term: "python", Variations: []string{"py"}}},
		Soft: []EntrySpec{{Term: "leadership"}},
	})

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM skill_variations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM skill_terms").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO skill_terms").
		WithArgs("hard", "python", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec("INSERT INTO skill_variations").
		WithArgs(int64(7), "py", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("INSERT INTO skill_terms").
		WithArgs("soft", "leadership", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectCommit()

	require.NoError(t, SeedPG(context.Background(), db, tax))
	require.NoError(t, mock.ExpectationsWereMet())
}
