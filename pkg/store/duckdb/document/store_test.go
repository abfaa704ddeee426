package document

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/safework-tools/swms-atlas/pkg/models/store"
	"github.com/safework-tools/swms-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func sampleDocument() (store.DocumentRecord, []store.AssessmentRecord) {
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	doc := store.DocumentRecord{
		ID:                  "doc-1",
		Title:               "Switchboard upgrade",
		TradeType:           "electrical",
		PrincipalContractor: "Acme Constructions",
		SiteAddress:         "1 Example St, Sydney NSW",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	assessments := []store.AssessmentRecord{
		{
			ID:                  "a-1",
			DocumentID:          "doc-1",
			Position:            0,
			Activity:            "Install switchboard",
			Hazards:             []string{"Electric shock", "Arc flash"},
			Likelihood:          3,
			Consequence:         5,
			InitialRiskScore:    18,
			ControlMeasures:     []string{"Isolate supply", "Test for dead", "RCD protection"},
			ResidualLikelihood:  2,
			ResidualConsequence: 3,
			ResidualRiskScore:   7,
			RiskLevel:           "Extreme",
			Legislation:         []string{"AS/NZS 3000:2018", "WHS Act 2011"},
		},
		{
			ID:               "a-2",
			DocumentID:       "doc-1",
			Position:         1,
			Activity:         "Cable rough-in",
			Likelihood:       2,
			Consequence:      2,
			InitialRiskScore: 4,
		},
	}
	return doc, assessments
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	doc, assessments := sampleDocument()
	require.NoError(t, f.store.Save(ctx, doc, assessments))

	got, gotAssessments, err := f.store.Get(ctx, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, doc, got)
	require.Len(t, gotAssessments, 2)
	assert.Equal(t, assessments[0], gotAssessments[0])
	assert.Equal(t, "a-2", gotAssessments[1].ID)
	assert.Empty(t, gotAssessments[1].Hazards)
}

func TestDocumentStore_SaveReplacesAssessments(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	doc, assessments := sampleDocument()
	require.NoError(t, f.store.Save(ctx, doc, assessments))

	doc.Title = "Switchboard upgrade rev B"
	require.NoError(t, f.store.Save(ctx, doc, assessments[:1]))

	got, gotAssessments, err := f.store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Switchboard upgrade rev B", got.Title)
	assert.Len(t, gotAssessments, 1)
}

func TestDocumentStore_GetMissing(t *testing.T) {
	f := setupFixture(t)

	_, _, err := f.store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	doc, assessments := sampleDocument()
	require.NoError(t, f.store.Save(ctx, doc, assessments))

	second := doc
	second.ID = "doc-2"
	second.Title = "Site establishment"
	second.UpdatedAt = doc.UpdatedAt.Add(time.Hour)
	require.NoError(t, f.store.Save(ctx, second, nil))

	docs, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-2", docs[0].ID, "most recently updated first")
	assert.Equal(t, "doc-1", docs[1].ID)
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
