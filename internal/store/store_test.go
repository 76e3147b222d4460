package store

import (
	"path/filepath"
	"testing"

	"github.com/crebi6/passport2/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(filepath.Join(t.TempDir(), "passport2.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleRecords() []model.Record {
	return []model.Record{
		{Origin: "Kenya", Destination: "Uganda", Requirement: model.RequirementVisaFree},
		{Origin: "Kenya", Destination: "China", Requirement: model.RequirementVisaRequired},
		{Origin: "Ghana", Destination: "Togo", Requirement: model.RequirementVisaOnArrival},
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	st := newTestStore(t)

	id, err := st.SaveSnapshot("https://example.com/data.csv", sampleRecords(), 3)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id <= 0 {
		t.Fatalf("snapshot id = %d", id)
	}

	snap, records, err := st.LatestSnapshot()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Source != "https://example.com/data.csv" || snap.RecordCount != 3 {
		t.Fatalf("unexpected snapshot meta: %+v", snap)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
}

func TestSaveSnapshot_PruneKeepsNewest(t *testing.T) {
	st := newTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := st.SaveSnapshot("src", sampleRecords(), 2); err != nil {
			t.Fatalf("save #%d: %v", i, err)
		}
	}

	n, err := st.CountSnapshots()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("snapshots = %d, want 2", n)
	}
}

func TestLatestSnapshot_EmptyStore(t *testing.T) {
	st := newTestStore(t)

	if _, _, err := st.LatestSnapshot(); err == nil {
		t.Fatalf("expected error for empty snapshot store")
	}
}

func TestSaveSnapshot_RejectsEmpty(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.SaveSnapshot("src", nil, 3); err == nil {
		t.Fatalf("expected error for empty dataset")
	}
}
