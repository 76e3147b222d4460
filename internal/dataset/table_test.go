package dataset

import (
	"reflect"
	"testing"

	"github.com/crebi6/passport2/internal/model"
)

func TestNew_OriginsSortedAndIndexed(t *testing.T) {
	table := New([]model.Record{
		{Origin: "Kenya", Destination: "Uganda", Requirement: model.RequirementVisaFree},
		{Origin: "Albania", Destination: "Italy", Requirement: model.RequirementVisaRequired},
		{Origin: "Kenya", Destination: "China", Requirement: model.RequirementVisaRequired},
		{Origin: "Zimbabwe", Destination: "Zambia", Requirement: model.RequirementVisaFree},
	}, "test")

	if table.Len() != 4 {
		t.Fatalf("len = %d, want 4", table.Len())
	}

	want := []string{"Albania", "Kenya", "Zimbabwe"}
	if !reflect.DeepEqual(table.Origins(), want) {
		t.Fatalf("origins = %v, want %v", table.Origins(), want)
	}

	if got := table.ByOrigin("Kenya"); len(got) != 2 {
		t.Fatalf("ByOrigin(Kenya) = %d rows, want 2", len(got))
	}
	if !table.HasOrigin("Kenya") || table.HasOrigin("Nowhereland") {
		t.Fatalf("HasOrigin mismatch")
	}
	if got := table.ByOrigin("Nowhereland"); len(got) != 0 {
		t.Fatalf("unknown origin must yield no rows, got %d", len(got))
	}
}

func TestCategories_DistinctSorted(t *testing.T) {
	table := New([]model.Record{
		{Origin: "A", Destination: "B", Requirement: "special_permit"},
		{Origin: "A", Destination: "C", Requirement: model.RequirementVisaFree},
		{Origin: "A", Destination: "D", Requirement: model.RequirementVisaFree},
	}, "test")

	want := []model.RequirementCategory{"special_permit", model.RequirementVisaFree}
	if !reflect.DeepEqual(table.Categories(), want) {
		t.Fatalf("categories = %v, want %v", table.Categories(), want)
	}
}

func TestOrigins_CopyIsIndependent(t *testing.T) {
	table := New([]model.Record{
		{Origin: "Kenya", Destination: "Uganda", Requirement: model.RequirementVisaFree},
	}, "test")

	origins := table.Origins()
	origins[0] = "mutated"

	if table.Origins()[0] != "Kenya" {
		t.Fatalf("mutating the returned slice must not affect the table")
	}
}
