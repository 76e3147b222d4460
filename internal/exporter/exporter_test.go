package exporter

import (
	"testing"

	"github.com/crebi6/passport2/internal/aggregator"
	"github.com/crebi6/passport2/internal/dataset"
	"github.com/crebi6/passport2/internal/model"
	"github.com/crebi6/passport2/internal/registry"
)

func TestExport_WorkbookContents(t *testing.T) {
	table := dataset.New([]model.Record{
		{Origin: "Kenya", Destination: "Uganda", Requirement: model.RequirementVisaFree},
		{Origin: "Kenya", Destination: "Tanzania", Requirement: model.RequirementVisaFree},
		{Origin: "Kenya", Destination: "China", Requirement: model.RequirementVisaRequired},
	}, "test")
	res := aggregator.Compute(table, "Kenya")

	exp := NewExporter(registry.New(table.Categories()))
	f, err := exp.Export(res)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	title, err := f.GetCellValue("Overview", "A1")
	if err != nil {
		t.Fatalf("read title: %v", err)
	}
	if title != "Passport Power Report - Kenya" {
		t.Fatalf("title = %q", title)
	}

	total, err := f.GetCellValue("Overview", "B9")
	if err != nil {
		t.Fatalf("read total: %v", err)
	}
	if total != "3" {
		t.Fatalf("total cell = %q, want 3", total)
	}

	// visa_free 数量最多，排在 Countries 第一列，目的地按字典序
	header, err := f.GetCellValue("Countries", "A1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if header != "Visa Free (2)" {
		t.Fatalf("header = %q", header)
	}
	first, _ := f.GetCellValue("Countries", "A2")
	second, _ := f.GetCellValue("Countries", "A3")
	if first != "Tanzania" || second != "Uganda" {
		t.Fatalf("destinations = %q, %q", first, second)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[model.RequirementCategory]string{
		model.RequirementVisaFree:      "Visa Free",
		model.RequirementVisaOnArrival: "Visa On Arrival",
		"Electronic_Visa_Type":         "Electronic Visa Type",
	}
	for in, want := range cases {
		if got := displayName(in); got != want {
			t.Fatalf("displayName(%q) = %q, want %q", in, got, want)
		}
	}
}
