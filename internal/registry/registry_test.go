package registry

import (
	"testing"

	"github.com/crebi6/passport2/internal/model"
)

func TestNew_FixedAndObservedCategories(t *testing.T) {
	r := New([]model.RequirementCategory{
		model.RequirementVisaFree,
		model.RequirementVisaRequired,
		"special_permit",
		"no_admission",
	})

	if got := r.Color(model.RequirementVisaFree); got != "#2ca25f" {
		t.Fatalf("visa_free color = %q", got)
	}
	if got := r.Color(model.RequirementVisaRequired); got != "#d73027" {
		t.Fatalf("visa_required color = %q", got)
	}
	// 非固定类别统一默认灰，且各类别取值一致
	if r.Color("special_permit") != DefaultColor || r.Color("no_admission") != DefaultColor {
		t.Fatalf("observed unknown categories must share the default color")
	}
}

func TestColor_TotalMapping(t *testing.T) {
	observed := []model.RequirementCategory{
		model.RequirementVisaFree,
		model.RequirementVisaOnArrival,
		model.RequirementElectronicVisa,
		model.RequirementVisaRequired,
		"Electronic_Visa_Type",
	}
	r := New(observed)

	for _, cat := range observed {
		if r.Color(cat) == "" {
			t.Fatalf("category %q has no color", cat)
		}
	}
	// 从未观测过的类别也要有颜色兜底
	if r.Color("future_category") != DefaultColor {
		t.Fatalf("unobserved category must fall back to default color")
	}
}

func TestColors_CopyIsIndependent(t *testing.T) {
	r := New([]model.RequirementCategory{"special_permit"})

	colors := r.Colors()
	colors["special_permit"] = "#000000"

	if r.Color("special_permit") != DefaultColor {
		t.Fatalf("mutating the returned map must not affect the registry")
	}
}
