package rubric

import "testing"

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in catalog must validate: %v", err)
	}
}

func TestNameFallbacks(t *testing.T) {
	cat := Default()

	if got := cat.Name("vision", LocaleEN); got != "Vision & Strategic Thinking" {
		t.Errorf("english name: got %q", got)
	}
	if got := cat.Name("vision", LocaleAR); got == "" || got == "Vision & Strategic Thinking" {
		t.Errorf("arabic name should differ from english: got %q", got)
	}

	// Unknown keys fall back to the raw key.
	if got := cat.Name("telepathy", LocaleEN); got != "telepathy" {
		t.Errorf("unknown key: want raw key back, got %q", got)
	}
	if got := cat.Description("telepathy", LocaleAR); got != "" {
		t.Errorf("unknown key description: want empty, got %q", got)
	}
}

func TestActions(t *testing.T) {
	cat := Default()

	for _, id := range AllCompetencies() {
		en := cat.Actions(string(id), LocaleEN)
		ar := cat.Actions(string(id), LocaleAR)
		if len(en) == 0 || len(ar) == 0 {
			t.Errorf("%s: expected actions in both locales, got en=%d ar=%d", id, len(en), len(ar))
		}
	}

	// Unknown keys get the default template.
	def := cat.Actions("telepathy", LocaleEN)
	if len(def) == 0 {
		t.Fatal("unknown key should get the default template")
	}
}

func TestActionsReturnsCopy(t *testing.T) {
	cat := Default()

	actions := cat.Actions("vision", LocaleEN)
	actions[0] = "mutated"

	if cat.Actions("vision", LocaleEN)[0] == "mutated" {
		t.Fatal("Actions must return a defensive copy")
	}
}

func TestScaleLabels(t *testing.T) {
	cat := Default()

	en := cat.ScaleLabels(LocaleEN)
	ar := cat.ScaleLabels(LocaleAR)
	if len(en) != 5 || len(ar) != 5 {
		t.Fatalf("expected 5 labels per locale, got en=%d ar=%d", len(en), len(ar))
	}
	for i := range en {
		if en[i] == "" || ar[i] == "" {
			t.Errorf("label %d empty in one locale", i+1)
		}
	}
}

func TestValidateCatchesGaps(t *testing.T) {
	// Empty catalog has no default template.
	empty := &Catalog{}
	if err := empty.Validate(); err == nil {
		t.Error("empty catalog should fail validation")
	}

	// A default template alone is not enough.
	partial := &Catalog{defaultTemplate: Template{EN: []string{"x"}, AR: []string{"y"}}}
	if err := partial.Validate(); err == nil {
		t.Error("catalog without entries should fail validation")
	}
}
