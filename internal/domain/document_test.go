package domain

import "testing"

func TestBilingualText_Variants(t *testing.T) {
	tests := []struct {
		name string
		text BilingualText
		want []string
	}{
		{"both", NewBilingualText("Helicopter Landing", "Þyrlulending"), []string{"Helicopter Landing", "Þyrlulending"}},
		{"plain", NewPlainText("Sound Sculpture"), []string{"Sound Sculpture"}},
		{"identical", NewBilingualText("Hljóð", "Hljóð"), []string{"Hljóð"}},
		{"icelandic only", NewBilingualText("", "Þyrlulending"), []string{"Þyrlulending"}},
		{"empty", BilingualText{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.text.Variants()
			if len(got) != len(tt.want) {
				t.Fatalf("Variants() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Variants()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBilingualText_Localized(t *testing.T) {
	b := NewBilingualText("Works", "Verk")
	if got := b.Localized("is"); got != "Verk" {
		t.Errorf("Localized(is) = %q, want Verk", got)
	}
	if got := b.Localized("en"); got != "Works" {
		t.Errorf("Localized(en) = %q, want Works", got)
	}

	// Missing Icelandic variant falls back to English.
	plain := NewPlainText("Biography")
	if got := plain.Localized("is"); got != "Biography" {
		t.Errorf("Localized(is) fallback = %q, want Biography", got)
	}
}

func TestNewDocument_RequiresURL(t *testing.T) {
	_, err := NewDocument(NewPlainText("x"), "", BilingualText{}, TypeWork, 0, "", "")
	if err == nil {
		t.Fatal("expected error for missing URL")
	}

	doc, err := NewDocument(NewPlainText("x"), "body", BilingualText{}, TypeWork, 1973, "/w1", "works")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.HasYear() || doc.Year() != 1973 {
		t.Errorf("Year() = %d, want 1973", doc.Year())
	}
}

func TestType_Label(t *testing.T) {
	if l, ok := TypeGroupExhibition.Label("en"); !ok || l != "Group Exhibitions" {
		t.Errorf("Label(en) = %q, %v", l, ok)
	}
	if l, ok := TypeWork.Label("is"); !ok || l != "Verk" {
		t.Errorf("Label(is) = %q, %v", l, ok)
	}
	if _, ok := Type("films").Label("en"); ok {
		t.Error("unknown type should report ok=false")
	}
}

func TestPageLabel(t *testing.T) {
	if got := PageLabel("studios"); got != "Studios" {
		t.Errorf("PageLabel(studios) = %q", got)
	}
	if got := PageLabel(""); got != "" {
		t.Errorf("PageLabel(empty) = %q", got)
	}
}

func TestType_Predicates(t *testing.T) {
	if !TypeSoloExhibition.IsExhibition() || TypeWork.IsExhibition() {
		t.Error("IsExhibition misclassified")
	}
	if !TypeCollectionWork.IsCollection() || TypeReview.IsCollection() {
		t.Error("IsCollection misclassified")
	}
}
