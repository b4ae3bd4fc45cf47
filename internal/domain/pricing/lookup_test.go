package pricing

import (
	"testing"

	"github.com/yonubear/New-printshop/internal/domain/entities"
)

func TestFindPaper_ExactMatch(t *testing.T) {
	cat := testCatalog()

	paper, ok := cat.FindPaper(entities.PaperSelection{
		Size: "Letter", Category: "Bond", Weight: "20#", Color: "White",
	})
	if !ok {
		t.Fatal("FindPaper() missed an exact match")
	}
	if paper.ID != "p1" {
		t.Fatalf("FindPaper() = %s, want p1", paper.ID)
	}
}

func TestFindPaper_EmptyColorMatchesAny(t *testing.T) {
	cat := testCatalog()

	paper, ok := cat.FindPaper(entities.PaperSelection{
		Size: "Letter", Category: "Bond", Weight: "20#",
	})
	if !ok || paper.ID != "p1" {
		t.Fatalf("FindPaper() = %v/%v, want p1", paper.ID, ok)
	}
}

func TestFindPaper_RelaxesColorThenWeight(t *testing.T) {
	cat := testCatalog()

	paper, ok := cat.FindPaper(entities.PaperSelection{
		Size: "Letter", Category: "Bond", Weight: "20#", Color: "Ivory",
	})
	if !ok || paper.ID != "p1" {
		t.Fatalf("FindPaper(wrong color) = %v/%v, want p1", paper.ID, ok)
	}

	paper, ok = cat.FindPaper(entities.PaperSelection{
		Size: "Letter", Category: "Bond", Weight: "24#",
	})
	if !ok || paper.ID != "p1" {
		t.Fatalf("FindPaper(wrong weight) = %v/%v, want p1", paper.ID, ok)
	}
}

func TestFindPaper_Miss(t *testing.T) {
	cat := testCatalog()

	if _, ok := cat.FindPaper(entities.PaperSelection{Size: "A4", Category: "Bond"}); ok {
		t.Fatal("FindPaper() matched a size not in the catalog")
	}
}

func TestFindPrintPricing_CategoryThenColor(t *testing.T) {
	cat := testCatalog()

	pr, ok := cat.FindPrintPricing(entities.ColorTypeBW, "Text")
	if !ok || pr.ID != "pp2" {
		t.Fatalf("FindPrintPricing(BW, Text) = %v/%v, want pp2", pr.ID, ok)
	}

	pr, ok = cat.FindPrintPricing(entities.ColorTypeColor, "Bond")
	if !ok || pr.ID != "pp3" {
		t.Fatalf("FindPrintPricing(Color, Bond) = %v/%v, want pp3 by color alone", pr.ID, ok)
	}
}

func TestFindPrintPricing_FallsBackToFirstRecord(t *testing.T) {
	cat := Catalog{Pricing: []entities.PrintPricing{
		{ID: "only", ColorType: entities.ColorTypeBW, PaperCategory: "Bond"},
	}}

	pr, ok := cat.FindPrintPricing(entities.ColorTypeColor, "Gloss")
	if !ok || pr.ID != "only" {
		t.Fatalf("FindPrintPricing() = %v/%v, want the only record", pr.ID, ok)
	}
}

func TestFindPrintPricing_EmptyCatalogMisses(t *testing.T) {
	if _, ok := (Catalog{}).FindPrintPricing(entities.ColorTypeBW, "Bond"); ok {
		t.Fatal("FindPrintPricing() matched against an empty catalog")
	}
}

func TestSelectFinishing_ByIDAndName(t *testing.T) {
	cat := testCatalog()

	opts := cat.SelectFinishing([]string{"f1", "Lamination", "gold-foil"})
	if len(opts) != 2 {
		t.Fatalf("SelectFinishing() returned %d options, want 2", len(opts))
	}
	if opts[0].ID != "f1" || opts[1].ID != "f2" {
		t.Fatalf("SelectFinishing() = %s, %s; want f1, f2", opts[0].ID, opts[1].ID)
	}
}
