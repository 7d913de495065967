package report

import (
	"testing"

	"github.com/mtomase/makers-ledger/internal/costing"
)

func TestBuildWorkbook(t *testing.T) {
	r := &costing.Report{
		Product:             "Fıstık Ezmesi",
		TotalProductionCost: 2.5,
		TargetPrice:         2.75,
		BlendedProfit:       1.25,
		Materials: []costing.MaterialCost{
			{Ingredient: "Fıstık", QuantityGrams: 50, CostPerKg: 2, Cost: 0.1},
		},
	}

	f, err := BuildWorkbook(r)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(sheetName, "B1"); got != "Fıstık Ezmesi" {
		t.Fatalf("B1 = %q, want ürün adı", got)
	}
	if got, _ := f.GetCellValue(sheetName, "A3"); got != "Özet" {
		t.Fatalf("A3 = %q, want 'Özet'", got)
	}
	if got, _ := f.GetCellValue(sheetName, "B4"); got != "2.5" {
		t.Fatalf("B4 (toplam üretim maliyeti) = %q, want '2.5'", got)
	}
	if got, _ := f.GetCellValue(sheetName, "B5"); got != "2.75" {
		t.Fatalf("B5 (hedef fiyat) = %q, want '2.75'", got)
	}

	// Dosya bozulmadan yazılabilmeli
	if _, err := f.WriteToBuffer(); err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
}
