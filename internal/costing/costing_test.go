package costing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCompute_MaterialCost(t *testing.T) {
	// 10 EUR / 5 kg = 2 EUR/kg; 50 g kullanım = 0.10 EUR/adet
	in := Input{
		Materials: []MaterialLine{
			{Ingredient: "Un", QuantityGrams: 50, PricePerUnit: 10, UnitQuantityKg: 5},
		},
	}

	r := Compute(in)

	nearlyEqual(t, "Materials[0].CostPerKg", r.Materials[0].CostPerKg, 2)
	nearlyEqual(t, "Materials[0].Cost", r.Materials[0].Cost, 0.10)
	nearlyEqual(t, "TotalMaterialCost", r.TotalMaterialCost, 0.10)
	nearlyEqual(t, "TotalProductionCost", r.TotalProductionCost, 0.10)
}

func TestCompute_MaterialCost_ZeroUnitQuantityGuard(t *testing.T) {
	// Birim miktarı 0 olan kayıt giriş katmanında reddedilir; hesap yine de
	// NaN üretmek yerine satırı 0 olarak değerlendirir
	in := Input{
		Materials: []MaterialLine{
			{Ingredient: "Bozuk", QuantityGrams: 100, PricePerUnit: 10, UnitQuantityKg: 0},
		},
	}

	r := Compute(in)

	nearlyEqual(t, "Materials[0].Cost", r.Materials[0].Cost, 0)
	nearlyEqual(t, "TotalMaterialCost", r.TotalMaterialCost, 0)
}

func TestCompute_LaborCost(t *testing.T) {
	// 60 dk × 12 EUR/saat, 100 adetlik parti = 0.12 EUR/adet
	in := Input{
		Labor: []LaborLine{
			{Task: "Paketleme", Type: TaskProduction, Employee: "Ayşe", HourlyRate: 12, TimeMinutes: 60, ItemsPerBatch: 100},
		},
	}

	r := Compute(in)

	nearlyEqual(t, "TotalProductionLaborCost", r.TotalProductionLaborCost, 0.12)
	nearlyEqual(t, "TotalShippingLaborCost", r.TotalShippingLaborCost, 0)
}

func TestCompute_LaborSplitByTaskType(t *testing.T) {
	in := Input{
		Labor: []LaborLine{
			{Task: "Üretim", Type: TaskProduction, Employee: "Ayşe", HourlyRate: 12, TimeMinutes: 60, ItemsPerBatch: 100},
			{Task: "Kargo hazırlık", Type: TaskShipping, Employee: "Mehmet", HourlyRate: 15, TimeMinutes: 30, ItemsPerBatch: 50},
		},
	}

	r := Compute(in)

	if len(r.ProductionLabor) != 1 || len(r.ShippingLabor) != 1 {
		t.Fatalf("labor split: production=%d shipping=%d, want 1/1", len(r.ProductionLabor), len(r.ShippingLabor))
	}
	nearlyEqual(t, "TotalProductionLaborCost", r.TotalProductionLaborCost, 0.12)
	nearlyEqual(t, "TotalShippingLaborCost", r.TotalShippingLaborCost, 0.15)
	nearlyEqual(t, "DirectCOGS", r.DirectCOGS, 0.27)
}

func TestCompute_LaborZeroBatchTreatedAsOne(t *testing.T) {
	in := Input{
		Labor: []LaborLine{
			{Task: "Tek adet", Type: TaskProduction, HourlyRate: 12, TimeMinutes: 60, ItemsPerBatch: 0},
		},
	}

	r := Compute(in)

	nearlyEqual(t, "TotalProductionLaborCost", r.TotalProductionLaborCost, 12)
}

func TestCompute_EmptyProductIsZero(t *testing.T) {
	r := Compute(Input{ProductName: "Boş"})

	nearlyEqual(t, "TotalProductionCost", r.TotalProductionCost, 0)
	nearlyEqual(t, "TargetPrice", r.TargetPrice, 0)
	nearlyEqual(t, "DirectCOGS", r.DirectCOGS, 0)
	nearlyEqual(t, "BlendedProfit", r.BlendedProfit, 0)
}

func TestCompute_Packaging(t *testing.T) {
	in := Input{PackagingLabelCost: 0.05, PackagingMaterialCost: 0.10}

	r := Compute(in)

	nearlyEqual(t, "TotalPackagingCost", r.TotalPackagingCost, 0.15)
	nearlyEqual(t, "DirectCOGS", r.DirectCOGS, 0.15)
}

func TestCompute_TargetPriceWithBuffer(t *testing.T) {
	in := Input{PackagingLabelCost: 1.00, BufferPct: 0.10}

	r := Compute(in)

	nearlyEqual(t, "TargetPrice", r.TargetPrice, 1.10)

	in.BufferPct = 0
	r = Compute(in)
	nearlyEqual(t, "TargetPrice (buffer=0)", r.TargetPrice, r.TotalProductionCost)
}

func TestCompute_OverheadAllocation_SharedPool(t *testing.T) {
	// Kira+fatura 1500, havuz toplamı 3000 adet/ay => 0.50/adet
	in := Input{
		Overhead: OverheadShare{
			MonthlyRent:      1000,
			MonthlyUtilities: 500,
			AllocItems:       1000,
			PoolTotalItems:   3000,
		},
	}

	r := Compute(in)

	nearlyEqual(t, "AllocatedRentUtilitiesCost", r.AllocatedRentUtilitiesCost, 0.5)
	nearlyEqual(t, "TotalAllocatedOverheads", r.TotalAllocatedOverheads, 0.5)
	nearlyEqual(t, "TotalProductionCost", r.TotalProductionCost, 0.5)
}

func TestCompute_OverheadAllocation_ZeroPoolIsZero(t *testing.T) {
	in := Input{
		Overhead: OverheadShare{MonthlyRent: 1000, MonthlyUtilities: 500, AllocItems: 0, PoolTotalItems: 0},
	}

	r := Compute(in)

	nearlyEqual(t, "AllocatedRentUtilitiesCost", r.AllocatedRentUtilitiesCost, 0)

	// Ürün havuza katılmıyorsa (AllocItems = 0) havuz dolu olsa bile pay almaz
	in.Overhead.PoolTotalItems = 2000
	r = Compute(in)
	nearlyEqual(t, "AllocatedRentUtilitiesCost (katılmayan ürün)", r.AllocatedRentUtilitiesCost, 0)
}

func TestCompute_SalaryAllocation(t *testing.T) {
	// 2000 EUR maaş, çalışanın ürünlerine toplam 4000 adet/ay tahsis => 0.50/adet
	in := Input{
		Salary: &SalaryShare{Employee: "Ali", MonthlyAmount: 2000, AllocItems: 1000, PoolTotalItems: 4000},
	}

	r := Compute(in)

	nearlyEqual(t, "AllocatedSalaryCost", r.AllocatedSalaryCost, 0.5)
}

func TestCompute_SalaryAllocation_NilIsZero(t *testing.T) {
	r := Compute(Input{Salary: nil})
	nearlyEqual(t, "AllocatedSalaryCost", r.AllocatedSalaryCost, 0)
}

func TestCompute_ChannelFees(t *testing.T) {
	// Perakende: fiyat 10, CC %3, platform %5, AOV 30 => sipariş başına 3 adet,
	// satıcı kargosu 5 => 1.6667/adet
	in := Input{
		Retail: ChannelTerms{
			PricePerItem:       10,
			PaymentFeePct:      0.03,
			PlatformFeePct:     0.05,
			AvgOrderValue:      30,
			ShippingCostSeller: 5,
		},
		Wholesale: ChannelTerms{
			PricePerItem:    5,
			PaymentFeePct:   0.15,
			PlatformFeePct:  0.02,
			FlatFeePerOrder: 0.25,
			AvgOrderValue:   200,
		},
	}

	r := Compute(in)

	nearlyEqual(t, "Retail.PaymentFee", r.Retail.PaymentFee, 0.30)
	nearlyEqual(t, "Retail.PlatformFee", r.Retail.PlatformFee, 0.50)
	nearlyEqual(t, "Retail.ShippingPerItem", r.Retail.ShippingPerItem, 5.0/3.0)
	nearlyEqual(t, "Retail.Profit", r.Retail.Profit, 10-0.30-0.50-5.0/3.0)

	// Toptan: sipariş başına 40 adet => sabit kesinti 0.25/40
	nearlyEqual(t, "Wholesale.PaymentFee", r.Wholesale.PaymentFee, 0.75)
	nearlyEqual(t, "Wholesale.PlatformFee", r.Wholesale.PlatformFee, 0.10)
	nearlyEqual(t, "Wholesale.FlatFeeItemShare", r.Wholesale.FlatFeeItemShare, 0.00625)
}

func TestCompute_FlatFeeProration_NoAvgOrderValue(t *testing.T) {
	// AOV girilmemişse sipariş başına 1 adet varsayılır: sabit kesinti aynen yansır
	in := Input{
		Wholesale: ChannelTerms{PricePerItem: 5, FlatFeePerOrder: 0.25},
	}

	r := Compute(in)

	nearlyEqual(t, "Wholesale.FlatFeeItemShare", r.Wholesale.FlatFeeItemShare, 0.25)
}

func TestCompute_MarginZeroWhenPriceZero(t *testing.T) {
	in := Input{
		PackagingLabelCost: 1.00,
		Retail:             ChannelTerms{PricePerItem: 0, PaymentFeePct: 0.03},
	}

	r := Compute(in)

	nearlyEqual(t, "Retail.MarginPct", r.Retail.MarginPct, 0)
	if math.IsNaN(r.Retail.MarginPct) || math.IsInf(r.Retail.MarginPct, 0) {
		t.Fatalf("Retail.MarginPct NaN/Inf olmamalı: %v", r.Retail.MarginPct)
	}
	nearlyEqual(t, "BlendedMarginPct", r.BlendedMarginPct, 0)
}

func TestCompute_BlendedProfitIsWeightedAverage(t *testing.T) {
	in := Input{
		PackagingLabelCost: 2.00,
		Retail:             ChannelTerms{PricePerItem: 10, PaymentFeePct: 0.03},
		Wholesale:          ChannelTerms{PricePerItem: 5, PaymentFeePct: 0.15},
	}

	for _, wsDist := range []float64{0, 0.25, 0.5, 0.6, 1} {
		in.WholesaleDistributionPct = wsDist
		r := Compute(in)

		want := r.Wholesale.Profit*wsDist + r.Retail.Profit*(1-wsDist)
		nearlyEqual(t, "BlendedProfit", r.BlendedProfit, want)
	}
}

func TestCompute_BlendedMarginRecomputedFromBlendedFigures(t *testing.T) {
	// Sözleşme: harman marj, kanal marjlarının ağırlıklı ortalaması değil,
	// harman kâr / harman fiyat üzerinden hesaplanır. Fiyatlar farklıyken
	// iki yöntem farklı sonuç verir; bu test seçilen yöntemi sabitler.
	in := Input{
		PackagingLabelCost:       2.00,
		WholesaleDistributionPct: 0.5,
		Retail:                   ChannelTerms{PricePerItem: 10},
		Wholesale:                ChannelTerms{PricePerItem: 4},
	}

	r := Compute(in)

	recomputed := r.BlendedProfit / r.BlendedPrice * 100
	weighted := r.Retail.MarginPct*0.5 + r.Wholesale.MarginPct*0.5

	nearlyEqual(t, "BlendedMarginPct", r.BlendedMarginPct, recomputed)
	if math.Abs(recomputed-weighted) < 1e-9 {
		t.Fatal("test kurgusu yöntemleri ayırt etmiyor, fiyatları değiştirin")
	}
}

func TestCompute_FullPipeline(t *testing.T) {
	in := Input{
		ProductName:              "Fıstık Ezmesi",
		PackagingLabelCost:       0.05,
		PackagingMaterialCost:    0.10,
		BufferPct:                0.10,
		WholesaleDistributionPct: 0.5,
		Materials: []MaterialLine{
			{Ingredient: "Fıstık", QuantityGrams: 50, PricePerUnit: 10, UnitQuantityKg: 5}, // 0.10
			{Ingredient: "Tuz", QuantityGrams: 2, PricePerUnit: 1, UnitQuantityKg: 1},      // 0.002
		},
		Labor: []LaborLine{
			{Task: "Üretim", Type: TaskProduction, HourlyRate: 12, TimeMinutes: 60, ItemsPerBatch: 100}, // 0.12
			{Task: "Kargo", Type: TaskShipping, HourlyRate: 12, TimeMinutes: 30, ItemsPerBatch: 100},    // 0.06
		},
		Overhead: OverheadShare{MonthlyRent: 1000, MonthlyUtilities: 500, AllocItems: 1000, PoolTotalItems: 3000}, // 0.50
		Salary:   &SalaryShare{Employee: "Ali", MonthlyAmount: 2000, AllocItems: 1000, PoolTotalItems: 4000},      // 0.50
		Retail:   ChannelTerms{PricePerItem: 10, PaymentFeePct: 0.03, PlatformFeePct: 0.05, AvgOrderValue: 30, ShippingCostSeller: 5},
		Wholesale: ChannelTerms{
			PricePerItem: 5, PaymentFeePct: 0.15, PlatformFeePct: 0.02, FlatFeePerOrder: 0.25, AvgOrderValue: 200,
		},
	}

	r := Compute(in)

	nearlyEqual(t, "TotalMaterialCost", r.TotalMaterialCost, 0.102)
	nearlyEqual(t, "DirectCOGS", r.DirectCOGS, 0.102+0.12+0.06+0.15)
	nearlyEqual(t, "TotalAllocatedOverheads", r.TotalAllocatedOverheads, 1.0)
	nearlyEqual(t, "TotalProductionCost", r.TotalProductionCost, 1.432)
	nearlyEqual(t, "TargetPrice", r.TargetPrice, 1.432*1.1)

	retailCost := 1.432 + 0.30 + 0.50 + 5.0/3.0
	wsCost := 1.432 + 0.75 + 0.10 + 0.00625
	nearlyEqual(t, "Retail.TotalCostPerItem", r.Retail.TotalCostPerItem, retailCost)
	nearlyEqual(t, "Wholesale.TotalCostPerItem", r.Wholesale.TotalCostPerItem, wsCost)

	nearlyEqual(t, "BlendedPrice", r.BlendedPrice, 7.5)
	nearlyEqual(t, "BlendedTotalCost", r.BlendedTotalCost, (retailCost+wsCost)/2)
	nearlyEqual(t, "BlendedProfit", r.BlendedProfit, 7.5-(retailCost+wsCost)/2)
}

func TestCompute_NeverProducesNaN(t *testing.T) {
	// Tüm paydaların 0 olduğu uç durumda raporda NaN/Inf bulunmamalı
	in := Input{
		Materials: []MaterialLine{{QuantityGrams: 10, PricePerUnit: 5, UnitQuantityKg: 0}},
		Overhead:  OverheadShare{MonthlyRent: 100, AllocItems: 10, PoolTotalItems: 0},
		Salary:    &SalaryShare{MonthlyAmount: 100, AllocItems: 10, PoolTotalItems: 0},
		Retail:    ChannelTerms{PricePerItem: 0, FlatFeePerOrder: 5, ShippingCostSeller: 3},
		Wholesale: ChannelTerms{PricePerItem: 0, FlatFeePerOrder: 5},
	}

	r := Compute(in)

	for name, v := range map[string]float64{
		"TotalProductionCost": r.TotalProductionCost,
		"TargetPrice":         r.TargetPrice,
		"Retail.MarginPct":    r.Retail.MarginPct,
		"Wholesale.MarginPct": r.Wholesale.MarginPct,
		"BlendedMarginPct":    r.BlendedMarginPct,
		"BlendedProfit":       r.BlendedProfit,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s NaN/Inf: %v", name, v)
		}
	}
}
