package report

import (
	"fmt"

	"github.com/mtomase/makers-ledger/internal/costing"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Maliyet Dökümü"

// BuildWorkbook raporu tek sayfalık bir Excel çalışma kitabına yazar.
func BuildWorkbook(r *costing.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, err
	}

	row := 1
	set := func(col string, v interface{}) {
		cell := fmt.Sprintf("%s%d", col, row)
		// hücre adresi sabit formatta üretiliyor, hata beklenmez
		_ = f.SetCellValue(sheetName, cell, v)
	}
	writeRow := func(label string, value float64) {
		set("A", label)
		set("B", value)
		row++
	}
	writeHeader := func(title string) {
		set("A", title)
		row++
	}

	set("A", "Ürün")
	set("B", r.Product)
	row += 2

	writeHeader("Özet")
	writeRow("Toplam Üretim Maliyeti / Adet", r.TotalProductionCost)
	writeRow("Hedef Fiyat (Tampon Dahil)", r.TargetPrice)
	writeRow("Harman Ortalama Kâr / Adet", r.BlendedProfit)
	row++

	writeHeader("Doğrudan Maliyetler (COGS)")
	writeRow("Toplam Malzeme Maliyeti", r.TotalMaterialCost)
	for _, m := range r.Materials {
		set("A", "  "+m.Ingredient)
		set("B", m.Cost)
		set("C", fmt.Sprintf("%.1f g × %.4f/kg", m.QuantityGrams, m.CostPerKg))
		row++
	}
	writeRow("Toplam Üretim İşçiliği", r.TotalProductionLaborCost)
	for _, l := range r.ProductionLabor {
		set("A", "  "+l.Task+" ("+l.Employee+")")
		set("B", l.Cost)
		row++
	}
	writeRow("Toplam Kargo İşçiliği", r.TotalShippingLaborCost)
	for _, l := range r.ShippingLabor {
		set("A", "  "+l.Task+" ("+l.Employee+")")
		set("B", l.Cost)
		row++
	}
	writeRow("Etiket Maliyeti", r.PackagingLabelCost)
	writeRow("Diğer Ambalaj Maliyeti", r.PackagingMaterialCost)
	writeRow("COGS Ara Toplam", r.DirectCOGS)
	row++

	writeHeader("Dağıtılan Genel Giderler")
	writeRow("Maaş Payı / Adet", r.AllocatedSalaryCost)
	writeRow("Kira + Fatura Payı / Adet", r.AllocatedRentUtilitiesCost)
	writeRow("Genel Gider Ara Toplam", r.TotalAllocatedOverheads)
	row++

	writeChannel := func(title string, m costing.ChannelMetrics) {
		writeHeader(title)
		writeRow("Fiyat", m.Price)
		writeRow("Ödeme/Komisyon Kesintisi", m.PaymentFee)
		writeRow("Platform/İşlem Kesintisi", m.PlatformFee)
		writeRow("Sabit Kesinti Payı", m.FlatFeeItemShare)
		writeRow("Kargo Payı", m.ShippingPerItem)
		writeRow("Toplam Kanal Kesintisi", m.TotalChannelCosts)
		writeRow("Toplam Maliyet / Adet", m.TotalCostPerItem)
		writeRow("Kâr / Adet", m.Profit)
		writeRow("Marj %", m.MarginPct)
		row++
	}
	writeChannel("Perakende Kanalı", r.Retail)
	writeChannel("Toptan Kanalı", r.Wholesale)

	writeHeader("Harman (Dağıtım Ağırlıklı)")
	writeRow("Ortalama Satış Fiyatı", r.BlendedPrice)
	writeRow("Ortalama Toplam Maliyet", r.BlendedTotalCost)
	writeRow("Ortalama Kâr", r.BlendedProfit)
	writeRow("Ortalama Marj %", r.BlendedMarginPct)

	return f, nil
}
