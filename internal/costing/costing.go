// Package costing ürün maliyet dökümünü hesaplar. Tamamen saf (pure) bir
// hesaptır: veritabanı erişimi yok, yan etki yok; aynı girdi her zaman aynı
// raporu üretir. Girdinin çözümlenmesi (referansların doğrulanması, havuz
// toplamları) report paketindeki loader'ın sorumluluğundadır.
package costing

type TaskType string

const (
	TaskProduction TaskType = "production"
	TaskShipping   TaskType = "shipping"
)

// MaterialLine - Reçetenin çözümlenmiş bir satırı.
type MaterialLine struct {
	Ingredient     string
	Provider       string
	QuantityGrams  float64
	PricePerUnit   float64 // satın alınan birimin fiyatı
	UnitQuantityKg float64 // satın alınan birimin kg miktarı
}

// LaborLine - Çözümlenmiş bir işçilik ataması.
type LaborLine struct {
	Task          string
	Type          TaskType
	Employee      string
	HourlyRate    float64
	TimeMinutes   float64
	ItemsPerBatch float64 // bu sürede işlenen adet; <= 0 ise 1 kabul edilir
}

// OverheadShare - Kira/fatura havuzunun bu ürüne bakan yüzü.
// PoolTotalItems tüm ürünlerin kira/fatura tahsis hacimlerinin toplamıdır;
// adet başı pay = (kira + fatura) / PoolTotalItems.
type OverheadShare struct {
	MonthlyRent      float64
	MonthlyUtilities float64
	AllocItems       float64 // bu ürünün tahsis hacmi; 0 ise ürün havuza katılmaz
	PoolTotalItems   float64
}

// SalaryShare - Maaş havuzunun bu ürüne bakan yüzü. PoolTotalItems, maaşı
// aynı çalışana bağlanan tüm ürünlerin tahsis hacimlerinin toplamıdır.
type SalaryShare struct {
	Employee       string
	MonthlyAmount  float64
	AllocItems     float64
	PoolTotalItems float64
}

// ChannelTerms - Bir satış kanalının fiyat ve kesinti parametreleri.
type ChannelTerms struct {
	PricePerItem       float64
	PaymentFeePct      float64 // oran (0.03 = %3)
	PlatformFeePct     float64
	FlatFeePerOrder    float64
	AvgOrderValue      float64
	ShippingCostSeller float64
}

// Input - Compute için tamamen çözümlenmiş ürün anlık görüntüsü.
type Input struct {
	ProductName              string
	PackagingLabelCost       float64
	PackagingMaterialCost    float64
	BufferPct                float64 // oran (0.10 = %10)
	WholesaleDistributionPct float64 // toptan ağırlığı; perakende = 1 - bu değer
	Materials                []MaterialLine
	Labor                    []LaborLine
	Overhead                 OverheadShare
	Salary                   *SalaryShare // maaş dağıtımı yoksa nil
	Retail                   ChannelTerms
	Wholesale                ChannelTerms
}

// MaterialCost - Rapordaki bir reçete satırı.
type MaterialCost struct {
	Ingredient    string  `json:"ingredient"`
	Provider      string  `json:"provider"`
	QuantityGrams float64 `json:"quantity_grams"`
	CostPerKg     float64 `json:"cost_per_kg"`
	Cost          float64 `json:"cost"`
}

// LaborCost - Rapordaki bir işçilik satırı.
type LaborCost struct {
	Task          string  `json:"task"`
	Employee      string  `json:"employee"`
	TimeMinutes   float64 `json:"time_minutes"`
	ItemsPerBatch float64 `json:"items_per_batch"`
	Cost          float64 `json:"cost"`
}

// ChannelMetrics - Bir satış kanalının adet başı sonuçları.
type ChannelMetrics struct {
	Price             float64 `json:"price"`
	PaymentFee        float64 `json:"payment_fee"`
	PlatformFee       float64 `json:"platform_fee"`
	FlatFeeItemShare  float64 `json:"flat_fee_item_share"`
	ShippingPerItem   float64 `json:"shipping_per_item"`
	TotalChannelCosts float64 `json:"total_channel_costs"`
	TotalCostPerItem  float64 `json:"total_cost_per_item"`
	Profit            float64 `json:"profit"`
	MarginPct         float64 `json:"margin_pct"`
}

// Report - Maliyet dökümünün tamamı. Tüm alanlar adet başıdır.
type Report struct {
	Product string `json:"product"`

	Materials         []MaterialCost `json:"materials"`
	TotalMaterialCost float64        `json:"total_material_cost"`

	ProductionLabor          []LaborCost `json:"production_labor"`
	TotalProductionLaborCost float64     `json:"total_production_labor_cost"`
	ShippingLabor            []LaborCost `json:"shipping_labor"`
	TotalShippingLaborCost   float64     `json:"total_shipping_labor_cost"`

	PackagingLabelCost    float64 `json:"packaging_label_cost"`
	PackagingMaterialCost float64 `json:"packaging_material_cost"`
	TotalPackagingCost    float64 `json:"total_packaging_cost"`

	DirectCOGS float64 `json:"direct_cogs"`

	AllocatedSalaryCost        float64 `json:"allocated_salary_cost"`
	AllocatedRentUtilitiesCost float64 `json:"allocated_rent_utilities_cost"`
	TotalAllocatedOverheads    float64 `json:"total_allocated_overheads"`

	TotalProductionCost float64 `json:"total_production_cost"`
	TargetPrice         float64 `json:"target_price"` // tampon dahil hedef fiyat

	Retail    ChannelMetrics `json:"retail"`
	Wholesale ChannelMetrics `json:"wholesale"`

	BlendedPrice     float64 `json:"blended_price"`
	BlendedTotalCost float64 `json:"blended_total_cost"`
	BlendedProfit    float64 `json:"blended_profit"`
	BlendedMarginPct float64 `json:"blended_margin_pct"`
}

// safeDiv - payda <= 0 ise 0 döner. Rapora asla NaN/Inf sızmaz.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// channelMetrics bir kanalın adet başı sonuçlarını hesaplar.
// Sipariş başı sabit kesinti ve satıcı kargosu, ortalama sipariş tutarından
// türetilen sipariş başına adet sayısına bölünerek adet başına dağıtılır:
// adet/sipariş = ortalama sipariş tutarı / adet fiyatı (ikisi de > 0 ise, değilse 1).
func channelMetrics(t ChannelTerms, productionCost float64) ChannelMetrics {
	itemsPerOrder := 1.0
	if t.AvgOrderValue > 0 && t.PricePerItem > 0 {
		itemsPerOrder = t.AvgOrderValue / t.PricePerItem
	}

	paymentFee := t.PricePerItem * t.PaymentFeePct
	platformFee := t.PricePerItem * t.PlatformFeePct
	flatFeeShare := t.FlatFeePerOrder / itemsPerOrder
	shippingPerItem := t.ShippingCostSeller / itemsPerOrder

	totalChannelCosts := paymentFee + platformFee + flatFeeShare + shippingPerItem
	totalCost := productionCost + totalChannelCosts
	profit := t.PricePerItem - totalCost

	return ChannelMetrics{
		Price:             t.PricePerItem,
		PaymentFee:        paymentFee,
		PlatformFee:       platformFee,
		FlatFeeItemShare:  flatFeeShare,
		ShippingPerItem:   shippingPerItem,
		TotalChannelCosts: totalChannelCosts,
		TotalCostPerItem:  totalCost,
		Profit:            profit,
		MarginPct:         safeDiv(profit, t.PricePerItem) * 100,
	}
}

// Compute girdiden maliyet dökümünü üretir.
func Compute(in Input) Report {
	r := Report{Product: in.ProductName}

	// Malzeme maliyeti: gram/1000 × kg başı fiyat
	r.Materials = make([]MaterialCost, 0, len(in.Materials))
	for _, m := range in.Materials {
		costPerKg := safeDiv(m.PricePerUnit, m.UnitQuantityKg)
		cost := m.QuantityGrams / 1000.0 * costPerKg
		r.Materials = append(r.Materials, MaterialCost{
			Ingredient:    m.Ingredient,
			Provider:      m.Provider,
			QuantityGrams: m.QuantityGrams,
			CostPerKg:     costPerKg,
			Cost:          cost,
		})
		r.TotalMaterialCost += cost
	}

	// İşçilik: (dakika/60 × saatlik ücret) / parti adedi, üretim ve kargo ayrı
	r.ProductionLabor = make([]LaborCost, 0)
	r.ShippingLabor = make([]LaborCost, 0)
	for _, l := range in.Labor {
		items := l.ItemsPerBatch
		if items <= 0 {
			items = 1
		}
		cost := l.TimeMinutes / 60.0 * l.HourlyRate / items
		line := LaborCost{
			Task:          l.Task,
			Employee:      l.Employee,
			TimeMinutes:   l.TimeMinutes,
			ItemsPerBatch: items,
			Cost:          cost,
		}
		if l.Type == TaskShipping {
			r.ShippingLabor = append(r.ShippingLabor, line)
			r.TotalShippingLaborCost += cost
		} else {
			r.ProductionLabor = append(r.ProductionLabor, line)
			r.TotalProductionLaborCost += cost
		}
	}

	// Ambalaj
	r.PackagingLabelCost = in.PackagingLabelCost
	r.PackagingMaterialCost = in.PackagingMaterialCost
	r.TotalPackagingCost = in.PackagingLabelCost + in.PackagingMaterialCost

	r.DirectCOGS = r.TotalMaterialCost + r.TotalProductionLaborCost + r.TotalShippingLaborCost + r.TotalPackagingCost

	// Genel gider dağıtımı: havuza katılan ürünler hacimleriyle orantılı pay
	// alır; adet başı pay havuz toplamına bölünerek bulunur. Havuz toplamı 0
	// ise pay 0'dır.
	if in.Overhead.AllocItems > 0 {
		pool := in.Overhead.MonthlyRent + in.Overhead.MonthlyUtilities
		r.AllocatedRentUtilitiesCost = safeDiv(pool, in.Overhead.PoolTotalItems)
	}
	if in.Salary != nil && in.Salary.AllocItems > 0 {
		r.AllocatedSalaryCost = safeDiv(in.Salary.MonthlyAmount, in.Salary.PoolTotalItems)
	}
	r.TotalAllocatedOverheads = r.AllocatedSalaryCost + r.AllocatedRentUtilitiesCost

	r.TotalProductionCost = r.DirectCOGS + r.TotalAllocatedOverheads
	r.TargetPrice = r.TotalProductionCost * (1 + in.BufferPct)

	// Kanal sonuçları
	r.Retail = channelMetrics(in.Retail, r.TotalProductionCost)
	r.Wholesale = channelMetrics(in.Wholesale, r.TotalProductionCost)

	// Dağıtım karmasıyla ağırlıklı ortalamalar. Kâr, fiyat ve maliyetin
	// farkından hesaplanır (kanal kârlarının ağırlıklı ortalamasına eşittir);
	// marj ise kanal marjlarının ortalaması değil, harman fiyat/maliyet
	// üzerinden yeniden hesaplanır.
	wsDist := in.WholesaleDistributionPct
	rtDist := 1 - wsDist
	r.BlendedPrice = r.Retail.Price*rtDist + r.Wholesale.Price*wsDist
	r.BlendedTotalCost = r.Retail.TotalCostPerItem*rtDist + r.Wholesale.TotalCostPerItem*wsDist
	r.BlendedProfit = r.BlendedPrice - r.BlendedTotalCost
	r.BlendedMarginPct = safeDiv(r.BlendedProfit, r.BlendedPrice) * 100

	return r
}
