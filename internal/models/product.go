package models

import "time"

// Product - Maliyeti hesaplanan ürün. Kanal fiyatlandırması ChannelPricing
// tablosunda, malzeme ve işçilik kalemleri kendi tablolarında tutulur.
type Product struct {
	ID                     uint `gorm:"primaryKey"`
	UserID                 uint `gorm:"index;not null;uniqueIndex:uq_user_product_name"`
	User                   User
	Name                   string  `gorm:"size:100;not null;uniqueIndex:uq_user_product_name"`
	BatchSizeItems         int     `gorm:"not null;default:100"`
	MonthlyProductionItems int     `gorm:"not null;default:1000"`
	BufferPct              float64 `gorm:"not null;default:0"` // hedef fiyat tamponu, oran olarak (0.10 = %10)
	PackagingLabelCost     float64 `gorm:"not null;default:0"` // etiket maliyeti / adet
	PackagingMaterialCost  float64 `gorm:"not null;default:0"` // diğer ambalaj maliyeti / adet

	// Genel gider dağıtım girdileri. Havuz payları tüm ürünlerin tahsis
	// hacimleri toplanarak hesaplanır.
	SalaryAllocEmployeeID   *uint     `gorm:"index"` // maaşı bu ürüne dağıtılan çalışan (opsiyonel)
	SalaryAllocEmployee     *Employee `gorm:"foreignKey:SalaryAllocEmployeeID"`
	SalaryAllocItemsMonth   int       `gorm:"not null;default:0"` // maaş dağıtımı için aylık adet
	RentUtilAllocItemsMonth int       `gorm:"not null;default:0"` // kira/fatura dağıtımı için aylık adet

	WholesaleDistributionPct float64 `gorm:"not null;default:0"` // toptan satış oranı (0.60 = %60), perakende = 1 - bu değer

	CreatedAt time.Time
	UpdatedAt time.Time

	Materials []ProductMaterial        `gorm:"constraint:OnDelete:CASCADE"`
	Labor     []ProductLaborAssignment `gorm:"constraint:OnDelete:CASCADE"`
	Pricing   []ChannelPricing         `gorm:"constraint:OnDelete:CASCADE"`
}

// ProductMaterial - Ürünün reçetesi: adet başına kullanılan hammadde gramajı.
type ProductMaterial struct {
	ID            uint `gorm:"primaryKey"`
	ProductID     uint `gorm:"index;not null;uniqueIndex:uq_product_ingredient"`
	IngredientID  uint `gorm:"not null;uniqueIndex:uq_product_ingredient"`
	Ingredient    Ingredient
	QuantityGrams float64 `gorm:"not null"` // adet başına gram
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductLaborAssignment - Ürün üzerindeki bir iş adımının kim tarafından,
// kaç dakikada, kaç adetlik parti için yapıldığı.
// Adet başı maliyet = (dakika/60 × saatlik ücret) / parti adedi.
type ProductLaborAssignment struct {
	ID            uint `gorm:"primaryKey"`
	ProductID     uint `gorm:"index;not null"`
	TaskID        uint `gorm:"not null"`
	Task          Task
	EmployeeID    uint `gorm:"not null"`
	Employee      Employee
	TimeMinutes   float64 `gorm:"not null"`
	ItemsPerBatch int     `gorm:"not null;default:1"` // bu sürede işlenen adet
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
