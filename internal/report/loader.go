package report

import (
	"errors"
	"fmt"

	"github.com/mtomase/makers-ledger/internal/costing"
	"github.com/mtomase/makers-ledger/internal/models"

	"gorm.io/gorm"
)

// ErrDataIntegrity - bir atamanın referans verdiği kayıt (hammadde, çalışan,
// iş adımı) çözülemediğinde döner. Bu durumda maliyet satırı sessizce
// atlanmaz, ürünün hesabı tamamen iptal edilir.
var ErrDataIntegrity = errors.New("veri bütünlüğü hatası")

// BuildInput ürünü ve ilişkili kayıtları yükleyip costing.Input'a çözümler.
// Havuz toplamları (kira/fatura ve maaş dağıtım hacimleri) kullanıcının tüm
// ürünleri üzerinden hesaplanır.
func BuildInput(db *gorm.DB, userID, productID uint) (costing.Input, error) {
	var in costing.Input

	var p models.Product
	if err := db.
		Preload("Materials.Ingredient").
		Preload("Labor.Task").
		Preload("Labor.Employee").
		Preload("SalaryAllocEmployee").
		First(&p, "id = ? AND user_id = ?", productID, userID).Error; err != nil {
		return in, err
	}

	in.ProductName = p.Name
	in.PackagingLabelCost = p.PackagingLabelCost
	in.PackagingMaterialCost = p.PackagingMaterialCost
	in.BufferPct = p.BufferPct
	in.WholesaleDistributionPct = p.WholesaleDistributionPct

	in.Materials = make([]costing.MaterialLine, 0, len(p.Materials))
	for _, m := range p.Materials {
		if m.Ingredient.ID == 0 {
			return in, fmt.Errorf("%w: reçete satırı %d çözülemeyen hammaddeye (%d) işaret ediyor", ErrDataIntegrity, m.ID, m.IngredientID)
		}
		in.Materials = append(in.Materials, costing.MaterialLine{
			Ingredient:     m.Ingredient.Name,
			Provider:       m.Ingredient.Provider,
			QuantityGrams:  m.QuantityGrams,
			PricePerUnit:   m.Ingredient.PricePerUnit,
			UnitQuantityKg: m.Ingredient.UnitQuantityKg,
		})
	}

	in.Labor = make([]costing.LaborLine, 0, len(p.Labor))
	for _, a := range p.Labor {
		if a.Task.ID == 0 {
			return in, fmt.Errorf("%w: işçilik ataması %d çözülemeyen iş adımına (%d) işaret ediyor", ErrDataIntegrity, a.ID, a.TaskID)
		}
		if a.Employee.ID == 0 {
			return in, fmt.Errorf("%w: işçilik ataması %d çözülemeyen çalışana (%d) işaret ediyor", ErrDataIntegrity, a.ID, a.EmployeeID)
		}
		in.Labor = append(in.Labor, costing.LaborLine{
			Task:          a.Task.Name,
			Type:          costing.TaskType(a.Task.Type),
			Employee:      a.Employee.Name,
			HourlyRate:    a.Employee.HourlyRate,
			TimeMinutes:   a.TimeMinutes,
			ItemsPerBatch: float64(a.ItemsPerBatch),
		})
	}

	// Kira/fatura havuzu: tüm ürünlerin tahsis hacimleri toplamı
	var gc models.GlobalCosts
	if err := db.Where("user_id = ?", userID).First(&gc).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return in, err
	}
	var rentUtilPool float64
	if err := db.Model(&models.Product{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(rent_util_alloc_items_month), 0)").
		Scan(&rentUtilPool).Error; err != nil {
		return in, err
	}
	in.Overhead = costing.OverheadShare{
		MonthlyRent:      gc.MonthlyRent,
		MonthlyUtilities: gc.MonthlyUtilities,
		AllocItems:       float64(p.RentUtilAllocItemsMonth),
		PoolTotalItems:   rentUtilPool,
	}

	// Maaş havuzu: aynı çalışana bağlanan ürünlerin tahsis hacimleri toplamı.
	// Çalışanın maaş kaydı yoksa pay 0 kalır (Salary nil bırakılır).
	if p.SalaryAllocEmployeeID != nil {
		if p.SalaryAllocEmployee == nil || p.SalaryAllocEmployee.ID == 0 {
			return in, fmt.Errorf("%w: ürün çözülemeyen maaş çalışanına (%d) işaret ediyor", ErrDataIntegrity, *p.SalaryAllocEmployeeID)
		}

		var salary models.GlobalSalary
		err := db.Where("user_id = ? AND employee_id = ?", userID, *p.SalaryAllocEmployeeID).First(&salary).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return in, err
		}
		if err == nil {
			var salaryPool float64
			if err := db.Model(&models.Product{}).
				Where("user_id = ? AND salary_alloc_employee_id = ?", userID, *p.SalaryAllocEmployeeID).
				Select("COALESCE(SUM(salary_alloc_items_month), 0)").
				Scan(&salaryPool).Error; err != nil {
				return in, err
			}
			in.Salary = &costing.SalaryShare{
				Employee:       p.SalaryAllocEmployee.Name,
				MonthlyAmount:  salary.MonthlyAmount,
				AllocItems:     float64(p.SalaryAllocItemsMonth),
				PoolTotalItems: salaryPool,
			}
		}
	}

	// Kanal fiyatlandırması: kayıt yoksa tüm parametreler 0 kabul edilir
	var pricing []models.ChannelPricing
	if err := db.Where("product_id = ?", p.ID).Find(&pricing).Error; err != nil {
		return in, err
	}
	for _, cp := range pricing {
		terms := costing.ChannelTerms{
			PricePerItem:       cp.PricePerItem,
			PaymentFeePct:      cp.PaymentFeePct,
			PlatformFeePct:     cp.PlatformFeePct,
			FlatFeePerOrder:    cp.FlatFeePerOrder,
			AvgOrderValue:      cp.AvgOrderValue,
			ShippingCostSeller: cp.ShippingCostSeller,
		}
		switch cp.Channel {
		case models.ChannelRetail:
			in.Retail = terms
		case models.ChannelWholesale:
			in.Wholesale = terms
		}
	}

	return in, nil
}
