package report

import (
	"errors"
	"fmt"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/costing"
	"github.com/mtomase/makers-ledger/internal/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func parseProductID(c *fiber.Ctx) (uint, error) {
	idStr := c.Params("id")
	var id uint
	if _, err := fmt.Sscan(idStr, &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Ürün ID geçersiz")
	}
	return id, nil
}

func buildReport(c *fiber.Ctx) (*costing.Report, error) {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return nil, err
	}
	productID, err := parseProductID(c)
	if err != nil {
		return nil, err
	}

	in, err := BuildInput(database.DB, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}
		if errors.Is(err, ErrDataIntegrity) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Ürün verileri yüklenemedi")
	}

	report := costing.Compute(in)
	return &report, nil
}

// GET /api/products/:id/cost-breakdown
func CostBreakdownHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := buildReport(c)
		if err != nil {
			return err
		}
		return c.JSON(report)
	}
}

// GET /api/products/:id/cost-breakdown/export
func ExportCostBreakdownHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := buildReport(c)
		if err != nil {
			return err
		}

		f, err := BuildWorkbook(report)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası yazılamadı")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Product+"-maliyet-dokumu.xlsx"))
		return c.Send(buf.Bytes())
	}
}
