package report

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tealeg/xlsx"

	reportuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/report"
)

type Handler struct {
	uc  *reportuc.Usecase
	log zerolog.Logger
}

func New(uc *reportuc.Usecase, log zerolog.Logger) *Handler {
	return &Handler{uc: uc, log: log}
}

// Sales serves the dashboard summary. Defaults to the trailing 30
// days when no explicit range is given.
func (h *Handler) Sales(c *fiber.Ctx) error {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if v := c.Query("start"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid start date")
		}
		start = t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid end date")
		}
		// end date is inclusive in the query string
		end = t.AddDate(0, 0, 1)
	}

	month := time.Month(c.QueryInt("month", 0))

	out, err := h.uc.SalesReport(c.Context(), start, end, month)
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) Recap(c *fiber.Ctx) error {
	year, month, err := recapPeriod(c)
	if err != nil {
		return err
	}

	rows, err := h.uc.Recap(c.Context(), year, month)
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(fiber.Map{"items": rows})
}

// RecapExport streams the monthly recap as a spreadsheet, one row per
// completed nota plus a grand-total footer.
func (h *Handler) RecapExport(c *fiber.Ctx) error {
	year, month, err := recapPeriod(c)
	if err != nil {
		return err
	}

	rows, err := h.uc.Recap(c.Context(), year, month)
	if err != nil {
		return h.mapErr(err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Rekap")
	if err != nil {
		h.log.Error().Err(err).Msg("report handler: add sheet")
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	title := sheet.AddRow()
	title.AddCell().SetString(fmt.Sprintf("Rekap Penjualan %s %d", reportuc.MonthNameID(month), year))
	sheet.AddRow()

	header := sheet.AddRow()
	for _, col := range []string{"No", "Tanggal", "No Nota", "Customer", "Jatuh Tempo", "Total"} {
		header.AddCell().SetString(col)
	}

	var total float64
	for i, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetString(reportuc.FormatDateID(r.CreatedAt))
		row.AddCell().SetString(r.TransactionNumber)
		row.AddCell().SetString(r.CustomerName)
		row.AddCell().SetString(r.PaymentTermLabel)
		row.AddCell().SetFloat(r.TotalAmount)
		total += r.TotalAmount
	}

	footer := sheet.AddRow()
	footer.AddCell().SetString("Total")
	for i := 0; i < 4; i++ {
		footer.AddCell()
	}
	footer.AddCell().SetFloat(total)

	name := fmt.Sprintf("rekap-%d-%02d.xlsx", year, int(month))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)

	if err := file.Write(c.Response().BodyWriter()); err != nil {
		h.log.Error().Err(err).Msg("report handler: write xlsx")
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return nil
}

func recapPeriod(c *fiber.Ctx) (int, time.Month, error) {
	now := time.Now()
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}
	monthNum, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid month")
	}
	return year, time.Month(monthNum), nil
}

func (h *Handler) mapErr(err error) error {
	if errors.Is(err, reportuc.ErrInvalidInput) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	h.log.Error().Err(err).Msg("report handler: internal error")
	return fiber.NewError(fiber.StatusInternalServerError, "internal error")
}
