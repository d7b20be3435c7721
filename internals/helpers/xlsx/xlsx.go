package helper

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet: satu sheet sederhana (header + baris)
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Build menulis beberapa sheet ke satu workbook (sheet pertama menggantikan "Sheet1").
func Build(sheets ...Sheet) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[XLSX] close: %v", err)
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, sh := range sheets {
		name := strings.TrimSpace(sh.Name)
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}

		if len(sh.Headers) > 0 {
			hdr := make([]any, len(sh.Headers))
			for j, h := range sh.Headers {
				hdr[j] = h
			}
			if err := f.SetSheetRow(name, "A1", &hdr); err != nil {
				return nil, err
			}
			last, _ := excelize.CoordinatesToCellName(len(sh.Headers), 1)
			if err := f.SetCellStyle(name, "A1", last, bold); err != nil {
				return nil, err
			}
		}

		for r, row := range sh.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			vals := row
			if err := f.SetSheetRow(name, cell, &vals); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

// Send: tulis buffer sebagai attachment .xlsx
func Send(c *fiber.Ctx, filename string, buf *bytes.Buffer) error {
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		filename += ".xlsx"
	}
	c.Set(fiber.HeaderContentType, ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

// ReadRows: baca semua baris sheet pertama (baris header ikut)
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file excel: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[XLSX] close: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("file excel tidak memiliki sheet")
	}
	return f.GetRows(sheet)
}
