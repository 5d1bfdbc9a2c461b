package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/utils"
)

// ExportShoppingListCSV renders the shopping list as semicolon-delimited
// text (Spanish-locale spreadsheet convention, since prices use the decimal
// comma): product, quantity, unit price, subtotal, plus a total row.
func ExportShoppingListCSV(entries []models.ShoppingListEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write([]string{"Producto", "Cantidad", "Precio unitario", "Subtotal"}); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		unit := utils.PriceOrZero(entry.Product.Price)
		subtotal := unit * float64(entry.Quantity)
		record := []string{
			entry.Product.Name,
			fmt.Sprintf("%d", entry.Quantity),
			utils.FormatPrice(unit),
			utils.FormatPrice(subtotal),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	total := ShoppingListTotal(entries)
	if err := w.Write([]string{"Total", "", "", utils.FormatPrice(total)}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportShoppingListPDF renders the shopping list as a printable PDF.
func ExportShoppingListPDF(entries []models.ShoppingListEntry) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("LISTA DE LA COMPRA", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(time.Now().Format("02/01/2006"), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Table header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Producto", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Cantidad", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Precio", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Subtotal", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, entry := range entries {
		unit := utils.PriceOrZero(entry.Product.Price)
		subtotal := unit * float64(entry.Quantity)
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(entry.Product.Name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", entry.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(utils.FormatPrice(unit), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(utils.FormatPrice(subtotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(10, func() {
			m.Text("TOTAL", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(utils.FormatPrice(ShoppingListTotal(entries)), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render shopping list pdf: %w", err)
	}
	return &buf, nil
}
