package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePriceListPDF creates a PDF of the product catalog with current
// rates using maroto/v2. It returns the raw PDF bytes or an error.
func GeneratePriceListPDF(entries []CatalogEntry) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPriceListHeader(m)
	addPriceListTable(m, entries)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate price list PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addPriceListHeader adds the business name, title, and generation date.
func addPriceListHeader(m core.Maroto) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New("OM Photography", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("PRICE LIST", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated: %s", time.Now().Format("02/01/2006")), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addPriceListTable adds the catalog table with alternating row backgrounds.
func addPriceListTable(m core.Maroto, entries []CatalogEntry) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Sr", headerText)).WithStyle(&headerCell),
			col.New(8).Add(text.New("Product", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, entry := range entries {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colSr := col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), bodyText))
		colName := col.New(8).Add(text.New(entry.Name, bodyTextLeft))
		colRate := col.New(3).Add(text.New(FormatINR(entry.Rate), bodyTextRight))

		if cellStyle != nil {
			colSr = colSr.WithStyle(cellStyle)
			colName = colName.WithStyle(cellStyle)
			colRate = colRate.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colSr, colName, colRate))
	}
}
