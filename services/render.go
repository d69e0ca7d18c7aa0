package services

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Invoice surface palette. Matched to the print styling of the document.
var (
	paperWhite  = color.RGBA{255, 255, 255, 255}
	bannerBlue  = color.RGBA{30, 58, 95, 255}
	bannerText  = color.RGBA{255, 255, 255, 255}
	inkBlack    = color.RGBA{20, 20, 20, 255}
	gridGrey    = color.RGBA{180, 180, 180, 255}
	headerShade = color.RGBA{235, 238, 243, 255}
)

// Table column boundaries as fractions of the surface width:
// Sr | Product | Qty | Rate | Amount.
var columnStops = []float64{0, 0.10, 0.60, 0.70, 0.85, 1.0}

// RenderInvoice rasterizes an invoice layout onto an RGBA surface at the
// given oversampling scale. scale 3 gives print-quality output on A4.
func RenderInvoice(layout InvoiceLayout, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("render invoice: scale %d below 1", scale)
	}
	width := layout.WidthPx * scale
	height := layout.HeightPx() * scale
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render invoice: empty surface %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(paperWhite), image.Point{}, draw.Src)

	c := canvas{img: img, scale: scale, width: width}
	c.drawBanner(layout)
	y := layout.BannerPx * scale
	y = c.drawClientBlock(layout, y)
	y = c.drawTable(layout, y)
	c.drawFooter(layout, y)

	return img, nil
}

// canvas wraps the pixel-level drawing so the section methods above stay
// readable. All y positions are in device pixels.
type canvas struct {
	img   *image.RGBA
	scale int
	width int
}

func (c canvas) drawBanner(layout InvoiceLayout) {
	bannerH := layout.BannerPx * c.scale
	draw.Draw(c.img, image.Rect(0, 0, c.width, bannerH), image.NewUniform(bannerBlue), image.Point{}, draw.Src)
	c.textCentered(layout.BusinessName, bannerH/2-10*c.scale, bannerText)
	c.textCentered(layout.DocTitle, bannerH/2+14*c.scale, bannerText)
}

func (c canvas) drawClientBlock(layout InvoiceLayout, y int) int {
	pad := 16 * c.scale
	line := 22 * c.scale
	c.text("Name: "+layout.ClientName, pad, y+line, inkBlack)
	c.text("Phone: "+layout.PhoneNumber, pad, y+2*line, inkBlack)
	c.textRight("No: "+layout.QuotationNo, c.width-pad, y+line, inkBlack)
	c.textRight("Date: "+layout.Date, c.width-pad, y+2*line, inkBlack)
	return y + layoutClientBlockPx*c.scale
}

func (c canvas) drawTable(layout InvoiceLayout, y int) int {
	rowH := layoutRowPx * c.scale
	rows := layout.RowCount() + 1 // header row on top
	tableBottom := y + rows*rowH

	draw.Draw(c.img, image.Rect(0, y, c.width, y+rowH), image.NewUniform(headerShade), image.Point{}, draw.Src)

	// Grid: horizontal rules per row, vertical rules at column stops.
	for r := 0; r <= rows; r++ {
		c.hline(y + r*rowH)
	}
	for _, stop := range columnStops {
		c.vline(int(float64(c.width)*stop), y, tableBottom)
	}

	headers := []string{"Sr", "Product", "Qty", "Rate", "Amount"}
	c.rowText(headers, y, rowH)
	for i, row := range layout.Rows {
		cells := []string{row.Sr, row.ProductName, row.Qty, row.Rate, row.Amount}
		c.rowText(cells, y+(i+1)*rowH, rowH)
	}
	// Padding rows stay blank; the grid alone carries them.

	return tableBottom
}

func (c canvas) drawFooter(layout InvoiceLayout, y int) {
	pad := 16 * c.scale
	line := 24 * c.scale
	c.text("Folder: "+layout.FolderName, pad, y+line, inkBlack)
	c.text("Prints: "+layout.PrintNumber, pad, y+2*line, inkBlack)
	c.textRight("Total: "+layout.TotalDisplay, c.width-pad, y+line, inkBlack)
	c.textRight("Advance: "+layout.AdvanceDisplay, c.width-pad, y+2*line, inkBlack)
	c.textRight("Credit: "+layout.CreditDisplay, c.width-pad, y+3*line, inkBlack)

	if layout.Context == ContextReceipt {
		amount := layout.TotalGrouped
		if layout.TotalInWords != "" {
			amount += " (" + layout.TotalInWords + " Only)"
		}
		c.text("Amount: "+amount, pad, y+4*line, inkBlack)
	}
}

// rowText lays the cells of one table row into their columns, left padded,
// vertically centred on the row.
func (c canvas) rowText(cells []string, y, rowH int) {
	baseline := y + rowH/2 + 4*c.scale
	for i, cell := range cells {
		x := int(float64(c.width)*columnStops[i]) + 6*c.scale
		c.text(cell, x, baseline, inkBlack)
	}
}

func (c canvas) hline(y int) {
	for t := 0; t < c.scale; t++ {
		for x := 0; x < c.width; x++ {
			c.img.Set(x, y+t, gridGrey)
		}
	}
}

func (c canvas) vline(x, top, bottom int) {
	if x >= c.width {
		x = c.width - c.scale
	}
	for t := 0; t < c.scale; t++ {
		for y := top; y < bottom; y++ {
			c.img.Set(x+t, y, gridGrey)
		}
	}
}

func (c canvas) text(s string, x, baseline int, col color.RGBA) {
	c.drawString(s, x, baseline, col)
}

func (c canvas) textRight(s string, right, baseline int, col color.RGBA) {
	c.drawString(s, right-c.stringWidth(s), baseline, col)
}

func (c canvas) textCentered(s string, baseline int, col color.RGBA) {
	c.drawString(s, (c.width-c.stringWidth(s))/2, baseline, col)
}

// drawString renders s with the bitmap face, repeated scale times in both
// axes so glyphs keep their apparent size at higher oversampling.
func (c canvas) drawString(s string, x, baseline int, col color.RGBA) {
	face := basicfont.Face7x13
	if c.scale == 1 {
		d := font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(x, baseline),
		}
		d.DrawString(s)
		return
	}

	// Draw at 1x onto a scratch surface, then blow each pixel up.
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	if w <= 0 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	top := baseline - ascent*c.scale
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			px := scratch.RGBAAt(sx, sy)
			if px.A == 0 {
				continue
			}
			for dy := 0; dy < c.scale; dy++ {
				for dx := 0; dx < c.scale; dx++ {
					c.img.SetRGBA(x+sx*c.scale+dx, top+sy*c.scale+dy, px)
				}
			}
		}
	}
}

func (c canvas) stringWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil() * c.scale
}
