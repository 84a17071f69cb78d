// Package card renders a printable share card for a customized avatar: the
// seed, the attribute values and the link that reproduces the look.
package card

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"rpgme/internal/avatar"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	pageH     = 420
	margin    = 28
	fontSize  = 9
	titleSize = 18
	seedSize  = 30
	rowH      = 14.0
	labelW    = 90.0
	valueW    = 60.0
	swatchW   = 40.0
)

// Generate returns PDF bytes (A5 landscape) for st.
func Generate(st avatar.State, title string) ([]byte, error) {
	if title == "" {
		title = "Character Card"
	}

	pdf := gofpdf.New("L", "pt", "A5", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Paper background and frame
	pdf.SetFillColor(250, 246, 236)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawFrame(pdf)

	pdf.SetDrawColor(60, 45, 30)
	pdf.SetTextColor(60, 45, 30)

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin+10, margin+10)
	pdf.CellFormat(pageW-2*margin-20, 22, title, "", 0, "L", false, 0, "")

	// Seed, large, upper right
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(pageW-margin-200, margin+10)
	pdf.CellFormat(190, 10, "Seed", "", 0, "R", false, 0, "")
	pdf.SetFont("Courier", "B", seedSize)
	pdf.SetXY(pageW-margin-200, margin+22)
	pdf.CellFormat(190, 30, st.Seed, "", 0, "R", false, 0, "")

	drawAttributeTable(pdf, st.Attributes, margin+10, margin+70)
	drawHatSwatch(pdf, st.HatColor, pageW/2+20, margin+70)

	// Share link along the bottom
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetXY(margin+10, pageH-margin-48)
	pdf.CellFormat(100, 12, "Share link", "", 0, "L", false, 0, "")
	pdf.SetFont("Courier", "", fontSize)
	pdf.SetXY(margin+10, pageH-margin-34)
	pdf.MultiCell(pageW-2*margin-20, 11, st.URL, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type row struct {
	label string
	value string
}

func rows(a avatar.Attributes) []row {
	hair := strconv.Itoa(a.Hair)
	if !a.ShowHairColor() {
		hair += " (no hair)"
	}
	return []row{
		{"Hair", yesNo(a.Base == 1)},
		{"Face", strconv.Itoa(a.Face)},
		{"Face item", strconv.Itoa(a.FaceItem)},
		{"Hair color", hair},
		{"Pants", strconv.Itoa(a.Pants)},
		{"Shirt", strconv.Itoa(a.Shirt)},
		{"Skin", strconv.Itoa(a.Skin)},
		{"Hat color", strconv.Itoa(a.HatColor)},
		{"Hat", a.Hat},
		{"On fire", yesNo(a.Fire)},
		{"Walking", yesNo(a.Walking)},
	}
}

// drawAttributeTable lists the attributes as a two-column table with alternating shading.
func drawAttributeTable(pdf *gofpdf.Fpdf, a avatar.Attributes, x, y float64) {
	for i, r := range rows(a) {
		fill := i%2 == 0
		if fill {
			pdf.SetFillColor(236, 228, 210)
		}
		pdf.SetXY(x, y+float64(i)*rowH)
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.CellFormat(labelW, rowH, r.label, "", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.CellFormat(valueW+40, rowH, r.value, "", 0, "L", fill, 0, "")
	}
}

func drawHatSwatch(pdf *gofpdf.Fpdf, hue int, x, y float64) {
	r, g, b := hslToRGB(float64(hue), 1, 0.5)
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetXY(x, y)
	pdf.CellFormat(100, rowH, "Hat color", "", 0, "L", false, 0, "")
	pdf.SetFillColor(r, g, b)
	pdf.SetLineWidth(1)
	pdf.Rect(x, y+rowH+2, swatchW, swatchW, "FD")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(x+swatchW+8, y+rowH+2+swatchW/2-6)
	pdf.CellFormat(120, 12, fmt.Sprintf("hsl(%d, 100%%, 50%%)", hue), "", 0, "L", false, 0, "")
}

// drawFrame draws a double rule border inside the page margin.
func drawFrame(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(60, 45, 30)
	pdf.SetLineWidth(2)
	pdf.Rect(margin, margin, pageW-2*margin, pageH-2*margin, "D")
	pdf.SetLineWidth(0.5)
	pdf.Rect(margin+4, margin+4, pageW-2*margin-8, pageH-2*margin-8, "D")
	pdf.SetLineWidth(1)
}

// hslToRGB converts h in degrees, s and l in [0,1] to 8-bit RGB.
func hslToRGB(h, s, l float64) (int, int, int) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float64) int { return int(math.Round((v + m) * 255)) }
	return to8(r), to8(g), to8(b)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
