package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/youruser/deckcode/internal/deck"
)

// Share image layout, in pixels.
const (
	ImageWidth = 1600
	margin     = 48

	heroW, heroH  = 160, 220
	heroGap       = 16
	heroesPerRow  = 5
	pipSize       = 24
	pipGap        = 6
	maxPips       = 5
	qrEdge        = 400
	rowH, rowGap  = 28, 8
	countUnit     = 36
	maxCountUnits = 10
	cardColumns   = 2
	// MaxHeroRows and MaxCardRows bound the canvas; entries past them are
	// not drawn.
	MaxHeroRows = 4
	MaxCardRows = 60
)

var (
	background = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	barColor   = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	pipColor   = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// ComposeDeckImage draws a share image for d: hero tiles with one pip per
// turn along the top left, qr (if any) top right, and one row per card with
// a color swatch and a bar proportional to its count.
// Card names and art are not resolved; tiles are colored from the ID.
func ComposeDeckImage(d deck.Deck, qr image.Image) *image.NRGBA {
	heroes := d.Heroes
	if len(heroes) > MaxHeroRows*heroesPerRow {
		heroes = heroes[:MaxHeroRows*heroesPerRow]
	}
	heroRows := (len(heroes) + heroesPerRow - 1) / heroesPerRow
	heroBottom := margin + heroRows*(heroH+heroGap+pipSize+pipGap)
	top := heroBottom
	if qr != nil && margin+qrEdge > top {
		top = margin + qrEdge
	}
	top += margin

	cards := d.Cards
	if len(cards) > MaxCardRows*cardColumns {
		cards = cards[:MaxCardRows*cardColumns]
	}
	rows := (len(cards) + cardColumns - 1) / cardColumns
	height := top + rows*(rowH+rowGap) + margin

	canvas := imaging.New(ImageWidth, height, background)

	for i, h := range heroes {
		x := margin + (i%heroesPerRow)*(heroW+heroGap)
		y := margin + (i/heroesPerRow)*(heroH+heroGap+pipSize+pipGap)
		fill(canvas, image.Rect(x, y, x+heroW, y+heroH), idColor(h.ID))

		pips := int(min(h.Turn, maxPips))
		for p := 0; p < pips; p++ {
			px := x + p*(pipSize+pipGap)
			py := y + heroH + pipGap
			fill(canvas, image.Rect(px, py, px+pipSize, py+pipSize), pipColor)
		}
	}

	if qr != nil {
		q := imaging.Resize(qr, qrEdge, qrEdge, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(ImageWidth-margin-qrEdge, margin))
	}

	colW := (ImageWidth - 2*margin) / cardColumns
	for i, c := range cards {
		x := margin + (i/rows)*colW
		y := top + (i%rows)*(rowH+rowGap)
		fill(canvas, image.Rect(x, y, x+rowH, y+rowH), idColor(c.ID))

		units := int(min(c.Count, maxCountUnits))
		bx := x + rowH + rowGap
		fill(canvas, image.Rect(bx, y, bx+units*countUnit, y+rowH), barColor)
	}

	return canvas
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}
