package menu

import (
	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

const pageHeight = 842.0

// placed builds a stitched text line without going through the stitcher
func placed(text string, x0, ey0 float64) layout.Placed {
	return layout.Placed{
		Node: layout.TextLine{
			Box:     layout.BoundingBox{X0: x0, Y0: ey0, X1: x0 + 60, Y1: ey0 + 9},
			Content: text,
		},
		EY0: ey0,
		EY1: ey0 + 9,
	}
}

func line(text string, x0, y0 float64) layout.Node {
	return layout.TextLine{
		Box:     layout.BoundingBox{X0: x0, Y0: y0, X1: x0 + 60, Y1: y0 + 9},
		Content: text,
	}
}

func rule(x0, x1, y float64) layout.Node {
	return layout.NewRect(layout.Point{X: x0, Y: y}, layout.Point{X: x1, Y: y + 0.4})
}

// Column x positions of the synthetic plan: categories, then Monday..Friday
var cols = []float64{30, 120, 210, 300, 390, 480}

// planPages reproduces the geometry of a two-page weekly plan. The Friday
// gratin cell starts at the bottom of page 1 and continues at the top of
// page 2.
func planPages() []layout.Node {
	first := []layout.Node{
		line("Mensa Zentrum, 12. KW; 16.03. - 20.03.2015\n", 30, 810),
		line("Wochenkarte  \n", 250, 795),

		// day headers
		line("Montag\n", cols[1], 770),
		line("Dienstag\n", cols[2], 770),
		line("Mittwoch\n", cols[3], 770),
		line("Donnerstag\n", cols[4], 770),
		line("Freitag \n", cols[5], 770),

		// row 1
		line("Essen I\n", cols[0], 740),
		line("Hauptkomponente\n", cols[0], 728),
		line("Schweineschnitzel\n", cols[1], 740),
		line("Stud.: 2,50 € Bed.: 3,70 €\n", cols[1], 728),
		line("Putengeschnetzeltes\n", cols[2]+1.5, 740),
		line("Stud.: 2,60 € Bed.: 3,80 €\n", cols[2], 728),
		line("Gemüsecurry\n", cols[3], 740),
		line("Stud.: 1,90 € Bed.: 3,10 €\n", cols[3], 728),
		line("Rinderbraten\n", cols[4], 740),
		line("Stud.: 2,90 € Bed.: 4,10 €\n", cols[4], 728),
		line("Hähnchenbrust\n", cols[5], 740),
		line("Stud.: 2,70 € Bed.: 3,90 €\n", cols[5], 728),
		line("1\n", cols[5]+40, 745),

		// row 2
		line("Aktionsstand\n", cols[0], 680),
		line("Pasta Bolognese\n", cols[1], 680),
		line("geschlossen\n", cols[2], 680),
		line("Burrito\n", cols[3], 680),
		line("Ofenkartoffel\n", cols[4], 680),
		line("Bratwurst mit Senf\n", cols[5], 680),
		line("und Pommes frites\n", cols[5], 668),
		line("Stud.: 2,75 €\n", cols[5], 656),
		line("Bed.: 3,95 €\n", cols[5], 646),

		// row 3, unlabeled
		line("Salatteller\n", cols[1], 620),
		line("Salatteller\n", cols[2], 620),
		line("Salatteller\n", cols[3], 620),
		line("Salatteller\n", cols[4], 620),
		line("Fischfilet Orly\n", cols[5], 620),
		line("Stud.: 2,95 € Bed.: 4,15 €\n", cols[5], 608),

		// row 4, continued on page 2
		line("Gratin\n", cols[0]+1, 100),
		line("Kartoffelgratin\n", cols[1], 100),
		line("Nudelauflauf\n", cols[2], 100),
		line("Brokkoligratin\n", cols[3], 100),
		line("Reisauflauf\n", cols[4], 100),
		line("Lasagne mit\n", cols[5], 90),

		line("Bitte beachten Sie die separate Information zur Lebensmittelkennzeichnung\n", cols[0], 20),
		line("1\n", 290, 10),

		rule(28, 560, 760),
		rule(28, 560, 700),
		rule(28, 560, 640),
		rule(28, 560, 580),
		rule(118, 560, 765),
		layout.NewRect(layout.Point{X: 28, Y: 80}, layout.Point{X: 28.4, Y: 780}),
	}

	second := []layout.Node{
		line("Hackfleischsauce\n", cols[5], 800),
		line("Stud.: 3,35 € Bed.: 4,55 €\n", cols[5], 788),
		line("Stud.: 2,10 € Bed.: 3,30 €\n", cols[1], 800),
		line("je 100g Stud.: 0,70 € Bed.:  0,80 €\n", cols[0], 740),
		line("2\n", 290, 10),

		rule(28, 560, 760),
		layout.NewRect(layout.Point{X: 28, Y: 760}, layout.Point{X: 28.4, Y: 842}),
	}

	return []layout.Node{
		layout.Page{Number: 1, Box: layout.BoundingBox{X1: 595, Y1: pageHeight}, Items: first},
		layout.Page{Number: 2, Box: layout.BoundingBox{X1: 595, Y1: pageHeight}, Items: second},
	}
}
