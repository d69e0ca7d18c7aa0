package services

// CatalogEntry is one orderable product with its default rate. The catalog
// only pre-fills the rate field when a product is picked; the user may
// override the rate on the line item afterwards.
type CatalogEntry struct {
	Name string
	Rate float64
}

// Catalog is the studio's fixed price list, in menu order.
var Catalog = []CatalogEntry{
	{"Passport Size Photo 35x45-08 Copy", 60},
	{"Passport Size Photo 35x45-16 Copy", 80},
	{"Passport Size Photo 35x45-20 Copy", 100},
	{"Passport Size Photo 35x45-32 Copy", 120},
	{"Passport Size Photo 35x45-40 Copy", 140},
	{"Passport Size Photo 35x35-08 Copy", 60},
	{"Visa Size Photo (80% Face) 35x45-08 Copy", 100},
	{"Visa Size Photo (80% Face) 33x48-08 Copy", 120},
	{"Visa Size Photo (80% Face) 50x50-06 Copy", 140},
	{"Visa Size Photo (80% Face) 50x70-04 Copy", 150},
	{"E-Mail Passport Size Photo", 100},
	{"Urgent Passport Size Photo 35x45-08 Copy", 80},
	{"Photo Size 4x6", 150},
	{"Photo Size 5x7", 180},
	{"Photo Size 6x8", 250},
	{"Photo Size 6x9", 280},
	{"Photo Size 8x10", 300},
	{"Photo Size 8x12", 350},
	{"Photo Size 10x12", 400},
	{"Photo Size 10x14", 450},
	{"Photo Size 12x15", 550},
	{"Photo Size 12x18", 650},
	{"Photo Size 12x24", 850},
	{"Photo Size 12x30", 900},
	{"Photo Size 12x36", 950},
	{"Photo Size 16x20", 1000},
	{"Photo Size 16x24", 1200},
	{"Photo Size 20x24", 1500},
	{"Photo Size 20x30", 2000},
	{"Photo Size 4x6 with Lamination + Framing", 350},
	{"Photo Size 5x7 with Lamination + Framing", 350},
	{"Photo Size 6x8 with Lamination + Framing", 400},
	{"Photo Size 6x9 with Lamination + Framing", 500},
	{"Photo Size 8x10 with Lamination + Framing", 550},
	{"Photo Size 8x12 with Lamination + Framing", 600},
	{"Photo Size 10x12 with Lamination + Framing", 850},
	{"Photo Size 10x14 with Lamination + Framing", 900},
	{"Photo Size 12x15 with Lamination + Framing", 1000},
	{"Photo Size 12x18 with Lamination + Framing", 1300},
	{"Photo Size 12x24 with Lamination + Framing", 1500},
	{"Photo Size 12x30 with Lamination + Framing", 1700},
	{"Photo Size 12x36 with Lamination + Framing", 1800},
	{"Photo Size 16x20 with Lamination + Framing", 2000},
	{"Photo Size 16x24 with Lamination + Framing", 2300},
	{"Photo Size 20x24 with Lamination + Framing", 2900},
	{"Photo Size 20x30 with Lamination + Framing", 4000},
	{"Modeling Photo 6x9", 400},
	{"Modeling Photo 8x12", 500},
	{"Modeling Photo 10x12", 600},
	{"Modeling Photo 12x15", 800},
	{"Modeling Photo 16x20", 1200},
	{"Modeling Photo 16x24", 1300},
	{"Modeling Photo 20x30", 2200},
}

// CatalogRate looks up the default rate for a product name.
func CatalogRate(name string) (float64, bool) {
	for _, entry := range Catalog {
		if entry.Name == name {
			return entry.Rate, true
		}
	}
	return 0, false
}
