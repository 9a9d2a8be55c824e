package domain

// Crop is one entry of the static crop catalog.
type Crop struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int    `json:"basePrice"`
}

// Crops is the seven-crop market catalog. Base prices anchor the round to
// round price drift.
var Crops = []Crop{
	{ID: "maiz", Name: "Maíz", BasePrice: 3},
	{ID: "trigo", Name: "Trigo", BasePrice: 2},
	{ID: "papa", Name: "Papa", BasePrice: 2},
	{ID: "tomate", Name: "Tomate", BasePrice: 4},
	{ID: "zanahoria", Name: "Zanahoria", BasePrice: 3},
	{ID: "fresa", Name: "Fresa", BasePrice: 5},
	{ID: "calabaza", Name: "Calabaza", BasePrice: 4},
}

// CropByID returns the catalog entry for id, or nil if unknown.
func CropByID(id string) *Crop {
	for i := range Crops {
		if Crops[i].ID == id {
			return &Crops[i]
		}
	}
	return nil
}
