package models

import "strconv"

// MenuItem is a dish or drink on the menu. Price is kept as the decimal
// string the backend serves; availability is a remaining-portion count.
type MenuItem struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	Availability int      `json:"availability"`
	Category     Category `json:"category"`
}

// PriceValue parses the decimal price string. An unparseable price counts
// as zero so a bad record never breaks total computation.
func (m MenuItem) PriceValue() float64 {
	v, err := strconv.ParseFloat(m.Price, 64)
	if err != nil {
		return 0
	}
	return v
}
