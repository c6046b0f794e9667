package repository

// PriceRow is one joined price record as the API serializes it.
type PriceRow struct {
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	IsPredicted bool    `json:"is_predicted"`
	Crop        string  `json:"crop"`
	Market      string  `json:"market"`
}

type PriceRepository interface {
	// List returns price rows ordered by date ascending. Empty crop/market
	// skip that filter; non-empty values match case-insensitively with LIKE
	// semantics, so caller-supplied % and _ wildcards stay meaningful.
	List(crop, market string) ([]PriceRow, error)
}
