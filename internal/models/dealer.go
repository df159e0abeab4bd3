package models

// Dealer и DealerReview собираются из JSON внешнего API на каждый запрос
// и в БД не сохраняются.

type Dealer struct {
	ID        int     `json:"id"`
	FullName  string  `json:"full_name"`
	ShortName string  `json:"short_name,omitempty"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	St        string  `json:"st,omitempty"`
	Zip       string  `json:"zip"`
	Lat       float64 `json:"lat"`
	Long      float64 `json:"long"`
}

const DefaultSentiment = "N/A"

type DealerReview struct {
	ID           int    `json:"id"`
	Dealership   int    `json:"dealership"`
	Name         string `json:"name"`
	Purchase     bool   `json:"purchase"`
	Review       string `json:"review"`
	PurchaseDate string `json:"purchase_date"`
	CarMake      string `json:"car_make"`
	CarModel     string `json:"car_model"`
	CarYear      int    `json:"car_year"`
	Sentiment    string `json:"sentiment"`
}

// WithDefaults подставляет "N/A", если внешний API не прислал тональность.
func (r DealerReview) WithDefaults() DealerReview {
	if r.Sentiment == "" {
		r.Sentiment = DefaultSentiment
	}
	return r
}
