package domain

// RateRow is the success tally for one group of launches.
type RateRow struct {
	Key       string  `json:"key"`
	Launches  int     `json:"launches"`
	Successes int     `json:"successes"`
	Rate      float64 `json:"success_rate"`
}

// BandRow is the success tally for launches whose payload falls in [Low, High).
type BandRow struct {
	Low       float64 `json:"low"`
	High      float64 `json:"high"`
	Launches  int     `json:"launches"`
	Successes int     `json:"successes"`
	Rate      float64 `json:"success_rate"`
}

// Report summarises launch outcomes by site, booster category and payload band.
type Report struct {
	Total           RateRow   `json:"total"`
	Sites           []RateRow `json:"sites"`
	Boosters        []RateRow `json:"boosters"`
	PayloadBands    []BandRow `json:"payload_bands"`
	BandWidth       float64   `json:"band_width"`
	MostSuccessSite RateRow   `json:"most_success_site"`
	BestRateSite    RateRow   `json:"best_rate_site"`
	BestBooster     RateRow   `json:"best_booster"`
}

// Option is one entry of the site dropdown.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SliderSpec describes the payload range slider.
type SliderSpec struct {
	Min   float64        `json:"min"`
	Max   float64        `json:"max"`
	Step  float64        `json:"step"`
	Marks map[int]string `json:"marks"`
	Value PayloadRange   `json:"value"`
}

// Layout is the widget description served to the dashboard page.
type Layout struct {
	Heading     string     `json:"heading"`
	Placeholder string     `json:"placeholder"`
	Options     []Option   `json:"options"`
	DefaultSite string     `json:"default_site"`
	Slider      SliderSpec `json:"slider"`
}
