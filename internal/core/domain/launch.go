package domain

// AllSites is the site selector value that spans every launch site.
const AllSites = "ALL"

// Outcome classes as encoded in the dataset's class column.
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// Outcome labels used when a single site is split into success and failure.
const (
	OutcomeSuccess = "Success"
	OutcomeFailure = "Failure"
)

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	FlightNumber           int     `json:"flight_number"`
	LaunchSite             string  `json:"launch_site"`
	Class                  int     `json:"class"`
	PayloadMassKg          float64 `json:"payload_mass_kg"`
	BoosterVersion         string  `json:"booster_version"`
	BoosterVersionCategory string  `json:"booster_version_category"`
}

// Succeeded reports whether the launch outcome class is a success.
func (r LaunchRecord) Succeeded() bool {
	return r.Class == ClassSuccess
}

// OutcomeLabel maps the outcome class to its category label.
func (r LaunchRecord) OutcomeLabel() string {
	if r.Succeeded() {
		return OutcomeSuccess
	}
	return OutcomeFailure
}

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies within [Low, High]. A range with
// Low > High contains nothing.
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r.Low && mass <= r.High
}

// Category is one slice of a proportion chart.
type Category struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// OutcomeChart is the derived view behind the success pie chart.
type OutcomeChart struct {
	Site       string     `json:"site"`
	Title      string     `json:"title"`
	Names      string     `json:"names"`
	Categories []Category `json:"categories"`
}

// Total sums the category values.
func (c OutcomeChart) Total() int {
	total := 0
	for _, cat := range c.Categories {
		total += cat.Value
	}
	return total
}

// ScatterView is the derived view behind the payload/outcome scatter chart.
type ScatterView struct {
	Site    string         `json:"site"`
	Title   string         `json:"title"`
	Range   PayloadRange   `json:"range"`
	Records []LaunchRecord `json:"records"`
}
