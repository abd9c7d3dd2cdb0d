package entity

// Weather is a snapshot of current conditions at a point.
type Weather struct {
	Location    Location `json:"location"`
	City        string   `json:"city,omitempty"`
	Temperature float64  `json:"temperature"`
	FeelsLike   float64  `json:"feelsLike"`
	Humidity    int      `json:"humidity"`
	WindSpeed   float64  `json:"windSpeed"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
}
