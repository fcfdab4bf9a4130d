package model

// ItineraryDay представляет один пункт маршрута поездки.
type ItineraryDay struct {
	ID          int    `json:"id" db:"id"`
	TripID      int    `json:"trip_id" db:"trip_id"`
	Day         string `json:"day" db:"day"` // подпись дня, например "Day 2-3"
	Location    string `json:"location" db:"location"`
	Campsite    string `json:"campsite" db:"campsite"`
	Description string `json:"description" db:"description"`
	Order       int    `json:"order" db:"order_index"` // порядок следования пункта в маршруте
}

// SavedTrip - сохраненная поездка в избранном.
type SavedTrip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Days        int    `json:"days"`
	Image       string `json:"image"`
}

// DayForecast - прогноз погоды на один день.
type DayForecast struct {
	Day       string `json:"day"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
}

// Forecast - прогноз погоды для точки маршрута.
type Forecast struct {
	Location string        `json:"location"`
	Days     []DayForecast `json:"forecast"`
}
