// Package assistant подбирает заготовленный ответ ассистента по ключевым словам запроса.
package assistant

import "math"

// Kind определяет категорию ответа ассистента и форму вложения.
type Kind string

const (
	KindRankedComparison Kind = "ranked_comparison"
	KindComparison       Kind = "comparison"
	KindWeather          Kind = "weather"
	KindCampsite         Kind = "campsite"
	KindRoute            Kind = "route"
	KindItinerary        Kind = "itinerary"
	KindGeneral          Kind = "general"
)

// Tag возвращает тип сообщения, который видит клиент. Оба вида сравнения отображаются одной карточкой.
func (k Kind) Tag() string {
	switch k {
	case KindRankedComparison, KindComparison:
		return string(KindComparison)
	case KindGeneral:
		return ""
	default:
		return string(k)
	}
}

// Response - ответ ассистента: текст и необязательное структурированное вложение.
type Response struct {
	Kind    Kind     `json:"kind"`
	Text    string   `json:"text"`
	Payload *Payload `json:"payload,omitempty"`
}

// Payload - вложение ответа. Заполнено ровно одно поле, соответствующее Kind ответа.
type Payload struct {
	Ranked     *RankedComparison  `json:"ranked,omitempty"`
	Comparison *Comparison        `json:"comparison,omitempty"`
	Weather    *WeatherDigest     `json:"weather,omitempty"`
	Campsite   *CampsiteHighlight `json:"campsite,omitempty"`
	Route      *RouteSummary      `json:"route,omitempty"`
	Itinerary  *Itinerary         `json:"itinerary,omitempty"`
}

// RankedPlace - место в рейтинге найденных мест.
type RankedPlace struct {
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Features []string `json:"features"`
}

// RankedComparison - список мест, упорядоченный по рейтингу.
type RankedComparison struct {
	Places []RankedPlace `json:"places"`
}

// ComparedPlace - место в сравнении по категориям. Ratings идут в порядке Comparison.Categories.
type ComparedPlace struct {
	Name    string `json:"name"`
	Ratings []int  `json:"ratings"`
	Summary string `json:"summary"`
}

// Average возвращает среднюю оценку места по всем категориям, округленную до десятых.
func (p ComparedPlace) Average() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(p.Ratings))*10) / 10
}

// Comparison - сравнение нескольких мест по набору категорий.
type Comparison struct {
	Categories []string        `json:"categories"`
	Places     []ComparedPlace `json:"places"`
}

// OutlookDay - краткий прогноз на день недели.
type OutlookDay struct {
	Day   string `json:"day"`
	Rainy bool   `json:"rainy"`
}

// WeatherDigest - сводка погоды с предупреждением.
type WeatherDigest struct {
	Alert       string       `json:"alert"`
	Temperature string       `json:"temperature"`
	RainChance  string       `json:"rain_chance"`
	Wind        string       `json:"wind"`
	Outlook     []OutlookDay `json:"outlook"`
}

// CampsiteHighlight - карточка одного рекомендованного кемпинга.
type CampsiteHighlight struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Image    string `json:"image"`
}

// RouteSummary - карточка маршрута между двумя точками.
type RouteSummary struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Duration string `json:"duration"`
	Distance string `json:"distance"`
}

// ItineraryStop - один день предложенного маршрута.
type ItineraryStop struct {
	Day        string `json:"day"`
	Activities string `json:"activities"`
	Campsite   string `json:"campsite"`
	Notes      string `json:"notes"`
}

// Itinerary - предложенный многодневный маршрут.
type Itinerary struct {
	Days []ItineraryStop `json:"days"`
}
