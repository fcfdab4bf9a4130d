package assistant

import (
	"fmt"
	"strings"
)

// rule срабатывает, если в запросе есть хотя бы одно слово из каждой группы.
type rule struct {
	groups [][]string
	build  func() Response
}

func (r rule) matches(lower string) bool {
	for _, group := range r.groups {
		found := false
		for _, kw := range group {
			if strings.Contains(lower, kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Порядок правил важен: более ранние правила перекрывают поздние.
var rules = []rule{
	{groups: [][]string{{"remote"}, {"beach"}}, build: rankedBeaches},
	{groups: [][]string{{"compare"}}, build: lakeComparison},
	{groups: [][]string{{"rain", "weather"}}, build: weatherDigest},
	{groups: [][]string{{"camp", "site"}}, build: campsiteHighlight},
	{groups: [][]string{{"route", "drive"}}, build: routeSummary},
	{groups: [][]string{{"itinerary", "day"}}, build: wanakaItinerary},
}

// Classify подбирает ответ по первому правилу, ключевые слова которого найдены в тексте без учета регистра.
// Если ни одно правило не подошло, возвращается общий ответ без вложения.
func Classify(text string) Response {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(lower) {
			return r.build()
		}
	}
	return Response{
		Kind: KindGeneral,
		Text: "I'd be happy to help with that! Is there anything specific about camping in New Zealand you'd like to know?",
	}
}

// Acknowledge формирует ответ на готовый запрос-подсказку. Тип подбирается с учетом регистра, вложения нет.
func Acknowledge(query string) (text string, tag string) {
	text = fmt.Sprintf(`I'm processing your query about "%s". Here's what I found...`, query)
	switch {
	case strings.Contains(query, "compare"):
		tag = string(KindComparison)
	case strings.Contains(query, "itinerary"):
		tag = string(KindItinerary)
	case strings.Contains(query, "remote"):
		tag = string(KindCampsite)
	default:
		tag = string(KindGeneral)
	}
	return text, tag
}

// Greeting - первое сообщение бота в каждом разговоре.
func Greeting() string {
	return "Hi there! I'm your Campwise assistant. How can I help with your camping adventure today?"
}

// Presets возвращает подсказки-запросы, которые показываются под полем ввода.
func Presets() []string {
	return []string{
		"Find remote beaches in Northland",
		"Compare Lake Moke vs Twelve Mile Delta",
		"Best campsites for stargazing near Queenstown",
		"Dog-friendly campsites with showers",
		"Recommend a 3-day itinerary around Wanaka",
	}
}

func rankedBeaches() Response {
	return Response{
		Kind: KindRankedComparison,
		Text: "I found 5 remote beaches in Northland with camping options. The top rated is Maitai Bay on the Karikari Peninsula, which offers beachfront freedom camping with basic facilities.",
		Payload: &Payload{Ranked: &RankedComparison{Places: []RankedPlace{
			{Name: "Maitai Bay", Rating: 4.8, Features: []string{"Remote", "Beachfront", "Basic facilities"}},
			{Name: "Tapotupotu Bay", Rating: 4.6, Features: []string{"DOC site", "Near Cape Reinga", "Sheltered"}},
			{Name: "Rarawa Beach", Rating: 4.5, Features: []string{"White sand", "Good for swimming", "Quiet"}},
		}}},
	}
}

func lakeComparison() Response {
	return Response{
		Kind: KindComparison,
		Text: "Here's a comparison between Lake Moke Campsite and Twelve Mile Delta:",
		Payload: &Payload{Comparison: &Comparison{
			Categories: []string{"Cost", "Facilities", "Privacy", "Views", "Access"},
			Places: []ComparedPlace{
				{
					Name:    "Lake Moke",
					Ratings: []int{5, 2, 4, 5, 3},
					Summary: "Free with beautiful lake views, more private but basic facilities",
				},
				{
					Name:    "Twelve Mile Delta",
					Ratings: []int{3, 4, 2, 4, 5},
					Summary: "Paid DOC site with better facilities but less privacy, easy access",
				},
			},
		}},
	}
}

func weatherDigest() Response {
	outlook := make([]OutlookDay, 0, 5)
	for i, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri"} {
		outlook = append(outlook, OutlookDay{Day: day, Rainy: i == 1})
	}
	return Response{
		Kind: KindWeather,
		Text: "The forecast for Queenstown shows rain tomorrow, but clear skies for the next 3 days after that. I'd recommend waiting until Wednesday for the best camping weather!",
		Payload: &Payload{Weather: &WeatherDigest{
			Alert:       "Weather Alert",
			Temperature: "18-24°C",
			RainChance:  "80% tomorrow",
			Wind:        "15 km/h",
			Outlook:     outlook,
		}},
	}
}

func campsiteHighlight() Response {
	return Response{
		Kind: KindCampsite,
		Text: "I found 3 great campsites near Queenstown that match your preferences for lake views and free camping. Lake Moke is the highest rated one!",
		Payload: &Payload{Campsite: &CampsiteHighlight{
			Name:     "Lake Moke Campsite",
			Distance: "12km from Queenstown",
			Image:    "/images/lake-campsite.jpg",
		}},
	}
}

func routeSummary() Response {
	return Response{
		Kind: KindRoute,
		Text: "The drive from Queenstown to Wanaka takes about 1 hour. There are 2 free campsites along the way where you could stop and enjoy the views!",
		Payload: &Payload{Route: &RouteSummary{
			From:     "Queenstown",
			To:       "Wanaka",
			Duration: "1 hour drive",
			Distance: "67 km",
		}},
	}
}

func wanakaItinerary() Response {
	return Response{
		Kind: KindItinerary,
		Text: "I've created a 3-day itinerary around Wanaka for you, focusing on scenic spots and good camping options:",
		Payload: &Payload{Itinerary: &Itinerary{Days: []ItineraryStop{
			{
				Day:        "Day 1",
				Activities: "Explore Wanaka lakefront, hike Mount Iron (1.5 hrs)",
				Campsite:   "Glendhu Bay Motor Camp",
				Notes:      "Lakeside camping with mountain views",
			},
			{
				Day:        "Day 2",
				Activities: "Visit Blue Pools Track, explore Makarora",
				Campsite:   "Cameron Flat Campsite",
				Notes:      "Free DOC site with river access",
			},
			{
				Day:        "Day 3",
				Activities: "Drive to Lake Hawea, water activities",
				Campsite:   "Lake Outlet Holiday Park",
				Notes:      "Facilities include hot showers and kitchen",
			},
		}}},
	}
}
