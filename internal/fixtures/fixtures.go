// Package fixtures содержит демонстрационные данные, которыми заполняется база при запуске.
package fixtures

import "campwise/internal/model"

// DemoTripID - поездка, маршрут которой показывается на экране планирования.
const DemoTripID = 1

// Campsites - кемпинги в окрестностях Квинстауна.
func Campsites() []model.Campsite {
	return []model.Campsite{
		{
			ID: 1, Name: "Lake Moke Campsite", Distance: "12km", Tag: "Scenic",
			Image: "/images/lake-campsite.jpg", Position: model.Position{Left: 25, Top: 33},
			Tags: []string{"Free", "Water", "Lake", "Pet Friendly"}, Rating: 4.7, Reviews: 28,
			Description: "Beautiful lakeside campsite with mountain views and easy access to hiking trails.",
		},
		{
			ID: 2, Name: "Twelve Mile Delta", Distance: "5km", Tag: "Facilities",
			Image: "/images/beach-campsite.jpg", Position: model.Position{Left: 67, Top: 50},
			Tags: []string{"Paid", "Showers", "Toilets", "Beach"}, Rating: 4.5, Reviews: 42,
			Description: "Well-maintained campsite with excellent facilities and beautiful beach views.",
		},
		{
			ID: 3, Name: "Moke Lake DOC Campsite", Distance: "15km", Tag: "Peaceful",
			Image: "/images/mountain-campsite.jpg", Position: model.Position{Left: 40, Top: 60},
			Tags: []string{"Paid", "Toilets", "Water", "Mountain"}, Rating: 4.3, Reviews: 19,
			Description: "Quiet and peaceful campsite surrounded by stunning mountain scenery.",
		},
		{
			ID: 4, Name: "Queenstown Lakeview", Distance: "2km", Tag: "Popular",
			Image: "/images/lake-campsite.jpg", Position: model.Position{Left: 55, Top: 40},
			Tags: []string{"Paid", "Showers", "Wifi", "Lake"}, Rating: 4.8, Reviews: 56,
			Description: "Premium campsite with excellent facilities and stunning lake views.",
		},
		{
			ID: 5, Name: "Glenorchy Forest Retreat", Distance: "22km", Tag: "Remote",
			Image: "/images/forest-campsite.jpg", Position: model.Position{Left: 15, Top: 70},
			Tags: []string{"Free", "Forest", "Pet Friendly"}, Rating: 4.2, Reviews: 15,
			Description: "Secluded forest campsite perfect for those seeking peace and quiet.",
		},
	}
}

// FilterCategories - группы фильтров панели карты.
func FilterCategories() []model.FilterCategory {
	return []model.FilterCategory{
		{Name: "Site Type", Options: []string{"Free", "Paid", "DOC Sites", "Holiday Parks"}},
		{Name: "Amenities", Options: []string{"Toilets", "Showers", "Water", "Kitchen", "Laundry", "Dump Station", "Power Hookups", "Wifi"}},
		{Name: "Features", Options: []string{"Pet Friendly", "Family Friendly", "Accessible", "Fire Pits", "BBQ", "Picnic Tables"}},
		{Name: "Environment", Options: []string{"Beach", "Forest", "Mountain", "Lake", "River", "Hot Springs", "Scenic View"}},
	}
}

// SmartPresets - готовые наборы фильтров.
func SmartPresets() []model.SmartPreset {
	return []model.SmartPreset{
		{Name: "Freedom camping near Queenstown", Filters: []string{"Free", "Scenic View", "Queenstown Area"}},
		{Name: "Family-friendly with facilities", Filters: []string{"Family Friendly", "Toilets", "Showers", "Kitchen"}},
		{Name: "Remote spots with good signal", Filters: []string{"Remote", "Wifi", "4G Signal"}},
		{Name: "Pet-friendly beach camping", Filters: []string{"Pet Friendly", "Beach", "Water"}},
	}
}

// Folders - папки избранного, кроме служебной "all".
func Folders() []model.Folder {
	return []model.Folder{
		{ID: "south-island", Name: "South Island Trip"},
		{ID: "beaches", Name: "Beach Spots"},
	}
}

// SavedPlaces - места в избранном.
func SavedPlaces() []model.SavedPlace {
	return []model.SavedPlace{
		{Name: "Lake Moke Campsite", Location: "Queenstown, NZ", Tags: []string{"Free", "Scenic", "Lake"}, Image: "/images/lake-campsite.jpg", Folder: "south-island"},
		{Name: "Twelve Mile Delta", Location: "Queenstown, NZ", Tags: []string{"Paid", "Facilities", "DOC Site"}, Image: "/images/beach-campsite.jpg", Folder: "south-island"},
		{Name: "Moke Lake DOC Campsite", Location: "Queenstown, NZ", Tags: []string{"Paid", "Toilets", "Water"}, Image: "/images/mountain-campsite.jpg", Folder: "south-island"},
		{Name: "Byron Bay Beach Camp", Location: "Byron Bay, AU", Tags: []string{"Free", "Beach", "Surf"}, Image: "/images/beach-campsite.jpg", Folder: "beaches"},
		{Name: "Gold Coast Hideaway", Location: "Gold Coast, AU", Tags: []string{"Paid", "Facilities", "Beach"}, Image: "/images/beach-campsite.jpg", Folder: "beaches"},
	}
}

// OfflinePlaces - места, изначально доступные офлайн.
func OfflinePlaces() []string {
	return []string{"Lake Moke Campsite"}
}

// SavedTrips - сохраненные поездки.
func SavedTrips() []model.SavedTrip {
	return []model.SavedTrip{
		{Title: "South Island Adventure", Description: "Queenstown to Christchurch", Days: 7, Image: "/images/south-island.jpg"},
		{Title: "Byron Bay Surf Trip", Description: "Byron Bay to Gold Coast", Days: 5, Image: "/images/byron-bay.jpg"},
	}
}

// Itinerary - маршрут демонстрационной поездки по побережью от Байрон-Бей до Голд-Коста.
func Itinerary() []model.ItineraryDay {
	return []model.ItineraryDay{
		{ID: 1, TripID: DemoTripID, Day: "Day 1", Location: "Byron Bay", Campsite: "Suffolk Park Beachfront", Description: "Start at Suffolk Park for easy beach access and surf.", Order: 1},
		{ID: 2, TripID: DemoTripID, Day: "Day 2-3", Location: "Brunswick Heads", Campsite: "Brunswick Heads Nature Reserve", Description: "Great surf breaks and river swimming spots.", Order: 2},
		{ID: 3, TripID: DemoTripID, Day: "Day 4-5", Location: "Cabarita Beach", Campsite: "Hastings Point Campground", Description: "Beautiful headland walks and consistent surf.", Order: 3},
		{ID: 4, TripID: DemoTripID, Day: "Day 6-7", Location: "Gold Coast", Campsite: "Tallebudgera Creek", Description: "End your trip with world-class surf breaks.", Order: 4},
	}
}

// Forecasts - прогноз погоды по точкам маршрута.
func Forecasts() []model.Forecast {
	return []model.Forecast{
		{Location: "Byron Bay", Days: []model.DayForecast{
			{Day: "Mon", Temp: 26, Condition: "sunny"},
			{Day: "Tue", Temp: 25, Condition: "partly cloudy"},
			{Day: "Wed", Temp: 24, Condition: "cloudy"},
			{Day: "Thu", Temp: 23, Condition: "rainy"},
			{Day: "Fri", Temp: 25, Condition: "sunny"},
		}},
		{Location: "Brunswick Heads", Days: []model.DayForecast{
			{Day: "Mon", Temp: 25, Condition: "sunny"},
			{Day: "Tue", Temp: 24, Condition: "partly cloudy"},
			{Day: "Wed", Temp: 23, Condition: "rainy"},
			{Day: "Thu", Temp: 24, Condition: "cloudy"},
			{Day: "Fri", Temp: 26, Condition: "sunny"},
		}},
		{Location: "Gold Coast", Days: []model.DayForecast{
			{Day: "Mon", Temp: 27, Condition: "sunny"},
			{Day: "Tue", Temp: 26, Condition: "sunny"},
			{Day: "Wed", Temp: 25, Condition: "partly cloudy"},
			{Day: "Thu", Temp: 24, Condition: "rainy"},
			{Day: "Fri", Temp: 26, Condition: "sunny"},
		}},
	}
}

// Achievements - достижения профиля.
func Achievements() []model.Achievement {
	return []model.Achievement{
		{ID: "first-trip", Name: "First Trip", Description: "Completed your first camping trip", Earned: true, Date: "May 12, 2023"},
		{ID: "explorer", Name: "Explorer", Description: "Visited 5 different regions", Earned: true, Date: "July 3, 2023"},
		{ID: "social", Name: "Social Camper", Description: "Shared 3 campsite reviews", Earned: true, Date: "August 15, 2023"},
		{ID: "planner", Name: "Master Planner", Description: "Created 5 trip plans", Progress: 3, Total: 5},
		{ID: "offgrid", Name: "Off-Grid Pro", Description: "Stayed at 10 remote campsites", Progress: 6, Total: 10},
	}
}

// UserTypes - типы путешественников в профиле.
func UserTypes() []string {
	return []string{"Solo Vanlifer", "Family Camper", "Weekend Warrior", "Full-time Nomad"}
}

// Vehicles - варианты транспорта на первом шаге онбординга.
func Vehicles() []string {
	return []string{"Van", "Car + Tent", "4WD", "Luxury RV"}
}

// Preferences - предпочтения на третьем шаге онбординга.
func Preferences() []string {
	return []string{"Free camping", "Paid campgrounds", "Off-grid", "Beach", "Forest", "Mountain views", "Near towns", "Remote"}
}
