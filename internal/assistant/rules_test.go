package assistant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Kind
	}{
		{"remote beaches", "Find remote beaches in Northland", KindRankedComparison},
		{"compare", "Compare Lake Moke vs Twelve Mile Delta", KindComparison},
		{"rain", "Will it rain tomorrow?", KindWeather},
		{"weather", "What's the weather like?", KindWeather},
		{"camp", "Best campsites for stargazing", KindCampsite},
		{"site only", "any good site nearby", KindCampsite},
		{"route", "Which route should I take?", KindRoute},
		{"drive", "How long is the drive?", KindRoute},
		{"itinerary", "Recommend an itinerary", KindItinerary},
		{"day", "Plan my day", KindItinerary},
		{"fallback", "Hello there", KindGeneral},
		{"blank", "", KindGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text).Kind)
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	// "remote" и "beach" вместе побеждают "compare"
	assert.Equal(t, KindRankedComparison, Classify("compare remote beach camps").Kind)
	// "compare" раньше "weather"
	assert.Equal(t, KindComparison, Classify("compare the weather").Kind)
	// "rain" раньше "camp"
	assert.Equal(t, KindWeather, Classify("rain at camp").Kind)
	// "camp" раньше "drive"
	assert.Equal(t, KindCampsite, Classify("drive to the campground").Kind)
	// "drive" раньше "day"
	assert.Equal(t, KindRoute, Classify("a day drive").Kind)
	// "remote" без "beach" не подходит под первое правило
	assert.Equal(t, KindGeneral, Classify("somewhere remote").Kind)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("weather"), Classify("WEATHER"))
	assert.Equal(t, KindRankedComparison, Classify("REMOTE BEACH").Kind)
}

func TestClassifySubstringMatch(t *testing.T) {
	// "today" содержит "day"
	assert.Equal(t, KindItinerary, Classify("what about today").Kind)
	// "website" содержит "site"
	assert.Equal(t, KindCampsite, Classify("check the website").Kind)
}

func TestClassifyFallback(t *testing.T) {
	resp := Classify("hello")
	assert.Equal(t, "I'd be happy to help with that! Is there anything specific about camping in New Zealand you'd like to know?", resp.Text)
	assert.Nil(t, resp.Payload)
	assert.Equal(t, "", resp.Kind.Tag())
}

func TestClassifyPayloadMatchesKind(t *testing.T) {
	for _, text := range []string{"remote beach", "compare", "rain", "camp", "route", "day"} {
		resp := Classify(text)
		require.NotNil(t, resp.Payload, text)
		set := map[Kind]bool{
			KindRankedComparison: resp.Payload.Ranked != nil,
			KindComparison:       resp.Payload.Comparison != nil,
			KindWeather:          resp.Payload.Weather != nil,
			KindCampsite:         resp.Payload.Campsite != nil,
			KindRoute:            resp.Payload.Route != nil,
			KindItinerary:        resp.Payload.Itinerary != nil,
		}
		count := 0
		for kind, ok := range set {
			if ok {
				count++
				assert.Equal(t, resp.Kind, kind, text)
			}
		}
		assert.Equal(t, 1, count, text)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("compare sites")
	first.Payload.Comparison.Places[0].Name = "changed"
	second := Classify("compare sites")
	assert.Equal(t, "Lake Moke", second.Payload.Comparison.Places[0].Name)
}

func TestRankedBeaches(t *testing.T) {
	want := &RankedComparison{Places: []RankedPlace{
		{Name: "Maitai Bay", Rating: 4.8, Features: []string{"Remote", "Beachfront", "Basic facilities"}},
		{Name: "Tapotupotu Bay", Rating: 4.6, Features: []string{"DOC site", "Near Cape Reinga", "Sheltered"}},
		{Name: "Rarawa Beach", Rating: 4.5, Features: []string{"White sand", "Good for swimming", "Quiet"}},
	}}
	got := Classify("remote beaches").Payload.Ranked
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranked places mismatch (-want +got):\n%s", diff)
	}
}

func TestWeatherDigest(t *testing.T) {
	w := Classify("weather").Payload.Weather
	require.NotNil(t, w)
	assert.Equal(t, "18-24°C", w.Temperature)
	assert.Equal(t, "80% tomorrow", w.RainChance)
	assert.Equal(t, "15 km/h", w.Wind)
	want := []OutlookDay{{"Mon", false}, {"Tue", true}, {"Wed", false}, {"Thu", false}, {"Fri", false}}
	if diff := cmp.Diff(want, w.Outlook); diff != "" {
		t.Errorf("outlook mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteAndItinerary(t *testing.T) {
	route := Classify("drive").Payload.Route
	assert.Equal(t, RouteSummary{From: "Queenstown", To: "Wanaka", Duration: "1 hour drive", Distance: "67 km"}, *route)

	it := Classify("itinerary").Payload.Itinerary
	require.Len(t, it.Days, 3)
	assert.Equal(t, "Glendhu Bay Motor Camp", it.Days[0].Campsite)
}

func TestComparedPlaceAverage(t *testing.T) {
	c := Classify("compare").Payload.Comparison
	require.Len(t, c.Places, 2)
	assert.Equal(t, 3.8, c.Places[0].Average())
	assert.Equal(t, 3.6, c.Places[1].Average())
	assert.Equal(t, 0.0, ComparedPlace{}.Average())
}

func TestKindTag(t *testing.T) {
	assert.Equal(t, "comparison", KindRankedComparison.Tag())
	assert.Equal(t, "comparison", KindComparison.Tag())
	assert.Equal(t, "weather", KindWeather.Tag())
	assert.Equal(t, "", KindGeneral.Tag())
}

func TestAcknowledge(t *testing.T) {
	tests := []struct {
		query string
		tag   string
	}{
		{"Compare Lake Moke vs Twelve Mile Delta", "general"},
		{"please compare", "comparison"},
		{"Recommend a 3-day itinerary around Wanaka", "itinerary"},
		{"Find remote beaches in Northland", "campsite"},
		{"Dog-friendly campsites with showers", "general"},
	}
	for _, tt := range tests {
		text, tag := Acknowledge(tt.query)
		assert.Equal(t, tt.tag, tag, tt.query)
		assert.Equal(t, `I'm processing your query about "`+tt.query+`". Here's what I found...`, text)
	}
}

func TestPresets(t *testing.T) {
	presets := Presets()
	assert.Len(t, presets, 5)
	assert.Contains(t, presets, "Find remote beaches in Northland")
	assert.NotEmpty(t, Greeting())
}
