package bot

import (
	"fmt"
	"strings"

	"campwise/internal/assistant"
	"campwise/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// Render превращает сообщение ассистента в текст Telegram (Markdown). Вложение выводится блоком после текста.
func Render(msg model.Message) string {
	var b strings.Builder
	b.WriteString(escape(msg.Content))
	if p := msg.Payload; p != nil {
		block := renderPayload(p)
		if block != "" {
			b.WriteString("\n\n")
			b.WriteString(block)
		}
	}
	return b.String()
}

func renderPayload(p *assistant.Payload) string {
	var b strings.Builder
	switch {
	case p.Ranked != nil:
		for i, place := range p.Ranked.Places {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%d. *%s* ⭐ %.1f\n   %s", i+1, escape(place.Name), place.Rating,
				escape(strings.Join(place.Features, " · ")))
		}
	case p.Comparison != nil:
		c := p.Comparison
		names := make([]string, 0, len(c.Places))
		for _, place := range c.Places {
			names = append(names, "*"+escape(place.Name)+"*")
		}
		b.WriteString(strings.Join(names, " vs "))
		for i, category := range c.Categories {
			ratings := make([]string, 0, len(c.Places))
			for _, place := range c.Places {
				if i < len(place.Ratings) {
					ratings = append(ratings, fmt.Sprint(place.Ratings[i]))
				}
			}
			fmt.Fprintf(&b, "\n%s: %s", escape(category), strings.Join(ratings, " vs "))
		}
		for _, place := range c.Places {
			fmt.Fprintf(&b, "\n\n*%s* (%.1f)\n%s", escape(place.Name), place.Average(), escape(place.Summary))
		}
	case p.Weather != nil:
		w := p.Weather
		fmt.Fprintf(&b, "*%s*\nTemperature: %s\nRain: %s\nWind: %s", escape(w.Alert),
			escape(w.Temperature), escape(w.RainChance), escape(w.Wind))
		if len(w.Outlook) > 0 {
			days := make([]string, 0, len(w.Outlook))
			for _, d := range w.Outlook {
				icon := "☀️"
				if d.Rainy {
					icon = "🌧"
				}
				days = append(days, d.Day+" "+icon)
			}
			b.WriteString("\n" + strings.Join(days, "  "))
		}
	case p.Campsite != nil:
		fmt.Fprintf(&b, "⛺ *%s*\n%s", escape(p.Campsite.Name), escape(p.Campsite.Distance))
	case p.Route != nil:
		r := p.Route
		fmt.Fprintf(&b, "🚐 *%s → %s*\n%s · %s", escape(r.From), escape(r.To), escape(r.Duration), escape(r.Distance))
	case p.Itinerary != nil:
		for i, day := range p.Itinerary.Days {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "*%s*: %s\nCamp: %s\n_%s_", escape(day.Day), escape(day.Activities),
				escape(day.Campsite), escape(day.Notes))
		}
	}
	return b.String()
}
