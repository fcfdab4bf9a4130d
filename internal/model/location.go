package model

// Position задает положение метки кемпинга на карте в процентах от размеров холста.
type Position struct {
	Left float64 `json:"left" db:"pos_left"`
	Top  float64 `json:"top" db:"pos_top"`
}

// Campsite представляет кемпинг, отображаемый на карте и в списке рядом с пользователем.
type Campsite struct {
	ID          int      `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Distance    string   `json:"distance" db:"distance"` // расстояние в виде подписи, например "12km"
	Tag         string   `json:"tag" db:"tag"`           // основной ярлык карточки
	Tags        []string `json:"tags" db:"-"`
	Rating      float64  `json:"rating" db:"rating"`
	Reviews     int      `json:"reviews" db:"reviews"`
	Description string   `json:"description" db:"description"`
	Image       string   `json:"image" db:"image"`
	Position    `json:"position"`
}

// HasTag сообщает, помечен ли кемпинг указанным ярлыком.
func (c Campsite) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FilterCategory группирует варианты фильтров панели карты.
type FilterCategory struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// SmartPreset - готовый набор фильтров, предлагаемый ассистентом.
type SmartPreset struct {
	Name    string   `json:"name"`
	Filters []string `json:"filters"`
}
