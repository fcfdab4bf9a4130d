package model

// Profile хранит профиль путешественника и его настройки.
type Profile struct {
	UserID      int      `json:"user_id" db:"user_id"`
	Name        string   `json:"name" db:"name"`
	UserType    string   `json:"user_type" db:"user_type"` // например "Solo Vanlifer"
	Vehicle     string   `json:"vehicle" db:"vehicle"`     // выбирается при онбординге
	Preferences []string `json:"preferences" db:"-"`
	DarkMode    bool     `json:"dark_mode" db:"-"`
}

// Achievement - достижение пользователя. Для незаработанных заполнены Progress и Total.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Date        string `json:"date,omitempty"`
	Progress    int    `json:"progress,omitempty"`
	Total       int    `json:"total,omitempty"`
}
