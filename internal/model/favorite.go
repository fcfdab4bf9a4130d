package model

// AllFolders - служебный идентификатор папки, означающий "все сохраненные места".
const AllFolders = "all"

// Folder представляет папку избранного.
type Folder struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Count int    `json:"count" db:"-"`
}

// SavedPlace представляет место, сохраненное пользователем в избранное.
type SavedPlace struct {
	Name     string   `json:"name" db:"name"`
	Location string   `json:"location" db:"location"`
	Tags     []string `json:"tags" db:"-"`
	Image    string   `json:"image" db:"image"`
	Folder   string   `json:"folder" db:"folder_id"`
	Offline  bool     `json:"offline" db:"-"` // доступно ли место без интернета
}
