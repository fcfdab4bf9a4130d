package service

import (
	"slices"
	"sort"

	"campwise/internal/apperr"
	"campwise/internal/model"
)

// ToggleMembership удаляет name из множества, если оно там есть, иначе добавляет в конец.
// Исходный срез не меняется. Второе значение - входит ли name в новое множество.
func ToggleMembership(set []string, name string) ([]string, bool) {
	if i := slices.Index(set, name); i >= 0 {
		next := make([]string, 0, len(set)-1)
		next = append(next, set[:i]...)
		return append(next, set[i+1:]...), false
	}
	next := make([]string, 0, len(set)+1)
	next = append(next, set...)
	return append(next, name), true
}

// FilterByFolder оставляет места из указанной папки. Пустая папка или "all" - все места в исходном порядке.
func FilterByFolder(places []model.SavedPlace, folder string) []model.SavedPlace {
	if folder == "" || folder == model.AllFolders {
		return slices.Clone(places)
	}
	filtered := []model.SavedPlace{}
	for _, p := range places {
		if p.Folder == folder {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByTags оставляет кемпинги, у которых есть все активные ярлыки.
func FilterByTags(campsites []model.Campsite, active []string) []model.Campsite {
	filtered := []model.Campsite{}
	for _, c := range campsites {
		matches := true
		for _, tag := range active {
			if !c.HasTag(tag) {
				matches = false
				break
			}
		}
		if matches {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// ReorderByParity переставляет пункты маршрута: сначала четные ID, затем нечетные,
// сохраняя относительный порядок внутри каждой группы. Это не оптимизация по расстоянию.
func ReorderByParity(days []model.ItineraryDay) []model.ItineraryDay {
	reordered := slices.Clone(days)
	sort.SliceStable(reordered, func(i, j int) bool {
		return parity(reordered[i].ID) < parity(reordered[j].ID)
	})
	return reordered
}

func parity(id int) int {
	if id%2 == 0 {
		return 0
	}
	return 1
}

// MoveEntry перемещает пункт маршрута с позиции from на позицию to (перетаскивание в списке).
func MoveEntry(days []model.ItineraryDay, from, to int) ([]model.ItineraryDay, error) {
	if from < 0 || from >= len(days) || to < 0 || to >= len(days) {
		return nil, apperr.Validation("move %d -> %d out of range for %d entries", from, to, len(days))
	}
	moved := slices.Clone(days)
	entry := moved[from]
	moved = slices.Delete(moved, from, from+1)
	return slices.Insert(moved, to, entry), nil
}
