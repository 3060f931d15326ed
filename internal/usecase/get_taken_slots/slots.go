package get_taken_slots

import (
	"sort"
	"strings"
)

// normalizeTakenTimes нормализует времена из хранилища: обрезает пробелы,
// отбрасывает пустые значения и дубликаты. Результат отсортирован по
// возрастанию, что даёт стабильный порядок для UI.
func normalizeTakenTimes(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	taken := make([]string, 0, len(raw))

	for _, value := range raw {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		taken = append(taken, trimmed)
	}

	sort.Strings(taken)
	return taken
}
