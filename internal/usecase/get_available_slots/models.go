package get_available_slots

import "github.com/kazilop/CarCleanTGApp2/pkg/types"

// Request модель запроса доступных слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со свободными слотами
type Response struct {
	Date       string             // Запрошенная дата
	PostsCount int                // Количество постов (боксов) мойки
	Slots      []types.TimeString // Свободные слоты в хронологическом порядке
}
