package get_available_slots

import (
	getAvailableSlots "github.com/kazilop/CarCleanTGApp2/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date       string   `json:"date"`
	PostsCount int      `json:"postsCount"`
	Slots      []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	return &SlotsResponse{
		Date:       resp.Date,
		PostsCount: resp.PostsCount,
		Slots:      slots,
	}
}
