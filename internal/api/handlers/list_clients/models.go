package list_clients

import "github.com/kazilop/CarCleanTGApp2/internal/domain"

// ClientResponse клиент с прогрессом лояльности для админской таблицы
type ClientResponse struct {
	TelegramID      *int64  `json:"tgId,omitempty"`
	Username        *string `json:"username,omitempty"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	PlateNumber     string  `json:"plateNumber"`
	Visits          int     `json:"visits"`
	IsVIP           bool    `json:"isVIP"`
	WashesRemaining int     `json:"washesRemaining"`
	FreeOnNextVisit bool    `json:"freeOnNextVisit"`
}

// FromDomainClients конвертирует клиентов в ответ с лояльностью
func FromDomainClients(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		loyalty := domain.Loyalty(c.Visits, domain.LoyaltyThreshold)
		result[i] = &ClientResponse{
			TelegramID:      c.TelegramID,
			Username:        c.Username,
			Name:            c.Name,
			Phone:           c.Phone,
			PlateNumber:     c.PlateNumber,
			Visits:          c.Visits,
			IsVIP:           c.IsVIP,
			WashesRemaining: loyalty.Remaining,
			FreeOnNextVisit: loyalty.FreeOnNextVisit,
		}
	}
	return result
}
