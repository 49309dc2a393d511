package get_profile

import "github.com/kazilop/CarCleanTGApp2/internal/domain"

// ProfileResponse HTTP response model
type ProfileResponse struct {
	TelegramID  *int64  `json:"tgId,omitempty"`
	Username    *string `json:"username,omitempty"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	PlateNumber string  `json:"plateNumber"`
	Visits      int     `json:"visits"`
	IsVIP       bool    `json:"isVIP"`
	IsAdmin     bool    `json:"isAdmin"`

	// Состояние программы лояльности для карточки в профиле
	WashesRemaining int     `json:"washesRemaining"`
	ProgressPercent float64 `json:"progressPercent"`
	FreeOnNextVisit bool    `json:"freeOnNextVisit"`
}

// FromDomainClient собирает ответ из профиля клиента и его лояльности
func FromDomainClient(c *domain.Client, isAdmin bool) *ProfileResponse {
	loyalty := domain.Loyalty(c.Visits, domain.LoyaltyThreshold)

	return &ProfileResponse{
		TelegramID:      c.TelegramID,
		Username:        c.Username,
		Name:            c.Name,
		Phone:           c.Phone,
		PlateNumber:     c.PlateNumber,
		Visits:          c.Visits,
		IsVIP:           c.IsVIP,
		IsAdmin:         isAdmin,
		WashesRemaining: loyalty.Remaining,
		ProgressPercent: loyalty.ProgressPercent,
		FreeOnNextVisit: loyalty.FreeOnNextVisit,
	}
}
