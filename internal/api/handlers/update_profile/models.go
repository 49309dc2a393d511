package update_profile

import "github.com/kazilop/CarCleanTGApp2/internal/domain"

// UpdateProfileRequest HTTP request model
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PlateNumber string `json:"plateNumber"`
}

// ProfileResponse HTTP response model
type ProfileResponse struct {
	TelegramID  *int64  `json:"tgId,omitempty"`
	Username    *string `json:"username,omitempty"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	PlateNumber string  `json:"plateNumber"`
	Visits      int     `json:"visits"`
	IsVIP       bool    `json:"isVIP"`
}

// FromDomainClient собирает ответ из обновленного профиля клиента
func FromDomainClient(c *domain.Client) *ProfileResponse {
	return &ProfileResponse{
		TelegramID:  c.TelegramID,
		Username:    c.Username,
		Name:        c.Name,
		Phone:       c.Phone,
		PlateNumber: c.PlateNumber,
		Visits:      c.Visits,
		IsVIP:       c.IsVIP,
	}
}
