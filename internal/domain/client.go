package domain

// Client represents a car wash client
// Identified primarily by Telegram ID, by phone number as a fallback
type Client struct {
	TelegramID  *int64  `json:"tgId,omitempty"`
	Username    *string `json:"username,omitempty"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	PlateNumber string  `json:"plateNumber"`
	Visits      int     `json:"visits"`
	IsVIP       bool    `json:"isVIP"`
}

// SameIdentity проверяет, указывают ли две записи на одного клиента
// Telegram ID имеет приоритет над телефоном
func (c *Client) SameIdentity(other *Client) bool {
	if other == nil {
		return false
	}
	if c.TelegramID != nil && other.TelegramID != nil {
		return *c.TelegramID == *other.TelegramID
	}
	return c.Phone != "" && c.Phone == other.Phone
}

// HasContactInfo returns true when the profile is complete enough to book
func (c *Client) HasContactInfo() bool {
	return c.Phone != "" && c.PlateNumber != ""
}

// Merge накладывает непустые поля from поверх текущей записи
// Счётчик визитов и VIP-флаг никогда не затираются входными данными
func (c *Client) Merge(from *Client) {
	if from == nil {
		return
	}
	if from.TelegramID != nil {
		c.TelegramID = from.TelegramID
	}
	if from.Username != nil {
		c.Username = from.Username
	}
	if from.Name != "" {
		c.Name = from.Name
	}
	if from.Phone != "" {
		c.Phone = from.Phone
	}
	if from.PlateNumber != "" {
		c.PlateNumber = from.PlateNumber
	}
}
