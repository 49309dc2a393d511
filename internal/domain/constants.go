package domain

// Loyalty program
const (
	// LoyaltyThreshold каждая N-я мойка бесплатно
	LoyaltyThreshold = 10
)

// Default settings values
const (
	DefaultStartHour           = 9
	DefaultEndHour             = 21
	DefaultSlotDurationMinutes = 30
	DefaultPostsCount          = 2
)

// Settings validation bounds
const (
	MinHour                = 0
	MaxHour                = 23
	MinSlotDurationMinutes = 1
	MinPostsCount          = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RootAdminIDs вшитые Telegram ID супер-админов
// Не редактируются через настройки и не могут быть удалены
var RootAdminIDs = []int64{
	207940967,
}

// IsRootAdmin проверяет, входит ли ID в список вшитых админов
func IsRootAdmin(tgID int64) bool {
	for _, id := range RootAdminIDs {
		if id == tgID {
			return true
		}
	}
	return false
}
