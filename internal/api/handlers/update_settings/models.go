package update_settings

import (
	"encoding/json"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/service/settings"
)

// AdminIDList список админских ID
// Админка присылает его либо массивом чисел, либо строкой через запятую
// (так поле хранится в текстовом поле формы)
type AdminIDList []int64

func (l *AdminIDList) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err == nil {
		*l = ids
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = settings.ParseAdminIDs(raw)
	return nil
}

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	StartHour           int         `json:"startHour"`
	EndHour             int         `json:"endHour"`
	SlotDurationMinutes int         `json:"slotDuration"`
	PostsCount          int         `json:"postsCount"`
	AdditionalAdminIDs  AdminIDList `json:"additionalAdminIds"`
	BotToken            string      `json:"botToken"`
	ChannelID           string      `json:"channelId"`
}

// ToDomainSettings конвертирует запрос в доменные настройки
func (r *UpdateSettingsRequest) ToDomainSettings() domain.Settings {
	return domain.Settings{
		StartHour:           r.StartHour,
		EndHour:             r.EndHour,
		SlotDurationMinutes: r.SlotDurationMinutes,
		PostsCount:          r.PostsCount,
		AdditionalAdminIDs:  r.AdditionalAdminIDs,
		BotToken:            r.BotToken,
		ChannelID:           r.ChannelID,
	}
}
