package domain

// Settings операционная конфигурация автомойки
// Хранится единственной записью, при чтении накладывается поверх дефолтов
type Settings struct {
	StartHour           int     `json:"startHour"`
	EndHour             int     `json:"endHour"`
	SlotDurationMinutes int     `json:"slotDuration"`
	PostsCount          int     `json:"postsCount"`
	AdditionalAdminIDs  []int64 `json:"additionalAdminIds"`

	// Интеграционные реквизиты, для сервиса непрозрачные строки
	BotToken  string `json:"botToken"`
	ChannelID string `json:"channelId"`
}

// DefaultSettings возвращает конфигурацию по умолчанию
// Значения совпадают с дефолтами, с которыми мойка запускается впервые
func DefaultSettings() Settings {
	return Settings{
		StartHour:           DefaultStartHour,
		EndHour:             DefaultEndHour,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		PostsCount:          DefaultPostsCount,
		AdditionalAdminIDs:  []int64{},
	}
}

// StoredSettings частичная запись настроек из хранилища
// Поля-указатели: nil означает, что поле в записи отсутствовало
// и должно остаться дефолтным
type StoredSettings struct {
	StartHour           *int     `json:"startHour,omitempty"`
	EndHour             *int     `json:"endHour,omitempty"`
	SlotDurationMinutes *int     `json:"slotDuration,omitempty"`
	PostsCount          *int     `json:"postsCount,omitempty"`
	AdditionalAdminIDs  *[]int64 `json:"additionalAdminIds,omitempty"`
	BotToken            *string  `json:"botToken,omitempty"`
	ChannelID           *string  `json:"channelId,omitempty"`
}

// MergeSettings накладывает частичную запись из хранилища поверх дефолтов
// Прецедент по каждому полю: сохраненное значение, если оно присутствует,
// иначе дефолт. Некорректные числа приводятся к безопасным значениям.
func MergeSettings(defaults Settings, stored *StoredSettings) Settings {
	merged := defaults
	if stored == nil {
		return merged
	}

	if stored.StartHour != nil {
		merged.StartHour = *stored.StartHour
	}
	if stored.EndHour != nil {
		merged.EndHour = *stored.EndHour
	}
	if stored.SlotDurationMinutes != nil {
		merged.SlotDurationMinutes = *stored.SlotDurationMinutes
	}
	if stored.PostsCount != nil {
		merged.PostsCount = *stored.PostsCount
	}
	if stored.AdditionalAdminIDs != nil {
		merged.AdditionalAdminIDs = *stored.AdditionalAdminIDs
	}
	if stored.BotToken != nil {
		merged.BotToken = *stored.BotToken
	}
	if stored.ChannelID != nil {
		merged.ChannelID = *stored.ChannelID
	}

	return merged.Sanitized()
}

// Sanitized возвращает копию настроек с приведением некорректных
// числовых значений к безопасным (не отклоняет, а чинит)
// Нулевое или отрицательное число постов приводится к минимуму в один пост
func (s Settings) Sanitized() Settings {
	out := s

	if out.StartHour < MinHour || out.StartHour > MaxHour {
		out.StartHour = DefaultStartHour
	}
	if out.EndHour < MinHour || out.EndHour > MaxHour {
		out.EndHour = DefaultEndHour
	}
	if out.SlotDurationMinutes < MinSlotDurationMinutes {
		out.SlotDurationMinutes = DefaultSlotDurationMinutes
	}
	if out.PostsCount < MinPostsCount {
		out.PostsCount = MinPostsCount
	}
	if out.AdditionalAdminIDs == nil {
		out.AdditionalAdminIDs = []int64{}
	}

	return out
}

// IsAdditionalAdmin проверяет, входит ли ID в редактируемый список админов
func (s Settings) IsAdditionalAdmin(tgID int64) bool {
	for _, id := range s.AdditionalAdminIDs {
		if id == tgID {
			return true
		}
	}
	return false
}
