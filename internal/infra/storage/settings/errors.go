package settings

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения настроек из хранилища
	ErrLoad = errors.New("settings.repository: failed to load settings")

	// ErrSave возвращается при ошибке записи настроек в хранилище
	ErrSave = errors.New("settings.repository: failed to save settings")
)
