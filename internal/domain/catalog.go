package domain

// ServiceType тип услуги мойки
type ServiceType string

const (
	ServiceTypeExpress  ServiceType = "Экспресс"
	ServiceTypeStandard ServiceType = "Стандарт"
	ServiceTypePremium  ServiceType = "Премиум"
	ServiceTypeCeramic  ServiceType = "Керамика"
)

// Service услуга из статического каталога мойки
type Service struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Price           float64     `json:"price"`
	DurationMinutes int         `json:"durationMinutes"`
	Type            ServiceType `json:"type"`
	ImageURL        string      `json:"imageUrl"`
}

// Services статический каталог услуг
// Каталог не редактируется через настройки, бронирования ссылаются на него по ID
var Services = []Service{
	{
		ID:              "srv_1",
		Name:            "Экспресс Мойка",
		Description:     "Быстрая мойка кузова, чистка колес и сушка.",
		Price:           500,
		DurationMinutes: 20,
		Type:            ServiceTypeExpress,
		ImageURL:        "https://images.unsplash.com/photo-1532751203331-537820440239?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:              "srv_2",
		Name:            "Стандарт Блеск",
		Description:     "Мойка кузова, пылесос салона, мойка стекол и чернение резины.",
		Price:           1200,
		DurationMinutes: 45,
		Type:            ServiceTypeStandard,
		ImageURL:        "https://images.unsplash.com/photo-1601362840469-51e4d8d58785?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:              "srv_3",
		Name:            "Премиум Детейлинг",
		Description:     "Полная детальная мойка, ручной воск, глубокая чистка салона и уход за кожей.",
		Price:           3500,
		DurationMinutes: 90,
		Type:            ServiceTypePremium,
		ImageURL:        "https://images.unsplash.com/photo-1563720223185-11003d516935?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:              "srv_4",
		Name:            "Керамическая Защита",
		Description:     "Коррекция ЛКП и нанесение керамического покрытия на 1 год.",
		Price:           15000,
		DurationMinutes: 240,
		Type:            ServiceTypeCeramic,
		ImageURL:        "https://images.unsplash.com/photo-1617788138017-80ad40651399?auto=format&fit=crop&w=800&q=80",
	},
}

// ServiceByID ищет услугу в каталоге
// Возвращает nil, если услуга с таким ID не найдена
func ServiceByID(id string) *Service {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i]
		}
	}
	return nil
}
