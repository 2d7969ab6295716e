package cards

// Category metadata mirrors the six thematic decks of the card catalog.
// Points is the per-card reward used by category-weighted scoring variants.
type Category struct {
	Id          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

const (
	CategoryAnatomy     = "anatomy"
	CategoryDental      = "dental"
	CategoryDiseases    = "diseases"
	CategoryTools       = "tools"
	CategoryFacts       = "facts"
	CategoryProfessions = "professions"
)

var Categories = map[string]Category{
	CategoryAnatomy: {
		Id:          CategoryAnatomy,
		Label:       "Анатомия и органы",
		Icon:        "🦴",
		Points:      1,
		Description: "Органы и анатомические структуры человека.",
	},
	CategoryDental: {
		Id:          CategoryDental,
		Label:       "Стоматология и ортодонтия",
		Icon:        "🦷",
		Points:      2,
		Description: "Зубы, лечение и исправление прикуса.",
	},
	CategoryDiseases: {
		Id:          CategoryDiseases,
		Label:       "Болезни и симптомы",
		Icon:        "🏥",
		Points:      1,
		Description: "Заболевания и их проявления.",
	},
	CategoryTools: {
		Id:          CategoryTools,
		Label:       "Лекарства и инструменты",
		Icon:        "💊",
		Points:      2,
		Description: "Медикаменты и врачебный инструментарий.",
	},
	CategoryFacts: {
		Id:          CategoryFacts,
		Label:       "Интересные факты",
		Icon:        "🧬",
		Points:      3,
		Description: "Научные и занимательные факты о медицине.",
	},
	CategoryProfessions: {
		Id:          CategoryProfessions,
		Label:       "Медицинские профессии",
		Icon:        "🩺",
		Points:      1,
		Description: "Специальности и роли в здравоохранении.",
	},
}

// AllCategoryIds returns every known category id in a stable order.
func AllCategoryIds() []string {
	return []string{
		CategoryAnatomy,
		CategoryDental,
		CategoryDiseases,
		CategoryTools,
		CategoryFacts,
		CategoryProfessions,
	}
}

// CategoryPoints returns the per-card reward for a category, 0 if unknown.
func CategoryPoints(categoryId string) int {
	if c, ok := Categories[categoryId]; ok {
		return c.Points
	}
	return 0
}
