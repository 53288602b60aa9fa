package abtest

// VariantResponse назначенный вариант эксперимента
type VariantResponse struct {
	TestID  string `json:"testId"`
	Variant string `json:"variant"`
}

// VariantStats статистика одного варианта
type VariantStats struct {
	Variant        string  `json:"variant"`
	Weight         int     `json:"weight"`
	Impressions    int64   `json:"impressions"`
	Conversions    int64   `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
}

// StatsResponse статистика эксперимента по вариантам
type StatsResponse struct {
	TestID   string         `json:"testId"`
	Name     string         `json:"name"`
	Variants []VariantStats `json:"variants"`
}
