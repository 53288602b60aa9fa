package domain

// Variant вариант A/B-эксперимента с весом распределения
type Variant struct {
	Name   string
	Weight int
}

// Experiment A/B-эксперимент, описанный в конфиге
type Experiment struct {
	ID       string
	Name     string
	Variants []Variant
}

// TotalWeight суммарный вес вариантов эксперимента
func (e *Experiment) TotalWeight() int {
	total := 0
	for _, v := range e.Variants {
		total += v.Weight
	}
	return total
}
