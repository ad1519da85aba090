package activity

import "time"

// Activity is an academic activity as the functional core sees it.
type Activity struct {
	ID          string
	Name        string
	Responsible string
	EndDate     time.Time
	Description string
	Type        Type
}

// Patch holds the fields of an edit. Nil fields are left untouched.
// The ID is not patchable.
type Patch struct {
	Name        *string
	Responsible *string
	EndDate     *time.Time
	Description *string
	Type        *Type
}

// CalendarDay returns UTC midnight of t's calendar day, read in t's own location.
// End dates are stored at day precision, so every end date passes through here.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ApplyPatch returns a copy of a with the fields present in p overwritten.
func ApplyPatch(a Activity, p Patch) Activity {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Responsible != nil {
		a.Responsible = *p.Responsible
	}
	if p.EndDate != nil {
		a.EndDate = *p.EndDate
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	return a
}

// Seed returns the default activities written to an empty store.
func Seed() []Activity {
	return []Activity{
		{
			ID:          "1",
			Name:        "Pesquisa sobre IA",
			Responsible: "Tiago",
			EndDate:     time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
			Description: "Projeto de pesquisa sobre inteligência artificial aplicada.",
			Type:        TypeResearch,
		},
		{
			ID:          "2",
			Name:        "Curso de Programação",
			Responsible: "Elmano",
			EndDate:     time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC),
			Description: "Curso introdutório de programação para iniciantes.",
			Type:        TypeTeaching,
		},
		{
			ID:          "3",
			Name:        "Projeto Social",
			Responsible: "Jermana",
			EndDate:     time.Date(2025, time.September, 25, 0, 0, 0, 0, time.UTC),
			Description: "Atividade de extensão para suporte educacional comunitário.",
			Type:        TypeOutreach,
		},
	}
}
