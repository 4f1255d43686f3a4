package roster

import "github.com/nfrund/psyclinic/internal/domain"

// FallbackProfiles is the static set rendered while the live roster loads
// and whenever the backend returns nothing. It is never navigable.
func FallbackProfiles(defaultPhoto string) []domain.Profile {
	spec := func(name string) *domain.Specialization { return &domain.Specialization{Name: name} }
	desc := func(s string) *string { return &s }

	return []domain.Profile{
		{
			Human:              domain.Human{FirstName: "Anna", LastName: "Kowalska"},
			Specialization:     spec("Cognitive behavioural therapy"),
			ProfileDescription: desc("Anxiety, panic and everyday stress in adults."),
			PhotoURL:           defaultPhoto,
		},
		{
			Human:              domain.Human{FirstName: "Piotr", LastName: "Zielinski"},
			Specialization:     spec("Couples therapy"),
			ProfileDescription: desc("Communication and conflict in relationships."),
			PhotoURL:           defaultPhoto,
		},
		{
			Human:              domain.Human{FirstName: "Marta", LastName: "Nowak"},
			Specialization:     spec("Child and adolescent psychology"),
			ProfileDescription: desc("Support for young people and their families."),
			PhotoURL:           defaultPhoto,
		},
	}
}
