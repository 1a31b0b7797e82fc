package scenario

// Marketplace is the service-marketplace demonstration instance: three
// electricians with capacities 2/2/1 and five clients, preferences chosen
// so that one client has to fall through to its last choice.
func Marketplace() *Scenario {
	return &Scenario{
		Name: "marketplace",
		Providers: []ProviderSpec{
			{ID: "E1", Name: "Premium Electric", Capacity: 2, Prefers: []string{"C2", "C1", "C3", "C4", "C5"}},
			{ID: "E2", Name: "Standard Electric", Capacity: 2, Prefers: []string{"C3", "C5", "C1", "C4", "C2"}},
			{ID: "E3", Name: "Budget Electric", Capacity: 1, Prefers: []string{"C1", "C2", "C5", "C3", "C4"}},
		},
		Clients: []ClientSpec{
			{ID: "C1", Name: "Client 1", Prefers: []string{"E1", "E2", "E3"}},
			{ID: "C2", Name: "Client 2", Prefers: []string{"E1", "E3", "E2"}},
			{ID: "C3", Name: "Client 3", Prefers: []string{"E2", "E1", "E3"}},
			{ID: "C4", Name: "Client 4", Prefers: []string{"E1", "E2", "E3"}},
			{ID: "C5", Name: "Client 5", Prefers: []string{"E2", "E3", "E1"}},
		},
	}
}

// NRMP is a residency-style instance: three hospitals with capacities
// 3/3/2 and eight residents with full preference lists.
func NRMP() *Scenario {
	return &Scenario{
		Name: "nrmp",
		Providers: []ProviderSpec{
			{ID: "H1", Name: "Hospital 1", Capacity: 3, Prefers: []string{"R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8"}},
			{ID: "H2", Name: "Hospital 2", Capacity: 3, Prefers: []string{"R2", "R1", "R4", "R3", "R6", "R5", "R8", "R7"}},
			{ID: "H3", Name: "Hospital 3", Capacity: 2, Prefers: []string{"R3", "R4", "R1", "R2", "R7", "R8", "R5", "R6"}},
		},
		Clients: []ClientSpec{
			{ID: "R1", Name: "Resident 1", Prefers: []string{"H1", "H2", "H3"}},
			{ID: "R2", Name: "Resident 2", Prefers: []string{"H1", "H2", "H3"}},
			{ID: "R3", Name: "Resident 3", Prefers: []string{"H2", "H1", "H3"}},
			{ID: "R4", Name: "Resident 4", Prefers: []string{"H2", "H3", "H1"}},
			{ID: "R5", Name: "Resident 5", Prefers: []string{"H1", "H2", "H3"}},
			{ID: "R6", Name: "Resident 6", Prefers: []string{"H1", "H2", "H3"}},
			{ID: "R7", Name: "Resident 7", Prefers: []string{"H3", "H2", "H1"}},
			{ID: "R8", Name: "Resident 8", Prefers: []string{"H3", "H1", "H2"}},
		},
	}
}

// RuralHospitals is the rural-hospitals-theorem instance: six seats for
// three clients, with identical rankings on both sides, so the least
// popular providers stay under-subscribed in every stable matching.
func RuralHospitals() *Scenario {
	return &Scenario{
		Name: "rural-hospitals",
		Providers: []ProviderSpec{
			{ID: "P1", Name: "Premium", Capacity: 2, Prefers: []string{"C1", "C2", "C3"}},
			{ID: "P2", Name: "Standard", Capacity: 2, Prefers: []string{"C1", "C2", "C3"}},
			{ID: "P3", Name: "Rural", Capacity: 2, Prefers: []string{"C1", "C2", "C3"}},
		},
		Clients: []ClientSpec{
			{ID: "C1", Name: "Client 1", Prefers: []string{"P1", "P2", "P3"}},
			{ID: "C2", Name: "Client 2", Prefers: []string{"P1", "P2", "P3"}},
			{ID: "C3", Name: "Client 3", Prefers: []string{"P1", "P2", "P3"}},
		},
	}
}
