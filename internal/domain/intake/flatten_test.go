package intake

import (
	"strings"
	"testing"
)

func sampleDetail() *PersonDetail {
	return &PersonDetail{
		Person: Person{
			PersonID:       7,
			LegalFirstName: "Ana",
			LegalLastName:  `Reyes "AR"`,
			PreferredName:  strP("Annie"),
		},
		Address: &Address{Street: "12 Oak St", City: "Dayton", Zip: "45402"},
		Application: &Application{
			ApplicationID:      3,
			HasHealthInsurance: false,
			MontgomeryResident: true,
		},
		Intake: &IntakeDetail{
			Intake: Intake{
				IntakeID:             9,
				MainReasonForVisit:   "checkup",
				ImmunizationsCurrent: "dont_know",
			},
			Allergies: []*Allergy{
				{Allergen: strP("penicillin"), Reaction: strP("rash")},
				{Allergen: strP("latex")},
			},
			Medications: []*Medication{
				{DrugName: strP("metformin"), Strength: strP("500mg"), Frequency: strP("2x daily")},
			},
			PastMedicalHistory: []*PastMedHistoryEvent{
				{Type: strP("surgery"), Year: intP(2019), Description: strP("appendectomy"), Hospital: strP("Miami Valley")},
			},
			STIInterest: []*STIInterest{{STI: "gonorrhea"}, {STI: "chlamydia"}},
			FamilyHistory: []*FamilyHistoryDetail{
				{
					FamilyHistory: FamilyHistory{Relation: strP("mother")},
					Problems:      []string{"diabetes", "hypertension"},
				},
				{
					FamilyHistory: FamilyHistory{Relation: strP("father")},
					Problems:      []string{"heart disease"},
				},
			},
		},
	}
}

func fieldValue(t *testing.T, fields []FlatField, name string) string {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("field %q not found", name)
	return ""
}

func TestFlattenSummaries(t *testing.T) {
	fields := FlattenPersonDetail(sampleDetail())

	if got := fieldValue(t, fields, "allergies"); got != "penicillin (rash); latex" {
		t.Errorf("allergies = %q", got)
	}
	if got := fieldValue(t, fields, "medications"); got != "metformin 500mg - 2x daily" {
		t.Errorf("medications = %q", got)
	}
	if got := fieldValue(t, fields, "past_medical_history"); got != "surgery - 2019 - appendectomy - Miami Valley" {
		t.Errorf("past_medical_history = %q", got)
	}
	if got := fieldValue(t, fields, "family_history"); got != "mother: diabetes, hypertension | father: heart disease" {
		t.Errorf("family_history = %q", got)
	}
	if got := fieldValue(t, fields, "sti_interest_list"); got != "gonorrhea, chlamydia" {
		t.Errorf("sti_interest_list = %q", got)
	}
}

func TestFlattenFixedColumnOrder(t *testing.T) {
	fields := FlattenPersonDetail(sampleDetail())

	if fields[0].Name != "person_id" {
		t.Errorf("first column = %q, want person_id", fields[0].Name)
	}
	if fields[len(fields)-1].Name != "family_history" {
		t.Errorf("last column = %q, want family_history", fields[len(fields)-1].Name)
	}

	// Same shape regardless of how much of the form was filled in.
	empty := FlattenPersonDetail(&PersonDetail{Person: Person{PersonID: 1, LegalFirstName: "A", LegalLastName: "B"}})
	if len(empty) != len(fields) {
		t.Errorf("sparse detail has %d columns, full detail has %d", len(empty), len(fields))
	}
	for i := range fields {
		if fields[i].Name != empty[i].Name {
			t.Fatalf("column %d differs: %q vs %q", i, fields[i].Name, empty[i].Name)
		}
	}
}

func TestFlattenMissingSectionsAreBlank(t *testing.T) {
	fields := FlattenPersonDetail(&PersonDetail{Person: Person{PersonID: 1, LegalFirstName: "A", LegalLastName: "B"}})

	if got := fieldValue(t, fields, "application_id"); got != "" {
		t.Errorf("application_id = %q, want empty", got)
	}
	if got := fieldValue(t, fields, "tb_active_tb"); got != "" {
		t.Errorf("tb_active_tb = %q, want empty", got)
	}
	if got := fieldValue(t, fields, "street"); got != "" {
		t.Errorf("street = %q, want empty", got)
	}
}

func TestWriteCSVAlwaysQuotes(t *testing.T) {
	var sb strings.Builder
	err := WriteCSV(&sb, []FlatField{
		{Name: "legal_last_name", Value: `Reyes "AR"`},
		{Name: "city", Value: "Dayton"},
	})
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "\"legal_last_name\",\"city\"\n\"Reyes \"\"AR\"\"\",\"Dayton\"\n"
	if sb.String() != want {
		t.Errorf("csv = %q, want %q", sb.String(), want)
	}
}

func TestWriteCSVRoundTripShape(t *testing.T) {
	fields := FlattenPersonDetail(sampleDetail())
	var sb strings.Builder
	if err := WriteCSV(&sb, fields); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"person_id"`) {
		t.Errorf("header starts with %q", lines[0][:20])
	}
	if !strings.HasPrefix(lines[1], `"7"`) {
		t.Errorf("data row starts with %q", lines[1][:10])
	}
}
