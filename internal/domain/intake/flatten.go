package intake

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FlatField is one named cell of the flattened export row. Order matters:
// the CSV columns come out exactly as the fields are appended.
type FlatField struct {
	Name  string
	Value string
}

type flatRow struct {
	fields []FlatField
}

func (r *flatRow) add(name, value string) {
	r.fields = append(r.fields, FlatField{Name: name, Value: value})
}

func fmtStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func fmtInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// FlattenPersonDetail collapses the nested detail shape into one flat record
// with a fixed column order, ready for spreadsheet export. List sections are
// rendered as the summary strings staff are used to reading.
func FlattenPersonDetail(d *PersonDetail) []FlatField {
	r := &flatRow{}

	p := d.Person
	r.add("person_id", strconv.FormatInt(p.PersonID, 10))
	r.add("legal_first_name", p.LegalFirstName)
	r.add("legal_last_name", p.LegalLastName)
	r.add("preferred_name", fmtStr(p.PreferredName))
	r.add("date_of_birth", fmtStr(p.DateOfBirth))
	r.add("sex_at_birth", fmtStr(p.SexAtBirth))
	r.add("phone", fmtStr(p.Phone))
	r.add("email", fmtStr(p.Email))

	if a := d.Address; a != nil {
		r.add("street", a.Street)
		r.add("city", a.City)
		r.add("state", fmtStr(a.State))
		r.add("zip", a.Zip)
	} else {
		r.add("street", "")
		r.add("city", "")
		r.add("state", "")
		r.add("zip", "")
	}

	r.add("emergency_contacts", summarizeContacts(d.EmergencyContacts))

	if app := d.Application; app != nil {
		r.add("application_id", strconv.FormatInt(app.ApplicationID, 10))
		r.add("has_health_insurance", strconv.FormatBool(app.HasHealthInsurance))
		r.add("montgomery_resident", strconv.FormatBool(app.MontgomeryResident))
		r.add("last4_ssn", fmtStr(app.Last4SSN))
		r.add("signature_name", fmtStr(app.SignatureName))
		r.add("signature_date", fmtStr(app.SignatureDate))
	} else {
		for _, name := range []string{"application_id", "has_health_insurance",
			"montgomery_resident", "last4_ssn", "signature_name", "signature_date"} {
			r.add(name, "")
		}
	}

	flattenIntake(r, d.Intake)
	return r.fields
}

func flattenIntake(r *flatRow, in *IntakeDetail) {
	if in == nil {
		in = &IntakeDetail{}
		r.add("intake_id", "")
	} else {
		r.add("intake_id", strconv.FormatInt(in.IntakeID, 10))
	}
	r.add("main_reason_for_visit", in.MainReasonForVisit)
	r.add("other_concerns", fmtStr(in.OtherConcerns))
	r.add("preferred_pharmacy", fmtStr(in.PreferredPharmacy))
	r.add("pharmacy_phone", fmtStr(in.PharmacyPhone))
	r.add("immunizations_current", in.ImmunizationsCurrent)

	r.add("allergies", summarizeAllergies(in.Allergies))
	r.add("medications", summarizeMedications(in.Medications))
	r.add("past_medical_history", summarizePastEvents(in.PastMedicalHistory))

	n := in.Nutrition
	if n == nil {
		n = &NutritionHistory{}
	}
	r.add("nutrition_dieting", fmtStr(n.Dieting))
	r.add("nutrition_salt_intake", fmtStr(n.SaltIntake))
	r.add("nutrition_sugar_intake", fmtStr(n.SugarIntake))
	r.add("nutrition_fruit_servings_per_day", fmtInt(n.FruitServingsPerDay))
	r.add("nutrition_vegetable_servings_per_day", fmtInt(n.VegetableServingsPerDay))
	r.add("nutrition_meals_per_day", fmtInt(n.MealsPerDay))
	r.add("nutrition_water_per_day", fmtInt(n.WaterPerDay))
	r.add("nutrition_other_fluids", fmtStr(n.OtherFluids))
	r.add("nutrition_protein_sources", fmtStr(n.ProteinSources))
	r.add("nutrition_weight_stability", fmtStr(n.WeightStability))
	r.add("nutrition_food_intolerances_allergies", fmtStr(n.FoodIntolerancesAllergies))
	r.add("nutrition_additional_notes", fmtStr(n.AdditionalNotes))

	s := in.Social
	if s == nil {
		s = &SocialHistory{}
	}
	r.add("social_caffeine_level", fmtStr(s.CaffeineLevel))
	r.add("social_caffeine_cups_per_day", fmtInt(s.CaffeineCupsPerDay))
	r.add("social_alcohol_use", fmtStr(s.AlcoholUse))
	r.add("social_drinks_per_week_beer", fmtInt(s.DrinksPerWeekBeer))
	r.add("social_drinks_per_week_wine", fmtInt(s.DrinksPerWeekWine))
	r.add("social_drinks_per_week_liquor", fmtInt(s.DrinksPerWeekLiquor))
	r.add("social_cage_cut_down", fmtBool(s.CageCutDown))
	r.add("social_cage_annoyed", fmtBool(s.CageAnnoyed))
	r.add("social_cage_guilty", fmtBool(s.CageGuilty))
	r.add("social_cage_eye_opener", fmtBool(s.CageEyeOpener))
	r.add("social_tobacco_ever", fmtBool(s.TobaccoEver))
	r.add("social_tobacco_current", fmtBool(s.TobaccoCurrent))
	r.add("social_tobacco_started_age", fmtInt(s.TobaccoStartedAge))
	r.add("social_tobacco_quit_years_ago", fmtInt(s.TobaccoQuitYearsAgo))
	r.add("social_cigarettes_packs_per_day", fmtInt(s.CigarettesPacksPerDay))
	r.add("social_cigars_per_day", fmtInt(s.CigarsPerDay))
	r.add("social_chew_per_day", fmtInt(s.ChewPerDay))
	r.add("social_vape_per_day", fmtInt(s.VapePerDay))
	r.add("social_drugs_current", fmtBool(s.DrugsCurrent))
	r.add("social_drugs_list_amounts", fmtStr(s.DrugsListAmounts))

	de := in.Dental
	if de == nil {
		de = &DentalHistory{}
	}
	r.add("dental_regular_checkups", fmtBool(de.RegularCheckups))
	r.add("dental_gums_bleed", fmtBool(de.GumsBleed))
	r.add("dental_periodontal_disease", fmtBool(de.PeriodontalDisease))
	r.add("dental_grind_teeth", fmtBool(de.GrindTeeth))
	r.add("dental_wore_braces", fmtBool(de.WoreBraces))
	r.add("dental_current_mouth_pain", fmtBool(de.CurrentMouthPain))
	r.add("dental_brushing_per_day", fmtInt(de.BrushingPerDay))
	r.add("dental_floss", fmtBool(de.Floss))
	r.add("dental_floss_how_often", fmtStr(de.FlossHowOften))
	r.add("dental_face_mouth_trauma", fmtBool(de.FaceMouthTrauma))
	r.add("dental_trauma_when", fmtStr(de.TraumaWhen))
	r.add("dental_dentures_partials", fmtBool(de.DenturesPartials))
	r.add("dental_dentures_age", fmtInt(de.DenturesAge))
	r.add("dental_last_exam_cleaning", fmtStr(de.LastExamCleaning))

	tb := in.TBScreening
	if tb == nil {
		tb = &TBScreening{}
	}
	r.add("tb_active_tb", fmtBool(tb.ActiveTB))
	r.add("tb_cough_gt_3_weeks", fmtBool(tb.CoughGT3Weeks))
	r.add("tb_cough_produces_blood", fmtBool(tb.CoughProducesBlood))
	r.add("tb_exposed_to_tb", fmtBool(tb.ExposedToTB))
	r.add("tb_traveled_outside_usa_past_12m", fmtBool(tb.TraveledOutsideUSAPast12M))

	m := in.Male
	if m == nil {
		m = &MaleHistory{}
	}
	r.add("male_penile_discharge", fmtBool(m.PenileDischarge))
	r.add("male_penile_lesions", fmtBool(m.PenileLesions))
	r.add("male_erection_difficulty", fmtBool(m.ErectionDifficulty))
	r.add("male_trouble_urinating", fmtBool(m.TroubleUrinating))
	r.add("male_waking_at_night_to_urinate", fmtBool(m.WakingAtNightToUrinate))

	f := in.Female
	if f == nil {
		f = &FemaleHistory{}
	}
	r.add("female_last_pap_date", fmtStr(f.LastPapDate))
	r.add("female_pap_abnormal", fmtBool(f.PapAbnormal))
	r.add("female_last_mammogram_date", fmtStr(f.LastMammogramDate))
	r.add("female_mammogram_abnormal", fmtBool(f.MammogramAbnormal))
	r.add("female_age_first_menstrual_period", fmtInt(f.AgeFirstMenstrualPeriod))
	r.add("female_date_last_menstrual_period", fmtStr(f.DateLastMenstrualPeriod))
	r.add("female_pregnancies", fmtInt(f.Pregnancies))
	r.add("female_births", fmtInt(f.Births))
	r.add("female_abortions", fmtInt(f.Abortions))
	r.add("female_miscarriages", fmtInt(f.Miscarriages))
	r.add("female_cesarean_count", fmtInt(f.CesareanCount))
	r.add("female_heavy_periods", fmtBool(f.HeavyPeriods))
	r.add("female_bleeding_between_periods", fmtBool(f.BleedingBetweenPeriods))
	r.add("female_extreme_menstrual_pain", fmtBool(f.ExtremeMenstrualPain))
	r.add("female_vaginal_itching_burning", fmtBool(f.VaginalItchingBurning))
	r.add("female_urine_leak", fmtBool(f.UrineLeak))
	r.add("female_hot_flashes", fmtBool(f.HotFlashes))
	r.add("female_menopause", fmtBool(f.Menopause))
	r.add("female_breast_lump_or_nipple_discharge", fmtBool(f.BreastLumpOrNippleDischarge))
	r.add("female_painful_intercourse", fmtBool(f.PainfulIntercourse))
	r.add("female_partner_uses_condom", fmtBool(f.PartnerUsesCondom))
	r.add("female_other_birth_control_method", fmtStr(f.OtherBirthControlMethod))
	r.add("female_waking_at_night_to_urinate", fmtBool(f.WakingAtNightToUrinate))

	sx := in.Sexual
	if sx == nil {
		sx = &SexualHistory{}
	}
	r.add("sexual_sexually_active", fmtBool(sx.SexuallyActive))
	r.add("sexual_uses_condom", fmtBool(sx.UsesCondom))
	r.add("sexual_number_of_sex_partners", fmtInt(sx.NumberOfSexPartners))
	r.add("sexual_current_partner_gender", fmtStr(sx.CurrentPartnerGender))
	r.add("sexual_screened_for_sti", fmtBool(sx.ScreenedForSTI))
	r.add("sexual_interested_in_sti_screen", fmtBool(sx.InterestedInSTIScreen))

	r.add("sti_interest_list", summarizeSTIInterest(in.STIInterest))
	r.add("family_history", summarizeFamilyHistory(in.FamilyHistory))
}

func summarizeContacts(contacts []*EmergencyContact) string {
	parts := make([]string, 0, len(contacts))
	for _, c := range contacts {
		seg := fmtStr(c.Name)
		if rel := fmtStr(c.Relationship); rel != "" {
			seg += " (" + rel + ")"
		}
		if ph := fmtStr(c.Phone); ph != "" {
			seg += " " + ph
		}
		parts = append(parts, strings.TrimSpace(seg))
	}
	return strings.Join(parts, "; ")
}

func summarizeAllergies(allergies []*Allergy) string {
	parts := make([]string, 0, len(allergies))
	for _, a := range allergies {
		seg := fmtStr(a.Allergen)
		if re := fmtStr(a.Reaction); re != "" {
			seg += " (" + re + ")"
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "; ")
}

func summarizeMedications(meds []*Medication) string {
	parts := make([]string, 0, len(meds))
	for _, m := range meds {
		seg := fmtStr(m.DrugName)
		if st := fmtStr(m.Strength); st != "" {
			seg += " " + st
		}
		if fr := fmtStr(m.Frequency); fr != "" {
			seg += " - " + fr
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "; ")
}

func summarizePastEvents(events []*PastMedHistoryEvent) string {
	parts := make([]string, 0, len(events))
	for _, e := range events {
		year := ""
		if e.Year != nil {
			year = strconv.Itoa(*e.Year)
		}
		parts = append(parts, fmt.Sprintf("%s - %s - %s - %s",
			fmtStr(e.Type), year, fmtStr(e.Description), fmtStr(e.Hospital)))
	}
	return strings.Join(parts, " | ")
}

func summarizeFamilyHistory(members []*FamilyHistoryDetail) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, fmt.Sprintf("%s: %s",
			fmtStr(m.Relation), strings.Join(m.Problems, ", ")))
	}
	return strings.Join(parts, " | ")
}

func summarizeSTIInterest(items []*STIInterest) string {
	parts := make([]string, 0, len(items))
	for _, s := range items {
		parts = append(parts, s.STI)
	}
	return strings.Join(parts, ", ")
}

// WriteCSV renders the flat record as a two-line CSV: header then values.
// Every field is quoted with inner quotes doubled, matching the export the
// clinic's spreadsheets were built around; encoding/csv quotes only when it
// must, which would change the byte format.
func WriteCSV(w io.Writer, fields []FlatField) error {
	names := make([]string, len(fields))
	values := make([]string, len(fields))
	for i, f := range fields {
		names[i] = csvQuote(f.Name)
		values[i] = csvQuote(f.Value)
	}
	if _, err := io.WriteString(w, strings.Join(names, ",")+"\n"); err != nil {
		return err
	}
	_, err := io.WriteString(w, strings.Join(values, ",")+"\n")
	return err
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
