package intake

// Submission is the full intake form as the client composed it across tabs,
// submitted once as a single snapshot. JSON keys keep the legacy field
// vocabulary so the existing front end maps onto it 1:1.
type Submission struct {
	Basic     BasicInfoTab      `json:"basic_info"`
	Health    HealthHistoryTab  `json:"health_history"`
	Medical   MedicalHistoryTab `json:"medical_history"`
	Family    FamilyTab         `json:"family_history"`
	Lifestyle LifestyleTab      `json:"lifestyle"`
}

type EmergencyContactInput struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// BasicInfoTab covers identity, address, eligibility and the signature block.
type BasicInfoTab struct {
	LegalFirstName     string `json:"legal_first_name"`
	LegalLastName      string `json:"legal_last_name"`
	PreferredName      string `json:"preferred_name"`
	DateOfBirth        string `json:"date_of_birth"`
	SexAtBirth         string `json:"sex_at_birth"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Street             string `json:"street"`
	City               string `json:"city"`
	State              string `json:"state"`
	Zip                string `json:"zip"`
	HasHealthInsurance *bool  `json:"has_health_insurance"`
	MontgomeryResident *bool  `json:"montgomery_resident"`
	Last4SSN           string `json:"last4_ssn"`
	SignatureName      string `json:"signature_name"`
	SignatureDate      string `json:"signature_date"`

	EmergencyContacts []EmergencyContactInput `json:"emergency_contacts"`
}

type AllergyInput struct {
	Allergen string `json:"allergen"`
	Reaction string `json:"reaction"`
}

type MedicationInput struct {
	DrugName  string `json:"drug_name"`
	Strength  string `json:"strength"`
	Frequency string `json:"frequency"`
}

// HealthHistoryTab covers the visit reason, pharmacy, current medications
// and allergies.
type HealthHistoryTab struct {
	MainReasonForVisit   string `json:"main_reason_for_visit"`
	OtherConcerns        string `json:"other_concerns"`
	PreferredPharmacy    string `json:"preferred_pharmacy"`
	PharmacyPhone        string `json:"pharmacy_phone"`
	ImmunizationsCurrent string `json:"immunizations_current"`

	Allergies   []AllergyInput    `json:"allergies"`
	Medications []MedicationInput `json:"medications"`
}

type PastEventInput struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Hospital    string `json:"hospital"`
}

// MedicalHistoryTab covers past events, TB screening, and the sex-specific
// review-of-systems checklists. Checkbox flags arrive as booleans; yes/no
// radio groups arrive as "yes"/"no"/"" strings.
type MedicalHistoryTab struct {
	PastMedHistoryEvents []PastEventInput `json:"past_med_history_events"`

	// TB screening (yes/no)
	Tuberculosis    string `json:"tuberculosis"`
	PersistentCough string `json:"persistent_cough"`
	BloodyMucus     string `json:"bloody_mucus"`
	ExposedTB       string `json:"exposed_tb"`
	TraveledUSA     string `json:"traveled_usa"`

	// Male review of systems (checkboxes)
	MalePenileDischarge    bool `json:"male_penile_discharge"`
	MalePenileLesions      bool `json:"male_penile_lesions"`
	MaleErectionDifficulty bool `json:"male_erection_difficulty"`
	MaleTroubleUrinating   bool `json:"male_trouble_urinating"`
	MaleWakingToUrinate    bool `json:"male_waking_to_urinate"`

	// Female history: dates and counts as typed text, symptoms as
	// checkboxes, screening outcomes as yes/no.
	FemaleLastPapDate             string `json:"female_last_pap_date"`
	FemalePapAbnormal             string `json:"female_pap_abnormal"`
	FemaleLastMammogramDate       string `json:"female_last_mammogram_date"`
	FemaleMammogramAbnormal       string `json:"female_mammogram_abnormal"`
	FemaleAgeFirstPeriod          string `json:"female_age_first_period"`
	FemaleDateLastPeriod          string `json:"female_date_last_period"`
	FemalePregnancies             string `json:"female_pregnancies"`
	FemaleBirths                  string `json:"female_births"`
	FemaleAbortions               string `json:"female_abortions"`
	FemaleMiscarriages            string `json:"female_miscarriages"`
	FemaleCesareanCount           string `json:"female_cesarean_count"`
	FemaleHeavyPeriods            bool   `json:"female_heavy_periods"`
	FemaleBleedingBetweenPeriods  bool   `json:"female_bleeding_between_periods"`
	FemaleExtremeMenstrualPain    bool   `json:"female_extreme_menstrual_pain"`
	FemaleVaginalItchingBurning   bool   `json:"female_vaginal_itching_burning"`
	FemaleUrineLeak               bool   `json:"female_urine_leak"`
	FemaleHotFlashes              bool   `json:"female_hot_flashes"`
	FemaleMenopause               string `json:"female_menopause"`
	FemaleBreastLump              bool   `json:"female_breast_lump"`
	FemalePainfulIntercourse      bool   `json:"female_painful_intercourse"`
	FemalePartnerUsesCondom       string `json:"female_partner_uses_condom"`
	FemaleOtherBirthControl       string `json:"female_other_birth_control"`
	FemaleWakingToUrinate         bool   `json:"female_waking_to_urinate"`
}

type FamilyEntryInput struct {
	Relation string   `json:"relation"`
	Alive    string   `json:"alive"`
	Age      string   `json:"age"`
	Problems []string `json:"problems"`
}

// FamilyTab covers the family history grid plus the dental and sexual
// history sections that share its form page.
type FamilyTab struct {
	Entries []FamilyEntryInput `json:"entries"`

	// Dental (yes/no + typed text)
	RegularCheckups string `json:"regular_checkups"`
	GumsBleed       string `json:"gums_bleed"`
	Periodontal     string `json:"periodontal_disease"`
	GrindTeeth      string `json:"grind_teeth"`
	WoreBraces      string `json:"wore_braces"`
	MouthPain       string `json:"current_mouth_pain"`
	BrushFrequency  string `json:"brush_frequency"`
	LastCleaning    string `json:"last_cleaning"`

	// Sexual history
	SexuallyActive       string   `json:"sexually_active"`
	UsesCondom           string   `json:"uses_condom"`
	SexPartnersTotal     string   `json:"sex_partners_total"`
	CurrentPartnerGender string   `json:"current_partner_gender"`
	ScreenedForSTI       string   `json:"screened_for_sti"`
	STIInterest          []string `json:"sti_interest"`
}

// LifestyleTab covers caffeine, alcohol (with the CAGE screen), tobacco,
// drugs and nutrition.
type LifestyleTab struct {
	Caffeine   string `json:"caffeine"`
	CupsPerDay string `json:"cups_per_day"`

	AlcoholUse   string `json:"alcohol_use"`
	DrinksBeer   string `json:"drinks_beer"`
	DrinksWine   string `json:"drinks_wine"`
	DrinksLiquor string `json:"drinks_liquor"`
	CageCutDown  string `json:"cage_cut_down"`
	CageAnnoyed  string `json:"cage_annoyed"`
	CageGuilty   string `json:"cage_guilty"`
	CageMorning  string `json:"cage_morning"`

	TobaccoUse      string `json:"tobacco_use"`
	TobaccoEver     string `json:"tobacco_ever"`
	SmokingStartAge string `json:"smoking_start_age"`
	YearsSinceQuit  string `json:"years_since_quit"`
	Cigarettes      string `json:"cigarettes"`
	Cigars          string `json:"cigars"`
	Chew            string `json:"chew"`

	DrugUse  string `json:"drug_use"`
	DrugList string `json:"drug_list"`

	Dieting                   string `json:"dieting"`
	SaltIntake                string `json:"salt_intake"`
	SugarIntake               string `json:"sugar_intake"`
	FruitServingsPerDay       string `json:"fruit_servings_per_day"`
	VegetableServingsPerDay   string `json:"vegetable_servings_per_day"`
	MealsPerDay               string `json:"meals_per_day"`
	WaterPerDay               string `json:"water_per_day"`
	OtherFluids               string `json:"other_fluids"`
	ProteinSources            string `json:"protein_sources"`
	WeightStability           string `json:"weight_stability"`
	FoodIntolerancesAllergies string `json:"food_intolerances_allergies"`
	AdditionalNotes           string `json:"additional_notes"`
}

// SubmissionResult reports the ids the pipeline threaded through plus any
// family problem keys it could not resolve against the lookup table.
type SubmissionResult struct {
	PersonID        int64    `json:"person_id"`
	ApplicationID   int64    `json:"application_id"`
	IntakeID        int64    `json:"intake_id"`
	SkippedProblems []string `json:"skipped_problems"`
}
