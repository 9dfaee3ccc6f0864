package intake

import "time"

// Person is the root identity row every submission hangs off.
type Person struct {
	PersonID       int64     `db:"person_id" json:"person_id"`
	LegalFirstName string    `db:"legal_first_name" json:"legal_first_name"`
	LegalLastName  string    `db:"legal_last_name" json:"legal_last_name"`
	PreferredName  *string   `db:"preferred_name" json:"preferred_name"`
	DateOfBirth    *string   `db:"date_of_birth" json:"date_of_birth"`
	SexAtBirth     *string   `db:"sex_at_birth" json:"sex_at_birth"`
	Phone          *string   `db:"phone" json:"phone"`
	Email          *string   `db:"email" json:"email"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Address struct {
	AddressID int64   `db:"address_id" json:"address_id"`
	PersonID  int64   `db:"person_id" json:"person_id"`
	Street    string  `db:"street" json:"street"`
	City      string  `db:"city" json:"city"`
	State     *string `db:"state" json:"state"`
	Zip       string  `db:"zip" json:"zip"`
}

type EmergencyContact struct {
	ContactID    int64   `db:"contact_id" json:"contact_id"`
	PersonID     int64   `db:"person_id" json:"person_id"`
	Name         *string `db:"name" json:"name"`
	Relationship *string `db:"relationship" json:"relationship"`
	Phone        *string `db:"phone" json:"phone"`
}

// Application is one clinic eligibility application; a person accumulates one
// per visit.
type Application struct {
	ApplicationID      int64     `db:"application_id" json:"application_id"`
	ApplicantID        int64     `db:"applicant_id" json:"applicant_id"`
	HasHealthInsurance bool      `db:"has_health_insurance" json:"has_health_insurance"`
	MontgomeryResident bool      `db:"montgomery_resident" json:"montgomery_resident"`
	Last4SSN           *string   `db:"last4_ssn" json:"last4_ssn"`
	SignatureName      *string   `db:"signature_name" json:"signature_name"`
	SignatureDate      *string   `db:"signature_date" json:"signature_date"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// Intake anchors all clinical sub-records of one submission.
type Intake struct {
	IntakeID             int64     `db:"intake_id" json:"intake_id"`
	ApplicationID        int64     `db:"application_id" json:"application_id"`
	MainReasonForVisit   string    `db:"main_reason_for_visit" json:"main_reason_for_visit"`
	OtherConcerns        *string   `db:"other_concerns" json:"other_concerns"`
	PreferredPharmacy    *string   `db:"preferred_pharmacy" json:"preferred_pharmacy"`
	PharmacyPhone        *string   `db:"pharmacy_phone" json:"pharmacy_phone"`
	ImmunizationsCurrent string    `db:"immunizations_current" json:"immunizations_current"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

type Allergy struct {
	AllergyID int64   `db:"allergy_id" json:"allergy_id"`
	IntakeID  int64   `db:"intake_id" json:"intake_id"`
	Allergen  *string `db:"allergen" json:"allergen"`
	Reaction  *string `db:"reaction" json:"reaction"`
}

type Medication struct {
	MedicationID int64   `db:"medication_id" json:"medication_id"`
	IntakeID     int64   `db:"intake_id" json:"intake_id"`
	DrugName     *string `db:"drug_name" json:"drug_name"`
	Strength     *string `db:"strength" json:"strength"`
	Frequency    *string `db:"frequency" json:"frequency"`
}

type PastMedHistoryEvent struct {
	EventID     int64   `db:"event_id" json:"event_id"`
	IntakeID    int64   `db:"intake_id" json:"intake_id"`
	Type        *string `db:"type" json:"type"`
	Description *string `db:"description" json:"description"`
	Year        *int    `db:"year" json:"year"`
	Hospital    *string `db:"hospital" json:"hospital"`
}

type NutritionHistory struct {
	NutritionID               int64   `db:"nutrition_id" json:"nutrition_id"`
	IntakeID                  int64   `db:"intake_id" json:"intake_id"`
	Dieting                   *string `db:"dieting" json:"dieting"`
	SaltIntake                *string `db:"salt_intake" json:"salt_intake"`
	SugarIntake               *string `db:"sugar_intake" json:"sugar_intake"`
	FruitServingsPerDay       *int    `db:"fruit_servings_per_day" json:"fruit_servings_per_day"`
	VegetableServingsPerDay   *int    `db:"vegetable_servings_per_day" json:"vegetable_servings_per_day"`
	MealsPerDay               *int    `db:"meals_per_day" json:"meals_per_day"`
	WaterPerDay               *int    `db:"water_per_day" json:"water_per_day"`
	OtherFluids               *string `db:"other_fluids" json:"other_fluids"`
	ProteinSources            *string `db:"protein_sources" json:"protein_sources"`
	WeightStability           *string `db:"weight_stability" json:"weight_stability"`
	FoodIntolerancesAllergies *string `db:"food_intolerances_allergies" json:"food_intolerances_allergies"`
	AdditionalNotes           *string `db:"additional_notes" json:"additional_notes"`
}

type SocialHistory struct {
	SocialID              int64   `db:"social_id" json:"social_id"`
	IntakeID              int64   `db:"intake_id" json:"intake_id"`
	CaffeineLevel         *string `db:"caffeine_level" json:"caffeine_level"`
	CaffeineCupsPerDay    *int    `db:"caffeine_cups_per_day" json:"caffeine_cups_per_day"`
	AlcoholUse            *string `db:"alcohol_use" json:"alcohol_use"`
	DrinksPerWeekBeer     *int    `db:"drinks_per_week_beer" json:"drinks_per_week_beer"`
	DrinksPerWeekWine     *int    `db:"drinks_per_week_wine" json:"drinks_per_week_wine"`
	DrinksPerWeekLiquor   *int    `db:"drinks_per_week_liquor" json:"drinks_per_week_liquor"`
	CageCutDown           *bool   `db:"cage_cut_down" json:"cage_cut_down"`
	CageAnnoyed           *bool   `db:"cage_annoyed" json:"cage_annoyed"`
	CageGuilty            *bool   `db:"cage_guilty" json:"cage_guilty"`
	CageEyeOpener         *bool   `db:"cage_eye_opener" json:"cage_eye_opener"`
	TobaccoEver           *bool   `db:"tobacco_ever" json:"tobacco_ever"`
	TobaccoCurrent        *bool   `db:"tobacco_current" json:"tobacco_current"`
	TobaccoStartedAge     *int    `db:"tobacco_started_age" json:"tobacco_started_age"`
	TobaccoQuitYearsAgo   *int    `db:"tobacco_quit_years_ago" json:"tobacco_quit_years_ago"`
	CigarettesPacksPerDay *int    `db:"cigarettes_packs_per_day" json:"cigarettes_packs_per_day"`
	CigarsPerDay          *int    `db:"cigars_per_day" json:"cigars_per_day"`
	ChewPerDay            *int    `db:"chew_per_day" json:"chew_per_day"`
	VapePerDay            *int    `db:"vape_per_day" json:"vape_per_day"`
	DrugsCurrent          *bool   `db:"drugs_current" json:"drugs_current"`
	DrugsListAmounts      *string `db:"drugs_list_amounts" json:"drugs_list_amounts"`
}

type TBScreening struct {
	ScreeningID               int64 `db:"screening_id" json:"screening_id"`
	IntakeID                  int64 `db:"intake_id" json:"intake_id"`
	ActiveTB                  *bool `db:"active_tb" json:"active_tb"`
	CoughGT3Weeks             *bool `db:"cough_gt_3_weeks" json:"cough_gt_3_weeks"`
	CoughProducesBlood        *bool `db:"cough_produces_blood" json:"cough_produces_blood"`
	ExposedToTB               *bool `db:"exposed_to_tb" json:"exposed_to_tb"`
	TraveledOutsideUSAPast12M *bool `db:"traveled_outside_usa_past_12m" json:"traveled_outside_usa_past_12m"`
}

type SexualHistory struct {
	SexualID              int64   `db:"sexual_id" json:"sexual_id"`
	IntakeID              int64   `db:"intake_id" json:"intake_id"`
	SexuallyActive        *bool   `db:"sexually_active" json:"sexually_active"`
	UsesCondom            *bool   `db:"uses_condom" json:"uses_condom"`
	NumberOfSexPartners   *int    `db:"number_of_sex_partners" json:"number_of_sex_partners"`
	CurrentPartnerGender  *string `db:"current_partner_gender" json:"current_partner_gender"`
	ScreenedForSTI        *bool   `db:"screened_for_sti" json:"screened_for_sti"`
	InterestedInSTIScreen *bool   `db:"interested_in_sti_screen" json:"interested_in_sti_screen"`
}

type STIInterest struct {
	STIID    int64  `db:"sti_id" json:"sti_id"`
	IntakeID int64  `db:"intake_id" json:"intake_id"`
	STI      string `db:"sti" json:"sti"`
}

type DentalHistory struct {
	DentalID           int64   `db:"dental_id" json:"dental_id"`
	IntakeID           int64   `db:"intake_id" json:"intake_id"`
	RegularCheckups    *bool   `db:"regular_checkups" json:"regular_checkups"`
	GumsBleed          *bool   `db:"gums_bleed" json:"gums_bleed"`
	PeriodontalDisease *bool   `db:"periodontal_disease" json:"periodontal_disease"`
	GrindTeeth         *bool   `db:"grind_teeth" json:"grind_teeth"`
	WoreBraces         *bool   `db:"wore_braces" json:"wore_braces"`
	CurrentMouthPain   *bool   `db:"current_mouth_pain" json:"current_mouth_pain"`
	BrushingPerDay     *int    `db:"brushing_per_day" json:"brushing_per_day"`
	Floss              *bool   `db:"floss" json:"floss"`
	FlossHowOften      *string `db:"floss_how_often" json:"floss_how_often"`
	FaceMouthTrauma    *bool   `db:"face_mouth_trauma" json:"face_mouth_trauma"`
	TraumaWhen         *string `db:"trauma_when" json:"trauma_when"`
	DenturesPartials   *bool   `db:"dentures_partials" json:"dentures_partials"`
	DenturesAge        *int    `db:"dentures_age" json:"dentures_age"`
	LastExamCleaning   *string `db:"last_exam_cleaning" json:"last_exam_cleaning"`
}

type MaleHistory struct {
	MaleID                 int64 `db:"male_id" json:"male_id"`
	IntakeID               int64 `db:"intake_id" json:"intake_id"`
	PenileDischarge        *bool `db:"penile_discharge" json:"penile_discharge"`
	PenileLesions          *bool `db:"penile_lesions" json:"penile_lesions"`
	ErectionDifficulty     *bool `db:"erection_difficulty" json:"erection_difficulty"`
	TroubleUrinating       *bool `db:"trouble_urinating" json:"trouble_urinating"`
	WakingAtNightToUrinate *bool `db:"waking_at_night_to_urinate" json:"waking_at_night_to_urinate"`
}

type FemaleHistory struct {
	FemaleID                    int64   `db:"female_id" json:"female_id"`
	IntakeID                    int64   `db:"intake_id" json:"intake_id"`
	LastPapDate                 *string `db:"last_pap_date" json:"last_pap_date"`
	PapAbnormal                 *bool   `db:"pap_abnormal" json:"pap_abnormal"`
	LastMammogramDate           *string `db:"last_mammogram_date" json:"last_mammogram_date"`
	MammogramAbnormal           *bool   `db:"mammogram_abnormal" json:"mammogram_abnormal"`
	AgeFirstMenstrualPeriod     *int    `db:"age_first_menstrual_period" json:"age_first_menstrual_period"`
	DateLastMenstrualPeriod     *string `db:"date_last_menstrual_period" json:"date_last_menstrual_period"`
	Pregnancies                 *int    `db:"pregnancies" json:"pregnancies"`
	Births                      *int    `db:"births" json:"births"`
	Abortions                   *int    `db:"abortions" json:"abortions"`
	Miscarriages                *int    `db:"miscarriages" json:"miscarriages"`
	CesareanCount               *int    `db:"cesarean_count" json:"cesarean_count"`
	HeavyPeriods                *bool   `db:"heavy_periods" json:"heavy_periods"`
	BleedingBetweenPeriods      *bool   `db:"bleeding_between_periods" json:"bleeding_between_periods"`
	ExtremeMenstrualPain        *bool   `db:"extreme_menstrual_pain" json:"extreme_menstrual_pain"`
	VaginalItchingBurning       *bool   `db:"vaginal_itching_burning" json:"vaginal_itching_burning"`
	UrineLeak                   *bool   `db:"urine_leak" json:"urine_leak"`
	HotFlashes                  *bool   `db:"hot_flashes" json:"hot_flashes"`
	Menopause                   *bool   `db:"menopause" json:"menopause"`
	BreastLumpOrNippleDischarge *bool   `db:"breast_lump_or_nipple_discharge" json:"breast_lump_or_nipple_discharge"`
	PainfulIntercourse          *bool   `db:"painful_intercourse" json:"painful_intercourse"`
	PartnerUsesCondom           *bool   `db:"partner_uses_condom" json:"partner_uses_condom"`
	OtherBirthControlMethod     *string `db:"other_birth_control_method" json:"other_birth_control_method"`
	WakingAtNightToUrinate      *bool   `db:"waking_at_night_to_urinate" json:"waking_at_night_to_urinate"`
}

type FamilyHistory struct {
	FamHistID int64   `db:"fam_hist_id" json:"fam_hist_id"`
	IntakeID  int64   `db:"intake_id" json:"intake_id"`
	Relation  *string `db:"relation" json:"relation"`
	Alive     *bool   `db:"alive" json:"alive"`
	Age       *int    `db:"age" json:"age"`
}

type FamilyHistoryProblem struct {
	FamHistID int64 `db:"fam_hist_id" json:"fam_hist_id"`
	ProblemID int64 `db:"problem_id" json:"problem_id"`
}

type FamilyProblemLookup struct {
	ProblemID int64  `db:"problem_id" json:"problem_id"`
	Name      string `db:"name" json:"name"`
}

// PersonSummary is the roster row on the staff patients list.
type PersonSummary struct {
	Person
	Street             *string `json:"street"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	Zip                *string `json:"zip"`
	HasHealthInsurance *bool   `json:"has_health_insurance"`
}

// FamilyHistoryDetail pairs a family member row with its resolved problem names.
type FamilyHistoryDetail struct {
	FamilyHistory
	Problems []string `json:"problems"`
}

// IntakeDetail is one intake with every child section loaded. Optional 1:1
// sections are nil when the patient never reached that part of the form.
type IntakeDetail struct {
	Intake
	Allergies          []*Allergy             `json:"allergies"`
	Medications        []*Medication          `json:"medications"`
	PastMedicalHistory []*PastMedHistoryEvent `json:"past_med_history_events"`
	Nutrition          *NutritionHistory      `json:"nutrition_history"`
	Social             *SocialHistory         `json:"social_history"`
	TBScreening        *TBScreening           `json:"tb_screening"`
	Sexual             *SexualHistory         `json:"sexual_history"`
	STIInterest        []*STIInterest         `json:"sti_interest"`
	Dental             *DentalHistory         `json:"dental_history"`
	Male               *MaleHistory           `json:"male_history"`
	Female             *FemaleHistory         `json:"female_history"`
	FamilyHistory      []*FamilyHistoryDetail `json:"family_history"`
}

// PersonDetail is the nested read shape behind the patient detail page:
// identity plus the latest application and its latest intake.
type PersonDetail struct {
	Person            Person              `json:"person"`
	Address           *Address            `json:"address"`
	EmergencyContacts []*EmergencyContact `json:"emergency_contacts"`
	Application       *Application        `json:"application"`
	Intake            *IntakeDetail       `json:"intake"`
}

// ApplicationWithIntakes is one entry of the full submission history.
type ApplicationWithIntakes struct {
	Application
	Intakes []*Intake `json:"intakes"`
}
