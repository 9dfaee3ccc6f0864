package intake

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/intake/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.WithTx(ctx, r.pool, fn)
}

// optional turns pgx.ErrNoRows into (nil, nil) for 1:1 sections the patient
// may never have filled in.
func noRowsNil(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

// =========== Person / Address / EmergencyContact ===========

const personCols = `person_id, legal_first_name, legal_last_name, preferred_name,
	date_of_birth, sex_at_birth, phone, email, created_at`

func scanPerson(row pgx.Row) (*Person, error) {
	var p Person
	err := row.Scan(&p.PersonID, &p.LegalFirstName, &p.LegalLastName, &p.PreferredName,
		&p.DateOfBirth, &p.SexAtBirth, &p.Phone, &p.Email, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) CreatePerson(ctx context.Context, p *Person) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO person (legal_first_name, legal_last_name, preferred_name,
			date_of_birth, sex_at_birth, phone, email)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING person_id, created_at`,
		p.LegalFirstName, p.LegalLastName, p.PreferredName,
		p.DateOfBirth, p.SexAtBirth, p.Phone, p.Email).
		Scan(&p.PersonID, &p.CreatedAt)
}

func (r *repoPG) GetPerson(ctx context.Context, personID int64) (*Person, error) {
	return scanPerson(r.conn(ctx).QueryRow(ctx,
		`SELECT `+personCols+` FROM person WHERE person_id = $1`, personID))
}

func (r *repoPG) CreateAddress(ctx context.Context, a *Address) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO address (person_id, street, city, state, zip)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING address_id`,
		a.PersonID, a.Street, a.City, a.State, a.Zip).
		Scan(&a.AddressID)
}

func (r *repoPG) ListAddresses(ctx context.Context, personID int64) ([]*Address, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT address_id, person_id, street, city, state, zip
		FROM address WHERE person_id = $1 ORDER BY address_id`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.AddressID, &a.PersonID, &a.Street, &a.City, &a.State, &a.Zip); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *repoPG) CreateEmergencyContact(ctx context.Context, ec *EmergencyContact) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO emergency_contact (person_id, name, relationship, phone)
		VALUES ($1,$2,$3,$4)
		RETURNING contact_id`,
		ec.PersonID, ec.Name, ec.Relationship, ec.Phone).
		Scan(&ec.ContactID)
}

func (r *repoPG) ListEmergencyContacts(ctx context.Context, personID int64) ([]*EmergencyContact, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT contact_id, person_id, name, relationship, phone
		FROM emergency_contact WHERE person_id = $1 ORDER BY contact_id`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*EmergencyContact
	for rows.Next() {
		var ec EmergencyContact
		if err := rows.Scan(&ec.ContactID, &ec.PersonID, &ec.Name, &ec.Relationship, &ec.Phone); err != nil {
			return nil, err
		}
		items = append(items, &ec)
	}
	return items, rows.Err()
}

// =========== Application / Intake ===========

const applicationCols = `application_id, applicant_id, has_health_insurance,
	montgomery_resident, last4_ssn, signature_name, signature_date, created_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ApplicationID, &a.ApplicantID, &a.HasHealthInsurance,
		&a.MontgomeryResident, &a.Last4SSN, &a.SignatureName, &a.SignatureDate, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) CreateApplication(ctx context.Context, app *Application) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO application (applicant_id, has_health_insurance,
			montgomery_resident, last4_ssn, signature_name, signature_date)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING application_id, created_at`,
		app.ApplicantID, app.HasHealthInsurance, app.MontgomeryResident,
		app.Last4SSN, app.SignatureName, app.SignatureDate).
		Scan(&app.ApplicationID, &app.CreatedAt)
}

func (r *repoPG) ListApplications(ctx context.Context, personID int64) ([]*Application, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+applicationCols+` FROM application WHERE applicant_id = $1 ORDER BY application_id`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

const intakeCols = `intake_id, application_id, main_reason_for_visit, other_concerns,
	preferred_pharmacy, pharmacy_phone, immunizations_current, created_at`

func scanIntake(row pgx.Row) (*Intake, error) {
	var in Intake
	err := row.Scan(&in.IntakeID, &in.ApplicationID, &in.MainReasonForVisit, &in.OtherConcerns,
		&in.PreferredPharmacy, &in.PharmacyPhone, &in.ImmunizationsCurrent, &in.CreatedAt)
	return &in, err
}

func (r *repoPG) CreateIntake(ctx context.Context, in *Intake) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO intake (application_id, main_reason_for_visit, other_concerns,
			preferred_pharmacy, pharmacy_phone, immunizations_current)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING intake_id, created_at`,
		in.ApplicationID, in.MainReasonForVisit, in.OtherConcerns,
		in.PreferredPharmacy, in.PharmacyPhone, in.ImmunizationsCurrent).
		Scan(&in.IntakeID, &in.CreatedAt)
}

func (r *repoPG) ListIntakes(ctx context.Context, applicationID int64) ([]*Intake, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+intakeCols+` FROM intake WHERE application_id = $1 ORDER BY intake_id`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Intake
	for rows.Next() {
		in, err := scanIntake(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, in)
	}
	return items, rows.Err()
}

// =========== Intake list children ===========

func (r *repoPG) CreateAllergy(ctx context.Context, a *Allergy) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO allergy (intake_id, allergen, reaction)
		VALUES ($1,$2,$3) RETURNING allergy_id`,
		a.IntakeID, a.Allergen, a.Reaction).Scan(&a.AllergyID)
}

func (r *repoPG) ListAllergies(ctx context.Context, intakeID int64) ([]*Allergy, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT allergy_id, intake_id, allergen, reaction
		FROM allergy WHERE intake_id = $1 ORDER BY allergy_id`, intakeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Allergy
	for rows.Next() {
		var a Allergy
		if err := rows.Scan(&a.AllergyID, &a.IntakeID, &a.Allergen, &a.Reaction); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *repoPG) CreateMedication(ctx context.Context, m *Medication) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medication (intake_id, drug_name, strength, frequency)
		VALUES ($1,$2,$3,$4) RETURNING medication_id`,
		m.IntakeID, m.DrugName, m.Strength, m.Frequency).Scan(&m.MedicationID)
}

func (r *repoPG) ListMedications(ctx context.Context, intakeID int64) ([]*Medication, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT medication_id, intake_id, drug_name, strength, frequency
		FROM medication WHERE intake_id = $1 ORDER BY medication_id`, intakeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		var m Medication
		if err := rows.Scan(&m.MedicationID, &m.IntakeID, &m.DrugName, &m.Strength, &m.Frequency); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

func (r *repoPG) CreatePastMedHistoryEvent(ctx context.Context, e *PastMedHistoryEvent) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO past_med_history_event (intake_id, type, description, year, hospital)
		VALUES ($1,$2,$3,$4,$5) RETURNING event_id`,
		e.IntakeID, e.Type, e.Description, e.Year, e.Hospital).Scan(&e.EventID)
}

func (r *repoPG) ListPastMedHistoryEvents(ctx context.Context, intakeID int64) ([]*PastMedHistoryEvent, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT event_id, intake_id, type, description, year, hospital
		FROM past_med_history_event WHERE intake_id = $1 ORDER BY event_id`, intakeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*PastMedHistoryEvent
	for rows.Next() {
		var e PastMedHistoryEvent
		if err := rows.Scan(&e.EventID, &e.IntakeID, &e.Type, &e.Description, &e.Year, &e.Hospital); err != nil {
			return nil, err
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}

// =========== Intake 1:1 children ===========

func (r *repoPG) CreateNutritionHistory(ctx context.Context, n *NutritionHistory) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO nutrition_history (intake_id, dieting, salt_intake, sugar_intake,
			fruit_servings_per_day, vegetable_servings_per_day, meals_per_day,
			water_per_day, other_fluids, protein_sources, weight_stability,
			food_intolerances_allergies, additional_notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING nutrition_id`,
		n.IntakeID, n.Dieting, n.SaltIntake, n.SugarIntake,
		n.FruitServingsPerDay, n.VegetableServingsPerDay, n.MealsPerDay,
		n.WaterPerDay, n.OtherFluids, n.ProteinSources, n.WeightStability,
		n.FoodIntolerancesAllergies, n.AdditionalNotes).Scan(&n.NutritionID)
}

func (r *repoPG) GetNutritionHistory(ctx context.Context, intakeID int64) (*NutritionHistory, error) {
	var n NutritionHistory
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT nutrition_id, intake_id, dieting, salt_intake, sugar_intake,
			fruit_servings_per_day, vegetable_servings_per_day, meals_per_day,
			water_per_day, other_fluids, protein_sources, weight_stability,
			food_intolerances_allergies, additional_notes
		FROM nutrition_history WHERE intake_id = $1`, intakeID).
		Scan(&n.NutritionID, &n.IntakeID, &n.Dieting, &n.SaltIntake, &n.SugarIntake,
			&n.FruitServingsPerDay, &n.VegetableServingsPerDay, &n.MealsPerDay,
			&n.WaterPerDay, &n.OtherFluids, &n.ProteinSources, &n.WeightStability,
			&n.FoodIntolerancesAllergies, &n.AdditionalNotes)
	if err != nil {
		return nil, noRowsNil(err)
	}
	return &n, nil
}

func (r *repoPG) CreateSocialHistory(ctx context.Context, s *SocialHistory) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO social_history (intake_id, caffeine_level, caffeine_cups_per_day,
			alcohol_use, drinks_per_week_beer, drinks_per_week_wine, drinks_per_week_liquor,
			cage_cut_down, cage_annoyed, cage_guilty, cage_eye_opener,
			tobacco_ever, tobacco_current, tobacco_started_age, tobacco_quit_years_ago,
			cigarettes_packs_per_day, cigars_per_day, chew_per_day, vape_per_day,
			drugs_current, drugs_list_amounts)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		RETURNING social_id`,
		s.IntakeID, s.CaffeineLevel, s.CaffeineCupsPerDay,
		s.AlcoholUse, s.DrinksPerWeekBeer, s.DrinksPerWeekWine, s.DrinksPerWeekLiquor,
		s.CageCutDown, s.CageAnnoyed, s.CageGuilty, s.CageEyeOpener,
		s.TobaccoEver, s.TobaccoCurrent, s.TobaccoStartedAge, s.TobaccoQuitYearsAgo,
		s.CigarettesPacksPerDay, s.CigarsPerDay, s.ChewPerDay, s.VapePerDay,
		s.DrugsCurrent, s.DrugsListAmounts).Scan(&s.SocialID)
}

func (r *repoPG) GetSocialHistory(ctx context.Context, intakeID int64) (*SocialHistory, error) {
	var s SocialHistory
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT social_id, intake_id, caffeine_level, caffeine_cups_per_day,
			alcohol_use, drinks_per_week_beer, drinks_per_week_wine, drinks_per_week_liquor,
			cage_cut_down, cage_annoyed, cage_guilty, cage_eye_opener,
			tobacco_ever, tobacco_current, tobacco_started_age, tobacco_quit_years_ago,
			cigarettes_packs_per_day, cigars_per_day, chew_per_day, vape_per_day,
			drugs_current, drugs_list_amounts
		FROM social_history WHERE intake_id = $1`, intakeID).
		Scan(&s.SocialID, &s.IntakeID, &s.CaffeineLevel, &s.CaffeineCupsPerDay,
			&s.AlcoholUse, &s.DrinksPerWeekBeer, &s.DrinksPerWeekWine, &s.DrinksPerWeekLiquor,
			&s.CageCutDown, &s.CageAnnoyed, &s.CageGuilty, &s.CageEyeOpener,
			&s.TobaccoEver, &s.TobaccoCurrent, &s.TobaccoStartedAge, &s.TobaccoQuitYearsAgo,
			&s.CigarettesPacksPerDay, &s.CigarsPerDay, &s.ChewPerDay, &s.VapePerDay,
			&s.DrugsCurrent, &s.DrugsListAmounts)
	if err != nil {
		return nil, noRowsNil(err)
	}
	return &s, nil
}

func (r *repoPG) CreateTBScreening(ctx context.Context, t *TBScreening) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO tb_screening (intake_id, active_tb, cough_gt_3_weeks,
			cough_produces_blood, exposed_to_tb, traveled_outside_usa_past_12m)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING screening_id`,
		t.IntakeID, t.ActiveTB, t.CoughGT3Weeks,
		t.CoughProducesBlood, t.ExposedToTB, t.TraveledOutsideUSAPast12M).Scan(&t.ScreeningID)
}

func (r *repoPG) GetTBScreening(ctx context.Context, intakeID int64) (*TBScreening, error) {
	var t TBScreening
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT screening_id, intake_id, active_tb, cough_gt_3_weeks,
			cough_produces_blood, exposed_to_tb, traveled_outside_usa_past_12m
		FROM tb_screening WHERE intake_id = $1`, intakeID).
		Scan(&t.ScreeningID, &t.IntakeID, &t.ActiveTB, &t.CoughGT3Weeks,
			&t.CoughProducesBlood, &t.ExposedToTB, &t.TraveledOutsideUSAPast12M)
	if err != nil {
		return nil, noRowsNil(err)
	}
	return &t, nil
}

func (r *repoPG) CreateSexualHistory(ctx context.Context, s *SexualHistory) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO sexual_history (intake_id, sexually_active, uses_condom,
			number_of_sex_partners, current_partner_gender, screened_for_sti,
			interested_in_sti_screen)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING sexual_id`,
		s.IntakeID, s.SexuallyActive, s.UsesCondom,
		s.NumberOfSexPartners, s.CurrentPartnerGender, s.ScreenedForSTI,
		s.InterestedInSTIScreen).Scan(&s.SexualID)
}

func (r *repoPG) GetSexualHistory(ctx context.Context, intakeID int64) (*SexualHistory, error) {
	var s SexualHistory
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT sexual_id, intake_id, sexually_active, uses_condom,
			number_of_sex_partners, current_partner_gender, screened_for_sti,
			interested_in_sti_screen
		FROM sexual_history WHERE intake_id = $1`, intakeID).
		Scan(&s.SexualID, &s.IntakeID, &s.SexuallyActive, &s.UsesCondom,
			&s.NumberOfSexPartners, &s.CurrentPartnerGender, &s.ScreenedForSTI,
			&s.InterestedInSTIScreen)
	if err != nil {
		return nil, noRowsNil(err)
	}
	return &s, nil
}

func (r *repoPG) CreateSTIInterest(ctx context.Context, s *STIInterest) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO sti_interest (intake_id, sti)
		VALUES ($1,$2) RETURNING sti_id`,
		s.IntakeID, s.STI).Scan(&s.STIID)
}

func (r *repoPG) ListSTIInterest(ctx context.Context, intakeID int64) ([]*STIInterest, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT sti_id, intake_id, sti
		FROM sti_interest WHERE intake_id = $1 ORDER BY sti_id`, intakeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*STIInterest
	for rows.Next() {
		var s STIInterest
		if err := rows.Scan(&s.STIID, &s.IntakeID, &s.STI); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

func (r *repoPG) CreateDentalHistory(ctx context.Context, d *DentalHistory) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO dental_history (intake_id, regular_checkups, gums_bleed,
			periodontal_disease, grind_teeth, wore_braces, current_mouth_pain,
			brushing_per_day, floss, floss_how_often, face_mouth_trauma,
			trauma_when, dentures_partials, dentures_age, last_exam_cleaning)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING dental_id`,
		d.IntakeID, d.RegularCheckups, d.GumsBleed,
		d.PeriodontalDisease, d.GrindTeeth, d.WoreBraces, d.CurrentMouthPain,
		d.BrushingPerDay, d.Floss, d.FlossHowOften, d.FaceMouthTrauma,
		d.TraumaWhen, d.DenturesPartials, d.DenturesAge, d.LastExamCleaning).Scan(&d.DentalID)
}

func (r *repoPG) GetDentalHistory(ctx context.Context, intakeID int64) (*DentalHistory, error) {
	var d DentalHistory
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT dental_id, intake_id, regular_checkups, gums_bleed,
			periodontal_disease, grind_teeth, wore_braces, current_mouth_pain,
			brushing_per_day, floss, floss_how_often, face_mouth_trauma,
			trauma_when, dentures_partials, dentures_age, last_exam_cleaning
		FROM dental_history WHERE intake_id = $1`, intakeID).
		Scan(&d.DentalID, &d.IntakeID, &d.RegularCheckups, &d.GumsBleed,
			&d.PeriodontalDisease, &d.GrindTeeth, &d.WoreBraces, &d.CurrentMouthPain,
			&d.BrushingPerDay, &d.Floss, &d.FlossHowOften, &d.FaceMouthTrauma,
			&d.TraumaWhen, &d.DenturesPartials, &d.DenturesAge, &d.LastExamCleaning)
	if err != nil {
		return nil, noRowsNil(err)
	}
	return &d, nil
}

func (r *repoPG) CreateMaleHistory(ctx context.Context, m *MaleHistory) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO male_history (intake_id, penile_discharge, penile_lesions,
			erection_difficulty, trouble_urinating, waking_at_night_to_urinate)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING male_id`,
		m.IntakeID, m.PenileDischarge, m.PenileLesions,
		m.ErectionDifficulty, m.TroubleUrinating, m.WakingAtNightToUrinate).Scan(&m.MaleID)
}

func (r *repoPG) GetMaleHistory(ctx context.Context, intakeID int64) (*MaleHistory, error) {
	var m MaleHistory
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT male_id, intake_id, penile_discharge, penile_lesions,
			erection_difficulty, trouble_urinating, waking_at_night_to_urinate
		FROM male_history WHERE intake_id = $1`, intakeID).
		Scan(&m.MaleID, &m.IntakeID, &m.PenileDischarge, &m.PenileLesions,
			&m.ErectionDifficulty, &m.TroubleUrinating, &m.WakingAtNightToUrinate)
	if err != nil {
		return nil, noRowsNil(err)
	}
	return &m, nil
}

func (r *repoPG) CreateFemaleHistory(ctx context.Context, f *FemaleHistory) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO female_history (intake_id, last_pap_date, pap_abnormal,
			last_mammogram_date, mammogram_abnormal, age_first_menstrual_period,
			date_last_menstrual_period, pregnancies, births, abortions, miscarriages,
			cesarean_count, heavy_periods, bleeding_between_periods, extreme_menstrual_pain,
			vaginal_itching_burning, urine_leak, hot_flashes, menopause,
			breast_lump_or_nipple_discharge, painful_intercourse, partner_uses_condom,
			other_birth_control_method, waking_at_night_to_urinate)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
		RETURNING female_id`,
		f.IntakeID, f.LastPapDate, f.PapAbnormal,
		f.LastMammogramDate, f.MammogramAbnormal, f.AgeFirstMenstrualPeriod,
		f.DateLastMenstrualPeriod, f.Pregnancies, f.Births, f.Abortions, f.Miscarriages,
		f.CesareanCount, f.HeavyPeriods, f.BleedingBetweenPeriods, f.ExtremeMenstrualPain,
		f.VaginalItchingBurning, f.UrineLeak, f.HotFlashes, f.Menopause,
		f.BreastLumpOrNippleDischarge, f.PainfulIntercourse, f.PartnerUsesCondom,
		f.OtherBirthControlMethod, f.WakingAtNightToUrinate).Scan(&f.FemaleID)
}

func (r *repoPG) GetFemaleHistory(ctx context.Context, intakeID int64) (*FemaleHistory, error) {
	var f FemaleHistory
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT female_id, intake_id, last_pap_date, pap_abnormal,
			last_mammogram_date, mammogram_abnormal, age_first_menstrual_period,
			date_last_menstrual_period, pregnancies, births, abortions, miscarriages,
			cesarean_count, heavy_periods, bleeding_between_periods, extreme_menstrual_pain,
			vaginal_itching_burning, urine_leak, hot_flashes, menopause,
			breast_lump_or_nipple_discharge, painful_intercourse, partner_uses_condom,
			other_birth_control_method, waking_at_night_to_urinate
		FROM female_history WHERE intake_id = $1`, intakeID).
		Scan(&f.FemaleID, &f.IntakeID, &f.LastPapDate, &f.PapAbnormal,
			&f.LastMammogramDate, &f.MammogramAbnormal, &f.AgeFirstMenstrualPeriod,
			&f.DateLastMenstrualPeriod, &f.Pregnancies, &f.Births, &f.Abortions, &f.Miscarriages,
			&f.CesareanCount, &f.HeavyPeriods, &f.BleedingBetweenPeriods, &f.ExtremeMenstrualPain,
			&f.VaginalItchingBurning, &f.UrineLeak, &f.HotFlashes, &f.Menopause,
			&f.BreastLumpOrNippleDischarge, &f.PainfulIntercourse, &f.PartnerUsesCondom,
			&f.OtherBirthControlMethod, &f.WakingAtNightToUrinate)
	if err != nil {
		return nil, noRowsNil(err)
	}
	return &f, nil
}

// =========== Family history ===========

func (r *repoPG) CreateFamilyHistory(ctx context.Context, fh *FamilyHistory) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO family_history (intake_id, relation, alive, age)
		VALUES ($1,$2,$3,$4) RETURNING fam_hist_id`,
		fh.IntakeID, fh.Relation, fh.Alive, fh.Age).Scan(&fh.FamHistID)
}

func (r *repoPG) CreateFamilyHistoryProblem(ctx context.Context, fhp *FamilyHistoryProblem) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO family_history_problem (fam_hist_id, problem_id)
		VALUES ($1,$2)`,
		fhp.FamHistID, fhp.ProblemID)
	return err
}

func (r *repoPG) ListFamilyHistories(ctx context.Context, intakeID int64) ([]*FamilyHistory, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT fam_hist_id, intake_id, relation, alive, age
		FROM family_history WHERE intake_id = $1 ORDER BY fam_hist_id`, intakeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*FamilyHistory
	for rows.Next() {
		var fh FamilyHistory
		if err := rows.Scan(&fh.FamHistID, &fh.IntakeID, &fh.Relation, &fh.Alive, &fh.Age); err != nil {
			return nil, err
		}
		items = append(items, &fh)
	}
	return items, rows.Err()
}

func (r *repoPG) ListFamilyProblemNames(ctx context.Context, famHistID int64) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT l.name
		FROM family_history_problem p
		JOIN family_problem_lookup l ON l.problem_id = p.problem_id
		WHERE p.fam_hist_id = $1
		ORDER BY l.name`, famHistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *repoPG) ListFamilyProblems(ctx context.Context) ([]*FamilyProblemLookup, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT problem_id, name FROM family_problem_lookup ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*FamilyProblemLookup
	for rows.Next() {
		var l FamilyProblemLookup
		if err := rows.Scan(&l.ProblemID, &l.Name); err != nil {
			return nil, err
		}
		items = append(items, &l)
	}
	return items, rows.Err()
}

// =========== Roster and search ===========

func (r *repoPG) ListPersons(ctx context.Context, limit, offset int) ([]*PersonSummary, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM person`).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Latest address and latest application per person, newest people first.
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT p.person_id, p.legal_first_name, p.legal_last_name, p.preferred_name,
			p.date_of_birth, p.sex_at_birth, p.phone, p.email, p.created_at,
			a.street, a.city, a.state, a.zip, app.has_health_insurance
		FROM person p
		LEFT JOIN LATERAL (
			SELECT street, city, state, zip FROM address
			WHERE person_id = p.person_id ORDER BY address_id DESC LIMIT 1
		) a ON true
		LEFT JOIN LATERAL (
			SELECT has_health_insurance FROM application
			WHERE applicant_id = p.person_id ORDER BY application_id DESC LIMIT 1
		) app ON true
		ORDER BY p.person_id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*PersonSummary
	for rows.Next() {
		var s PersonSummary
		if err := rows.Scan(&s.PersonID, &s.LegalFirstName, &s.LegalLastName, &s.PreferredName,
			&s.DateOfBirth, &s.SexAtBirth, &s.Phone, &s.Email, &s.CreatedAt,
			&s.Street, &s.City, &s.State, &s.Zip, &s.HasHealthInsurance); err != nil {
			return nil, 0, err
		}
		items = append(items, &s)
	}
	return items, total, rows.Err()
}

func (r *repoPG) SearchPersons(ctx context.Context, query string, limit int) ([]*Person, error) {
	pattern := "%" + query + "%"
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+personCols+` FROM person
		WHERE legal_first_name ILIKE $1
			OR legal_last_name ILIKE $1
			OR preferred_name ILIKE $1
		ORDER BY legal_last_name ASC
		LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
