package intake

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// searchPageSize is the fixed page size of the name search.
const searchPageSize = 50

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit persists one intake snapshot across the relational schema. Rows are
// created in dependency order: person, then address and emergency contacts,
// then the application, the intake, and every clinical section hanging off
// the intake. The whole sequence runs in one transaction; the first failing
// step rolls back everything already written.
func (s *Service) Submit(ctx context.Context, sub *Submission) (*SubmissionResult, error) {
	if sub == nil {
		return nil, fmt.Errorf("submission is required")
	}

	result := &SubmissionResult{SkippedProblems: []string{}}

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		person := buildPerson(&sub.Basic)
		if err := s.repo.CreatePerson(ctx, person); err != nil {
			return fmt.Errorf("create person: %w", err)
		}
		result.PersonID = person.PersonID

		addr := buildAddress(&sub.Basic, person.PersonID)
		if err := s.repo.CreateAddress(ctx, addr); err != nil {
			return fmt.Errorf("create address: %w", err)
		}

		for _, ec := range buildEmergencyContacts(&sub.Basic, person.PersonID) {
			if err := s.repo.CreateEmergencyContact(ctx, ec); err != nil {
				return fmt.Errorf("create emergency contact: %w", err)
			}
		}

		app := buildApplication(&sub.Basic, person.PersonID)
		if err := s.repo.CreateApplication(ctx, app); err != nil {
			return fmt.Errorf("create application: %w", err)
		}
		result.ApplicationID = app.ApplicationID

		in := buildIntake(&sub.Health, app.ApplicationID)
		if err := s.repo.CreateIntake(ctx, in); err != nil {
			return fmt.Errorf("create intake: %w", err)
		}
		result.IntakeID = in.IntakeID

		for _, m := range buildMedications(&sub.Health, in.IntakeID) {
			if err := s.repo.CreateMedication(ctx, m); err != nil {
				return fmt.Errorf("create medication: %w", err)
			}
		}

		if err := s.repo.CreateNutritionHistory(ctx, buildNutrition(&sub.Lifestyle, in.IntakeID)); err != nil {
			return fmt.Errorf("create nutrition history: %w", err)
		}

		if err := s.repo.CreateSocialHistory(ctx, buildSocial(&sub.Lifestyle, in.IntakeID)); err != nil {
			return fmt.Errorf("create social history: %w", err)
		}

		for _, a := range buildAllergies(&sub.Health, in.IntakeID) {
			if err := s.repo.CreateAllergy(ctx, a); err != nil {
				return fmt.Errorf("create allergy: %w", err)
			}
		}

		if err := s.repo.CreateTBScreening(ctx, buildTBScreening(&sub.Medical, in.IntakeID)); err != nil {
			return fmt.Errorf("create tb screening: %w", err)
		}

		if err := s.repo.CreateSexualHistory(ctx, buildSexualHistory(&sub.Family, in.IntakeID)); err != nil {
			return fmt.Errorf("create sexual history: %w", err)
		}

		for _, sti := range sub.Family.STIInterest {
			sti = strings.TrimSpace(sti)
			if sti == "" {
				continue
			}
			if err := s.repo.CreateSTIInterest(ctx, &STIInterest{IntakeID: in.IntakeID, STI: sti}); err != nil {
				return fmt.Errorf("create sti interest: %w", err)
			}
		}

		if err := s.repo.CreateDentalHistory(ctx, buildDental(&sub.Family, in.IntakeID)); err != nil {
			return fmt.Errorf("create dental history: %w", err)
		}

		for _, e := range buildPastEvents(&sub.Medical, in.IntakeID) {
			if err := s.repo.CreatePastMedHistoryEvent(ctx, e); err != nil {
				return fmt.Errorf("create past medical event: %w", err)
			}
		}

		if m := buildMaleHistory(&sub.Medical, in.IntakeID); m != nil {
			if err := s.repo.CreateMaleHistory(ctx, m); err != nil {
				return fmt.Errorf("create male history: %w", err)
			}
		}

		if f := buildFemaleHistory(&sub.Medical, in.IntakeID); f != nil {
			if err := s.repo.CreateFemaleHistory(ctx, f); err != nil {
				return fmt.Errorf("create female history: %w", err)
			}
		}

		skipped, err := s.persistFamilyHistory(ctx, &sub.Family, in.IntakeID)
		if err != nil {
			return err
		}
		result.SkippedProblems = skipped

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("person_id", result.PersonID).
		Int64("application_id", result.ApplicationID).
		Int64("intake_id", result.IntakeID).
		Int("skipped_problems", len(result.SkippedProblems)).
		Msg("intake submission stored")

	return result, nil
}

// persistFamilyHistory writes the family grid. The problem lookup is fetched
// once; keys that do not resolve are skipped, logged, and reported back, and
// never produce a join row.
func (s *Service) persistFamilyHistory(ctx context.Context, tab *FamilyTab, intakeID int64) ([]string, error) {
	skipped := []string{}

	entries := make([]FamilyEntryInput, 0, len(tab.Entries))
	for _, e := range tab.Entries {
		if isEmptyFamilyEntry(e) {
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return skipped, nil
	}

	lookup, err := s.repo.ListFamilyProblems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load family problem lookup: %w", err)
	}
	resolver := NewProblemResolver(lookup)

	for _, e := range entries {
		fh := &FamilyHistory{
			IntakeID: intakeID,
			Relation: TrimOrNil(NormalizeRelation(e.Relation)),
			Alive:    YesNoToBool(e.Alive),
			Age:      SafeInt(e.Age),
		}
		if err := s.repo.CreateFamilyHistory(ctx, fh); err != nil {
			return nil, fmt.Errorf("create family history: %w", err)
		}

		for _, key := range e.Problems {
			problemID, ok := resolver.Resolve(key)
			if !ok {
				s.logger.Warn().
					Str("problem", key).
					Str("relation", NormalizeRelation(e.Relation)).
					Msg("family problem not found in lookup, skipping")
				skipped = append(skipped, key)
				continue
			}
			err := s.repo.CreateFamilyHistoryProblem(ctx, &FamilyHistoryProblem{
				FamHistID: fh.FamHistID,
				ProblemID: problemID,
			})
			if err != nil {
				return nil, fmt.Errorf("create family history problem: %w", err)
			}
		}
	}

	return skipped, nil
}

func isEmptyFamilyEntry(e FamilyEntryInput) bool {
	return strings.TrimSpace(e.Relation) == "" &&
		strings.TrimSpace(e.Alive) == "" &&
		strings.TrimSpace(e.Age) == "" &&
		len(e.Problems) == 0
}

// =========== Row builders ===========

func buildPerson(b *BasicInfoTab) *Person {
	return &Person{
		LegalFirstName: OrDefault(b.LegalFirstName, "N/A"),
		LegalLastName:  OrDefault(b.LegalLastName, "N/A"),
		PreferredName:  TrimOrNil(b.PreferredName),
		DateOfBirth:    TrimOrNil(b.DateOfBirth),
		SexAtBirth:     TrimOrNil(b.SexAtBirth),
		Phone:          TrimOrNil(b.Phone),
		Email:          TrimOrNil(b.Email),
	}
}

func buildAddress(b *BasicInfoTab, personID int64) *Address {
	return &Address{
		PersonID: personID,
		Street:   OrDefault(b.Street, "N/A"),
		City:     OrDefault(b.City, "N/A"),
		State:    TrimOrNil(b.State),
		Zip:      OrDefault(b.Zip, "00000"),
	}
}

func buildEmergencyContacts(b *BasicInfoTab, personID int64) []*EmergencyContact {
	var out []*EmergencyContact
	for _, ec := range b.EmergencyContacts {
		if strings.TrimSpace(ec.Name) == "" &&
			strings.TrimSpace(ec.Relationship) == "" &&
			strings.TrimSpace(ec.Phone) == "" {
			continue
		}
		out = append(out, &EmergencyContact{
			PersonID:     personID,
			Name:         TrimOrNil(ec.Name),
			Relationship: TrimOrNil(ec.Relationship),
			Phone:        TrimOrNil(ec.Phone),
		})
	}
	return out
}

func buildApplication(b *BasicInfoTab, personID int64) *Application {
	return &Application{
		ApplicantID:        personID,
		HasHealthInsurance: b.HasHealthInsurance != nil && *b.HasHealthInsurance,
		MontgomeryResident: b.MontgomeryResident != nil && *b.MontgomeryResident,
		Last4SSN:           TrimOrNil(b.Last4SSN),
		SignatureName:      TrimOrNil(b.SignatureName),
		SignatureDate:      TrimOrNil(b.SignatureDate),
	}
}

func buildIntake(h *HealthHistoryTab, applicationID int64) *Intake {
	return &Intake{
		ApplicationID:        applicationID,
		MainReasonForVisit:   OrDefault(h.MainReasonForVisit, "N/A"),
		OtherConcerns:        TrimOrNil(h.OtherConcerns),
		PreferredPharmacy:    TrimOrNil(h.PreferredPharmacy),
		PharmacyPhone:        TrimOrNil(h.PharmacyPhone),
		ImmunizationsCurrent: OrDefault(h.ImmunizationsCurrent, "dont_know"),
	}
}

func buildMedications(h *HealthHistoryTab, intakeID int64) []*Medication {
	var out []*Medication
	for _, m := range h.Medications {
		if strings.TrimSpace(m.DrugName) == "" &&
			strings.TrimSpace(m.Strength) == "" &&
			strings.TrimSpace(m.Frequency) == "" {
			continue
		}
		out = append(out, &Medication{
			IntakeID:  intakeID,
			DrugName:  TrimOrNil(m.DrugName),
			Strength:  TrimOrNil(m.Strength),
			Frequency: TrimOrNil(m.Frequency),
		})
	}
	return out
}

func buildAllergies(h *HealthHistoryTab, intakeID int64) []*Allergy {
	var out []*Allergy
	for _, a := range h.Allergies {
		if strings.TrimSpace(a.Allergen) == "" && strings.TrimSpace(a.Reaction) == "" {
			continue
		}
		out = append(out, &Allergy{
			IntakeID: intakeID,
			Allergen: TrimOrNil(a.Allergen),
			Reaction: TrimOrNil(a.Reaction),
		})
	}
	return out
}

func buildPastEvents(m *MedicalHistoryTab, intakeID int64) []*PastMedHistoryEvent {
	var out []*PastMedHistoryEvent
	for _, e := range m.PastMedHistoryEvents {
		if strings.TrimSpace(e.Type) == "" &&
			strings.TrimSpace(e.Description) == "" &&
			strings.TrimSpace(e.Year) == "" &&
			strings.TrimSpace(e.Hospital) == "" {
			continue
		}
		out = append(out, &PastMedHistoryEvent{
			IntakeID:    intakeID,
			Type:        TrimOrNil(e.Type),
			Description: TrimOrNil(e.Description),
			Year:        SafeInt(e.Year),
			Hospital:    TrimOrNil(e.Hospital),
		})
	}
	return out
}

func buildNutrition(l *LifestyleTab, intakeID int64) *NutritionHistory {
	return &NutritionHistory{
		IntakeID:                  intakeID,
		Dieting:                   TrimOrNil(l.Dieting),
		SaltIntake:                TrimOrNil(l.SaltIntake),
		SugarIntake:               TrimOrNil(l.SugarIntake),
		FruitServingsPerDay:       SafeInt(l.FruitServingsPerDay),
		VegetableServingsPerDay:   SafeInt(l.VegetableServingsPerDay),
		MealsPerDay:               SafeInt(l.MealsPerDay),
		WaterPerDay:               SafeInt(l.WaterPerDay),
		OtherFluids:               TrimOrNil(l.OtherFluids),
		ProteinSources:            TrimOrNil(l.ProteinSources),
		WeightStability:           TrimOrNil(l.WeightStability),
		FoodIntolerancesAllergies: TrimOrNil(l.FoodIntolerancesAllergies),
		AdditionalNotes:           TrimOrNil(l.AdditionalNotes),
	}
}

func buildSocial(l *LifestyleTab, intakeID int64) *SocialHistory {
	return &SocialHistory{
		IntakeID:              intakeID,
		CaffeineLevel:         TrimOrNil(l.Caffeine),
		CaffeineCupsPerDay:    SafeInt(l.CupsPerDay),
		AlcoholUse:            TrimOrNil(l.AlcoholUse),
		DrinksPerWeekBeer:     SafeInt(l.DrinksBeer),
		DrinksPerWeekWine:     SafeInt(l.DrinksWine),
		DrinksPerWeekLiquor:   SafeInt(l.DrinksLiquor),
		CageCutDown:           YesNoToBool(l.CageCutDown),
		CageAnnoyed:           YesNoToBool(l.CageAnnoyed),
		CageGuilty:            YesNoToBool(l.CageGuilty),
		CageEyeOpener:         YesNoToBool(l.CageMorning),
		TobaccoEver:           YesNoToBool(l.TobaccoEver),
		TobaccoCurrent:        YesNoToBool(l.TobaccoUse),
		TobaccoStartedAge:     SafeInt(l.SmokingStartAge),
		TobaccoQuitYearsAgo:   SafeInt(l.YearsSinceQuit),
		CigarettesPacksPerDay: SafeInt(l.Cigarettes),
		CigarsPerDay:          SafeInt(l.Cigars),
		ChewPerDay:            SafeInt(l.Chew),
		// The form never asks about vaping; the column stays NULL.
		VapePerDay:       nil,
		DrugsCurrent:     YesNoToBool(l.DrugUse),
		DrugsListAmounts: TrimOrNil(l.DrugList),
	}
}

func buildTBScreening(m *MedicalHistoryTab, intakeID int64) *TBScreening {
	return &TBScreening{
		IntakeID:                  intakeID,
		ActiveTB:                  YesNoToBool(m.Tuberculosis),
		CoughGT3Weeks:             YesNoToBool(m.PersistentCough),
		CoughProducesBlood:        YesNoToBool(m.BloodyMucus),
		ExposedToTB:               YesNoToBool(m.ExposedTB),
		TraveledOutsideUSAPast12M: YesNoToBool(m.TraveledUSA),
	}
}

func buildSexualHistory(f *FamilyTab, intakeID int64) *SexualHistory {
	// Interest in screening is implied by selecting at least one STI; with
	// nothing selected the answer is unknown, not "no".
	var interested *bool
	if len(f.STIInterest) > 0 {
		interested = boolPtr(true)
	}
	return &SexualHistory{
		IntakeID:              intakeID,
		SexuallyActive:        YesNoToBool(f.SexuallyActive),
		UsesCondom:            YesNoToBool(f.UsesCondom),
		NumberOfSexPartners:   SafeInt(f.SexPartnersTotal),
		CurrentPartnerGender:  TrimOrNil(f.CurrentPartnerGender),
		ScreenedForSTI:        YesNoToBool(f.ScreenedForSTI),
		InterestedInSTIScreen: interested,
	}
}

func buildDental(f *FamilyTab, intakeID int64) *DentalHistory {
	return &DentalHistory{
		IntakeID:           intakeID,
		RegularCheckups:    YesNoToBool(f.RegularCheckups),
		GumsBleed:          YesNoToBool(f.GumsBleed),
		PeriodontalDisease: YesNoToBool(f.Periodontal),
		GrindTeeth:         YesNoToBool(f.GrindTeeth),
		WoreBraces:         YesNoToBool(f.WoreBraces),
		CurrentMouthPain:   YesNoToBool(f.MouthPain),
		BrushingPerDay:     SafeInt(f.BrushFrequency),
		LastExamCleaning:   TrimOrNil(f.LastCleaning),
		// The short form does not collect flossing, trauma, or denture
		// details; those columns stay NULL.
	}
}

// buildMaleHistory returns nil unless at least one flag is checked; an
// untouched checklist writes no row at all.
func buildMaleHistory(m *MedicalHistoryTab, intakeID int64) *MaleHistory {
	if !m.MalePenileDischarge && !m.MalePenileLesions && !m.MaleErectionDifficulty &&
		!m.MaleTroubleUrinating && !m.MaleWakingToUrinate {
		return nil
	}
	return &MaleHistory{
		IntakeID:               intakeID,
		PenileDischarge:        trueOrNil(m.MalePenileDischarge),
		PenileLesions:          trueOrNil(m.MalePenileLesions),
		ErectionDifficulty:     trueOrNil(m.MaleErectionDifficulty),
		TroubleUrinating:       trueOrNil(m.MaleTroubleUrinating),
		WakingAtNightToUrinate: trueOrNil(m.MaleWakingToUrinate),
	}
}

// buildFemaleHistory returns nil unless at least one field carries signal.
func buildFemaleHistory(m *MedicalHistoryTab, intakeID int64) *FemaleHistory {
	hasSignal := strings.TrimSpace(m.FemaleLastPapDate) != "" ||
		strings.TrimSpace(m.FemaleLastMammogramDate) != "" ||
		strings.TrimSpace(m.FemaleAgeFirstPeriod) != "" ||
		strings.TrimSpace(m.FemaleDateLastPeriod) != "" ||
		strings.TrimSpace(m.FemalePregnancies) != "" ||
		strings.TrimSpace(m.FemaleBirths) != "" ||
		strings.TrimSpace(m.FemaleAbortions) != "" ||
		strings.TrimSpace(m.FemaleMiscarriages) != "" ||
		strings.TrimSpace(m.FemaleCesareanCount) != "" ||
		m.FemaleHeavyPeriods ||
		m.FemaleBleedingBetweenPeriods ||
		m.FemaleExtremeMenstrualPain ||
		m.FemaleBreastLump ||
		m.FemalePainfulIntercourse ||
		m.FemaleUrineLeak ||
		m.FemaleHotFlashes ||
		strings.TrimSpace(m.FemalePartnerUsesCondom) != "" ||
		strings.TrimSpace(m.FemaleOtherBirthControl) != ""
	if !hasSignal {
		return nil
	}
	return &FemaleHistory{
		IntakeID:                    intakeID,
		LastPapDate:                 TrimOrNil(m.FemaleLastPapDate),
		PapAbnormal:                 YesNoToBool(m.FemalePapAbnormal),
		LastMammogramDate:           TrimOrNil(m.FemaleLastMammogramDate),
		MammogramAbnormal:           YesNoToBool(m.FemaleMammogramAbnormal),
		AgeFirstMenstrualPeriod:     SafeInt(m.FemaleAgeFirstPeriod),
		DateLastMenstrualPeriod:     TrimOrNil(m.FemaleDateLastPeriod),
		Pregnancies:                 SafeInt(m.FemalePregnancies),
		Births:                      SafeInt(m.FemaleBirths),
		Abortions:                   SafeInt(m.FemaleAbortions),
		Miscarriages:                SafeInt(m.FemaleMiscarriages),
		CesareanCount:               SafeInt(m.FemaleCesareanCount),
		HeavyPeriods:                trueOrNil(m.FemaleHeavyPeriods),
		BleedingBetweenPeriods:      trueOrNil(m.FemaleBleedingBetweenPeriods),
		ExtremeMenstrualPain:        trueOrNil(m.FemaleExtremeMenstrualPain),
		VaginalItchingBurning:       trueOrNil(m.FemaleVaginalItchingBurning),
		UrineLeak:                   trueOrNil(m.FemaleUrineLeak),
		HotFlashes:                  trueOrNil(m.FemaleHotFlashes),
		Menopause:                   YesNoToBool(m.FemaleMenopause),
		BreastLumpOrNippleDischarge: trueOrNil(m.FemaleBreastLump),
		PainfulIntercourse:          trueOrNil(m.FemalePainfulIntercourse),
		PartnerUsesCondom:           YesNoToBool(m.FemalePartnerUsesCondom),
		OtherBirthControlMethod:     TrimOrNil(m.FemaleOtherBirthControl),
		WakingAtNightToUrinate:      trueOrNil(m.FemaleWakingToUrinate),
	}
}

// =========== Read services ===========

// GetPersonDetail loads the nested shape behind the patient detail page:
// identity plus the latest application and its latest intake with every
// child section. Missing optional sections come back nil.
func (s *Service) GetPersonDetail(ctx context.Context, personID int64) (*PersonDetail, error) {
	person, err := s.repo.GetPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("get person %d: %w", personID, err)
	}

	detail := &PersonDetail{Person: *person}

	addrs, err := s.repo.ListAddresses(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	if len(addrs) > 0 {
		detail.Address = addrs[len(addrs)-1]
	}

	detail.EmergencyContacts, err = s.repo.ListEmergencyContacts(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list emergency contacts: %w", err)
	}

	apps, err := s.repo.ListApplications(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if len(apps) == 0 {
		return detail, nil
	}
	detail.Application = latestApplication(apps)

	intakes, err := s.repo.ListIntakes(ctx, detail.Application.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("list intakes: %w", err)
	}
	if len(intakes) == 0 {
		return detail, nil
	}

	detail.Intake, err = s.loadIntakeDetail(ctx, latestIntake(intakes))
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func latestApplication(apps []*Application) *Application {
	latest := apps[0]
	for _, a := range apps[1:] {
		if a.ApplicationID > latest.ApplicationID {
			latest = a
		}
	}
	return latest
}

func latestIntake(intakes []*Intake) *Intake {
	latest := intakes[0]
	for _, in := range intakes[1:] {
		if in.IntakeID > latest.IntakeID {
			latest = in
		}
	}
	return latest
}

func (s *Service) loadIntakeDetail(ctx context.Context, in *Intake) (*IntakeDetail, error) {
	d := &IntakeDetail{Intake: *in}
	var err error

	if d.Allergies, err = s.repo.ListAllergies(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("list allergies: %w", err)
	}
	if d.Medications, err = s.repo.ListMedications(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	if d.PastMedicalHistory, err = s.repo.ListPastMedHistoryEvents(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("list past medical events: %w", err)
	}
	if d.Nutrition, err = s.repo.GetNutritionHistory(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("get nutrition history: %w", err)
	}
	if d.Social, err = s.repo.GetSocialHistory(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("get social history: %w", err)
	}
	if d.TBScreening, err = s.repo.GetTBScreening(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("get tb screening: %w", err)
	}
	if d.Sexual, err = s.repo.GetSexualHistory(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("get sexual history: %w", err)
	}
	if d.STIInterest, err = s.repo.ListSTIInterest(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("list sti interest: %w", err)
	}
	if d.Dental, err = s.repo.GetDentalHistory(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("get dental history: %w", err)
	}
	if d.Male, err = s.repo.GetMaleHistory(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("get male history: %w", err)
	}
	if d.Female, err = s.repo.GetFemaleHistory(ctx, in.IntakeID); err != nil {
		return nil, fmt.Errorf("get female history: %w", err)
	}

	members, err := s.repo.ListFamilyHistories(ctx, in.IntakeID)
	if err != nil {
		return nil, fmt.Errorf("list family histories: %w", err)
	}
	for _, fh := range members {
		names, err := s.repo.ListFamilyProblemNames(ctx, fh.FamHistID)
		if err != nil {
			return nil, fmt.Errorf("list family problems: %w", err)
		}
		d.FamilyHistory = append(d.FamilyHistory, &FamilyHistoryDetail{
			FamilyHistory: *fh,
			Problems:      names,
		})
	}

	return d, nil
}

// ListSubmissions returns the person's full visit history: every application
// with its intakes, oldest first.
func (s *Service) ListSubmissions(ctx context.Context, personID int64) ([]*ApplicationWithIntakes, error) {
	if _, err := s.repo.GetPerson(ctx, personID); err != nil {
		return nil, fmt.Errorf("get person %d: %w", personID, err)
	}

	apps, err := s.repo.ListApplications(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]*ApplicationWithIntakes, 0, len(apps))
	for _, app := range apps {
		intakes, err := s.repo.ListIntakes(ctx, app.ApplicationID)
		if err != nil {
			return nil, fmt.Errorf("list intakes: %w", err)
		}
		out = append(out, &ApplicationWithIntakes{Application: *app, Intakes: intakes})
	}
	return out, nil
}

// ListPersons returns the staff roster page, newest registrations first.
func (s *Service) ListPersons(ctx context.Context, limit, offset int) ([]*PersonSummary, int, error) {
	return s.repo.ListPersons(ctx, limit, offset)
}

// SearchPersons matches the query as a case-insensitive substring of the
// legal or preferred names, ordered by last name. The page size is fixed.
func (s *Service) SearchPersons(ctx context.Context, query string) ([]*Person, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	return s.repo.SearchPersons(ctx, query, searchPageSize)
}

// ListFamilyProblems exposes the lookup table for the form's checkbox grid.
func (s *Service) ListFamilyProblems(ctx context.Context) ([]*FamilyProblemLookup, error) {
	return s.repo.ListFamilyProblems(ctx)
}

// ValidateAliases loads the problem lookup and reports alias entries whose
// target name is missing. Called once at startup.
func (s *Service) ValidateAliases(ctx context.Context) error {
	lookup, err := s.repo.ListFamilyProblems(ctx)
	if err != nil {
		return fmt.Errorf("load family problem lookup: %w", err)
	}
	for _, m := range NewProblemResolver(lookup).ValidateAliases() {
		s.logger.Warn().Str("alias", m).Msg("family problem alias target missing from lookup table")
	}
	return nil
}
