package intake

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// mockRepo is an in-memory Repository. failOn makes the named create step
// fail so transaction behavior can be exercised.
type mockRepo struct {
	nextID int64

	persons   map[int64]*Person
	addresses []*Address
	contacts  []*EmergencyContact
	apps      []*Application
	intakes   []*Intake

	allergies []*Allergy
	meds      []*Medication
	events    []*PastMedHistoryEvent
	nutrition map[int64]*NutritionHistory
	social    map[int64]*SocialHistory
	tb        map[int64]*TBScreening
	sexual    map[int64]*SexualHistory
	sti       []*STIInterest
	dental    map[int64]*DentalHistory
	male      map[int64]*MaleHistory
	female    map[int64]*FemaleHistory
	famHist   []*FamilyHistory
	famProbs  []*FamilyHistoryProblem
	lookup    []*FamilyProblemLookup

	failOn      string
	rolledBack  bool
	searchLimit int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		persons:   make(map[int64]*Person),
		nutrition: make(map[int64]*NutritionHistory),
		social:    make(map[int64]*SocialHistory),
		tb:        make(map[int64]*TBScreening),
		sexual:    make(map[int64]*SexualHistory),
		dental:    make(map[int64]*DentalHistory),
		male:      make(map[int64]*MaleHistory),
		female:    make(map[int64]*FemaleHistory),
		lookup:    lookupRows(),
	}
}

func (m *mockRepo) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockRepo) fail(step string) error {
	if m.failOn == step {
		return fmt.Errorf("forced %s failure", step)
	}
	return nil
}

func (m *mockRepo) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.rolledBack = true
		return err
	}
	return nil
}

func (m *mockRepo) CreatePerson(_ context.Context, p *Person) error {
	if err := m.fail("person"); err != nil {
		return err
	}
	p.PersonID = m.id()
	m.persons[p.PersonID] = p
	return nil
}

func (m *mockRepo) CreateAddress(_ context.Context, a *Address) error {
	if err := m.fail("address"); err != nil {
		return err
	}
	a.AddressID = m.id()
	m.addresses = append(m.addresses, a)
	return nil
}

func (m *mockRepo) CreateEmergencyContact(_ context.Context, ec *EmergencyContact) error {
	ec.ContactID = m.id()
	m.contacts = append(m.contacts, ec)
	return nil
}

func (m *mockRepo) CreateApplication(_ context.Context, app *Application) error {
	if err := m.fail("application"); err != nil {
		return err
	}
	app.ApplicationID = m.id()
	m.apps = append(m.apps, app)
	return nil
}

func (m *mockRepo) CreateIntake(_ context.Context, in *Intake) error {
	if err := m.fail("intake"); err != nil {
		return err
	}
	in.IntakeID = m.id()
	m.intakes = append(m.intakes, in)
	return nil
}

func (m *mockRepo) CreateAllergy(_ context.Context, a *Allergy) error {
	a.AllergyID = m.id()
	m.allergies = append(m.allergies, a)
	return nil
}

func (m *mockRepo) CreateMedication(_ context.Context, med *Medication) error {
	med.MedicationID = m.id()
	m.meds = append(m.meds, med)
	return nil
}

func (m *mockRepo) CreatePastMedHistoryEvent(_ context.Context, e *PastMedHistoryEvent) error {
	e.EventID = m.id()
	m.events = append(m.events, e)
	return nil
}

func (m *mockRepo) CreateNutritionHistory(_ context.Context, n *NutritionHistory) error {
	n.NutritionID = m.id()
	m.nutrition[n.IntakeID] = n
	return nil
}

func (m *mockRepo) CreateSocialHistory(_ context.Context, s *SocialHistory) error {
	s.SocialID = m.id()
	m.social[s.IntakeID] = s
	return nil
}

func (m *mockRepo) CreateTBScreening(_ context.Context, t *TBScreening) error {
	t.ScreeningID = m.id()
	m.tb[t.IntakeID] = t
	return nil
}

func (m *mockRepo) CreateSexualHistory(_ context.Context, s *SexualHistory) error {
	s.SexualID = m.id()
	m.sexual[s.IntakeID] = s
	return nil
}

func (m *mockRepo) CreateSTIInterest(_ context.Context, s *STIInterest) error {
	s.STIID = m.id()
	m.sti = append(m.sti, s)
	return nil
}

func (m *mockRepo) CreateDentalHistory(_ context.Context, d *DentalHistory) error {
	if err := m.fail("dental"); err != nil {
		return err
	}
	d.DentalID = m.id()
	m.dental[d.IntakeID] = d
	return nil
}

func (m *mockRepo) CreateMaleHistory(_ context.Context, mh *MaleHistory) error {
	mh.MaleID = m.id()
	m.male[mh.IntakeID] = mh
	return nil
}

func (m *mockRepo) CreateFemaleHistory(_ context.Context, f *FemaleHistory) error {
	f.FemaleID = m.id()
	m.female[f.IntakeID] = f
	return nil
}

func (m *mockRepo) CreateFamilyHistory(_ context.Context, fh *FamilyHistory) error {
	fh.FamHistID = m.id()
	m.famHist = append(m.famHist, fh)
	return nil
}

func (m *mockRepo) CreateFamilyHistoryProblem(_ context.Context, fhp *FamilyHistoryProblem) error {
	m.famProbs = append(m.famProbs, fhp)
	return nil
}

func (m *mockRepo) ListFamilyProblems(_ context.Context) ([]*FamilyProblemLookup, error) {
	return m.lookup, nil
}

func (m *mockRepo) GetPerson(_ context.Context, personID int64) (*Person, error) {
	p, ok := m.persons[personID]
	if !ok {
		return nil, fmt.Errorf("person %d not found", personID)
	}
	return p, nil
}

func (m *mockRepo) ListAddresses(_ context.Context, personID int64) ([]*Address, error) {
	var out []*Address
	for _, a := range m.addresses {
		if a.PersonID == personID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListEmergencyContacts(_ context.Context, personID int64) ([]*EmergencyContact, error) {
	var out []*EmergencyContact
	for _, c := range m.contacts {
		if c.PersonID == personID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepo) ListApplications(_ context.Context, personID int64) ([]*Application, error) {
	var out []*Application
	for _, a := range m.apps {
		if a.ApplicantID == personID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListIntakes(_ context.Context, applicationID int64) ([]*Intake, error) {
	var out []*Intake
	for _, in := range m.intakes {
		if in.ApplicationID == applicationID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAllergies(_ context.Context, intakeID int64) ([]*Allergy, error) {
	var out []*Allergy
	for _, a := range m.allergies {
		if a.IntakeID == intakeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListMedications(_ context.Context, intakeID int64) ([]*Medication, error) {
	var out []*Medication
	for _, med := range m.meds {
		if med.IntakeID == intakeID {
			out = append(out, med)
		}
	}
	return out, nil
}

func (m *mockRepo) ListPastMedHistoryEvents(_ context.Context, intakeID int64) ([]*PastMedHistoryEvent, error) {
	var out []*PastMedHistoryEvent
	for _, e := range m.events {
		if e.IntakeID == intakeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) GetNutritionHistory(_ context.Context, intakeID int64) (*NutritionHistory, error) {
	return m.nutrition[intakeID], nil
}

func (m *mockRepo) GetSocialHistory(_ context.Context, intakeID int64) (*SocialHistory, error) {
	return m.social[intakeID], nil
}

func (m *mockRepo) GetTBScreening(_ context.Context, intakeID int64) (*TBScreening, error) {
	return m.tb[intakeID], nil
}

func (m *mockRepo) GetSexualHistory(_ context.Context, intakeID int64) (*SexualHistory, error) {
	return m.sexual[intakeID], nil
}

func (m *mockRepo) ListSTIInterest(_ context.Context, intakeID int64) ([]*STIInterest, error) {
	var out []*STIInterest
	for _, s := range m.sti {
		if s.IntakeID == intakeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) GetDentalHistory(_ context.Context, intakeID int64) (*DentalHistory, error) {
	return m.dental[intakeID], nil
}

func (m *mockRepo) GetMaleHistory(_ context.Context, intakeID int64) (*MaleHistory, error) {
	return m.male[intakeID], nil
}

func (m *mockRepo) GetFemaleHistory(_ context.Context, intakeID int64) (*FemaleHistory, error) {
	return m.female[intakeID], nil
}

func (m *mockRepo) ListFamilyHistories(_ context.Context, intakeID int64) ([]*FamilyHistory, error) {
	var out []*FamilyHistory
	for _, fh := range m.famHist {
		if fh.IntakeID == intakeID {
			out = append(out, fh)
		}
	}
	return out, nil
}

func (m *mockRepo) ListFamilyProblemNames(_ context.Context, famHistID int64) ([]string, error) {
	var names []string
	for _, fp := range m.famProbs {
		if fp.FamHistID != famHistID {
			continue
		}
		for _, l := range m.lookup {
			if l.ProblemID == fp.ProblemID {
				names = append(names, l.Name)
			}
		}
	}
	return names, nil
}

func (m *mockRepo) ListPersons(_ context.Context, limit, offset int) ([]*PersonSummary, int, error) {
	var out []*PersonSummary
	for _, p := range m.persons {
		out = append(out, &PersonSummary{Person: *p})
	}
	return out, len(m.persons), nil
}

// SearchPersons mirrors the SQL: case-insensitive substring over the three
// name columns, ordered by legal last name, capped at limit.
func (m *mockRepo) SearchPersons(_ context.Context, query string, limit int) ([]*Person, error) {
	m.searchLimit = limit
	q := strings.ToLower(query)
	matches := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }

	var out []*Person
	for _, p := range m.persons {
		if matches(p.LegalFirstName) || matches(p.LegalLastName) ||
			(p.PreferredName != nil && matches(*p.PreferredName)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LegalLastName < out[j].LegalLastName })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, zerolog.Nop())
}

// =========== Submit ===========

func TestSubmitMinimalFormWritesDefaults(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	result, err := svc.Submit(context.Background(), &Submission{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	person := repo.persons[result.PersonID]
	if person == nil {
		t.Fatal("person row missing")
	}
	if person.LegalFirstName != "N/A" || person.LegalLastName != "N/A" {
		t.Errorf("names = %q %q, want N/A N/A", person.LegalFirstName, person.LegalLastName)
	}
	if person.PreferredName != nil {
		t.Errorf("preferred_name = %v, want nil", *person.PreferredName)
	}

	if len(repo.addresses) != 1 {
		t.Fatalf("addresses = %d, want 1", len(repo.addresses))
	}
	addr := repo.addresses[0]
	if addr.Street != "N/A" || addr.City != "N/A" || addr.Zip != "00000" {
		t.Errorf("address = %q/%q/%q, want N/A/N/A/00000", addr.Street, addr.City, addr.Zip)
	}

	if len(repo.apps) != 1 {
		t.Fatalf("applications = %d, want 1", len(repo.apps))
	}
	app := repo.apps[0]
	if app.HasHealthInsurance || app.MontgomeryResident {
		t.Error("unanswered eligibility questions should persist false")
	}
	if app.ApplicantID != person.PersonID {
		t.Error("application not linked to person")
	}

	if len(repo.intakes) != 1 {
		t.Fatalf("intakes = %d, want 1", len(repo.intakes))
	}
	in := repo.intakes[0]
	if in.MainReasonForVisit != "N/A" || in.ImmunizationsCurrent != "dont_know" {
		t.Errorf("intake defaults = %q/%q", in.MainReasonForVisit, in.ImmunizationsCurrent)
	}
	if in.ApplicationID != app.ApplicationID {
		t.Error("intake not linked to application")
	}

	// Always-written 1:1 sections
	for name, ok := range map[string]bool{
		"nutrition": repo.nutrition[in.IntakeID] != nil,
		"social":    repo.social[in.IntakeID] != nil,
		"tb":        repo.tb[in.IntakeID] != nil,
		"sexual":    repo.sexual[in.IntakeID] != nil,
		"dental":    repo.dental[in.IntakeID] != nil,
	} {
		if !ok {
			t.Errorf("%s row missing for minimal form", name)
		}
	}

	// Signal-gated rows must not exist
	if len(repo.meds)+len(repo.allergies)+len(repo.events)+len(repo.sti)+len(repo.famHist) != 0 {
		t.Error("minimal form should write no list rows")
	}
	if len(repo.male) != 0 || len(repo.female) != 0 {
		t.Error("minimal form should write no sex-specific history")
	}
	if len(result.SkippedProblems) != 0 {
		t.Errorf("skipped_problems = %v, want empty", result.SkippedProblems)
	}
}

func TestSubmitCoercesYesNoAnswers(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), &Submission{
		Medical: MedicalHistoryTab{
			Tuberculosis:    "no",
			PersistentCough: "yes",
			// BloodyMucus left unanswered
		},
		Lifestyle: LifestyleTab{
			CageCutDown: "yes",
			CupsPerDay:  "3",
			WaterPerDay: "60 oz",
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	in := repo.intakes[0]
	tb := repo.tb[in.IntakeID]
	if tb.ActiveTB == nil || *tb.ActiveTB {
		t.Errorf("active_tb = %v, want false", tb.ActiveTB)
	}
	if tb.CoughGT3Weeks == nil || !*tb.CoughGT3Weeks {
		t.Errorf("cough = %v, want true", tb.CoughGT3Weeks)
	}
	if tb.CoughProducesBlood != nil {
		t.Errorf("unanswered question = %v, want nil", *tb.CoughProducesBlood)
	}

	social := repo.social[in.IntakeID]
	if social.CageCutDown == nil || !*social.CageCutDown {
		t.Error("cage_cut_down should be true")
	}
	if social.CaffeineCupsPerDay == nil || *social.CaffeineCupsPerDay != 3 {
		t.Errorf("cups = %v, want 3", social.CaffeineCupsPerDay)
	}

	nutrition := repo.nutrition[in.IntakeID]
	if nutrition.WaterPerDay != nil {
		t.Errorf("water_per_day = %d for non-integer input, want nil", *nutrition.WaterPerDay)
	}
}

func TestSubmitFiltersEmptyListEntries(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), &Submission{
		Basic: BasicInfoTab{
			EmergencyContacts: []EmergencyContactInput{
				{},
				{Name: "Rosa Diaz", Phone: "555-0101"},
				{Name: "   "},
			},
		},
		Health: HealthHistoryTab{
			Medications: []MedicationInput{
				{DrugName: "lisinopril", Strength: "10mg"},
				{},
			},
			Allergies: []AllergyInput{
				{},
				{Allergen: "peanuts", Reaction: "hives"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(repo.contacts) != 1 {
		t.Errorf("contacts = %d, want 1", len(repo.contacts))
	}
	if len(repo.meds) != 1 {
		t.Errorf("medications = %d, want 1", len(repo.meds))
	}
	if len(repo.allergies) != 1 {
		t.Errorf("allergies = %d, want 1", len(repo.allergies))
	}
}

func TestSubmitMaleHistoryOnlyWhenFlagged(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), &Submission{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(repo.male) != 0 {
		t.Fatal("male history written with no flags set")
	}

	repo = newMockRepo()
	svc = newTestService(repo)
	_, err = svc.Submit(context.Background(), &Submission{
		Medical: MedicalHistoryTab{MaleTroubleUrinating: true},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	in := repo.intakes[0]
	m := repo.male[in.IntakeID]
	if m == nil {
		t.Fatal("male history missing with a flag set")
	}
	if m.TroubleUrinating == nil || !*m.TroubleUrinating {
		t.Error("flagged symptom should persist true")
	}
	if m.PenileDischarge != nil {
		t.Error("unflagged symptom should persist NULL, not false")
	}
}

func TestSubmitFemaleHistoryTrigger(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), &Submission{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(repo.female) != 0 {
		t.Fatal("female history written with no signal")
	}

	repo = newMockRepo()
	svc = newTestService(repo)
	_, err = svc.Submit(context.Background(), &Submission{
		Medical: MedicalHistoryTab{
			FemalePregnancies: "2",
			FemaleMenopause:   "no",
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	in := repo.intakes[0]
	f := repo.female[in.IntakeID]
	if f == nil {
		t.Fatal("female history missing with pregnancies entered")
	}
	if f.Pregnancies == nil || *f.Pregnancies != 2 {
		t.Errorf("pregnancies = %v, want 2", f.Pregnancies)
	}
	if f.Menopause == nil || *f.Menopause {
		t.Errorf("menopause = %v, want false", f.Menopause)
	}
	if f.HeavyPeriods != nil {
		t.Error("unchecked symptom should persist NULL")
	}
}

func TestSubmitFamilyHistoryNormalizesAndSkips(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	result, err := svc.Submit(context.Background(), &Submission{
		Family: FamilyTab{
			Entries: []FamilyEntryInput{
				{Relation: "Brother/Sister", Alive: "yes", Age: "44", Problems: []string{"heart", "diabetes", "gout"}},
				{}, // fully empty rows are dropped
				{Relation: "great aunt", Alive: "no", Problems: []string{"cancer"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(repo.famHist) != 2 {
		t.Fatalf("family rows = %d, want 2", len(repo.famHist))
	}

	sibling := repo.famHist[0]
	if sibling.Relation == nil || *sibling.Relation != "sibling" {
		t.Errorf("relation = %v, want sibling", sibling.Relation)
	}
	if sibling.Alive == nil || !*sibling.Alive {
		t.Error("alive should be true")
	}
	if sibling.Age == nil || *sibling.Age != 44 {
		t.Errorf("age = %v, want 44", sibling.Age)
	}

	extra := repo.famHist[1]
	if extra.Relation == nil || *extra.Relation != "great aunt" {
		t.Errorf("extra relation = %v, want pass-through", extra.Relation)
	}

	// heart resolves through its alias, diabetes directly, gout is skipped.
	var siblingProblems int
	for _, fp := range repo.famProbs {
		if fp.FamHistID == sibling.FamHistID {
			siblingProblems++
		}
	}
	if siblingProblems != 2 {
		t.Errorf("sibling problem rows = %d, want 2", siblingProblems)
	}
	if len(result.SkippedProblems) != 1 || result.SkippedProblems[0] != "gout" {
		t.Errorf("skipped_problems = %v, want [gout]", result.SkippedProblems)
	}
}

func TestSubmitSTIInterestImpliesScreenFlag(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), &Submission{
		Family: FamilyTab{STIInterest: []string{"gonorrhea", "hiv"}},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	in := repo.intakes[0]
	sx := repo.sexual[in.IntakeID]
	if sx.InterestedInSTIScreen == nil || !*sx.InterestedInSTIScreen {
		t.Error("selecting STIs should set interested_in_sti_screen true")
	}
	if len(repo.sti) != 2 {
		t.Errorf("sti rows = %d, want 2", len(repo.sti))
	}

	// No selections → unknown, not false.
	repo = newMockRepo()
	svc = newTestService(repo)
	if _, err := svc.Submit(context.Background(), &Submission{}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	in = repo.intakes[0]
	if repo.sexual[in.IntakeID].InterestedInSTIScreen != nil {
		t.Error("no selections should leave interested_in_sti_screen NULL")
	}
}

func TestSubmitStepFailureRollsBack(t *testing.T) {
	repo := newMockRepo()
	repo.failOn = "dental"
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), &Submission{})
	if err == nil {
		t.Fatal("expected error from failing step")
	}
	if !repo.rolledBack {
		t.Error("pipeline error must roll the transaction back")
	}
}

// =========== Reads ===========

func seedTwoVisits(t *testing.T, svc *Service, repo *mockRepo) int64 {
	t.Helper()

	first, err := svc.Submit(context.Background(), &Submission{
		Basic:  BasicInfoTab{LegalFirstName: "Ana", LegalLastName: "Reyes"},
		Health: HealthHistoryTab{MainReasonForVisit: "first visit"},
	})
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}

	// Second application for the same person, as a return visit would create.
	app := &Application{ApplicantID: first.PersonID, HasHealthInsurance: true}
	if err := repo.CreateApplication(context.Background(), app); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	in := &Intake{ApplicationID: app.ApplicationID, MainReasonForVisit: "follow up", ImmunizationsCurrent: "yes"}
	if err := repo.CreateIntake(context.Background(), in); err != nil {
		t.Fatalf("seed intake: %v", err)
	}
	if err := repo.CreateTBScreening(context.Background(), &TBScreening{IntakeID: in.IntakeID}); err != nil {
		t.Fatalf("seed tb: %v", err)
	}
	return first.PersonID
}

func TestGetPersonDetailPicksLatestVisit(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	personID := seedTwoVisits(t, svc, repo)

	detail, err := svc.GetPersonDetail(context.Background(), personID)
	if err != nil {
		t.Fatalf("GetPersonDetail: %v", err)
	}

	if detail.Application == nil || !detail.Application.HasHealthInsurance {
		t.Error("detail should show the newest application")
	}
	if detail.Intake == nil || detail.Intake.MainReasonForVisit != "follow up" {
		t.Error("detail should show the newest intake")
	}
}

func TestGetPersonDetailMissingSectionsNil(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	personID := seedTwoVisits(t, svc, repo)

	detail, err := svc.GetPersonDetail(context.Background(), personID)
	if err != nil {
		t.Fatalf("GetPersonDetail: %v", err)
	}

	// The seeded follow-up visit only has a TB screening.
	if detail.Intake.Nutrition != nil || detail.Intake.Male != nil || detail.Intake.Female != nil {
		t.Error("absent sections must be nil, not zero structs")
	}
	if detail.Intake.TBScreening == nil {
		t.Error("present section missing")
	}
}

func TestGetPersonDetailUnknownPerson(t *testing.T) {
	svc := newTestService(newMockRepo())
	if _, err := svc.GetPersonDetail(context.Background(), 999); err == nil {
		t.Fatal("expected error for unknown person")
	}
}

func TestListSubmissionsReturnsAllVisits(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	personID := seedTwoVisits(t, svc, repo)

	subs, err := svc.ListSubmissions(context.Background(), personID)
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("submissions = %d, want 2", len(subs))
	}
	if len(subs[0].Intakes) != 1 || len(subs[1].Intakes) != 1 {
		t.Error("each application should carry its intakes")
	}
}

func TestSearchPersonsRequiresQuery(t *testing.T) {
	svc := newTestService(newMockRepo())
	if _, err := svc.SearchPersons(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank query")
	}
}

func seedPerson(t *testing.T, repo *mockRepo, first, last, preferred string) {
	t.Helper()
	p := &Person{LegalFirstName: first, LegalLastName: last}
	if preferred != "" {
		p.PreferredName = strP(preferred)
	}
	if err := repo.CreatePerson(context.Background(), p); err != nil {
		t.Fatalf("seed person: %v", err)
	}
}

func TestSearchPersonsMatchingAndOrder(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	// First-name, last-name, and preferred-name-only matches, plus one miss.
	seedPerson(t, repo, "Peter", "Abbott", "")
	seedPerson(t, repo, "Jane", "Peterson", "")
	seedPerson(t, repo, "Maria", "Zapata", "Pea")
	seedPerson(t, repo, "Ana", "Reyes", "")

	got, err := svc.SearchPersons(context.Background(), "PE")
	if err != nil {
		t.Fatalf("SearchPersons: %v", err)
	}

	var lastNames []string
	for _, p := range got {
		lastNames = append(lastNames, p.LegalLastName)
	}
	want := []string{"Abbott", "Peterson", "Zapata"}
	if len(lastNames) != len(want) {
		t.Fatalf("matches = %v, want %v", lastNames, want)
	}
	for i := range want {
		if lastNames[i] != want[i] {
			t.Errorf("result %d = %q, want %q (ordered by last name)", i, lastNames[i], want[i])
		}
	}
}

func TestSearchPersonsUsesFixedPageSize(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	seedPerson(t, repo, "Ana", "Reyes", "")

	if _, err := svc.SearchPersons(context.Background(), "  ana "); err != nil {
		t.Fatalf("SearchPersons: %v", err)
	}
	if repo.searchLimit != 50 {
		t.Errorf("limit = %d, want 50", repo.searchLimit)
	}
}

func TestSubmitRoundTripPreservesValues(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	result, err := svc.Submit(context.Background(), &Submission{
		Basic: BasicInfoTab{
			LegalFirstName:     "Ana",
			LegalLastName:      "Reyes",
			PreferredName:      "Annie",
			Street:             "12 Oak St",
			City:               "Dayton",
			Zip:                "45402",
			HasHealthInsurance: boolPtr(true),
		},
		Health: HealthHistoryTab{
			MainReasonForVisit: "checkup",
			Allergies:          []AllergyInput{{Allergen: "penicillin", Reaction: "rash"}},
		},
		Family: FamilyTab{
			Entries: []FamilyEntryInput{
				{Relation: "mother", Alive: "yes", Age: "70", Problems: []string{"diabetes"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	detail, err := svc.GetPersonDetail(context.Background(), result.PersonID)
	if err != nil {
		t.Fatalf("GetPersonDetail: %v", err)
	}

	if detail.Person.LegalFirstName != "Ana" || fmtStr(detail.Person.PreferredName) != "Annie" {
		t.Error("identity fields lost in round trip")
	}
	if detail.Address == nil || detail.Address.Street != "12 Oak St" {
		t.Error("address lost in round trip")
	}
	if detail.Application == nil || !detail.Application.HasHealthInsurance {
		t.Error("insurance answer lost in round trip")
	}
	if len(detail.Intake.Allergies) != 1 || fmtStr(detail.Intake.Allergies[0].Allergen) != "penicillin" {
		t.Error("allergy lost in round trip")
	}
	if len(detail.Intake.FamilyHistory) != 1 {
		t.Fatalf("family rows = %d, want 1", len(detail.Intake.FamilyHistory))
	}
	fam := detail.Intake.FamilyHistory[0]
	if len(fam.Problems) != 1 || fam.Problems[0] != "diabetes" {
		t.Errorf("family problems = %v, want [diabetes]", fam.Problems)
	}
}

func TestServiceValidateAliases(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	if err := svc.ValidateAliases(context.Background()); err != nil {
		t.Fatalf("ValidateAliases: %v", err)
	}
}
