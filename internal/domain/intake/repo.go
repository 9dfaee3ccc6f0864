package intake

import "context"

// Repository is the persistence surface of the intake domain. Create methods
// assign the generated id back onto the passed struct so the pipeline can
// thread person_id → application_id → intake_id → fam_hist_id. When a
// transaction is active on the context (see InTx), every method runs on it.
type Repository interface {
	// InTx runs fn inside one database transaction; any error rolls back
	// everything fn wrote.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreatePerson(ctx context.Context, p *Person) error
	CreateAddress(ctx context.Context, a *Address) error
	CreateEmergencyContact(ctx context.Context, ec *EmergencyContact) error
	CreateApplication(ctx context.Context, app *Application) error
	CreateIntake(ctx context.Context, in *Intake) error
	CreateAllergy(ctx context.Context, a *Allergy) error
	CreateMedication(ctx context.Context, m *Medication) error
	CreatePastMedHistoryEvent(ctx context.Context, e *PastMedHistoryEvent) error
	CreateNutritionHistory(ctx context.Context, n *NutritionHistory) error
	CreateSocialHistory(ctx context.Context, s *SocialHistory) error
	CreateTBScreening(ctx context.Context, t *TBScreening) error
	CreateSexualHistory(ctx context.Context, s *SexualHistory) error
	CreateSTIInterest(ctx context.Context, s *STIInterest) error
	CreateDentalHistory(ctx context.Context, d *DentalHistory) error
	CreateMaleHistory(ctx context.Context, m *MaleHistory) error
	CreateFemaleHistory(ctx context.Context, f *FemaleHistory) error
	CreateFamilyHistory(ctx context.Context, fh *FamilyHistory) error
	CreateFamilyHistoryProblem(ctx context.Context, fhp *FamilyHistoryProblem) error

	ListFamilyProblems(ctx context.Context) ([]*FamilyProblemLookup, error)

	GetPerson(ctx context.Context, personID int64) (*Person, error)
	ListAddresses(ctx context.Context, personID int64) ([]*Address, error)
	ListEmergencyContacts(ctx context.Context, personID int64) ([]*EmergencyContact, error)
	ListApplications(ctx context.Context, personID int64) ([]*Application, error)
	ListIntakes(ctx context.Context, applicationID int64) ([]*Intake, error)

	ListAllergies(ctx context.Context, intakeID int64) ([]*Allergy, error)
	ListMedications(ctx context.Context, intakeID int64) ([]*Medication, error)
	ListPastMedHistoryEvents(ctx context.Context, intakeID int64) ([]*PastMedHistoryEvent, error)
	GetNutritionHistory(ctx context.Context, intakeID int64) (*NutritionHistory, error)
	GetSocialHistory(ctx context.Context, intakeID int64) (*SocialHistory, error)
	GetTBScreening(ctx context.Context, intakeID int64) (*TBScreening, error)
	GetSexualHistory(ctx context.Context, intakeID int64) (*SexualHistory, error)
	ListSTIInterest(ctx context.Context, intakeID int64) ([]*STIInterest, error)
	GetDentalHistory(ctx context.Context, intakeID int64) (*DentalHistory, error)
	GetMaleHistory(ctx context.Context, intakeID int64) (*MaleHistory, error)
	GetFemaleHistory(ctx context.Context, intakeID int64) (*FemaleHistory, error)
	ListFamilyHistories(ctx context.Context, intakeID int64) ([]*FamilyHistory, error)
	ListFamilyProblemNames(ctx context.Context, famHistID int64) ([]string, error)

	ListPersons(ctx context.Context, limit, offset int) ([]*PersonSummary, int, error)
	SearchPersons(ctx context.Context, query string, limit int) ([]*Person, error)
}
