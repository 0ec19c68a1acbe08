// Package storetest provides a function-field stub of store.Store for
// service tests.
package storetest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/store"
)

// Stub implements store.Store by delegating to optional function fields.
// Calling a method whose field is nil panics, so tests fail loudly on
// unexpected store access.
type Stub struct {
	CreateUserFunc         func(ctx context.Context, user *domain.User) error
	GetUserByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	GetUserByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateProfileFunc      func(ctx context.Context, profile *domain.Profile) error
	GetProfileByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	CreateSessionFunc      func(ctx context.Context, rec *domain.SessionRecord) error
	GetSessionByTokenFunc  func(ctx context.Context, token string) (*domain.SessionRecord, error)
	DeleteSessionFunc      func(ctx context.Context, token string) error

	UpsertStateFunc       func(ctx context.Context, name, code string) (*domain.State, error)
	UpsertDistrictFunc    func(ctx context.Context, stateID int64, name, code string) (*domain.District, error)
	UpsertVillageFunc     func(ctx context.Context, districtID int64, name, code string) (*domain.Village, error)
	ListStatesFunc        func(ctx context.Context) ([]*domain.State, error)
	ListDistrictsFunc     func(ctx context.Context, opts store.ListDistrictsOpts) ([]*domain.ExtendedDistrict, error)
	GetStateByNameFunc    func(ctx context.Context, name string) (*domain.State, error)
	GetDistrictByNameFunc func(ctx context.Context, name string) (*domain.District, error)

	InsertAllocationFunc func(ctx context.Context, alloc *domain.FundAllocation) error
	ListAllocationsFunc  func(ctx context.Context, opts store.ListFundsOpts) ([]*domain.FundAllocation, error)
	InsertReleaseFunc    func(ctx context.Context, release *domain.FundRelease) error
	ListReleasesFunc     func(ctx context.Context, opts store.ListFundsOpts) ([]*domain.FundRelease, error)

	InsertProposalFunc     func(ctx context.Context, proposal *domain.Proposal) error
	GetProposalByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListProposalsFunc      func(ctx context.Context, opts store.ListProposalsOpts) ([]*domain.ExtendedProposal, error)
	TransitionProposalFunc func(ctx context.Context, id uuid.UUID, from, to domain.ProposalStatus, reason string) error

	InsertCertificateFunc    func(ctx context.Context, cert *domain.UtilizationCertificate) error
	GetCertificateByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.UtilizationCertificate, error)
	ListCertificatesFunc     func(ctx context.Context, opts store.ListCertificatesOpts) ([]*domain.UtilizationCertificate, error)
	SetCertificateStatusFunc func(ctx context.Context, id uuid.UUID, to domain.CertificateStatus, remarks string, verifiedBy uuid.UUID) error

	InsertDistrictAdminFunc func(ctx context.Context, admin *domain.DistrictAdmin) error
	ListDistrictAdminsFunc  func(ctx context.Context, opts store.ListAdminsOpts) ([]*domain.DistrictAdmin, error)
	UpdateDistrictAdminFunc func(ctx context.Context, id uuid.UUID, upd store.UpdateDistrictAdminOpts) (*domain.DistrictAdmin, error)

	InsertNotificationFunc     func(ctx context.Context, n *domain.Notification) error
	ListNotificationsFunc      func(ctx context.Context, audience string) ([]*domain.Notification, error)
	DeactivateNotificationFunc func(ctx context.Context, id uuid.UUID) error

	FundStatsFunc               func(ctx context.Context) (*store.FundStats, error)
	ProposalStatusCountsFunc    func(ctx context.Context) (map[domain.ProposalStatus]int64, error)
	PendingCertificateCountFunc func(ctx context.Context) (int64, error)
}

var _ store.Store = (*Stub)(nil)

func missing(method string) string {
	return fmt.Sprintf("storetest: unexpected call to %s", method)
}

func (s *Stub) CreateUser(ctx context.Context, user *domain.User) error {
	if s.CreateUserFunc == nil {
		panic(missing("CreateUser"))
	}
	return s.CreateUserFunc(ctx, user)
}

func (s *Stub) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.GetUserByEmailFunc == nil {
		panic(missing("GetUserByEmail"))
	}
	return s.GetUserByEmailFunc(ctx, email)
}

func (s *Stub) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.GetUserByIDFunc == nil {
		panic(missing("GetUserByID"))
	}
	return s.GetUserByIDFunc(ctx, id)
}

func (s *Stub) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	if s.CreateProfileFunc == nil {
		panic(missing("CreateProfile"))
	}
	return s.CreateProfileFunc(ctx, profile)
}

func (s *Stub) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if s.GetProfileByUserIDFunc == nil {
		panic(missing("GetProfileByUserID"))
	}
	return s.GetProfileByUserIDFunc(ctx, userID)
}

func (s *Stub) CreateSession(ctx context.Context, rec *domain.SessionRecord) error {
	if s.CreateSessionFunc == nil {
		panic(missing("CreateSession"))
	}
	return s.CreateSessionFunc(ctx, rec)
}

func (s *Stub) GetSessionByToken(ctx context.Context, token string) (*domain.SessionRecord, error) {
	if s.GetSessionByTokenFunc == nil {
		panic(missing("GetSessionByToken"))
	}
	return s.GetSessionByTokenFunc(ctx, token)
}

func (s *Stub) DeleteSession(ctx context.Context, token string) error {
	if s.DeleteSessionFunc == nil {
		panic(missing("DeleteSession"))
	}
	return s.DeleteSessionFunc(ctx, token)
}

func (s *Stub) UpsertState(ctx context.Context, name, code string) (*domain.State, error) {
	if s.UpsertStateFunc == nil {
		panic(missing("UpsertState"))
	}
	return s.UpsertStateFunc(ctx, name, code)
}

func (s *Stub) UpsertDistrict(ctx context.Context, stateID int64, name, code string) (*domain.District, error) {
	if s.UpsertDistrictFunc == nil {
		panic(missing("UpsertDistrict"))
	}
	return s.UpsertDistrictFunc(ctx, stateID, name, code)
}

func (s *Stub) UpsertVillage(ctx context.Context, districtID int64, name, code string) (*domain.Village, error) {
	if s.UpsertVillageFunc == nil {
		panic(missing("UpsertVillage"))
	}
	return s.UpsertVillageFunc(ctx, districtID, name, code)
}

func (s *Stub) ListStates(ctx context.Context) ([]*domain.State, error) {
	if s.ListStatesFunc == nil {
		panic(missing("ListStates"))
	}
	return s.ListStatesFunc(ctx)
}

func (s *Stub) ListDistricts(ctx context.Context, opts store.ListDistrictsOpts) ([]*domain.ExtendedDistrict, error) {
	if s.ListDistrictsFunc == nil {
		panic(missing("ListDistricts"))
	}
	return s.ListDistrictsFunc(ctx, opts)
}

func (s *Stub) GetStateByName(ctx context.Context, name string) (*domain.State, error) {
	if s.GetStateByNameFunc == nil {
		panic(missing("GetStateByName"))
	}
	return s.GetStateByNameFunc(ctx, name)
}

func (s *Stub) GetDistrictByName(ctx context.Context, name string) (*domain.District, error) {
	if s.GetDistrictByNameFunc == nil {
		panic(missing("GetDistrictByName"))
	}
	return s.GetDistrictByNameFunc(ctx, name)
}

func (s *Stub) InsertAllocation(ctx context.Context, alloc *domain.FundAllocation) error {
	if s.InsertAllocationFunc == nil {
		panic(missing("InsertAllocation"))
	}
	return s.InsertAllocationFunc(ctx, alloc)
}

func (s *Stub) ListAllocations(ctx context.Context, opts store.ListFundsOpts) ([]*domain.FundAllocation, error) {
	if s.ListAllocationsFunc == nil {
		panic(missing("ListAllocations"))
	}
	return s.ListAllocationsFunc(ctx, opts)
}

func (s *Stub) InsertRelease(ctx context.Context, release *domain.FundRelease) error {
	if s.InsertReleaseFunc == nil {
		panic(missing("InsertRelease"))
	}
	return s.InsertReleaseFunc(ctx, release)
}

func (s *Stub) ListReleases(ctx context.Context, opts store.ListFundsOpts) ([]*domain.FundRelease, error) {
	if s.ListReleasesFunc == nil {
		panic(missing("ListReleases"))
	}
	return s.ListReleasesFunc(ctx, opts)
}

func (s *Stub) InsertProposal(ctx context.Context, proposal *domain.Proposal) error {
	if s.InsertProposalFunc == nil {
		panic(missing("InsertProposal"))
	}
	return s.InsertProposalFunc(ctx, proposal)
}

func (s *Stub) GetProposalByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	if s.GetProposalByIDFunc == nil {
		panic(missing("GetProposalByID"))
	}
	return s.GetProposalByIDFunc(ctx, id)
}

func (s *Stub) ListProposals(ctx context.Context, opts store.ListProposalsOpts) ([]*domain.ExtendedProposal, error) {
	if s.ListProposalsFunc == nil {
		panic(missing("ListProposals"))
	}
	return s.ListProposalsFunc(ctx, opts)
}

func (s *Stub) TransitionProposal(ctx context.Context, id uuid.UUID, from, to domain.ProposalStatus, reason string) error {
	if s.TransitionProposalFunc == nil {
		panic(missing("TransitionProposal"))
	}
	return s.TransitionProposalFunc(ctx, id, from, to, reason)
}

func (s *Stub) InsertCertificate(ctx context.Context, cert *domain.UtilizationCertificate) error {
	if s.InsertCertificateFunc == nil {
		panic(missing("InsertCertificate"))
	}
	return s.InsertCertificateFunc(ctx, cert)
}

func (s *Stub) GetCertificateByID(ctx context.Context, id uuid.UUID) (*domain.UtilizationCertificate, error) {
	if s.GetCertificateByIDFunc == nil {
		panic(missing("GetCertificateByID"))
	}
	return s.GetCertificateByIDFunc(ctx, id)
}

func (s *Stub) ListCertificates(ctx context.Context, opts store.ListCertificatesOpts) ([]*domain.UtilizationCertificate, error) {
	if s.ListCertificatesFunc == nil {
		panic(missing("ListCertificates"))
	}
	return s.ListCertificatesFunc(ctx, opts)
}

func (s *Stub) SetCertificateStatus(ctx context.Context, id uuid.UUID, to domain.CertificateStatus, remarks string, verifiedBy uuid.UUID) error {
	if s.SetCertificateStatusFunc == nil {
		panic(missing("SetCertificateStatus"))
	}
	return s.SetCertificateStatusFunc(ctx, id, to, remarks, verifiedBy)
}

func (s *Stub) InsertDistrictAdmin(ctx context.Context, admin *domain.DistrictAdmin) error {
	if s.InsertDistrictAdminFunc == nil {
		panic(missing("InsertDistrictAdmin"))
	}
	return s.InsertDistrictAdminFunc(ctx, admin)
}

func (s *Stub) ListDistrictAdmins(ctx context.Context, opts store.ListAdminsOpts) ([]*domain.DistrictAdmin, error) {
	if s.ListDistrictAdminsFunc == nil {
		panic(missing("ListDistrictAdmins"))
	}
	return s.ListDistrictAdminsFunc(ctx, opts)
}

func (s *Stub) UpdateDistrictAdmin(ctx context.Context, id uuid.UUID, upd store.UpdateDistrictAdminOpts) (*domain.DistrictAdmin, error) {
	if s.UpdateDistrictAdminFunc == nil {
		panic(missing("UpdateDistrictAdmin"))
	}
	return s.UpdateDistrictAdminFunc(ctx, id, upd)
}

func (s *Stub) InsertNotification(ctx context.Context, n *domain.Notification) error {
	if s.InsertNotificationFunc == nil {
		panic(missing("InsertNotification"))
	}
	return s.InsertNotificationFunc(ctx, n)
}

func (s *Stub) ListNotifications(ctx context.Context, audience string) ([]*domain.Notification, error) {
	if s.ListNotificationsFunc == nil {
		panic(missing("ListNotifications"))
	}
	return s.ListNotificationsFunc(ctx, audience)
}

func (s *Stub) DeactivateNotification(ctx context.Context, id uuid.UUID) error {
	if s.DeactivateNotificationFunc == nil {
		panic(missing("DeactivateNotification"))
	}
	return s.DeactivateNotificationFunc(ctx, id)
}

func (s *Stub) FundStats(ctx context.Context) (*store.FundStats, error) {
	if s.FundStatsFunc == nil {
		panic(missing("FundStats"))
	}
	return s.FundStatsFunc(ctx)
}

func (s *Stub) ProposalStatusCounts(ctx context.Context) (map[domain.ProposalStatus]int64, error) {
	if s.ProposalStatusCountsFunc == nil {
		panic(missing("ProposalStatusCounts"))
	}
	return s.ProposalStatusCountsFunc(ctx)
}

func (s *Stub) PendingCertificateCount(ctx context.Context) (int64, error) {
	if s.PendingCertificateCountFunc == nil {
		panic(missing("PendingCertificateCount"))
	}
	return s.PendingCertificateCountFunc(ctx)
}
