package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	// auth
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	CreateSession(ctx context.Context, rec *domain.SessionRecord) error
	GetSessionByToken(ctx context.Context, token string) (*domain.SessionRecord, error)
	DeleteSession(ctx context.Context, token string) error

	// geography
	UpsertState(ctx context.Context, name, code string) (*domain.State, error)
	UpsertDistrict(ctx context.Context, stateID int64, name, code string) (*domain.District, error)
	UpsertVillage(ctx context.Context, districtID int64, name, code string) (*domain.Village, error)
	ListStates(ctx context.Context) ([]*domain.State, error)
	ListDistricts(ctx context.Context, opts ListDistrictsOpts) ([]*domain.ExtendedDistrict, error)
	GetStateByName(ctx context.Context, name string) (*domain.State, error)
	GetDistrictByName(ctx context.Context, name string) (*domain.District, error)

	// funds
	InsertAllocation(ctx context.Context, alloc *domain.FundAllocation) error
	ListAllocations(ctx context.Context, opts ListFundsOpts) ([]*domain.FundAllocation, error)
	InsertRelease(ctx context.Context, release *domain.FundRelease) error
	ListReleases(ctx context.Context, opts ListFundsOpts) ([]*domain.FundRelease, error)

	// proposals
	InsertProposal(ctx context.Context, proposal *domain.Proposal) error
	GetProposalByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListProposals(ctx context.Context, opts ListProposalsOpts) ([]*domain.ExtendedProposal, error)
	TransitionProposal(ctx context.Context, id uuid.UUID, from, to domain.ProposalStatus, reason string) error

	// utilization certificates
	InsertCertificate(ctx context.Context, cert *domain.UtilizationCertificate) error
	GetCertificateByID(ctx context.Context, id uuid.UUID) (*domain.UtilizationCertificate, error)
	ListCertificates(ctx context.Context, opts ListCertificatesOpts) ([]*domain.UtilizationCertificate, error)
	SetCertificateStatus(ctx context.Context, id uuid.UUID, to domain.CertificateStatus, remarks string, verifiedBy uuid.UUID) error

	// district admins
	InsertDistrictAdmin(ctx context.Context, admin *domain.DistrictAdmin) error
	ListDistrictAdmins(ctx context.Context, opts ListAdminsOpts) ([]*domain.DistrictAdmin, error)
	UpdateDistrictAdmin(ctx context.Context, id uuid.UUID, upd UpdateDistrictAdminOpts) (*domain.DistrictAdmin, error)

	// notifications
	InsertNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, audience string) ([]*domain.Notification, error)
	DeactivateNotification(ctx context.Context, id uuid.UUID) error

	// dashboard stats
	FundStats(ctx context.Context) (*FundStats, error)
	ProposalStatusCounts(ctx context.Context) (map[domain.ProposalStatus]int64, error)
	PendingCertificateCount(ctx context.Context) (int64, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
