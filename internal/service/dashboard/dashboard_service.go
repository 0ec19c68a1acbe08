package dashboard

import (
	"context"

	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ShellView is the rendered sidebar + active panel descriptor.
type ShellView struct {
	Variant      domain.DashboardVariant `json:"variant"`
	Sections     []SectionView           `json:"sections"`
	Active       SectionID               `json:"active"`
	MountedPanel string                  `json:"mounted_panel"`
}

type SectionView struct {
	Section
	Active bool `json:"active"`
}

// ShellFor routes the role to its variant and renders the shell with the
// requested section active; an empty section falls back to the default.
func (svc *Service) ShellFor(role domain.Role, active SectionID) (*ShellView, error) {
	variant, err := domain.RouteDashboard(role)
	if err != nil {
		return nil, err
	}

	shell, err := NewShell(variant)
	if err != nil {
		return nil, err
	}
	if active != "" {
		if err = shell.Activate(active); err != nil {
			return nil, err
		}
	}

	views := make([]SectionView, 0, len(shell.Sections))
	for _, section := range shell.Sections {
		views = append(views, SectionView{Section: section, Active: section.ID == shell.Active()})
	}

	return &ShellView{
		Variant:      variant,
		Sections:     views,
		Active:       shell.Active(),
		MountedPanel: shell.MountedPanel(),
	}, nil
}

// Stats backs the stat-card grid on every dashboard's landing section.
type Stats struct {
	AllocationCount     int64                           `json:"allocation_count"`
	AllocationCrore     string                          `json:"allocation_crore"`
	ReleaseCount        int64                           `json:"release_count"`
	ReleaseCrore        string                          `json:"release_crore"`
	ProposalsByStatus   map[domain.ProposalStatus]int64 `json:"proposals_by_status"`
	PendingCertificates int64                           `json:"pending_certificates"`
}

// Stats fans the independent aggregate queries out in parallel; each fetch
// is independent and unordered relative to the others.
func (svc *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		fundStats    *store.FundStats
		proposalCnts map[domain.ProposalStatus]int64
		pendingCerts int64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		fundStats, err = svc.store.FundStats(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		proposalCnts, err = svc.store.ProposalStatusCounts(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		pendingCerts, err = svc.store.PendingCertificateCount(egCtx)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Stats{
		AllocationCount:     fundStats.AllocationCount,
		AllocationCrore:     fundStats.AllocationCrore.String(),
		ReleaseCount:        fundStats.ReleaseCount,
		ReleaseCrore:        fundStats.ReleaseCrore.String(),
		ProposalsByStatus:   proposalCnts,
		PendingCertificates: pendingCerts,
	}, nil
}
