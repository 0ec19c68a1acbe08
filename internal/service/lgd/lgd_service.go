// Package lgd seeds the reference geography (states, districts, villages)
// by parsing the published Local Government Directory tables.
package lgd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/logger"
	"github.com/pmajay/portal/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ImportDirectory fetches the directory index, then walks each state's
// district table concurrently and upserts everything by LGD code. Re-running
// the import refreshes renamed entities in place.
func (s *Service) ImportDirectory(ctx context.Context, mainURL string) ([]*domain.State, error) {
	doc, err := s.fetchDoc(ctx, mainURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get directory index: %w", err)
	}

	states := make([]*domain.State, 0, 40)
	statesMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	doc.Find("table.directory tbody tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		stateName := strings.TrimSpace(tr.Find("td.state-name").Text())
		stateCode := strings.TrimSpace(tr.Find("td.state-code").Text())
		if stateName == "" || stateCode == "" {
			return true
		}

		districtsHref, ok := tr.Find("td a").Attr("href")
		if !ok {
			// Feed the error through the group so already-launched
			// imports are cancelled and waited on, not abandoned.
			linkErr := fmt.Errorf("couldn't find districts link for state %s", stateName)
			eg.Go(func() error { return linkErr })
			return false
		}

		eg.Go(func() error {
			state, upsertErr := s.store.UpsertState(egCtx, stateName, stateCode)
			if upsertErr != nil {
				return fmt.Errorf("store.UpsertState, state-%s: %w", stateName, upsertErr)
			}

			if importErr := s.importDistricts(egCtx, state, fmt.Sprintf("%s/%s", mainURL, strings.TrimPrefix(districtsHref, "/"))); importErr != nil {
				return fmt.Errorf("importDistricts, state-%s: %w", stateName, importErr)
			}

			logger.Infof(ctx, "imported geography for %s", stateName)

			statesMx.Lock()
			defer statesMx.Unlock()
			states = append(states, state)
			return nil
		})

		return true
	})

	if err = eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return states, nil
}

func (s *Service) importDistricts(ctx context.Context, state *domain.State, url string) error {
	doc, err := s.fetchDoc(ctx, url)
	if err != nil {
		return err
	}

	doc.Find("table.districts tbody tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		districtName := strings.TrimSpace(tr.Find("td.district-name").Text())
		districtCode := strings.TrimSpace(tr.Find("td.district-code").Text())
		if districtName == "" || districtCode == "" {
			return true
		}

		district, upsertErr := s.store.UpsertDistrict(ctx, state.ID, districtName, districtCode)
		if upsertErr != nil {
			err = fmt.Errorf("store.UpsertDistrict, district-%s: %w", districtName, upsertErr)
			return false
		}

		// Village rows are nested in the same table under each district.
		tr.Find("ul.villages li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
			parts := strings.Split(li.Text(), " — ")
			if len(parts) != 2 {
				return true
			}
			if _, vErr := s.store.UpsertVillage(ctx, district.ID, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); vErr != nil {
				err = fmt.Errorf("store.UpsertVillage, district-%s: %w", districtName, vErr)
				return false
			}
			return true
		})

		return err == nil
	})

	return err
}

func (s *Service) fetchDoc(ctx context.Context, url string) (doc *goquery.Document, err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = http.DefaultClient.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	doc, err = goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	return doc, nil
}
