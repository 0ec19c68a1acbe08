package lgd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryIndexHTML = `<html><body>
<table class="directory"><tbody>
<tr>
  <td class="state-name">Maharashtra</td>
  <td class="state-code">27</td>
  <td><a href="/states/27">districts</a></td>
</tr>
<tr>
  <td class="state-name">Odisha</td>
  <td class="state-code">21</td>
  <td><a href="/states/21">districts</a></td>
</tr>
</tbody></table>
</body></html>`

const maharashtraHTML = `<html><body>
<table class="districts"><tbody>
<tr>
  <td class="district-name">Pune</td>
  <td class="district-code">521</td>
  <td><ul class="villages">
    <li>Wagholi — 556501</li>
    <li>Shirur — 556502</li>
  </ul></td>
</tr>
<tr>
  <td class="district-name">Nagpur</td>
  <td class="district-code">515</td>
</tr>
</tbody></table>
</body></html>`

const odishaHTML = `<html><body>
<table class="districts"><tbody>
<tr>
  <td class="district-name">Puri</td>
  <td class="district-code">370</td>
</tr>
</tbody></table>
</body></html>`

func TestImportDirectory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(directoryIndexHTML))
		case "/states/27":
			_, _ = w.Write([]byte(maharashtraHTML))
		case "/states/21":
			_, _ = w.Write([]byte(odishaHTML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	var (
		mx        sync.Mutex
		districts []string
		villages  []string
	)
	st := &storetest.Stub{
		UpsertStateFunc: func(_ context.Context, name, code string) (*domain.State, error) {
			id := int64(27)
			if name == "Odisha" {
				id = 21
			}
			return &domain.State{ID: id, Name: name, Code: code}, nil
		},
		UpsertDistrictFunc: func(_ context.Context, stateID int64, name, code string) (*domain.District, error) {
			mx.Lock()
			districts = append(districts, name)
			mx.Unlock()
			return &domain.District{ID: stateID*1000 + 1, StateID: stateID, Name: name, Code: code}, nil
		},
		UpsertVillageFunc: func(_ context.Context, districtID int64, name, code string) (*domain.Village, error) {
			mx.Lock()
			villages = append(villages, name+"/"+code)
			mx.Unlock()
			return &domain.Village{DistrictID: districtID, Name: name, Code: code}, nil
		},
	}

	states, err := NewService(st).ImportDirectory(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, states, 2)

	stateNames := []string{states[0].Name, states[1].Name}
	assert.ElementsMatch(t, []string{"Maharashtra", "Odisha"}, stateNames)
	assert.ElementsMatch(t, []string{"Pune", "Nagpur", "Puri"}, districts)
	assert.ElementsMatch(t, []string{"Wagholi/556501", "Shirur/556502"}, villages)
}

func TestImportDirectoryMissingDistrictsLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
<table class="directory"><tbody>
<tr><td class="state-name">Goa</td><td class="state-code">30</td><td></td></tr>
</tbody></table>
</body></html>`))
	}))
	defer server.Close()

	_, err := NewService(&storetest.Stub{}).ImportDirectory(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Goa")
}

func TestImportDirectoryDrainsLaunchedImportsOnError(t *testing.T) {
	// Maharashtra's import launches before the Goa row turns out to be
	// broken; the call must not return until that goroutine is done.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`<html><body>
<table class="directory"><tbody>
<tr><td class="state-name">Maharashtra</td><td class="state-code">27</td><td><a href="/states/27">districts</a></td></tr>
<tr><td class="state-name">Goa</td><td class="state-code">30</td><td></td></tr>
</tbody></table>
</body></html>`))
		case "/states/27":
			_, _ = w.Write([]byte(maharashtraHTML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	var upserts int32
	st := &storetest.Stub{
		UpsertStateFunc: func(_ context.Context, name, code string) (*domain.State, error) {
			time.Sleep(50 * time.Millisecond)
			atomic.AddInt32(&upserts, 1)
			return &domain.State{ID: 27, Name: name, Code: code}, nil
		},
		UpsertDistrictFunc: func(_ context.Context, stateID int64, name, code string) (*domain.District, error) {
			atomic.AddInt32(&upserts, 1)
			return &domain.District{ID: 1, StateID: stateID, Name: name, Code: code}, nil
		},
		UpsertVillageFunc: func(_ context.Context, districtID int64, name, code string) (*domain.Village, error) {
			atomic.AddInt32(&upserts, 1)
			return &domain.Village{DistrictID: districtID, Name: name, Code: code}, nil
		},
	}

	_, err := NewService(st).ImportDirectory(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Goa")

	// The slow state upsert completed before the error surfaced, and
	// nothing keeps writing afterwards.
	settled := atomic.LoadInt32(&upserts)
	assert.GreaterOrEqual(t, settled, int32(1))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt32(&upserts))
}
