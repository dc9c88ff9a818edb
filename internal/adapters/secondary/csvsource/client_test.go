package csvsource

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/testutil"
)

const fixturePath = "testdata/spacex_launch_dash.csv"

func TestDecode_Fixture(t *testing.T) {
	f, err := os.Open(fixturePath)
	require.NoError(t, err)
	defer f.Close()

	records, err := Decode(f)
	require.NoError(t, err)

	if diff := cmp.Diff(testutil.Launches(), records); diff != "" {
		t.Errorf("decoded records mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_IgnoresExtraColumns(t *testing.T) {
	in := "Flight Number,Launch Site,Mission Outcome,class,Payload Mass (kg),Booster Version Category\n" +
		"7,KSC LC-39A,True ASDS,1,2490.5,FT\n"

	records, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.LaunchRecord{
		FlightNumber:           7,
		LaunchSite:             "KSC LC-39A",
		Class:                  1,
		PayloadMassKg:          2490.5,
		BoosterVersionCategory: "FT",
	}, records[0])
}

func TestDecode_MissingColumns(t *testing.T) {
	in := "Launch Site,Payload Mass (kg)\nKSC LC-39A,2490\n"

	_, err := Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class")
	assert.Contains(t, err.Error(), "Booster Version Category")
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestDecode_BadNumber(t *testing.T) {
	in := "Launch Site,class,Payload Mass (kg),Booster Version Category\nKSC LC-39A,1,heavy,FT\n"

	_, err := Decode(strings.NewReader(in))
	assert.Error(t, err)
}

func TestDecode_TooLarge(t *testing.T) {
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)

	// A limit ending exactly on a row boundary must not drop the rows after it.
	cut := int64(strings.LastIndex(strings.TrimRight(string(data), "\n"), "\n") + 1)

	_, err = decode(strings.NewReader(string(data)), cut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")

	records, err := decode(strings.NewReader(string(data)), int64(len(data)))
	require.NoError(t, err)
	assert.Len(t, records, 33)
}

func TestDecode_OverCap(t *testing.T) {
	header := "Launch Site,class,Payload Mass (kg),Booster Version Category\n"
	row := "KSC LC-39A,1,2490.5,FT\n"
	body := io.MultiReader(
		strings.NewReader(header),
		strings.NewReader(strings.Repeat(row, maxDatasetBytes/len(row)+1)),
	)

	_, err := Decode(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestHTTPSource_Fetch(t *testing.T) {
	body, err := os.ReadFile(fixturePath)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/spacex_launch_dash.csv", 5*time.Second)
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 33)
	assert.Equal(t, srv.URL+"/spacex_launch_dash.csv", src.Describe())
}

func TestHTTPSource_Fetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, 5*time.Second).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSource_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, time.Second).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFileSource_Fetch(t *testing.T) {
	src := NewFileSource(fixturePath)

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 33)
	assert.Equal(t, "file://"+fixturePath, src.Describe())
}

func TestFileSource_Fetch_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.csv")).Fetch(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_Fetch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(fixturePath).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
