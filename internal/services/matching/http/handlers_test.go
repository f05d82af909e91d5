package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "pairmatch/internal/platform/net/http"
	"pairmatch/internal/services/matching/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type fakeSvc struct {
	next     domain.NextResult
	progress domain.Progress
	submits  []domain.SubmitEvaluationInput
}

func (f *fakeSvc) NextPair(_ context.Context, _ uuid.UUID) (domain.NextResult, error) {
	return f.next, nil
}

func (f *fakeSvc) SubmitEvaluation(_ context.Context, in domain.SubmitEvaluationInput) error {
	f.submits = append(f.submits, in)
	return nil
}

func (f *fakeSvc) Progress(_ context.Context, _ uuid.UUID) (domain.Progress, error) {
	return f.progress, nil
}

func newServer(f *fakeSvc) *httptest.Server {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/sessions", func(rr phttp.Router) {
		Register(rr, f)
	})
	return httptest.NewServer(r.Mux())
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var env map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}

func TestStartMintsSession(t *testing.T) {
	srv := newServer(&fakeSvc{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/sessions/", "application/json", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	env := decode(t, resp)
	data, _ := env["data"].(map[string]any)
	raw, _ := data["session_id"].(string)
	if _, err := uuid.Parse(raw); err != nil {
		t.Fatalf("session_id %q is not a uuid", raw)
	}
}

func TestNextRejectsBadSessionID(t *testing.T) {
	srv := newServer(&fakeSvc{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/not-a-uuid/next")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d", resp.StatusCode)
	}
}

func TestNextReturnsTaggedStatus(t *testing.T) {
	f := &fakeSvc{next: domain.NextResult{Status: domain.StatusComplete}}
	srv := newServer(f)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/" + uuid.NewString() + "/next")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	env := decode(t, resp)
	data, _ := env["data"].(map[string]any)
	if data["status"] != string(domain.StatusComplete) {
		t.Fatalf("got %v", data)
	}
	if _, present := data["pair"]; present {
		t.Fatalf("pair should be omitted on completion")
	}
}

func TestNextReturnsPairPayload(t *testing.T) {
	f := &fakeSvc{next: domain.NextResult{
		Status: domain.StatusPair,
		Pair: &domain.Pair{
			Description1:     domain.Description{ID: 1, Content: "a"},
			Description2:     domain.Description{ID: 2, Content: "b"},
			CurrentPairIndex: 5,
			TotalPairs:       domain.TotalPairsPerSession,
		},
	}}
	srv := newServer(f)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/" + uuid.NewString() + "/next")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	env := decode(t, resp)
	data, _ := env["data"].(map[string]any)
	pair, _ := data["pair"].(map[string]any)
	if pair["current_pair_index"] != float64(5) {
		t.Fatalf("got %v", pair)
	}
}

func TestSubmitEvaluation(t *testing.T) {
	f := &fakeSvc{}
	srv := newServer(f)
	defer srv.Close()

	id := uuid.New()
	body := `{"description1_id": 1, "description2_id": 2, "is_match": true}`
	resp, err := http.Post(
		srv.URL+"/sessions/"+id.String()+"/evaluations",
		"application/json",
		strings.NewReader(body),
	)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if len(f.submits) != 1 {
		t.Fatalf("got %d submits", len(f.submits))
	}
	in := f.submits[0]
	if in.SessionID != id || in.Description1ID != 1 || in.Description2ID != 2 || !in.IsMatch {
		t.Fatalf("got %+v", in)
	}
}

func TestSubmitEvaluationValidates(t *testing.T) {
	f := &fakeSvc{}
	srv := newServer(f)
	defer srv.Close()

	resp, err := http.Post(
		srv.URL+"/sessions/"+uuid.NewString()+"/evaluations",
		"application/json",
		strings.NewReader(`{"description1_id": 0, "description2_id": 2}`),
	)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if len(f.submits) != 0 {
		t.Fatalf("invalid payload reached the service")
	}
}

func TestProgressEndpoint(t *testing.T) {
	id := uuid.New()
	f := &fakeSvc{progress: domain.Progress{SessionID: id, Completed: 10, Total: 50, Percent: 20}}
	srv := newServer(f)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/" + id.String() + "/progress")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	env := decode(t, resp)
	data, _ := env["data"].(map[string]any)
	if data["completed"] != float64(10) || data["percent"] != float64(20) {
		t.Fatalf("got %v", data)
	}
}
