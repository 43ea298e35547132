package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/engajamento/engaja/internal/client/api"
	"github.com/engajamento/engaja/internal/client/models"
	"github.com/engajamento/engaja/internal/common"
)

type fixedRole bool

func (r fixedRole) IsAdmin() bool { return bool(r) }

// echoServer answers every POST/PUT with the decoded body wrapped in the
// backend envelope, so tests can assert on what went over the wire.
func echoServer(t *testing.T, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		if capture != nil {
			*capture = body
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": body})
	}))
}

func TestLeaderCreateConvertsFormats(t *testing.T) {
	var sent map[string]any
	srv := echoServer(t, &sent)
	defer srv.Close()

	s := NewLeaders(api.New(srv.URL), fixedRole(true))
	_, err := s.Create(context.Background(), LeaderInput{
		Name:  "  João Lima ",
		Email: "joao@exemplo.org",
		Phone: "(11) 98888-7777",
		Birth: "25/12/1985",
	})
	require.NoError(t, err)

	require.Equal(t, "João Lima", sent["tx_nome"])
	require.Equal(t, "joao@exemplo.org", sent["tx_email"])
	require.Equal(t, float64(11), sent["nu_ddd"])
	require.Equal(t, float64(988887777), sent["nu_telefone"])
	require.Equal(t, "1985-12-25", sent["dt_nascimento"])
}

func TestLeaderCreateValidation(t *testing.T) {
	s := NewLeaders(api.New("http://unused.invalid"), fixedRole(true))

	tests := []struct {
		name string
		in   LeaderInput
	}{
		{"missing name", LeaderInput{Email: "a@b.c", Phone: "(11) 98888-7777", Birth: "25/12/1985"}},
		{"bad email", LeaderInput{Name: "x", Email: "nope", Phone: "(11) 98888-7777", Birth: "25/12/1985"}},
		{"bad phone", LeaderInput{Name: "x", Email: "a@b.c", Phone: "123", Birth: "25/12/1985"}},
		{"bad birth", LeaderInput{Name: "x", Email: "a@b.c", Phone: "(11) 98888-7777", Birth: "1985-12-25"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), tt.in)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestLeaderCreateRequiresAdmin(t *testing.T) {
	s := NewLeaders(api.New("http://unused.invalid"), fixedRole(false))
	_, err := s.Create(context.Background(), LeaderInput{
		Name: "x", Email: "a@b.c", Phone: "(11) 98888-7777", Birth: "25/12/1985",
	})
	require.ErrorIs(t, err, common.ErrValidation)

	require.ErrorIs(t, s.Delete(context.Background(), 1), common.ErrValidation)
}

func TestActivityCreateConvertsDay(t *testing.T) {
	var sent map[string]any
	srv := echoServer(t, &sent)
	defer srv.Close()

	s := NewActivities(api.New(srv.URL))
	_, err := s.Create(context.Background(), ActivityInput{Name: "Culto jovem", Day: "14/03/2026"})
	require.NoError(t, err)

	require.Equal(t, "Culto jovem", sent["tx_nome"])
	require.Equal(t, "2026-03-14", sent["dt_dia"])
}

func TestActivityCreateValidation(t *testing.T) {
	s := NewActivities(api.New("http://unused.invalid"))

	_, err := s.Create(context.Background(), ActivityInput{Name: "", Day: "14/03/2026"})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), ActivityInput{Name: "x", Day: "tomorrow"})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestPersonCreateLeaderFieldAdminOnly(t *testing.T) {
	var sent map[string]any
	srv := echoServer(t, &sent)
	defer srv.Close()

	in := PersonInput{
		Name:     "Maria",
		Phone:    "(21) 3333-4444",
		Birth:    "01/07/1990",
		LeaderID: 42,
	}

	// Admin: leader assignment goes through.
	admin := NewPeople(api.New(srv.URL), fixedRole(true))
	_, err := admin.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, float64(42), sent["leader_id"])

	// Leader: the field is stripped; the backend infers it from the token.
	leader := NewPeople(api.New(srv.URL), fixedRole(false))
	_, err = leader.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, float64(0), sent["leader_id"])
}

func TestReviewsSubmit(t *testing.T) {
	var sent map[string]any
	srv := echoServer(t, &sent)
	defer srv.Close()

	s := NewReviews(api.New(srv.URL))
	_, err := s.Submit(context.Background(), 3, 9, true)
	require.NoError(t, err)

	require.Equal(t, float64(3), sent["activity_id"])
	require.Equal(t, float64(9), sent["person_id"])
	require.Equal(t, true, sent["in_presence"])
}

func TestReviewsWeekDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/reviews/week", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":1,"activity_id":3,"person_id":9,"in_presence":false,"tx_atividade":"Culto","tx_pessoa":"Maria"}
		]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	s := NewReviews(api.New(srv.URL))
	got, err := s.Week(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, models.Review{
		ID: 1, ActivityID: 3, PersonID: 9, InPresence: false,
		ActivityName: "Culto", PersonName: "Maria",
	}, got[0])
}
