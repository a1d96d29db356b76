package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/dials/corenote/internal/constants"
	"github.com/dials/corenote/internal/keyring"
	"github.com/dials/corenote/internal/models"
)

const previousAgenda = "---\nname: DIALS core meeting 2024-01-10\ntags: core meeting\n---\n\n" +
	"# DIALS core meeting 2024-01-10\n\n## Previous Actions\n\n- tag release\n\n" +
	"### Next meeting\n\nWednesday, January 24th, 4pm (GMT), 8am (PST)\n"

type services struct {
	mu       sync.Mutex
	created  []models.NewNote
	commits  []map[string]json.RawMessage
	lastDate string
}

func (s *services) hackmd(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /teams/dials/notes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Note{
			{ID: "last", Title: "DIALS core meeting " + s.lastDate},
			{ID: "misc", Title: "Beamtime planning"},
		})
	})
	mux.HandleFunc("GET /notes/last", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Note{ID: "last", Content: previousAgenda})
	})
	mux.HandleFunc("POST /teams/dials/notes", func(w http.ResponseWriter, r *http.Request) {
		var note models.NewNote
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			t.Errorf("decode note: %v", err)
		}
		s.mu.Lock()
		s.created = append(s.created, note)
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Note{ID: "newNote42", Title: note.Title})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (s *services) github(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string                     `json:"query"`
			Variables map[string]json.RawMessage `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode graphql request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(req.Query, "createCommitOnBranch") {
			var input map[string]json.RawMessage
			if err := json.Unmarshal(req.Variables["input"], &input); err != nil {
				t.Errorf("decode commit input: %v", err)
			}
			s.mu.Lock()
			s.commits = append(s.commits, input)
			s.mu.Unlock()
			w.Write([]byte(`{"data":{"createCommitOnBranch":{"commit":{"url":"https://github.com/dials/kb/commit/def456"}}}}`))
			return
		}
		w.Write([]byte(`{"data":{"repository":{"ref":{"target":{"oid":"abc123","file":null}}}}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupRun(t *testing.T, lastDate string) (*Context, *services, *bytes.Buffer, string) {
	t.Helper()
	gokeyring.MockInit()

	s := &services{lastDate: lastDate}
	hmd := s.hackmd(t)
	gh := s.github(t)

	dir := t.TempDir()
	snapshot := filepath.Join(dir, "_cache")

	t.Setenv(constants.ConfigPathEnv, "")
	t.Setenv("HACKMD_TOKEN", "hmd-token")
	t.Setenv("HACKMD_BASE_URL", hmd.URL)
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("GITHUB_GRAPHQL_URL", gh.URL)
	t.Setenv("CORENOTE_SNAPSHOT_PATH", snapshot)
	t.Setenv("CORENOTE_CONFIG_DIR", dir)
	t.Setenv("MEETING_TIMEZONE", "UTC")

	var out bytes.Buffer
	ctx := &Context{
		Out: &out,
		Now: func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) },
	}
	return ctx, s, &out, snapshot
}

func TestRunCmd(t *testing.T) {
	ctx, s, out, snapshot := setupRun(t, "2024-01-10")

	cmd := &RunCmd{Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run command failed: %v", err)
	}

	if len(s.created) != 1 || s.created[0].Title != "DIALS core meeting 2024-01-24" {
		t.Fatalf("created notes = %+v", s.created)
	}
	if s.created[0].ReadPermission != "guest" || s.created[0].WritePermission != "signed_in" {
		t.Errorf("permissions = %+v", s.created[0])
	}

	if len(s.commits) != 1 {
		t.Fatalf("commits = %d, want 1", len(s.commits))
	}
	var head string
	if err := json.Unmarshal(s.commits[0]["expectedHeadOid"], &head); err != nil || head != "abc123" {
		t.Errorf("expectedHeadOid = %q (%v)", head, err)
	}

	if _, err := os.Stat(snapshot); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
	for _, want := range []string{"Ignoring: Beamtime planning", "https://github.com/dials/kb/commit/def456", "2024-01-24"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunCmdWritesCalendar(t *testing.T) {
	ctx, _, _, _ := setupRun(t, "2024-01-10")
	ics := filepath.Join(t.TempDir(), "next.ics")

	cmd := &RunCmd{Yes: true, ICS: ics}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run command failed: %v", err)
	}

	data, err := os.ReadFile(ics)
	if err != nil {
		t.Fatalf("calendar not written: %v", err)
	}
	if !strings.Contains(string(data), "DTSTART:20240124T160000Z") {
		t.Errorf("unexpected calendar:\n%s", data)
	}
}

func TestRunCmdFutureMeetingIsGraceful(t *testing.T) {
	ctx, s, out, _ := setupRun(t, "2024-01-20")

	cmd := &RunCmd{Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("future meeting should not fail: %v", err)
	}
	if len(s.created) != 0 || len(s.commits) != 0 {
		t.Error("nothing should be written")
	}
	if !strings.Contains(out.String(), "future meeting already exists") {
		t.Errorf("output missing stop reason:\n%s", out.String())
	}
}

type declinePrompter struct{}

func (declinePrompter) Confirm(string) (bool, error)         { return false, nil }
func (declinePrompter) Input(string, string) (string, error) { return "", nil }

func TestRunCmdDeclineIsGraceful(t *testing.T) {
	ctx, s, _, _ := setupRun(t, "2024-01-10")
	ctx.Prompter = declinePrompter{}

	cmd := &RunCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("declining should not fail: %v", err)
	}
	if len(s.created) != 0 {
		t.Error("declined note was created")
	}
}

func TestRunCmdMissingToken(t *testing.T) {
	ctx, _, _, _ := setupRun(t, "2024-01-10")
	t.Setenv("GITHUB_TOKEN", "")

	cmd := &RunCmd{Yes: true}
	err := cmd.Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "github token missing") {
		t.Errorf("run command error = %v, want missing github token", err)
	}
}

func TestRunCmdTokenFromKeyring(t *testing.T) {
	ctx, s, _, _ := setupRun(t, "2024-01-10")
	t.Setenv("GITHUB_TOKEN", "")
	if err := keyring.SetToken(constants.KeyringGitHub, "gh-from-keyring"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	cmd := &RunCmd{Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run command failed: %v", err)
	}
	if len(s.commits) != 1 {
		t.Errorf("commits = %d, want 1", len(s.commits))
	}
}

func setupOffline(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	t.Setenv(constants.ConfigPathEnv, "")
	t.Setenv("MEETING_TIMEZONE", "UTC")

	var out bytes.Buffer
	return &Context{
		Out: &out,
		Now: func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) },
	}, &out
}

func TestPreviewCmd(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		want     string
		conflict bool
	}{
		{"defaults to today", "", "Wednesday, January 24th, 4pm (GMT), 8am (PST)", false},
		{"explicit date", "2024-01-24", "Wednesday, February 7th, 4pm (GMT), 8am (PST)", false},
		{"us dst conflict", "2024-03-06", "Due to time zone changes the normal meeting time must change", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupOffline(t)

			cmd := &PreviewCmd{Date: tt.date}
			if err := cmd.Run(ctx); err != nil {
				t.Fatalf("preview command failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
			if got := strings.Contains(out.String(), "Time zone conflict"); got != tt.conflict {
				t.Errorf("conflict notice = %v, want %v", got, tt.conflict)
			}
		})
	}
}

func TestPreviewCmdInvalidDate(t *testing.T) {
	ctx, _ := setupOffline(t)

	cmd := &PreviewCmd{Date: "2024-13-01"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("preview should reject month 13")
	}
}

func TestKeyringCommands(t *testing.T) {
	gokeyring.MockInit()
	var out bytes.Buffer
	ctx := &Context{Out: &out}

	if err := (&KeyringSetCmd{Service: "hackmd", Token: "abcdefghijkl"}).Run(ctx); err != nil {
		t.Fatalf("keyring set failed: %v", err)
	}

	out.Reset()
	if err := (&KeyringGetCmd{Service: "hackmd"}).Run(ctx); err != nil {
		t.Fatalf("keyring get failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "abcd********" {
		t.Errorf("keyring get printed %q", got)
	}
	if strings.Contains(out.String(), "ijkl") {
		t.Error("token not masked")
	}

	out.Reset()
	if err := (&KeyringStatusCmd{}).Run(ctx); err != nil {
		t.Fatalf("keyring status failed: %v", err)
	}
	if !strings.Contains(out.String(), "hackmd token is stored") || !strings.Contains(out.String(), "No github token stored") {
		t.Errorf("unexpected status:\n%s", out.String())
	}

	if err := (&KeyringDeleteCmd{Service: "hackmd"}).Run(ctx); err != nil {
		t.Fatalf("keyring delete failed: %v", err)
	}
	if err := (&KeyringDeleteCmd{Service: "hackmd"}).Run(ctx); err == nil {
		t.Error("deleting a missing token should fail")
	}
	if err := (&KeyringGetCmd{Service: "hackmd"}).Run(ctx); err == nil {
		t.Error("getting a deleted token should fail")
	}
}

func TestKeyringUnknownService(t *testing.T) {
	gokeyring.MockInit()
	ctx := &Context{Out: &bytes.Buffer{}}

	err := (&KeyringSetCmd{Service: "gitlab", Token: "x"}).Run(ctx)
	if !errors.Is(err, keyring.ErrUnknownService) {
		t.Errorf("keyring set error = %v, want ErrUnknownService", err)
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", "****"},
		{"abc", "****"},
		{"abcd", "****"},
		{"ghp_1234567890", "ghp_********"},
	}
	for _, tt := range tests {
		if got := maskToken(tt.token); got != tt.want {
			t.Errorf("maskToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestEnvCmd(t *testing.T) {
	var out bytes.Buffer
	if err := (&EnvCmd{}).Run(&Context{Out: &out}); err != nil {
		t.Fatalf("env command failed: %v", err)
	}
	if !strings.Contains(out.String(), "HACKMD_TOKEN") {
		t.Errorf("env output missing HACKMD_TOKEN:\n%s", out.String())
	}
}
