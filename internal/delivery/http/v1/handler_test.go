package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"study-planner-backend/config"
	v1 "study-planner-backend/internal/delivery/http/v1"
	"study-planner-backend/internal/domain"
	"study-planner-backend/internal/repository/memory"
	"study-planner-backend/internal/usecase"
	"study-planner-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

type fakeChat struct {
	chunks    []string
	err       error
	streamErr error
	got       *domain.ChatRequest
}

func (f *fakeChat) OpenStream(ctx context.Context, req *domain.ChatRequest) (domain.ChatStream, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &sliceStream{chunks: append([]string(nil), f.chunks...), err: f.streamErr}, nil
}

// sliceStream yields chunks, then err (io.EOF when nil)
type sliceStream struct {
	chunks []string
	err    error
}

func (s *sliceStream) Recv() (string, error) {
	if len(s.chunks) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, nil
}

func (s *sliceStream) Close() error { return nil }

func newTestRouter(t *testing.T, chat domain.ChatUsecase) (*gin.Engine, *auth.Issuer) {
	t.Helper()

	catalog, err := memory.NewCatalogRepository(memory.Latency{})
	require.NoError(t, err)

	validate := usecase.NewValidator()
	consultantUC := usecase.NewConsultantUsecase(catalog, validate)
	plannerUC := usecase.NewPlannerUsecase(catalog, validate)
	issuer := auth.NewIssuer("handler-test", time.Hour)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       usecase.NewAuthUsecase(issuer, 0),
		BootstrapUC:  usecase.NewBootstrapUsecase(consultantUC, plannerUC),
		ConsultantUC: consultantUC,
		ProfileUC:    usecase.NewProfileUsecase(catalog, validate),
		PlannerUC:    plannerUC,
		ChatUC:       chat,
		HealthUC:     usecase.NewHealthUsecase(nil),
		Sessions:     issuer,
		Config:       &config.Config{FrontendURL: "http://localhost:3020", ChatRateLimit: 20, RateLimitWindowSeconds: 60},
	})
	return router, issuer
}

func do(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, &fakeChat{})

	w := do(r, http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]string
	env := decode(t, w, &status)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "disabled", status["redis"])
}

func TestAuthFlow(t *testing.T) {
	r, _ := newTestRouter(t, &fakeChat{})

	w := do(r, http.MethodPost, "/v1/auth/login", `{"username":"  ","access_key":"whatever"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var session domain.Session
	decode(t, w, &session)
	assert.Equal(t, "BNBUer", session.Username)
	assert.NotEmpty(t, session.Token)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "session_token=")

	w = do(r, http.MethodGet, "/v1/auth/me", "", "Authorization", "Bearer "+session.Token)
	var me domain.CurrentUser
	decode(t, w, &me)
	assert.Equal(t, "BNBUer", me.Username)
	assert.True(t, me.Authenticated)

	w = do(r, http.MethodGet, "/v1/auth/me", "")
	decode(t, w, &me)
	assert.Equal(t, "同学", me.Username)
	assert.False(t, me.Authenticated)
}

func TestBootstrap(t *testing.T) {
	r, _ := newTestRouter(t, &fakeChat{})

	w := do(r, http.MethodGet, "/v1/bootstrap", "")
	require.Equal(t, http.StatusOK, w.Code)

	var b domain.Bootstrap
	decode(t, w, &b)
	assert.Equal(t, 3.4, b.Profile.GPA)
	assert.Len(t, b.Universities, 8)
	require.NotNil(t, b.Roadmap)
	assert.Equal(t, 14, b.Roadmap.TotalCredits)
}

func TestConsultantEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, &fakeChat{})

	t.Run("options", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/consultant/options", "")
		var opts domain.ConsultantOptions
		decode(t, w, &opts)
		assert.Len(t, opts.Majors, 6)
		assert.Contains(t, opts.Countries, "Hong Kong")
	})

	t.Run("wizard validate", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/consultant/wizard/validate", `{"step":"major","profile":{"major":"DS"}}`)
		var res domain.WizardValidateResult
		decode(t, w, &res)
		assert.True(t, res.CanProceed)
		assert.Equal(t, domain.StepGPA, res.NextStep)

		w = do(r, http.MethodPost, "/v1/consultant/wizard/validate", `{"profile":{}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("universities", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/consultant/universities", `{"gpa":3.4,"major":"FIN","target_countries":["USA","UK"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var res domain.ConsultantResult
		decode(t, w, &res)
		require.Len(t, res.Universities, 8)
		assert.Equal(t, "nyu", res.Universities[0].ID)
		assert.NotEmpty(t, res.Context)
	})

	t.Run("universities rejects bad profile", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/consultant/universities", `{"gpa":4.5,"major":"FIN"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w, nil)
		assert.False(t, env.Success)
	})

	t.Run("match", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/consultant/match", `{"gpa":3.4,"universities":[{"id":"a","min_gpa_req":3.6},{"id":"b","min_gpa_req":3.7}]}`)
		var res []domain.MatchedUniversity
		decode(t, w, &res)
		require.Len(t, res, 2)
		assert.Equal(t, "Match", string(res[0].DynamicMatch))
		assert.Equal(t, "Reach", string(res[1].DynamicMatch))
	})

	t.Run("context", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/consultant/context", `{"step":"country","profile":{"gpa":3.2,"major":"ACCT"}}`)
		var summary string
		decode(t, w, &summary)
		assert.Contains(t, summary, "正在第 3 步")
		assert.Contains(t, summary, "会计学 (ACCT)")
	})
}

func TestProfileUpdate(t *testing.T) {
	r, _ := newTestRouter(t, &fakeChat{})

	w := do(r, http.MethodPut, "/v1/profile", `{"gpa":3.5,"major":"STAT","target_countries":["Singapore"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var res domain.ProfileUpdateResult
	decode(t, w, &res)
	assert.Equal(t, domain.MajorStatistics, res.Profile.Major)

	w = do(r, http.MethodPut, "/v1/profile", `{"gpa":3.5,"major":"STAT","target_countries":["Mars"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, &fakeChat{})

	t.Run("courses", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/planner/courses?school=nyu", "")
		var res domain.RoadmapResult
		decode(t, w, &res)
		assert.Len(t, res.Courses, 4)
		assert.Equal(t, 3.3, res.Grades["FIN4002"])
		assert.Equal(t, 4.0, res.Grades["MGT3001"])
	})

	t.Run("simulate defaults", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/planner/simulate", `{"grades":{}}`)
		require.Equal(t, http.StatusOK, w.Code)
		var res domain.SimulationResult
		decode(t, w, &res)
		assert.Equal(t, "3.41", res.Display)
		assert.Equal(t, 14, res.TotalNewCredits)
		assert.False(t, res.Feasible)
	})

	t.Run("simulate rejects grade above scale", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/planner/simulate", `{"grades":{"FIN4002":5}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("export", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/planner/export", `{"grades":{"FIN4002":4}}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
	})
}

func TestGrades(t *testing.T) {
	r, _ := newTestRouter(t, &fakeChat{})

	w := do(r, http.MethodGet, "/v1/grades/scale", "")
	var scale []map[string]interface{}
	decode(t, w, &scale)
	assert.Len(t, scale, 7)

	tests := []struct {
		value string
		want  string
	}{
		{"3.7", "A-"},
		{"3.705", "A-"},
		{"3.5", "B"},
		{"2", "C"},
	}
	for _, tt := range tests {
		w := do(r, http.MethodGet, "/v1/grades/letter?value="+tt.value, "")
		var res v1.LetterResult
		decode(t, w, &res)
		assert.Equal(t, tt.want, string(res.Letter), tt.value)
	}

	for _, bad := range []string{"abc", "NaN", ""} {
		w := do(r, http.MethodGet, "/v1/grades/letter?value="+bad, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestChatStreams(t *testing.T) {
	chat := &fakeChat{chunks: []string{"你好", "，同学"}}
	r, _ := newTestRouter(t, chat)

	w := do(r, http.MethodPost, "/v1/chat", `{"messages":[{"role":"user","content":"hi"}],"data":{"context":"用户在规划器页面。"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "你好，同学", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	require.NotNil(t, chat.got)
	assert.Equal(t, "用户在规划器页面。", chat.got.Data.Context)
}

func TestChatFailures(t *testing.T) {
	tests := []struct {
		name string
		chat *fakeChat
		body string
	}{
		{"upstream error", &fakeChat{err: errors.New("401")}, `{"messages":[{"role":"user","content":"hi"}]}`},
		{"missing messages", &fakeChat{}, `{"data":{"context":"x"}}`},
		{"malformed body", &fakeChat{}, `{"messages":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, tt.chat)
			w := do(r, http.MethodPost, "/v1/chat", tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"Failed to process chat request"}`, w.Body.String())
		})
	}

	t.Run("upstream error after the first chunk", func(t *testing.T) {
		chat := &fakeChat{chunks: []string{"a"}, streamErr: errors.New("stream reset")}
		r, _ := newTestRouter(t, chat)
		w := do(r, http.MethodPost, "/v1/chat", `{"messages":[{"role":"user","content":"hi"}]}`)

		// Headers are already sent; the reply is cut short, never replaced by an error body
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a", w.Body.String())
		assert.NotContains(t, w.Body.String(), `"error"`)
	})
}
