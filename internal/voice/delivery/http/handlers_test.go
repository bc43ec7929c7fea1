package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
	"medication-reminder/internal/model"
	"medication-reminder/internal/voice"
	"medication-reminder/pkg/response"
	"medication-reminder/pkg/scope"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	mu          sync.Mutex
	transcripts []string
	outcome     voice.DispatchOutcome
}

func (m *mockUseCase) HandleUtterance(ctx context.Context, sc model.Scope, transcript string) voice.DispatchOutcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcripts = append(m.transcripts, transcript)
	return m.outcome
}

type testEnv struct {
	router *gin.Engine
	uc     *mockUseCase
	token  string
}

func newTestEnv(t *testing.T, capability voice.Capability) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := scope.NewJWTManager("test-secret", time.Hour)
	token, err := manager.Issue(scope.Payload{UserID: "u1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	uc := &mockUseCase{outcome: voice.DispatchOutcome{
		Kind:    voice.OutcomeSuccess,
		Message: "3 glasses of water recorded",
	}}

	h := New(mockLogger{}, uc,
		func() voice.Capability { return capability },
		func() voice.Engine { return voice.NopEngine{} },
	)

	r := gin.New()
	mw := middleware.New(mockLogger{}, manager, 0)
	RegisterRoutes(r.Group("/api/v1/voice"), h, mw)

	return &testEnv{router: r, uc: uc, token: token}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+e.token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	e.router.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func dataField(t *testing.T, resp response.Resp, key string) any {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %T", resp.Data)
	}
	return data[key]
}

func TestCommand(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityAvailable)

	w, resp := env.do(t, http.MethodPost, "/api/v1/voice/command", `{"transcript":"3 glasses of water"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := dataField(t, resp, "kind"); got != string(voice.OutcomeSuccess) {
		t.Errorf("kind = %v", got)
	}
	if len(env.uc.transcripts) != 1 || env.uc.transcripts[0] != "3 glasses of water" {
		t.Errorf("transcripts = %v", env.uc.transcripts)
	}
}

func TestCommandRejectsMissingTranscript(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityAvailable)

	w, _ := env.do(t, http.MethodPost, "/api/v1/voice/command", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if len(env.uc.transcripts) != 0 {
		t.Errorf("transcripts = %v", env.uc.transcripts)
	}
}

func TestCommandRequiresAuth(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityAvailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/voice/command", strings.NewReader(`{"transcript":"water"}`))
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCaptureFlow(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityAvailable)

	t.Run("start listens", func(t *testing.T) {
		w, resp := env.do(t, http.MethodPost, "/api/v1/voice/capture/start", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if got := dataField(t, resp, "state"); got != string(voice.StateListening) {
			t.Errorf("state = %v", got)
		}
	})

	t.Run("result completes and dispatches", func(t *testing.T) {
		w, resp := env.do(t, http.MethodPost, "/api/v1/voice/capture/result", `{"transcript":"taken zoloft"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if got := dataField(t, resp, "state"); got != string(voice.StateCompleted) {
			t.Errorf("state = %v", got)
		}
		if dataField(t, resp, "outcome") == nil {
			t.Error("missing outcome")
		}
		if len(env.uc.transcripts) != 1 || env.uc.transcripts[0] != "taken zoloft" {
			t.Errorf("transcripts = %v", env.uc.transcripts)
		}
	})

	t.Run("start again rejected until reset", func(t *testing.T) {
		w, _ := env.do(t, http.MethodPost, "/api/v1/voice/capture/start", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("reset returns to idle", func(t *testing.T) {
		_, resp := env.do(t, http.MethodPost, "/api/v1/voice/capture/reset", "")
		if got := dataField(t, resp, "state"); got != string(voice.StateIdle) {
			t.Errorf("state = %v", got)
		}
	})
}

func TestCaptureError(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityAvailable)

	env.do(t, http.MethodPost, "/api/v1/voice/capture/start", "")
	_, resp := env.do(t, http.MethodPost, "/api/v1/voice/capture/error", `{"reason":"no-speech"}`)
	if got := dataField(t, resp, "state"); got != string(voice.StateFailed) {
		t.Errorf("state = %v", got)
	}
	if got := dataField(t, resp, "error"); got != "no-speech" {
		t.Errorf("error = %v", got)
	}
	if len(env.uc.transcripts) != 0 {
		t.Errorf("transcripts = %v", env.uc.transcripts)
	}
}

func TestCaptureCancelDiscardsLateResult(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityAvailable)

	env.do(t, http.MethodPost, "/api/v1/voice/capture/start", "")
	env.do(t, http.MethodPost, "/api/v1/voice/capture/cancel", "")

	_, resp := env.do(t, http.MethodPost, "/api/v1/voice/capture/result", `{"transcript":"late"}`)
	if got := dataField(t, resp, "state"); got != string(voice.StateCancelled) {
		t.Errorf("state = %v", got)
	}
	if len(env.uc.transcripts) != 0 {
		t.Errorf("late result dispatched: %v", env.uc.transcripts)
	}
}

func TestCaptureConcurrentRequests(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityAvailable)

	send := func(path, body string) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+env.token)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		env.router.ServeHTTP(w, req)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			send("/api/v1/voice/capture/start", "")
		}()
		go func() {
			defer wg.Done()
			send("/api/v1/voice/capture/result", `{"transcript":"taken zoloft"}`)
		}()
		go func() {
			defer wg.Done()
			send("/api/v1/voice/capture/reset", "")
		}()
	}
	wg.Wait()

	// Whatever the interleaving, the session must land in a defined state.
	_, resp := env.do(t, http.MethodGet, "/api/v1/voice/capture", "")
	switch voice.CaptureState(dataField(t, resp, "state").(string)) {
	case voice.StateIdle, voice.StateListening, voice.StateCompleted:
	default:
		t.Errorf("state = %v", dataField(t, resp, "state"))
	}
}

func TestCaptureStartUnavailable(t *testing.T) {
	env := newTestEnv(t, voice.CapabilityUnavailable)

	w, _ := env.do(t, http.MethodPost, "/api/v1/voice/capture/start", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}

	_, resp := env.do(t, http.MethodGet, "/api/v1/voice/capture", "")
	if got := dataField(t, resp, "state"); got != string(voice.StateIdle) {
		t.Errorf("state = %v", got)
	}
}
