package staff

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stingwatch/internal/domain"
)

type Training interface {
	ListModules(ctx context.Context) ([]*domain.TrainingModule, error)
	ModuleDetail(ctx context.Context, userID, moduleID uuid.UUID) (*domain.ModuleDetail, error)
	StartModule(ctx context.Context, userID, moduleID uuid.UUID) (*domain.UserProgress, error)
	SubmitQuizAttempt(ctx context.Context, userID, moduleID uuid.UUID, submission domain.QuizSubmission) (*domain.QuizResult, error)
}

type Certifications interface {
	CurrentView(ctx context.Context, userID uuid.UUID) (*domain.CertificationView, error)
}

type Subscriptions interface {
	Register(ctx context.Context, userID uuid.UUID, req domain.SubscribeRequest, userAgent string) (*domain.PushSubscription, error)
	Deactivate(ctx context.Context, endpoint string) error
}

type TestSender interface {
	SendTest(ctx context.Context, userID uuid.UUID) (*domain.DispatchResult, error)
}

type Handler struct {
	logger         *slog.Logger
	Training       Training
	Certifications Certifications
	Subscriptions  Subscriptions
	TestSender     TestSender
	vapidPublicKey string
}

func NewHandler(
	logger *slog.Logger,
	training Training,
	certifications Certifications,
	subscriptions Subscriptions,
	testSender TestSender,
	vapidPublicKey string,
) *Handler {
	return &Handler{
		logger:         logger,
		Training:       training,
		Certifications: certifications,
		Subscriptions:  subscriptions,
		TestSender:     testSender,
		vapidPublicKey: vapidPublicKey,
	}
}

func (h *Handler) TrainingModuleList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("TrainingModuleList", slog.String("remote", r.RemoteAddr))

	modules, err := h.Training.ListModules(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"modules": modules})
}

func (h *Handler) TrainingModuleGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("TrainingModuleGet", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	moduleID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.Training.ModuleDetail(r.Context(), userID, moduleID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) TrainingModuleStart(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("TrainingModuleStart", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	moduleID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	progress, err := h.Training.StartModule(r.Context(), userID, moduleID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("module started",
		slog.String("user_id", userID.String()),
		slog.String("module_id", moduleID.String()))
	h.writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) TrainingQuizSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("TrainingQuizSubmit", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	moduleID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var submission domain.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	result, err := h.Training.SubmitQuizAttempt(r.Context(), userID, moduleID, submission)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("quiz graded",
		slog.String("user_id", userID.String()),
		slog.String("module_id", moduleID.String()),
		slog.Int("score", result.Score),
		slog.Bool("passed", result.Passed))
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) CertificationGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CertificationGet", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	view, err := h.Certifications.CurrentView(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) PushSubscribe(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PushSubscribe", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req domain.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	sub, err := h.Subscriptions.Register(r.Context(), userID, req, r.UserAgent())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("push subscription registered",
		slog.String("user_id", userID.String()),
		slog.String("subscription_id", sub.ID.String()))
	h.writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) PushUnsubscribe(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PushUnsubscribe", slog.String("remote", r.RemoteAddr))

	if _, ok := h.userID(w, r); !ok {
		return
	}

	var req domain.UnsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Subscriptions.Deactivate(r.Context(), req.Endpoint); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PushVapidPublicKey hands the browser the key it needs to create a push
// subscription. The private half never leaves the server.
func (h *Handler) PushVapidPublicKey(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"public_key": h.vapidPublicKey})
}

func (h *Handler) PushTest(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PushTest", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	result, err := h.TestSender.SendTest(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
