package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	appointmentHTTP "medication-reminder/internal/appointment/delivery/http"
	appointmentRepo "medication-reminder/internal/appointment/repository/postgre"
	appointmentUC "medication-reminder/internal/appointment/usecase"
	"medication-reminder/internal/medication"
	medicationHTTP "medication-reminder/internal/medication/delivery/http"
	medicationRepo "medication-reminder/internal/medication/repository/postgre"
	medicationUC "medication-reminder/internal/medication/usecase"
	messageHTTP "medication-reminder/internal/message/delivery/http"
	messageRepo "medication-reminder/internal/message/repository/postgre"
	messageUC "medication-reminder/internal/message/usecase"
	"medication-reminder/internal/middleware"
	"medication-reminder/internal/model"
	"medication-reminder/internal/tracker"
	trackerHTTP "medication-reminder/internal/tracker/delivery/http"
	trackerRepo "medication-reminder/internal/tracker/repository/postgre"
	trackerUC "medication-reminder/internal/tracker/usecase"
	userHTTP "medication-reminder/internal/user/delivery/http"
	userRepo "medication-reminder/internal/user/repository/postgre"
	userUC "medication-reminder/internal/user/usecase"
	"medication-reminder/internal/voice"
	voiceHTTP "medication-reminder/internal/voice/delivery/http"
	voiceUC "medication-reminder/internal/voice/usecase"
)

func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(srv.l, repo, srv.scopeManager)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

func (srv *HTTPServer) setupMedicationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) medication.UseCase {
	repo := medicationRepo.New(srv.postgresDB, srv.l)
	uc := medicationUC.New(srv.l, repo)
	h := medicationHTTP.New(srv.l, uc)
	medicationHTTP.RegisterRoutes(api.Group("/medications"), h, mw)

	srv.l.Infof(ctx, "Medication domain registered")
	return uc
}

func (srv *HTTPServer) setupTrackerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, meds medication.UseCase) tracker.UseCase {
	repo := trackerRepo.New(srv.postgresDB, srv.l)
	uc := trackerUC.New(srv.l, repo, meds)
	h := trackerHTTP.New(srv.l, uc)
	trackerHTTP.RegisterRoutes(api.Group("/tracker"), h, mw)

	srv.l.Infof(ctx, "Tracker domain registered")
	return uc
}

func (srv *HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, meds medication.UseCase, trk tracker.UseCase) {
	uc := voiceUC.New(meds, trackerClient{trk}, srv.l)

	// Transcripts arrive from clients over HTTP, so capture is always
	// available server-side and no real engine is attached.
	capCheck := func() voice.Capability { return voice.CapabilityAvailable }
	newEngine := func() voice.Engine { return voice.NopEngine{} }

	h := voiceHTTP.New(srv.l, uc, capCheck, newEngine)
	voiceHTTP.RegisterRoutes(api.Group("/voice"), h, mw)

	srv.l.Infof(ctx, "Voice domain registered")
}

func (srv *HTTPServer) setupAppointmentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := appointmentRepo.New(srv.postgresDB, srv.l)
	uc := appointmentUC.New(srv.l, repo, srv.calendar, srv.timezone)
	h := appointmentHTTP.New(srv.l, uc)
	appointmentHTTP.RegisterRoutes(api.Group("/appointments"), h, mw)

	srv.l.Infof(ctx, "Appointment domain registered (calendar sync: %v)", srv.calendar != nil)
}

func (srv *HTTPServer) setupMessageDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := messageRepo.New(srv.postgresDB, srv.l)
	uc := messageUC.New(srv.l, repo)
	h := messageHTTP.New(srv.l, uc)
	messageHTTP.RegisterRoutes(api.Group("/messages"), h, mw)

	srv.l.Infof(ctx, "Message domain registered")
}

// trackerClient narrows the tracker usecase to the closed action set the
// voice dispatcher may invoke.
type trackerClient struct {
	uc tracker.UseCase
}

func (t trackerClient) TrackMedication(ctx context.Context, sc model.Scope, in voice.TrackMedicationInput) error {
	_, err := t.uc.TrackMedication(ctx, sc, tracker.TrackMedicationInput{
		MedicationID: in.MedicationID,
		Taken:        in.Taken,
		TakenAt:      in.TakenAt,
		Missed:       in.Missed,
	})
	return err
}

func (t trackerClient) TrackWater(ctx context.Context, sc model.Scope, glasses int) error {
	_, err := t.uc.TrackWater(ctx, sc, glasses)
	return err
}

func (t trackerClient) TrackLunch(ctx context.Context, sc model.Scope, eaten bool) error {
	_, err := t.uc.TrackLunch(ctx, sc, eaten)
	return err
}
