package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"projecttracker/internal/adapter/firebase"
	adapthttp "projecttracker/internal/adapter/http"
	"projecttracker/internal/adapter/postgres"
	"projecttracker/internal/app"
	"projecttracker/internal/config"
	"projecttracker/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	var verifier domain.IdentityVerifier
	if cfg.FirebaseProjectID != "" {
		verifier, err = firebase.New(context.Background(), cfg.FirebaseProjectID)
		if err != nil {
			log.Fatalf("firebase verifier: %v", err)
		}
	} else {
		log.Printf("FIREBASE_PROJECT_ID not set, firebase login disabled")
	}

	tokens := app.NewTokenIssuer([]byte(cfg.SecretKey), cfg.SessionTTL)
	authSvc := app.NewAuthService(db, verifier, tokens)
	managerSvc := app.NewManagerService(db)
	clientSvc := app.NewClientService(db)
	projectSvc := app.NewProjectService(db)
	teamSvc := app.NewTeamMemberService(db)
	feedbackSvc := app.NewFeedbackService(db)

	h := adapthttp.New(authSvc, managerSvc, clientSvc, projectSvc, teamSvc, feedbackSvc, cfg.SecureCookies).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
