package api

import (
	"time"

	"github.com/pranishr/portfolio-api/config"
	"github.com/pranishr/portfolio-api/database"
)

// tokenValidity is the lifetime of an issued admin token. There is no
// refresh flow; a new token comes only from a fresh login.
const tokenValidity = 24 * time.Hour

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	baseURL := config.GetString(cfg, "API_BASE_URL", "http://localhost:8080")

	authority := newTokenAuthority([]byte(config.GetString(cfg, "JWT_SECRET", "")), tokenValidity)
	creds := adminCredentials{
		username:     config.GetString(cfg, "ADMIN_USERNAME", ""),
		passwordHash: config.GetString(cfg, "ADMIN_PASSWORD_HASH", ""),
		password:     config.GetString(cfg, "ADMIN_PASSWORD", ""),
	}

	return &routeHandlers{
		authHandler:          newAuthHandler(authority, creds),
		projectHandler:       newProjectHandler(database.ProjectRepo(), baseURL),
		skillHandler:         newSkillHandler(database.SkillRepo(), database.ProjectRepo()),
		experienceHandler:    newExperienceHandler(database.ExperienceRepo()),
		certificationHandler: newCertificationHandler(database.CertificationRepo(), baseURL),
		resumeHandler:        newResumeHandler(database.ResumeRepo()),
		messageHandler:       newMessageHandler(database.MessageRepo()),
	}
}
