// Command folio runs a portfolio site with the built-in starter theme.
// All site branding and credentials come from environment variables; a
// .env file in the working directory is loaded when present. Projects
// that want their own templ templates embed the folio package instead
// and pass their views to folio.New.
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nikmish/folio"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := folio.SiteConfig{
		Name:          folio.EnvOr("SITE_NAME", "Folio"),
		URL:           folio.EnvOr("SITE_URL", "http://localhost:8080"),
		Description:   folio.EnvOr("SITE_DESCRIPTION", "A personal portfolio"),
		Author:        folio.EnvOr("SITE_AUTHOR", "Site Author"),
		Addr:          folio.EnvOr("ADDR", ":8080"),
		DatabasePath:  folio.EnvOr("DATABASE_PATH", "data/folio.db"),
		MediaDir:      folio.EnvOr("MEDIA_DIR", "data/media"),
		AdminUsername: folio.EnvOr("ADMIN_USERNAME", "admin"),
		AdminPassword: folio.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: folio.MustEnv("SESSION_SECRET"),
		CookieSecure:  folio.EnvOr("COOKIE_SECURE", "") == "true",
	}

	app := folio.New(cfg, themeViews(cfg), folio.WithLogger(log))
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
