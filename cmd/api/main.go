package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/RonaldMark17/TrueBayan/internal/api"
	"github.com/RonaldMark17/TrueBayan/internal/config"
	"github.com/RonaldMark17/TrueBayan/internal/feed"
	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
	"github.com/RonaldMark17/TrueBayan/internal/scheduler"
	"github.com/RonaldMark17/TrueBayan/internal/scraper"
	"github.com/RonaldMark17/TrueBayan/internal/social"
	"github.com/RonaldMark17/TrueBayan/internal/speech"
	"github.com/RonaldMark17/TrueBayan/internal/storage"
	"github.com/RonaldMark17/TrueBayan/internal/translate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("main: no .env file, using environment as-is")
	}
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("main: storage init failed: %v", err)
	}

	news := newsapi.NewClient(cfg.NewsAPIKey)
	translator := translate.New()
	synth := speech.New()
	pages := scraper.New()
	annotator := social.NewAnnotator(store)
	feeds := feed.NewService(news, store, annotator, translator)

	if cfg.PrewarmCronSpec != "" {
		sched, err := scheduler.New(cfg.PrewarmCronSpec, feeds)
		if err != nil {
			log.Fatalf("main: scheduler init failed: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	r := gin.Default()
	server := api.NewServer(store, feeds, pages, translator, synth)
	server.RegisterRoutes(r, cfg.SessionKey)

	log.Printf("main: listening on :%s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("main: server exited: %v", err)
	}
}
