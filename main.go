package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/i18n"
	"github.com/Zachkp/portfolio/internal/observability"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/styles"
)

type server struct {
	cfg     config.Config
	log     zerolog.Logger
	store   *store.Store
	content *i18n.Store
	mailer  mailer

	adminToken  string
	hashingSalt string

	// background tracks fire-and-forget writes from request handlers.
	background sync.WaitGroup
}

func newServer(cfg config.Config, logger zerolog.Logger, st *store.Store, content *i18n.Store, m mailer) *server {
	s := &server{
		cfg:     cfg,
		log:     logger,
		store:   st,
		content: content,
		mailer:  m,
	}
	s.initAdminToken()
	return s
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logger := observability.NewLogger("portfolio", cfg.LogLevel)
	observability.RegisterMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load content")
	}
	content := i18n.NewStore(catalog)
	if cfg.ContentPath != "" {
		w, err := i18n.Watch(cfg.ContentPath, content, logger)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.ContentPath).Msg("watch content")
		}
		defer w.Close()
		go func() {
			for range w.Reloaded {
				observability.RecordCatalogReload()
			}
		}()
	}

	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer st.Close()

	s := newServer(cfg, logger, st, content, smtpMailer{cfg: cfg.SMTP})
	go s.runRetention(ctx, 24*time.Hour)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.routes(),
		ReadHeaderTimeout: config.ReadHeader,
	}
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("serve")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Shutdown)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	s.background.Wait()
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), observability.RequestLogger(s.log, s.clientID), observability.RequestMetricsMiddleware())
	r.Use(s.visitorTrackingMiddleware())
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.GET("/", s.handleHome)
	r.GET("/styles/motion.css", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(styles.Stylesheet()))
	})

	// HTMX fragments
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", s.page(c))
	})
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "work-content.html", s.page(c))
	})
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education-content.html", s.page(c))
	})
	r.POST("/contact", s.handleContact)

	r.GET("/healthz", func(c *gin.Context) {
		if err := s.store.DB().PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.setupAdminRoutes(r)
	return r
}

func (s *server) handleHome(c *gin.Context) {
	tag, persist := i18n.ResolveTag(c.Request)
	if persist {
		i18n.SetLanguageCookie(c.Writer, tag)
	}
	c.HTML(http.StatusOK, "index.html", s.pageFor(tag))
}

// pageView is the data every page template renders from.
type pageView struct {
	Lang    string
	Catalog *i18n.Catalog
	Reveal  revealAttrs
	Flash   localized
}

// revealAttrs are rendered as data attributes on <body> for the browser
// client.
type revealAttrs struct {
	IntroMS        string
	ImageTimeoutMS string
	Strict         string
}

// T returns a catalog string in both languages. Missing keys render as
// the key itself.
func (p pageView) T(key string) localized {
	l := localized{
		EN: p.Catalog.Text(i18n.English, key),
		PT: p.Catalog.Text(i18n.Portuguese, key),
	}
	l.Current = l.EN
	if p.Lang == i18n.Code(i18n.Portuguese) {
		l.Current = l.PT
	}
	return l
}

// L localizes a structured catalog value.
func (p pageView) L(t i18n.Text) localized {
	return localize(t, p.Lang)
}

func (s *server) page(c *gin.Context) pageView {
	tag, _ := i18n.ResolveTag(c.Request)
	return s.pageFor(tag)
}

func (s *server) pageFor(tag language.Tag) pageView {
	return pageView{
		Lang:    i18n.Code(tag),
		Catalog: s.content.Catalog(),
		Reveal: revealAttrs{
			IntroMS:        strconv.FormatInt(s.cfg.Reveal.IntroDuration.Milliseconds(), 10),
			ImageTimeoutMS: strconv.FormatInt(s.cfg.Reveal.ImageTimeout.Milliseconds(), 10),
			Strict:         strconv.FormatBool(s.cfg.Reveal.Strict),
		},
	}
}
