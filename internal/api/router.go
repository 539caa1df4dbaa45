package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/qa-backend/internal/api/handlers"
	"github.com/baharkarakas/qa-backend/internal/auth"
	"github.com/baharkarakas/qa-backend/internal/config"
	"github.com/baharkarakas/qa-backend/internal/metrics"
	"github.com/baharkarakas/qa-backend/internal/middleware"
	"github.com/baharkarakas/qa-backend/internal/services"
)

type RouterDeps struct {
	Cfg         config.Config
	Tokens      *auth.TokenManager
	UserSvc     *services.UserService
	QuestionSvc *services.QuestionService
	AnswerSvc   *services.AnswerService
	AuthSvc     *services.AuthService
}

// numeric path ids; anything else 404s in the router
const idParam = "{id:[0-9]+}"

func NewRouter(d RouterDeps) http.Handler {
	users := handlers.NewUserHandler(d.UserSvc)
	questions := handlers.NewQuestionHandler(d.QuestionSvc)
	answers := handlers.NewAnswerHandler(d.AnswerSvc)
	authH := handlers.NewAuthHandler(d.AuthSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(gate(d.Cfg, d.Tokens))

		// ---------- auth ----------
		r.Post(middleware.AuthenticatePath, authH.Login)
		r.Post(middleware.RefreshPath, authH.Refresh)

		// ---------- users ----------
		r.Route("/user", func(r chi.Router) {
			r.Post("/", users.Create)
			r.Get("/", users.List)
			r.Get("/"+idParam, users.Get)
			r.Put("/"+idParam, users.Update)
			r.Delete("/"+idParam, users.Delete)
		})

		// ---------- questions & answers ----------
		r.Route("/question", func(r chi.Router) {
			r.Post("/", questions.Create)
			r.Get("/", questions.List)
			r.Get("/"+idParam, questions.Get)
			r.Put("/"+idParam, questions.Update)
			r.Delete("/"+idParam, questions.Delete)

			r.Route("/{questionId:[0-9]+}/answers", func(r chi.Router) {
				r.Post("/", answers.Create)
				r.Get("/", answers.List)
				r.Get("/{answerId:[0-9]+}", answers.Get)
				r.Put("/{answerId:[0-9]+}", answers.Update)
				r.Delete("/{answerId:[0-9]+}", answers.Delete)
			})
		})
	})

	return r
}
