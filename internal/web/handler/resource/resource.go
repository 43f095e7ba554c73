// Package resource serves the simple content collections of the site:
// gallery, stories, team, journey and programs.
package resource

import (
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/web/handler"
)

// route registers the endpoints of one collection.
type route interface {
	register(app *fiber.App, db *gorm.DB, guard fiber.Handler)
}

// resource is a collection of T under path. reset clears the fields a
// client must not set, the id above all.
type resource[T any] struct {
	path     string
	order    string
	notFound string
	update   bool
	reset    func(*T)
}

func (r resource[T]) register(app *fiber.App, db *gorm.DB, guard fiber.Handler) {
	app.Route(handler.APIPath+r.path, func(router fiber.Router) {
		router.Get(handler.RootPath, r.list(db))
		router.Post(handler.RootPath, guard, r.create(db))

		if r.update {
			router.Put("/:id", guard, r.replace(db))
		}

		router.Delete("/:id", guard, r.remove(db))
	})
}

func (r resource[T]) list(db *gorm.DB) fiber.Handler {
	return func(c fiber.Ctx) error {
		items, err := collection.List[T](db, r.order)
		if err != nil {
			return err
		}

		return c.JSON(items)
	}
}

func (r resource[T]) create(db *gorm.DB) fiber.Handler {
	return func(c fiber.Ctx) error {
		item := new(T)
		if err := handler.BindJSON(c, item); err != nil {
			return err
		}

		r.reset(item)

		if err := collection.Create(db, item); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

func (r resource[T]) replace(db *gorm.DB) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return err
		}

		item := new(T)
		if err = handler.BindJSON(c, item); err != nil {
			return err
		}

		r.reset(item)

		updated, err := collection.Update(db, id, item)
		if err != nil {
			return handler.StoreError(err, r.notFound)
		}

		return c.JSON(updated)
	}
}

func (r resource[T]) remove(db *gorm.DB) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return err
		}

		if err = collection.Delete[T](db, id); err != nil {
			return err
		}

		return handler.Deleted(c)
	}
}

// routes of the site collections. The gallery has no update endpoint,
// the journey lists the newest milestone first.
func routes() []route {
	return []route{
		resource[models.GalleryItem]{
			path: "/gallery", order: "id", notFound: "Gallery item not found",
			reset: func(g *models.GalleryItem) { g.ID = 0 },
		},
		resource[models.Story]{
			path: "/stories", order: "id", notFound: "Story not found", update: true,
			reset: func(s *models.Story) { s.ID = 0 },
		},
		resource[models.TeamMember]{
			path: "/team", order: "id", notFound: "Team member not found", update: true,
			reset: func(m *models.TeamMember) { m.ID = 0 },
		},
		resource[models.Milestone]{
			path: "/journey", order: "id DESC", notFound: "Milestone not found", update: true,
			reset: func(m *models.Milestone) { m.ID = 0 },
		},
		resource[models.Program]{
			path: "/programs", order: "id", notFound: "Program not found", update: true,
			reset: func(p *models.Program) {
				p.ID = 0
				if p.Features == nil {
					p.Features = []string{}
				}
			},
		},
	}
}

// Service is the content collection handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the content collection handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the routes of every collection.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilInit
	}

	s.cfg = cfg
	s.db = db

	for _, r := range routes() {
		r.register(app, db, guard)
	}

	return nil
}
