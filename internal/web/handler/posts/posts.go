// Package posts serves the class feed plus authoring and moderation of
// posts. Every mutating route is gated by the capability set, the backend
// enforces the same rules once more.
package posts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/models"
	"github.com/ponto-de-aula/ponto-de-aula/internal/services"
	"github.com/ponto-de-aula/ponto-de-aula/internal/validation"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/navigation"
)

const (
	// Path is the base path for the feed.
	Path = handler.RootPath + "posts"

	// TemplateList renders the feed and "my posts".
	TemplateList = "posts/list"
	// TemplateDetail renders a single post.
	TemplateDetail = "posts/detail"
	// TemplateForm renders the create/edit form.
	TemplateForm = "posts/form"

	// DefaultPageSize for the feed.
	DefaultPageSize = 10
)

// Service provides the feed handlers.
type Service struct {
	cfg *config.Config
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.cfg = cfg

	// fixed paths first, ":id" catches everything else
	app.Get(Path, s.List)
	app.Get(Path+"/mine", s.Mine)
	app.Get(Path+"/new", s.New)
	app.Post(Path, s.Create)
	app.Get(Path+"/:id", s.Detail)
	app.Get(Path+"/:id/edit", s.Edit)
	app.Post(Path+"/:id", s.Update)
	app.Post(Path+"/:id/delete", s.Delete)
}

func (s *Service) posts(c *fiber.Ctx) *services.Posts {
	return services.NewPosts(handler.Client(c, s.cfg))
}

// List shows the feed with search, tag and author filters.
func (s *Service) List(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	nav := navigation.NewContext("Feed", "posts", "feed").
		AddBreadcrumb("Feed", Path, true).
		WithTabs(caps)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	params := models.PostSearchParams{
		Search:    c.Query("search", ""),
		Tag:       c.Query("tag", ""),
		AuthorID:  c.Query("authorId", ""),
		Page:      page,
		Limit:     DefaultPageSize,
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
	}

	svc := s.posts(c)

	res, err := svc.Search(c.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("feed search failed")

		return c.Status(fiber.StatusBadGateway).Render(TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      "Não foi possível carregar o feed",
			"Search":     params.Search,
		}, handler.BaseLayout)
	}

	authors, err := svc.Authors(c.Context())
	if err != nil {
		// the filter dropdown is optional, the feed still renders
		log.Warn().Err(err).Msg("failed to load feed authors")
	}

	return c.Render(TemplateList, fiber.Map{
		"Navigation":    nav,
		"Posts":         res.Data,
		"Authors":       authors,
		"Search":        params.Search,
		"Tag":           params.Tag,
		"AuthorID":      params.AuthorID,
		"CanCreate":     caps != nil && caps.CanCreatePost(),
		"Page":          res.Pagination.Page,
		"TotalPages":    res.Pagination.TotalPages,
		"TotalItems":    res.Pagination.Total,
		"HasPrev":       res.Pagination.Page > 1,
		"HasNext":       res.Pagination.Page < res.Pagination.TotalPages,
		"PrevPage":      res.Pagination.Page - 1,
		"NextPage":      res.Pagination.Page + 1,
		"ShowingMine":   false,
		"CurrentUserID": currentUserID(c),
	}, handler.BaseLayout)
}

// Mine shows the posts authored by the signed-in user.
func (s *Service) Mine(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	if caps == nil || !caps.CanCreatePost() {
		return c.Redirect(Path)
	}

	nav := navigation.NewContext("Meus posts", "posts", "mine").
		AddBreadcrumb("Feed", Path, false).
		AddBreadcrumb("Meus posts", Path+"/mine", true).
		WithTabs(caps)

	res, err := s.posts(c).Mine(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load own posts")

		return c.Status(fiber.StatusBadGateway).Render(TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      "Não foi possível carregar seus posts",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateList, fiber.Map{
		"Navigation":    nav,
		"Posts":         res.Data,
		"CanCreate":     true,
		"ShowingMine":   true,
		"CurrentUserID": currentUserID(c),
	}, handler.BaseLayout)
}

// Detail shows a single post with edit/delete actions when permitted.
func (s *Service) Detail(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)

	post, err := s.posts(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to load post")

		return c.Redirect(Path)
	}

	nav := navigation.NewContext(post.Title, "posts", "feed").
		AddBreadcrumb("Feed", Path, false).
		AddBreadcrumb(post.Title, Path+"/"+post.ID, true).
		WithTabs(caps)

	return c.Render(TemplateDetail, fiber.Map{
		"Navigation": nav,
		"Post":       post,
		"CanEdit":    caps != nil && caps.CanEdit(post),
		"CanDelete":  caps != nil && caps.CanDelete(post),
	}, handler.BaseLayout)
}

// New shows the creation form.
func (s *Service) New(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	if caps == nil || !caps.CanCreatePost() {
		return c.Redirect(Path)
	}

	nav := navigation.NewContext("Novo post", "posts", "mine").
		AddBreadcrumb("Feed", Path, false).
		AddBreadcrumb("Novo post", Path+"/new", true).
		WithTabs(caps)

	return c.Render(TemplateForm, fiber.Map{
		"Navigation": nav,
		"IsCreate":   true,
		"Post":       models.Post{},
	}, handler.BaseLayout)
}

// Create publishes a new post.
func (s *Service) Create(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	if caps == nil || !caps.CanCreatePost() {
		return c.Redirect(Path)
	}

	form := postForm(c)

	if err := validation.ValidatePost(form); err != nil {
		return s.renderForm(c, fiber.StatusBadRequest, true, models.Post{
			Title:    form.Title,
			Content:  form.Content,
			ImageURL: form.ImageURL,
			VideoURL: form.VideoURL,
		}, "Título com ao menos 3 e conteúdo com ao menos 10 caracteres")
	}

	_, err := s.posts(c).Create(c.Context(), models.CreatePostPayload{
		Title:    form.Title,
		Content:  form.Content,
		Tags:     models.SplitTags(form.TagsInput),
		ImageURL: form.ImageURL,
		VideoURL: form.VideoURL,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create post")

		return s.renderForm(c, fiber.StatusBadGateway, true, models.Post{
			Title:   form.Title,
			Content: form.Content,
		}, "Não foi possível publicar o post")
	}

	return c.Redirect(Path + "/mine")
}

// Edit shows the edit form when the user owns the post or the policy allows it.
func (s *Service) Edit(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)

	post, err := s.posts(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Redirect(Path)
	}

	if caps == nil || !caps.CanEdit(post) {
		return c.Redirect(Path + "/" + post.ID)
	}

	return s.renderForm(c, fiber.StatusOK, false, *post, "")
}

// Update modifies an existing post.
func (s *Service) Update(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	svc := s.posts(c)

	post, err := svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Redirect(Path)
	}

	if caps == nil || !caps.CanEdit(post) {
		return c.Redirect(Path + "/" + post.ID)
	}

	form := postForm(c)

	if err := validation.ValidatePost(form); err != nil {
		post.Title = form.Title
		post.Content = form.Content

		return s.renderForm(c, fiber.StatusBadRequest, false, *post,
			"Título com ao menos 3 e conteúdo com ao menos 10 caracteres")
	}

	_, err = svc.Update(c.Context(), post.ID, models.UpdatePostPayload{
		Title:    form.Title,
		Content:  form.Content,
		Tags:     models.SplitTags(form.TagsInput),
		ImageURL: form.ImageURL,
		VideoURL: form.VideoURL,
	})
	if err != nil {
		log.Error().Err(err).Str("id", post.ID).Msg("failed to update post")

		return s.renderForm(c, fiber.StatusBadGateway, false, *post, "Não foi possível salvar o post")
	}

	return c.Redirect(Path + "/" + post.ID)
}

// Delete removes a post.
func (s *Service) Delete(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	svc := s.posts(c)

	post, err := svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Redirect(Path)
	}

	if caps == nil || !caps.CanDelete(post) {
		return c.Redirect(Path + "/" + post.ID)
	}

	if err := svc.Delete(c.Context(), post.ID); err != nil {
		log.Error().Err(err).Str("id", post.ID).Msg("failed to delete post")
	}

	return c.Redirect(Path)
}

func (s *Service) renderForm(c *fiber.Ctx, status int, isCreate bool, post models.Post, errMsg string) error {
	title := "Editar post"
	page := "feed"

	if isCreate {
		title = "Novo post"
		page = "mine"
	}

	nav := navigation.NewContext(title, "posts", page).
		AddBreadcrumb("Feed", Path, false).
		AddBreadcrumb(title, "#", true).
		WithTabs(handler.Capabilities(c))

	data := fiber.Map{
		"Navigation": nav,
		"IsCreate":   isCreate,
		"Post":       post,
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	return c.Status(status).Render(TemplateForm, data, handler.BaseLayout)
}

func postForm(c *fiber.Ctx) validation.PostForm {
	return validation.PostForm{
		Title:     c.FormValue("title"),
		Content:   c.FormValue("content"),
		TagsInput: c.FormValue("tags"),
		ImageURL:  c.FormValue("image_url"),
		VideoURL:  c.FormValue("video_url"),
	}
}

func currentUserID(c *fiber.Ctx) string {
	if user := handler.CurrentUser(c); user != nil {
		return user.ID
	}

	return ""
}
