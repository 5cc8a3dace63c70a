package folio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminBlogs(c echo.Context) error {
	status := c.QueryParam("status")
	blogs, err := a.Content.AllBlogs(status)
	if err != nil {
		return err
	}
	page, pagination := content.Paginate(blogs, queryPage(c), content.PageSizePublic)
	return Render(c, a.Views.AdminBlogs(views.BlogManagerData{
		AdminPage:    a.adminPage(c),
		Blogs:        page,
		StatusFilter: status,
		Pagination:   pagination,
	}))
}

func (a *App) handleAdminBlogEditor(c echo.Context) error {
	data := views.BlogEditorData{AdminPage: a.adminPage(c)}
	if id := c.Param("id"); id != "" {
		b, err := a.Content.GetBlog(id)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				return echo.ErrNotFound
			}
			return err
		}
		data.Blog = b
	}
	return Render(c, a.Views.AdminBlogEditor(data))
}

func (a *App) handleAdminBlogCreate(c echo.Context) error {
	in, err := a.blogInput(c)
	if err != nil {
		return a.blogFormError(c, err, "/admin/blogs/new/")
	}
	author := content.BlogAuthor{
		Username: AdminUsername(c),
		Name:     a.Config.Author,
	}
	b, err := a.Content.CreateBlog(in, author)
	if err != nil {
		return a.blogFormError(c, err, "/admin/blogs/new/")
	}
	a.Cache.Invalidate()
	flash(c, "success", "Blog created")
	return c.Redirect(http.StatusSeeOther, "/admin/blogs/"+b.ID+"/")
}

func (a *App) handleAdminBlogUpdate(c echo.Context) error {
	id := c.Param("id")
	in, err := a.blogInput(c)
	if err != nil {
		return a.blogFormError(c, err, "/admin/blogs/"+id+"/")
	}
	if _, err := a.Content.UpdateBlog(id, in); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return a.blogFormError(c, err, "/admin/blogs/"+id+"/")
	}
	a.Cache.Invalidate()
	flash(c, "success", "Blog saved")
	return c.Redirect(http.StatusSeeOther, "/admin/blogs/"+id+"/")
}

func (a *App) handleAdminBlogDelete(c echo.Context) error {
	if _, err := a.Content.DeleteBlog(c.Param("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	a.Cache.Invalidate()
	flash(c, "success", "Blog deleted")
	return c.Redirect(http.StatusSeeOther, "/admin/blogs/")
}

func (a *App) handleAdminBlogToggle(c echo.Context) error {
	b, err := a.Content.ToggleBlogActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	a.Cache.Invalidate()
	if b.IsActive {
		flash(c, "success", "Blog activated")
	} else {
		flash(c, "success", "Blog deactivated")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/blogs/")
}

// blogInput reads the editor form, storing a new cover image if one was
// uploaded.
func (a *App) blogInput(c echo.Context) (content.BlogInput, error) {
	in := content.BlogInput{
		Title:    c.FormValue("title"),
		Content:  c.FormValue("content"),
		Preview:  c.FormValue("preview"),
		Tags:     SplitTags(c.FormValue("tags")),
		Status:   c.FormValue("status"),
		Publish:  c.FormValue("action") == "publish",
		ReadTime: formInt(c, "read_time", content.DefaultReadTime),
		IsActive: formBool(c, "is_active"),
	}
	file, err := c.FormFile("cover_image")
	if err == nil {
		path, err := a.storeImageUpload(file, "blogs", coverImageWidth)
		if err != nil {
			return in, err
		}
		in.CoverImagePath = path
	}
	return in, nil
}

// blogFormError surfaces validation and upload problems as flashes and
// sends the admin back to the editor.
func (a *App) blogFormError(c echo.Context, err error, back string) error {
	if content.IsValidation(err) || errors.Is(err, ErrUploadTooLarge) {
		flash(c, "error", err.Error())
		return c.Redirect(http.StatusSeeOther, back)
	}
	return err
}
