package folio

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

func (a *App) handleAdminInbox(c echo.Context) error {
	filter := c.QueryParam("filter")
	search := c.QueryParam("q")
	subs, err := a.Content.Submissions(filter, search)
	if err != nil {
		return err
	}
	_, unread, err := a.Content.SubmissionCounts()
	if err != nil {
		return err
	}
	pageSubs, pagination := content.Paginate(subs, queryPage(c), content.PageSizeSubmissions)
	return Render(c, a.Views.AdminInbox(views.SubmissionListData{
		AdminPage:   a.adminPage(c),
		Submissions: pageSubs,
		Filter:      filter,
		Search:      search,
		Unread:      unread,
		Pagination:  pagination,
	}))
}

func (a *App) handleAdminMessage(c echo.Context) error {
	sub, err := a.Content.GetSubmission(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	return Render(c, a.Views.AdminMessage(views.SubmissionDetailData{
		AdminPage:  a.adminPage(c),
		Submission: sub,
	}))
}

func (a *App) handleAdminMessageNotes(c echo.Context) error {
	id := c.Param("id")
	if _, err := a.Content.UpdateSubmissionNotes(id, c.FormValue("notes")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Notes saved")
	return c.Redirect(http.StatusSeeOther, "/admin/messages/"+id+"/")
}

func (a *App) handleAdminMessageToggleRead(c echo.Context) error {
	sub, err := a.Content.ToggleSubmissionRead(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	if sub.IsRead {
		flash(c, "success", "Marked as read")
	} else {
		flash(c, "success", "Marked as unread")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/messages/")
}

func (a *App) handleAdminMessageDelete(c echo.Context) error {
	if err := a.Content.DeleteSubmission(c.Param("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	flash(c, "success", "Message deleted")
	return c.Redirect(http.StatusSeeOther, "/admin/messages/")
}

// handleAdminMessageBulk applies one action to the checked messages.
func (a *App) handleAdminMessageBulk(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return err
	}
	ids := form["ids"]
	if len(ids) == 0 {
		flash(c, "warning", "No messages selected")
		return c.Redirect(http.StatusSeeOther, "/admin/messages/")
	}
	switch c.FormValue("action") {
	case "mark-read":
		n, err := a.Content.MarkSubmissionsRead(ids)
		if err != nil {
			return err
		}
		flash(c, "success", fmt.Sprintf("%d message(s) marked as read", n))
	case "mark-unread":
		n, err := a.Content.MarkSubmissionsUnread(ids)
		if err != nil {
			return err
		}
		flash(c, "success", fmt.Sprintf("%d message(s) marked as unread", n))
	case "delete":
		n, err := a.Content.DeleteSubmissions(ids)
		if err != nil {
			return err
		}
		flash(c, "success", fmt.Sprintf("%d message(s) deleted", n))
	default:
		flash(c, "error", "Unknown bulk action")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/messages/")
}
