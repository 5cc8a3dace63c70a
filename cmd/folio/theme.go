package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/nikmish/folio"
	"github.com/nikmish/folio/content"
	"github.com/nikmish/folio/views"
)

// The starter theme renders plain semantic HTML so the binary works out of
// the box. Real deployments are expected to bring their own templ views.

func themeViews(cfg folio.SiteConfig) folio.ViewFuncs {
	t := theme{cfg: cfg}
	return folio.ViewFuncs{
		Home:     t.home,
		About:    t.about,
		Skills:   t.skills,
		Projects: t.projects,
		Project:  t.project,
		Blog:     t.blog,
		BlogPost: t.blogPost,
		Contact:  t.contact,

		AdminLogin:       t.adminLogin,
		AdminDashboard:   t.adminDashboard,
		AdminBlogs:       t.adminBlogs,
		AdminBlogEditor:  t.adminBlogEditor,
		AdminProjects:    t.adminProjects,
		AdminProjectForm: t.adminProjectForm,
		AdminSkills:      t.adminSkills,
		AdminResearch:    t.adminResearch,
		AdminAboutItems:  t.adminAboutItems,
		AdminPageConfig:  t.adminPageConfig,
		AdminProfile:     t.adminProfile,
		AdminInbox:       t.adminInbox,
		AdminMessage:     t.adminMessage,

		NotFound:    t.notFound,
		ServerError: t.serverError,
	}
}

type theme struct {
	cfg folio.SiteConfig
}

func esc(s string) string { return templ.EscapeString(s) }

// page wraps pre-built body markup in the shared shell. The body is trusted
// markup assembled by the theme itself; all user data passes through esc
// before reaching it.
func (t theme) page(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | %s</title>
</head>
<body>
<nav>
<a href="/">Home</a> <a href="/about/">About</a> <a href="/skills/">Skills</a>
<a href="/projects/">Projects</a> <a href="/blog/">Blog</a> <a href="/contact/">Contact</a>
</nav>
<main>
%s
</main>
<footer><p>&copy; %s</p></footer>
</body>
</html>`, esc(title), esc(t.cfg.Name), body, esc(t.cfg.Author))
		return err
	})
}

func (t theme) adminShell(title string, p views.AdminPage, body string) templ.Component {
	var b strings.Builder
	for _, f := range p.Flashes {
		fmt.Fprintf(&b, `<p class="flash %s">%s</p>`, esc(views.FlashClass(f.Level)), esc(f.Message))
	}
	b.WriteString(body)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s | Admin</title></head>
<body>
<nav>
<a href="/admin/">Dashboard</a> <a href="/admin/blogs/">Blogs</a>
<a href="/admin/projects/">Projects</a> <a href="/admin/skills/">Skills</a>
<a href="/admin/research/">Research</a> <a href="/admin/about/items/">About</a>
<a href="/admin/messages/">Inbox</a> <a href="/admin/profile/">Profile</a>
</nav>
<main>%s</main>
</body>
</html>`, esc(title), b.String())
		return err
	})
}

func postButton(csrf, action, label string) string {
	return fmt.Sprintf(`<form method="post" action="%s" style="display:inline"><input type="hidden" name="_csrf" value="%s"><button>%s</button></form>`,
		esc(action), esc(csrf), esc(label))
}

func pageLinks(p content.Pagination, base string) string {
	if p.TotalPages <= 1 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<nav>")
	if p.HasPrev() {
		fmt.Fprintf(&b, `<a href="%s?page=%d">Previous</a> `, esc(base), p.PrevPage())
	}
	fmt.Fprintf(&b, "Page %d of %d", p.Page, p.TotalPages)
	if p.HasNext() {
		fmt.Fprintf(&b, ` <a href="%s?page=%d">Next</a>`, esc(base), p.NextPage())
	}
	b.WriteString("</nav>")
	return b.String()
}

func (t theme) home(d views.HomeData) templ.Component {
	var b strings.Builder
	if d.Page.HeroTitleVisible() {
		title := t.cfg.Name
		if d.Page != nil && d.Page.HeroTitle != "" {
			title = d.Page.HeroTitle
		}
		fmt.Fprintf(&b, "<h1>%s</h1>", esc(title))
	}
	if d.Page != nil && d.Page.HeroSubtitleVisible() {
		fmt.Fprintf(&b, "<p>%s</p>", esc(d.Page.HeroSubtitle))
	}
	if d.Page != nil && d.Page.HeroDescriptionVisible() {
		fmt.Fprintf(&b, "<p>%s</p>", esc(d.Page.HeroDescription))
	}
	for _, s := range d.Stats {
		fmt.Fprintf(&b, `<div class="stat">%s: %s</div>`, esc(s.Label), esc(s.Value))
	}
	if len(d.FeaturedProjects) > 0 {
		b.WriteString("<h2>Featured Projects</h2><ul>")
		for _, p := range d.FeaturedProjects {
			fmt.Fprintf(&b, `<li><a href="/projects/%s/">%s</a></li>`, esc(p.ID), esc(p.Title))
		}
		b.WriteString("</ul>")
	}
	if d.Page.SkillsSummaryVisible() && len(d.FeaturedSkills) > 0 {
		b.WriteString("<h2>Skills</h2><ul>")
		for _, s := range d.FeaturedSkills {
			fmt.Fprintf(&b, "<li>%s (%d%%)</li>", esc(s.Name), s.Proficiency)
		}
		b.WriteString("</ul>")
	}
	if d.Page.CtaSectionVisible() {
		fmt.Fprintf(&b, `<section><h2>%s</h2><p>%s</p><a href="/contact/">%s</a></section>`,
			esc(d.Page.CtaTitleOr("Let's Work Together")),
			esc(d.Page.CtaDescriptionOr("Have a project in mind?")),
			esc(d.Page.CtaButtonTextOr("Get In Touch")))
	}
	return t.page("Home", b.String())
}

func (t theme) about(d views.AboutData) templ.Component {
	var b strings.Builder
	if d.Page.PageTitleVisible() {
		title := "About Me"
		if d.Page != nil && d.Page.PageTitle != "" {
			title = d.Page.PageTitle
		}
		fmt.Fprintf(&b, "<h1>%s</h1>", esc(title))
	}
	if d.Page != nil && d.Page.IntroductionVisible() {
		fmt.Fprintf(&b, "<section>%s</section>", d.Page.Introduction)
	}
	for _, s := range d.Stats {
		fmt.Fprintf(&b, `<div class="stat">%s: %s</div>`, esc(s.Label), esc(s.Value))
	}
	if len(d.Educations) > 0 {
		b.WriteString("<h2>Education</h2><ul>")
		for _, e := range d.Educations {
			fmt.Fprintf(&b, "<li>%s, %s (%s)</li>", esc(e.Degree), esc(e.Institution), esc(e.Year))
		}
		b.WriteString("</ul>")
	}
	if len(d.Experiences) > 0 {
		b.WriteString("<h2>Experience</h2><ul>")
		for _, e := range d.Experiences {
			fmt.Fprintf(&b, "<li>%s at %s (%s)</li>", esc(e.Role), esc(e.Organization), esc(e.Period))
		}
		b.WriteString("</ul>")
	}
	if len(d.Achievements) > 0 {
		b.WriteString("<h2>Achievements</h2><ul>")
		for _, a := range d.Achievements {
			fmt.Fprintf(&b, "<li>%s (%s)</li>", esc(a.Title), esc(a.Year))
		}
		b.WriteString("</ul>")
	}
	for _, g := range d.Research {
		fmt.Fprintf(&b, "<h2>%s</h2><ul>", esc(g.Category.Name))
		for _, e := range g.Entries {
			if e.Link != "" {
				fmt.Fprintf(&b, `<li><a href="%s">%s</a> &mdash; %s</li>`, esc(e.Link), esc(e.Title), esc(e.Publication))
			} else {
				fmt.Fprintf(&b, "<li>%s &mdash; %s</li>", esc(e.Title), esc(e.Publication))
			}
		}
		b.WriteString("</ul>")
	}
	if len(d.Interests) > 0 {
		b.WriteString("<h2>Interests</h2><ul>")
		for _, i := range d.Interests {
			fmt.Fprintf(&b, "<li>%s</li>", esc(i.Title))
		}
		b.WriteString("</ul>")
	}
	if len(d.CoreValues) > 0 {
		b.WriteString("<h2>Core Values</h2><ul>")
		for _, v := range d.CoreValues {
			fmt.Fprintf(&b, "<li>%s</li>", esc(v.Title))
		}
		b.WriteString("</ul>")
	}
	return t.page("About", b.String())
}

func (t theme) skills(d views.SkillsData) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Skills</h1>")
	for _, g := range d.Groups {
		fmt.Fprintf(&b, "<h2>%s</h2><ul>", esc(g.Name))
		for _, s := range g.Skills {
			fmt.Fprintf(&b, "<li>%s (%d%%)</li>", esc(s.Name), s.Proficiency)
		}
		b.WriteString("</ul>")
	}
	return t.page("Skills", b.String())
}

func (t theme) projects(d views.ProjectListData) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Projects</h1>")
	fmt.Fprintf(&b, `<form method="get"><input name="search" value="%s" placeholder="Search"><button>Go</button></form>`, esc(d.Search))
	b.WriteString("<ul>")
	for _, p := range d.Projects {
		fmt.Fprintf(&b, `<li><a href="/projects/%s/">%s</a> &mdash; %s</li>`, esc(p.ID), esc(p.Title), esc(views.JoinTags(p.TechStack)))
	}
	b.WriteString("</ul>")
	b.WriteString(pageLinks(d.Pagination, "/projects/"))
	return t.page("Projects", b.String())
}

func (t theme) project(d views.ProjectDetailData) templ.Component {
	var b strings.Builder
	p := d.Project
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(p.Title))
	if p.ImagePath != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s">`, esc(views.MediaURL(p.ImagePath)), esc(p.Title))
	}
	fmt.Fprintf(&b, "<p>%s</p>", esc(p.Description))
	fmt.Fprintf(&b, "<p>Built with %s</p>", esc(views.JoinTags(p.TechStack)))
	if p.GithubLink != "" {
		fmt.Fprintf(&b, `<a href="%s">Source</a> `, esc(p.GithubLink))
	}
	if p.DemoLink != "" {
		fmt.Fprintf(&b, `<a href="%s">Live Demo</a>`, esc(p.DemoLink))
	}
	if len(d.Related) > 0 {
		b.WriteString("<h2>More Projects</h2><ul>")
		for _, r := range d.Related {
			fmt.Fprintf(&b, `<li><a href="/projects/%s/">%s</a></li>`, esc(r.ID), esc(r.Title))
		}
		b.WriteString("</ul>")
	}
	return t.page(p.Title, b.String())
}

func (t theme) blog(d views.BlogListData) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Blog</h1>")
	fmt.Fprintf(&b, `<form method="get"><input name="search" value="%s" placeholder="Search"><button>Go</button></form>`, esc(d.Search))
	if len(d.Tags) > 0 {
		b.WriteString("<p>")
		for _, tag := range d.Tags {
			fmt.Fprintf(&b, `<a href="/blog/?tag=%s">%s</a> `, views.PathEscape(tag), esc(tag))
		}
		b.WriteString("</p>")
	}
	for _, blog := range d.Blogs {
		fmt.Fprintf(&b, `<article><h2><a href="/blog/%s/">%s</a></h2><p>%s &middot; %s</p><p>%s</p></article>`,
			esc(blog.ID), esc(blog.Title), esc(views.PublishedDate(blog)), esc(views.ReadTime(blog.ReadTime)), esc(views.Excerpt(blog)))
	}
	b.WriteString(pageLinks(d.Pagination, "/blog/"))
	return t.page("Blog", b.String())
}

func (t theme) blogPost(d views.BlogDetailData) templ.Component {
	var b strings.Builder
	blog := d.Blog
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(blog.Title))
	fmt.Fprintf(&b, "<p>%s &middot; %s &middot; by %s</p>",
		esc(views.PublishedDate(*blog)), esc(views.ReadTime(blog.ReadTime)), esc(blog.AuthorName))
	if blog.CoverImagePath != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s">`, esc(views.MediaURL(blog.CoverImagePath)), esc(blog.Title))
	}
	fmt.Fprintf(&b, "<section>%s</section>", blog.Content)
	if len(blog.Tags) > 0 {
		fmt.Fprintf(&b, "<p>Tagged: %s</p>", esc(views.JoinTags(blog.Tags)))
	}
	if len(d.Related) > 0 {
		b.WriteString("<h2>Related Posts</h2><ul>")
		for _, r := range d.Related {
			fmt.Fprintf(&b, `<li><a href="/blog/%s/">%s</a></li>`, esc(r.ID), esc(r.Title))
		}
		b.WriteString("</ul>")
	}
	return t.page(blog.Title, b.String())
}

func (t theme) contact(d views.ContactData) templ.Component {
	var b strings.Builder
	if d.Page.PageHeaderVisible() {
		title := "Get In Touch"
		if d.Page != nil && d.Page.PageTitle != "" {
			title = d.Page.PageTitle
		}
		fmt.Fprintf(&b, "<h1>%s</h1>", esc(title))
	}
	if d.Sent {
		b.WriteString(`<p class="flash success">Thanks, your message has been sent.</p>`)
	}
	if d.FieldError != "" {
		fmt.Fprintf(&b, `<p class="flash error">Please fill in the %s field.</p>`, esc(d.FieldError))
	}
	if d.Page.ContactFormVisible() {
		b.WriteString(`<form method="post" action="/contact/">
<input name="name" placeholder="Name">
<input name="email" placeholder="Email">
<input name="subject" placeholder="Subject">
<textarea name="message" placeholder="Message"></textarea>
<button>Send</button>
</form>`)
	}
	if d.Page.ContactInfoVisible() && d.Profile != nil {
		fmt.Fprintf(&b, "<p>%s</p>", esc(d.Profile.Email))
		if d.Page.PhoneVisible() && d.Profile.Phone != "" {
			fmt.Fprintf(&b, "<p>%s</p>", esc(d.Profile.Phone))
		}
	}
	return t.page("Contact", b.String())
}

func (t theme) adminLogin(showError bool, csrfToken string) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Admin Login</h1>")
	if showError {
		b.WriteString(`<p class="flash error">Invalid credentials.</p>`)
	}
	fmt.Fprintf(&b, `<form method="post" action="/admin/login/">
<input type="hidden" name="_csrf" value="%s">
<input name="username" placeholder="Username">
<input type="password" name="password" placeholder="Password">
<button>Sign In</button>
</form>`, esc(csrfToken))
	body := b.String()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Login</title></head><body>%s</body></html>`, body)
		return err
	})
}

func (t theme) adminDashboard(d views.DashboardData) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Dashboard</h1>")
	fmt.Fprintf(&b, "<p>%d projects, %d blogs (%d published, %d drafts), %d skills, %d messages (%d unread)</p>",
		d.Stats.Projects, d.Stats.Blogs, d.Stats.PublishedBlogs, d.Stats.DraftBlogs,
		d.Stats.Skills, d.Stats.Submissions, d.Stats.UnreadSubmissions)
	if len(d.RecentBlogs) > 0 {
		b.WriteString("<h2>Recent Blogs</h2><ul>")
		for _, blog := range d.RecentBlogs {
			fmt.Fprintf(&b, `<li><a href="/admin/blogs/%s/">%s</a></li>`, esc(blog.ID), esc(blog.Title))
		}
		b.WriteString("</ul>")
	}
	if len(d.RecentProjects) > 0 {
		b.WriteString("<h2>Recent Projects</h2><ul>")
		for _, p := range d.RecentProjects {
			fmt.Fprintf(&b, `<li><a href="/admin/projects/%s/">%s</a></li>`, esc(p.ID), esc(p.Title))
		}
		b.WriteString("</ul>")
	}
	return t.adminShell("Dashboard", d.AdminPage, b.String())
}

func (t theme) adminBlogs(d views.BlogManagerData) templ.Component {
	var b strings.Builder
	b.WriteString(`<h1>Blogs</h1><p><a href="/admin/blogs/new/">New blog</a></p><table>`)
	for _, blog := range d.Blogs {
		fmt.Fprintf(&b, `<tr><td><a href="/admin/blogs/%s/">%s</a></td><td>%s</td><td>%s %s</td></tr>`,
			esc(blog.ID), esc(blog.Title), esc(blog.Status),
			postButton(d.CSRF, "/admin/blogs/"+blog.ID+"/toggle/", "Toggle"),
			postButton(d.CSRF, "/admin/blogs/"+blog.ID+"/delete/", "Delete"))
	}
	b.WriteString("</table>")
	b.WriteString(pageLinks(d.Pagination, "/admin/blogs/"))
	return t.adminShell("Blogs", d.AdminPage, b.String())
}

func (t theme) adminBlogEditor(d views.BlogEditorData) templ.Component {
	action := "/admin/blogs/new/"
	title, contentBody, preview, tags, status := "", "", "", "", content.StatusDraft
	readTime := content.DefaultReadTime
	if d.Blog != nil {
		action = "/admin/blogs/" + d.Blog.ID + "/"
		title, contentBody, preview = d.Blog.Title, d.Blog.Content, d.Blog.Preview
		tags, status, readTime = views.JoinTags(d.Blog.Tags), d.Blog.Status, d.Blog.ReadTime
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<h1>Edit Blog</h1>
<form method="post" action="%s" enctype="multipart/form-data">
<input type="hidden" name="_csrf" value="%s">
<input name="title" value="%s" placeholder="Title">
<textarea name="content">%s</textarea>
<textarea name="preview">%s</textarea>
<input name="tags" value="%s" placeholder="Tags">
<input name="status" value="%s">
<input name="read_time" value="%d">
<input type="checkbox" name="is_active" checked> Active
<input type="file" name="cover_image">
<button name="action" value="save">Save Draft</button>
<button name="action" value="publish">Publish</button>
</form>`, esc(action), esc(d.CSRF), esc(title), esc(contentBody), esc(preview), esc(tags), esc(status), readTime)
	return t.adminShell("Edit Blog", d.AdminPage, b.String())
}

func (t theme) adminProjects(d views.ProjectManagerData) templ.Component {
	var b strings.Builder
	b.WriteString(`<h1>Projects</h1><p><a href="/admin/projects/new/">New project</a></p><table>`)
	for _, p := range d.Projects {
		fmt.Fprintf(&b, `<tr><td><a href="/admin/projects/%s/">%s</a></td><td>%s %s %s</td></tr>`,
			esc(p.ID), esc(p.Title),
			postButton(d.CSRF, "/admin/projects/"+p.ID+"/toggle/", "Toggle"),
			postButton(d.CSRF, "/admin/projects/"+p.ID+"/feature/", "Feature"),
			postButton(d.CSRF, "/admin/projects/"+p.ID+"/delete/", "Delete"))
	}
	b.WriteString("</table>")
	return t.adminShell("Projects", d.AdminPage, b.String())
}

func (t theme) adminProjectForm(d views.ProjectEditorData) templ.Component {
	action := "/admin/projects/new/"
	title, desc, tech := "", "", ""
	if d.Project != nil {
		action = "/admin/projects/" + d.Project.ID + "/"
		title, desc, tech = d.Project.Title, d.Project.Description, views.JoinTags(d.Project.TechStack)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<h1>Edit Project</h1>
<form method="post" action="%s" enctype="multipart/form-data">
<input type="hidden" name="_csrf" value="%s">
<input name="title" value="%s" placeholder="Title">
<textarea name="description">%s</textarea>
<input name="tech_stack" value="%s" placeholder="Tech stack">
<input name="github_link" placeholder="GitHub URL">
<input name="demo_link" placeholder="Demo URL">
<input type="checkbox" name="is_featured"> Featured
<input type="checkbox" name="is_active" checked> Active
<input type="file" name="image">
<button>Save</button>
</form>`, esc(action), esc(d.CSRF), esc(title), esc(desc), esc(tech))
	return t.adminShell("Edit Project", d.AdminPage, b.String())
}

func (t theme) adminSkills(d views.SkillManagerData) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Skills</h1><table>")
	for _, s := range d.Skills {
		cat := "Uncategorized"
		if s.CategoryID != nil {
			if name, ok := d.CategoryNames[*s.CategoryID]; ok {
				cat = name
			}
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d%%</td><td>%s %s</td></tr>",
			esc(s.Name), esc(cat), s.Proficiency,
			postButton(d.CSRF, "/admin/skills/"+s.ID+"/toggle/", "Toggle"),
			postButton(d.CSRF, "/admin/skills/"+s.ID+"/delete/", "Delete"))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, `<form method="post" action="/admin/skills/new/">
<input type="hidden" name="_csrf" value="%s">
<input name="name" placeholder="Skill name">
<select name="category_id"><option value="">Uncategorized</option>`, esc(d.CSRF))
	for _, cat := range d.Categories {
		fmt.Fprintf(&b, `<option value="%s">%s</option>`, esc(cat.ID), esc(cat.Name))
	}
	b.WriteString(`</select>
<input name="proficiency" value="50">
<input type="checkbox" name="is_active" checked> Active
<button>Add Skill</button>
</form>`)
	b.WriteString("<h2>Categories</h2><table>")
	for _, cat := range d.Categories {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s %s</td></tr>", esc(cat.Name),
			postButton(d.CSRF, "/admin/skills/categories/"+cat.ID+"/toggle/", "Toggle"),
			postButton(d.CSRF, "/admin/skills/categories/"+cat.ID+"/delete/", "Delete"))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, `<form method="post" action="/admin/skills/categories/new/">
<input type="hidden" name="_csrf" value="%s">
<input name="name" placeholder="Category name">
<input name="order" value="0">
<input type="checkbox" name="is_active" checked> Active
<button>Add Category</button>
</form>`, esc(d.CSRF))
	return t.adminShell("Skills", d.AdminPage, b.String())
}

func (t theme) adminResearch(d views.ResearchManagerData) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Research</h1><table>")
	for _, e := range d.Entries {
		cat := "Uncategorized"
		if e.CategoryID != nil {
			if name, ok := d.CategoryNames[*e.CategoryID]; ok {
				cat = name
			}
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s %s</td></tr>",
			esc(e.Title), esc(cat),
			postButton(d.CSRF, "/admin/research/entries/"+e.ID+"/toggle/", "Toggle"),
			postButton(d.CSRF, "/admin/research/entries/"+e.ID+"/delete/", "Delete"))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, `<form method="post" action="/admin/research/entries/new/">
<input type="hidden" name="_csrf" value="%s">
<input name="title" placeholder="Entry title">
<input name="publication" placeholder="Publication">
<input name="link" placeholder="Link">
<select name="category_id"><option value="">Uncategorized</option>`, esc(d.CSRF))
	for _, cat := range d.Categories {
		fmt.Fprintf(&b, `<option value="%s">%s</option>`, esc(cat.ID), esc(cat.Name))
	}
	b.WriteString("</select><button>Add Entry</button></form>")
	b.WriteString("<h2>Categories</h2><table>")
	for _, cat := range d.Categories {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s %s</td></tr>", esc(cat.Name),
			postButton(d.CSRF, "/admin/research/categories/"+cat.ID+"/toggle/", "Toggle"),
			postButton(d.CSRF, "/admin/research/categories/"+cat.ID+"/delete/", "Delete"))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, `<form method="post" action="/admin/research/categories/new/">
<input type="hidden" name="_csrf" value="%s">
<input name="name" placeholder="Category name">
<input name="order" value="0">
<input type="checkbox" name="is_active" checked> Active
<button>Add Category</button>
</form>`, esc(d.CSRF))
	b.WriteString(pageLinks(d.Pagination, "/admin/research/"))
	return t.adminShell("Research", d.AdminPage, b.String())
}

func (t theme) adminAboutItems(d views.AboutItemsData) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>About Items</h1>")
	b.WriteString("<h2>Education</h2><ul>")
	for _, e := range d.Educations {
		fmt.Fprintf(&b, "<li>%s, %s %s</li>", esc(e.Degree), esc(e.Institution),
			postButton(d.CSRF, "/admin/about/education/"+e.ID+"/toggle/", "Toggle"))
	}
	b.WriteString("</ul><h2>Experience</h2><ul>")
	for _, e := range d.Experiences {
		fmt.Fprintf(&b, "<li>%s at %s %s</li>", esc(e.Role), esc(e.Organization),
			postButton(d.CSRF, "/admin/about/experience/"+e.ID+"/toggle/", "Toggle"))
	}
	b.WriteString("</ul><h2>Achievements</h2><ul>")
	for _, a := range d.Achievements {
		fmt.Fprintf(&b, "<li>%s %s</li>", esc(a.Title),
			postButton(d.CSRF, "/admin/about/achievement/"+a.ID+"/toggle/", "Toggle"))
	}
	b.WriteString("</ul><h2>Interests</h2><ul>")
	for _, i := range d.Interests {
		fmt.Fprintf(&b, "<li>%s %s</li>", esc(i.Title),
			postButton(d.CSRF, "/admin/about/interest/"+i.ID+"/toggle/", "Toggle"))
	}
	b.WriteString("</ul><h2>Core Values</h2><ul>")
	for _, v := range d.CoreValues {
		fmt.Fprintf(&b, "<li>%s %s</li>", esc(v.Title),
			postButton(d.CSRF, "/admin/about/value/"+v.ID+"/toggle/", "Toggle"))
	}
	b.WriteString("</ul>")
	return t.adminShell("About Items", d.AdminPage, b.String())
}

func (t theme) adminPageConfig(d views.PageManagerData) templ.Component {
	var b strings.Builder
	switch {
	case d.Home != nil:
		fmt.Fprintf(&b, `<h1>Home Page</h1>
<form method="post" action="/admin/pages/home/save/">
<input type="hidden" name="_csrf" value="%s">
<input name="hero_title" value="%s">
<input name="hero_subtitle" value="%s">
<textarea name="hero_description">%s</textarea>
<button>Save</button>
</form>`, esc(d.CSRF), esc(d.Home.HeroTitle), esc(d.Home.HeroSubtitle), esc(d.Home.HeroDescription))
	case d.About != nil:
		fmt.Fprintf(&b, `<h1>About Page</h1>
<form method="post" action="/admin/pages/about/save/">
<input type="hidden" name="_csrf" value="%s">
<input name="page_title" value="%s">
<textarea name="introduction">%s</textarea>
<button>Save</button>
</form>`, esc(d.CSRF), esc(d.About.PageTitle), esc(d.About.Introduction))
	case d.Contact != nil:
		fmt.Fprintf(&b, `<h1>Contact Page</h1>
<form method="post" action="/admin/pages/contact/save/">
<input type="hidden" name="_csrf" value="%s">
<input name="page_title" value="%s">
<input name="page_subtitle" value="%s">
<button>Save</button>
</form>`, esc(d.CSRF), esc(d.Contact.PageTitle), esc(d.Contact.PageSubtitle))
	}
	return t.adminShell("Pages", d.AdminPage, b.String())
}

func (t theme) adminProfile(d views.ProfileData) templ.Component {
	name, role, bio, email := "", "", "", ""
	if d.Profile != nil {
		name, role, bio, email = d.Profile.Name, d.Profile.Role, d.Profile.Bio, d.Profile.Email
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<h1>Profile</h1>
<form method="post" action="/admin/profile/save/" enctype="multipart/form-data">
<input type="hidden" name="_csrf" value="%s">
<input name="name" value="%s" placeholder="Name">
<input name="role" value="%s" placeholder="Role">
<textarea name="bio">%s</textarea>
<input name="email" value="%s" placeholder="Email">
<input name="phone" placeholder="Phone">
<input name="github" placeholder="GitHub">
<input name="linkedin" placeholder="LinkedIn">
<input name="twitter" placeholder="Twitter">
<input type="file" name="image">
<input type="file" name="resume">
<button>Save</button>
</form>`, esc(d.CSRF), esc(name), esc(role), esc(bio), esc(email))
	if d.Profile != nil && d.Profile.ResumePath != "" {
		b.WriteString(postButton(d.CSRF, "/admin/profile/remove-resume/", "Remove Resume"))
	}
	return t.adminShell("Profile", d.AdminPage, b.String())
}

func (t theme) adminInbox(d views.SubmissionListData) templ.Component {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Inbox (%d unread)</h1><table>", d.Unread)
	for _, s := range d.Submissions {
		marker := ""
		if !s.IsRead {
			marker = " <strong>new</strong>"
		}
		fmt.Fprintf(&b, `<tr><td><a href="/admin/messages/%s/">%s</a>%s</td><td>%s</td><td>%s</td></tr>`,
			esc(s.ID), esc(s.Subject), marker, esc(s.Name), esc(views.FormatDate(s.SubmittedAt)))
	}
	b.WriteString("</table>")
	b.WriteString(pageLinks(d.Pagination, "/admin/messages/"))
	return t.adminShell("Inbox", d.AdminPage, b.String())
}

func (t theme) adminMessage(d views.SubmissionDetailData) templ.Component {
	s := d.Submission
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1><p>From %s &lt;%s&gt; on %s</p><blockquote>%s</blockquote>",
		esc(s.Subject), esc(s.Name), esc(s.Email), esc(views.FormatDate(s.SubmittedAt)), esc(s.Message))
	fmt.Fprintf(&b, `<form method="post" action="/admin/messages/%s/notes/">
<input type="hidden" name="_csrf" value="%s">
<textarea name="notes">%s</textarea>
<button>Save Notes</button>
</form>`, esc(s.ID), esc(d.CSRF), esc(s.Notes))
	b.WriteString(postButton(d.CSRF, "/admin/messages/"+s.ID+"/toggle-read/", "Toggle Read"))
	b.WriteString(postButton(d.CSRF, "/admin/messages/"+s.ID+"/delete/", "Delete"))
	return t.adminShell("Message", d.AdminPage, b.String())
}

func (t theme) notFound() templ.Component {
	return t.page("Not Found", "<h1>404</h1><p>That page does not exist.</p>")
}

func (t theme) serverError() templ.Component {
	return t.page("Server Error", "<h1>500</h1><p>Something went wrong.</p>")
}
