package content

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	Projects          int
	Blogs             int
	PublishedBlogs    int
	DraftBlogs        int
	Skills            int
	Submissions       int
	UnreadSubmissions int
}

// Dashboard collects the stat counters and the most recent activity for the
// admin landing page.
func (s *Service) Dashboard() (DashboardStats, []Project, []Blog, error) {
	var st DashboardStats
	var err error
	if st.Projects, err = s.ProjectCount(); err != nil {
		return st, nil, nil, err
	}
	if st.Blogs, err = s.BlogCount(); err != nil {
		return st, nil, nil, err
	}
	if st.PublishedBlogs, err = s.PublishedBlogCount(); err != nil {
		return st, nil, nil, err
	}
	if st.DraftBlogs, err = s.DraftBlogCount(); err != nil {
		return st, nil, nil, err
	}
	if st.Skills, err = s.store.Count(ColSkills); err != nil {
		return st, nil, nil, err
	}
	if st.Submissions, st.UnreadSubmissions, err = s.SubmissionCounts(); err != nil {
		return st, nil, nil, err
	}

	projects, err := s.AllProjects()
	if err != nil {
		return st, nil, nil, err
	}
	if len(projects) > 5 {
		projects = projects[:5]
	}
	blogs, err := s.AllBlogs("")
	if err != nil {
		return st, nil, nil, err
	}
	if len(blogs) > 5 {
		blogs = blogs[:5]
	}
	return st, projects, blogs, nil
}
